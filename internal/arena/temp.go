package arena

// tempArena is the designated temporary arena: initialised once per
// process and used for transient formatting allocations that are all
// released together with ClearTemp. The source design calls this a
// "shared mutable global pool" and recommends modelling it as an
// explicit, narrowly-scoped singleton rather than reaching for it from
// deep call stacks; ClearTemp is expected to be called once per
// formatting pass (e.g. after rendering one diagnostic or one IR dump).
var tempArena = New(16 * 1024)

// Temp returns the process-wide temporary arena.
func Temp() *Arena {
	return tempArena
}

// ClearTemp releases all temporary allocations in one pass.
func ClearTemp() {
	tempArena.Clear()
}
