package ir

import (
	"surge/internal/arena"
	"surge/internal/source"
)

// Module owns a name, an arena, an ordered function list, an ordered
// global list, and a flat vector of every value produced from it — the
// latter exists purely so the owning Context can tear everything down in
// one pass.
type Module struct {
	Context *Context
	Name    string

	arena *arena.Arena

	Functions []*Value
	Globals   []*Value

	allValues []*Value
}

// NewModule creates an IR module bound to ctx and adds it to ctx's module
// list.
func NewModule(ctx *Context, name string) *Module {
	m := &Module{
		Context: ctx,
		Name:    name,
		arena:   arena.New(64 * 1024),
	}
	ctx.modules = append(ctx.modules, m)
	return m
}

func (m *Module) newValue(kind ValueKind, loc source.Span, typ *Type) *Value {
	v := &Value{
		Kind:     kind,
		Location: loc,
		Module:   m,
		Type:     typ,
	}
	m.allValues = append(m.allValues, v)
	return v
}

// AllValues returns every value ever produced into this module, in
// creation order.
func (m *Module) AllValues() []*Value {
	return m.allValues
}

// Destroy releases the module's arena. Pointers into it (and into any
// values produced from it) must not be used afterward.
func (m *Module) Destroy() {
	if m.arena != nil {
		m.arena.Destroy()
		m.arena = nil
	}
}
