// Package arena implements the bump-allocating block arena described for
// AST and IR node storage: a caller-supplied block size, a cursor that
// bumps through the last block and spills into a new one on overflow, and
// a single Clear/Destroy that releases everything at once.
//
// Arenas never reallocate live memory: once Push returns a slice, that
// slice's backing array is never moved or resized by the arena. Pointers
// taken into an arena's memory stay valid until Clear or Destroy.
package arena

import "fmt"

// Arena is a block-based bump allocator over raw byte storage.
type Arena struct {
	blockSize int
	blocks    [][]byte
	cursor    int // offset into the last block
}

// New creates an arena with the given block size; a non-positive
// blockSize is replaced by 4096. The block size bounds the largest single
// Push.
func New(blockSize int) *Arena {
	if blockSize <= 0 {
		blockSize = 4096
	}
	return &Arena{blockSize: blockSize}
}

// Push returns n zero-initialised bytes carved out of the arena. n must
// not exceed the arena's block size; violating that is a fatal,
// programmer-visible error, matching the source design's "push(N)...N <=
// block size, else a fatal error."
func (a *Arena) Push(n int) []byte {
	if n < 0 {
		panic(fmt.Errorf("arena: negative push size %d", n))
	}
	if n > a.blockSize {
		panic(fmt.Errorf("arena: push size %d exceeds block size %d", n, a.blockSize))
	}
	if len(a.blocks) == 0 || a.cursor+n > len(a.blocks[len(a.blocks)-1]) {
		a.blocks = append(a.blocks, make([]byte, a.blockSize))
		a.cursor = 0
	}
	last := a.blocks[len(a.blocks)-1]
	out := last[a.cursor : a.cursor+n : a.cursor+n]
	a.cursor += n
	return out
}

// Clear releases all blocks in one pass, keeping the arena usable. Any
// memory previously returned by Push must not be referenced afterwards.
func (a *Arena) Clear() {
	a.blocks = nil
	a.cursor = 0
}

// Destroy releases the arena permanently. Using the arena afterwards is a
// programming error.
func (a *Arena) Destroy() {
	a.Clear()
}

// BlockCount reports how many blocks are currently allocated, mostly
// useful for tests asserting the spill-on-overflow behaviour.
func (a *Arena) BlockCount() int {
	return len(a.blocks)
}
