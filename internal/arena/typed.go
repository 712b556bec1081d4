package arena

import "fmt"

// Typed is a generic 1-based-index arena for node/value storage: the
// portable translation of "pointers into arenas" onto a garbage-collected
// host, per the source design's "arena + opaque handle" guidance. The ast
// and ir packages keep their own node and value storage and do not use it.
type Typed[T any] struct {
	data []*T
}

// NewTyped creates a Typed[T] arena with a capacity hint.
func NewTyped[T any](capHint int) *Typed[T] {
	if capHint < 0 {
		capHint = 0
	}
	return &Typed[T]{data: make([]*T, 0, capHint)}
}

// Allocate appends a value and returns its 1-based index (0 is reserved
// to mean "no such element", mirroring every ID type in this module).
func (t *Typed[T]) Allocate(v T) uint32 {
	elem := new(T)
	*elem = v
	t.data = append(t.data, elem)
	return uint32(len(t.data))
}

// Get returns a pointer to the element at the given 1-based index, or
// nil for index 0.
func (t *Typed[T]) Get(index uint32) *T {
	if index == 0 {
		return nil
	}
	if int(index) > len(t.data) {
		panic(fmt.Errorf("arena: index %d out of range (len %d)", index, len(t.data)))
	}
	return t.data[index-1]
}

// Len returns the number of allocated elements.
func (t *Typed[T]) Len() uint32 {
	return uint32(len(t.data))
}

// Each calls fn for every allocated element in allocation order.
func (t *Typed[T]) Each(fn func(index uint32, v *T)) {
	for i, p := range t.data {
		fn(uint32(i+1), p)
	}
}
