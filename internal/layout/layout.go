package layout

import "surge/internal/types"

// TypeLayout is the ABI layout of a type for a specific Target.
type TypeLayout struct {
	Size  int
	Align int

	// Struct-only:
	FieldOffsets []int
	FieldAligns  []int

	// Tag-union (v1) fields, for ABI queries only.
	TagSize       int
	TagAlign      int
	PayloadOffset int
}

// LayoutEngine computes ABI layouts for resolved types, memoising results
// per TypeID and detecting by-value recursion (a struct or variant that
// contains itself without an intervening pointer/reference indirection
// has no finite size).
type LayoutEngine struct {
	Target Target
	Types  *types.Interner

	cache   *cache
	visting map[types.TypeID]struct{}
	path    []types.TypeID
}

// New creates a layout engine targeting target, resolving type metadata
// through typesIn.
func New(target Target, typesIn *types.Interner) *LayoutEngine {
	return &LayoutEngine{
		Target: target,
		Types:  typesIn,
		cache:  newCache(),
	}
}

// LayoutOf computes (and caches) the layout of t, or returns a
// *LayoutError if t is a recursively-unsized by-value type.
func (e *LayoutEngine) LayoutOf(t types.TypeID) (TypeLayout, error) {
	if e == nil {
		return TypeLayout{Size: 0, Align: 1}, nil
	}
	if e.cache == nil {
		e.cache = newCache()
	}
	canon := canonicalType(e.Types, t)
	if cached, ok := e.cache.get(canon); ok {
		return cached, nil
	}

	if e.visting == nil {
		e.visting = make(map[types.TypeID]struct{}, 8)
	}
	if _, onPath := e.visting[canon]; onPath {
		cycle := append([]types.TypeID(nil), e.path...)
		cycle = append(cycle, canon)
		return TypeLayout{Size: 0, Align: 1}, &LayoutError{
			Kind:  LayoutErrRecursiveUnsized,
			Type:  canon,
			Cycle: cycle,
		}
	}
	e.visting[canon] = struct{}{}
	e.path = append(e.path, canon)
	layout, err := e.computeLayout(canon)
	e.path = e.path[:len(e.path)-1]
	delete(e.visting, canon)

	if err != nil {
		return TypeLayout{Size: 0, Align: 1}, err
	}
	e.cache.put(canon, &layout)
	return layout, nil
}

// SizeOf returns the size of t in bytes, or 0 if its layout cannot be
// computed (recursively-unsized, or an internal layout error).
func (e *LayoutEngine) SizeOf(t types.TypeID) int {
	l, err := e.LayoutOf(t)
	if err != nil {
		return 0
	}
	return l.Size
}

// AlignOf returns the alignment of t in bytes, or 1 on error.
func (e *LayoutEngine) AlignOf(t types.TypeID) int {
	l, err := e.LayoutOf(t)
	if err != nil {
		return 1
	}
	return l.Align
}

// FieldOffset returns the byte offset of field fieldIdx within structT,
// or 0 if the index or layout is invalid.
func (e *LayoutEngine) FieldOffset(structT types.TypeID, fieldIdx int) int {
	l, err := e.LayoutOf(structT)
	if err != nil || fieldIdx < 0 || fieldIdx >= len(l.FieldOffsets) {
		return 0
	}
	return l.FieldOffsets[fieldIdx]
}
