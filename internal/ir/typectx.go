package ir

// TypeContext owns the singleton and memoised IR types for one compilation.
// Void, Ptr, and integer widths are true singletons; float32/float64 are
// memoised; array/struct/function types are allocated afresh per request
// and retained here only for bulk teardown bookkeeping.
type TypeContext struct {
	voidType *Type
	ptrType  *Type
	ints     map[int]*Type
	floats   map[int]*Type

	allTypes []*Type
}

// NewTypeContext creates a TypeContext with its singletons pre-populated.
func NewTypeContext() *TypeContext {
	tc := &TypeContext{
		ints:   make(map[int]*Type),
		floats: make(map[int]*Type),
	}
	tc.voidType = tc.retain(&Type{Kind: TypeVoid})
	tc.ptrType = tc.retain(&Type{Kind: TypePtr})
	return tc
}

func (tc *TypeContext) retain(t *Type) *Type {
	tc.allTypes = append(tc.allTypes, t)
	return t
}

// Void returns the singleton void type.
func (tc *TypeContext) Void() *Type { return tc.voidType }

// Ptr returns the singleton opaque pointer type.
func (tc *TypeContext) Ptr() *Type { return tc.ptrType }

// Integer returns the memoised integer type of the given bit width.
func (tc *TypeContext) Integer(width int) *Type {
	if t, ok := tc.ints[width]; ok {
		return t
	}
	t := tc.retain(&Type{Kind: TypeInteger, IntWidth: width})
	tc.ints[width] = t
	return t
}

// Float returns the memoised float32/float64 type.
func (tc *TypeContext) Float(width int) *Type {
	if width != 32 && width != 64 {
		panic("ir: float width must be 32 or 64")
	}
	if t, ok := tc.floats[width]; ok {
		return t
	}
	t := tc.retain(&Type{Kind: TypeFloat, FloatWidth: width})
	tc.floats[width] = t
	return t
}

// Array allocates a fresh array type; not deduplicated across calls.
func (tc *TypeContext) Array(elem *Type, length int64) *Type {
	return tc.retain(&Type{Kind: TypeArray, ElemType: elem, Length: length})
}

// Struct allocates a fresh struct type; not deduplicated across calls.
func (tc *TypeContext) Struct(name string, fields []*Type) *Type {
	return tc.retain(&Type{
		Kind:       TypeStruct,
		Named:      name != "",
		StructName: name,
		Fields:     fields,
	})
}

// NamedStructs returns every named struct type retained by this context, in
// allocation order, for use by the textual printer.
func (tc *TypeContext) NamedStructs() []*Type {
	var out []*Type
	for _, t := range tc.allTypes {
		if t.Kind == TypeStruct && t.Named {
			out = append(out, t)
		}
	}
	return out
}

// Function allocates a fresh function type; not deduplicated across calls.
func (tc *TypeContext) Function(ret *Type, params []*Type, cc CallingConvention, variadic bool) *Type {
	return tc.retain(&Type{
		Kind:       TypeFunction,
		ReturnType: ret,
		ParamTypes: params,
		CallConv:   cc,
		IsVariadic: variadic,
	})
}
