package ir

import "fmt"

// TypeKind distinguishes the shapes an IR type can take.
type TypeKind uint8

const (
	TypeVoid TypeKind = iota
	TypePtr
	TypeInteger
	TypeFloat
	TypeArray
	TypeStruct
	TypeFunction
)

// CallingConvention selects how a function value is called.
type CallingConvention uint8

const (
	CallConvCC CallingConvention = iota // source-language default convention
	CallConvC                           // C calling convention ("ccc")
)

func (c CallingConvention) String() string {
	if c == CallConvC {
		return "ccc"
	}
	return "cc"
}

// Type is an IR-level structural type. Void, Ptr, and memoised integer/float
// widths are singletons within a Context; array, struct, and function types
// are allocated afresh per request and retained on the Context's type list.
type Type struct {
	Kind TypeKind

	// TypeInteger
	IntWidth int

	// TypeFloat
	FloatWidth int // 32 or 64

	// TypeArray
	ElemType *Type
	Length   int64

	// TypeStruct
	Named       bool
	StructName  string
	Fields      []*Type

	// TypeFunction
	ReturnType   *Type
	ParamTypes   []*Type
	CallConv     CallingConvention
	IsVariadic   bool
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case TypeVoid:
		return "void"
	case TypePtr:
		return "ptr"
	case TypeInteger:
		return fmt.Sprintf("i%d", t.IntWidth)
	case TypeFloat:
		return fmt.Sprintf("float%d", t.FloatWidth)
	case TypeArray:
		return fmt.Sprintf("%s[%d]", t.ElemType.String(), t.Length)
	case TypeStruct:
		if t.Named {
			return "@" + t.StructName
		}
		s := "struct { "
		for i, f := range t.Fields {
			if i > 0 {
				s += ", "
			}
			s += f.String()
		}
		return s + " }"
	case TypeFunction:
		s := t.ReturnType.String() + " ("
		for i, p := range t.ParamTypes {
			if i > 0 {
				s += ", "
			}
			s += p.String()
		}
		if t.IsVariadic {
			if len(t.ParamTypes) > 0 {
				s += ", "
			}
			s += "..."
		}
		return s + ")"
	default:
		return "<invalid-type>"
	}
}

// IsVoid reports whether t is the void type, the type carried by values
// with no result (terminators, stores, branches, void builtins).
func (t *Type) IsVoid() bool {
	return t != nil && t.Kind == TypeVoid
}
