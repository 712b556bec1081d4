// Package types implements the AST-side structural type system: the type
// kinds a type node can carry, and an interner that gives every distinct
// descriptor a stable TypeID, exactly as internal/ast gives every node
// vector a stable ID. This is the analyser's own type representation, not
// the separate IR-level type system in internal/ir.
package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates every type-node shape the analyser can produce, per the
// data model's type node-kind list.
type Kind uint8

const (
	KindInvalid Kind = iota

	KindPoison            // error-absorbing; no cascading diagnostics through it
	KindUnknown           // not yet constrained
	KindInfer             // `var`/inferred-from-initialiser placeholder
	KindTypeOfType        // the type of a type node
	KindVoid              // expression-statement / no-value result
	KindNoReturn          // functions that never return
	KindBool
	KindInt
	KindFloat
	KindErrorPair         // (ok, error) result pair
	KindNameRef           // unresolved name pending name resolution
	KindOverloadSet       // a name resolved to more than one declaration
	KindNilable           // T? — element may additionally be absent
	KindArray             // fixed-length [T; N]
	KindSlice             // open-length [T]
	KindReference         // &T / &mut T
	KindPointer           // *T
	KindBuffer            // raw untyped byte buffer of known length
	KindFunction
	KindStruct
	KindVariant           // tagged union of named, field-carrying cases
	KindEnum              // named integer constants
	KindAlias             // transparent alias; convertible both ways
	KindStrictAlias       // nominal alias; requires explicit conversion
	KindTemplateParameter
)

func (k Kind) String() string {
	switch k {
	case KindPoison:
		return "poison"
	case KindUnknown:
		return "unknown"
	case KindInfer:
		return "infer"
	case KindTypeOfType:
		return "type-of-type"
	case KindVoid:
		return "void"
	case KindNoReturn:
		return "noreturn"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindErrorPair:
		return "error-pair"
	case KindNameRef:
		return "nameref"
	case KindOverloadSet:
		return "overload-set"
	case KindNilable:
		return "nilable"
	case KindArray:
		return "array"
	case KindSlice:
		return "slice"
	case KindReference:
		return "reference"
	case KindPointer:
		return "pointer"
	case KindBuffer:
		return "buffer"
	case KindFunction:
		return "function"
	case KindStruct:
		return "struct"
	case KindVariant:
		return "variant"
	case KindEnum:
		return "enum"
	case KindAlias:
		return "alias"
	case KindStrictAlias:
		return "strict-alias"
	case KindTemplateParameter:
		return "template-parameter"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Width captures the bit width of an int/float type; WidthAny means the
// source-language default ("int"/"float" with no explicit width).
type Width uint8

const (
	WidthAny Width = 0
	Width8   Width = 8
	Width16  Width = 16
	Width32  Width = 32
	Width64  Width = 64
)

// ArrayDynamicLength marks a slice (as opposed to a fixed-length array).
const ArrayDynamicLength int64 = -1

// Type is a compact descriptor for a single type node. Kind-specific
// out-of-line data (struct fields, variant cases, enum constants, alias
// targets, function signatures, template parameters) lives in the
// interner's side tables, indexed by Payload — keeping every Type value
// itself small and hashable for deduplication.
type Type struct {
	Kind Kind

	IntWidth   Width
	IntSigned  bool
	FloatWidth Width

	Elem    TypeID // nilable / array / slice / reference / pointer / buffer
	Count   int64  // array length; buffer byte length
	Mutable bool   // reference: &T vs &mut T are distinct shapes

	OkType  TypeID // error-pair
	ErrType TypeID // error-pair

	Payload uint32 // index into struct/variant/enum/alias/fn/template tables
}

// MakeInt describes a signed or unsigned integer of the given width
// (WidthAny for the source language's default "int").
func MakeInt(width Width, signed bool) Type {
	return Type{Kind: KindInt, IntWidth: width, IntSigned: signed}
}

// MakeFloat describes a floating-point type.
func MakeFloat(width Width) Type {
	return Type{Kind: KindFloat, FloatWidth: width}
}

// MakeNilable describes T?.
func MakeNilable(elem TypeID) Type {
	return Type{Kind: KindNilable, Elem: elem}
}

// MakeArray describes a fixed-length [T; N].
func MakeArray(elem TypeID, length int64) Type {
	return Type{Kind: KindArray, Elem: elem, Count: length}
}

// MakeSlice describes an open-length [T].
func MakeSlice(elem TypeID) Type {
	return Type{Kind: KindSlice, Elem: elem, Count: ArrayDynamicLength}
}

// MakeReference describes &T or &mut T depending on the mutable flag.
func MakeReference(elem TypeID, mutable bool) Type {
	return Type{Kind: KindReference, Elem: elem, Mutable: mutable}
}

// MakePointer describes *T.
func MakePointer(elem TypeID) Type {
	return Type{Kind: KindPointer, Elem: elem}
}

// MakeBuffer describes a raw byte buffer of the given length.
func MakeBuffer(length int64) Type {
	return Type{Kind: KindBuffer, Count: length}
}

// MakeErrorPair describes (ok, error).
func MakeErrorPair(ok, errType TypeID) Type {
	return Type{Kind: KindErrorPair, OkType: ok, ErrType: errType}
}
