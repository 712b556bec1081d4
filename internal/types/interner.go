package types

import (
	"fmt"

	"fortio.org/safecast"

	"surge/internal/source"
)

// Builtins holds TypeIDs for the primitive and sentinel types every
// context needs on hand from the start.
type Builtins struct {
	Poison    TypeID
	Unknown   TypeID
	Infer     TypeID
	TypeOfType TypeID
	Void      TypeID
	NoReturn  TypeID
	Bool      TypeID

	Int   TypeID
	I8    TypeID
	I16   TypeID
	I32   TypeID
	I64   TypeID
	U8    TypeID
	U16   TypeID
	U32   TypeID
	U64   TypeID

	Float   TypeID
	Float32 TypeID
	Float64 TypeID
}

// Interner hands out stable TypeIDs for structural type descriptors,
// deduplicating by structural key, with out-of-line side tables for the
// kinds that carry more than a fixed handful of scalar fields.
type Interner struct {
	types []Type
	index map[typeKey]TypeID

	builtins Builtins

	Strings *source.Interner

	structs      []StructInfo
	variants     []VariantInfo
	enums        []EnumInfo
	aliases      []AliasInfo
	fns          []FnInfo
	templates    []TemplateParamInfo
	namerefs     []NameRefInfo
	overloadSets []OverloadSetInfo

	typeLayoutAttrs map[TypeID]LayoutAttrs
}

// NewInterner constructs an interner seeded with the builtin/sentinel
// types.
func NewInterner() *Interner {
	in := &Interner{index: make(map[typeKey]TypeID, 64)}
	in.structs = append(in.structs, StructInfo{})
	in.variants = append(in.variants, VariantInfo{})
	in.enums = append(in.enums, EnumInfo{})
	in.aliases = append(in.aliases, AliasInfo{})
	in.fns = append(in.fns, FnInfo{})
	in.templates = append(in.templates, TemplateParamInfo{})
	in.namerefs = append(in.namerefs, NameRefInfo{})
	in.overloadSets = append(in.overloadSets, OverloadSetInfo{})

	in.builtins.Poison = in.internRaw(Type{Kind: KindPoison})
	in.builtins.Unknown = in.Intern(Type{Kind: KindUnknown})
	in.builtins.Infer = in.Intern(Type{Kind: KindInfer})
	in.builtins.TypeOfType = in.Intern(Type{Kind: KindTypeOfType})
	in.builtins.Void = in.Intern(Type{Kind: KindVoid})
	in.builtins.NoReturn = in.Intern(Type{Kind: KindNoReturn})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})

	in.builtins.Int = in.Intern(MakeInt(WidthAny, true))
	in.builtins.I8 = in.Intern(MakeInt(Width8, true))
	in.builtins.I16 = in.Intern(MakeInt(Width16, true))
	in.builtins.I32 = in.Intern(MakeInt(Width32, true))
	in.builtins.I64 = in.Intern(MakeInt(Width64, true))
	in.builtins.U8 = in.Intern(MakeInt(Width8, false))
	in.builtins.U16 = in.Intern(MakeInt(Width16, false))
	in.builtins.U32 = in.Intern(MakeInt(Width32, false))
	in.builtins.U64 = in.Intern(MakeInt(Width64, false))

	in.builtins.Float = in.Intern(MakeFloat(WidthAny))
	in.builtins.Float32 = in.Intern(MakeFloat(Width32))
	in.builtins.Float64 = in.Intern(MakeFloat(Width64))
	return in
}

// Builtins returns the TypeIDs of the primitive/sentinel types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID. Struct,
// variant, enum, alias, function, and template-parameter descriptors are
// never deduplicated this way — their RegisterX constructors always
// allocate a fresh side-table slot and TypeID, matching distinct
// declarations with identical shapes remaining distinct types.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	if !deduplicable(t.Kind) {
		return in.internRaw(t)
	}
	key := typeKeyOf(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRaw(t)
}

func deduplicable(k Kind) bool {
	switch k {
	case KindStruct, KindVariant, KindEnum, KindAlias, KindStrictAlias, KindFunction, KindTemplateParameter:
		return false
	default:
		return true
	}
}

func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	if deduplicable(t.Kind) {
		in.index[typeKeyOf(t)] = id
	}
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid — an internal consistency
// violation, since every live TypeID must resolve.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

type typeKey struct {
	Kind    Kind
	IntW    Width
	Signed  bool
	FloatW  Width
	Elem    TypeID
	Count   int64
	Mutable bool
	OkType  TypeID
	ErrType TypeID
}

func typeKeyOf(t Type) typeKey {
	return typeKey{
		Kind: t.Kind, IntW: t.IntWidth, Signed: t.IntSigned, FloatW: t.FloatWidth,
		Elem: t.Elem, Count: t.Count, Mutable: t.Mutable, OkType: t.OkType, ErrType: t.ErrType,
	}
}
