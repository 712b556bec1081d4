package ast

import (
	"fmt"

	"fortio.org/safecast"

	"surge/internal/source"
)

// FnModifier collects the boolean flags attached to a function
// declaration by its keyword prefixes and export visibility.
type FnModifier uint16

const (
	FnModifierPublic FnModifier = 1 << iota
	FnModifierExtern
	FnModifierAsync
	FnModifierUnsafe
	FnModifierPure
	FnModifierOverload
	FnModifierOverride
	FnModifierInline
)

// FnParam is a single declared parameter: a required type annotation, an
// optional default value, and a variadic marker for the final C-variadic
// parameter of an extern declaration.
type FnParam struct {
	Name     source.StringID // NoStringID for `_`
	Type     TypeID
	Default  ExprID
	Variadic bool
}

// FnItem is a function declaration: name, generics/type parameters
// (kept for parse-tree fidelity; template instantiation beyond arity
// checking is unsupported), parameter list, return type, body, and
// modifier/attribute flags.
type FnItem struct {
	Name                  source.StringID
	NameSpan              source.Span
	Generics              []source.StringID
	GenericCommas         []source.Span
	GenericsTrailingComma bool
	GenericsSpan          source.Span
	TypeParamsStart       TypeParamID
	TypeParamsCount       uint32
	ParamsStart           FnParamID
	ParamsCount           uint32
	ParamCommas           []source.Span
	ParamsTrailingComma   bool
	FnKeywordSpan         source.Span
	ParamsSpan            source.Span
	ReturnSpan            source.Span
	SemicolonSpan         source.Span
	ReturnType            TypeID
	Body                  StmtID
	Flags                 FnModifier
	AttrStart             AttrID
	AttrCount             uint32
	Span                  source.Span
}

func (f FnItem) IsPublic() bool { return f.Flags&FnModifierPublic != 0 }

func (i *Items) Fn(id ItemID) (*FnItem, bool) {
	item := i.Arena.Get(uint32(id))
	if item == nil || item.Kind != ItemFn {
		return nil, false
	}
	return i.Fns.Get(uint32(item.Payload)), true
}

func (i *Items) allocateFnParams(params []FnParam) (start FnParamID, count uint32) {
	if len(params) == 0 {
		return NoFnParamID, 0
	}
	for idx, p := range params {
		id := FnParamID(i.FnParams.Allocate(p))
		if idx == 0 {
			start = id
		}
	}
	var err error
	count, err = safecast.Conv[uint32](len(params))
	if err != nil {
		panic(fmt.Errorf("fn params count overflow: %w", err))
	}
	return start, count
}

func (i *Items) NewFnParam(name source.StringID, typ TypeID, def ExprID, variadic bool) FnParamID {
	return FnParamID(i.FnParams.Allocate(FnParam{
		Name:     name,
		Type:     typ,
		Default:  def,
		Variadic: variadic,
	}))
}

func (i *Items) FnParam(id FnParamID) *FnParam {
	return i.FnParams.Get(uint32(id))
}

func (i *Items) GetFnParamIDs(fn *FnItem) []FnParamID {
	if fn == nil || fn.ParamsCount == 0 || !fn.ParamsStart.IsValid() {
		return nil
	}
	params := make([]FnParamID, fn.ParamsCount)
	start := uint32(fn.ParamsStart)
	for j := uint32(0); j < fn.ParamsCount; j++ {
		params[j] = FnParamID(start + j)
	}
	return params
}

func (i *Items) NewFn(
	name source.StringID,
	nameSpan source.Span,
	generics []source.StringID,
	genericCommas []source.Span,
	genericsTrailing bool,
	genericsSpan source.Span,
	typeParams []TypeParamSpec,
	params []FnParam,
	paramCommas []source.Span,
	paramsTrailing bool,
	fnKwSpan source.Span,
	paramsSpan source.Span,
	returnSpan source.Span,
	semicolonSpan source.Span,
	returnType TypeID,
	body StmtID,
	flags FnModifier,
	attrs []Attr,
	span source.Span,
) ItemID {
	paramsStart, paramsCount := i.allocateFnParams(params)
	typeParamsStart, typeParamsCount := i.allocateTypeParams(typeParams)
	attrStart, attrCount := i.allocateAttrs(attrs)
	payload := i.Fns.Allocate(FnItem{
		Name:                  name,
		NameSpan:              nameSpan,
		Generics:              append([]source.StringID(nil), generics...),
		GenericCommas:         append([]source.Span(nil), genericCommas...),
		GenericsTrailingComma: genericsTrailing,
		GenericsSpan:          genericsSpan,
		TypeParamsStart:       typeParamsStart,
		TypeParamsCount:       typeParamsCount,
		ParamsStart:           paramsStart,
		ParamsCount:           paramsCount,
		ParamCommas:           append([]source.Span(nil), paramCommas...),
		ParamsTrailingComma:   paramsTrailing,
		FnKeywordSpan:         fnKwSpan,
		ParamsSpan:            paramsSpan,
		ReturnSpan:            returnSpan,
		SemicolonSpan:         semicolonSpan,
		ReturnType:            returnType,
		Body:                  body,
		Flags:                 flags,
		AttrStart:             attrStart,
		AttrCount:             attrCount,
		Span:                  span,
	})
	return i.New(ItemFn, span, PayloadID(payload))
}

// NewExternFn creates a new extern function payload — a foreign
// declaration inside an `extern` block, with no body and no generics.
func (i *Items) NewExternFn(
	name source.StringID,
	nameSpan source.Span,
	params []FnParam,
	paramsSpan source.Span,
	returnType TypeID,
	flags FnModifier,
	attrs []Attr,
	span source.Span,
) PayloadID {
	paramsStart, paramsCount := i.allocateFnParams(params)
	attrStart, attrCount := i.allocateAttrs(attrs)
	payload := i.Fns.Allocate(FnItem{
		Name:        name,
		NameSpan:    nameSpan,
		ParamsStart: paramsStart,
		ParamsCount: paramsCount,
		ParamsSpan:  paramsSpan,
		ReturnType:  returnType,
		Body:        NoStmtID,
		Flags:       flags | FnModifierExtern,
		AttrStart:   attrStart,
		AttrCount:   attrCount,
		Span:        span,
	})
	return PayloadID(payload)
}
