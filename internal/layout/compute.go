package layout

import (
	"fortio.org/safecast"

	"surge/internal/types"
)

// canonicalType follows alias chains down to the first non-alias type, so
// layout is always computed (and cached) against the representation that
// actually owns storage.
func canonicalType(typesIn *types.Interner, id types.TypeID) types.TypeID {
	if typesIn == nil || id == types.NoTypeID {
		return id
	}
	seen := make(map[types.TypeID]struct{}, 8)
	for id != types.NoTypeID {
		if _, ok := seen[id]; ok {
			return id
		}
		seen[id] = struct{}{}
		tt, ok := typesIn.Lookup(id)
		if !ok {
			return id
		}
		if tt.Kind != types.KindAlias && tt.Kind != types.KindStrictAlias {
			return id
		}
		target, ok := typesIn.AliasTarget(id)
		if !ok || target == types.NoTypeID {
			return id
		}
		id = target
	}
	return id
}

func (e *LayoutEngine) computeLayout(id types.TypeID) (TypeLayout, error) {
	if id == types.NoTypeID || e == nil || e.Types == nil {
		return TypeLayout{Size: 0, Align: 1}, nil
	}
	typesIn := e.Types
	tt, ok := typesIn.Lookup(id)
	if !ok {
		return TypeLayout{Size: 0, Align: 1}, nil
	}

	switch tt.Kind {
	case types.KindVoid, types.KindNoReturn, types.KindPoison, types.KindUnknown,
		types.KindInfer, types.KindTypeOfType, types.KindNameRef, types.KindOverloadSet,
		types.KindTemplateParameter:
		return TypeLayout{Size: 0, Align: 1}, nil

	case types.KindBool:
		return scalarLayoutBytes(e.Target.BoolSize, e.Target.BoolAlign), nil

	case types.KindInt:
		width := int(tt.IntWidth) / 8
		if tt.IntWidth == types.WidthAny {
			width = e.Target.IntSize
		}
		return scalarLayoutBytes(width, width), nil

	case types.KindFloat:
		width := int(tt.FloatWidth) / 8
		if tt.FloatWidth == types.WidthAny {
			width = e.Target.FloatSize
		}
		return scalarLayoutBytes(width, width), nil

	case types.KindPointer, types.KindReference, types.KindFunction:
		return e.ptrLayout(), nil

	case types.KindSlice:
		// [T] is a (pointer, length) fat handle in the v1 ABI.
		ptr := e.ptrLayout()
		return TypeLayout{Size: ptr.Size * 2, Align: ptr.Align}, nil

	case types.KindBuffer:
		n, err := safecast.Conv[int](tt.Count)
		if err != nil || n < 0 {
			return TypeLayout{}, &LayoutError{Kind: LayoutErrLengthConversion, Type: id, Value: tt.Count, Err: err}
		}
		return TypeLayout{Size: n, Align: 1}, nil

	case types.KindNilable:
		// T? desugars to a tag union over T elsewhere in the analyser; by
		// the time layout sees a bare KindNilable it has no case
		// registration of its own, so it lays out as a pointer-sized
		// handle rather than recursing into Elem.
		return e.ptrLayout(), nil

	case types.KindErrorPair:
		okL, err := e.LayoutOf(tt.OkType)
		if err != nil {
			return TypeLayout{}, err
		}
		errL, err := e.LayoutOf(tt.ErrType)
		if err != nil {
			return TypeLayout{}, err
		}
		return pairLayout(okL, errL), nil

	case types.KindArray:
		return e.arrayLayout(tt.Elem, tt.Count, id)

	case types.KindStruct:
		return e.structLayoutWithAttrs(id)

	case types.KindVariant:
		return e.tagUnionLayout(id)

	case types.KindEnum:
		if info, ok := typesIn.EnumInfo(id); ok && info != nil && info.BaseType != types.NoTypeID {
			return e.LayoutOf(info.BaseType)
		}
		return scalarLayoutBytes(4, 4), nil // default v1: uint32

	default:
		return TypeLayout{Size: 0, Align: 1}, nil
	}
}

func (e *LayoutEngine) ptrLayout() TypeLayout {
	ptrSize := e.Target.PtrSize
	ptrAlign := e.Target.PtrAlign
	if ptrSize <= 0 {
		ptrSize = 8
	}
	if ptrAlign <= 0 {
		ptrAlign = ptrSize
	}
	return TypeLayout{Size: ptrSize, Align: ptrAlign}
}

func scalarLayoutBytes(size, align int) TypeLayout {
	if size <= 0 {
		return TypeLayout{Size: 0, Align: 1}
	}
	if align <= 0 {
		align = size
	}
	return TypeLayout{Size: size, Align: align}
}

// pairLayout lays out two values back to back, as a two-field struct
// would — used for (ok, error) result pairs.
func pairLayout(a, b TypeLayout) TypeLayout {
	aAlign, bAlign := maxInt(1, a.Align), maxInt(1, b.Align)
	offset := roundUp(a.Size, bAlign)
	align := maxInt(aAlign, bAlign)
	size := roundUp(offset+b.Size, align)
	return TypeLayout{
		Size:         size,
		Align:        align,
		FieldOffsets: []int{0, offset},
		FieldAligns:  []int{aAlign, bAlign},
	}
}

func roundUp(n, align int) int {
	if align <= 1 {
		return n
	}
	r := n % align
	if r == 0 {
		return n
	}
	return n + (align - r)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (e *LayoutEngine) arrayLayout(elem types.TypeID, length int64, self types.TypeID) (TypeLayout, error) {
	if length < 0 {
		return TypeLayout{}, &LayoutError{Kind: LayoutErrNegativeLength, Type: self, Value: length}
	}
	elemLayout, err := e.LayoutOf(elem)
	if err != nil {
		return TypeLayout{}, err
	}
	elemAlign := elemLayout.Align
	if elemAlign <= 0 {
		elemAlign = 1
	}
	stride := roundUp(elemLayout.Size, elemAlign)
	n, err := safecast.Conv[int](length)
	if err != nil {
		return TypeLayout{}, &LayoutError{Kind: LayoutErrLengthConversion, Type: self, Value: length, Err: err}
	}
	return TypeLayout{
		Size:  stride * n,
		Align: elemAlign,
	}, nil
}

func (e *LayoutEngine) structLayoutWithAttrs(id types.TypeID) (TypeLayout, error) {
	if e == nil || e.Types == nil {
		return TypeLayout{Size: 0, Align: 1}, nil
	}

	attrs, _ := e.Types.TypeLayoutAttrs(id)
	if attrs.Packed && attrs.AlignOverride != nil {
		panic("invalid layout attrs: @packed conflicts with @align")
	}

	info, ok := e.Types.StructInfo(id)
	if !ok || info == nil || len(info.Fields) == 0 {
		return TypeLayout{Size: 0, Align: 1}, nil
	}
	fields := info.Fields
	offsets := make([]int, len(fields))
	aligns := make([]int, len(fields))

	if attrs.Packed {
		size := 0
		for i := range fields {
			fl, err := e.LayoutOf(fields[i].Type)
			if err != nil {
				return TypeLayout{}, err
			}
			offsets[i] = size
			aligns[i] = 1
			size += fl.Size
		}
		return TypeLayout{
			Size:         size,
			Align:        1,
			FieldOffsets: offsets,
			FieldAligns:  aligns,
		}, nil
	}

	size := 0
	align := 1
	for i := range fields {
		fl, err := e.LayoutOf(fields[i].Type)
		if err != nil {
			return TypeLayout{}, err
		}
		fAlign := fl.Align
		if fields[i].Attrs.AlignOverride != nil {
			fAlign = maxInt(fAlign, *fields[i].Attrs.AlignOverride)
		}
		if fAlign <= 0 {
			fAlign = 1
		}
		size = roundUp(size, fAlign)
		offsets[i] = size
		aligns[i] = fAlign
		size += fl.Size
		align = maxInt(align, fAlign)
	}
	size = roundUp(size, align)

	if attrs.AlignOverride != nil {
		align = maxInt(align, *attrs.AlignOverride)
		size = roundUp(size, align)
	}
	return TypeLayout{
		Size:         size,
		Align:        align,
		FieldOffsets: offsets,
		FieldAligns:  aligns,
	}, nil
}

// tagUnionLayout lays out a variant (tagged union) type: a discriminant
// tag followed by the widest case's fields, packed the way a struct of
// that case's fields would be.
func (e *LayoutEngine) tagUnionLayout(id types.TypeID) (TypeLayout, error) {
	if e == nil || e.Types == nil {
		return TypeLayout{Size: 0, Align: 1}, nil
	}
	info, ok := e.Types.VariantInfo(id)
	if !ok || info == nil || len(info.Cases) == 0 {
		return scalarLayoutBytes(4, 4), nil
	}

	maxPayloadSize := 0
	payloadAlign := 1
	for _, c := range info.Cases {
		if len(c.Fields) == 0 {
			continue
		}
		size := 0
		align := 1
		for _, f := range c.Fields {
			fl, err := e.LayoutOf(f.Type)
			if err != nil {
				return TypeLayout{}, err
			}
			fAlign := maxInt(1, fl.Align)
			size = roundUp(size, fAlign)
			size += fl.Size
			align = maxInt(align, fAlign)
		}
		size = roundUp(size, align)
		maxPayloadSize = maxInt(maxPayloadSize, size)
		payloadAlign = maxInt(payloadAlign, align)
	}

	// v1 layout: tag:uint32 then payload aligned up to payloadAlign.
	tagSize := 4
	tagAlign := 4
	if payloadAlign <= 0 {
		payloadAlign = 1
	}
	payloadOffset := roundUp(tagSize, payloadAlign)
	overallAlign := maxInt(tagAlign, payloadAlign)
	size := roundUp(payloadOffset+maxPayloadSize, overallAlign)
	return TypeLayout{
		Size:          size,
		Align:         overallAlign,
		TagSize:       tagSize,
		TagAlign:      tagAlign,
		PayloadOffset: payloadOffset,
	}, nil
}
