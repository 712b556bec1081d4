package types

import (
	"fmt"
	"slices"

	"fortio.org/safecast"

	"surge/internal/source"
)

// EnumConstant names one integer value of an enum.
type EnumConstant struct {
	Name     source.StringID
	IntValue int64
	Span     source.Span
}

// EnumInfo stores metadata for an enum type: a backing integer type plus
// its named constants.
type EnumInfo struct {
	Name      source.StringID
	Decl      source.Span
	BaseType  TypeID
	Constants []EnumConstant
}

// RegisterEnum allocates a fresh enum type slot.
func (in *Interner) RegisterEnum(name source.StringID, decl source.Span, baseType TypeID) TypeID {
	slot := in.appendEnumInfo(EnumInfo{Name: name, Decl: decl, BaseType: baseType})
	return in.internRaw(Type{Kind: KindEnum, Payload: slot})
}

// SetEnumConstants stores the resolved named constants for the enum type.
func (in *Interner) SetEnumConstants(typeID TypeID, constants []EnumConstant) {
	info := in.enumInfo(typeID)
	if info == nil {
		return
	}
	info.Constants = slices.Clone(constants)
}

// EnumInfo returns metadata for the provided enum TypeID.
func (in *Interner) EnumInfo(typeID TypeID) (*EnumInfo, bool) {
	info := in.enumInfo(typeID)
	if info == nil {
		return nil, false
	}
	return info, true
}

func (in *Interner) enumInfo(typeID TypeID) *EnumInfo {
	if typeID == NoTypeID {
		return nil
	}
	tt, ok := in.Lookup(typeID)
	if !ok || tt.Kind != KindEnum {
		return nil
	}
	if tt.Payload == 0 || int(tt.Payload) >= len(in.enums) {
		return nil
	}
	return &in.enums[tt.Payload]
}

func (in *Interner) appendEnumInfo(info EnumInfo) uint32 {
	in.enums = append(in.enums, info)
	slot, err := safecast.Conv[uint32](len(in.enums) - 1)
	if err != nil {
		panic(fmt.Errorf("enum info overflow: %w", err))
	}
	return slot
}
