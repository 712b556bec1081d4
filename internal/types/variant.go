package types

import (
	"fmt"
	"slices"

	"fortio.org/safecast"

	"surge/internal/source"
)

// VariantCase is one named case of a tagged union; it may carry zero or
// more fields of its own.
type VariantCase struct {
	Name   source.StringID
	Fields []StructField
}

// VariantInfo stores metadata for a variant (tagged union) type.
type VariantInfo struct {
	Name  source.StringID
	Decl  source.Span
	Cases []VariantCase
}

// RegisterVariant allocates a fresh variant type slot.
func (in *Interner) RegisterVariant(name source.StringID, decl source.Span) TypeID {
	slot := in.appendVariantInfo(VariantInfo{Name: name, Decl: decl})
	return in.internRaw(Type{Kind: KindVariant, Payload: slot})
}

// SetVariantCases stores the resolved cases for the variant type.
func (in *Interner) SetVariantCases(typeID TypeID, cases []VariantCase) {
	info := in.variantInfo(typeID)
	if info == nil {
		return
	}
	info.Cases = slices.Clone(cases)
}

// VariantInfo returns metadata for the provided variant TypeID.
func (in *Interner) VariantInfo(typeID TypeID) (*VariantInfo, bool) {
	info := in.variantInfo(typeID)
	if info == nil {
		return nil, false
	}
	return info, true
}

func (in *Interner) variantInfo(typeID TypeID) *VariantInfo {
	if typeID == NoTypeID {
		return nil
	}
	tt, ok := in.Lookup(typeID)
	if !ok || tt.Kind != KindVariant {
		return nil
	}
	if tt.Payload == 0 || int(tt.Payload) >= len(in.variants) {
		return nil
	}
	return &in.variants[tt.Payload]
}

func (in *Interner) appendVariantInfo(info VariantInfo) uint32 {
	in.variants = append(in.variants, info)
	slot, err := safecast.Conv[uint32](len(in.variants) - 1)
	if err != nil {
		panic(fmt.Errorf("variant info overflow: %w", err))
	}
	return slot
}
