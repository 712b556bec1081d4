package types

import (
	"fmt"
	"slices"

	"fortio.org/safecast"

	"surge/internal/source"
)

// NameRefInfo records the unresolved name a nameref type stands in for,
// until name resolution replaces the referencing node's type outright.
type NameRefInfo struct {
	Name source.StringID
	Span source.Span
}

// RegisterNameRef allocates a fresh nameref type slot.
func (in *Interner) RegisterNameRef(name source.StringID, span source.Span) TypeID {
	slot := in.appendNameRefInfo(NameRefInfo{Name: name, Span: span})
	return in.internRaw(Type{Kind: KindNameRef, Payload: slot})
}

// NameRefInfo returns metadata for the provided nameref TypeID.
func (in *Interner) NameRefInfo(id TypeID) (*NameRefInfo, bool) {
	if id == NoTypeID {
		return nil, false
	}
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindNameRef {
		return nil, false
	}
	if tt.Payload == 0 || int(tt.Payload) >= len(in.namerefs) {
		return nil, false
	}
	return &in.namerefs[tt.Payload], true
}

func (in *Interner) appendNameRefInfo(info NameRefInfo) uint32 {
	in.namerefs = append(in.namerefs, info)
	slot, err := safecast.Conv[uint32](len(in.namerefs) - 1)
	if err != nil {
		panic(fmt.Errorf("nameref info overflow: %w", err))
	}
	return slot
}

// OverloadSetInfo records the candidate function types a name resolved
// to more than one of, pending call-site arity/type-based resolution.
type OverloadSetInfo struct {
	Candidates []TypeID
}

// RegisterOverloadSet allocates a fresh overload-set type slot.
func (in *Interner) RegisterOverloadSet(candidates []TypeID) TypeID {
	slot := in.appendOverloadSetInfo(OverloadSetInfo{Candidates: slices.Clone(candidates)})
	return in.internRaw(Type{Kind: KindOverloadSet, Payload: slot})
}

// OverloadSetInfo returns metadata for the provided overload-set TypeID.
func (in *Interner) OverloadSetInfo(id TypeID) (*OverloadSetInfo, bool) {
	if id == NoTypeID {
		return nil, false
	}
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindOverloadSet {
		return nil, false
	}
	if tt.Payload == 0 || int(tt.Payload) >= len(in.overloadSets) {
		return nil, false
	}
	return &in.overloadSets[tt.Payload], true
}

func (in *Interner) appendOverloadSetInfo(info OverloadSetInfo) uint32 {
	in.overloadSets = append(in.overloadSets, info)
	slot, err := safecast.Conv[uint32](len(in.overloadSets) - 1)
	if err != nil {
		panic(fmt.Errorf("overload set info overflow: %w", err))
	}
	return slot
}
