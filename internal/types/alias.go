package types

import (
	"fmt"

	"fortio.org/safecast"

	"surge/internal/source"
)

// AliasInfo stores metadata for both transparent aliases (KindAlias,
// implicitly convertible to and from their target) and strict aliases
// (KindStrictAlias, requiring an explicit cast).
type AliasInfo struct {
	Name   source.StringID
	Decl   source.Span
	Target TypeID
}

// RegisterAlias allocates a fresh transparent-alias type slot.
func (in *Interner) RegisterAlias(name source.StringID, decl source.Span, target TypeID) TypeID {
	slot := in.appendAliasInfo(AliasInfo{Name: name, Decl: decl, Target: target})
	return in.internRaw(Type{Kind: KindAlias, Payload: slot})
}

// RegisterStrictAlias allocates a fresh nominal strict-alias type slot.
func (in *Interner) RegisterStrictAlias(name source.StringID, decl source.Span, target TypeID) TypeID {
	slot := in.appendAliasInfo(AliasInfo{Name: name, Decl: decl, Target: target})
	return in.internRaw(Type{Kind: KindStrictAlias, Payload: slot})
}

// AliasInfo returns metadata for the provided alias/strict-alias TypeID.
func (in *Interner) AliasInfo(typeID TypeID) (*AliasInfo, bool) {
	info := in.aliasInfo(typeID)
	if info == nil {
		return nil, false
	}
	return info, true
}

// AliasTarget retrieves the aliased target type.
func (in *Interner) AliasTarget(typeID TypeID) (TypeID, bool) {
	info := in.aliasInfo(typeID)
	if info == nil || info.Target == NoTypeID {
		return NoTypeID, false
	}
	return info.Target, true
}

func (in *Interner) aliasInfo(typeID TypeID) *AliasInfo {
	if typeID == NoTypeID {
		return nil
	}
	tt, ok := in.Lookup(typeID)
	if !ok || (tt.Kind != KindAlias && tt.Kind != KindStrictAlias) {
		return nil
	}
	if tt.Payload == 0 || int(tt.Payload) >= len(in.aliases) {
		return nil
	}
	return &in.aliases[tt.Payload]
}

func (in *Interner) appendAliasInfo(info AliasInfo) uint32 {
	in.aliases = append(in.aliases, info)
	slot, err := safecast.Conv[uint32](len(in.aliases) - 1)
	if err != nil {
		panic(fmt.Errorf("alias info overflow: %w", err))
	}
	return slot
}
