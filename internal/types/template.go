package types

import (
	"fmt"

	"fortio.org/safecast"

	"surge/internal/source"
)

// TemplateParamInfo names a single template (generic) parameter position
// on a declaration.
type TemplateParamInfo struct {
	Name  source.StringID
	Index int
}

// RegisterTemplateParameter allocates a fresh template-parameter type
// slot.
func (in *Interner) RegisterTemplateParameter(name source.StringID, index int) TypeID {
	slot := in.appendTemplateParamInfo(TemplateParamInfo{Name: name, Index: index})
	return in.internRaw(Type{Kind: KindTemplateParameter, Payload: slot})
}

// TemplateParamInfo returns metadata for the provided template-parameter
// TypeID.
func (in *Interner) TemplateParamInfo(id TypeID) (*TemplateParamInfo, bool) {
	if id == NoTypeID {
		return nil, false
	}
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindTemplateParameter {
		return nil, false
	}
	if tt.Payload == 0 || int(tt.Payload) >= len(in.templates) {
		return nil, false
	}
	return &in.templates[tt.Payload], true
}

func (in *Interner) appendTemplateParamInfo(info TemplateParamInfo) uint32 {
	in.templates = append(in.templates, info)
	slot, err := safecast.Conv[uint32](len(in.templates) - 1)
	if err != nil {
		panic(fmt.Errorf("template param info overflow: %w", err))
	}
	return slot
}
