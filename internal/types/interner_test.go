package types

import (
	"testing"

	"surge/internal/source"
)

func TestInternerBuiltins(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if b.Void == NoTypeID || b.Bool == NoTypeID {
		t.Fatalf("builtins not initialized")
	}
	void, _ := in.Lookup(b.Void)
	if void.Kind != KindVoid {
		t.Fatalf("expected void kind, got %v", void.Kind)
	}
}

func TestInternerDeduplicatesDescriptors(t *testing.T) {
	in := NewInterner()
	elem := in.Builtins().I8
	arr1 := in.Intern(MakeSlice(elem))
	arr2 := in.Intern(MakeSlice(elem))
	if arr1 != arr2 {
		t.Fatalf("slice types should be deduplicated")
	}
}

func TestReferenceMutabilityAffectsIdentity(t *testing.T) {
	in := NewInterner()
	elem := in.Builtins().Int
	mut := in.Intern(MakeReference(elem, true))
	imm := in.Intern(MakeReference(elem, false))
	if mut == imm {
		t.Fatalf("mutable and immutable references must differ")
	}
}

func TestStructDeclarationsAreNeverDeduplicated(t *testing.T) {
	in := NewInterner()
	a := in.RegisterStruct(0, source.Span{})
	b := in.RegisterStruct(0, source.Span{})
	if a == b {
		t.Fatalf("two struct declarations must be distinct types even with identical names")
	}
}
