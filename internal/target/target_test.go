package target

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default target should validate: %v", err)
	}
}

func TestValidateRejectsZeroPointerSize(t *testing.T) {
	d := Default()
	d.SizeOfPointer = 0
	if err := d.Validate(); err == nil {
		t.Fatal("expected an error for zero pointer size")
	}
}

func TestLoadTOMLOverridesOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.toml")
	content := "[target]\nsize_of_pointer = 4\nalign_of_pointer = 4\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	base := Default()
	merged, err := LoadTOML(path, base)
	if err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}
	if merged.SizeOfPointer != 4 || merged.AlignOfPointer != 4 {
		t.Fatalf("expected overridden pointer size/align, got %+v", merged)
	}
	if merged.CSizeInt != base.CSizeInt {
		t.Fatalf("expected untouched fields to keep base values, got %d", merged.CSizeInt)
	}
}

func TestLoadTOMLWithoutTargetTableReturnsBase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.toml")
	if err := os.WriteFile(path, []byte("# no target table\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	base := Default()
	merged, err := LoadTOML(path, base)
	if err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}
	if merged != base {
		t.Fatalf("expected base descriptor unchanged, got %+v", merged)
	}
}
