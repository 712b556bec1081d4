package target

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// tomlFile decodes a Descriptor from a [target] table so a project can
// override only the fields it cares about; LoadTOML keeps the base
// descriptor's value for every field the file does not set.
type tomlFile struct {
	Target Descriptor `toml:"target"`
}

// LoadTOML reads a target override file and applies any fields present
// in its [target] table on top of base, following the project manifest's
// own toml.DecodeFile + Meta.IsDefined idiom so zero-valued fields that
// were never written are not mistaken for explicit zero overrides.
func LoadTOML(path string, base Descriptor) (Descriptor, error) {
	var file tomlFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%s: failed to parse target TOML: %w", path, err)
	}
	if !meta.IsDefined("target") {
		return base, nil
	}

	merged := base
	for _, key := range meta.Keys() {
		if len(key) != 2 || key[0] != "target" {
			continue
		}
		applyField(&merged, &file.Target, key[1])
	}
	return merged, nil
}

func applyField(dst, src *Descriptor, field string) {
	switch field {
	case "size_of_pointer":
		dst.SizeOfPointer = src.SizeOfPointer
	case "align_of_pointer":
		dst.AlignOfPointer = src.AlignOfPointer
	case "c_size_bool":
		dst.CSizeBool = src.CSizeBool
	case "c_align_bool":
		dst.CAlignBool = src.CAlignBool
	case "c_size_char":
		dst.CSizeChar = src.CSizeChar
	case "c_align_char":
		dst.CAlignChar = src.CAlignChar
	case "c_size_short":
		dst.CSizeShort = src.CSizeShort
	case "c_align_short":
		dst.CAlignShort = src.CAlignShort
	case "c_size_int":
		dst.CSizeInt = src.CSizeInt
	case "c_align_int":
		dst.CAlignInt = src.CAlignInt
	case "c_size_long":
		dst.CSizeLong = src.CSizeLong
	case "c_align_long":
		dst.CAlignLong = src.CAlignLong
	case "c_size_long_long":
		dst.CSizeLongLong = src.CSizeLongLong
	case "c_align_long_long":
		dst.CAlignLongLong = src.CAlignLongLong
	case "c_size_float":
		dst.CSizeFloat = src.CSizeFloat
	case "c_align_float":
		dst.CAlignFloat = src.CAlignFloat
	case "c_size_double":
		dst.CSizeDouble = src.CSizeDouble
	case "c_align_double":
		dst.CAlignDouble = src.CAlignDouble
	case "char_is_signed":
		dst.CharIsSigned = src.CharIsSigned
	case "src_size_bool":
		dst.SrcSizeBool = src.SrcSizeBool
	case "src_align_bool":
		dst.SrcAlignBool = src.SrcAlignBool
	case "src_size_int":
		dst.SrcSizeInt = src.SrcSizeInt
	case "src_align_int":
		dst.SrcAlignInt = src.SrcAlignInt
	case "src_size_float":
		dst.SrcSizeFloat = src.SrcSizeFloat
	case "src_align_float":
		dst.SrcAlignFloat = src.SrcAlignFloat
	}
}
