// Package target describes the compilation target: pointer width, C FFI
// sizes/alignments, and source-language primitive sizes. Default builds the
// built-in descriptor and LoadTOML overlays a TOML file on a base one.
package target

import "fmt"

// Descriptor is the target descriptor: pointer width, C FFI sizes and
// alignments, and source-language primitive sizes.
type Descriptor struct {
	SizeOfPointer  uint32 `toml:"size_of_pointer"`
	AlignOfPointer uint32 `toml:"align_of_pointer"`

	// C FFI sizes/alignments, for extern declarations using C calling
	// convention and C-variadic promotion rules.
	CSizeBool     uint32 `toml:"c_size_bool"`
	CAlignBool    uint32 `toml:"c_align_bool"`
	CSizeChar     uint32 `toml:"c_size_char"`
	CAlignChar    uint32 `toml:"c_align_char"`
	CSizeShort    uint32 `toml:"c_size_short"`
	CAlignShort   uint32 `toml:"c_align_short"`
	CSizeInt      uint32 `toml:"c_size_int"`
	CAlignInt     uint32 `toml:"c_align_int"`
	CSizeLong     uint32 `toml:"c_size_long"`
	CAlignLong    uint32 `toml:"c_align_long"`
	CSizeLongLong uint32 `toml:"c_size_long_long"`
	CAlignLongLong uint32 `toml:"c_align_long_long"`
	CSizeFloat    uint32 `toml:"c_size_float"`
	CAlignFloat   uint32 `toml:"c_align_float"`
	CSizeDouble   uint32 `toml:"c_size_double"`
	CAlignDouble  uint32 `toml:"c_align_double"`
	CharIsSigned  bool   `toml:"char_is_signed"`

	// Source-language primitive sizes/alignments.
	SrcSizeBool  uint32 `toml:"src_size_bool"`
	SrcAlignBool uint32 `toml:"src_align_bool"`
	SrcSizeInt   uint32 `toml:"src_size_int"`
	SrcAlignInt  uint32 `toml:"src_align_int"`
	SrcSizeFloat uint32 `toml:"src_size_float"`
	SrcAlignFloat uint32 `toml:"src_align_float"`
}

// Default returns the default 64-bit target descriptor (LP64-like: 8-byte
// pointers, 4-byte C int, 8-byte C long, IEEE-754 float/double).
func Default() Descriptor {
	return Descriptor{
		SizeOfPointer:  8,
		AlignOfPointer: 8,

		CSizeBool:  1,
		CAlignBool: 1,
		CSizeChar:  1,
		CAlignChar: 1,
		CSizeShort: 2,
		CAlignShort: 2,
		CSizeInt:   4,
		CAlignInt:  4,
		CSizeLong:  8,
		CAlignLong: 8,
		CSizeLongLong: 8,
		CAlignLongLong: 8,
		CSizeFloat:  4,
		CAlignFloat: 4,
		CSizeDouble: 8,
		CAlignDouble: 8,
		CharIsSigned: true,

		SrcSizeBool:  1,
		SrcAlignBool: 1,
		SrcSizeInt:   4,
		SrcAlignInt:  4,
		SrcSizeFloat: 4,
		SrcAlignFloat: 4,
	}
}

// Validate reports an error if the descriptor has nonsensical
// (zero-sized or misaligned) fields. A target, once selected, is assumed
// valid for the lifetime of the Context.
func (d Descriptor) Validate() error {
	if d.SizeOfPointer == 0 || d.AlignOfPointer == 0 {
		return fmt.Errorf("target: pointer size/align must be nonzero")
	}
	if d.SizeOfPointer%d.AlignOfPointer != 0 {
		return fmt.Errorf("target: pointer size %d not a multiple of align %d", d.SizeOfPointer, d.AlignOfPointer)
	}
	return nil
}
