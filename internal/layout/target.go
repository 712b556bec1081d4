package layout

// Target describes ABI-relevant facts about the platform a module is
// being compiled for: pointer geometry, C FFI primitive sizes/alignments
// for foreign declarations, and source-language primitive sizes/alignments.
// A default target is selected once at context creation and must not
// change afterward.
type Target struct {
	Triple   string // e.g. "x86_64-linux-gnu"
	PtrSize  int    // bytes
	PtrAlign int    // bytes

	// C FFI sizes/alignments, for extern "C" declarations.
	CBoolSize, CBoolAlign           int
	CCharSize, CCharAlign           int
	CShortSize, CShortAlign         int
	CIntSize, CIntAlign             int
	CLongSize, CLongAlign           int
	CLongLongSize, CLongLongAlign   int
	CFloatSize, CFloatAlign         int
	CDoubleSize, CDoubleAlign       int

	// Source-language primitive sizes/alignments.
	BoolSize, BoolAlign   int
	IntSize, IntAlign     int
	FloatSize, FloatAlign int

	CharIsSigned bool
}

// X86_64LinuxGNU returns the target specification for 64-bit Linux on x86,
// the only target this implementation ships.
func X86_64LinuxGNU() Target {
	return Target{
		Triple:   "x86_64-linux-gnu",
		PtrSize:  8,
		PtrAlign: 8,

		CBoolSize: 1, CBoolAlign: 1,
		CCharSize: 1, CCharAlign: 1,
		CShortSize: 2, CShortAlign: 2,
		CIntSize: 4, CIntAlign: 4,
		CLongSize: 8, CLongAlign: 8,
		CLongLongSize: 8, CLongLongAlign: 8,
		CFloatSize: 4, CFloatAlign: 4,
		CDoubleSize: 8, CDoubleAlign: 8,

		BoolSize: 1, BoolAlign: 1,
		IntSize: 4, IntAlign: 4,
		FloatSize: 4, FloatAlign: 4,

		CharIsSigned: true,
	}
}
