package diag

import (
	"fmt"
)

type Code uint16

const (
	// Unknown error - placeholder, never produced intentionally.
	UnknownCode Code = 0

	// Import resolution.
	ImportInfo               Code = 1000
	ImportModuleNotFound     Code = 1001
	ImportCycle              Code = 1002
	ImportAliasNotIdentifier Code = 1003
	ImportAliasRedeclared    Code = 1004
	ImportWildcardCollision  Code = 1005
	ImportQueryPathNotNS     Code = 1006
	ImportQueryNotFound      Code = 1007
	ImportSelfImport         Code = 1008

	// Name resolution.
	NameInfo            Code = 2000
	NameUnknownIdent     Code = 2001
	NameNotANamespace    Code = 2002
	NameNotAType         Code = 2003
	NameWrongValueUse    Code = 2004
	NameDuplicateSymbol  Code = 2005
	NameAmbiguousLookup  Code = 2006
	NameTemplateArity    Code = 2007
	NameUnsupportedTmpl  Code = 2008

	// Type checking.
	SemaInfo                   Code = 3000
	SemaInvalidConversion      Code = 3001
	SemaCallArity              Code = 3002
	SemaNotIndexable           Code = 3003
	SemaNotAStruct              Code = 3004
	SemaUnknownMember          Code = 3005
	SemaNotModifiable          Code = 3006
	SemaReturnMismatch         Code = 3007
	SemaInvalidBinaryOperands  Code = 3008
	SemaInvalidUnaryOperand    Code = 3009
	SemaDesignatorsUnsupported Code = 3010
	SemaVariantUnsupported     Code = 3011
	SemaEnumUnsupported        Code = 3012
	SemaInvalidCast            Code = 3013
	SemaReturnOutsideFunction  Code = 3014
	SemaInvalidBoolContext     Code = 3015
	SemaMissingReturn          Code = 3016
	SemaRecursiveUnsized       Code = 3017

	// Constant evaluation.
	SemaConstantRequired Code = 3500
	SemaConstantOverflow Code = 3501
	SemaConstCycle       Code = 3502

	// Cyclic declaration dependency.
	DepCycle Code = 4000

	// Internal consistency violations — programmer-visible ICE.
	ICEInvariant Code = 9000
)

var codeDescription = map[Code]string{
	UnknownCode: "Unknown error",

	ImportInfo:               "Import information",
	ImportModuleNotFound:     "Module not found",
	ImportCycle:              "Cyclic module import",
	ImportAliasNotIdentifier: "Derived import alias is not a legal identifier",
	ImportAliasRedeclared:    "Import alias redeclared",
	ImportWildcardCollision:  "Wildcard or query import collides with an existing namespace symbol",
	ImportQueryPathNotNS:     "Import query path segment is not a namespace",
	ImportQueryNotFound:      "Import query target does not exist",
	ImportSelfImport:         "Module imports itself",

	NameInfo:            "Name resolution information",
	NameUnknownIdent:    "Unknown identifier",
	NameNotANamespace:   "Identifier is not a namespace",
	NameNotAType:        "Identifier is not a type",
	NameWrongValueUse:   "Declaration used in the wrong position",
	NameDuplicateSymbol: "Duplicate symbol in scope",
	NameAmbiguousLookup: "Ambiguous name resolution",
	NameTemplateArity:   "Template instantiation arity mismatch",
	NameUnsupportedTmpl: "Template instantiation is not supported",

	SemaInfo:                   "Type checking information",
	SemaInvalidConversion:      "Invalid conversion",
	SemaCallArity:              "Call argument count mismatch",
	SemaNotIndexable:           "Type is not indexable",
	SemaNotAStruct:             "Member access on a non-struct type",
	SemaUnknownMember:          "Unknown member",
	SemaNotModifiable:          "Left-hand side of assignment is not mutable",
	SemaReturnMismatch:         "Return value type mismatch",
	SemaInvalidBinaryOperands:  "Invalid operands for binary operator",
	SemaInvalidUnaryOperand:    "Invalid operand for unary operator",
	SemaDesignatorsUnsupported: "Initialiser designations are not supported",
	SemaVariantUnsupported:     "Variant types are not supported",
	SemaEnumUnsupported:        "Enum types are not supported",
	SemaInvalidCast:            "Invalid cast",
	SemaReturnOutsideFunction:  "Return statement outside a function",
	SemaInvalidBoolContext:     "Invalid boolean context",
	SemaMissingReturn:          "Missing return in function",
	SemaRecursiveUnsized:       "Recursive value type has infinite size",

	SemaConstantRequired: "Constant expression required",
	SemaConstantOverflow: "Constant overflow",
	SemaConstCycle:       "Constant evaluation cycle detected",

	DepCycle: "Cyclic declaration dependency",

	ICEInvariant: "Internal compiler exception",
}

// ID renders a stable, component-prefixed identifier for the code, e.g.
// "SEM3001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("IMP%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("RES%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("DEP%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("ICE%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
