package types

import (
	"fmt"
	"strings"

	"surge/internal/source"
)

// Label returns a user-friendly textual label for a TypeID, for
// diagnostics.
func Label(typesIn *Interner, id TypeID) string {
	return labelDepth(typesIn, id, 0)
}

func labelDepth(typesIn *Interner, id TypeID, depth int) string {
	if id == NoTypeID || typesIn == nil {
		return "?"
	}
	if depth > 8 {
		return "..."
	}
	tt, ok := typesIn.Lookup(id)
	if !ok {
		return "?"
	}
	switch tt.Kind {
	case KindPoison:
		return "poison"
	case KindUnknown:
		return "unknown"
	case KindInfer:
		return "var"
	case KindTypeOfType:
		return "type"
	case KindVoid:
		return "void"
	case KindNoReturn:
		return "noreturn"
	case KindBool:
		return "bool"
	case KindInt:
		return formatIntType(tt.IntWidth, tt.IntSigned)
	case KindFloat:
		return formatFloatType(tt.FloatWidth)
	case KindErrorPair:
		return labelDepth(typesIn, tt.OkType, depth+1) + "!" + labelDepth(typesIn, tt.ErrType, depth+1)
	case KindNameRef:
		if info, ok := typesIn.NameRefInfo(id); ok {
			return lookupNameFallback(typesIn.Strings, info.Name)
		}
		return "?"
	case KindOverloadSet:
		return "<overload-set>"
	case KindNilable:
		return labelDepth(typesIn, tt.Elem, depth+1) + "?"
	case KindArray:
		return fmt.Sprintf("%s[%d]", labelDepth(typesIn, tt.Elem, depth+1), tt.Count)
	case KindSlice:
		return "[" + labelDepth(typesIn, tt.Elem, depth+1) + "]"
	case KindReference:
		if tt.Mutable {
			return "&mut " + labelDepth(typesIn, tt.Elem, depth+1)
		}
		return "&" + labelDepth(typesIn, tt.Elem, depth+1)
	case KindPointer:
		return "*" + labelDepth(typesIn, tt.Elem, depth+1)
	case KindBuffer:
		return fmt.Sprintf("buffer[%d]", tt.Count)
	case KindFunction:
		return formatFnType(typesIn, id, depth)
	case KindStruct:
		name, ok := structName(typesIn, id)
		if !ok {
			return "?"
		}
		return lookupNameFallback(typesIn.Strings, name)
	case KindVariant:
		name, ok := variantName(typesIn, id)
		if !ok {
			return "?"
		}
		return lookupNameFallback(typesIn.Strings, name)
	case KindEnum:
		name, ok := enumName(typesIn, id)
		if !ok {
			return "?"
		}
		return lookupNameFallback(typesIn.Strings, name)
	case KindAlias, KindStrictAlias:
		name, ok := aliasName(typesIn, id)
		if !ok {
			return "?"
		}
		return lookupNameFallback(typesIn.Strings, name)
	case KindTemplateParameter:
		if info, ok := typesIn.TemplateParamInfo(id); ok {
			return lookupNameFallback(typesIn.Strings, info.Name)
		}
		return "T"
	default:
		return "?"
	}
}

func structName(typesIn *Interner, id TypeID) (source.StringID, bool) {
	info, ok := typesIn.StructInfo(id)
	if !ok {
		return source.NoStringID, false
	}
	return info.Name, true
}

func variantName(typesIn *Interner, id TypeID) (source.StringID, bool) {
	info, ok := typesIn.VariantInfo(id)
	if !ok {
		return source.NoStringID, false
	}
	return info.Name, true
}

func enumName(typesIn *Interner, id TypeID) (source.StringID, bool) {
	info, ok := typesIn.EnumInfo(id)
	if !ok {
		return source.NoStringID, false
	}
	return info.Name, true
}

func aliasName(typesIn *Interner, id TypeID) (source.StringID, bool) {
	info, ok := typesIn.AliasInfo(id)
	if !ok {
		return source.NoStringID, false
	}
	return info.Name, true
}

func formatFnType(typesIn *Interner, id TypeID, depth int) string {
	info, ok := typesIn.FnInfo(id)
	if !ok {
		return "fn(?)"
	}
	params := make([]string, len(info.Params))
	for i, p := range info.Params {
		params[i] = labelDepth(typesIn, p, depth+1)
	}
	if info.Variadic {
		params = append(params, "...")
	}
	return "fn(" + strings.Join(params, ", ") + ") -> " + labelDepth(typesIn, info.Result, depth+1)
}

func lookupName(stringsIn *source.Interner, id source.StringID) (string, bool) {
	if stringsIn == nil {
		return "", false
	}
	name, ok := stringsIn.Lookup(id)
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

func lookupNameFallback(stringsIn *source.Interner, id source.StringID) string {
	if name, ok := lookupName(stringsIn, id); ok {
		return name
	}
	return "?"
}

func formatIntType(width Width, signed bool) string {
	prefix := "i"
	if !signed {
		prefix = "u"
	}
	if width == WidthAny {
		if signed {
			return "int"
		}
		return "uint"
	}
	return fmt.Sprintf("%s%d", prefix, width)
}

func formatFloatType(width Width) string {
	if width == WidthAny {
		return "float"
	}
	return fmt.Sprintf("f%d", width)
}
