package symbols

import (
	"surge/internal/ast"
	"surge/internal/source"
)

// ModuleRef is the view of one translation unit the import-resolution
// and symbol-table algorithm needs. The caller (internal/compiler) builds
// one per module it owns; this package never imports compiler, so
// ModuleRef is the seam that keeps compiler -> symbols a one-way edge.
type ModuleRef struct {
	// Key identifies this module in the import dependency graph — the
	// canonical, slash-joined module path.
	Key string

	Items *ast.Items
	File  *ast.File

	// Imports and Exports are populated by BuildSymbolTables; the caller
	// allocates them empty (symbols.NewNamespace()) beforehand.
	Imports *Namespace
	Exports *Namespace
}

// Lookup resolves a module path (as written in an import declaration) to
// an already-registered ModuleRef, or reports that it doesn't exist.
type Lookup func(key string) (*ModuleRef, bool)

// ModulePathKey renders an import's dotted module path as the canonical
// dependency-graph key used to look up the referenced ModuleRef.
func ModulePathKey(interner *source.Interner, path []source.StringID) string {
	key := ""
	for idx, id := range path {
		if idx > 0 {
			key += "/"
		}
		key += interner.MustLookup(id)
	}
	return key
}

// isIdentifier reports whether s is a legal identifier: a letter or
// underscore followed by letters, digits, or underscores.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for idx, r := range s {
		switch {
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			continue
		case idx > 0 && r >= '0' && r <= '9':
			continue
		default:
			return false
		}
	}
	return true
}
