// Package symbols implements the module symbol graph: the entity/
// namespace symbol model of the data model (§3) and the import-
// resolution and symbol-table-construction algorithm of the semantic
// analyser's entry point, steps 1–2 (§4.4).
package symbols

import "surge/internal/ast"

// Kind distinguishes an entity symbol, which carries one or more
// declarations of the same name (an overload set), from a namespace
// symbol, which carries child symbols and models a module or a wildcard
// import root.
type Kind uint8

const (
	KindEntity Kind = iota
	KindNamespace
)

// Symbol is either an entity symbol or a namespace symbol.
type Symbol struct {
	Kind Kind
	Name string

	// Entity: the overload set of declarations sharing this name.
	Decls []ast.ItemID

	// Namespace: child symbols, keyed by name.
	Children *Namespace
}
