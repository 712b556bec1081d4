package symbols

import "surge/internal/ast"

// Namespace is a flat, disjoint-by-name symbol table: a module's
// "imports" namespace (every name visible from its import declarations)
// or its "exports" namespace (every name it makes visible to importers).
type Namespace struct {
	byName map[string]*Symbol
}

// NewNamespace creates an empty namespace.
func NewNamespace() *Namespace {
	return &Namespace{byName: make(map[string]*Symbol)}
}

// Lookup returns the symbol bound to name, or nil if unbound.
func (n *Namespace) Lookup(name string) *Symbol {
	return n.byName[name]
}

// BindEntity adds decl to the overload set bound to name, creating an
// entity symbol if name is not yet bound. Returns false if name is
// already bound to a namespace symbol — a wildcard/query import
// colliding with a namespace name, one of the documented import errors.
func (n *Namespace) BindEntity(name string, decl ast.ItemID) bool {
	sym, ok := n.byName[name]
	if !ok {
		sym = &Symbol{Kind: KindEntity, Name: name}
		n.byName[name] = sym
		sym.Decls = append(sym.Decls, decl)
		return true
	}
	if sym.Kind != KindEntity {
		return false
	}
	sym.Decls = append(sym.Decls, decl)
	return true
}

// BindNamespace binds name to a (possibly existing) child namespace
// symbol and returns it. Returns nil if name is already bound to an
// entity symbol.
func (n *Namespace) BindNamespace(name string) *Symbol {
	sym, ok := n.byName[name]
	if !ok {
		sym = &Symbol{Kind: KindNamespace, Name: name, Children: NewNamespace()}
		n.byName[name] = sym
		return sym
	}
	if sym.Kind != KindNamespace {
		return nil
	}
	return sym
}

// Names returns every bound name, in no particular order.
func (n *Namespace) Names() []string {
	out := make([]string, 0, len(n.byName))
	for name := range n.byName {
		out = append(out, name)
	}
	return out
}

// MergeWildcard copies every binding from src into n, skipping names that
// would collide with an existing entity/namespace of a different kind —
// callers report ImportWildcardCollision for any name this refuses.
func (n *Namespace) MergeWildcard(src *Namespace) (collisions []string) {
	for name, sym := range src.byName {
		existing, ok := n.byName[name]
		if !ok {
			n.byName[name] = sym
			continue
		}
		if existing.Kind != sym.Kind {
			collisions = append(collisions, name)
			continue
		}
		if sym.Kind == KindEntity {
			existing.Decls = append(existing.Decls, sym.Decls...)
		}
	}
	return collisions
}
