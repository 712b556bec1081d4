package symbols

import (
	"fmt"
	"path"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/source"
)

// BuildSymbolTables builds every module's imports and exports namespaces,
// in the given module-import topological order (dependency-first, as
// produced by depgraph.Graph[string].OrderedEntities()). lookup must
// resolve every key order names, including self, to the same ModuleRef
// instances ResolveModuleImports was run against.
func BuildSymbolTables(interner *source.Interner, diags *diag.Bag, order []string, lookup Lookup) {
	for _, key := range order {
		self, ok := lookup(key)
		if !ok {
			continue
		}
		resolveModuleImportNamespace(interner, diags, self, lookup)
		collectModuleExports(interner, self)
	}
}

// resolveModuleImportNamespace populates self.Imports (and, for
// re-exporting wildcard imports, self.Exports) from self's import
// declarations. The referenced modules are guaranteed to already have
// their own Exports populated, since order is dependency-first.
func resolveModuleImportNamespace(interner *source.Interner, diags *diag.Bag, self *ModuleRef, lookup Lookup) {
	for _, itemID := range self.File.Items {
		item := self.Items.Get(itemID)
		if item == nil || item.Kind != ast.ItemImport {
			continue
		}
		imp, ok := self.Items.Import(itemID)
		if !ok {
			continue
		}

		refKey := ModulePathKey(interner, imp.Module)
		ref, found := lookup(refKey)
		if !found {
			continue // already reported by ResolveModuleImports
		}

		switch {
		case imp.ImportAll:
			resolveWildcardImport(diags, item.Span, self, ref)
		case imp.HasOne:
			resolveNamedImport(interner, diags, item.Span, self, ref, imp.One.Name, imp.One.Alias)
		case len(imp.Group) > 0:
			for _, pair := range imp.Group {
				resolveNamedImport(interner, diags, item.Span, self, ref, pair.Name, pair.Alias)
			}
		default:
			resolveWholeModuleImport(interner, diags, item.Span, self, ref, imp)
		}
	}
}

// resolveWholeModuleImport binds a namespace symbol named for the import
// alias (explicit, or derived from the last module path segment — the
// stand-in here for "the file name" in a path-segment-addressed module
// system) and shallow-copies the referenced module's exports into it.
func resolveWholeModuleImport(interner *source.Interner, diags *diag.Bag, span source.Span, self, ref *ModuleRef, imp *ast.ImportItem) {
	alias, ok := deriveModuleAlias(interner, imp)
	if !ok {
		diags.Add(ptr(diag.NewError(diag.ImportAliasNotIdentifier, span,
			fmt.Sprintf("derived import alias for module %q is not a legal identifier", ref.Key))))
		return
	}

	sym := self.Imports.BindNamespace(alias)
	if sym == nil {
		diags.Add(ptr(diag.NewError(diag.ImportAliasRedeclared, span,
			fmt.Sprintf("import alias %q redeclared", alias))))
		return
	}
	if collisions := sym.Children.MergeWildcard(ref.Exports); len(collisions) > 0 {
		for _, name := range collisions {
			diags.Add(ptr(diag.NewError(diag.ImportWildcardCollision, span,
				fmt.Sprintf("import of module %q: %q collides with an existing namespace symbol", ref.Key, name))))
		}
	}
}

// deriveModuleAlias returns the import's explicit alias, or — absent one
// — the module path's final segment, validated as a legal identifier per
// the documented file-name-derivation rule.
func deriveModuleAlias(interner *source.Interner, imp *ast.ImportItem) (string, bool) {
	if imp.ModuleAlias != source.NoStringID {
		return interner.MustLookup(imp.ModuleAlias), true
	}
	if len(imp.Module) == 0 {
		return "", false
	}
	last := interner.MustLookup(imp.Module[len(imp.Module)-1])
	base := path.Base(last)
	if ext := path.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	if !isIdentifier(base) {
		return "", false
	}
	return base, true
}

// resolveWildcardImport copies every exported symbol of ref into self's
// imports namespace.
func resolveWildcardImport(diags *diag.Bag, span source.Span, self, ref *ModuleRef) {
	if collisions := self.Imports.MergeWildcard(ref.Exports); len(collisions) > 0 {
		for _, name := range collisions {
			diags.Add(ptr(diag.NewError(diag.ImportWildcardCollision, span,
				fmt.Sprintf("wildcard import of module %q: %q collides with an existing namespace symbol", ref.Key, name))))
		}
	}
}

// resolveNamedImport walks the (here, single-identifier) query path
// "name" through ref's exports and binds the result into self's imports
// under alias (or name, if no alias was given).
func resolveNamedImport(interner *source.Interner, diags *diag.Bag, span source.Span, self, ref *ModuleRef, name, alias source.StringID) {
	nameStr := interner.MustLookup(name)
	sym := ref.Exports.Lookup(nameStr)
	if sym == nil {
		diags.Add(ptr(diag.NewError(diag.ImportQueryNotFound, span,
			fmt.Sprintf("module %q has no exported symbol %q", ref.Key, nameStr))))
		return
	}

	bindName := nameStr
	if alias != source.NoStringID {
		bindName = interner.MustLookup(alias)
	}

	switch sym.Kind {
	case KindEntity:
		for _, decl := range sym.Decls {
			if !self.Imports.BindEntity(bindName, decl) {
				diags.Add(ptr(diag.NewError(diag.ImportWildcardCollision, span,
					fmt.Sprintf("import of %q: %q collides with an existing namespace symbol", ref.Key, bindName))))
				return
			}
		}
	case KindNamespace:
		child := self.Imports.BindNamespace(bindName)
		if child == nil {
			diags.Add(ptr(diag.NewError(diag.ImportWildcardCollision, span,
				fmt.Sprintf("import of %q: %q collides with an existing entity symbol", ref.Key, bindName))))
			return
		}
		child.Children.MergeWildcard(sym.Children)
	}
}

// collectModuleExports appends every exported top-level, non-import
// declaration to an entity symbol in self.Exports. Entity symbols
// accumulate multiple declarations to model overload sets.
func collectModuleExports(interner *source.Interner, self *ModuleRef) {
	for _, itemID := range self.File.Items {
		item := self.Items.Get(itemID)
		if item == nil {
			continue
		}

		var name source.StringID
		var exported bool

		switch item.Kind {
		case ast.ItemFn:
			fn, ok := self.Items.Fn(itemID)
			if !ok {
				continue
			}
			name, exported = fn.Name, fn.IsPublic()
		case ast.ItemLet:
			let, ok := self.Items.Let(itemID)
			if !ok {
				continue
			}
			name, exported = let.Name, let.Visibility == ast.VisPublic
		case ast.ItemConst:
			cst, ok := self.Items.Const(itemID)
			if !ok {
				continue
			}
			name, exported = cst.Name, cst.Visibility == ast.VisPublic
		case ast.ItemType:
			typ, ok := self.Items.Type(itemID)
			if !ok {
				continue
			}
			name, exported = typ.Name, typ.Visibility == ast.VisPublic
		case ast.ItemTag:
			tag, ok := self.Items.Tag(itemID)
			if !ok {
				continue
			}
			name, exported = tag.Name, tag.Visibility == ast.VisPublic
		default:
			continue // import, extern, pragma, macro: no single exportable name
		}

		if !exported {
			continue
		}
		self.Exports.BindEntity(interner.MustLookup(name), itemID)
	}
}
