package compiler

import (
	"surge/internal/depgraph"
	"surge/internal/source"
	"surge/internal/symbols"
)

// ResolveImports runs the semantic analyser's entry-point steps 1-2
// (§4.4) across every module registered on this context: import
// resolution followed by import/export symbol-table construction. It
// reports a fatal diagnostic and returns false on a cyclic import;
// otherwise every module's Imports/Exports namespace is fully populated
// and its ImportsResolved flag is set.
func (c *Context) ResolveImports() bool {
	refs := make(map[string]*symbols.ModuleRef, len(c.Modules))
	for _, m := range c.Modules {
		refs[m.Path] = &symbols.ModuleRef{
			Key:     m.Path,
			Items:   m.Items,
			File:    m.Files.Get(m.File),
			Imports: m.Imports,
			Exports: m.Exports,
		}
	}
	lookup := func(key string) (*symbols.ModuleRef, bool) {
		ref, ok := refs[key]
		return ref, ok
	}

	for _, m := range c.Modules {
		symbols.ResolveModuleImports(c.Interner, c.Diags, c.ModuleDeps, refs[m.Path], lookup)
	}

	result := c.ModuleDeps.OrderedEntities()
	if result.Status == depgraph.StatusCycle {
		symbols.ReportImportCycle(c.Diags, c.moduleSpan(result.From), result)
		return false
	}

	symbols.BuildSymbolTables(c.Interner, c.Diags, result.Sequence, lookup)
	for _, m := range c.Modules {
		m.MarkImportsResolved()
	}
	return true
}

// moduleSpan returns the top-level file span of the module registered
// under path, or a zero span if the module isn't found — the graph can
// name an entity tracked via EnsureTracked for a module reference that
// failed to resolve to an actual Module.
func (c *Context) moduleSpan(path string) source.Span {
	for _, m := range c.Modules {
		if m.Path == path {
			if f := m.Files.Get(m.File); f != nil {
				return f.Span
			}
		}
	}
	return source.Span{}
}
