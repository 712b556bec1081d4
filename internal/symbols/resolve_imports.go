package symbols

import (
	"fmt"

	"surge/internal/ast"
	"surge/internal/depgraph"
	"surge/internal/diag"
	"surge/internal/source"
)

// ResolveModuleImports walks self's top-level import declarations,
// resolves each referenced module path through lookup, and records an
// edge self -> referenced in graph. It does not detect cycles itself —
// the caller runs graph.OrderedEntities() once every module has been
// visited, since a cycle may only close once the last edge is added.
func ResolveModuleImports(interner *source.Interner, diags *diag.Bag, graph *depgraph.Graph[string], self *ModuleRef, lookup Lookup) {
	graph.EnsureTracked(self.Key)

	for _, itemID := range self.File.Items {
		item := self.Items.Get(itemID)
		if item == nil || item.Kind != ast.ItemImport {
			continue
		}
		imp, ok := self.Items.Import(itemID)
		if !ok {
			continue
		}

		key := ModulePathKey(interner, imp.Module)
		if key == self.Key {
			diags.Add(ptr(diag.NewError(diag.ImportSelfImport, item.Span,
				fmt.Sprintf("module %q imports itself", key))))
			continue
		}

		ref, found := lookup(key)
		if !found {
			diags.Add(ptr(diag.NewError(diag.ImportModuleNotFound, item.Span,
				fmt.Sprintf("module %q not found", key))))
			continue
		}

		graph.AddDependency(self.Key, ref.Key)
	}
}

// ReportImportCycle turns a depgraph cycle result into the documented
// fatal import-cycle diagnostic. span is the best-effort location to
// attach it to (the caller's current module file), since the cycle
// result itself only carries module keys, not source spans.
func ReportImportCycle(diags *diag.Bag, span source.Span, res depgraph.Result[string]) {
	diags.Add(ptr(diag.NewFatal(diag.ImportCycle, span,
		fmt.Sprintf("cyclic module import: %q imports %q, closing a cycle", res.From, res.To))))
}

func ptr[T any](v T) *T { return &v }
