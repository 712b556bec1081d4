// Package compiler wires the allocator, interner, diagnostics, dependency
// graph, AST modules, and IR modules into the single process-wide
// container a compilation invocation owns, per the data model's notion of
// "context". One Context exists per compilation; Destroy tears down every
// source, module, IR module, arena, type, and value reachable from it.
package compiler

import (
	"surge/internal/ast"
	"surge/internal/depgraph"
	"surge/internal/diag"
	"surge/internal/ir"
	"surge/internal/layout"
	"surge/internal/source"
	"surge/internal/symbols"
)

// diagCapacity bounds how many diagnostics a single compilation retains;
// well beyond anything a real module set would produce.
const diagCapacity = 1 << 16

// DeclID identifies a top-level declaration tracked by the declaration
// dependency graph, scoped to the owning module so that two modules can
// both declare item #1 without colliding.
type DeclID struct {
	Module *Module
	Item   ast.ItemID
}

// Context is the process-wide container for one compilation invocation.
type Context struct {
	Files    *source.FileSet
	Interner *source.Interner
	Target   layout.Target

	Diags *diag.Bag

	Modules   []*Module
	IR        *ir.Context
	irModules []*ir.Module

	// ModuleDeps orders modules by import dependency; DeclDeps orders
	// top-level declarations within the topological module order.
	ModuleDeps *depgraph.Graph[string]
	DeclDeps   *depgraph.Graph[DeclID]
}

// NewContext creates an empty context targeting the default platform.
func NewContext() *Context {
	return &Context{
		Files:      source.NewFileSet(),
		Interner:   source.NewInterner(),
		Target:     layout.X86_64LinuxGNU(),
		Diags:      diag.NewBag(diagCapacity),
		IR:         ir.NewContext(),
		ModuleDeps: depgraph.New[string](),
		DeclDeps:   depgraph.New[DeclID](),
	}
}

// NewModule registers a new translation unit rooted at sourceID and
// returns it. The caller still needs to populate its File via the parser
// interface before the module can be analysed.
func (c *Context) NewModule(path string, sourceID source.FileID) *Module {
	m := &Module{
		Path:     path,
		SourceID: sourceID,
		Files:    ast.NewFiles(1),
		Items:    ast.NewItems(64),
		Imports:  symbols.NewNamespace(),
		Exports:  symbols.NewNamespace(),
	}
	c.Modules = append(c.Modules, m)
	c.ModuleDeps.EnsureTracked(path)
	return m
}

// NewIRModule creates an IR module bound to this context's IR context and
// tracks it for enumeration.
func (c *Context) NewIRModule(name string) *ir.Module {
	m := ir.NewModule(c.IR, name)
	c.irModules = append(c.irModules, m)
	return m
}

// IRModules returns every IR module produced from this context, in
// creation order.
func (c *Context) IRModules() []*ir.Module {
	return c.irModules
}

// Destroy releases every arena owned transitively by this context.
// Pointers into any module's nodes or any IR module's values must not be
// used afterward.
func (c *Context) Destroy() {
	for _, m := range c.irModules {
		m.Destroy()
	}
	c.irModules = nil
	c.Modules = nil
}
