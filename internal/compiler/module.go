package compiler

import (
	"surge/internal/ast"
	"surge/internal/source"
	"surge/internal/symbols"
)

// Module is one translation unit: a source id, its own node arena, its
// top-level file, and the two namespaces ("imports" and "exports") the
// analyser populates during import resolution.
type Module struct {
	Path     string
	SourceID source.FileID

	Files *ast.Files
	File  ast.FileID
	Items *ast.Items

	Imports *symbols.Namespace
	Exports *symbols.Namespace

	importsResolved      bool
	dependenciesGenerated bool
}

// SetFile records this module's parsed top-level file, produced by the
// parser per the documented parser interface.
func (m *Module) SetFile(id ast.FileID) {
	m.File = id
}

// ImportsResolved reports whether import resolution has run for this
// module.
func (m *Module) ImportsResolved() bool { return m.importsResolved }

// MarkImportsResolved flags this module as having completed import
// resolution.
func (m *Module) MarkImportsResolved() { m.importsResolved = true }

// DependenciesGenerated reports whether the declaration dependency graph
// has been populated for this module's top-level declarations.
func (m *Module) DependenciesGenerated() bool { return m.dependenciesGenerated }

// MarkDependenciesGenerated flags this module as having had its
// declaration dependencies added to the context's DeclDeps graph.
func (m *Module) MarkDependenciesGenerated() { m.dependenciesGenerated = true }
