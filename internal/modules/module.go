// Package modules implements the loader/driver boundary named in
// spec.md §4.8/§5/§6: per-directory module loading, the import
// resolver the analyzer consumes, and the concurrent cross-module
// driver. Grounded on the teacher's internal/modules/module.go
// (Module{Name, Dir, Exports, SymbolTable, Imports}, the
// HeadersAnalyzed/BodiesAnalyzed phase flags) and loader.go
// (Loader{LoadedModules, ModulesByName, Processing}).
package modules

import (
	"sync"

	"github.com/veritype/veritype/internal/analyzer"
	"github.com/veritype/veritype/internal/ast"
	"github.com/veritype/veritype/internal/diagnostics"
	"github.com/veritype/veritype/internal/token"
	"github.com/veritype/veritype/internal/types"
)

// ImportDescriptor is the Loader contract's request shape (§6):
// `import_descriptor = {src, items, all, span}`.
type ImportDescriptor struct {
	Src   string
	Items []string
	All   bool
	Span  token.Token
}

// ParserFunc produces an AST from source text. The parser itself is an
// external collaborator (spec.md §1 Non-goals); this package only
// depends on the function shape it must have.
type ParserFunc func(file string, src []byte) (*ast.Program, error)

// Module is one analyzed directory/package: its merged source files,
// its analyzer, and the export table other modules' imports resolve
// against.
type Module struct {
	Name  string
	Dir   string
	Files []string

	Program *ast.Program

	mu              sync.RWMutex
	analyzerInst    *analyzer.Analyzer
	Exports         map[string]types.Type
	HeadersAnalyzed bool
	BodiesAnalyzed  bool
}

// Export returns the resolved type for an exported name, under the
// read lock (a module's exports may still be filling in while the
// driver analyzes it concurrently with a dependent).
func (m *Module) Export(name string) (types.Type, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.Exports[name]
	return t, ok
}

// AllExports returns a shallow copy of the module's export table.
func (m *Module) AllExports() map[string]types.Type {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]types.Type, len(m.Exports))
	for k, v := range m.Exports {
		out[k] = v
	}
	return out
}

// Errors returns the diagnostics this module's analyzer has raised so
// far (safe to call while analysis is still running; the slice is
// only appended to, never mutated in place, by the analyzer).
func (m *Module) Errors() []*diagnostics.DiagnosticError {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.analyzerInst == nil {
		return nil
	}
	return m.analyzerInst.Errors()
}

// importBinding is one local-name-to-requested-export mapping
// discovered by the import pre-pass (§4.8): `{ Foo as Bar }` binds
// local "Bar" to the remote export "Foo".
type importBinding struct {
	Local     string
	Requested string // "" for a namespace/require-style "all exports" binding
}

// importSite is one discovered import (an ImportDeclaration or a
// `require(...)` call) paired with the local bindings it introduces.
type importSite struct {
	Desc     ImportDescriptor
	Bindings []importBinding
	Namespace bool // true: Bindings has exactly one entry bound to every export as an object
}
