// Package analyzer implements semantic analysis: expression typing
// (type_of), member access, call/construct resolution, declaration
// handling, control-flow narrowing, and structural assignability, per
// spec.md §3/§4. It follows the teacher's walker architecture
// (internal/analyzer/analyzer.go: a long-lived Analyzer wrapping a
// per-file walker with deduplicated error collection) without copying
// its Hindley-Milner/trait-dictionary semantics, which this
// specification does not use.
package analyzer

import (
	"fmt"
	"sync"

	"github.com/veritype/veritype/internal/ast"
	"github.com/veritype/veritype/internal/diagnostics"
	"github.com/veritype/veritype/internal/scope"
	"github.com/veritype/veritype/internal/types"
)

// BuiltinResolver is the analyzer's view of the ambient library
// (internal/builtinlib): keyword prototype members and any
// proto-descriptor-derived ambient declarations. Kept as an interface
// to avoid analyzer depending on the concrete loader.
type BuiltinResolver interface {
	// Lookup returns the ambient type bound to name at module scope, if any.
	Lookup(name string) (types.Type, bool)
	// KeywordMembers returns the prototype member set for a primitive
	// keyword type (e.g. "string", "number", "Array" element wrapper).
	KeywordMembers(keyword string) ([]types.Member, bool)
}

// ImportResolver is the analyzer's view of resolved imports for the
// file currently being analyzed (internal/modules.Module assembles
// this per spec.md §4.8). A failed import still has an entry here
// with every local binding set to `any`.
type ImportResolver interface {
	ResolveImport(localName string) (types.Type, bool)
}

// Analyzer performs semantic analysis over a single file's AST,
// accumulating diagnostics and an inferred-type map.
type Analyzer struct {
	File     string
	Builtins BuiltinResolver
	Imports  ImportResolver

	// errMu guards errorSet/errors. AnalyzeProgram itself never touches
	// these concurrently, but internal/modules.Driver resolves a file's
	// import sites concurrently (errgroup.Group.Go) and each resolution
	// can call AddDiagnostic on this same Analyzer, so addError/Errors
	// need to be safe for concurrent use (§4.8).
	errMu    sync.Mutex
	errorSet map[string]*diagnostics.DiagnosticError // dedup key "line:col:code"
	errors   []*diagnostics.DiagnosticError

	TypeMap map[ast.Node]types.Type

	// returnCollector accumulates return-expression types keyed by the
	// enclosing function's span while a function body is being visited
	// (§4.5 function declarations).
	returnCollector map[ast.Node][]types.Type

	// funcBodyStack tracks the currently-open function bodies so a
	// ReturnStatement nested inside blocks/if/while/for knows which
	// returnCollector entry to contribute to.
	funcBodyStack []ast.Node

	// loopDepth tracks whether a break/continue statement is valid.
	loopDepth int

	root *scope.Scope

	// EnforceTypeArgArity resolves Open Question 1 (§9): the source
	// treated type-argument arity mismatches as permissive legacy
	// behavior. The zero value is false (off), but internal/config's
	// project rules default a constructed Analyzer's rule to true —
	// callers that build an Analyzer directly without going through
	// config must set this explicitly to get the enforced default.
	EnforceTypeArgArity bool

	// MaxExpandDepth bounds type-alias expansion recursion (§5's "hard
	// limit on recursion depth (configurable) guards against
	// pathological cyclic type references"). Zero means
	// defaultMaxExpandDepth.
	MaxExpandDepth int
	expandDepth    int
}

const defaultMaxExpandDepth = 64

func (a *Analyzer) maxExpandDepth() int {
	if a.MaxExpandDepth > 0 {
		return a.MaxExpandDepth
	}
	return defaultMaxExpandDepth
}

// New creates an Analyzer for a single file.
func New(file string, builtins BuiltinResolver, imports ImportResolver) *Analyzer {
	return &Analyzer{
		File:            file,
		Builtins:        builtins,
		Imports:         imports,
		errorSet:        make(map[string]*diagnostics.DiagnosticError),
		TypeMap:         make(map[ast.Node]types.Type),
		returnCollector: make(map[ast.Node][]types.Type),
		root:            scope.New(scope.Module),
	}
}

// addError adds a diagnostic, deduplicating by position and code, the
// same dedup key format as the teacher's walker.addError.
func (a *Analyzer) addError(err *diagnostics.DiagnosticError) {
	if err.File == "" {
		err.File = a.File
	}
	key := fmt.Sprintf("%d:%d:%s", err.Token.Line, err.Token.Column, err.Code)
	a.errMu.Lock()
	defer a.errMu.Unlock()
	if _, exists := a.errorSet[key]; exists {
		return
	}
	a.errorSet[key] = err
	a.errors = append(a.errors, err)
}

// LookupModuleBinding resolves name (a value binding or a type
// binding) in the root module scope. Intended for use after
// AnalyzeProgram has completed, by a driver assembling a module's
// export table (§4.8: "resolution looks the name up in the final
// module scope").
func (a *Analyzer) LookupModuleBinding(name string) (types.Type, bool) {
	if b, _, ok := a.root.LookupVar(name); ok {
		return b.Type, true
	}
	if t, ok := a.root.LookupType(name); ok {
		return t, true
	}
	return nil, false
}

// TypeOfNode returns the type recorded for n during analysis, if any.
// Used by a driver assembling `export default <expr>`'s export entry,
// since an expression's inferred type is only ever recorded into
// TypeMap, not exposed through a name lookup.
func (a *Analyzer) TypeOfNode(n ast.Node) (types.Type, bool) {
	t, ok := a.TypeMap[n]
	return t, ok
}

// AddDiagnostic lets a collaborator outside the analyzer (the module
// loader/driver, resolving imports before AnalyzeProgram runs) push a
// diagnostic into this analyzer's error list, e.g. a "module load
// failed" or "no such export" error (§4.8, §6 Diagnostic contract).
func (a *Analyzer) AddDiagnostic(err *diagnostics.DiagnosticError) {
	a.addError(err)
}

// Errors returns every diagnostic raised so far, in emission order.
func (a *Analyzer) Errors() []*diagnostics.DiagnosticError {
	a.errMu.Lock()
	defer a.errMu.Unlock()
	out := make([]*diagnostics.DiagnosticError, len(a.errors))
	copy(out, a.errors)
	return out
}

// recordType remembers the inferred type for a node so later passes
// (e.g. a consuming test harness) can query it without re-inferring.
func (a *Analyzer) recordType(n ast.Node, t types.Type) types.Type {
	if n != nil {
		a.TypeMap[n] = t
	}
	return t
}

// AnalyzeProgram walks every top-level statement of p in the root
// module scope. Declarations are analyzed first for their header
// shape, bodies next, mirroring the teacher's header/body two-phase
// split (AnalyzeHeaders/AnalyzeBodies) so forward references within a
// single file resolve.
func (a *Analyzer) AnalyzeProgram(p *ast.Program) {
	for _, stmt := range p.Statements {
		a.declareHeader(a.root, stmt)
	}
	for _, stmt := range p.Statements {
		a.analyzeStatement(a.root, stmt)
	}
}
