// Grounded on the teacher's analyzer_errors_test.go: build a tiny
// *ast.Program by hand (no parser in this module yet, so no source
// text round-trip), run it through Analyzer.AnalyzeProgram, and assert
// on the resulting diagnostic list.
package analyzer

import (
	"testing"

	"github.com/veritype/veritype/internal/ast"
	"github.com/veritype/veritype/internal/diagnostics"
	"github.com/veritype/veritype/internal/types"
)

// noBuiltins/noImports satisfy BuiltinResolver/ImportResolver with
// nothing registered, for tests that don't need ambient declarations.
type noBuiltins struct{}

func (noBuiltins) Lookup(name string) (types.Type, bool)                { return nil, false }
func (noBuiltins) KeywordMembers(keyword string) ([]types.Member, bool) { return nil, false }

type noImports struct{}

func (noImports) ResolveImport(name string) (types.Type, bool) { return nil, false }

func ident(v string) *ast.Identifier { return &ast.Identifier{Value: v} }

func numKeyword() *ast.KeywordTypeNode { return &ast.KeywordTypeNode{Name: "number"} }

func newTestAnalyzer() *Analyzer {
	return New("test.ts", noBuiltins{}, noImports{})
}

func errCodes(errs []*diagnostics.DiagnosticError) []diagnostics.ErrorCode {
	out := make([]diagnostics.ErrorCode, len(errs))
	for i, e := range errs {
		out[i] = e.Code
	}
	return out
}

func TestLetDeclarationWithMatchingInitializerHasNoErrors(t *testing.T) {
	a := newTestAnalyzer()
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.VariableDeclaration{Kind: ast.LetKind, Declarators: []*ast.VariableDeclarator{
			{Name: ident("x"), TypeAnnotation: numKeyword(), Init: &ast.NumberLiteral{Value: 1}},
		}},
	}}
	a.AnalyzeProgram(prog)
	if got := a.Errors(); len(got) != 0 {
		t.Fatalf("expected no errors, got %v", errCodes(got))
	}
}

func TestLetDeclarationWithMismatchedInitializerReportsNotAssignable(t *testing.T) {
	a := newTestAnalyzer()
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.VariableDeclaration{Kind: ast.LetKind, Declarators: []*ast.VariableDeclarator{
			{Name: ident("x"), TypeAnnotation: numKeyword(), Init: &ast.StringLiteral{Value: "oops"}},
		}},
	}}
	a.AnalyzeProgram(prog)
	got := a.Errors()
	if len(got) != 1 || got[0].Code != diagnostics.ErrNotAssignable {
		t.Fatalf("expected exactly one ErrNotAssignable, got %v", errCodes(got))
	}
}

func TestRedeclaringLetInSameScopeReportsRedeclaration(t *testing.T) {
	a := newTestAnalyzer()
	decl := func() *ast.VariableDeclaration {
		return &ast.VariableDeclaration{Kind: ast.LetKind, Declarators: []*ast.VariableDeclarator{
			{Name: ident("x"), Init: &ast.NumberLiteral{Value: 1}},
		}}
	}
	prog := &ast.Program{Statements: []ast.Statement{decl(), decl()}}
	a.AnalyzeProgram(prog)
	got := a.Errors()
	if len(got) != 1 || got[0].Code != diagnostics.ErrRedeclaration {
		t.Fatalf("expected exactly one ErrRedeclaration, got %v", errCodes(got))
	}
}

func TestVarRedeclarationInSameScopeIsTolerated(t *testing.T) {
	a := newTestAnalyzer()
	decl := func() *ast.VariableDeclaration {
		return &ast.VariableDeclaration{Kind: ast.VarKind, Declarators: []*ast.VariableDeclarator{
			{Name: ident("x"), Init: &ast.NumberLiteral{Value: 1}},
		}}
	}
	prog := &ast.Program{Statements: []ast.Statement{decl(), decl()}}
	a.AnalyzeProgram(prog)
	if got := a.Errors(); len(got) != 0 {
		t.Fatalf("expected var redeclaration to be tolerated, got %v", errCodes(got))
	}
}

func TestUndeclaredIdentifierReference(t *testing.T) {
	a := newTestAnalyzer()
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.ExpressionStatement{Expression: ident("neverDeclared")},
	}}
	a.AnalyzeProgram(prog)
	got := a.Errors()
	if len(got) != 1 || got[0].Code != diagnostics.ErrUndefinedSymbol {
		t.Fatalf("expected exactly one ErrUndefinedSymbol, got %v", errCodes(got))
	}
}

func TestBinaryNumericAdditionTypesAsNumber(t *testing.T) {
	a := newTestAnalyzer()
	expr := &ast.BinaryExpression{Operator: "+", Left: &ast.NumberLiteral{Value: 1}, Right: &ast.NumberLiteral{Value: 2}}
	got := a.TypeOf(a.root, expr)
	if got != types.Number {
		t.Fatalf("expected number, got %v", got)
	}
}

func TestInferredLetTypeFlowsFromInitializerWhenNoAnnotation(t *testing.T) {
	a := newTestAnalyzer()
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.VariableDeclaration{Kind: ast.LetKind, Declarators: []*ast.VariableDeclarator{
			{Name: ident("x"), Init: &ast.StringLiteral{Value: "hi"}},
		}},
	}}
	a.AnalyzeProgram(prog)
	if len(a.Errors()) != 0 {
		t.Fatalf("expected no errors, got %v", errCodes(a.Errors()))
	}
	got, ok := a.LookupModuleBinding("x")
	if !ok {
		t.Fatalf("expected x to resolve, got %v %v", got, ok)
	}
	// Without a type annotation the declarator keeps the initializer's
	// literal type ("hi") rather than widening to the keyword string
	// type; a declarator without an annotation does not widen.
	lit, ok := got.(types.Lit)
	if !ok || lit.Kind != types.LitString || lit.StrVal != "hi" {
		t.Fatalf("expected x inferred as the string literal type \"hi\", got %#v %v", got, ok)
	}
}

func TestAssignmentNarrowsToWidenedTypeNotTheLiteral(t *testing.T) {
	a := newTestAnalyzer()
	union := &ast.UnionTypeNode{Types: []ast.TypeNode{&ast.KeywordTypeNode{Name: "string"}, numKeyword()}}
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.VariableDeclaration{Kind: ast.LetKind, Declarators: []*ast.VariableDeclarator{
			{Name: ident("x"), TypeAnnotation: union},
		}},
		&ast.ExpressionStatement{Expression: &ast.AssignmentExpression{
			Target: ident("x"),
			Value:  &ast.NumberLiteral{Value: 1},
		}},
	}}
	a.AnalyzeProgram(prog)
	if len(a.Errors()) != 0 {
		t.Fatalf("expected no errors, got %v", errCodes(a.Errors()))
	}
	got, ok := a.LookupModuleBinding("x")
	if !ok {
		t.Fatalf("expected x to resolve, got %v %v", got, ok)
	}
	// `x = 1` must narrow x to the widened `number` keyword type, not
	// to the literal type `1` itself (§8 testable property #6).
	if got != types.Number {
		t.Fatalf("expected x narrowed to number, got %#v", got)
	}
}

func TestDuplicateDiagnosticsAtSamePositionAreDeduplicated(t *testing.T) {
	a := newTestAnalyzer()
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.ExpressionStatement{Expression: ident("ghost")},
		&ast.ExpressionStatement{Expression: ident("ghost")},
	}}
	a.AnalyzeProgram(prog)
	// Both references are to the same identifier at the same zero-value
	// token position, so addError's "line:col:code" dedup key collapses
	// them into a single diagnostic.
	if got := len(a.Errors()); got != 1 {
		t.Fatalf("expected deduplication to collapse to 1 error, got %d", got)
	}
}
