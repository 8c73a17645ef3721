package modules

import (
	"testing"

	"github.com/veritype/veritype/internal/ast"
	"github.com/veritype/veritype/internal/types"
)

func strLit(v string) *ast.StringLiteral { return &ast.StringLiteral{Value: v} }
func ident(v string) *ast.Identifier     { return &ast.Identifier{Value: v} }

func TestDiscoverImportSitesNamedAndDefault(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.ImportDeclaration{
			Source:     strLit("./util"),
			Default:    ident("Util"),
			Specifiers: []ast.ImportSpecifier{{Imported: ident("helper"), Local: ident("helper")}},
		},
	}}
	sites := discoverImportSites(prog)
	if len(sites) != 1 {
		t.Fatalf("expected 1 import site, got %d", len(sites))
	}
	s := sites[0]
	if s.Desc.Src != "./util" || s.Desc.All {
		t.Fatalf("unexpected descriptor: %+v", s.Desc)
	}
	if len(s.Bindings) != 2 {
		t.Fatalf("expected 2 bindings (default + named), got %d", len(s.Bindings))
	}
}

func TestDiscoverImportSitesNamespace(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.ImportDeclaration{Source: strLit("./ns"), ImportAll: true, NamespaceAs: ident("NS")},
	}}
	sites := discoverImportSites(prog)
	if len(sites) != 1 || !sites[0].Desc.All || !sites[0].Namespace {
		t.Fatalf("expected one all/namespace site, got %+v", sites)
	}
	if sites[0].Bindings[0].Local != "NS" {
		t.Fatalf("expected NS binding, got %+v", sites[0].Bindings)
	}
}

func TestDiscoverImportSitesRequireCall(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.VariableDeclaration{Declarators: []*ast.VariableDeclarator{
			{Name: ident("fs"), Init: &ast.CallExpression{
				Callee:    ident("require"),
				Arguments: []ast.Expression{strLit("fs")},
			}},
		}},
	}}
	sites := discoverImportSites(prog)
	if len(sites) != 1 || !sites[0].Namespace || sites[0].Desc.Src != "fs" {
		t.Fatalf("expected one CommonJS require site, got %+v", sites)
	}
	if sites[0].Bindings[0].Local != "fs" {
		t.Fatalf("expected local binding fs, got %+v", sites[0].Bindings)
	}
}

func TestDiscoverImportSitesNestedRequire(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.FunctionDeclaration{Name: ident("f"), Body: &ast.BlockStatement{Statements: []ast.Statement{
			&ast.ExpressionStatement{Expression: &ast.CallExpression{
				Callee:    ident("require"),
				Arguments: []ast.Expression{strLit("nested")},
			}},
		}}},
	}}
	sites := discoverImportSites(prog)
	if len(sites) != 1 || sites[0].Desc.Src != "nested" {
		t.Fatalf("expected nested require to be discovered, got %+v", sites)
	}
	if len(sites[0].Bindings) != 0 {
		t.Fatalf("expected a bare require() call to bind no locals, got %+v", sites[0].Bindings)
	}
}

func TestDiscoverExportSitesNamedAndDefault(t *testing.T) {
	prog := &ast.Program{Statements: []ast.Statement{
		&ast.ExportDeclaration{Declaration: &ast.FunctionDeclaration{Name: ident("f")}},
		&ast.ExportDeclaration{IsDefault: true, Expression: &ast.NumberLiteral{}},
		&ast.ExportDeclaration{Names: []ast.ImportSpecifier{{Imported: ident("a"), Local: ident("b")}}},
	}}
	sites := discoverExportSites(prog)
	if len(sites) != 3 {
		t.Fatalf("expected 3 export sites, got %d", len(sites))
	}
	if sites[0].Local != "f" || sites[0].Exported != "f" {
		t.Errorf("unexpected named-function export site: %+v", sites[0])
	}
	if sites[1].Exported != "default" || sites[1].Local != "" {
		t.Errorf("unexpected anonymous default export site: %+v", sites[1])
	}
	if sites[2].Local != "a" || sites[2].Exported != "b" {
		t.Errorf("unexpected bare export-list site: %+v", sites[2])
	}
}

func TestCyclicPlaceholderBindsRequestedItemsToAny(t *testing.T) {
	out := cyclicPlaceholder(ImportDescriptor{Items: []string{"a", "b"}})
	if len(out) != 2 || out["a"] != types.Any || out["b"] != types.Any {
		t.Fatalf("expected a/b bound to any, got %+v", out)
	}
}

func TestCyclicPlaceholderAllIsEmpty(t *testing.T) {
	out := cyclicPlaceholder(ImportDescriptor{All: true})
	if len(out) != 0 {
		t.Fatalf("expected an empty map for a namespace cycle, got %+v", out)
	}
}

func TestModuleExportAndAllExports(t *testing.T) {
	m := &Module{Exports: map[string]types.Type{"x": types.Number}}
	if got, ok := m.Export("x"); !ok || got != types.Number {
		t.Fatalf("expected export x to resolve to number, got %v %v", got, ok)
	}
	if _, ok := m.Export("missing"); ok {
		t.Fatalf("expected missing export to miss")
	}
	all := m.AllExports()
	all["x"] = types.Boolean
	if m.Exports["x"] != types.Number {
		t.Fatalf("expected AllExports to return a copy, not alias the internal map")
	}
}

func TestNamespaceTypeBuildsOneFieldPerExport(t *testing.T) {
	ns := namespaceType(map[string]types.Type{"a": types.Number, "b": types.String_})
	iface, ok := ns.(types.Interface)
	if !ok || len(iface.Members) != 2 {
		t.Fatalf("expected a 2-member interface, got %+v", ns)
	}
}

func TestFileImportResolverSetAndHas(t *testing.T) {
	r := newFileImportResolver()
	if r.has("x") {
		t.Fatalf("expected x to be unset initially")
	}
	r.set("x", types.Number)
	if !r.has("x") {
		t.Fatalf("expected x to be set after set()")
	}
	got, ok := r.ResolveImport("x")
	if !ok || got != types.Number {
		t.Fatalf("expected ResolveImport(x) to return number, got %v %v", got, ok)
	}
}
