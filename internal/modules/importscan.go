package modules

import (
	"github.com/veritype/veritype/internal/ast"
	"github.com/veritype/veritype/internal/config"
)

// discoverImportSites implements §4.8's "lightweight visitor" pre-pass:
// it records every `import` declaration and every `require(...)` call
// in a program, in source order. Grounded on the teacher's
// accept/visit AST traversal convention (internal/ast's Visitor),
// reused here for a concern (import discovery) the teacher's own
// language doesn't have since it has no import statement shaped this way.
func discoverImportSites(prog *ast.Program) []importSite {
	sc := &importScanner{}
	for _, stmt := range prog.Statements {
		stmt.Accept(sc)
	}
	return sc.sites
}

type importScanner struct {
	ast.BaseVisitor
	sites []importSite
}

func (s *importScanner) VisitImportDeclaration(n *ast.ImportDeclaration) {
	site := importSite{Desc: ImportDescriptor{Src: n.Source.Value, Span: n.Token}}

	if n.ImportAll || n.NamespaceAs != nil {
		site.Desc.All = true
		if n.NamespaceAs != nil {
			site.Bindings = append(site.Bindings, importBinding{Local: n.NamespaceAs.Value})
			site.Namespace = true
		}
	}
	if n.Default != nil {
		site.Bindings = append(site.Bindings, importBinding{Local: n.Default.Value, Requested: config.DefaultExportName})
		if !site.Desc.All {
			site.Desc.Items = append(site.Desc.Items, config.DefaultExportName)
		}
	}
	for _, spec := range n.Specifiers {
		site.Bindings = append(site.Bindings, importBinding{Local: spec.Local.Value, Requested: spec.Imported.Value})
		if !site.Desc.All {
			site.Desc.Items = append(site.Desc.Items, spec.Imported.Value)
		}
	}
	s.sites = append(s.sites, site)
}

func (s *importScanner) VisitExportDeclaration(n *ast.ExportDeclaration) {
	if n.Declaration != nil {
		n.Declaration.Accept(s)
	}
}

// VisitVariableDeclaration catches the CommonJS-style
// `const x = require("mod")` import form named in §4.8.
func (s *importScanner) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	for _, d := range n.Declarators {
		call, ok := d.Init.(*ast.CallExpression)
		if !ok {
			continue
		}
		ident, ok := call.Callee.(*ast.Identifier)
		if !ok || ident.Value != "require" || len(call.Arguments) != 1 {
			continue
		}
		lit, ok := call.Arguments[0].(*ast.StringLiteral)
		if !ok {
			continue
		}
		s.sites = append(s.sites, importSite{
			Desc:      ImportDescriptor{Src: lit.Value, All: true, Span: call.Token},
			Bindings:  []importBinding{{Local: d.Name.Value}},
			Namespace: true,
		})
	}
}

// VisitBlockStatement and other container statements need their
// children scanned too, since require() can appear nested (inside a
// function body, an if-branch, etc.) even though import declarations
// are only valid at the top level.
func (s *importScanner) VisitBlockStatement(n *ast.BlockStatement) {
	for _, st := range n.Statements {
		st.Accept(s)
	}
}

func (s *importScanner) VisitIfStatement(n *ast.IfStatement) {
	n.Consequent.Accept(s)
	if n.Alternate != nil {
		n.Alternate.Accept(s)
	}
}

func (s *importScanner) VisitFunctionDeclaration(n *ast.FunctionDeclaration) {
	if n.Body != nil {
		n.Body.Accept(s)
	}
}

func (s *importScanner) VisitWhileStatement(n *ast.WhileStatement) {
	n.Body.Accept(s)
}

func (s *importScanner) VisitForStatement(n *ast.ForStatement) {
	n.Body.Accept(s)
}

func (s *importScanner) VisitExpressionStatement(n *ast.ExpressionStatement) {
	if call, ok := n.Expression.(*ast.CallExpression); ok {
		s.visitRequireExpr(call)
	}
}

func (s *importScanner) visitRequireExpr(call *ast.CallExpression) {
	ident, ok := call.Callee.(*ast.Identifier)
	if !ok || ident.Value != "require" || len(call.Arguments) != 1 {
		return
	}
	lit, ok := call.Arguments[0].(*ast.StringLiteral)
	if !ok {
		return
	}
	// A bare `require("mod");` with no binding: still recorded so a
	// failing module load is reported, but it introduces no local name.
	s.sites = append(s.sites, importSite{Desc: ImportDescriptor{Src: lit.Value, All: true, Span: call.Token}})
}
