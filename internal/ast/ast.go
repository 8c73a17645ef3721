// Package ast defines the abstract syntax tree this analyzer consumes.
// The parser producing these nodes is an external collaborator (see
// spec.md §1); this package only fixes the node shapes the analyzer
// depends on. Every node is visitor-dispatched and carries a nil-safe
// GetToken() for diagnostics, following the teacher's AST conventions.
package ast

import "github.com/veritype/veritype/internal/token"

// Node is the base interface for every AST node.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Statement is a Node that appears at statement position.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that appears at expression position.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// TypeNode is a syntactic type annotation, distinct from the resolved
// types.Type the analyzer computes from it.
type TypeNode interface {
	Node
	typeNode()
	GetToken() token.Token
}

// Program is the root node for a single parsed source file.
type Program struct {
	File       string
	Imports    []*ImportDeclaration
	Statements []Statement
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}
