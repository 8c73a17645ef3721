package ast

import "github.com/veritype/veritype/internal/token"

// BlockStatement is `{ stmt; stmt; ... }`.
type BlockStatement struct {
	Token      token.Token
	Statements []Statement
}

func (b *BlockStatement) Accept(v Visitor)      { v.VisitBlockStatement(b) }
func (b *BlockStatement) statementNode()        {}
func (b *BlockStatement) TokenLiteral() string  { return b.Token.Lexeme }
func (b *BlockStatement) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

// ExpressionStatement is a bare expression used as a statement.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (e *ExpressionStatement) Accept(v Visitor)      { v.VisitExpressionStatement(e) }
func (e *ExpressionStatement) statementNode()        {}
func (e *ExpressionStatement) TokenLiteral() string  { return e.Token.Lexeme }
func (e *ExpressionStatement) GetToken() token.Token {
	if e == nil {
		return token.Token{}
	}
	return e.Token
}

// VariableKind distinguishes var/let/const declaration semantics.
type VariableKind int

const (
	VarKind VariableKind = iota
	LetKind
	ConstKind
)

func (k VariableKind) String() string {
	switch k {
	case VarKind:
		return "var"
	case LetKind:
		return "let"
	case ConstKind:
		return "const"
	}
	return "var"
}

// VariableDeclarator is one `name[: Type] [= init]` binding.
type VariableDeclarator struct {
	Name           *Identifier
	TypeAnnotation TypeNode
	Init           Expression
}

// VariableDeclaration is `var/let/const x = 1, y = 2;`.
type VariableDeclaration struct {
	Token       token.Token
	Kind        VariableKind
	Declarators []*VariableDeclarator
	Ambient     bool // `declare let x: T;`
}

func (vd *VariableDeclaration) Accept(v Visitor)      { v.VisitVariableDeclaration(vd) }
func (vd *VariableDeclaration) statementNode()        {}
func (vd *VariableDeclaration) TokenLiteral() string  { return vd.Token.Lexeme }
func (vd *VariableDeclaration) GetToken() token.Token {
	if vd == nil {
		return token.Token{}
	}
	return vd.Token
}

// FunctionDeclaration is a named top-level/nested function declaration.
type FunctionDeclaration struct {
	Token      token.Token
	Name       *Identifier
	Params     []*Param
	ReturnType TypeNode
	TypeParams []*TypeParamNode
	Body       *BlockStatement // nil for ambient/declare functions
	Ambient    bool
}

func (f *FunctionDeclaration) Accept(v Visitor)      { v.VisitFunctionDeclaration(f) }
func (f *FunctionDeclaration) statementNode()        {}
func (f *FunctionDeclaration) TokenLiteral() string  { return f.Token.Lexeme }
func (f *FunctionDeclaration) GetToken() token.Token {
	if f == nil {
		return token.Token{}
	}
	return f.Token
}

// ReturnStatement is `return [expr];`.
type ReturnStatement struct {
	Token token.Token
	Value Expression // nil for bare `return;`
}

func (r *ReturnStatement) Accept(v Visitor)      { v.VisitReturnStatement(r) }
func (r *ReturnStatement) statementNode()        {}
func (r *ReturnStatement) TokenLiteral() string  { return r.Token.Lexeme }
func (r *ReturnStatement) GetToken() token.Token {
	if r == nil {
		return token.Token{}
	}
	return r.Token
}

// IfStatement is `if (test) consequent [else alternate]`.
type IfStatement struct {
	Token      token.Token
	Test       Expression
	Consequent Statement
	Alternate  Statement // nil if no else-branch
}

func (i *IfStatement) Accept(v Visitor)      { v.VisitIfStatement(i) }
func (i *IfStatement) statementNode()        {}
func (i *IfStatement) TokenLiteral() string  { return i.Token.Lexeme }
func (i *IfStatement) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// WhileStatement is `while (test) body`.
type WhileStatement struct {
	Token token.Token
	Test  Expression
	Body  Statement
}

func (w *WhileStatement) Accept(v Visitor)      { v.VisitWhileStatement(w) }
func (w *WhileStatement) statementNode()        {}
func (w *WhileStatement) TokenLiteral() string  { return w.Token.Lexeme }
func (w *WhileStatement) GetToken() token.Token {
	if w == nil {
		return token.Token{}
	}
	return w.Token
}

// ForStatement is a classic C-style `for (init; test; update) body`.
type ForStatement struct {
	Token  token.Token
	Init   Statement // ExpressionStatement or VariableDeclaration, or nil
	Test   Expression
	Update Expression
	Body   Statement
}

func (f *ForStatement) Accept(v Visitor)      { v.VisitForStatement(f) }
func (f *ForStatement) statementNode()        {}
func (f *ForStatement) TokenLiteral() string  { return f.Token.Lexeme }
func (f *ForStatement) GetToken() token.Token {
	if f == nil {
		return token.Token{}
	}
	return f.Token
}

// BreakStatement is `break;`.
type BreakStatement struct{ Token token.Token }

func (b *BreakStatement) Accept(v Visitor)      { v.VisitBreakStatement(b) }
func (b *BreakStatement) statementNode()        {}
func (b *BreakStatement) TokenLiteral() string  { return b.Token.Lexeme }
func (b *BreakStatement) GetToken() token.Token {
	if b == nil {
		return token.Token{}
	}
	return b.Token
}

// ContinueStatement is `continue;`.
type ContinueStatement struct{ Token token.Token }

func (c *ContinueStatement) Accept(v Visitor)      { v.VisitContinueStatement(c) }
func (c *ContinueStatement) statementNode()        {}
func (c *ContinueStatement) TokenLiteral() string  { return c.Token.Lexeme }
func (c *ContinueStatement) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}

// DirectiveStatement is a leading directive, e.g. `"use strict";`.
type DirectiveStatement struct {
	Token token.Token
	Value string
}

func (d *DirectiveStatement) Accept(v Visitor)      { v.VisitDirectiveStatement(d) }
func (d *DirectiveStatement) statementNode()        {}
func (d *DirectiveStatement) TokenLiteral() string  { return d.Token.Lexeme }
func (d *DirectiveStatement) GetToken() token.Token {
	if d == nil {
		return token.Token{}
	}
	return d.Token
}

// TypeAliasDeclaration is `type Name<T> = SomeType;`.
type TypeAliasDeclaration struct {
	Token      token.Token
	Name       *Identifier
	TypeParams []*TypeParamNode
	Value      TypeNode
}

func (t *TypeAliasDeclaration) Accept(v Visitor)      { v.VisitTypeAliasDeclaration(t) }
func (t *TypeAliasDeclaration) statementNode()        {}
func (t *TypeAliasDeclaration) TokenLiteral() string  { return t.Token.Lexeme }
func (t *TypeAliasDeclaration) GetToken() token.Token {
	if t == nil {
		return token.Token{}
	}
	return t.Token
}

// InterfaceDeclaration is `interface Name<T> extends P1, P2 { ... }`.
type InterfaceDeclaration struct {
	Token      token.Token
	Name       *Identifier
	TypeParams []*TypeParamNode
	Extends    []TypeNode
	Members    []*InterfaceMember
}

func (i *InterfaceDeclaration) Accept(v Visitor)      { v.VisitInterfaceDeclaration(i) }
func (i *InterfaceDeclaration) statementNode()        {}
func (i *InterfaceDeclaration) TokenLiteral() string  { return i.Token.Lexeme }
func (i *InterfaceDeclaration) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// InterfaceMember is one entry of an interface body.
type InterfaceMember struct {
	Token          token.Token
	Name           Expression // nil for call/construct signatures
	Computed       bool
	Optional       bool
	Readonly       bool
	Kind           string // "property", "method", "call", "construct", "index", "get", "set"
	Params         []*Param
	TypeParams     []*TypeParamNode
	Type           TypeNode // property type, or return type for callables
}

// EnumMemberNode is one `Name[= init]` case of an enum.
type EnumMemberNode struct {
	Name *Identifier
	Init Expression // nil if no explicit initializer
}

// EnumDeclaration is `enum Name { A, B = 2, C }`.
type EnumDeclaration struct {
	Token   token.Token
	Name    *Identifier
	Members []*EnumMemberNode
}

func (e *EnumDeclaration) Accept(v Visitor)      { v.VisitEnumDeclaration(e) }
func (e *EnumDeclaration) statementNode()        {}
func (e *EnumDeclaration) TokenLiteral() string  { return e.Token.Lexeme }
func (e *EnumDeclaration) GetToken() token.Token {
	if e == nil {
		return token.Token{}
	}
	return e.Token
}

// ImportSpecifier is one named import binding: `{ Foo as Bar }`.
type ImportSpecifier struct {
	Imported *Identifier
	Local    *Identifier // equals Imported if no `as` alias
}

// ImportDeclaration is `import { A, B as C } from "mod";` or
// `import * as NS from "mod";` or `import Default from "mod";`.
type ImportDeclaration struct {
	Token       token.Token
	Source      *StringLiteral
	Specifiers  []ImportSpecifier
	Default     *Identifier // nil if no default import binding
	NamespaceAs *Identifier // nil unless `import * as NS`
	ImportAll   bool
}

func (i *ImportDeclaration) Accept(v Visitor)      { v.VisitImportDeclaration(i) }
func (i *ImportDeclaration) statementNode()        {}
func (i *ImportDeclaration) TokenLiteral() string  { return i.Token.Lexeme }
func (i *ImportDeclaration) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// ExportDeclaration wraps a declaration being exported (`export
// <decl>`), an `export default <expr|decl>`, or a bare named
// re-export/export list (`export { a, b as c };`).
type ExportDeclaration struct {
	Token       token.Token
	Declaration Statement  // non-nil for `export <decl>` / `export default <decl>`
	Expression  Expression // non-nil for `export default <expr>`
	IsDefault   bool
	Names       []ImportSpecifier // for bare `export { a, b as c };`
}

func (e *ExportDeclaration) Accept(v Visitor)      { v.VisitExportDeclaration(e) }
func (e *ExportDeclaration) statementNode()        {}
func (e *ExportDeclaration) TokenLiteral() string  { return e.Token.Lexeme }
func (e *ExportDeclaration) GetToken() token.Token {
	if e == nil {
		return token.Token{}
	}
	return e.Token
}
