package ast

import "github.com/veritype/veritype/internal/token"

// ClassMemberKind distinguishes the kinds of entries a class body can
// carry (§4.5 class-body rules operate over this set).
type ClassMemberKind int

const (
	ClassField ClassMemberKind = iota
	ClassMethod
	ClassGetter
	ClassSetter
	ClassConstructor
)

// ClassMember is one entry of a class body. Body == nil means this
// member is a bodyless signature (part of an overload group, or a
// trailing/missing implementation — see §4.5).
type ClassMember struct {
	Token          token.Token
	Name           Expression // Identifier, StringLiteral, NumberLiteral, or computed expression
	Computed       bool
	Kind           ClassMemberKind
	Static         bool
	Optional       bool
	Readonly       bool
	AccessModifier string // "", "public", "private", "protected"
	Params         []*Param
	TypeParams     []*TypeParamNode
	ReturnType     TypeNode
	FieldType      TypeNode // for ClassField
	FieldInit      Expression
	Body           *BlockStatement
}

// NameKey returns the member's key as a string when it is a
// non-computed Identifier or StringLiteral. For a computed key or any
// other name form (such as a NumberLiteral) it returns "", false; such
// members are excluded from overload grouping per §4.5.
func (m *ClassMember) NameKey() (string, bool) {
	if m.Computed {
		return "", false
	}
	switch n := m.Name.(type) {
	case *Identifier:
		return n.Value, true
	case *StringLiteral:
		return n.Value, true
	}
	return "", false
}

// ClassDeclaration is `class Name<T> extends Base implements I1, I2 { ... }`.
type ClassDeclaration struct {
	Token      token.Token
	Name       *Identifier
	TypeParams []*TypeParamNode
	Extends    TypeNode   // nil if no superclass
	Implements []TypeNode
	Members    []*ClassMember
	Ambient    bool // `declare class Name { ... }`
}

func (c *ClassDeclaration) Accept(v Visitor)      { v.VisitClassDeclaration(c) }
func (c *ClassDeclaration) statementNode()        {}
func (c *ClassDeclaration) TokenLiteral() string  { return c.Token.Lexeme }
func (c *ClassDeclaration) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}

// ClassExpression is an anonymous/named class literal used as a value.
type ClassExpression struct {
	Token      token.Token
	Name       *Identifier // nil for anonymous class expressions
	TypeParams []*TypeParamNode
	Extends    TypeNode
	Implements []TypeNode
	Members    []*ClassMember
}

func (c *ClassExpression) Accept(v Visitor)      { v.VisitClassExpression(c) }
func (c *ClassExpression) expressionNode()       {}
func (c *ClassExpression) TokenLiteral() string  { return c.Token.Lexeme }
func (c *ClassExpression) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}
