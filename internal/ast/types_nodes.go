package ast

import "github.com/veritype/veritype/internal/token"

// TypeParamNode is a syntactic generic type parameter: `T extends C = D`.
type TypeParamNode struct {
	Token      token.Token
	Name       *Identifier
	Constraint TypeNode
	Default    TypeNode
}

// KeywordTypeNode is a built-in primitive type name used in annotation
// position (`number`, `string`, `any`, ...).
type KeywordTypeNode struct {
	Token token.Token
	Name  string
}

func (k *KeywordTypeNode) Accept(v Visitor)      { v.VisitKeywordTypeNode(k) }
func (k *KeywordTypeNode) typeNode()             {}
func (k *KeywordTypeNode) TokenLiteral() string  { return k.Token.Lexeme }
func (k *KeywordTypeNode) GetToken() token.Token {
	if k == nil {
		return token.Token{}
	}
	return k.Token
}

// LiteralTypeNode is a literal type, e.g. `"a"`, `42`, `true`.
type LiteralTypeNode struct {
	Token token.Token
	Kind  string // "string", "number", "boolean"
	Str   string
	Num   float64
	Bool  bool
}

func (l *LiteralTypeNode) Accept(v Visitor)      { v.VisitLiteralTypeNode(l) }
func (l *LiteralTypeNode) typeNode()             {}
func (l *LiteralTypeNode) TokenLiteral() string  { return l.Token.Lexeme }
func (l *LiteralTypeNode) GetToken() token.Token {
	if l == nil {
		return token.Token{}
	}
	return l.Token
}

// ArrayTypeNode is `T[]`.
type ArrayTypeNode struct {
	Token token.Token
	Elem  TypeNode
}

func (a *ArrayTypeNode) Accept(v Visitor)      { v.VisitArrayTypeNode(a) }
func (a *ArrayTypeNode) typeNode()             {}
func (a *ArrayTypeNode) TokenLiteral() string  { return a.Token.Lexeme }
func (a *ArrayTypeNode) GetToken() token.Token {
	if a == nil {
		return token.Token{}
	}
	return a.Token
}

// TupleTypeNode is `[T1, T2, ...]` in type position.
type TupleTypeNode struct {
	Token token.Token
	Elems []TypeNode
}

func (t *TupleTypeNode) Accept(v Visitor)      { v.VisitTupleTypeNode(t) }
func (t *TupleTypeNode) typeNode()             {}
func (t *TupleTypeNode) TokenLiteral() string  { return t.Token.Lexeme }
func (t *TupleTypeNode) GetToken() token.Token {
	if t == nil {
		return token.Token{}
	}
	return t.Token
}

// UnionTypeNode is `T1 | T2 | ...`.
type UnionTypeNode struct {
	Token token.Token
	Types []TypeNode
}

func (u *UnionTypeNode) Accept(v Visitor)      { v.VisitUnionTypeNode(u) }
func (u *UnionTypeNode) typeNode()             {}
func (u *UnionTypeNode) TokenLiteral() string  { return u.Token.Lexeme }
func (u *UnionTypeNode) GetToken() token.Token {
	if u == nil {
		return token.Token{}
	}
	return u.Token
}

// IntersectionTypeNode is `T1 & T2 & ...`.
type IntersectionTypeNode struct {
	Token token.Token
	Types []TypeNode
}

func (i *IntersectionTypeNode) Accept(v Visitor)      { v.VisitIntersectionTypeNode(i) }
func (i *IntersectionTypeNode) typeNode()             {}
func (i *IntersectionTypeNode) TokenLiteral() string  { return i.Token.Lexeme }
func (i *IntersectionTypeNode) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}

// FunctionTypeNode is `(p1: T1, p2?: T2) => R`.
type FunctionTypeNode struct {
	Token      token.Token
	TypeParams []*TypeParamNode
	Params     []*Param
	ReturnType TypeNode
}

func (f *FunctionTypeNode) Accept(v Visitor)      { v.VisitFunctionTypeNode(f) }
func (f *FunctionTypeNode) typeNode()             {}
func (f *FunctionTypeNode) TokenLiteral() string  { return f.Token.Lexeme }
func (f *FunctionTypeNode) GetToken() token.Token {
	if f == nil {
		return token.Token{}
	}
	return f.Token
}

// ConstructorTypeNode is `new (p1: T1) => R`.
type ConstructorTypeNode struct {
	Token      token.Token
	TypeParams []*TypeParamNode
	Params     []*Param
	ReturnType TypeNode
}

func (c *ConstructorTypeNode) Accept(v Visitor)      { v.VisitConstructorTypeNode(c) }
func (c *ConstructorTypeNode) typeNode()             {}
func (c *ConstructorTypeNode) TokenLiteral() string  { return c.Token.Lexeme }
func (c *ConstructorTypeNode) GetToken() token.Token {
	if c == nil {
		return token.Token{}
	}
	return c.Token
}

// TypeRefNode is a named type reference, e.g. `Foo`, `Foo<Bar>`, `A.B`.
type TypeRefNode struct {
	Token token.Token
	Path  []string
	Args  []TypeNode
}

func (r *TypeRefNode) Accept(v Visitor)      { v.VisitTypeRefNode(r) }
func (r *TypeRefNode) typeNode()             {}
func (r *TypeRefNode) TokenLiteral() string  { return r.Token.Lexeme }
func (r *TypeRefNode) GetToken() token.Token {
	if r == nil {
		return token.Token{}
	}
	return r.Token
}

// TypeLiteralNode is an inline structural object type, e.g. `{ x: number }`.
type TypeLiteralNode struct {
	Token   token.Token
	Members []*InterfaceMember
}

func (t *TypeLiteralNode) Accept(v Visitor)      { v.VisitTypeLiteralNode(t) }
func (t *TypeLiteralNode) typeNode()             {}
func (t *TypeLiteralNode) TokenLiteral() string  { return t.Token.Lexeme }
func (t *TypeLiteralNode) GetToken() token.Token {
	if t == nil {
		return token.Token{}
	}
	return t.Token
}

// ThisTypeNode is the `this` type used in annotation position.
type ThisTypeNode struct{ Token token.Token }

func (t *ThisTypeNode) Accept(v Visitor)      { v.VisitThisTypeNode(t) }
func (t *ThisTypeNode) typeNode()             {}
func (t *ThisTypeNode) TokenLiteral() string  { return t.Token.Lexeme }
func (t *ThisTypeNode) GetToken() token.Token {
	if t == nil {
		return token.Token{}
	}
	return t.Token
}

// TypeQueryNode is `typeof expr.path`.
type TypeQueryNode struct {
	Token token.Token
	Path  []string
}

func (q *TypeQueryNode) Accept(v Visitor)      { v.VisitTypeQueryNode(q) }
func (q *TypeQueryNode) typeNode()             {}
func (q *TypeQueryNode) TokenLiteral() string  { return q.Token.Lexeme }
func (q *TypeQueryNode) GetToken() token.Token {
	if q == nil {
		return token.Token{}
	}
	return q.Token
}
