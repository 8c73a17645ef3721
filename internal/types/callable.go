package types

import (
	"strings"

	"github.com/veritype/veritype/internal/token"
)

// FuncParam is one formal parameter of a Function or Constructor type.
type FuncParam struct {
	Name     string
	Optional bool
	Type     Type
}

// TypeParam is a generic type parameter: a name with an optional
// constraint (`extends`) and an optional default.
type TypeParam struct {
	Tok        token.Token
	Name       string
	Constraint Type
	Default    Type
}

func (p TypeParam) String() string {
	s := p.Name
	if p.Constraint != nil {
		s += " extends " + p.Constraint.String()
	}
	if p.Default != nil {
		s += " = " + p.Default.String()
	}
	return s
}
func (p TypeParam) Span() token.Token { return p.Tok }
func (TypeParam) isType()             {}

func paramsString(params []FuncParam) string {
	parts := make([]string, len(params))
	for i, p := range params {
		opt := ""
		if p.Optional {
			opt = "?"
		}
		parts[i] = p.Name + opt + ": " + p.Type.String()
	}
	return strings.Join(parts, ", ")
}

func typeParamsString(tps []TypeParam) string {
	if len(tps) == 0 {
		return ""
	}
	parts := make([]string, len(tps))
	for i, tp := range tps {
		parts[i] = tp.String()
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// Function is a callable signature.
type Function struct {
	Tok        token.Token
	Params     []FuncParam
	TypeParams []TypeParam
	Return     Type
}

func (f Function) String() string {
	ret := "void"
	if f.Return != nil {
		ret = f.Return.String()
	}
	return typeParamsString(f.TypeParams) + "(" + paramsString(f.Params) + ") => " + ret
}
func (f Function) Span() token.Token { return f.Tok }
func (Function) isType()             {}

// MinMaxArity returns the inclusive range of acceptable argument counts:
// min counts non-optional formals, max is all formals (or the last
// formal is variadic — not modeled here, kept for future extension).
func (f Function) MinMaxArity() (int, int) {
	min, max := 0, len(f.Params)
	for _, p := range f.Params {
		if !p.Optional {
			min++
		}
	}
	return min, max
}

// Constructor is a `new`-callable signature; structurally identical to
// Function but with construct semantics.
type Constructor struct {
	Tok        token.Token
	Params     []FuncParam
	TypeParams []TypeParam
	Return     Type
}

func (c Constructor) String() string {
	ret := "void"
	if c.Return != nil {
		ret = c.Return.String()
	}
	return "new " + typeParamsString(c.TypeParams) + "(" + paramsString(c.Params) + ") => " + ret
}
func (c Constructor) Span() token.Token { return c.Tok }
func (Constructor) isType()              {}

func (c Constructor) MinMaxArity() (int, int) {
	min, max := 0, len(c.Params)
	for _, p := range c.Params {
		if !p.Optional {
			min++
		}
	}
	return min, max
}

// AsFunction exposes a Constructor's call shape so the shared
// instantiation contract can operate on either.
func (c Constructor) AsFunction() Function {
	return Function{Tok: c.Tok, Params: c.Params, TypeParams: c.TypeParams, Return: c.Return}
}
