// Package types implements the immutable algebraic type model described
// in the specification: keyword types, literal types, arrays, tuples,
// unions, intersections, function/constructor signatures, classes,
// interfaces, enums, enum-variant references, type parameters, aliases,
// references, this-types, type queries, and a deferred/unresolved
// wrapper. Every variant carries a source span for diagnostics only;
// spans are never part of structural identity (see Equal).
package types

import (
	"sort"
	"strconv"
	"strings"

	"github.com/veritype/veritype/internal/token"
)

// Type is the sealed interface implemented by every type variant.
type Type interface {
	String() string
	Span() token.Token
	isType()
}

// Keyword is one of the built-in primitive/top/bottom types.
type Keyword struct {
	Tok  token.Token
	Name string // any, number, string, boolean, null, undefined, void, never, symbol, object, unknown
}

func (k Keyword) String() string     { return k.Name }
func (k Keyword) Span() token.Token  { return k.Tok }
func (Keyword) isType()              {}

// Common keyword singletons. Each call site may still attach its own
// span by setting Tok; these are convenience zero-span values.
var (
	Any       = Keyword{Name: "any"}
	Unknown   = Keyword{Name: "unknown"}
	Number    = Keyword{Name: "number"}
	String_   = Keyword{Name: "string"}
	Boolean   = Keyword{Name: "boolean"}
	Null      = Keyword{Name: "null"}
	Undefined = Keyword{Name: "undefined"}
	Void      = Keyword{Name: "void"}
	Never     = Keyword{Name: "never"}
	Symbol    = Keyword{Name: "symbol"}
	Object    = Keyword{Name: "object"}
)

// Lit is a literal singleton type: a specific boolean, number, or string
// value used at the type level (e.g. the type of `"a"` or `42`).
type Lit struct {
	Tok      token.Token
	BoolVal  bool
	NumVal   float64
	StrVal   string
	Kind     LitKind
}

type LitKind int

const (
	LitBool LitKind = iota
	LitNumber
	LitString
)

func (l Lit) String() string {
	switch l.Kind {
	case LitBool:
		if l.BoolVal {
			return "true"
		}
		return "false"
	case LitNumber:
		return strconv.FormatFloat(l.NumVal, 'g', -1, 64)
	case LitString:
		return "\"" + l.StrVal + "\""
	}
	return "?"
}
func (l Lit) Span() token.Token { return l.Tok }
func (Lit) isType()             {}

// Widen collapses a literal type to its base keyword type. Widening is
// explicit: callers must invoke it, it never happens implicitly inside
// literal-typed contexts such as annotations.
func (l Lit) Widen() Type {
	switch l.Kind {
	case LitBool:
		return Keyword{Name: "boolean", Tok: l.Tok}
	case LitNumber:
		return Keyword{Name: "number", Tok: l.Tok}
	case LitString:
		return Keyword{Name: "string", Tok: l.Tok}
	}
	return Keyword{Name: "any", Tok: l.Tok}
}

// Widen widens t if it is a Lit, otherwise returns t unchanged.
func Widen(t Type) Type {
	if l, ok := t.(Lit); ok {
		return l.Widen()
	}
	return t
}

// Array is a homogeneous element array type, e.g. `number[]` / `Array<number>`.
type Array struct {
	Tok  token.Token
	Elem Type
}

func (a Array) String() string { return a.Elem.String() + "[]" }
func (a Array) Span() token.Token { return a.Tok }
func (Array) isType()           {}

// Tuple is an ordered, fixed-length sequence of element types.
type Tuple struct {
	Tok   token.Token
	Elems []Type
}

func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (t Tuple) Span() token.Token { return t.Tok }
func (Tuple) isType()             {}

// Union is an unordered, normalized, deduplicated set of member types.
// Invariant: len(Members) >= 2 (single-member unions collapse to the
// member; empty unions are never constructed — see NormalizeUnion).
type Union struct {
	Tok     token.Token
	Members []Type
}

func (u Union) String() string {
	parts := make([]string, len(u.Members))
	for i, m := range u.Members {
		parts[i] = m.String()
	}
	sort.Strings(parts)
	return strings.Join(parts, " | ")
}
func (u Union) Span() token.Token { return u.Tok }
func (Union) isType()             {}

// Intersection is an unordered set of member types, all of which must
// be satisfied simultaneously.
type Intersection struct {
	Tok     token.Token
	Members []Type
}

func (i Intersection) String() string {
	parts := make([]string, len(i.Members))
	for idx, m := range i.Members {
		parts[idx] = m.String()
	}
	return strings.Join(parts, " & ")
}
func (i Intersection) Span() token.Token { return i.Tok }
func (Intersection) isType()             {}

// This represents the enclosing class's this-type.
type This struct {
	Tok       token.Token
	ClassName string
}

func (t This) String() string    { return "this" }
func (t This) Span() token.Token { return t.Tok }
func (This) isType()             {}

// TypeQuery is the `typeof x` form: the type of whatever expression path
// Path names, evaluated (post-narrowing) at the query site.
type TypeQuery struct {
	Tok  token.Token
	Path []string
}

func (q TypeQuery) String() string    { return "typeof " + strings.Join(q.Path, ".") }
func (q TypeQuery) Span() token.Token { return q.Tok }
func (TypeQuery) isType()             {}

// Unresolved wraps a syntactic type that has not yet been expanded
// (e.g. a forward reference to an alias not yet declared). Raw holds
// the originating AST type node as an opaque value. Nothing in this
// module constructs one, and the analyzer's type expansion returns it
// unchanged.
type Unresolved struct {
	Tok token.Token
	Raw interface{}
}

func (u Unresolved) String() string    { return "<unresolved>" }
func (u Unresolved) Span() token.Token { return u.Tok }
func (Unresolved) isType()             {}
