package types

import (
	"strings"

	"github.com/veritype/veritype/internal/token"
)

// MemberKind distinguishes the kinds of entries a Class/Interface body
// can carry.
type MemberKind int

const (
	MemberField MemberKind = iota
	MemberMethod
	MemberGetter
	MemberSetter
	MemberConstructor
	MemberCallSignature
	MemberConstructSignature
	MemberIndexSignature
)

// Member is one entry of a Class or Interface body: a field, method,
// constructor, call signature, construct signature, or index signature.
type Member struct {
	Name     string // empty for call/construct/index signatures
	Kind     MemberKind
	Type     Type // field type, or Function/Constructor type for callable members
	Optional bool
	Static   bool
	Readonly bool
}

func membersString(members []Member) string {
	parts := make([]string, len(members))
	for i, m := range members {
		opt := ""
		if m.Optional {
			opt = "?"
		}
		parts[i] = m.Name + opt + ": " + typeOrVoid(m.Type)
	}
	return strings.Join(parts, "; ")
}

func typeOrVoid(t Type) string {
	if t == nil {
		return "void"
	}
	return t.String()
}

// Class is a class's structural type: an optional name plus its body.
type Class struct {
	Tok     token.Token
	Name    string // "" for anonymous class expressions
	Members []Member
	Parents []Type // extends/implements, structural only
}

func (c Class) String() string {
	if c.Name != "" {
		return "class " + c.Name
	}
	return "class {" + membersString(c.Members) + "}"
}
func (c Class) Span() token.Token { return c.Tok }
func (Class) isType()             {}

// FindMembers returns every member whose name matches key (used to
// build overload candidate sets for method/call resolution).
func (c Class) FindMembers(key string) []Member {
	return findMembers(c.Members, key)
}

// Interface is a structural interface or inline type-literal type.
type Interface struct {
	Tok        token.Token
	Name       string // "" for inline type literals
	TypeParams []TypeParam
	Members    []Member
	Parents    []Type
}

func (i Interface) String() string {
	if i.Name != "" {
		return i.Name + typeParamsString(i.TypeParams)
	}
	return "{" + membersString(i.Members) + "}"
}
func (i Interface) Span() token.Token { return i.Tok }
func (Interface) isType()             {}

func (i Interface) FindMembers(key string) []Member {
	return findMembers(i.Members, key)
}

func findMembers(members []Member, key string) []Member {
	var out []Member
	for _, m := range members {
		if m.Name == key {
			out = append(out, m)
		}
	}
	return out
}

// EnumMember is a single named case of an Enum, with an optional
// constant initializer (nil means the ordinal index is used).
type EnumMember struct {
	Name string
	Init Type // nil, or a Lit
}

// Enum is a TypeScript-style enum: an ordered list of members, each
// optionally carrying a constant initializer.
type Enum struct {
	Tok     token.Token
	Name    string
	Members []EnumMember
}

func (e Enum) String() string { return e.Name }
func (e Enum) Span() token.Token { return e.Tok }
func (Enum) isType()              {}

// MemberIndex returns the ordinal position and initializer (if any) of
// the named member, or -1 if not found.
func (e Enum) MemberIndex(name string) (int, Type, bool) {
	for i, m := range e.Members {
		if m.Name == name {
			return i, m.Init, true
		}
	}
	return -1, nil, false
}

// EnumVariant is a reference to a single member of an enum, used at the
// type level (the type of `E.A`).
type EnumVariant struct {
	Tok     token.Token
	Enum    string
	Variant string
}

func (v EnumVariant) String() string    { return v.Enum + "." + v.Variant }
func (v EnumVariant) Span() token.Token { return v.Tok }
func (EnumVariant) isType()             {}

// Alias is a named alias for another type, optionally parameterized.
type Alias struct {
	Tok        token.Token
	Name       string
	TypeParams []TypeParam
	Aliased    Type
}

func (a Alias) String() string    { return a.Name + typeParamsString(a.TypeParams) }
func (a Alias) Span() token.Token { return a.Tok }
func (Alias) isType()             {}

// Ref is an unresolved reference to a named type, by dotted entity path
// (e.g. ["A", "B"] for `A.B`), with optional type arguments.
type Ref struct {
	Tok  token.Token
	Path []string
	Args []Type
}

func (r Ref) String() string {
	s := strings.Join(r.Path, ".")
	if len(r.Args) > 0 {
		parts := make([]string, len(r.Args))
		for i, a := range r.Args {
			parts[i] = a.String()
		}
		s += "<" + strings.Join(parts, ", ") + ">"
	}
	return s
}
func (r Ref) Span() token.Token { return r.Tok }
func (Ref) isType()             {}

// Name returns the final segment of the reference path (the simple
// name, ignoring any qualifying module/namespace prefix).
func (r Ref) Name() string {
	if len(r.Path) == 0 {
		return ""
	}
	return r.Path[len(r.Path)-1]
}
