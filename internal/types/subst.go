package types

// Subst maps a type parameter name to the type it is instantiated
// with. Mirrors the teacher's typesystem.Subst/Apply convention
// (symbols.RenameTypeVars builds one of these then calls t.Apply(subst))
// but implements proper capture-free substitution rather than a
// renaming-only stub: every structural position is rebuilt recursively,
// and a TypeParam not present in the map is left untouched instead of
// raising a capture.
type Subst map[string]Type

// Substitute rewrites every TypeParam reference in t found in subst,
// recursing into every structural position (array/tuple element,
// union/intersection member, function/constructor param and return,
// interface/class member types, alias body, ref type arguments).
// Declarations that introduce their own type parameter of the same
// name (nested generic functions/types) shadow the substitution for
// their own body, which is capture-avoidance: Substitute removes that
// name from the map before recursing into such a body.
func Substitute(t Type, subst Subst) Type {
	if t == nil || len(subst) == 0 {
		return t
	}
	switch tt := t.(type) {
	case TypeParam:
		if r, ok := subst[tt.Name]; ok {
			return r
		}
		return tt
	case Keyword, Lit, This, TypeQuery, Unresolved, Enum, EnumVariant:
		return t
	case Array:
		return Array{Tok: tt.Tok, Elem: Substitute(tt.Elem, subst)}
	case Tuple:
		elems := make([]Type, len(tt.Elems))
		for i, e := range tt.Elems {
			elems[i] = Substitute(e, subst)
		}
		return Tuple{Tok: tt.Tok, Elems: elems}
	case Union:
		members := make([]Type, len(tt.Members))
		for i, m := range tt.Members {
			members[i] = Substitute(m, subst)
		}
		return NormalizeUnion(members)
	case Intersection:
		members := make([]Type, len(tt.Members))
		for i, m := range tt.Members {
			members[i] = Substitute(m, subst)
		}
		return NormalizeIntersection(members)
	case Function:
		return Function{
			Tok:        tt.Tok,
			Params:     substParams(tt.Params, withoutOwn(subst, tt.TypeParams)),
			TypeParams: tt.TypeParams,
			Return:     Substitute(tt.Return, withoutOwn(subst, tt.TypeParams)),
		}
	case Constructor:
		return Constructor{
			Tok:        tt.Tok,
			Params:     substParams(tt.Params, withoutOwn(subst, tt.TypeParams)),
			TypeParams: tt.TypeParams,
			Return:     Substitute(tt.Return, withoutOwn(subst, tt.TypeParams)),
		}
	case Interface:
		inner := withoutOwn(subst, tt.TypeParams)
		return Interface{
			Tok:        tt.Tok,
			Name:       tt.Name,
			TypeParams: tt.TypeParams,
			Members:    substMembers(tt.Members, inner),
			Parents:    substAll(tt.Parents, inner),
		}
	case Class:
		return Class{
			Tok:     tt.Tok,
			Name:    tt.Name,
			Members: substMembers(tt.Members, subst),
			Parents: substAll(tt.Parents, subst),
		}
	case Alias:
		inner := withoutOwn(subst, tt.TypeParams)
		return Alias{
			Tok:        tt.Tok,
			Name:       tt.Name,
			TypeParams: tt.TypeParams,
			Aliased:    Substitute(tt.Aliased, inner),
		}
	case Ref:
		return Ref{Tok: tt.Tok, Path: tt.Path, Args: substAll(tt.Args, subst)}
	}
	return t
}

func withoutOwn(subst Subst, owned []TypeParam) Subst {
	if len(owned) == 0 {
		return subst
	}
	clone := make(Subst, len(subst))
	for k, v := range subst {
		clone[k] = v
	}
	for _, tp := range owned {
		delete(clone, tp.Name)
	}
	return clone
}

func substParams(params []FuncParam, subst Subst) []FuncParam {
	out := make([]FuncParam, len(params))
	for i, p := range params {
		out[i] = FuncParam{Name: p.Name, Optional: p.Optional, Type: Substitute(p.Type, subst)}
	}
	return out
}

func substMembers(members []Member, subst Subst) []Member {
	out := make([]Member, len(members))
	for i, m := range members {
		out[i] = Member{
			Name:     m.Name,
			Kind:     m.Kind,
			Type:     Substitute(m.Type, subst),
			Optional: m.Optional,
			Static:   m.Static,
			Readonly: m.Readonly,
		}
	}
	return out
}

func substAll(ts []Type, subst Subst) []Type {
	if ts == nil {
		return nil
	}
	out := make([]Type, len(ts))
	for i, t := range ts {
		out[i] = Substitute(t, subst)
	}
	return out
}

// BindTypeParams builds a Subst from a declaration's formal type
// parameters and the actual type arguments supplied at a call/new or
// type-reference site. Formals beyond len(args) fall back to their
// Default (if any); formals with neither an actual nor a default are
// left unbound, so Substitute leaves their TypeParam references in
// place.
func BindTypeParams(formals []TypeParam, args []Type) Subst {
	subst := make(Subst, len(formals))
	for i, f := range formals {
		if i < len(args) {
			subst[f.Name] = args[i]
		} else if f.Default != nil {
			subst[f.Name] = f.Default
		}
	}
	return subst
}
