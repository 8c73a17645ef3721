package analyzer

import (
	"github.com/veritype/veritype/internal/diagnostics"
	"github.com/veritype/veritype/internal/scope"
	"github.com/veritype/veritype/internal/types"
)

// ExpandType is "fix_type" (spec §4.1): given a possibly-unresolved
// type, produce a type free of shallow Ref nodes. Expansion is
// idempotent and shallow — it only rewrites the outermost head,
// rebuilding union/intersection members by expanding each member.
func (a *Analyzer) ExpandType(sc *scope.Scope, t types.Type) types.Type {
	return a.expandType(sc, t, true)
}

// expandType is the internal worker; requireResolved controls whether
// a failed head-name resolution raises a diagnostic (only required
// when the context demands it, e.g. a variable-declaration annotation,
// per §4.1's closing paragraph).
func (a *Analyzer) expandType(sc *scope.Scope, t types.Type, requireResolved bool) types.Type {
	switch tt := t.(type) {
	case types.Union:
		members := make([]types.Type, len(tt.Members))
		for i, m := range tt.Members {
			members[i] = a.expandType(sc, m, requireResolved)
		}
		return types.NormalizeUnion(members)
	case types.Intersection:
		members := make([]types.Type, len(tt.Members))
		for i, m := range tt.Members {
			members[i] = a.expandType(sc, m, requireResolved)
		}
		return types.NormalizeIntersection(members)
	case types.TypeQuery:
		return a.expandTypeQuery(sc, tt)
	case types.Ref:
		return a.expandRef(sc, tt, requireResolved)
	default:
		return t
	}
}

func (a *Analyzer) expandTypeQuery(sc *scope.Scope, q types.TypeQuery) types.Type {
	if len(q.Path) == 0 {
		return types.Any
	}
	t, ok := sc.Resolve(q.Path[0])
	if !ok {
		if bt, ok2 := a.Builtins.Lookup(q.Path[0]); ok2 {
			t = bt
		} else {
			a.addError(diagnostics.Newf(diagnostics.ErrUndefinedSymbol, q.Tok, "undefined symbol %q", q.Path[0]))
			return types.Any
		}
	}
	for _, seg := range q.Path[1:] {
		t = a.MemberType(sc, t, seg, false, q.Tok)
	}
	return t
}

func (a *Analyzer) expandRef(sc *scope.Scope, r types.Ref, requireResolved bool) types.Type {
	name := r.Name()

	// Rule 4: `A.B` where A resolves to an Enum becomes EnumVariant{A, B}.
	if len(r.Path) >= 2 {
		headName := r.Path[0]
		if headType, ok := sc.LookupType(headName); ok {
			if en, ok := headType.(types.Enum); ok {
				return types.EnumVariant{Tok: r.Tok, Enum: en.Name, Variant: r.Path[len(r.Path)-1]}
			}
		}
	}

	declared, foundDeclared := sc.LookupType(name)
	if foundDeclared {
		switch d := declared.(type) {
		case types.Enum:
			// Rule 2: a Ref to an Enum with non-empty type args is an error.
			if len(r.Args) > 0 {
				a.addError(diagnostics.Newf(diagnostics.ErrTypeArgArity, r.Tok, "enum %q does not accept type arguments", d.Name))
				return types.Any
			}
			return d
		case types.Interface, types.Class:
			// Rule 3: returned as-is (lazy). An Interface still gets any
			// explicit type arguments applied via capture-free
			// substitution; a Class carries no type parameters, so
			// instantiateGeneric returns it unchanged.
			if len(r.Args) == 0 {
				return d
			}
			return a.instantiateGeneric(d, r.Args)
		case types.Alias:
			if a.expandDepth >= a.maxExpandDepth() {
				a.addError(diagnostics.Newf(diagnostics.ErrUndefinedSymbol, r.Tok, "type %q exceeds the maximum alias-expansion depth (cyclic type reference?)", d.Name))
				return types.Any
			}
			a.expandDepth++
			defer func() { a.expandDepth-- }()
			if len(r.Args) == 0 && len(d.TypeParams) == 0 {
				return a.expandType(sc, d.Aliased, requireResolved)
			}
			subst := types.BindTypeParams(d.TypeParams, r.Args)
			return a.expandType(sc, types.Substitute(d.Aliased, subst), requireResolved)
		case types.TypeParam:
			return d
		default:
			return declared
		}
	}

	// Rule 1: a Ref naming a builtin is replaced by the builtin's type.
	if bt, ok := a.Builtins.Lookup(name); ok {
		if len(r.Args) == 0 {
			return bt
		}
		return a.instantiateGeneric(bt, r.Args)
	}

	if requireResolved {
		a.addError(diagnostics.Newf(diagnostics.ErrUndefinedSymbol, r.Tok, "undefined symbol %q", name))
	}
	return types.Any
}

// instantiateGeneric applies Args to a generic Interface/Alias head via
// capture-free substitution (resolves Open Question 2: the source's
// substitution stub is implemented properly here). Any other head,
// including a Class (which carries no type parameters), is returned
// unchanged.
func (a *Analyzer) instantiateGeneric(head types.Type, args []types.Type) types.Type {
	switch h := head.(type) {
	case types.Interface:
		subst := types.BindTypeParams(h.TypeParams, args)
		return types.Substitute(h, subst)
	case types.Alias:
		subst := types.BindTypeParams(h.TypeParams, args)
		return types.Substitute(h.Aliased, subst)
	default:
		return head
	}
}

