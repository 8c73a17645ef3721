package analyzer

import (
	"github.com/veritype/veritype/internal/diagnostics"
	"github.com/veritype/veritype/internal/scope"
	"github.com/veritype/veritype/internal/token"
	"github.com/veritype/veritype/internal/types"
)

// MemberType implements §4.3 member access: given an already-typed
// object and a property key, resolve the accessed member's type.
// computed is true for `o[k]` (bracket) access.
func (a *Analyzer) MemberType(sc *scope.Scope, obj types.Type, key string, computed bool, tok token.Token) types.Type {
	if obj == nil {
		return types.Any
	}

	if lit, ok := obj.(types.Lit); ok {
		obj = lit.Widen()
	}

	switch o := obj.(type) {
	case types.Keyword:
		if o.Name == "any" {
			return types.Any
		}
		if members, ok := a.Builtins.KeywordMembers(o.Name); ok {
			if t, ok := findMemberType(members, key); ok {
				return t
			}
		}
		a.addError(diagnostics.Newf(diagnostics.ErrNoSuchProperty, tok, "property %q does not exist on type %q", key, o.Name))
		return types.Any

	case types.Array:
		if members, ok := a.Builtins.KeywordMembers("Array"); ok {
			if t, ok := findMemberType(members, key); ok {
				return types.Substitute(t, types.Subst{"T": o.Elem})
			}
		}
		a.addError(diagnostics.Newf(diagnostics.ErrNoSuchProperty, tok, "property %q does not exist on array type", key))
		return types.Any

	case types.Enum:
		if !computed {
			if _, _, ok := o.MemberIndex(key); ok {
				return types.EnumVariant{Tok: tok, Enum: o.Name, Variant: key}
			}
		}
		a.addError(diagnostics.Newf(diagnostics.ErrNoSuchProperty, tok, "enum %q has no member %q", o.Name, key))
		return types.Any

	case types.EnumVariant:
		enumType, ok := sc.LookupType(o.Enum)
		if !ok {
			if bt, ok2 := a.Builtins.Lookup(o.Enum); ok2 {
				enumType = bt
				ok = true
			}
		}
		en, ok2 := enumType.(types.Enum)
		if !ok || !ok2 {
			a.addError(diagnostics.Newf(diagnostics.ErrUndefinedSymbol, tok, "enum %q is not reachable from this scope", o.Enum))
			return types.Any
		}
		idx, init, _ := en.MemberIndex(o.Variant)
		var projected types.Type
		if init != nil {
			projected = init
		} else {
			projected = types.Lit{Tok: tok, Kind: types.LitNumber, NumVal: float64(idx)}
		}
		return a.MemberType(sc, projected, key, computed, tok)

	case types.Interface:
		return a.memberFromNominal(o.FindMembers(key), o.String(), key, tok)

	case types.Class:
		return a.memberFromNominal(o.FindMembers(key), o.String(), key, tok)

	case types.Ref:
		expanded := a.expandType(sc, o, true)
		if _, same := expanded.(types.Ref); same {
			return types.Any
		}
		return a.MemberType(sc, expanded, key, computed, tok)

	default:
		if obj == types.Any {
			return types.Any
		}
		a.addError(diagnostics.Newf(diagnostics.ErrNoSuchProperty, tok, "property %q does not exist on type %q", key, obj.String()))
		return types.Any
	}
}

func findMemberType(members []types.Member, key string) (types.Type, bool) {
	for _, m := range members {
		if m.Name == key {
			return m.Type, true
		}
	}
	return nil, false
}

func (a *Analyzer) memberFromNominal(candidates []types.Member, ownerName, key string, tok token.Token) types.Type {
	if len(candidates) == 0 {
		a.addError(diagnostics.Newf(diagnostics.ErrNoSuchProperty, tok, "property %q does not exist on type %q", key, ownerName))
		return types.Any
	}
	// A single candidate (the common case) returns directly; several
	// candidates (an overloaded method) are resolved at call sites by
	// arity (§4.4) — here we surface the first as the property's type,
	// consistent with member access (not invocation) only needing a type.
	return candidates[0].Type
}
