package analyzer

import (
	"github.com/veritype/veritype/internal/ast"
	"github.com/veritype/veritype/internal/diagnostics"
	"github.com/veritype/veritype/internal/scope"
	"github.com/veritype/veritype/internal/token"
	"github.com/veritype/veritype/internal/types"
)

// ResolveCall implements §4.4 for a call expression (construct=false)
// or a `new` expression (construct=true).
func (a *Analyzer) ResolveCall(sc *scope.Scope, callee ast.Expression, args []ast.Expression, typeArgs []types.Type, construct bool, tok token.Token) types.Type {
	argTypes := make([]types.Type, len(args))
	for i, arg := range args {
		argTypes[i] = a.TypeOf(sc, arg)
	}

	// Method-call fast path: callee is a member expression.
	if member, ok := callee.(*ast.MemberExpression); ok && !member.Computed {
		if prop, ok := member.Property.(*ast.Identifier); ok {
			objType := a.TypeOf(sc, member.Object)
			if candidates := a.methodCandidates(sc, objType, prop.Value); len(candidates) > 0 {
				return a.resolveOverloadSet(candidates, argTypes, typeArgs, tok)
			}
		}
	}

	calleeType := a.TypeOf(sc, callee)
	return a.dispatchCall(sc, calleeType, argTypes, typeArgs, construct, tok)
}

// methodCandidates collects every member of objType's nominal type
// whose name matches, restricted to the appropriate kind for a call.
func (a *Analyzer) methodCandidates(sc *scope.Scope, objType types.Type, name string) []types.Member {
	switch o := objType.(type) {
	case types.Interface:
		return filterCallable(o.FindMembers(name))
	case types.Class:
		return filterCallable(o.FindMembers(name))
	case types.Ref:
		expanded := a.expandType(sc, o, false)
		if _, same := expanded.(types.Ref); !same {
			return a.methodCandidates(sc, expanded, name)
		}
	}
	return nil
}

func filterCallable(members []types.Member) []types.Member {
	var out []types.Member
	for _, m := range members {
		if m.Kind == types.MemberMethod || m.Kind == types.MemberConstructor {
			out = append(out, m)
		}
	}
	return out
}

// resolveOverloadSet implements §4.4 step 2: exactly one candidate
// returns its return type directly; several candidates are
// disambiguated by argument-count match; otherwise ambiguous.
func (a *Analyzer) resolveOverloadSet(candidates []types.Member, argTypes []types.Type, typeArgs []types.Type, tok token.Token) types.Type {
	if len(candidates) == 1 {
		return a.instantiateCallable(candidates[0].Type, argTypes, typeArgs, tok)
	}
	var arityMatch []types.Member
	for _, c := range candidates {
		if fn, ok := c.Type.(types.Function); ok {
			min, max := fn.MinMaxArity()
			if len(argTypes) >= min && len(argTypes) <= max {
				arityMatch = append(arityMatch, c)
			}
		}
	}
	if len(arityMatch) == 1 {
		return a.instantiateCallable(arityMatch[0].Type, argTypes, typeArgs, tok)
	}
	a.addError(diagnostics.Newf(diagnostics.ErrAmbiguousOverload, tok, "call is ambiguous between %d overloads", len(candidates)))
	return types.Any
}

// dispatchCall implements §4.4 step 3: dispatch on the callee type.
func (a *Analyzer) dispatchCall(sc *scope.Scope, calleeType types.Type, argTypes []types.Type, typeArgs []types.Type, construct bool, tok token.Token) types.Type {
	switch ct := calleeType.(type) {
	case types.Function:
		if construct {
			a.addError(diagnostics.NewError(diagnostics.ErrNoConstructSignature, tok, "no construct signature"))
			return types.Any
		}
		return a.instantiateCallable(ct, argTypes, typeArgs, tok)
	case types.Constructor:
		if !construct {
			a.addError(diagnostics.NewError(diagnostics.ErrNoCallSignature, tok, "no call signature"))
			return types.Any
		}
		return a.instantiateCallable(ct, argTypes, typeArgs, tok)
	case types.Keyword:
		if ct.Name == "any" {
			return types.Any
		}
	case types.Union:
		var resultMembers []types.Type
		var anyFailed bool
		for _, m := range ct.Members {
			silent := &Analyzer{File: a.File, Builtins: a.Builtins, Imports: a.Imports, errorSet: make(map[string]*diagnostics.DiagnosticError), TypeMap: a.TypeMap, returnCollector: a.returnCollector, EnforceTypeArgArity: a.EnforceTypeArgArity}
			r := silent.dispatchCall(sc, m, argTypes, typeArgs, construct, tok)
			if len(silent.errors) == 0 {
				resultMembers = append(resultMembers, r)
			} else {
				anyFailed = true
			}
		}
		if len(resultMembers) > 0 {
			if anyFailed {
				// a partial union match still succeeds in this design: the
				// spec only aggregates into an error when *all* fail.
			}
			return types.NormalizeUnion(resultMembers)
		}
		a.addError(diagnostics.NewError(diagnostics.ErrUnionError, tok, "no union member has a matching call/construct signature"))
		return types.Any
	case types.Interface:
		return a.dispatchViaSignatures(ct.Members, ct.String(), argTypes, typeArgs, construct, tok)
	}
	code := diagnostics.ErrNoCallSignature
	label := "call"
	if construct {
		code = diagnostics.ErrNoConstructSignature
		label = "construct"
	}
	a.addError(diagnostics.Newf(code, tok, "no %s signature on type %q", label, typeOrAny(calleeType)))
	return types.Any
}

func (a *Analyzer) dispatchViaSignatures(members []types.Member, ownerName string, argTypes []types.Type, typeArgs []types.Type, construct bool, tok token.Token) types.Type {
	wantKind := types.MemberCallSignature
	if construct {
		wantKind = types.MemberConstructSignature
	}
	var candidates []types.Member
	for _, m := range members {
		if m.Kind == wantKind {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		code := diagnostics.ErrNoCallSignature
		if construct {
			code = diagnostics.ErrNoConstructSignature
		}
		a.addError(diagnostics.Newf(code, tok, "type %q has no matching signature", ownerName))
		return types.Any
	}
	return a.resolveOverloadSet(candidates, argTypes, typeArgs, tok)
}

// instantiateCallable is the "instantiation contract" (§4.4): verify
// arity, substitute type arguments (capture-free, §9 open question 2),
// and return the substituted return type.
func (a *Analyzer) instantiateCallable(callable types.Type, argTypes []types.Type, typeArgs []types.Type, tok token.Token) types.Type {
	var params []types.FuncParam
	var typeParams []types.TypeParam
	var ret types.Type

	switch c := callable.(type) {
	case types.Function:
		params, typeParams, ret = c.Params, c.TypeParams, c.Return
	case types.Constructor:
		params, typeParams, ret = c.Params, c.TypeParams, c.Return
	default:
		a.addError(diagnostics.NewError(diagnostics.ErrNoCallSignature, tok, "no call/construct signature"))
		return types.Any
	}

	min, max := arityOf(params)
	if len(argTypes) < min || len(argTypes) > max {
		a.addError(diagnostics.Newf(diagnostics.ErrWrongParamCount, tok, "expected %d-%d arguments, got %d", min, max, len(argTypes)))
	}

	// Type-argument arity (§9) is checked only when EnforceTypeArgArity
	// is set; config.DefaultRules sets it, while an Analyzer built by New
	// leaves it off, and then extra or missing type arguments are
	// silently truncated/padded.
	if a.EnforceTypeArgArity && len(typeArgs) > 0 && len(typeArgs) != len(typeParams) {
		a.addError(diagnostics.Newf(diagnostics.ErrTypeArgArity, tok, "expected %d type arguments, got %d", len(typeParams), len(typeArgs)))
	}

	if ret == nil {
		return types.Keyword{Name: "undefined", Tok: tok}
	}
	if len(typeParams) == 0 {
		return ret
	}
	subst := types.BindTypeParams(typeParams, typeArgs)
	return types.Substitute(ret, subst)
}

func arityOf(params []types.FuncParam) (int, int) {
	min, max := 0, len(params)
	for _, p := range params {
		if !p.Optional {
			min++
		}
	}
	return min, max
}

func typeOrAny(t types.Type) string {
	if t == nil {
		return "any"
	}
	return t.String()
}
