package analyzer

import (
	"github.com/veritype/veritype/internal/ast"
	"github.com/veritype/veritype/internal/scope"
	"github.com/veritype/veritype/internal/types"
)

// facts is a (name -> refined type) map, the overlay unit described in
// §4.6: "a boolean test produces, for its then- and else-branches, a
// (name -> refined-type) map applied on top of the scope."
type facts map[string]types.Type

// narrowingFacts computes the then/else facts overlays for a boolean
// test expression, design-level per §4.6. Supported forms:
//   - bare identifier truthiness: narrows a nullable union by
//     dropping/keeping the null|undefined members;
//   - `typeof x === "kind"` / `typeof x == "kind"`: narrows x to the
//     named primitive keyword in the then-branch;
//   - identifier compared to a literal (`x === 1`): narrows x to that
//     literal type in the then-branch;
//   - `&&`/`||`: composes the left operand's then/else facts into the
//     right operand's evaluation, per short-circuit semantics;
//   - `!test`: swaps the operand's then- and else-facts.
//
// Anything else yields no facts (the overlay is simply empty, which is
// always sound — it just narrows nothing).
func (a *Analyzer) narrowingFacts(sc *scope.Scope, test ast.Expression) (facts, facts) {
	switch t := test.(type) {
	case *ast.Identifier:
		return a.factsFromTruthiness(sc, t)
	case *ast.BinaryExpression:
		switch t.Operator {
		case "===", "==":
			return a.factsFromEquality(sc, t.Left, t.Right)
		case "&&":
			lThen, _ := a.narrowingFacts(sc, t.Left)
			rScope := sc.Enter(scope.Block)
			applyFacts(rScope, lThen)
			rThen, _ := a.narrowingFacts(rScope, t.Right)
			return mergeFacts(lThen, rThen), nil
		case "||":
			_, lElse := a.narrowingFacts(sc, t.Left)
			rScope := sc.Enter(scope.Block)
			applyFacts(rScope, lElse)
			_, rElse := a.narrowingFacts(rScope, t.Right)
			return nil, mergeFacts(lElse, rElse)
		}
	case *ast.UnaryExpression:
		if t.Operator == "!" {
			th, el := a.narrowingFacts(sc, t.Operand)
			return el, th
		}
	}
	return nil, nil
}

func (a *Analyzer) factsFromTruthiness(sc *scope.Scope, id *ast.Identifier) (facts, facts) {
	b, _, ok := sc.LookupVar(id.Value)
	if !ok {
		return nil, nil
	}
	u, ok := b.Type.(types.Union)
	if !ok {
		return nil, nil
	}
	var truthy, falsy []types.Type
	for _, m := range u.Members {
		if isFalsyKeyword(m) {
			falsy = append(falsy, m)
		} else {
			truthy = append(truthy, m)
		}
	}
	out := facts{}
	elseOut := facts{}
	if len(truthy) > 0 {
		out[id.Value] = narrowedOrAny(truthy)
	}
	if len(falsy) > 0 {
		elseOut[id.Value] = narrowedOrAny(falsy)
	}
	return out, elseOut
}

func isFalsyKeyword(t types.Type) bool {
	kw, ok := t.(types.Keyword)
	return ok && (kw.Name == "null" || kw.Name == "undefined" || kw.Name == "void")
}

func narrowedOrAny(ts []types.Type) types.Type {
	if len(ts) == 1 {
		return ts[0]
	}
	return types.NormalizeUnion(ts)
}

func (a *Analyzer) factsFromEquality(sc *scope.Scope, left, right ast.Expression) (facts, facts) {
	if id, lit, ok := identAndLiteral(left, right); ok {
		return facts{id.Value: a.TypeOf(sc, lit)}, nil
	}
	if u, ok := left.(*ast.UnaryExpression); ok && u.Operator == "typeof" {
		if id, ok := u.Operand.(*ast.Identifier); ok {
			if strLit, ok := right.(*ast.StringLiteral); ok {
				return facts{id.Value: types.Keyword{Name: strLit.Value, Tok: strLit.Token}}, nil
			}
		}
	}
	return nil, nil
}

func identAndLiteral(left, right ast.Expression) (*ast.Identifier, ast.Expression, bool) {
	if id, ok := left.(*ast.Identifier); ok && isLiteralExpr(right) {
		return id, right, true
	}
	if id, ok := right.(*ast.Identifier); ok && isLiteralExpr(left) {
		return id, left, true
	}
	return nil, nil, false
}

func isLiteralExpr(e ast.Expression) bool {
	switch e.(type) {
	case *ast.StringLiteral, *ast.NumberLiteral, *ast.BooleanLiteral, *ast.NullLiteral:
		return true
	}
	return false
}

func mergeFacts(a, b facts) facts {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	out := make(facts, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// applyFacts pushes every fact into sc's overlay (§4.6: "applied on
// top of the scope while visiting the corresponding block").
func applyFacts(sc *scope.Scope, f facts) {
	for name, t := range f {
		sc.PushFact(name, t)
	}
}
