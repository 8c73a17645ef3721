package analyzer

import (
	"github.com/veritype/veritype/internal/ast"
	"github.com/veritype/veritype/internal/diagnostics"
	"github.com/veritype/veritype/internal/scope"
	"github.com/veritype/veritype/internal/types"
)

// TypeOf is "type_of" (§4.2): a total function from expression to
// type. It never panics; unsupported/undefined forms raise a
// diagnostic and return `any` so the caller can keep analyzing.
func (a *Analyzer) TypeOf(sc *scope.Scope, expr ast.Expression) types.Type {
	if expr == nil {
		return types.Keyword{Name: "undefined"}
	}
	t := a.typeOf(sc, expr)
	return a.recordType(expr, t)
}

func (a *Analyzer) typeOf(sc *scope.Scope, expr ast.Expression) types.Type {
	switch e := expr.(type) {
	case *ast.Identifier:
		return a.typeOfIdentifier(sc, e)
	case *ast.NumberLiteral:
		return types.Lit{Tok: e.Token, Kind: types.LitNumber, NumVal: e.Value}
	case *ast.StringLiteral:
		return types.Lit{Tok: e.Token, Kind: types.LitString, StrVal: e.Value}
	case *ast.BooleanLiteral:
		return types.Lit{Tok: e.Token, Kind: types.LitBool, BoolVal: e.Value}
	case *ast.NullLiteral:
		return types.Keyword{Name: "null", Tok: e.Token}
	case *ast.UndefinedLiteral:
		return types.Keyword{Name: "undefined", Tok: e.Token}
	case *ast.RegexLiteral:
		return types.Ref{Tok: e.Token, Path: []string{"RegExp"}}
	case *ast.TemplateLiteral:
		for _, sub := range e.Expressions {
			a.TypeOf(sc, sub)
		}
		return types.Keyword{Name: "string", Tok: e.Token}
	case *ast.ThisExpression:
		if t, ok := sc.This(); ok {
			return t
		}
		a.addError(diagnostics.NewError(diagnostics.ErrUndefinedSymbol, e.Token, "'this' used outside of a class body"))
		return types.Any
	case *ast.SpreadElement:
		a.addError(diagnostics.NewError(diagnostics.ErrUndefinedSymbol, e.Token, "spread elements are not supported here"))
		return types.Any
	case *ast.ArrayLiteral:
		return a.typeOfArrayLiteral(sc, e)
	case *ast.ObjectLiteral:
		return a.typeOfObjectLiteral(sc, e)
	case *ast.MemberExpression:
		return a.typeOfMemberExpression(sc, e)
	case *ast.CallExpression:
		typeArgs := a.resolveTypeArgs(sc, e.TypeArguments)
		return a.ResolveCall(sc, e.Callee, e.Arguments, typeArgs, false, e.Token)
	case *ast.NewExpression:
		typeArgs := a.resolveTypeArgs(sc, e.TypeArguments)
		return a.ResolveCall(sc, e.Callee, e.Arguments, typeArgs, true, e.Token)
	case *ast.BinaryExpression:
		return a.typeOfBinary(sc, e)
	case *ast.UnaryExpression:
		return a.typeOfUnary(sc, e)
	case *ast.ConditionalExpression:
		return a.typeOfConditional(sc, e)
	case *ast.AssignmentExpression:
		return a.typeOfAssignment(sc, e)
	case *ast.SequenceExpression:
		var last types.Type = types.Keyword{Name: "undefined"}
		for _, sub := range e.Expressions {
			last = a.TypeOf(sc, sub)
		}
		return last
	case *ast.AnnotatedExpression:
		a.TypeOf(sc, e.Expression)
		return a.ExpandType(sc, a.resolveTypeNode(sc, e.Type))
	case *ast.FunctionExpression:
		return a.analyzeFunctionLike(sc, e.Name, e.Params, e.ReturnType, e.TypeParams, e.Body, e.Token, false)
	case *ast.ClassExpression:
		return a.analyzeClassLike(sc, nil, e.TypeParams, e.Extends, e.Implements, e.Members, e.Token, false)
	}
	a.addError(diagnostics.NewError(diagnostics.ErrUndefinedSymbol, expr.GetToken(), "unsupported expression form"))
	return types.Any
}

func (a *Analyzer) typeOfIdentifier(sc *scope.Scope, id *ast.Identifier) types.Type {
	if id.Value == "undefined" {
		return types.Keyword{Name: "undefined", Tok: id.Token}
	}
	if t, ok := sc.Resolve(id.Value); ok {
		return t
	}
	if t, ok := a.Imports.ResolveImport(id.Value); ok {
		return t
	}
	if t, ok := a.Builtins.Lookup(id.Value); ok {
		return t
	}
	a.addError(diagnostics.Newf(diagnostics.ErrUndefinedSymbol, id.Token, "undefined symbol %q", id.Value))
	return types.Any
}

func (a *Analyzer) typeOfArrayLiteral(sc *scope.Scope, lit *ast.ArrayLiteral) types.Type {
	var elemTypes []types.Type
	for _, el := range lit.Elements {
		if el == nil {
			elemTypes = append(elemTypes, types.Keyword{Name: "undefined", Tok: lit.Token})
			continue
		}
		if _, isSpread := el.(*ast.SpreadElement); isSpread {
			a.addError(diagnostics.NewError(diagnostics.ErrUndefinedSymbol, el.GetToken(), "spread elements are not supported in array literals"))
			continue
		}
		elemTypes = append(elemTypes, types.Widen(a.TypeOf(sc, el)))
	}
	if len(elemTypes) == 0 {
		return types.Array{Tok: lit.Token, Elem: types.Any}
	}
	deduped := dedupEqual(elemTypes)
	var elem types.Type
	if len(deduped) == 1 {
		elem = deduped[0]
	} else {
		elem = types.NormalizeUnion(deduped)
	}
	return types.Array{Tok: lit.Token, Elem: elem}
}

func dedupEqual(ts []types.Type) []types.Type {
	var out []types.Type
	for _, t := range ts {
		dup := false
		for _, o := range out {
			if types.Equal(t, o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}
	return out
}

func (a *Analyzer) typeOfObjectLiteral(sc *scope.Scope, lit *ast.ObjectLiteral) types.Type {
	var members []types.Member
	for _, prop := range lit.Properties {
		if prop.Computed {
			a.checkComputedKey(sc, prop.Key)
		}
		name := propertyKeyName(prop.Key)
		members = append(members, types.Member{Name: name, Kind: types.MemberField, Type: a.TypeOf(sc, prop.Value)})
	}
	return types.Interface{Tok: lit.Token, Members: members}
}

func propertyKeyName(key ast.Expression) string {
	switch k := key.(type) {
	case *ast.Identifier:
		return k.Value
	case *ast.StringLiteral:
		return k.Value
	case *ast.NumberLiteral:
		return types.Lit{Kind: types.LitNumber, NumVal: k.Value}.String()
	}
	return ""
}

// checkComputedKey implements the "computed property keys" rule of
// §4.5: a computed key must evaluate to a literal type, a symbol
// access, or any.
func (a *Analyzer) checkComputedKey(sc *scope.Scope, key ast.Expression) {
	t := a.TypeOf(sc, key)
	if _, ok := t.(types.Lit); ok {
		return
	}
	if kw, ok := t.(types.Keyword); ok && (kw.Name == "any" || kw.Name == "symbol") {
		return
	}
	if member, ok := key.(*ast.MemberExpression); ok {
		if obj, ok := member.Object.(*ast.Identifier); ok && obj.Value == "Symbol" {
			return
		}
	}
	a.addError(diagnostics.NewError(diagnostics.ErrComputedKeyNotLiteral, key.GetToken(), "computed key must be of literal type"))
}

func (a *Analyzer) typeOfMemberExpression(sc *scope.Scope, m *ast.MemberExpression) types.Type {
	objType := a.TypeOf(sc, m.Object)
	if m.Computed {
		a.checkComputedKey(sc, m.Property)
		if id, ok := m.Property.(*ast.Identifier); ok {
			return a.MemberType(sc, objType, id.Value, true, m.Token)
		}
		if str, ok := m.Property.(*ast.StringLiteral); ok {
			return a.MemberType(sc, objType, str.Value, true, m.Token)
		}
		return types.Any
	}
	prop, ok := m.Property.(*ast.Identifier)
	if !ok {
		a.addError(diagnostics.NewError(diagnostics.ErrNoSuchProperty, m.Token, "property key must be an identifier"))
		return types.Any
	}
	return a.MemberType(sc, objType, prop.Value, false, m.Token)
}

func (a *Analyzer) typeOfBinary(sc *scope.Scope, b *ast.BinaryExpression) types.Type {
	left := a.TypeOf(sc, b.Left)
	right := a.TypeOf(sc, b.Right)
	switch b.Operator {
	case "===", "!==", "==", "!=", "<", "<=", ">", ">=":
		return types.Keyword{Name: "boolean", Tok: b.Token}
	case "-", "*", "/", "%":
		return types.Keyword{Name: "number", Tok: b.Token}
	case "||", "&&":
		_ = left
		return right
	case "+":
		if isStringLike(left) || isStringLike(right) {
			return types.Keyword{Name: "string", Tok: b.Token}
		}
		return types.Keyword{Name: "number", Tok: b.Token}
	}
	a.addError(diagnostics.Newf(diagnostics.ErrUndefinedSymbol, b.Token, "unsupported binary operator %q", b.Operator))
	return types.Any
}

func isStringLike(t types.Type) bool {
	switch tt := t.(type) {
	case types.Keyword:
		return tt.Name == "string"
	case types.Lit:
		return tt.Kind == types.LitString
	}
	return false
}

// typeOfUnary implements §4.2's unary rules, including literal
// negation for `!x` (an explicit, non-"fixed" behavior per §9: the
// spec directs this core to keep the simpler literal-flip rule rather
// than "fixing" it to always produce boolean).
func (a *Analyzer) typeOfUnary(sc *scope.Scope, u *ast.UnaryExpression) types.Type {
	operand := a.TypeOf(sc, u.Operand)
	switch u.Operator {
	case "!":
		if lit, ok := operand.(types.Lit); ok {
			return negateLit(lit, u)
		}
		return types.Keyword{Name: "boolean", Tok: u.Token}
	case "typeof":
		return types.Keyword{Name: "string", Tok: u.Token}
	case "void":
		return types.Keyword{Name: "undefined", Tok: u.Token}
	case "-":
		return types.Keyword{Name: "number", Tok: u.Token}
	}
	a.addError(diagnostics.Newf(diagnostics.ErrUndefinedSymbol, u.Token, "unsupported unary operator %q", u.Operator))
	return types.Any
}

func negateLit(lit types.Lit, u *ast.UnaryExpression) types.Type {
	switch lit.Kind {
	case types.LitBool:
		return types.Lit{Tok: u.Token, Kind: types.LitBool, BoolVal: !lit.BoolVal}
	case types.LitNumber:
		return types.Lit{Tok: u.Token, Kind: types.LitBool, BoolVal: lit.NumVal == 0}
	case types.LitString:
		return types.Lit{Tok: u.Token, Kind: types.LitBool, BoolVal: lit.StrVal == ""}
	}
	return types.Keyword{Name: "boolean", Tok: u.Token}
}

func (a *Analyzer) typeOfConditional(sc *scope.Scope, c *ast.ConditionalExpression) types.Type {
	a.TypeOf(sc, c.Test)
	thenFacts, elseFacts := a.narrowingFacts(sc, c.Test)
	thenScope := sc.Enter(scope.Block)
	applyFacts(thenScope, thenFacts)
	cons := a.TypeOf(thenScope, c.Consequent)
	elseScope := sc.Enter(scope.Block)
	applyFacts(elseScope, elseFacts)
	alt := a.TypeOf(elseScope, c.Alternate)
	if types.EqualIgnoreNameAndSpan(cons, alt) {
		return cons
	}
	return types.NormalizeUnion([]types.Type{cons, alt})
}

func (a *Analyzer) typeOfAssignment(sc *scope.Scope, asn *ast.AssignmentExpression) types.Type {
	valueType := a.TypeOf(sc, asn.Value)
	switch target := asn.Target.(type) {
	case *ast.Identifier:
		// The binding's current type stands in for "the declared type"
		// (declarations store the annotation as the initial binding
		// type; see analyzeVariableDeclaration).
		if b, _, ok := sc.LookupVar(target.Value); ok {
			if !Assignable(valueType, b.Type) && !sameDeclaredPlaceholder(b.Type) {
				a.addError(diagnostics.Newf(diagnostics.ErrNotAssignable, asn.Token, "type %q is not assignable to type %q", valueType.String(), b.Type.String()))
			}
		}
		// Narrow to the widened type, not the literal: `x = 1` refines
		// x to `number`, not to the literal type `1` (§8 testable
		// property #6).
		sc.Refine(target.Value, types.Widen(valueType))
	case *ast.MemberExpression:
		// Assignment to member expressions is not refined (§4.6): the
		// object's type remains authoritative.
		a.TypeOf(sc, target)
	}
	return valueType
}

func sameDeclaredPlaceholder(t types.Type) bool {
	kw, ok := t.(types.Keyword)
	return ok && kw.Name == "any"
}

func (a *Analyzer) resolveTypeArgs(sc *scope.Scope, nodes []ast.TypeNode) []types.Type {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]types.Type, len(nodes))
	for i, n := range nodes {
		out[i] = a.ExpandType(sc, a.resolveTypeNode(sc, n))
	}
	return out
}
