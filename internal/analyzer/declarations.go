package analyzer

import (
	"github.com/veritype/veritype/internal/ast"
	"github.com/veritype/veritype/internal/diagnostics"
	"github.com/veritype/veritype/internal/scope"
	"github.com/veritype/veritype/internal/types"
)

// declareHeader pre-declares a statement's name-introducing shape
// (function/class/interface/enum/type-alias/import) so later
// statements in the same file can forward-reference it, mirroring the
// teacher's AnalyzeHeaders-before-AnalyzeBodies split.
func (a *Analyzer) declareHeader(sc *scope.Scope, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.FunctionDeclaration:
		fnType := a.buildFunctionType(sc, s.Params, s.ReturnType, s.TypeParams, nil)
		sc.DefineVar(s.Name.Value, scope.LetDecl, fnType, true)
	case *ast.ClassDeclaration:
		sc.DefineType(s.Name.Value, types.Class{Tok: s.Token, Name: s.Name.Value})
		sc.DefineVar(s.Name.Value, scope.LetDecl, types.Constructor{Tok: s.Token}, true)
	case *ast.InterfaceDeclaration:
		sc.DefineType(s.Name.Value, types.Interface{Tok: s.Token, Name: s.Name.Value, TypeParams: a.resolveTypeParams(sc, s.TypeParams)})
	case *ast.EnumDeclaration:
		sc.DefineType(s.Name.Value, a.buildEnumType(sc, s))
	case *ast.TypeAliasDeclaration:
		sc.DefineType(s.Name.Value, types.Alias{Tok: s.Token, Name: s.Name.Value, TypeParams: a.resolveTypeParams(sc, s.TypeParams)})
	case *ast.ImportDeclaration:
		a.declareImportBindings(sc, s)
	case *ast.ExportDeclaration:
		if s.Declaration != nil {
			a.declareHeader(sc, s.Declaration)
		}
	}
}

// declareImportBindings implements the local-binding half of §4.8: a
// failed import (ResolveImport returning false) marks every local
// binding from it as `any` so downstream errors are not cascaded.
func (a *Analyzer) declareImportBindings(sc *scope.Scope, imp *ast.ImportDeclaration) {
	bind := func(local string) {
		if t, ok := a.Imports.ResolveImport(local); ok {
			sc.DefineVar(local, scope.ConstDecl, t, true)
		} else {
			sc.DefineVar(local, scope.ConstDecl, types.Any, true)
		}
	}
	if imp.Default != nil {
		bind(imp.Default.Value)
	}
	if imp.NamespaceAs != nil {
		bind(imp.NamespaceAs.Value)
	}
	for _, spec := range imp.Specifiers {
		bind(spec.Local.Value)
	}
}

func (a *Analyzer) buildEnumType(sc *scope.Scope, decl *ast.EnumDeclaration) types.Enum {
	members := make([]types.EnumMember, len(decl.Members))
	for i, m := range decl.Members {
		var init types.Type
		if m.Init != nil {
			init = a.TypeOf(sc, m.Init)
		}
		members[i] = types.EnumMember{Name: m.Name.Value, Init: init}
	}
	return types.Enum{Tok: decl.Token, Name: decl.Name.Value, Members: members}
}

func (a *Analyzer) buildFunctionType(sc *scope.Scope, params []*ast.Param, retNode ast.TypeNode, typeParamNodes []*ast.TypeParamNode, inferredReturn types.Type) types.Function {
	ret := inferredReturn
	if retNode != nil {
		ret = a.ExpandType(sc, a.resolveTypeNode(sc, retNode))
	}
	return types.Function{
		Params:     a.resolveFuncParams(sc, params),
		TypeParams: a.resolveTypeParams(sc, typeParamNodes),
		Return:     ret,
	}
}

// validateParamOrdering raises TS1016 ("a required parameter cannot
// follow an optional parameter") per §4.5.
func (a *Analyzer) validateParamOrdering(params []*ast.Param) {
	seenOptional := false
	for _, p := range params {
		isOptional := p.Optional || p.Default != nil
		if seenOptional && !isOptional && !p.IsParameterProperty {
			a.addError(diagnostics.NewError(diagnostics.TS1016, p.Token, "a required parameter cannot follow an optional parameter"))
		}
		if isOptional {
			seenOptional = true
		}
	}
}

// analyzeFunctionLike implements the function declarations/expressions
// rules of §4.5: push a function scope, pre-declare the function name
// bound to its own type for recursion, bind type parameters, declare
// parameters (validating optional/required ordering), visit the body
// collecting return types, and check every collected return against a
// declared return annotation.
func (a *Analyzer) analyzeFunctionLike(sc *scope.Scope, name *ast.Identifier, params []*ast.Param, retNode ast.TypeNode, typeParamNodes []*ast.TypeParamNode, body *ast.BlockStatement, tok interface{}, ambient bool) types.Function {
	a.validateParamOrdering(params)

	fnScope := sc.Enter(scope.Fn)
	typeParams := a.resolveTypeParams(fnScope, typeParamNodes)
	for _, tp := range typeParams {
		fnScope.DefineType(tp.Name, tp)
	}

	funcParams := a.resolveFuncParams(fnScope, params)
	for i, p := range params {
		pt := funcParams[i].Type
		fnScope.DefineVar(p.Name.Value, scope.ParamDecl, pt, true)
	}

	if name != nil {
		selfType := a.buildFunctionType(fnScope, params, retNode, typeParamNodes, nil)
		fnScope.DefineVar(name.Value, scope.LetDecl, selfType, true)
	}

	var declaredReturn types.Type
	if retNode != nil {
		declaredReturn = a.ExpandType(fnScope, a.resolveTypeNode(fnScope, retNode))
	}

	var inferred []types.Type
	if body != nil {
		key := ast.Node(body)
		a.returnCollector[key] = nil
		a.funcBodyStack = append(a.funcBodyStack, key)
		a.analyzeBlock(fnScope, body)
		a.funcBodyStack = a.funcBodyStack[:len(a.funcBodyStack)-1]
		inferred = a.returnCollector[key]
		delete(a.returnCollector, key)

		if declaredReturn != nil {
			for _, rt := range inferred {
				if !Assignable(rt, declaredReturn) {
					a.addError(diagnostics.Newf(diagnostics.ErrNotAssignable, body.Token, "return type %q is not assignable to declared return type %q", rt.String(), declaredReturn.String()))
				}
			}
		}
	}

	ret := declaredReturn
	if ret == nil {
		ret = inferReturnType(inferred)
	}

	return types.Function{Params: funcParams, TypeParams: typeParams, Return: ret}
}

func inferReturnType(collected []types.Type) types.Type {
	switch len(collected) {
	case 0:
		return types.Keyword{Name: "undefined"}
	case 1:
		return collected[0]
	default:
		return types.NormalizeUnion(dedupEqual(collected))
	}
}

// analyzeClassLike implements the class rules of §4.5: validate the
// body (overload grouping, parameter properties, getter-must-return),
// compute the class's structural type, register the class name as
// both a type and a value binding, and set scope.this while visiting
// members.
func (a *Analyzer) analyzeClassLike(sc *scope.Scope, name *ast.Identifier, typeParamNodes []*ast.TypeParamNode, extends ast.TypeNode, implements []ast.TypeNode, members []*ast.ClassMember, tok interface{}, ambient bool) types.Class {
	className := ""
	if name != nil {
		className = name.Value
	}
	classType := types.Class{Name: className}
	classScope := sc.Enter(scope.Class)
	classScope.SetThis(types.This{ClassName: className})

	a.validateOverloadGrouping(members, ambient)

	var classMembers []types.Member
	var parents []types.Type
	if extends != nil {
		parents = append(parents, a.resolveTypeNode(classScope, extends))
	}
	for _, impl := range implements {
		parents = append(parents, a.resolveTypeNode(classScope, impl))
	}

	// Bodyless non-overload-terminal members were already flagged by
	// validateOverloadGrouping above; they still contribute a member
	// entry here so member-access/call resolution can see the signature.
	for _, m := range members {
		classMembers = append(classMembers, a.analyzeClassMember(classScope, m))
	}

	classType.Members = classMembers
	classType.Parents = parents
	if name != nil {
		sc.DefineType(name.Value, classType)
		ctorParams := a.constructorParams(classScope, members)
		sc.DefineVar(name.Value, scope.LetDecl, types.Constructor{Params: ctorParams, Return: classType}, true)
	}
	return classType
}

func (a *Analyzer) constructorParams(sc *scope.Scope, members []*ast.ClassMember) []types.FuncParam {
	for _, m := range members {
		if m.Kind == ast.ClassConstructor {
			return a.resolveFuncParams(sc, m.Params)
		}
	}
	return nil
}

func (a *Analyzer) analyzeClassMember(sc *scope.Scope, m *ast.ClassMember) types.Member {
	switch m.Kind {
	case ast.ClassField:
		var t types.Type
		if m.FieldType != nil {
			t = a.ExpandType(sc, a.resolveTypeNode(sc, m.FieldType))
		} else if m.FieldInit != nil {
			t = a.TypeOf(sc, m.FieldInit)
		} else {
			t = types.Any
		}
		return types.Member{Name: fieldName(m), Kind: types.MemberField, Type: t, Optional: m.Optional, Static: m.Static, Readonly: m.Readonly}

	case ast.ClassConstructor:
		if m.Body != nil {
			a.validateParameterProperties(m.Params, true)
		} else {
			a.validateParameterProperties(m.Params, false)
		}
		fn := a.analyzeFunctionLike(sc, nil, m.Params, m.ReturnType, m.TypeParams, m.Body, m.Token, m.Body == nil)
		return types.Member{Name: "constructor", Kind: types.MemberConstructor, Type: types.Constructor{Params: fn.Params, TypeParams: fn.TypeParams}}

	case ast.ClassGetter:
		if m.Body != nil && !containsReturn(m.Body) {
			a.addError(diagnostics.Newf(diagnostics.ErrUndefinedSymbol, m.Token, "getter %q must return a value", fieldName(m)))
		}
		fn := a.analyzeFunctionLike(sc, nil, m.Params, m.ReturnType, m.TypeParams, m.Body, m.Token, m.Body == nil)
		return types.Member{Name: fieldName(m), Kind: types.MemberGetter, Type: fn, Static: m.Static}

	case ast.ClassSetter:
		fn := a.analyzeFunctionLike(sc, nil, m.Params, m.ReturnType, m.TypeParams, m.Body, m.Token, m.Body == nil)
		return types.Member{Name: fieldName(m), Kind: types.MemberSetter, Type: fn, Static: m.Static}

	default: // ClassMethod
		fn := a.analyzeFunctionLike(sc, nil, m.Params, m.ReturnType, m.TypeParams, m.Body, m.Token, m.Body == nil)
		return types.Member{Name: fieldName(m), Kind: types.MemberMethod, Type: fn, Optional: m.Optional, Static: m.Static}
	}
}

func fieldName(m *ast.ClassMember) string {
	if key, ok := m.NameKey(); ok {
		return key
	}
	return ""
}

// validateParameterProperties raises TS2369: a constructor parameter
// may only be a parameter-property when the constructor has a body.
func (a *Analyzer) validateParameterProperties(params []*ast.Param, hasBody bool) {
	if hasBody {
		return
	}
	for _, p := range params {
		if p.IsParameterProperty {
			a.addError(diagnostics.NewError(diagnostics.TS2369, p.Token, "a parameter property is only allowed in a constructor implementation"))
		}
	}
}

func containsReturn(block *ast.BlockStatement) bool {
	for _, s := range block.Statements {
		if stmtContainsReturn(s) {
			return true
		}
	}
	return false
}

func stmtContainsReturn(s ast.Statement) bool {
	switch st := s.(type) {
	case *ast.ReturnStatement:
		return true
	case *ast.BlockStatement:
		return containsReturn(st)
	case *ast.IfStatement:
		if stmtContainsReturn(st.Consequent) {
			return true
		}
		return st.Alternate != nil && stmtContainsReturn(st.Alternate)
	case *ast.WhileStatement:
		return stmtContainsReturn(st.Body)
	case *ast.ForStatement:
		return stmtContainsReturn(st.Body)
	}
	return false
}

// validateOverloadGrouping implements the class-body overload-grouping
// rule of §4.5: a run of same-named bodyless member declarations must
// terminate in a body-bearing declaration with the same name. Computed
// keys are excluded (treated as opaque). Not enforced in ambient
// classes.
func (a *Analyzer) validateOverloadGrouping(members []*ast.ClassMember, ambient bool) {
	if ambient {
		return
	}
	var pendingName string
	var pending *ast.ClassMember

	flushMissing := func(tokenSource *ast.ClassMember) {
		if pending == nil {
			return
		}
		code := diagnostics.TS2391
		msg := "function implementation is missing or not immediately following the declaration"
		if pendingName == "constructor" {
			code = diagnostics.TS2389
			msg = "constructor implementation is missing"
		}
		at := pending.Token
		if tokenSource != nil {
			at = tokenSource.Token
		}
		a.addError(diagnostics.NewError(code, at, msg))
	}

	for _, m := range members {
		key, named := m.NameKey()
		if !named {
			flushMissing(m)
			pending = nil
			pendingName = ""
			continue
		}
		if pending != nil && key == pendingName {
			if m.Body != nil {
				pending = nil
				pendingName = ""
				continue
			}
			continue // still bodyless in the same overload run
		}
		if pending != nil && key != pendingName {
			flushMissing(m)
			pending = nil
			pendingName = ""
		}
		if m.Body == nil {
			pending = m
			pendingName = key
		}
	}
	flushMissing(nil)
}
