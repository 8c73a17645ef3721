package analyzer

import (
	"github.com/veritype/veritype/internal/ast"
	"github.com/veritype/veritype/internal/diagnostics"
	"github.com/veritype/veritype/internal/scope"
	"github.com/veritype/veritype/internal/types"
)

// analyzeStatement dispatches a single statement, mirroring the
// teacher's statement-visitor split (internal/analyzer/statements.go).
func (a *Analyzer) analyzeStatement(sc *scope.Scope, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		a.analyzeVariableDeclaration(sc, s)
	case *ast.FunctionDeclaration:
		a.analyzeFunctionDeclaration(sc, s)
	case *ast.ClassDeclaration:
		a.analyzeClassLike(sc, s.Name, s.TypeParams, s.Extends, s.Implements, s.Members, s.Token, s.Ambient)
	case *ast.InterfaceDeclaration:
		a.analyzeInterfaceDeclaration(sc, s)
	case *ast.EnumDeclaration:
		sc.DefineType(s.Name.Value, a.buildEnumType(sc, s))
	case *ast.TypeAliasDeclaration:
		a.analyzeTypeAliasDeclaration(sc, s)
	case *ast.ExpressionStatement:
		a.TypeOf(sc, s.Expression)
	case *ast.BlockStatement:
		a.analyzeBlock(sc.Enter(scope.Block), s)
	case *ast.ReturnStatement:
		a.analyzeReturn(sc, s)
	case *ast.IfStatement:
		a.analyzeIf(sc, s)
	case *ast.WhileStatement:
		a.analyzeWhile(sc, s)
	case *ast.ForStatement:
		a.analyzeFor(sc, s)
	case *ast.BreakStatement:
		if a.loopDepth == 0 {
			a.addError(diagnostics.NewError(diagnostics.ErrUndefinedSymbol, s.Token, "'break' used outside of a loop"))
		}
	case *ast.ContinueStatement:
		if a.loopDepth == 0 {
			a.addError(diagnostics.NewError(diagnostics.ErrUndefinedSymbol, s.Token, "'continue' used outside of a loop"))
		}
	case *ast.DirectiveStatement:
		// directives carry no type information
	case *ast.ImportDeclaration:
		a.declareImportBindings(sc, s)
	case *ast.ExportDeclaration:
		a.analyzeExport(sc, s)
	}
}

func (a *Analyzer) analyzeBlock(sc *scope.Scope, block *ast.BlockStatement) {
	for _, stmt := range block.Statements {
		a.declareHeader(sc, stmt)
	}
	for _, stmt := range block.Statements {
		a.analyzeStatement(sc, stmt)
	}
}

func (a *Analyzer) analyzeFunctionDeclaration(sc *scope.Scope, fn *ast.FunctionDeclaration) {
	fnType := a.analyzeFunctionLike(sc, fn.Name, fn.Params, fn.ReturnType, fn.TypeParams, fn.Body, fn.Token, fn.Ambient)
	sc.DefineVar(fn.Name.Value, scope.LetDecl, fnType, true)
}

func (a *Analyzer) analyzeReturn(sc *scope.Scope, ret *ast.ReturnStatement) {
	var t types.Type
	if ret.Value != nil {
		t = a.TypeOf(sc, ret.Value)
	} else {
		t = types.Keyword{Name: "undefined", Tok: ret.Token}
	}
	if len(a.funcBodyStack) == 0 {
		return
	}
	key := a.funcBodyStack[len(a.funcBodyStack)-1]
	a.returnCollector[key] = append(a.returnCollector[key], t)
}

func (a *Analyzer) analyzeIf(sc *scope.Scope, ifs *ast.IfStatement) {
	a.TypeOf(sc, ifs.Test)
	thenFacts, elseFacts := a.narrowingFacts(sc, ifs.Test)

	thenScope := sc.Enter(scope.Block)
	applyFacts(thenScope, thenFacts)
	a.analyzeStatement(thenScope, ifs.Consequent)

	if ifs.Alternate != nil {
		elseScope := sc.Enter(scope.Block)
		applyFacts(elseScope, elseFacts)
		a.analyzeStatement(elseScope, ifs.Alternate)
	}
}

func (a *Analyzer) analyzeWhile(sc *scope.Scope, ws *ast.WhileStatement) {
	a.TypeOf(sc, ws.Test)
	thenFacts, _ := a.narrowingFacts(sc, ws.Test)
	bodyScope := sc.Enter(scope.Block)
	applyFacts(bodyScope, thenFacts)
	a.loopDepth++
	a.analyzeStatement(bodyScope, ws.Body)
	a.loopDepth--
}

func (a *Analyzer) analyzeFor(sc *scope.Scope, fs *ast.ForStatement) {
	forScope := sc.Enter(scope.Block)
	if fs.Init != nil {
		a.declareHeader(forScope, fs.Init)
		a.analyzeStatement(forScope, fs.Init)
	}
	if fs.Test != nil {
		a.TypeOf(forScope, fs.Test)
	}
	if fs.Update != nil {
		a.TypeOf(forScope, fs.Update)
	}
	a.loopDepth++
	a.analyzeStatement(forScope, fs.Body)
	a.loopDepth--
}

// analyzeVariableDeclaration implements §4.5's variable-declaration
// rules for every declarator: initializer typing + annotation
// assignability-check when both are present; the annotation alone (or
// a deferred placeholder) when there is no initializer; var tolerates
// redeclaration, let/const do not.
func (a *Analyzer) analyzeVariableDeclaration(sc *scope.Scope, decl *ast.VariableDeclaration) {
	kind := declKindOf(decl.Kind)
	for _, d := range decl.Declarators {
		if kind != scope.VarDecl {
			if _, ok := sc.LookupVarLocal(d.Name.Value); ok {
				a.addError(diagnostics.Newf(diagnostics.ErrRedeclaration, d.Name.Token, "cannot redeclare block-scoped variable %q", d.Name.Value))
			}
		}

		var declaredType types.Type
		if d.TypeAnnotation != nil {
			declaredType = a.ExpandType(sc, a.resolveTypeNode(sc, d.TypeAnnotation))
		}

		if d.Init != nil {
			initType := a.TypeOf(sc, d.Init)
			if declaredType != nil {
				if !Assignable(initType, declaredType) {
					a.addError(diagnostics.Newf(diagnostics.ErrNotAssignable, d.Name.Token, "type %q is not assignable to type %q", initType.String(), declaredType.String()))
				}
				sc.DefineVar(d.Name.Value, kind, declaredType, true)
			} else {
				sc.DefineVar(d.Name.Value, kind, initType, true)
			}
			continue
		}

		if decl.Ambient {
			continue
		}
		if declaredType != nil {
			sc.DefineVar(d.Name.Value, kind, declaredType, false)
		} else {
			sc.DefineVar(d.Name.Value, kind, types.Any, false)
		}
	}
}

func declKindOf(k ast.VariableKind) scope.DeclKind {
	switch k {
	case ast.LetKind:
		return scope.LetDecl
	case ast.ConstKind:
		return scope.ConstDecl
	default:
		return scope.VarDecl
	}
}

func (a *Analyzer) analyzeInterfaceDeclaration(sc *scope.Scope, decl *ast.InterfaceDeclaration) {
	typeParams := a.resolveTypeParams(sc, decl.TypeParams)
	ifaceScope := sc.Enter(scope.Block)
	for _, tp := range typeParams {
		ifaceScope.DefineType(tp.Name, tp)
	}
	var parents []types.Type
	for _, ext := range decl.Extends {
		parents = append(parents, a.resolveTypeNode(ifaceScope, ext))
	}
	iface := types.Interface{
		Tok:        decl.Token,
		Name:       decl.Name.Value,
		TypeParams: typeParams,
		Members:    a.resolveInterfaceMembers(ifaceScope, decl.Members),
		Parents:    parents,
	}
	sc.DefineType(decl.Name.Value, iface)
}

func (a *Analyzer) analyzeTypeAliasDeclaration(sc *scope.Scope, decl *ast.TypeAliasDeclaration) {
	typeParams := a.resolveTypeParams(sc, decl.TypeParams)
	aliasScope := sc.Enter(scope.Block)
	for _, tp := range typeParams {
		aliasScope.DefineType(tp.Name, tp)
	}
	aliased := a.resolveTypeNode(aliasScope, decl.Value)
	sc.DefineType(decl.Name.Value, types.Alias{Tok: decl.Token, Name: decl.Name.Value, TypeParams: typeParams, Aliased: aliased})
}

func (a *Analyzer) analyzeExport(sc *scope.Scope, exp *ast.ExportDeclaration) {
	if exp.Declaration != nil {
		a.analyzeStatement(sc, exp.Declaration)
		return
	}
	if exp.Expression != nil {
		a.TypeOf(sc, exp.Expression)
	}
}
