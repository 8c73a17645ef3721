package analyzer

import (
	"github.com/veritype/veritype/internal/ast"
	"github.com/veritype/veritype/internal/scope"
	"github.com/veritype/veritype/internal/types"
)

// resolveTypeNode translates a syntactic type annotation into the
// algebraic type model, without resolving named references — that is
// ExpandType's job (§4.1). A TypeRefNode always becomes a types.Ref;
// callers that need the referent resolved call ExpandType afterward.
func (a *Analyzer) resolveTypeNode(sc *scope.Scope, n ast.TypeNode) types.Type {
	if n == nil {
		return nil
	}
	switch tn := n.(type) {
	case *ast.KeywordTypeNode:
		return types.Keyword{Name: tn.Name, Tok: tn.Token}
	case *ast.LiteralTypeNode:
		switch tn.Kind {
		case "string":
			return types.Lit{Tok: tn.Token, Kind: types.LitString, StrVal: tn.Str}
		case "number":
			return types.Lit{Tok: tn.Token, Kind: types.LitNumber, NumVal: tn.Num}
		case "boolean":
			return types.Lit{Tok: tn.Token, Kind: types.LitBool, BoolVal: tn.Bool}
		}
		return types.Any
	case *ast.ArrayTypeNode:
		return types.Array{Tok: tn.Token, Elem: a.resolveTypeNode(sc, tn.Elem)}
	case *ast.TupleTypeNode:
		elems := make([]types.Type, len(tn.Elems))
		for i, e := range tn.Elems {
			elems[i] = a.resolveTypeNode(sc, e)
		}
		return types.Tuple{Tok: tn.Token, Elems: elems}
	case *ast.UnionTypeNode:
		members := make([]types.Type, len(tn.Types))
		for i, t := range tn.Types {
			members[i] = a.resolveTypeNode(sc, t)
		}
		return types.NormalizeUnion(members)
	case *ast.IntersectionTypeNode:
		members := make([]types.Type, len(tn.Types))
		for i, t := range tn.Types {
			members[i] = a.resolveTypeNode(sc, t)
		}
		return types.NormalizeIntersection(members)
	case *ast.FunctionTypeNode:
		return types.Function{
			Tok:        tn.Token,
			Params:     a.resolveFuncParams(sc, tn.Params),
			TypeParams: a.resolveTypeParams(sc, tn.TypeParams),
			Return:     a.resolveTypeNode(sc, tn.ReturnType),
		}
	case *ast.ConstructorTypeNode:
		return types.Constructor{
			Tok:        tn.Token,
			Params:     a.resolveFuncParams(sc, tn.Params),
			TypeParams: a.resolveTypeParams(sc, tn.TypeParams),
			Return:     a.resolveTypeNode(sc, tn.ReturnType),
		}
	case *ast.TypeRefNode:
		args := make([]types.Type, len(tn.Args))
		for i, ar := range tn.Args {
			args[i] = a.resolveTypeNode(sc, ar)
		}
		return types.Ref{Tok: tn.Token, Path: tn.Path, Args: args}
	case *ast.TypeLiteralNode:
		return types.Interface{Tok: tn.Token, Members: a.resolveInterfaceMembers(sc, tn.Members)}
	case *ast.ThisTypeNode:
		if t, ok := sc.This(); ok {
			if th, ok := t.(types.This); ok {
				return th
			}
		}
		return types.This{Tok: tn.Token}
	case *ast.TypeQueryNode:
		return types.TypeQuery{Tok: tn.Token, Path: tn.Path}
	}
	return types.Any
}

func (a *Analyzer) resolveFuncParams(sc *scope.Scope, params []*ast.Param) []types.FuncParam {
	out := make([]types.FuncParam, len(params))
	for i, p := range params {
		out[i] = types.FuncParam{Name: p.Name.Value, Optional: p.Optional || p.Default != nil, Type: a.resolveTypeNode(sc, p.Type)}
	}
	return out
}

func (a *Analyzer) resolveTypeParams(sc *scope.Scope, tps []*ast.TypeParamNode) []types.TypeParam {
	out := make([]types.TypeParam, len(tps))
	for i, tp := range tps {
		out[i] = types.TypeParam{
			Tok:        tp.Token,
			Name:       tp.Name.Value,
			Constraint: a.resolveTypeNode(sc, tp.Constraint),
			Default:    a.resolveTypeNode(sc, tp.Default),
		}
	}
	return out
}

func (a *Analyzer) resolveInterfaceMembers(sc *scope.Scope, members []*ast.InterfaceMember) []types.Member {
	out := make([]types.Member, 0, len(members))
	for _, m := range members {
		kind := interfaceMemberKind(m.Kind)
		var memberType types.Type
		switch m.Kind {
		case "call", "construct":
			memberType = types.Function{Params: a.resolveFuncParams(sc, m.Params), TypeParams: a.resolveTypeParams(sc, m.TypeParams), Return: a.resolveTypeNode(sc, m.Type)}
		case "method", "get", "set":
			memberType = types.Function{Params: a.resolveFuncParams(sc, m.Params), TypeParams: a.resolveTypeParams(sc, m.TypeParams), Return: a.resolveTypeNode(sc, m.Type)}
		default:
			memberType = a.resolveTypeNode(sc, m.Type)
		}
		name := ""
		if m.Name != nil {
			name = propertyKeyName(m.Name)
		}
		out = append(out, types.Member{Name: name, Kind: kind, Type: memberType, Optional: m.Optional, Readonly: m.Readonly})
	}
	return out
}

func interfaceMemberKind(k string) types.MemberKind {
	switch k {
	case "method":
		return types.MemberMethod
	case "get":
		return types.MemberGetter
	case "set":
		return types.MemberSetter
	case "call":
		return types.MemberCallSignature
	case "construct":
		return types.MemberConstructSignature
	case "index":
		return types.MemberIndexSignature
	default:
		return types.MemberField
	}
}
