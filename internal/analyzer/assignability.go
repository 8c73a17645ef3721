package analyzer

import "github.com/veritype/veritype/internal/types"

// Assignable implements §4.7: is source S assignable to target T
// under structural rules. Spans never participate; callers that need
// a diagnostic wrap this with their own token.
func Assignable(s, t types.Type) bool {
	if s == nil || t == nil {
		return s == nil && t == nil
	}
	if isAny(s) || isAny(t) {
		return true
	}
	if isNever(s) {
		return true
	}

	if su, ok := s.(types.Union); ok {
		for _, m := range su.Members {
			if !Assignable(m, t) {
				return false
			}
		}
		return true
	}
	if tu, ok := t.(types.Union); ok {
		for _, m := range tu.Members {
			if Assignable(s, m) {
				return true
			}
		}
		return false
	}

	if si, ok := s.(types.Intersection); ok {
		for _, m := range si.Members {
			if Assignable(m, t) {
				return true
			}
		}
		return false
	}
	if ti, ok := t.(types.Intersection); ok {
		for _, m := range ti.Members {
			if !Assignable(s, m) {
				return false
			}
		}
		return true
	}

	if sl, ok := s.(types.Lit); ok {
		if Assignable(sl.Widen(), t) {
			return true
		}
		if tl, ok := t.(types.Lit); ok {
			return types.Equal(sl, tl)
		}
		return false
	}

	switch st := s.(type) {
	case types.Keyword:
		tt, ok := t.(types.Keyword)
		return ok && st.Name == tt.Name
	case types.Array:
		tt, ok := t.(types.Array)
		return ok && Assignable(st.Elem, tt.Elem)
	case types.Tuple:
		tt, ok := t.(types.Tuple)
		if !ok || len(st.Elems) != len(tt.Elems) {
			return false
		}
		for i := range st.Elems {
			if !Assignable(st.Elems[i], tt.Elems[i]) {
				return false
			}
		}
		return true
	case types.Function:
		return assignableFuncLike(st.Params, st.Return, t)
	case types.Constructor:
		tt, ok := t.(types.Constructor)
		return ok && assignableFuncLike(st.Params, st.Return, tt.AsFunction())
	case types.Class:
		return structurallyAssignable(memberSetOf(st), t)
	case types.Interface:
		return structurallyAssignable(memberSetOf(st), t)
	case types.Enum:
		tt, ok := t.(types.Enum)
		return ok && st.Name == tt.Name
	case types.EnumVariant:
		if tt, ok := t.(types.EnumVariant); ok {
			return st.Enum == tt.Enum && st.Variant == tt.Variant
		}
		if tt, ok := t.(types.Enum); ok {
			return st.Enum == tt.Name
		}
		return false
	case types.This:
		tt, ok := t.(types.This)
		return ok && st.ClassName == tt.ClassName
	}

	return types.Equal(s, t)
}

func isAny(t types.Type) bool {
	kw, ok := t.(types.Keyword)
	return ok && kw.Name == "any"
}

func isNever(t types.Type) bool {
	kw, ok := t.(types.Keyword)
	return ok && kw.Name == "never"
}

// assignableFuncLike checks function assignability: contravariant in
// each matched parameter, covariant in return. Extra source parameters
// are tolerated; missing required source parameters are rejected.
func assignableFuncLike(sParams []types.FuncParam, sReturn types.Type, t types.Type) bool {
	tFunc, ok := t.(types.Function)
	if !ok {
		return false
	}
	if len(sParams) < requiredCount(tFunc.Params) {
		return false
	}
	for i, tp := range tFunc.Params {
		if i >= len(sParams) {
			if !tp.Optional {
				return false
			}
			continue
		}
		// contravariant: target's param type must be assignable to source's
		if !Assignable(tp.Type, sParams[i].Type) {
			return false
		}
	}
	if sReturn == nil || tFunc.Return == nil {
		return true
	}
	return Assignable(sReturn, tFunc.Return)
}

func requiredCount(params []types.FuncParam) int {
	n := 0
	for _, p := range params {
		if !p.Optional {
			n++
		}
	}
	return n
}

func memberSetOf(t types.Type) []types.Member {
	switch tt := t.(type) {
	case types.Class:
		return tt.Members
	case types.Interface:
		return tt.Members
	}
	return nil
}

// structurallyAssignable checks that every member the target requires
// is present and assignable on the source (classes/interfaces are
// structural by member set, per §4.7).
func structurallyAssignable(sourceMembers []types.Member, t types.Type) bool {
	var targetMembers []types.Member
	switch tt := t.(type) {
	case types.Interface:
		targetMembers = tt.Members
	case types.Class:
		targetMembers = tt.Members
	default:
		return false
	}
	for _, tm := range targetMembers {
		found := false
		for _, sm := range sourceMembers {
			if sm.Name != tm.Name || sm.Kind != tm.Kind {
				continue
			}
			if Assignable(sm.Type, tm.Type) {
				found = true
				break
			}
		}
		if !found && !tm.Optional {
			return false
		}
	}
	return true
}
