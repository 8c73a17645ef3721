package types

// Equal reports whether a and b are structurally identical, ignoring
// source spans (never part of structural identity) but respecting
// bound identifier names inside function/constructor signatures.
// Named classes, interfaces, enums, aliases and type parameters compare
// by name only; an anonymous class equals nothing.
func Equal(a, b Type) bool { return equal(a, b, false) }

// EqualIgnoreNameAndSpan additionally ignores bound parameter names,
// used when comparing function/constructor shapes structurally (e.g.
// conditional-expression branch comparison, §4.2).
func EqualIgnoreNameAndSpan(a, b Type) bool { return equal(a, b, true) }

func equal(a, b Type, ignoreNames bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch at := a.(type) {
	case Keyword:
		bt, ok := b.(Keyword)
		return ok && at.Name == bt.Name
	case Lit:
		bt, ok := b.(Lit)
		if !ok || at.Kind != bt.Kind {
			return false
		}
		switch at.Kind {
		case LitBool:
			return at.BoolVal == bt.BoolVal
		case LitNumber:
			return at.NumVal == bt.NumVal
		case LitString:
			return at.StrVal == bt.StrVal
		}
		return false
	case Array:
		bt, ok := b.(Array)
		return ok && equal(at.Elem, bt.Elem, ignoreNames)
	case Tuple:
		bt, ok := b.(Tuple)
		if !ok || len(at.Elems) != len(bt.Elems) {
			return false
		}
		for i := range at.Elems {
			if !equal(at.Elems[i], bt.Elems[i], ignoreNames) {
				return false
			}
		}
		return true
	case Union:
		bt, ok := b.(Union)
		return ok && sameMemberSet(at.Members, bt.Members, ignoreNames)
	case Intersection:
		bt, ok := b.(Intersection)
		return ok && sameMemberSet(at.Members, bt.Members, ignoreNames)
	case Function:
		bt, ok := b.(Function)
		return ok && equalFuncLike(at.Params, at.Return, bt.Params, bt.Return, ignoreNames)
	case Constructor:
		bt, ok := b.(Constructor)
		return ok && equalFuncLike(at.Params, at.Return, bt.Params, bt.Return, ignoreNames)
	case Class:
		bt, ok := b.(Class)
		return ok && at.Name == bt.Name && at.Name != ""
	case Interface:
		bt, ok := b.(Interface)
		if !ok {
			return false
		}
		if at.Name != "" || bt.Name != "" {
			return at.Name == bt.Name
		}
		return equalMembers(at.Members, bt.Members, ignoreNames)
	case Enum:
		bt, ok := b.(Enum)
		return ok && at.Name == bt.Name
	case EnumVariant:
		bt, ok := b.(EnumVariant)
		return ok && at.Enum == bt.Enum && at.Variant == bt.Variant
	case TypeParam:
		bt, ok := b.(TypeParam)
		return ok && at.Name == bt.Name
	case Alias:
		bt, ok := b.(Alias)
		return ok && at.Name == bt.Name
	case Ref:
		bt, ok := b.(Ref)
		if !ok || len(at.Path) != len(bt.Path) || len(at.Args) != len(bt.Args) {
			return false
		}
		for i := range at.Path {
			if at.Path[i] != bt.Path[i] {
				return false
			}
		}
		for i := range at.Args {
			if !equal(at.Args[i], bt.Args[i], ignoreNames) {
				return false
			}
		}
		return true
	case This:
		bt, ok := b.(This)
		return ok && at.ClassName == bt.ClassName
	case TypeQuery:
		bt, ok := b.(TypeQuery)
		if !ok || len(at.Path) != len(bt.Path) {
			return false
		}
		for i := range at.Path {
			if at.Path[i] != bt.Path[i] {
				return false
			}
		}
		return true
	case Unresolved:
		return false
	}
	return false
}

func equalFuncLike(ap []FuncParam, aret Type, bp []FuncParam, bret Type, ignoreNames bool) bool {
	if len(ap) != len(bp) {
		return false
	}
	for i := range ap {
		if !ignoreNames && ap[i].Name != bp[i].Name {
			return false
		}
		if ap[i].Optional != bp[i].Optional {
			return false
		}
		if !equal(ap[i].Type, bp[i].Type, ignoreNames) {
			return false
		}
	}
	return equal(aret, bret, ignoreNames)
}

func equalMembers(a, b []Member, ignoreNames bool) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, ma := range a {
		found := false
		for j, mb := range b {
			if used[j] || ma.Name != mb.Name || ma.Kind != mb.Kind {
				continue
			}
			if equal(ma.Type, mb.Type, ignoreNames) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sameMemberSet(a, b []Type, ignoreNames bool) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, ta := range a {
		found := false
		for j, tb := range b {
			if used[j] {
				continue
			}
			if equal(ta, tb, ignoreNames) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
