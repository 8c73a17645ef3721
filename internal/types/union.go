package types

// NormalizeUnion flattens nested unions, deduplicates members by
// structural equality (ignoring span), and collapses the result: zero
// members is a caller error (never constructed), one member collapses
// to that member, two or more produce a Union.
func NormalizeUnion(members []Type) Type {
	flat := flattenUnion(members)
	deduped := dedup(flat)
	if len(deduped) == 0 {
		return Never
	}
	if len(deduped) == 1 {
		return deduped[0]
	}
	return Union{Members: deduped}
}

func flattenUnion(members []Type) []Type {
	var out []Type
	for _, m := range members {
		if u, ok := m.(Union); ok {
			out = append(out, flattenUnion(u.Members)...)
		} else {
			out = append(out, m)
		}
	}
	return out
}

func dedup(members []Type) []Type {
	var out []Type
	for _, m := range members {
		found := false
		for _, existing := range out {
			if Equal(existing, m) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, m)
		}
	}
	return out
}

// NormalizeIntersection applies the same flatten/dedup/collapse rules
// as NormalizeUnion, dual for intersections.
func NormalizeIntersection(members []Type) Type {
	var flat []Type
	for _, m := range members {
		if i, ok := m.(Intersection); ok {
			flat = append(flat, i.Members...)
		} else {
			flat = append(flat, m)
		}
	}
	deduped := dedup(flat)
	if len(deduped) == 0 {
		return Any
	}
	if len(deduped) == 1 {
		return deduped[0]
	}
	return Intersection{Members: deduped}
}
