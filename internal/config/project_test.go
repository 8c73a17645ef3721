package config

import "testing"

func TestDefaultRulesEnforcesTypeArgArity(t *testing.T) {
	r := DefaultRules()
	if !r.EnforceTypeArgArity {
		t.Errorf("expected EnforceTypeArgArity to default true (spec.md §9 Open Question 1)")
	}
}

func TestParseProjectKeepsDefaultsForUnsetFields(t *testing.T) {
	p, err := ParseProject([]byte(`libs:
  - name: fetch
`), "veritype.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Rules.EnforceTypeArgArity {
		t.Errorf("expected unset rules block to keep the default EnforceTypeArgArity=true")
	}
	if len(p.Libs) != 1 || p.Libs[0].Name != "fetch" {
		t.Errorf("expected one lib named fetch, got %+v", p.Libs)
	}
}

func TestParseProjectOverridesRules(t *testing.T) {
	p, err := ParseProject([]byte(`rules:
  enforceTypeArgArity: false
  maxExpandDepth: 8
`), "veritype.yaml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Rules.EnforceTypeArgArity {
		t.Errorf("expected explicit false to override the default")
	}
	if p.Rules.MaxExpandDepth != 8 {
		t.Errorf("expected maxExpandDepth 8, got %d", p.Rules.MaxExpandDepth)
	}
}

func TestHasSourceExt(t *testing.T) {
	if !HasSourceExt("a/b.ts") || !HasSourceExt("a/b.tsx") {
		t.Errorf("expected .ts and .tsx to be recognized source extensions")
	}
	if HasSourceExt("a/b.js") {
		t.Errorf("expected .js to not be a recognized source extension")
	}
}

func TestTrimSourceExt(t *testing.T) {
	if got := TrimSourceExt("widget.tsx"); got != "widget" {
		t.Errorf("expected widget, got %s", got)
	}
	if got := TrimSourceExt("widget"); got != "widget" {
		t.Errorf("expected unchanged name, got %s", got)
	}
}
