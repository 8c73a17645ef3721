package builtinlib

import (
	"testing"

	"github.com/veritype/veritype/internal/types"
)

func TestKeywordMembersCoversCorePrototypes(t *testing.T) {
	lib := New()
	for _, kw := range []string{"string", "number", "boolean", "Array", "RegExp"} {
		if _, ok := lib.KeywordMembers(kw); !ok {
			t.Errorf("expected %q prototype members to be registered", kw)
		}
	}
	if _, ok := lib.KeywordMembers("nope"); ok {
		t.Errorf("expected no members for an unregistered keyword")
	}
}

func TestStringPrototypeHasToUpperCase(t *testing.T) {
	lib := New()
	members, ok := lib.KeywordMembers("string")
	if !ok {
		t.Fatal("expected string prototype members")
	}
	found := false
	for _, m := range members {
		if m.Name == "toUpperCase" {
			found = true
			fn, ok := m.Type.(interface{ String() string })
			if !ok || fn.String() == "" {
				t.Errorf("expected toUpperCase to carry a describable function type")
			}
		}
	}
	if !found {
		t.Errorf("expected toUpperCase among string prototype members")
	}
}

func TestArrayPrototypePushReturnsNumber(t *testing.T) {
	lib := New()
	members, _ := lib.KeywordMembers("Array")
	for _, m := range members {
		if m.Name == "push" {
			fn, ok := m.Type.(types.Function)
			if !ok || fn.Return != types.Number {
				t.Errorf("expected push to return number, got %v", m.Type)
			}
			return
		}
	}
	t.Errorf("expected push among Array prototype members")
}

func TestLookupResolvesAmbientGlobals(t *testing.T) {
	lib := New()
	if _, ok := lib.Lookup("console"); !ok {
		t.Errorf("expected console to be an ambient global")
	}
	if _, ok := lib.Lookup("JSON"); !ok {
		t.Errorf("expected JSON to be an ambient global")
	}
	if _, ok := lib.Lookup("notDefined"); ok {
		t.Errorf("expected undefined global to miss")
	}
}

func TestDefineOverridesGlobal(t *testing.T) {
	lib := New()
	lib.Define("console", stringT)
	got, ok := lib.Lookup("console")
	if !ok {
		t.Fatal("expected console still defined")
	}
	if got != stringT {
		t.Errorf("expected Define to overwrite the existing binding")
	}
}
