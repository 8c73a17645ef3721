package scope

import (
	"testing"

	"github.com/veritype/veritype/internal/types"
)

func TestDefineVarAndLookupLocal(t *testing.T) {
	s := New(Module)
	s.DefineVar("x", LetDecl, types.Number, true)
	b, ok := s.LookupVarLocal("x")
	if !ok || b.Type != types.Number || !b.Initialized {
		t.Fatalf("unexpected binding: %+v %v", b, ok)
	}
	if _, ok := s.LookupVarLocal("y"); ok {
		t.Fatalf("expected y to miss locally")
	}
}

func TestLookupVarWalksParentChain(t *testing.T) {
	parent := New(Module)
	parent.DefineVar("x", ConstDecl, types.String_, true)
	child := parent.Enter(Block)
	b, owner, ok := child.LookupVar("x")
	if !ok || b.Type != types.String_ {
		t.Fatalf("expected x to resolve through the parent, got %+v %v", b, ok)
	}
	if owner != parent {
		t.Fatalf("expected the owning scope to be the parent")
	}
}

func TestEnterInheritsThisType(t *testing.T) {
	root := New(Module)
	classScope := root.Enter(Class)
	classScope.SetThis(types.Number)
	method := classScope.Enter(Fn)
	got, ok := method.This()
	if !ok || got != types.Number {
		t.Fatalf("expected nested fn scope to inherit this, got %v %v", got, ok)
	}
	sibling := root.Enter(Block)
	if _, ok := sibling.This(); ok {
		t.Fatalf("expected a scope entered before SetThis to have no this")
	}
}

func TestRefineOverwritesOwnBindingInPlace(t *testing.T) {
	s := New(Module)
	s.DefineVar("x", LetDecl, types.Any, false)
	s.Refine("x", types.Number)
	b, _ := s.LookupVarLocal("x")
	if b.Type != types.Number || !b.Initialized || b.Copied {
		t.Fatalf("expected in-place refinement, got %+v", b)
	}
}

func TestRefineClonesParentBindingWithoutMutatingParent(t *testing.T) {
	parent := New(Module)
	parent.DefineVar("x", LetDecl, types.Any, true)
	child := parent.Enter(Block)
	child.Refine("x", types.Number)

	childBinding, _ := child.LookupVarLocal("x")
	if childBinding.Type != types.Number || !childBinding.Copied {
		t.Fatalf("expected a copied binding in the child scope, got %+v", childBinding)
	}
	parentBinding, _ := parent.LookupVarLocal("x")
	if parentBinding.Type != types.Any {
		t.Fatalf("expected the parent's binding to be untouched, got %+v", parentBinding)
	}
}

func TestRefineWithNoDeclarationInstallsUntypedCopy(t *testing.T) {
	s := New(Block)
	s.Refine("ghost", types.Boolean)
	b, ok := s.LookupVarLocal("ghost")
	if !ok || b.Type != types.Boolean || !b.Copied {
		t.Fatalf("expected an untyped copied binding, got %+v %v", b, ok)
	}
}

func TestPushFactShadowsVarUntilScopeExits(t *testing.T) {
	parent := New(Module)
	parent.DefineVar("x", LetDecl, types.Any, true)
	child := parent.Enter(Block)
	child.PushFact("x", types.String_)

	got, ok := child.Resolve("x")
	if !ok || got != types.String_ {
		t.Fatalf("expected the narrowed fact to win, got %v %v", got, ok)
	}
	// Discarding the child scope drops the overlay.
	got, ok = parent.Resolve("x")
	if !ok || got != types.Any {
		t.Fatalf("expected the parent scope to see its own type, got %v %v", got, ok)
	}
}

func TestLookupFactStopsAtRebinding(t *testing.T) {
	parent := New(Module)
	parent.PushFact("x", types.String_)
	child := parent.Enter(Block)
	child.DefineVar("x", LetDecl, types.Number, true)

	if _, ok := child.LookupFact("x"); ok {
		t.Fatalf("expected the outer fact to not leak past the child's own binding")
	}
}

func TestResolveOrderFactsThenVarsThenTypes(t *testing.T) {
	s := New(Module)
	s.DefineType("Widget", types.Number)
	got, ok := s.Resolve("Widget")
	if !ok || got != types.Number {
		t.Fatalf("expected type binding fallback, got %v %v", got, ok)
	}

	s.DefineVar("Widget", LetDecl, types.String_, true)
	got, ok = s.Resolve("Widget")
	if !ok || got != types.String_ {
		t.Fatalf("expected var binding to take precedence over type binding, got %v %v", got, ok)
	}

	s.PushFact("Widget", types.Boolean)
	got, ok = s.Resolve("Widget")
	if !ok || got != types.Boolean {
		t.Fatalf("expected a narrowing fact to take precedence over the var binding, got %v %v", got, ok)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{Module: "module", Block: "block", Fn: "fn", Class: "class"}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
