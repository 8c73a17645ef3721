package types

import (
	"testing"

	"github.com/veritype/veritype/internal/token"
)

func token0() token.Token { return token.Token{Line: 1, Column: 1} }

func TestNormalizeUnionCollapsesSingleMember(t *testing.T) {
	got := NormalizeUnion([]Type{Number})
	if !Equal(got, Number) {
		t.Fatalf("expected single-member union to collapse to Number, got %s", got)
	}
}

func TestNormalizeUnionFlattensAndDedups(t *testing.T) {
	nested := Union{Members: []Type{Number, String_}}
	got := NormalizeUnion([]Type{nested, Number})
	u, ok := got.(Union)
	if !ok {
		t.Fatalf("expected Union, got %T", got)
	}
	if len(u.Members) != 2 {
		t.Fatalf("expected 2 deduped members, got %d: %s", len(u.Members), u)
	}
}

func TestEqualIgnoresSpan(t *testing.T) {
	a := Keyword{Name: "number", Tok: token0()}
	b := Keyword{Name: "number"}
	if !Equal(a, b) {
		t.Fatalf("expected span-differing keywords to compare equal")
	}
}

func TestEqualDistinguishesLitKinds(t *testing.T) {
	a := Lit{Kind: LitString, StrVal: "1"}
	b := Lit{Kind: LitNumber, NumVal: 1}
	if Equal(a, b) {
		t.Fatalf("string literal \"1\" must not equal number literal 1")
	}
}

func TestWidenCollapsesLiteralToKeyword(t *testing.T) {
	lit := Lit{Kind: LitString, StrVal: "hello"}
	if widened := Widen(lit); !Equal(widened, String_) {
		t.Fatalf("expected widen(\"hello\") == string, got %s", widened)
	}
}
