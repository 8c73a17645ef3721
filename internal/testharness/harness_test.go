package testharness

import (
	"testing"

	"github.com/veritype/veritype/internal/config"
	"github.com/veritype/veritype/internal/diagnostics"
	"github.com/veritype/veritype/internal/token"
)

func TestParseOptionsAppliesRecognizedOptions(t *testing.T) {
	src := []byte(`// @option: ignored by no one
// @enforceTypeArgArity: false
// @maxExpandDepth: 4
// @lib: fetch
const x = 1;
`)
	opts := ParseOptions(src)
	if opts.Rules.EnforceTypeArgArity {
		t.Errorf("expected enforceTypeArgArity=false to be applied")
	}
	if opts.Rules.MaxExpandDepth != 4 {
		t.Errorf("expected maxExpandDepth=4, got %d", opts.Rules.MaxExpandDepth)
	}
	if len(opts.Libs) != 1 || opts.Libs[0] != "fetch" {
		t.Errorf("expected libs=[fetch], got %v", opts.Libs)
	}
}

func TestParseOptionsStopsAtFirstNonCommentLine(t *testing.T) {
	src := []byte(`const x = 1;
// @enforceTypeArgArity: false
`)
	opts := ParseOptions(src)
	if !opts.Rules.EnforceTypeArgArity {
		t.Errorf("expected the default to survive since the header block ended before the option")
	}
}

func TestParseOptionsDefaultsToProjectRules(t *testing.T) {
	opts := ParseOptions([]byte("const x = 1;\n"))
	if opts.Rules != config.DefaultRules() {
		t.Errorf("expected DefaultRules() when no headers are present")
	}
}

func TestCompareMatchesMultisetIgnoringOrder(t *testing.T) {
	got := []*diagnostics.DiagnosticError{
		{Code: diagnostics.ErrNotAssignable, Token: token.Token{Line: 2, Column: 3}},
		{Code: diagnostics.ErrUndefinedSymbol, Token: token.Token{Line: 1, Column: 1}},
	}
	ref := &Reference{Diagnostics: []Position{{Line: 1, Column: 1}, {Line: 2, Column: 3}}}
	ok, diff := Compare(got, ref)
	if !ok {
		t.Errorf("expected positions to match regardless of order, diff: %s", diff)
	}
}

func TestCompareFailsOnCountMismatch(t *testing.T) {
	got := []*diagnostics.DiagnosticError{
		{Code: diagnostics.ErrNotAssignable, Token: token.Token{Line: 2, Column: 3}},
	}
	ref := &Reference{Diagnostics: []Position{{Line: 1, Column: 1}, {Line: 2, Column: 3}}}
	ok, _ := Compare(got, ref)
	if ok {
		t.Errorf("expected a missing diagnostic to fail the comparison")
	}
}
