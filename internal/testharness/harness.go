// Package testharness implements the conformance-test driver surface
// described in spec.md §6: parse `// @option: value` headers off a
// test module's source, build a checker configured accordingly, run
// it, and compare the emitted diagnostics' (line, column) positions
// against a reference JSON file. Grounded on the teacher's
// expectAnalyzerError/expectNoAnalyzerErrors helpers
// (internal/analyzer/analyzer_errors_test.go): same "run the checker,
// assert on its error list" shape, generalized here from Go-test
// assertions to a reusable driver any _test.go file (or a standalone
// conformance runner) can call.
package testharness

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/veritype/veritype/internal/analyzer"
	"github.com/veritype/veritype/internal/ast"
	"github.com/veritype/veritype/internal/builtinlib"
	"github.com/veritype/veritype/internal/config"
	"github.com/veritype/veritype/internal/diagnostics"
)

// Options is the per-test configuration a `// @option: value` header
// block resolves to, layered over config.DefaultRules().
type Options struct {
	Rules config.Rules
	Libs  []string // names of ambient libs (internal/builtinlib) this test expects active
}

// ParseOptions scans the leading comment block of src for
// `// @option: value` lines and applies each recognized option onto
// config.DefaultRules(). Unrecognized option names are ignored, since
// a test file may carry headers meant for a different harness version.
func ParseOptions(src []byte) Options {
	opts := Options{Rules: config.DefaultRules()}
	sc := bufio.NewScanner(strings.NewReader(string(src)))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "//") {
			break // headers must prefix the module; first non-comment line ends the block
		}
		body := strings.TrimSpace(strings.TrimPrefix(line, "//"))
		if !strings.HasPrefix(body, "@") {
			continue
		}
		name, value, ok := strings.Cut(body[1:], ":")
		if !ok {
			continue
		}
		applyOption(&opts, strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return opts
}

func applyOption(opts *Options, name, value string) {
	switch name {
	case "enforceTypeArgArity":
		opts.Rules.EnforceTypeArgArity = value == "true"
	case "maxExpandDepth":
		if n, err := strconv.Atoi(value); err == nil {
			opts.Rules.MaxExpandDepth = n
		}
	case "lib":
		opts.Libs = append(opts.Libs, value)
	}
}

// Position is the (line, column) pair a reference file records for one
// expected diagnostic.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Reference is the expected-diagnostics file shape for one test module.
type Reference struct {
	Diagnostics []Position `json:"diagnostics"`
}

// LoadReference reads a reference JSON file produced alongside a test
// module (conventionally "<module>.expected.json").
func LoadReference(path string) (*Reference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ref Reference
	if err := json.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("parsing reference file %s: %w", path, err)
	}
	return &ref, nil
}

// Run type-checks program with an analyzer configured by opts, and
// returns the diagnostics it produced. libs is the project's full
// declared ambient-library list (veritype.yaml's `libs:`); for every
// name opts.Libs names (from a test's `// @lib: name` header) that
// resolves to a LibSpec with Proto set, the matching .proto file is
// loaded into builtins before analysis runs, the same way runCheck
// (cmd/veritype) wires a project's proto-backed ambient modules.
func Run(file string, program *ast.Program, builtins *builtinlib.Library, imports analyzer.ImportResolver, opts Options, libs []config.LibSpec) ([]*diagnostics.DiagnosticError, error) {
	for _, name := range opts.Libs {
		spec, ok := findLibSpec(libs, name)
		if !ok || spec.Proto == "" {
			continue
		}
		if err := builtins.RegisterProtoFile(spec.Proto, nil); err != nil {
			return nil, fmt.Errorf("loading lib %q: %w", name, err)
		}
	}

	a := analyzer.New(file, builtins, imports)
	a.EnforceTypeArgArity = opts.Rules.EnforceTypeArgArity
	if opts.Rules.MaxExpandDepth > 0 {
		a.MaxExpandDepth = opts.Rules.MaxExpandDepth
	}
	a.AnalyzeProgram(program)
	return a.Errors(), nil
}

func findLibSpec(libs []config.LibSpec, name string) (config.LibSpec, bool) {
	for _, ls := range libs {
		if ls.Name == name {
			return ls, true
		}
	}
	return config.LibSpec{}, false
}

// Compare reports whether got's positions match ref's multiset exactly
// (§8 Determinism/§6: "the test passes iff the two multisets match").
// On mismatch it returns a human-readable diff for test failure output.
func Compare(got []*diagnostics.DiagnosticError, ref *Reference) (ok bool, diff string) {
	gotPos := make([]Position, len(got))
	for i, d := range got {
		gotPos[i] = Position{Line: d.Token.Line, Column: d.Token.Column}
	}
	if multisetEqual(gotPos, ref.Diagnostics) {
		return true, ""
	}
	return false, fmt.Sprintf("expected diagnostics at %v, got %v", ref.Diagnostics, gotPos)
}

func multisetEqual(a, b []Position) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[Position]int, len(a))
	for _, p := range a {
		counts[p]++
	}
	for _, p := range b {
		counts[p]--
		if counts[p] < 0 {
			return false
		}
	}
	return true
}
