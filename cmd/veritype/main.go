// Command veritype is the conformance-checker CLI: it resolves and
// type-checks a dependency-closed set of modules starting from the
// file paths given on the command line, and prints a diagnostic
// report. Grounded on the teacher's cmd/funxy/main.go: no `flag`
// package, os.Args-indexed subcommand dispatch (handleHelp/handleTest/
// ... here check/version), a BackendType-style build-time var.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/veritype/veritype/internal/ast"
	"github.com/veritype/veritype/internal/builtinlib"
	"github.com/veritype/veritype/internal/config"
	"github.com/veritype/veritype/internal/diagnostics"
	"github.com/veritype/veritype/internal/modules"
)

// Version is the CLI's reported version string. Can be overridden at
// build time with: -ldflags "-X main.Version=1.2.3".
var Version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "version", "-version", "--version":
		fmt.Printf("veritype %s\n", Version)
	case "help", "-help", "--help":
		printUsage()
	case "check":
		if len(os.Args[2:]) == 0 {
			fmt.Fprintln(os.Stderr, "Usage: veritype check <file_or_dir>...")
			os.Exit(1)
		}
		os.Exit(runCheck(os.Args[2:]))
	default:
		// No recognized subcommand: treat the arguments as `check` targets,
		// mirroring the teacher's "no subcommand recognized -> run the file"
		// fallback (cmd/funxy/main.go's bare-path handling).
		os.Exit(runCheck(os.Args[1:]))
	}
}

func printUsage() {
	fmt.Println("Usage: veritype check <file_or_dir>...")
	fmt.Println("       veritype version")
}

// Report is the JSON shape printed to stdout after a run (§6's
// Test-driver surface expects a machine-comparable diagnostic set; this
// is that same shape surfaced to a human/CI caller, with a run id for
// correlating a report against build logs).
type Report struct {
	RunID       string       `json:"runId"`
	Modules     []string     `json:"modules"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	DurationMS  int64        `json:"durationMs"`
}

type Diagnostic struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func runCheck(paths []string) int {
	start := time.Now()

	rules := config.DefaultRules()
	var libs []config.LibSpec
	if proj, err := config.LoadProject("veritype.yaml"); err == nil {
		rules = proj.Rules
		libs = proj.Libs
	}

	lib := builtinlib.New()
	for _, ls := range libs {
		if ls.Proto == "" {
			continue
		}
		if err := lib.RegisterProtoFile(ls.Proto, nil); err != nil {
			fmt.Fprintf(os.Stderr, "loading proto lib %q: %v\n", ls.Name, err)
			return 1
		}
	}
	loader := modules.NewLoader(stubParser, lib, rules)
	driver := modules.NewDriver(loader)

	mods, loadErr := driver.AnalyzeEntries(paths)

	report := Report{RunID: uuid.New().String()}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		report.Modules = append(report.Modules, mod.Name)
		for _, d := range mod.Errors() {
			report.Diagnostics = append(report.Diagnostics, toJSONDiagnostic(d))
		}
	}
	report.DurationMS = time.Since(start).Milliseconds()

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "internal error: marshaling report: %v\n", err)
		return 1
	}
	fmt.Println(string(data))

	printSummary(report)

	if loadErr != nil {
		fmt.Fprintf(os.Stderr, "load error: %v\n", loadErr)
		return 1
	}
	if len(report.Diagnostics) > 0 {
		return 1
	}
	return 0
}

func toJSONDiagnostic(d *diagnostics.DiagnosticError) Diagnostic {
	return Diagnostic{
		File:    d.File,
		Line:    d.Token.Line,
		Column:  d.Token.Column,
		Code:    string(d.Code),
		Message: d.Message,
	}
}

// printSummary prints a one-line colorized pass/fail summary to
// stderr, same role as the teacher's internal/evaluator/builtins_term.go
// isatty-gated coloring.
func printSummary(report Report) {
	colorOK := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	if len(report.Diagnostics) == 0 {
		if colorOK {
			fmt.Fprintf(os.Stderr, "\033[32mok\033[0m  %d module(s), 0 diagnostics (%dms)\n", len(report.Modules), report.DurationMS)
		} else {
			fmt.Fprintf(os.Stderr, "ok  %d module(s), 0 diagnostics (%dms)\n", len(report.Modules), report.DurationMS)
		}
		return
	}
	if colorOK {
		fmt.Fprintf(os.Stderr, "\033[31mfail\033[0m %d module(s), %d diagnostic(s) (%dms)\n", len(report.Modules), len(report.Diagnostics), report.DurationMS)
	} else {
		fmt.Fprintf(os.Stderr, "fail %d module(s), %d diagnostic(s) (%dms)\n", len(report.Modules), len(report.Diagnostics), report.DurationMS)
	}
}

// stubParser is the hand-off point to the parser contract (§6): the
// parser that lexes and parses source text into an *ast.Program is an
// explicit external collaborator (spec.md §1), not part of this
// module. A real build wires modules.ParserFunc to that parser;
// without one, this reports why analysis can't proceed instead of
// silently returning an empty program.
func stubParser(file string, src []byte) (*ast.Program, error) {
	return nil, fmt.Errorf("no parser wired: %s needs an *ast.Program, but this build has no parser implementation (spec.md §1 treats the parser as an external collaborator)", file)
}
