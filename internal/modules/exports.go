package modules

import (
	"github.com/veritype/veritype/internal/analyzer"
	"github.com/veritype/veritype/internal/ast"
	"github.com/veritype/veritype/internal/diagnostics"
	"github.com/veritype/veritype/internal/types"
)

// exportSite is one (local symbol, exported-as name, span) triple
// discovered from an ExportDeclaration.
type exportSite struct {
	Local    string // "" when the export has no local symbol name (anonymous default)
	Exported string
	Span     *ast.ExportDeclaration
}

// discoverExportSites scans a program's top-level statements for
// `export` declarations (§4.8). Re-exports of imports (`export { a }
// from "mod"`) are out of scope here since this language's
// ImportDeclaration/ExportDeclaration shapes don't model a combined
// export-from form; a bare export list always names a local symbol.
func discoverExportSites(prog *ast.Program) []exportSite {
	var sites []exportSite
	for _, stmt := range prog.Statements {
		exp, ok := stmt.(*ast.ExportDeclaration)
		if !ok {
			continue
		}
		sites = append(sites, exportSitesFor(exp)...)
	}
	return sites
}

func exportSitesFor(exp *ast.ExportDeclaration) []exportSite {
	if exp.IsDefault {
		if name, ok := declaredName(exp.Declaration); ok {
			return []exportSite{{Local: name, Exported: "default", Span: exp}}
		}
		return []exportSite{{Exported: "default", Span: exp}}
	}
	if exp.Declaration != nil {
		names := declaredNames(exp.Declaration)
		out := make([]exportSite, 0, len(names))
		for _, n := range names {
			out = append(out, exportSite{Local: n, Exported: n, Span: exp})
		}
		return out
	}
	out := make([]exportSite, 0, len(exp.Names))
	for _, spec := range exp.Names {
		// Names reuses ImportSpecifier{Imported, Local}; for a bare
		// export list the pre-"as" identifier is the local symbol and
		// the post-"as" identifier (defaulting to the same one) is the
		// external name it's exported under.
		out = append(out, exportSite{Local: spec.Imported.Value, Exported: spec.Local.Value, Span: exp})
	}
	return out
}

func declaredName(stmt ast.Statement) (string, bool) {
	switch s := stmt.(type) {
	case *ast.FunctionDeclaration:
		return s.Name.Value, true
	case *ast.ClassDeclaration:
		if s.Name != nil {
			return s.Name.Value, true
		}
	case *ast.InterfaceDeclaration:
		return s.Name.Value, true
	case *ast.EnumDeclaration:
		return s.Name.Value, true
	case *ast.TypeAliasDeclaration:
		return s.Name.Value, true
	}
	return "", false
}

func declaredNames(stmt ast.Statement) []string {
	if vd, ok := stmt.(*ast.VariableDeclaration); ok {
		out := make([]string, 0, len(vd.Declarators))
		for _, d := range vd.Declarators {
			out = append(out, d.Name.Value)
		}
		return out
	}
	if name, ok := declaredName(stmt); ok {
		return []string{name}
	}
	return nil
}

// populateExports fills mod.Exports by looking up every discovered
// export name in the analyzer's final module scope, after
// AnalyzeProgram has run (§4.8). A duplicate exported name raises
// ErrDuplicateExport; an export whose local symbol never resolved
// does nothing, since the undefined-symbol error was already raised
// at the point of declaration/use.
func populateExports(mod *Module, a *analyzer.Analyzer) {
	seen := make(map[string]bool)
	for _, site := range discoverExportSites(mod.Program) {
		resolved, ok := resolveExportSite(a, site)
		if !ok {
			continue
		}
		if seen[site.Exported] {
			a.AddDiagnostic(diagnostics.Newf(diagnostics.ErrDuplicateExport, site.Span.GetToken(), "module exports %q more than once", site.Exported))
			continue
		}
		seen[site.Exported] = true
		mod.mu.Lock()
		mod.Exports[site.Exported] = resolved
		mod.mu.Unlock()
	}
}

func resolveExportSite(a *analyzer.Analyzer, site exportSite) (types.Type, bool) {
	if site.Local != "" {
		return a.LookupModuleBinding(site.Local)
	}
	// Anonymous `export default <expr>`: look up the expression's
	// recorded type directly.
	if site.Span.Expression == nil {
		return nil, false
	}
	return a.TypeOfNode(site.Span.Expression)
}
