package modules

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/veritype/veritype/internal/analyzer"
	"github.com/veritype/veritype/internal/diagnostics"
	"github.com/veritype/veritype/internal/types"
)

// Driver orchestrates the concurrent cross-module analysis §5
// describes: independent entry modules analyze in parallel, and a
// single module's import list resolves concurrently before its body
// is analyzed, merged back in deterministic source order. New code in
// the teacher's package layout and cache shape (loader.go), since the
// teacher's own loader is sequential (DESIGN.md records this).
type Driver struct {
	loader *Loader
}

// NewDriver builds a Driver over loader.
func NewDriver(loader *Loader) *Driver {
	return &Driver{loader: loader}
}

// AnalyzeEntries analyzes each of paths as an independent entry
// module, one goroutine per path via errgroup, and returns the
// resulting Modules in the same order as paths.
func (d *Driver) AnalyzeEntries(paths []string) ([]*Module, error) {
	mods := make([]*Module, len(paths))
	var g errgroup.Group
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			absPath, err := resolveModuleDir(".", p)
			if err != nil {
				return err
			}
			mod, err := d.loader.getOrBuild(absPath, []string{absPath})
			mods[i] = mod
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return mods, err
	}
	return mods, nil
}

// fileImportResolver is the per-file analyzer.ImportResolver the
// driver builds while resolving one module's imports: a concurrent
// map from local binding name to resolved type, populated before
// AnalyzeProgram runs on that module's body.
type fileImportResolver struct {
	mu       sync.RWMutex
	bindings map[string]types.Type
}

func newFileImportResolver() *fileImportResolver {
	return &fileImportResolver{bindings: make(map[string]types.Type)}
}

func (r *fileImportResolver) ResolveImport(local string) (types.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.bindings[local]
	return t, ok
}

func (r *fileImportResolver) set(local string, t types.Type) {
	r.mu.Lock()
	r.bindings[local] = t
	r.mu.Unlock()
}

func (r *fileImportResolver) has(local string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.bindings[local]
	return ok
}

// resolveImports implements §4.8's "driver resolves each import
// concurrently via the resolver" + §5's "merge results in a
// deterministic order (source order of the import declarations)":
// every discovered import site is resolved on its own goroutine, then
// folded into resolver in the order discoverImportSites returned them,
// so a duplicate local name always resolves the same way regardless
// of goroutine completion order.
func (l *Loader) resolveImports(mod *Module, resolver *fileImportResolver, a *analyzer.Analyzer, chain []string) {
	sites := discoverImportSites(mod.Program)
	results := make([]map[string]types.Type, len(sites))
	errs := make([]error, len(sites))

	var g errgroup.Group
	for i, site := range sites {
		i, site := i, site
		g.Go(func() error {
			res, err := l.load(mod.Dir, site.Desc, chain, a)
			results[i] = res
			errs[i] = err
			return nil // collect per-site failures instead of aborting the group
		})
	}
	_ = g.Wait()

	for i, site := range sites {
		if errs[i] != nil {
			a.AddDiagnostic(diagnostics.Newf(diagnostics.ErrModuleLoadFailed, site.Desc.Span, "module %q failed to load: %v", site.Desc.Src, errs[i]))
			for _, b := range site.Bindings {
				resolver.set(b.Local, types.Any)
			}
			continue
		}
		if site.Namespace {
			ns := namespaceType(results[i])
			for _, b := range site.Bindings {
				resolver.set(b.Local, ns)
			}
			continue
		}
		for _, b := range site.Bindings {
			if t, ok := results[i][b.Requested]; ok {
				if resolver.has(b.Local) {
					a.AddDiagnostic(diagnostics.Newf(diagnostics.ErrDuplicateExport, site.Desc.Span, "local binding %q is imported more than once", b.Local))
				}
				resolver.set(b.Local, t)
			} else {
				resolver.set(b.Local, types.Any)
			}
		}
	}
}

// namespaceType builds the object type bound by `import * as NS` or
// `const NS = require(...)`: one field member per resolved export.
func namespaceType(exports map[string]types.Type) types.Type {
	members := make([]types.Member, 0, len(exports))
	for name, t := range exports {
		members = append(members, types.Member{Name: name, Kind: types.MemberField, Type: t})
	}
	return types.Interface{Members: members}
}

