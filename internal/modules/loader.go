package modules

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/veritype/veritype/internal/analyzer"
	"github.com/veritype/veritype/internal/ast"
	"github.com/veritype/veritype/internal/config"
	"github.com/veritype/veritype/internal/diagnostics"
	"github.com/veritype/veritype/internal/types"
)

// entry is the single-writer-per-key cache slot (§5): the first
// goroutine to request a path installs a pending entry and closes
// ready once the module is built; every other requester blocks on
// ready. Grounded on the teacher's Loader{LoadedModules, Processing}
// cache (internal/modules/loader.go), generalized from a
// single-threaded map guard to a concurrent one.
type entry struct {
	ready  chan struct{}
	module *Module
	err    error
}

// Loader resolves import descriptors to filesystem directories,
// builds Modules from their source files, and implements the Loader
// contract (§6): `Load(base_path, import_descriptor) → map<local
// name, type> | error`.
type Loader struct {
	Parser   ParserFunc
	Builtins analyzer.BuiltinResolver
	Rules    config.Rules

	mu      sync.Mutex
	entries map[string]*entry
}

// NewLoader creates a filesystem Loader. parser and builtins are
// required collaborators (the parser producing ASTs, the builtin
// resolver supplying ambient declarations); rules configures every
// analyzer this loader constructs.
func NewLoader(parser ParserFunc, builtins analyzer.BuiltinResolver, rules config.Rules) *Loader {
	return &Loader{
		Parser:   parser,
		Builtins: builtins,
		Rules:    rules,
		entries:  make(map[string]*entry),
	}
}

// Load implements the Loader contract. On desc.All, every export is
// returned; otherwise only the requested items, with a "no such
// export" diagnostic recorded (via sink, if non-nil) for each miss.
func (l *Loader) Load(basePath string, desc ImportDescriptor, sink *analyzer.Analyzer) (map[string]types.Type, error) {
	return l.load(basePath, desc, nil, sink)
}

func (l *Loader) load(basePath string, desc ImportDescriptor, chain []string, sink *analyzer.Analyzer) (map[string]types.Type, error) {
	absPath, err := resolveModuleDir(basePath, desc.Src)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "resolving import %q from %s: %v", desc.Src, basePath, err)
	}

	for _, p := range chain {
		if p == absPath {
			// Cyclic import (§5): resolved by a placeholder `any` module
			// plus a diagnostic, not a load failure — every requested
			// name is bound to `any` so analysis of both sides continues.
			if sink != nil {
				sink.AddDiagnostic(diagnostics.NewError(diagnostics.ErrModuleLoadFailed, desc.Span, "circular import of "+desc.Src))
			}
			return cyclicPlaceholder(desc), nil
		}
	}

	mod, err := l.getOrBuild(absPath, append(append([]string{}, chain...), absPath))
	if err != nil {
		return nil, err
	}

	return l.resolveExports(mod, desc, sink), nil
}

func cyclicPlaceholder(desc ImportDescriptor) map[string]types.Type {
	out := make(map[string]types.Type)
	if desc.All {
		return out
	}
	for _, item := range desc.Items {
		out[item] = types.Any
	}
	return out
}

func (l *Loader) resolveExports(mod *Module, desc ImportDescriptor, sink *analyzer.Analyzer) map[string]types.Type {
	if desc.All {
		return mod.AllExports()
	}
	out := make(map[string]types.Type, len(desc.Items))
	for _, item := range desc.Items {
		if t, ok := mod.Export(item); ok {
			out[item] = t
			continue
		}
		if sink != nil {
			sink.AddDiagnostic(diagnostics.Newf(diagnostics.ErrNoSuchExport, desc.Span, "module %q has no exported member %q", desc.Src, item))
		}
	}
	return out
}

// getOrBuild implements the single-writer-per-key cache.
func (l *Loader) getOrBuild(absPath string, chain []string) (*Module, error) {
	l.mu.Lock()
	if e, ok := l.entries[absPath]; ok {
		l.mu.Unlock()
		<-e.ready
		return e.module, e.err
	}
	e := &entry{ready: make(chan struct{})}
	l.entries[absPath] = e
	l.mu.Unlock()

	mod, err := l.buildModule(absPath, chain)
	e.module, e.err = mod, err
	close(e.ready)
	return mod, err
}

// buildModule reads, parses, and fully analyzes every source file in
// absPath as one module, following the teacher's one-package-per-
// directory convention (detectPackageExtension/hasSourceFiles in
// loader.go), adapted to this language's `.ts`/`.tsx` extensions.
func (l *Loader) buildModule(absPath string, chain []string) (*Module, error) {
	files, err := sourceFiles(absPath)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "reading module directory %s: %v", absPath, err)
	}
	if len(files) == 0 {
		return nil, status.Errorf(codes.NotFound, "no %s files found in %s", strings.Join(config.SourceFileExtensions, "/"), absPath)
	}

	program := &ast.Program{File: absPath}
	for _, f := range files {
		src, err := os.ReadFile(f)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "reading %s: %v", f, err)
		}
		p, err := l.Parser(f, src)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "parsing %s: %v", f, err)
		}
		program.Statements = append(program.Statements, p.Statements...)
		program.Imports = append(program.Imports, p.Imports...)
	}

	mod := &Module{
		Name:    filepath.Base(absPath),
		Dir:     absPath,
		Files:   files,
		Program: program,
		Exports: make(map[string]types.Type),
	}

	resolver := newFileImportResolver()
	a := analyzer.New(absPath, l.Builtins, resolver)
	a.EnforceTypeArgArity = l.Rules.EnforceTypeArgArity
	if l.Rules.MaxExpandDepth > 0 {
		a.MaxExpandDepth = l.Rules.MaxExpandDepth
	}
	mod.mu.Lock()
	mod.analyzerInst = a
	mod.mu.Unlock()

	l.resolveImports(mod, resolver, a, chain)

	mod.mu.Lock()
	mod.HeadersAnalyzed = true
	mod.mu.Unlock()

	a.AnalyzeProgram(program)
	populateExports(mod, a)

	mod.mu.Lock()
	mod.BodiesAnalyzed = true
	mod.mu.Unlock()

	return mod, nil
}

// sourceFiles returns the sorted list of recognized source files
// directly inside dir, using the first extension for which any file
// is found (mirrors detectPackageExtension's main-file-first rule,
// simplified since this language has no package-name-matching file
// convention).
func sourceFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var ext string
	for _, want := range config.SourceFileExtensions {
		for _, f := range entries {
			if !f.IsDir() && strings.HasSuffix(f.Name(), want) {
				ext = want
				break
			}
		}
		if ext != "" {
			break
		}
	}
	if ext == "" {
		return nil, nil
	}
	var out []string
	for _, f := range entries {
		if !f.IsDir() && strings.HasSuffix(f.Name(), ext) {
			out = append(out, filepath.Join(dir, f.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

// resolveModuleDir resolves an import source specifier relative to
// basePath into an absolute directory.
func resolveModuleDir(basePath, src string) (string, error) {
	if filepath.IsAbs(src) {
		return filepath.Clean(src), nil
	}
	return filepath.Abs(filepath.Join(basePath, src))
}
