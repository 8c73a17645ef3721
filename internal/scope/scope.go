// Package scope implements the analyzer's lexical scope stack: a
// parent-pointer tree of variable/type bindings, a this-type slot, and
// a narrowing facts overlay, following the teacher's symbols.SymbolTable
// design (parent link + per-scope maps + scope kind) adapted to the
// binding/narrowing model of spec §3/§4.6.
package scope

import "github.com/veritype/veritype/internal/types"

// Kind distinguishes the scope boundary that created a Scope.
type Kind int

const (
	Module Kind = iota
	Block
	Fn
	Class
)

func (k Kind) String() string {
	switch k {
	case Module:
		return "module"
	case Block:
		return "block"
	case Fn:
		return "fn"
	case Class:
		return "class"
	}
	return "module"
}

// DeclKind is the declaration form a variable binding was introduced
// with. `var` tolerates redeclaration; `let`/`const` do not (§3).
type DeclKind int

const (
	VarDecl DeclKind = iota
	LetDecl
	ConstDecl
	ParamDecl
)

// Binding is one variable entry: (name, declaration kind, declared or
// inferred type, initialized flag, copied-from-parent flag).
type Binding struct {
	Name        string
	Kind        DeclKind
	Type        types.Type
	Initialized bool
	Copied      bool // a narrowing-refinement clone of a parent-scope binding
}

// Scope is one lexical scope: a parent link, a scope kind, variable
// and type binding maps, a this-type slot, and a narrowing facts
// overlay layered on top of vars (§3).
type Scope struct {
	parent *Scope
	kind   Kind

	vars  map[string]*Binding
	types map[string]types.Type
	facts map[string]types.Type

	this    types.Type
	hasThis bool
}

// New creates a root scope (typically Module-kind, no parent).
func New(kind Kind) *Scope {
	return &Scope{
		kind:  kind,
		vars:  make(map[string]*Binding),
		types: make(map[string]types.Type),
		facts: make(map[string]types.Type),
	}
}

// Enter creates a child scope of the given kind. The child inherits
// the parent's this-type by default; callers that enter a class body
// overwrite it with SetThis.
func (s *Scope) Enter(kind Kind) *Scope {
	child := New(kind)
	child.parent = s
	if s != nil && s.hasThis {
		child.this = s.this
		child.hasThis = true
	}
	return child
}

// Parent returns the enclosing scope, or nil at the module root.
func (s *Scope) Parent() *Scope { return s.parent }

// Kind returns this scope's kind.
func (s *Scope) Kind() Kind { return s.kind }

// SetThis installs this scope's this-type (class-body entry).
func (s *Scope) SetThis(t types.Type) {
	s.this = t
	s.hasThis = true
}

// This returns the nearest enclosing this-type, walking the parent
// chain, and whether one was ever set.
func (s *Scope) This() (types.Type, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if sc.hasThis {
			return sc.this, true
		}
	}
	return nil, false
}

// DefineVar installs a fresh binding in this scope. `var` bindings
// may overwrite an existing one in the same scope; callers enforce
// the let/const-no-redeclaration rule before calling this for those
// kinds.
func (s *Scope) DefineVar(name string, kind DeclKind, t types.Type, initialized bool) {
	s.vars[name] = &Binding{Name: name, Kind: kind, Type: t, Initialized: initialized}
}

// LookupVarLocal returns the binding declared directly in this scope,
// without walking to the parent.
func (s *Scope) LookupVarLocal(name string) (*Binding, bool) {
	b, ok := s.vars[name]
	return b, ok
}

// LookupVar walks the parent chain for a variable binding.
func (s *Scope) LookupVar(name string) (*Binding, *Scope, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if b, ok := sc.vars[name]; ok {
			return b, sc, true
		}
	}
	return nil, nil, false
}

// DefineType installs a type binding in this scope.
func (s *Scope) DefineType(name string, t types.Type) {
	s.types[name] = t
}

// LookupType walks the parent chain for a type binding.
func (s *Scope) LookupType(name string) (types.Type, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if t, ok := sc.types[name]; ok {
			return t, true
		}
	}
	return nil, false
}

// Refine installs or updates this variable's binding type in the
// current scope (§4.6 assignment narrowing). If the binding exists
// directly in this scope, its type is overwritten in place. If it was
// only found in a parent scope, a *copied* binding is cloned into this
// scope so the refinement does not bleed outward.
func (s *Scope) Refine(name string, refined types.Type) {
	if b, ok := s.vars[name]; ok {
		b.Type = refined
		b.Initialized = true
		return
	}
	if parentBinding, _, ok := s.LookupVar(name); ok {
		s.vars[name] = &Binding{
			Name:        name,
			Kind:        parentBinding.Kind,
			Type:        refined,
			Initialized: true,
			Copied:      true,
		}
		return
	}
	// No declared binding anywhere: install an untyped copied binding
	// so the refinement is still observable in this scope.
	s.vars[name] = &Binding{Name: name, Kind: VarDecl, Type: refined, Initialized: true, Copied: true}
}

// PushFact overlays a narrowed type for name on top of this scope's
// bindings (§4.6 if/else narrowing). Facts are consulted before vars
// on lookup and are local to the scope they were pushed into — the
// caller drops the overlay by discarding the child scope on block
// exit.
func (s *Scope) PushFact(name string, refined types.Type) {
	s.facts[name] = refined
}

// LookupFact consults the narrowing facts overlay, walking the parent
// chain, before any variable lookup.
func (s *Scope) LookupFact(name string) (types.Type, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if t, ok := sc.facts[name]; ok {
			return t, true
		}
		// Facts do not cross a copied binding for the same name: once a
		// scope rebinds it, an outer fact no longer applies.
		if _, ok := sc.vars[name]; ok {
			break
		}
	}
	return nil, false
}

// Resolve performs the identifier-lookup order from §4.2: facts, then
// variable binding, then type binding. Import/builtin fallback is the
// caller's responsibility (it depends on the module and builtin
// registries, which this package does not know about).
func (s *Scope) Resolve(name string) (types.Type, bool) {
	if t, ok := s.LookupFact(name); ok {
		return t, true
	}
	if b, _, ok := s.LookupVar(name); ok {
		return b.Type, true
	}
	if t, ok := s.LookupType(name); ok {
		return t, true
	}
	return nil, false
}
