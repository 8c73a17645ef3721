// Package builtinlib provides the concrete ambient library the
// analyzer runs against (SPEC_FULL.md §4.9): keyword-type prototype
// member tables and, optionally, proto-descriptor-derived ambient
// declarations. Grounded on the teacher's virtual-package tables
// (internal/modules/virtual_packages_core.go, virtual_types.go): a
// named table of member types registered once at startup, looked up
// by name at analysis time — generalized here from "a package of free
// functions" to "a primitive type's prototype member set", which is
// this specification's equivalent ambient-library concern (§4.3).
package builtinlib

import (
	"github.com/veritype/veritype/internal/config"
	"github.com/veritype/veritype/internal/types"
)

// Library is the default BuiltinResolver: keyword prototype tables
// plus any named ambient declarations (module-scope globals, and
// proto-derived ambient types loaded via RegisterProtoFile).
type Library struct {
	keywordMembers map[string][]types.Member
	globals        map[string]types.Type
}

// New builds a Library pre-populated with the string/number/
// boolean/Array/RegExp prototype tables and a small set of ambient
// globals (console, JSON) in the teacher's named-table style.
func New() *Library {
	l := &Library{
		keywordMembers: make(map[string][]types.Member),
		globals:        make(map[string]types.Type),
	}
	l.registerStringPrototype()
	l.registerNumberPrototype()
	l.registerBooleanPrototype()
	l.registerArrayPrototype()
	l.registerRegExpPrototype()
	l.registerGlobals()
	return l
}

// Lookup implements analyzer.BuiltinResolver.
func (l *Library) Lookup(name string) (types.Type, bool) {
	t, ok := l.globals[name]
	return t, ok
}

// KeywordMembers implements analyzer.BuiltinResolver.
func (l *Library) KeywordMembers(keyword string) ([]types.Member, bool) {
	m, ok := l.keywordMembers[keyword]
	return m, ok
}

// Define registers (or overwrites) a module-scope ambient global, used
// by the proto-descriptor loader (protolib.go), which runs for each
// veritype.yaml `libs:` entry that names a `proto` file.
func (l *Library) Define(name string, t types.Type) {
	l.globals[name] = t
}

func fn(params []types.FuncParam, ret types.Type) types.Function {
	return types.Function{Params: params, Return: ret}
}

func param(name string, t types.Type) types.FuncParam {
	return types.FuncParam{Name: name, Type: t}
}

func method(name string, t types.Function) types.Member {
	return types.Member{Name: name, Kind: types.MemberMethod, Type: t}
}

func field(name string, t types.Type) types.Member {
	return types.Member{Name: name, Kind: types.MemberField, Type: t}
}

var (
	stringT  = types.Keyword{Name: config.StringKeyword}
	numberT  = types.Keyword{Name: config.NumberKeyword}
	booleanT = types.Keyword{Name: config.BooleanKeyword}
)

func (l *Library) registerStringPrototype() {
	l.keywordMembers[config.StringKeyword] = []types.Member{
		field("length", numberT),
		method("toUpperCase", fn(nil, stringT)),
		method("toLowerCase", fn(nil, stringT)),
		method("trim", fn(nil, stringT)),
		method("charAt", fn([]types.FuncParam{param("index", numberT)}, stringT)),
		method("indexOf", fn([]types.FuncParam{param("searchValue", stringT)}, numberT)),
		method("slice", fn([]types.FuncParam{
			{Name: "start", Type: numberT, Optional: true},
			{Name: "end", Type: numberT, Optional: true},
		}, stringT)),
		method("split", fn([]types.FuncParam{param("separator", stringT)}, types.Array{Elem: stringT})),
		method("concat", fn([]types.FuncParam{param("str", stringT)}, stringT)),
		method("includes", fn([]types.FuncParam{param("searchString", stringT)}, booleanT)),
		method("replace", fn([]types.FuncParam{param("pattern", stringT), param("replacement", stringT)}, stringT)),
		method("repeat", fn([]types.FuncParam{param("count", numberT)}, stringT)),
		method("padStart", fn([]types.FuncParam{param("targetLength", numberT)}, stringT)),
	}
}

func (l *Library) registerNumberPrototype() {
	l.keywordMembers[config.NumberKeyword] = []types.Member{
		method("toFixed", fn([]types.FuncParam{{Name: "digits", Type: numberT, Optional: true}}, stringT)),
		method("toString", fn([]types.FuncParam{{Name: "radix", Type: numberT, Optional: true}}, stringT)),
		method("toPrecision", fn([]types.FuncParam{param("precision", numberT)}, stringT)),
	}
}

func (l *Library) registerBooleanPrototype() {
	l.keywordMembers[config.BooleanKeyword] = []types.Member{
		method("toString", fn(nil, stringT)),
		method("valueOf", fn(nil, booleanT)),
	}
}

// registerArrayPrototype registers Array<T>'s members with T left as
// a types.TypeParam placeholder; MemberType substitutes the object's
// actual element type into every member it returns (§4.3).
func (l *Library) registerArrayPrototype() {
	elemT := types.TypeParam{Name: "T"}
	arrayT := types.Array{Elem: elemT}
	predicate := fn([]types.FuncParam{param("value", elemT), param("index", numberT)}, booleanT)

	l.keywordMembers[config.ArrayKeyword] = []types.Member{
		field("length", numberT),
		method("push", fn([]types.FuncParam{param("item", elemT)}, numberT)),
		method("pop", fn(nil, elemT)),
		method("shift", fn(nil, elemT)),
		method("unshift", fn([]types.FuncParam{param("item", elemT)}, numberT)),
		method("slice", fn([]types.FuncParam{
			{Name: "start", Type: numberT, Optional: true},
			{Name: "end", Type: numberT, Optional: true},
		}, arrayT)),
		method("concat", fn([]types.FuncParam{param("other", arrayT)}, arrayT)),
		method("join", fn([]types.FuncParam{{Name: "separator", Type: stringT, Optional: true}}, stringT)),
		method("indexOf", fn([]types.FuncParam{param("searchElement", elemT)}, numberT)),
		method("includes", fn([]types.FuncParam{param("searchElement", elemT)}, booleanT)),
		method("filter", fn([]types.FuncParam{param("predicate", predicate)}, arrayT)),
		method("find", fn([]types.FuncParam{param("predicate", predicate)}, elemT)),
		method("forEach", fn([]types.FuncParam{param("fn", fn([]types.FuncParam{param("value", elemT), param("index", numberT)}, nil))}, nil)),
		method("reverse", fn(nil, arrayT)),
		method("sort", fn([]types.FuncParam{{Name: "compareFn", Type: fn([]types.FuncParam{param("a", elemT), param("b", elemT)}, numberT), Optional: true}}, arrayT)),
	}
}

func (l *Library) registerRegExpPrototype() {
	l.keywordMembers[config.RegExpKeyword] = []types.Member{
		field("source", stringT),
		field("flags", stringT),
		method("test", fn([]types.FuncParam{param("str", stringT)}, booleanT)),
		method("exec", fn([]types.FuncParam{param("str", stringT)}, types.Array{Elem: stringT})),
	}
}

func (l *Library) registerGlobals() {
	voidT := types.Keyword{Name: "void"}
	anyT := types.Any
	l.globals["console"] = types.Interface{Name: "Console", Members: []types.Member{
		method("log", fn([]types.FuncParam{{Name: "args", Type: anyT, Optional: true}}, voidT)),
		method("warn", fn([]types.FuncParam{{Name: "args", Type: anyT, Optional: true}}, voidT)),
		method("error", fn([]types.FuncParam{{Name: "args", Type: anyT, Optional: true}}, voidT)),
	}}
	l.globals["JSON"] = types.Interface{Name: "JSON", Members: []types.Member{
		method("stringify", fn([]types.FuncParam{param("value", anyT)}, stringT)),
		method("parse", fn([]types.FuncParam{param("text", stringT)}, anyT)),
	}}
}
