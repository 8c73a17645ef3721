package builtinlib

import (
	"fmt"

	"github.com/jhump/protoreflect/desc/protoparse"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"

	"github.com/veritype/veritype/internal/types"
)

// RegisterProtoFile loads a .proto file (and its transitive
// dependencies, resolved under importPaths) and defines one ambient
// interface type per top-level message and one ambient enum type per
// top-level enum (SPEC_FULL.md §4.9: "proto-descriptor-derived ambient
// declarations" let a project's gRPC/proto layer type-check against
// real wire schemas instead of `any`). Grounded on the teacher's
// grpcLoadProto (internal/evaluator/builtins_grpc.go): same
// protoparse.Parser/ParseFiles call, generalized from a runtime proto
// registry to a compile-time ambient-declaration table.
//
// jhump/protoreflect does the IDL parsing (no protoc binary required
// at analysis time); each parsed descriptor is then handed to
// google.golang.org/protobuf/reflect/protodesc to get a standard
// protoreflect.FileDescriptor, which is what's actually walked to
// build ambient types. protoparse.ParseFiles returns files in
// dependency order, so registering each file into files as it's
// produced satisfies protodesc.NewFile's requirement that a file's
// dependencies already be resolvable.
func (l *Library) RegisterProtoFile(path string, importPaths []string) error {
	if len(importPaths) == 0 {
		importPaths = []string{"."}
	}
	parser := protoparse.Parser{ImportPaths: importPaths}
	fds, err := parser.ParseFiles(path)
	if err != nil {
		return fmt.Errorf("parsing proto file %q: %w", path, err)
	}

	files := new(protoregistry.Files)
	conv := &protoConverter{seen: make(map[string]types.Type)}
	for _, fd := range fds {
		pfd, err := protodesc.NewFile(fd.AsFileDescriptorProto(), files)
		if err != nil {
			return fmt.Errorf("resolving descriptor for %q: %w", fd.GetName(), err)
		}
		if err := files.RegisterFile(pfd); err != nil {
			return fmt.Errorf("registering descriptor for %q: %w", fd.GetName(), err)
		}
		conv.defineFile(l, pfd)
	}
	return nil
}

// protoConverter memoizes message/enum descriptors already converted,
// so a message referenced from multiple fields (or recursively, via a
// self-referencing field) is only built once.
type protoConverter struct {
	seen map[string]types.Type
}

func (c *protoConverter) defineFile(l *Library, fd protoreflect.FileDescriptor) {
	msgs := fd.Messages()
	for i := 0; i < msgs.Len(); i++ {
		md := msgs.Get(i)
		t := c.messageType(md)
		l.Define(string(md.Name()), t)
		l.Define(string(md.FullName()), t)
	}
	enums := fd.Enums()
	for i := 0; i < enums.Len(); i++ {
		ed := enums.Get(i)
		t := c.enumType(ed)
		l.Define(string(ed.Name()), t)
		l.Define(string(ed.FullName()), t)
	}
}

func (c *protoConverter) messageType(md protoreflect.MessageDescriptor) types.Type {
	key := string(md.FullName())
	if t, ok := c.seen[key]; ok {
		return t
	}
	// Install a placeholder before descending into fields, so a
	// message that (directly or transitively) references itself
	// resolves to an Interface with this message's name instead of
	// recursing forever. That placeholder is a copy taken before the
	// fields are filled in, so it carries no members.
	iface := &types.Interface{Name: string(md.Name())}
	c.seen[key] = *iface

	fields := md.Fields()
	members := make([]types.Member, 0, fields.Len())
	for i := 0; i < fields.Len(); i++ {
		fld := fields.Get(i)
		members = append(members, types.Member{
			Name: string(fld.Name()),
			Kind: types.MemberField,
			Type: c.fieldType(fld),
		})
	}
	iface.Members = members
	c.seen[key] = *iface
	return *iface
}

func (c *protoConverter) fieldType(fld protoreflect.FieldDescriptor) types.Type {
	var elem types.Type
	switch fld.Kind() {
	case protoreflect.MessageKind, protoreflect.GroupKind:
		elem = c.messageType(fld.Message())
	case protoreflect.EnumKind:
		elem = c.enumType(fld.Enum())
	case protoreflect.StringKind, protoreflect.BytesKind:
		elem = types.String_
	case protoreflect.BoolKind:
		elem = types.Boolean
	default:
		// All integer and floating-point proto scalar kinds map to the
		// single `number` keyword type; the wire-level width/signedness
		// distinction isn't part of this language's type system.
		elem = types.Number
	}
	if fld.IsList() {
		return types.Array{Elem: elem}
	}
	return elem
}

func (c *protoConverter) enumType(ed protoreflect.EnumDescriptor) types.Type {
	key := string(ed.FullName())
	if t, ok := c.seen[key]; ok {
		return t
	}
	values := ed.Values()
	members := make([]types.EnumMember, 0, values.Len())
	for i := 0; i < values.Len(); i++ {
		v := values.Get(i)
		members = append(members, types.EnumMember{
			Name: string(v.Name()),
			Init: types.Lit{Kind: types.LitNumber, NumVal: float64(v.Number())},
		})
	}
	t := types.Enum{Name: string(ed.Name()), Members: members}
	c.seen[key] = t
	return t
}
