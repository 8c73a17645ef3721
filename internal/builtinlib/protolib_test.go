package builtinlib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/veritype/veritype/internal/types"
)

// writeProtoFixture writes src to name under a fresh temp directory
// and returns that directory (to use as an import path) plus the
// proto's name relative to it (to use as RegisterProtoFile's path
// argument) — the same relative-to-ImportPaths calling convention the
// teacher's grpcLoadProto uses.
func writeProtoFixture(t *testing.T, name, src string) (importPath, relName string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644); err != nil {
		t.Fatalf("writing proto fixture: %v", err)
	}
	return dir, name
}

func TestRegisterProtoFileDefinesMessageAsInterface(t *testing.T) {
	dir, relName := writeProtoFixture(t, "user.proto", `syntax = "proto3";

message User {
  string name = 1;
  int32 age = 2;
  repeated string tags = 3;
}
`)
	lib := New()
	if err := lib.RegisterProtoFile(relName, []string{dir}); err != nil {
		t.Fatalf("RegisterProtoFile: %v", err)
	}

	got, ok := lib.Lookup("User")
	if !ok {
		t.Fatal("expected User to be defined as an ambient type")
	}
	iface, ok := got.(types.Interface)
	if !ok {
		t.Fatalf("expected an Interface type, got %T", got)
	}
	members := make(map[string]types.Type, len(iface.Members))
	for _, m := range iface.Members {
		members[m.Name] = m.Type
	}
	if members["name"] != types.String_ {
		t.Errorf("expected name: string, got %v", members["name"])
	}
	if members["age"] != types.Number {
		t.Errorf("expected age: number, got %v", members["age"])
	}
	arr, ok := members["tags"].(types.Array)
	if !ok || arr.Elem != types.String_ {
		t.Errorf("expected tags: string[], got %v", members["tags"])
	}
}

func TestRegisterProtoFileDefinesEnum(t *testing.T) {
	dir, relName := writeProtoFixture(t, "status.proto", `syntax = "proto3";

enum Status {
  UNKNOWN = 0;
  ACTIVE = 1;
}
`)
	lib := New()
	if err := lib.RegisterProtoFile(relName, []string{dir}); err != nil {
		t.Fatalf("RegisterProtoFile: %v", err)
	}

	got, ok := lib.Lookup("Status")
	if !ok {
		t.Fatal("expected Status to be defined as an ambient type")
	}
	enum, ok := got.(types.Enum)
	if !ok || len(enum.Members) != 2 {
		t.Fatalf("expected a 2-member enum, got %#v", got)
	}
	if enum.Members[0].Name != "UNKNOWN" || enum.Members[1].Name != "ACTIVE" {
		t.Errorf("unexpected enum member names: %+v", enum.Members)
	}
}

func TestRegisterProtoFileHandlesSelfReferencingMessage(t *testing.T) {
	dir, relName := writeProtoFixture(t, "tree.proto", `syntax = "proto3";

message Node {
  string label = 1;
  repeated Node children = 2;
}
`)
	lib := New()
	if err := lib.RegisterProtoFile(relName, []string{dir}); err != nil {
		t.Fatalf("RegisterProtoFile: %v", err)
	}

	got, ok := lib.Lookup("Node")
	if !ok {
		t.Fatal("expected Node to be defined")
	}
	iface, ok := got.(types.Interface)
	if !ok {
		t.Fatalf("expected an Interface type, got %T", got)
	}
	for _, m := range iface.Members {
		if m.Name != "children" {
			continue
		}
		arr, ok := m.Type.(types.Array)
		if !ok {
			t.Fatalf("expected children: Node[], got %v", m.Type)
		}
		child, ok := arr.Elem.(types.Interface)
		if !ok || child.Name != "Node" {
			t.Fatalf("expected the self-reference to resolve to the same Node interface, got %v", arr.Elem)
		}
	}
}
