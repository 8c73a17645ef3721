// Package config holds ambient constants (recognized source file
// extensions, built-in names) and the project-level veritype.yaml rule
// configuration, grounded on the teacher's internal/config/constants.go
// (plain exported constants/vars) and internal/ext/config.go (yaml.v3
// struct-tag configuration loading).
package config

// SourceFileExt is the default recognized source extension.
const SourceFileExt = ".ts"

// SourceFileExtensions are all extensions the loader treats as source
// files when scanning a package directory, in preference order.
var SourceFileExtensions = []string{".ts", ".tsx"}

// HasSourceExt reports whether path ends with a recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// TrimSourceExt removes a recognized source extension from name, if present.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// DefaultExportName is the binding name `export default` introduces (§4.8).
const DefaultExportName = "default"

// Built-in keyword type names the builtinlib prototype tables cover.
const (
	StringKeyword = "string"
	NumberKeyword = "number"
	BooleanKeyword = "boolean"
	ArrayKeyword  = "Array"
	RegExpKeyword = "RegExp"
)
