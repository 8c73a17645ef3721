// Package diagnostics defines the error records the analyzer emits.
// Errors are values: the analyzer never aborts a module on a single
// failure, it pushes a DiagnosticError into the module's error list and
// substitutes `any` at the point of failure so analysis can continue.
package diagnostics

import (
	"fmt"

	"github.com/veritype/veritype/internal/token"
)

// ErrorCode is a stable kind tag for a diagnostic. The TS-prefixed
// constants reuse the literal codes the specification names for the
// class-body/parameter diagnostics; the rest are this analyzer's own
// stable enumeration for the remaining kinds in spec.md §6.
type ErrorCode string

const (
	ErrUndefinedSymbol          ErrorCode = "E001" // undefined symbol
	ErrNoCallSignature          ErrorCode = "E002" // no call signature
	ErrNoConstructSignature     ErrorCode = "E003" // no new signature
	ErrWrongParamCount          ErrorCode = "E004" // wrong parameter count
	ErrNotAssignable            ErrorCode = "E005" // assignment not assignable
	ErrNoSuchProperty           ErrorCode = "E006" // no such property
	ErrComputedKeyNotLiteral    ErrorCode = "E007" // computed key must be of literal type
	ErrUnionError               ErrorCode = "E008" // no union member satisfies the call/construct
	ErrModuleLoadFailed         ErrorCode = "E009" // module load failed
	ErrNoSuchExport             ErrorCode = "E010" // no such export
	ErrDuplicateExport          ErrorCode = "E011" // re-exporting the same name twice
	ErrRedeclaration            ErrorCode = "E012" // let/const redeclared in the same scope
	ErrAmbiguousOverload        ErrorCode = "E013" // overload set is ambiguous
	ErrTypeArgArity             ErrorCode = "E014" // wrong number of type arguments

	TS2369 ErrorCode = "TS2369" // parameter property without constructor body
	TS2389 ErrorCode = "TS2389" // constructor implementation is missing
	TS2391 ErrorCode = "TS2391" // function implementation is missing
	TS1016 ErrorCode = "TS1016" // a required parameter cannot follow an optional parameter
)

// DiagnosticError is a single emitted diagnostic.
type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	File    string
	Message string
	Detail  string // optional extra classification (e.g. a wrapped loader status code)
}

func (e *DiagnosticError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.File, e.Token.Line, e.Token.Column, e.Code, e.Message)
	}
	return fmt.Sprintf("%d:%d: %s: %s", e.Token.Line, e.Token.Column, e.Code, e.Message)
}

// NewError builds a DiagnosticError, mirroring the teacher's
// diagnostics.NewError(code, token, message) call shape.
func NewError(code ErrorCode, tok token.Token, message string) *DiagnosticError {
	return &DiagnosticError{Code: code, Token: tok, Message: message}
}

func Newf(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return NewError(code, tok, fmt.Sprintf(format, args...))
}

// Errors groups multiple diagnostics raised at the same site (e.g. a
// computed-key validation failing for several reasons at once) so a
// renderer can present them together.
type Errors struct {
	Span token.Token
	List []*DiagnosticError
}

func (e *Errors) Error() string {
	if len(e.List) == 0 {
		return "no errors"
	}
	return e.List[0].Error()
}

func (e *Errors) Append(d *DiagnosticError) {
	e.List = append(e.List, d)
}
