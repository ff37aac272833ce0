// File: errors.go
// Title: VCG Lex and Compile Error Types
// Description: Defines the two error kinds the VCG front end can raise:
//              LexError for tokenizer failures with a source position, and
//              CompileError for parser-level semantic violations. Both are
//              backed by the platform's structured error type so they carry
//              a Code, a Severity, and participate in the same wrapping and
//              inspection helpers as the rest of the codebase.
package vcgerrors

import (
	"fmt"

	mdwerror "github.com/vcglab/vcgc/foundation/core/error"
)

// LexError reports an unexpected character, malformed literal, or other
// tokenizer-level failure at a specific source position.
type LexError struct {
	Line    int
	Column  int
	Message string

	inner *mdwerror.Error
}

// NewLexError builds a LexError at the given position.
func NewLexError(line, column int, message string) *LexError {
	inner := mdwerror.New(message).
		WithCode(mdwerror.CodeVCGLex).
		WithOperation("lexer.Tokenize").
		WithDetail("line", line).
		WithDetail("column", column)
	return &LexError{Line: line, Column: column, Message: message, inner: inner}
}

// Error implements the error interface, rendering the line and column at
// which the lex error occurred alongside the message.
func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// Unwrap exposes the underlying structured error for errors.As / errors.Is
// and for logger.LogError to extract code/severity/details.
func (e *LexError) Unwrap() error {
	return e.inner
}

// CompileError reports a semantic violation discovered by the parser: a
// malformed import, a duplicate package, a repeat range with max < min, and
// so on. Some messages carry the line number as text (malformed import,
// bad definition, negative repeat count); the numeric Line field is always
// set, so callers that want structured logging (see foundation/core/log)
// do not have to parse the message.
type CompileError struct {
	Message string
	Line    int

	inner *mdwerror.Error
}

// NewCompileError builds a CompileError for the given line. The message is
// used as is; the line appears in it only when the caller put it there
// (e.g. "Malformed input statement on line 3").
func NewCompileError(line int, message string) *CompileError {
	inner := mdwerror.New(message).
		WithCode(mdwerror.CodeVCGCompile).
		WithOperation("parser.Compile").
		WithDetail("line", line)
	return &CompileError{Message: message, Line: line, inner: inner}
}

func (e *CompileError) Error() string {
	return e.Message
}

func (e *CompileError) Unwrap() error {
	return e.inner
}

// Code returns the platform error code backing err, if it is a LexError or
// CompileError, or CodeUnknown otherwise. Useful for callers bridging into
// the ambient logging/error-reporting stack.
func Code(err error) mdwerror.Code {
	switch e := err.(type) {
	case *LexError:
		return mdwerror.GetCode(e.inner)
	case *CompileError:
		return mdwerror.GetCode(e.inner)
	default:
		return mdwerror.CodeUnknown
	}
}
