// Package errors formats the interpreter's fatal errors with source
// context, mirroring go-dws's internal/errors package: a line/column
// header, the offending source line, and a caret pointing at the column.
package errors

import (
	"fmt"
	"strings"

	"github.com/brnstm-lang/brnstm/internal/lexer"
)

// ErrorKind classifies a fatal error by the condition that raised it.
type ErrorKind string

const (
	NameError         ErrorKind = "NameError"
	TypeError         ErrorKind = "TypeError"
	ArityError        ErrorKind = "ArityError"
	BoundsError       ErrorKind = "BoundsError"
	AssignmentError   ErrorKind = "AssignmentError"
	RedefinitionError ErrorKind = "RedefinitionError"
	ImportError       ErrorKind = "ImportError"
	KeywordError      ErrorKind = "KeywordError"
	SyntaxError       ErrorKind = "SyntaxError"
)

// EvalError is the single fatal error type every layer of the interpreter
// produces — there is no recovery mechanism in the language.
type EvalError struct {
	Kind    ErrorKind
	Message string
	Source  string // full source text, for caret formatting; may be empty
	File    string // origin file name; may be empty
	Pos     lexer.Position
	HasPos  bool
}

// New builds an EvalError with no position information attached.
func New(kind ErrorKind, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewAt builds an EvalError anchored to a source position.
func NewAt(kind ErrorKind, pos lexer.Position, format string, args ...any) *EvalError {
	return &EvalError{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos, HasPos: true}
}

// WithSource attaches source text and a file name for caret formatting.
func (e *EvalError) WithSource(source, file string) *EvalError {
	e.Source = source
	e.File = file
	return e
}

// Error implements the error interface.
func (e *EvalError) Error() string {
	return e.Format(false)
}

// Format renders the error with source context when available. If color
// is true, the caret is wrapped in ANSI bold-red, matching go-dws's
// CompilerError.Format.
func (e *EvalError) Format(color bool) string {
	var sb strings.Builder

	if e.HasPos {
		if e.File != "" {
			fmt.Fprintf(&sb, "%s in %s:%d:%d\n", e.Kind, e.File, e.Pos.Line, e.Pos.Column)
		} else {
			fmt.Fprintf(&sb, "%s at line %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column)
		}

		if line := e.sourceLine(e.Pos.Line); line != "" {
			prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
			if color {
				sb.WriteString("\033[1;31m")
			}
			sb.WriteString("^")
			if color {
				sb.WriteString("\033[0m")
			}
			sb.WriteString("\n")
		}
	} else {
		fmt.Fprintf(&sb, "%s: ", e.Kind)
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *EvalError) sourceLine(lineNum int) string {
	if e.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
