// Package diag implements Mussel's error taxonomy (spec §7) and renders
// diagnostics to the terminal.
//
// The shape is carried over from the teacher's stderr writes
// (codecrafters/cmd/evaluate.go's runtimeError, parser.go's error) and
// enriched with the source-excerpt-plus-caret rendering style used by
// CWBudde-go-dws/internal/errors, substituting that package's hand-rolled
// ANSI codes for the pack's own github.com/fatih/color dependency (already
// present in the teacher's go.mod for its test-comparison CLI).
package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/musselscript/mussel/internal/token"
)

// Kind is one of the seven error kinds of spec §7. All are fatal: Mussel
// has no recovery construct.
type Kind int

const (
	ParseError Kind = iota
	NameError
	TypeError
	ArityError
	IndexError
	RuntimeError
	ImportError
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case NameError:
		return "NameError"
	case TypeError:
		return "TypeError"
	case ArityError:
		return "ArityError"
	case IndexError:
		return "IndexError"
	case RuntimeError:
		return "RuntimeError"
	case ImportError:
		return "ImportError"
	default:
		return "Error"
	}
}

// Error is a terminal diagnostic: kind, human message, and an optional
// source position. It implements the standard error interface so it can
// flow through normal Go error returns.
type Error struct {
	Kind Kind
	Msg  string
	Pos  token.Position
	// HasPos distinguishes "position unknown" (zero value) from line 0,
	// which never occurs for a real token.
	HasPos bool
}

// New builds a positioned Error.
func New(kind Kind, msg string, pos token.Position) *Error {
	return &Error{Kind: kind, Msg: msg, Pos: pos, HasPos: true}
}

// Newf builds a positioned Error with a formatted message.
func Newf(kind Kind, pos token.Position, format string, args ...any) *Error {
	return New(kind, fmt.Sprintf(format, args...), pos)
}

// Unpositioned builds an Error with no known source location (used for
// errors raised outside of AST evaluation, such as those from builtins).
func Unpositioned(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// WithPos attaches pos to err if it doesn't already carry one, returning err
// unchanged otherwise. Builtins raise Unpositioned errors since they have no
// access to the calling AST node; the evaluator calls this at the Call site
// to fill in the position of the call expression that invoked the builtin.
func WithPos(err *Error, pos token.Position) *Error {
	if err.HasPos {
		return err
	}
	return New(err.Kind, err.Msg, pos)
}

func (e *Error) Error() string {
	if e.HasPos {
		return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// ExitCode maps an error kind to the process exit code mandated by spec §6.2:
// 2 for usage/parse errors, 1 for everything else that reaches the driver.
func (e *Error) ExitCode() int {
	if e.Kind == ParseError {
		return 2
	}
	return 1
}

// Render formats a diagnostic for stderr: a colored kind/position header,
// the offending source line (when available and positioned), a caret
// pointing at the column, and the message. filename may be empty.
func Render(err *Error, source, filename string) string {
	var sb strings.Builder

	kindLabel := color.New(color.FgRed, color.Bold).Sprint(err.Kind.String())

	if err.HasPos {
		loc := filename
		if loc == "" {
			loc = "<source>"
		}
		fmt.Fprintf(&sb, "%s: %s:%s\n", kindLabel, loc, err.Pos)

		if line := sourceLine(source, err.Pos.Line); line != "" {
			prefix := fmt.Sprintf("%4d | ", err.Pos.Line)
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')

			col := err.Pos.Column
			if col < 1 {
				col = 1
			}
			sb.WriteString(strings.Repeat(" ", len(prefix)+col-1))
			sb.WriteString(color.New(color.FgRed, color.Bold).Sprint("^"))
			sb.WriteByte('\n')
		}
	} else {
		fmt.Fprintf(&sb, "%s\n", kindLabel)
	}

	sb.WriteString(err.Msg)
	return sb.String()
}

func sourceLine(source string, line int) string {
	if source == "" || line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return lines[line-1]
}
