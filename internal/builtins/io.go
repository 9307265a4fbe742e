package builtins

import (
	"bufio"
	"io"
	"strings"

	"github.com/musselscript/mussel/internal/diag"
	"github.com/musselscript/mussel/internal/value"
)

// IO bundles the process-wide stdout/stdin handles the evaluator touches
// (spec §5: "stdout/stdin are the only process-wide mutable resources").
// The driver constructs one from os.Stdout/os.Stdin; tests construct one
// over in-memory buffers.
type IO struct {
	Out *bufio.Writer
	In  *bufio.Reader
}

// NewIO wraps w/r in buffered handles; println and input flush Out
// explicitly after writing.
func NewIO(w io.Writer, r io.Reader) *IO {
	return &IO{Out: bufio.NewWriter(w), In: bufio.NewReader(r)}
}

func alwaysAvailable(io *IO) map[string]Fn {
	return map[string]Fn{
		"println": printlnFn(io),
		"input":   inputFn(io),
	}
}

func printlnFn(io *IO) Fn {
	return func(args []value.Value) (value.Value, error) {
		if err := arity("println", args, 1); err != nil {
			return nil, err
		}
		io.Out.WriteString(value.FormatForInterpolation(args[0]))
		io.Out.WriteByte('\n')
		io.Out.Flush()
		return value.Unit{}, nil
	}
}

func inputFn(io *IO) Fn {
	return func(args []value.Value) (value.Value, error) {
		if err := arity("input", args, 1); err != nil {
			return nil, err
		}
		prompt, err := wantString("input", args, 0)
		if err != nil {
			return nil, err
		}
		io.Out.WriteString(prompt)
		io.Out.Flush()
		line, err := io.In.ReadString('\n')
		if err != nil && line == "" {
			return nil, diag.Unpositioned(diag.RuntimeError, "input: failed to read from stdin: "+err.Error())
		}
		return value.String{Text: strings.TrimRight(line, "\r\n")}, nil
	}
}
