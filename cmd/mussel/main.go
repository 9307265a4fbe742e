// Command mussel is the driver (spec §2 step 5, §6.2): it loads a source
// file, lexes and parses it, evaluates the resulting program, and renders
// any diagnostic to stderr with the exit code the error kind mandates. This
// generalizes the teacher's codecrafters/cmd/main.go, which dispatched on a
// tokenize/parse/evaluate/run subcommand; Mussel has exactly one mode, so
// that subcommand switch collapses to straight-line wiring.
package main

import (
	"fmt"
	"os"

	"github.com/musselscript/mussel/internal/diag"
	"github.com/musselscript/mussel/internal/interp"
	"github.com/musselscript/mussel/internal/lexer"
	"github.com/musselscript/mussel/internal/parser"
	"github.com/musselscript/mussel/internal/sourcefile"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: mussel <path-to-source>")
		return 2
	}
	path := args[0]

	src, err := sourcefile.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	toks, err := lexer.New(src).Scan()
	if err != nil {
		return reportDiag(err, string(src), path)
	}

	prog, err := parser.New(toks).Parse()
	if err != nil {
		return reportDiag(err, string(src), path)
	}

	in := interp.New(os.Stdout, os.Stdin)
	if err := in.Run(prog); err != nil {
		return reportDiag(err, string(src), path)
	}

	return 0
}

func reportDiag(err error, source, path string) int {
	de, ok := err.(*diag.Error)
	if !ok {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Fprintln(os.Stderr, diag.Render(de, source, path))
	return de.ExitCode()
}
