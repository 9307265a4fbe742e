package builtins

import (
	"os"

	"github.com/musselscript/mussel/internal/diag"
	"github.com/musselscript/mussel/internal/value"
)

func osLibrary() map[string]Fn {
	return map[string]Fn{
		"getcwd":  getcwdFn,
		"listdir": listdirFn,
		"exists":  existsFn,
	}
}

func getcwdFn(args []value.Value) (value.Value, error) {
	if err := arity("getcwd", args, 0); err != nil {
		return nil, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, diag.Unpositioned(diag.RuntimeError, "getcwd: "+err.Error())
	}
	return value.String{Text: wd}, nil
}

func listdirFn(args []value.Value) (value.Value, error) {
	if err := arity("listdir", args, 1); err != nil {
		return nil, err
	}
	path, err := wantString("listdir", args, 0)
	if err != nil {
		return nil, err
	}
	entries, readErr := os.ReadDir(path)
	if readErr != nil {
		return nil, diag.Unpositioned(diag.RuntimeError, "listdir: "+readErr.Error())
	}
	elems := make([]value.Value, len(entries))
	for i, e := range entries {
		elems[i] = value.String{Text: e.Name()}
	}
	return value.Array{Elems: elems}, nil
}

func existsFn(args []value.Value) (value.Value, error) {
	if err := arity("exists", args, 1); err != nil {
		return nil, err
	}
	path, err := wantString("exists", args, 0)
	if err != nil {
		return nil, err
	}
	_, statErr := os.Stat(path)
	return value.Boolean{Val: statErr == nil}, nil
}
