package builtins

import (
	"strings"
	"unicode"

	"github.com/musselscript/mussel/internal/diag"
	"github.com/musselscript/mussel/internal/value"
)

func stringLibrary() map[string]Fn {
	return map[string]Fn{
		"length":  lengthFn,
		"concat":  concatFn,
		"split":   splitFn,
		"reverse": reverseFn,
		"trim":    trimFn(strings.TrimSpace),
		"ltrim":   trimFn(func(s string) string { return strings.TrimLeftFunc(s, unicode.IsSpace) }),
		"rtrim":   trimFn(func(s string) string { return strings.TrimRightFunc(s, unicode.IsSpace) }),
	}
}

// length counts code points, not bytes (spec §9's open question, resolved
// in SPEC_FULL.md in favor of the tutorial's "hello" -> 5 example, which
// len() alone would also satisfy for ASCII but not for multi-byte input).
func lengthFn(args []value.Value) (value.Value, error) {
	if err := arity("length", args, 1); err != nil {
		return nil, err
	}
	s, err := wantString("length", args, 0)
	if err != nil {
		return nil, err
	}
	return value.Integer{Val: int64(len([]rune(s)))}, nil
}

func concatFn(args []value.Value) (value.Value, error) {
	if err := arity("concat", args, 2); err != nil {
		return nil, err
	}
	a, err := wantString("concat", args, 0)
	if err != nil {
		return nil, err
	}
	b, err := wantString("concat", args, 1)
	if err != nil {
		return nil, err
	}
	return value.String{Text: a + b}, nil
}

func splitFn(args []value.Value) (value.Value, error) {
	if err := arity("split", args, 2); err != nil {
		return nil, err
	}
	s, err := wantString("split", args, 0)
	if err != nil {
		return nil, err
	}
	sep, err := wantString("split", args, 1)
	if err != nil {
		return nil, err
	}
	if sep == "" {
		return nil, diag.Unpositioned(diag.RuntimeError, "split: separator must not be empty")
	}
	parts := strings.Split(s, sep)
	elems := make([]value.Value, len(parts))
	for i, p := range parts {
		elems[i] = value.String{Text: p}
	}
	return value.Array{Elems: elems}, nil
}

func reverseFn(args []value.Value) (value.Value, error) {
	if err := arity("reverse", args, 1); err != nil {
		return nil, err
	}
	s, err := wantString("reverse", args, 0)
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return value.String{Text: string(runes)}, nil
}

func trimFn(strip func(string) string) Fn {
	return func(args []value.Value) (value.Value, error) {
		if err := arity("trim", args, 1); err != nil {
			return nil, err
		}
		s, err := wantString("trim", args, 0)
		if err != nil {
			return nil, err
		}
		return value.String{Text: strip(s)}, nil
	}
}
