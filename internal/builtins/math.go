package builtins

import (
	"math"

	"github.com/musselscript/mussel/internal/diag"
	"github.com/musselscript/mussel/internal/value"
)

func mathLibrary() map[string]Fn {
	return map[string]Fn{
		"abs":  absFn,
		"sqrt": sqrtFn,
		"pow":  powFn,
	}
}

// abs preserves the operand's Integer/Float kind (spec §4.4), unlike sqrt
// and pow which always widen to Float.
func absFn(args []value.Value) (value.Value, error) {
	if err := arity("abs", args, 1); err != nil {
		return nil, err
	}
	switch n := args[0].(type) {
	case value.Integer:
		if n.Val < 0 {
			return value.Integer{Val: -n.Val}, nil
		}
		return n, nil
	case value.Float:
		return value.Float{Val: math.Abs(n.Val)}, nil
	default:
		return nil, diag.Unpositioned(diag.TypeError, "abs: argument must be numeric")
	}
}

func sqrtFn(args []value.Value) (value.Value, error) {
	if err := arity("sqrt", args, 1); err != nil {
		return nil, err
	}
	f, _, err := wantNumber("sqrt", args, 0)
	if err != nil {
		return nil, err
	}
	if f < 0 {
		return nil, diag.Unpositioned(diag.RuntimeError, "sqrt: argument must be non-negative")
	}
	return value.Float{Val: math.Sqrt(f)}, nil
}

func powFn(args []value.Value) (value.Value, error) {
	if err := arity("pow", args, 2); err != nil {
		return nil, err
	}
	b, _, err := wantNumber("pow", args, 0)
	if err != nil {
		return nil, err
	}
	e, _, err := wantNumber("pow", args, 1)
	if err != nil {
		return nil, err
	}
	return value.Float{Val: math.Pow(b, e)}, nil
}
