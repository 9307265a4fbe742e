package builtins

import (
	"strconv"

	"github.com/musselscript/mussel/internal/diag"
	"github.com/musselscript/mussel/internal/value"
)

// arity raises ArityError unless args has exactly n elements. Builtins raise
// Unpositioned errors (spec §7); the evaluator attaches the call site's
// position via diag.WithPos before the error reaches the driver.
func arity(name string, args []value.Value, n int) error {
	if len(args) != n {
		return diag.Unpositioned(diag.ArityError,
			name+": expected "+strconv.Itoa(n)+" argument(s), got "+strconv.Itoa(len(args)))
	}
	return nil
}

func wantString(name string, args []value.Value, i int) (string, error) {
	s, ok := args[i].(value.String)
	if !ok {
		return "", diag.Unpositioned(diag.TypeError, name+": argument must be a String")
	}
	return s.Text, nil
}

func wantNumber(name string, args []value.Value, i int) (float64, bool, error) {
	f, isFloat, ok := value.AsNumber(args[i])
	if !ok {
		return 0, false, diag.Unpositioned(diag.TypeError, name+": argument must be numeric")
	}
	return f, isFloat, nil
}
