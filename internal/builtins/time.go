package builtins

import (
	"time"

	"github.com/musselscript/mussel/internal/value"
)

func timeLibrary() map[string]Fn {
	return map[string]Fn{
		"time_ms":  timeMsFn,
		"time_sec": timeSecFn,
	}
}

func timeMsFn(args []value.Value) (value.Value, error) {
	if err := arity("time_ms", args, 0); err != nil {
		return nil, err
	}
	return value.Integer{Val: time.Now().UnixMilli()}, nil
}

func timeSecFn(args []value.Value) (value.Value, error) {
	if err := arity("time_sec", args, 0); err != nil {
		return nil, err
	}
	return value.Float{Val: float64(time.Now().UnixNano()) / 1e9}, nil
}
