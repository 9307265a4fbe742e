package builtins

import (
	"math"
	"math/rand/v2"

	"github.com/musselscript/mussel/internal/diag"
	"github.com/musselscript/mussel/internal/value"
)

// RNG wraps the generator rand() draws from. A dedicated type (rather than
// passing *rand.Rand directly) keeps the math/rand/v2 API surface confined
// to this package, the same isolation CWBudde-go-dws's builtins.Context
// gives its RandSource method.
type RNG struct{ src *rand.Rand }

// NewRNG seeds a fresh generator from a random seed.
func NewRNG() *RNG {
	return &RNG{src: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func randomLibrary(rng *RNG) map[string]Fn {
	return map[string]Fn{
		"rand": randFn(rng),
	}
}

func randFn(rng *RNG) Fn {
	return func(args []value.Value) (value.Value, error) {
		if err := arity("rand", args, 2); err != nil {
			return nil, err
		}
		min, err := numericArg("rand", args, 0)
		if err != nil {
			return nil, err
		}
		max, err := numericArg("rand", args, 1)
		if err != nil {
			return nil, err
		}
		if min > max {
			return nil, diag.Unpositioned(diag.RuntimeError, "rand: min must be <= max")
		}
		span := uint64(max-min) + 1
		return value.Integer{Val: min + int64(rng.src.Uint64N(span))}, nil
	}
}

// numericArg rounds a Float argument to the nearest integer per spec §4.4's
// "if either is Float, round to nearest integer".
func numericArg(name string, args []value.Value, i int) (int64, error) {
	f, isFloat, err := wantNumber(name, args, i)
	if err != nil {
		return 0, err
	}
	if isFloat {
		return int64(math.Round(f)), nil
	}
	return int64(f), nil
}
