package interp

import (
	"github.com/musselscript/mussel/internal/ast"
	"github.com/musselscript/mussel/internal/diag"
	"github.com/musselscript/mussel/internal/token"
	"github.com/musselscript/mussel/internal/value"
)

// evalCall implements spec §4.2.1's Call contract: a Name callee checks the
// BuiltinRegistry first; anything else (or a Name the registry doesn't
// know) is evaluated as an ordinary expression expected to yield a
// Function. A Function invocation absorbs its own Return here — that's
// the boundary tuple-threaded ctrl never crosses.
func (in *Interpreter) evalCall(c *ast.Call, ctx *value.Context) (value.Value, *ctrl, error) {
	if name, ok := c.Callee.(*ast.Name); ok {
		if fn, ok := in.registry.Lookup(name.Ident); ok {
			args, err := in.evalArgs(c.Args, ctx)
			if err != nil {
				return nil, nil, err
			}
			v, err := fn(args)
			if err != nil {
				return nil, nil, attachPos(err, c.Pos())
			}
			return v, nil, nil
		}
	}

	calleeVal, err := in.evalPure(c.Callee, ctx)
	if err != nil {
		return nil, nil, err
	}
	fnVal, ok := calleeVal.(*value.Function)
	if !ok {
		return nil, nil, diag.New(diag.TypeError, "call target is not a function", c.Callee.Pos())
	}

	args, err := in.evalArgs(c.Args, ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(args) != len(fnVal.Params) {
		return nil, nil, diag.Newf(diag.ArityError, c.Pos(),
			"expected %d argument(s), got %d", len(fnVal.Params), len(args))
	}

	callCtx := value.NewContext(fnVal.Closure)
	for i, p := range fnVal.Params {
		callCtx.Define(p, args[i])
	}

	in.funcDepth++
	v, _, c2, err := in.evalBlock(fnVal.Body, callCtx)
	in.funcDepth--
	if err != nil {
		return nil, nil, err
	}
	if c2 != nil {
		return c2.value, nil, nil
	}
	return v, nil, nil
}

func (in *Interpreter) evalArgs(argExprs []ast.Expr, ctx *value.Context) ([]value.Value, error) {
	args := make([]value.Value, len(argExprs))
	for i, a := range argExprs {
		v, err := in.evalPure(a, ctx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// attachPos fills in a source position on an Unpositioned diag.Error a
// builtin raised, using the call site; non-diag errors pass through
// unchanged (none currently originate from builtins, but this keeps the
// boundary honest if one ever wraps a plain error).
func attachPos(err error, pos token.Position) error {
	if de, ok := err.(*diag.Error); ok {
		return diag.WithPos(de, pos)
	}
	return err
}
