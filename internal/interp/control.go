package interp

import (
	"github.com/musselscript/mussel/internal/ast"
	"github.com/musselscript/mussel/internal/diag"
	"github.com/musselscript/mussel/internal/value"
)

// evalIf evaluates the branch block in a fresh child scope (spec §9's third
// open question, resolved in favor of block-scoping). "else if" arrives
// here as n.Else containing a single *ast.If element; evalBlock's generic
// dispatch handles it without any special case.
func (in *Interpreter) evalIf(n *ast.If, ctx *value.Context) (value.Value, *ctrl, error) {
	condV, err := in.evalPure(n.Cond, ctx)
	if err != nil {
		return nil, nil, err
	}
	b, ok := condV.(value.Boolean)
	if !ok {
		return nil, nil, diag.New(diag.TypeError, "if condition must be a Boolean", n.Cond.Pos())
	}
	if b.Val {
		v, _, c, err := in.evalBlock(n.Then, value.NewContext(ctx))
		return v, c, err
	}
	if n.Else != nil {
		v, _, c, err := in.evalBlock(n.Else, value.NewContext(ctx))
		return v, c, err
	}
	return value.Unit{}, nil, nil
}

func (in *Interpreter) evalFor(n *ast.For, ctx *value.Context) (value.Value, *ctrl, error) {
	iv, err := in.evalPure(n.Iterable, ctx)
	if err != nil {
		return nil, nil, err
	}
	arr, ok := iv.(value.Array)
	if !ok {
		return nil, nil, diag.New(diag.TypeError, "for iterable must be an Array", n.Iterable.Pos())
	}
	for _, elem := range arr.Elems {
		childCtx := value.NewContext(ctx)
		childCtx.Define(n.Bind, elem)
		_, _, c, err := in.evalBlock(n.Body, childCtx)
		if err != nil {
			return nil, nil, err
		}
		if c != nil {
			return c.value, c, nil
		}
	}
	return value.Unit{}, nil, nil
}

// evalUntil loops while cond is false, terminating once it becomes true
// (spec §4.2.1, §9: "loop while not cond", the opposite of a `while` loop).
//
// The body's scope is created once, before the loop, and its binding
// frame carries forward across iterations rather than resetting each pass:
// the tutorial's own example (spec §8.2-4) rebinds the tested name inside
// the body via `let` and expects that rebinding to be visible to the
// *next* iteration's condition check. A scope discarded each iteration
// would lose that rebinding the moment the loop came back around, leaving
// the condition stuck forever against the outer scope's original value.
//
// A rebind of a name already bound in loopCtx's own frame goes through
// Context.Rebind like any other `let`, which means it may hand back a new
// child frame rather than mutating loopCtx in place (spec §9's snapshot
// rule applies inside a loop body exactly as it does anywhere else — a
// closure formed in one iteration must keep seeing that iteration's
// value). loopCtx is reassigned to whatever evalBlock returns so the next
// iteration's condition check and body both run against the frame the
// previous iteration actually left behind.
func (in *Interpreter) evalUntil(n *ast.Until, ctx *value.Context) (value.Value, *ctrl, error) {
	loopCtx := value.NewContext(ctx)
	for {
		condV, err := in.evalPure(n.Cond, loopCtx)
		if err != nil {
			return nil, nil, err
		}
		b, ok := condV.(value.Boolean)
		if !ok {
			return nil, nil, diag.New(diag.TypeError, "until condition must be a Boolean", n.Cond.Pos())
		}
		if b.Val {
			return value.Unit{}, nil, nil
		}
		_, nextCtx, c, err := in.evalBlock(n.Body, loopCtx)
		if err != nil {
			return nil, nil, err
		}
		loopCtx = nextCtx
		if c != nil {
			return c.value, c, nil
		}
	}
}
