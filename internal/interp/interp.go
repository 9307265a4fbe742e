// Package interp is Mussel's evaluator (spec §4.2): a recursive AST walker
// operating over the pure-data internal/ast package, a Context chain
// (internal/value) for lexical scoping, and a builtin Registry
// (internal/builtins) seeded by Include. The tuple-threaded (value, *ctrl,
// error) return shape generalizes the teacher's own (Object, bool) Run
// signature (codecrafters/cmd/run.go) from Lox statements to Mussel's
// unified Expr, swapping the teacher's panic-based runtimeError for plain
// Go error returns, since diag.Error already needs to travel as a typed
// value through the parser's own error path.
package interp

import (
	"fmt"
	"io"

	"github.com/musselscript/mussel/internal/ast"
	"github.com/musselscript/mussel/internal/builtins"
	"github.com/musselscript/mussel/internal/diag"
	"github.com/musselscript/mussel/internal/token"
	"github.com/musselscript/mussel/internal/value"
)

// MaxInterpolationPasses bounds the fixpoint loop of §4.3; a cap this size
// only bites pathological strings that change on every pass and keep a
// `{...}` region, such as s bound (via input) to the text `{s}{s}` and then
// interpolated as "{s}", which grows by one copy per pass.
const MaxInterpolationPasses = 64

// ctrl is a non-nil sentinel threaded back up through evalBlock/evalIf/
// evalFor/evalUntil when a Return is evaluated; evalCall absorbs it at the
// function-invocation boundary (spec §4.2.2) so it never escapes past the
// Call that triggered the invocation.
type ctrl struct {
	value value.Value
}

// Interpreter holds the state shared across one program run: the root
// scope, the builtin registry, and the random generator Include("random")
// seeds into it.
type Interpreter struct {
	root      *value.Context
	registry  *builtins.Registry
	rng       *builtins.RNG
	funcDepth int
}

// New builds an Interpreter writing/reading through io, per spec §5's "the
// only process-wide mutable resources".
func New(stdout io.Writer, stdin io.Reader) *Interpreter {
	ioHost := builtins.NewIO(stdout, stdin)
	return &Interpreter{
		root:     value.NewContext(nil),
		registry: builtins.NewRegistry(ioHost),
		rng:      builtins.NewRNG(),
	}
}

// Run evaluates prog (a parsed program, spec §2 step 2) against the root
// scope. println flushes stdout on every call (spec §5's "line-buffered
// with an explicit flush"), so a later failure never strands output.
func (in *Interpreter) Run(prog []ast.Expr) error {
	// A bare top-level Return already fails inside eval (funcDepth == 0),
	// so evalBlock can never hand back a live ctrl signal here.
	_, _, _, err := in.evalBlock(prog, in.root)
	return err
}

// evalBlock runs exprs in order inside ctx (already a fresh child scope, or
// the root), stopping and propagating upward as soon as a Return fires. It
// returns the Context that a caller running exprs more than once against
// accumulating state (namely evalUntil's loop body) should continue with
// on the next pass.
//
// Let and FnDef are handled directly here rather than through the eval
// dispatch, because they are the only two node kinds that ever bind a name
// into the frame currently executing, and per spec §9 doing so must not
// retroactively disturb a Function that may have already captured ctx by
// pointer (Context.Rebind gives the exact rule). This placement is
// grammar-exhaustive: Let and FnDef are only ever produced by the parser's
// statement(), which only ever appears directly in a block's list of
// exprs — never nested inside an expression evalPure evaluates — so no
// other call site needs to know about context reassignment.
func (in *Interpreter) evalBlock(exprs []ast.Expr, ctx *value.Context) (value.Value, *value.Context, *ctrl, error) {
	cur := ctx
	var last value.Value = value.Unit{}
	for _, e := range exprs {
		switch n := e.(type) {
		case *ast.Let:
			v, err := in.evalPure(n.Value, cur)
			if err != nil {
				return nil, cur, nil, err
			}
			cur = cur.Rebind(n.Ident, v)
			last = value.Unit{}

		case *ast.FnDef:
			fn := &value.Function{Params: n.Params, Body: n.Body, Closure: cur, Name: n.Name}
			cur = cur.Rebind(n.Name, fn)
			last = value.Unit{}

		default:
			v, c, err := in.eval(e, cur)
			if err != nil {
				return nil, cur, nil, err
			}
			if c != nil {
				return c.value, cur, c, nil
			}
			last = v
		}
	}
	return last, cur, nil, nil
}

// evalPure evaluates e where the grammar guarantees no Return can occur
// (any position reached only through expression(), never statement()):
// BinOp/Array/Get operands, Let's value, If/For/Until's condition or
// iterable, and Call arguments.
func (in *Interpreter) evalPure(e ast.Expr, ctx *value.Context) (value.Value, error) {
	v, _, err := in.eval(e, ctx)
	return v, err
}

// eval dispatches on the concrete Expr type, mirroring the teacher's own
// Evaluate/Run split but unified into a single tuple-threaded method since
// Mussel has no separate Stmt hierarchy. Let and FnDef have no case here:
// they only ever appear directly in a block's statement list, so evalBlock
// handles them itself (see its comment) and never calls eval on them.
func (in *Interpreter) eval(e ast.Expr, ctx *value.Context) (value.Value, *ctrl, error) {
	switch n := e.(type) {
	case *ast.Constant:
		v, err := in.evalConstant(n, ctx)
		return v, nil, err

	case *ast.Name:
		v, ok := ctx.Get(n.Ident)
		if !ok {
			return nil, nil, diag.Newf(diag.NameError, n.Pos(), "undefined name %q", n.Ident)
		}
		return v, nil, nil

	case *ast.Array:
		elems := make([]value.Value, len(n.Elems))
		for i, el := range n.Elems {
			v, err := in.evalPure(el, ctx)
			if err != nil {
				return nil, nil, err
			}
			elems[i] = v
		}
		return value.Array{Elems: elems}, nil, nil

	case *ast.Get:
		v, err := in.evalGet(n, ctx)
		return v, nil, err

	case *ast.BinOp:
		v, err := in.evalBinOp(n, ctx)
		return v, nil, err

	case *ast.If:
		return in.evalIf(n, ctx)

	case *ast.For:
		return in.evalFor(n, ctx)

	case *ast.Until:
		return in.evalUntil(n, ctx)

	case *ast.Closure:
		fn := &value.Function{Params: n.Params, Body: []ast.Expr{n.Body}, Closure: ctx}
		return fn, nil, nil

	case *ast.Call:
		return in.evalCall(n, ctx)

	case *ast.Return:
		if in.funcDepth == 0 {
			return nil, nil, diag.New(diag.RuntimeError, "return outside of a function", n.Pos())
		}
		v, err := in.evalPure(n.Value, ctx)
		if err != nil {
			return nil, nil, err
		}
		return v, &ctrl{value: v}, nil

	case *ast.Include:
		if !in.registry.Include(n.Library, in.rng) {
			return nil, nil, diag.Newf(diag.ImportError, n.Pos(), "unknown library %q", n.Library)
		}
		return value.Unit{}, nil, nil

	default:
		return nil, nil, fmt.Errorf("interp: unhandled AST node %T", e)
	}
}

func (in *Interpreter) evalConstant(c *ast.Constant, ctx *value.Context) (value.Value, error) {
	switch c.Kind {
	case token.STRING:
		return in.interpolate(c.Raw, ctx, c.Pos())
	case token.INTEGER:
		return value.Integer{Val: c.IVal}, nil
	case token.FLOAT:
		return value.Float{Val: c.FVal}, nil
	case token.TRUE, token.FALSE:
		return value.Boolean{Val: c.BVal}, nil
	default:
		return nil, fmt.Errorf("interp: constant with unexpected token kind %s", c.Kind)
	}
}
