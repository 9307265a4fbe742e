package parser

import (
	"testing"

	"github.com/musselscript/mussel/internal/ast"
	"github.com/musselscript/mussel/internal/lexer"
)

func parse(t *testing.T, src string) []ast.Expr {
	t.Helper()
	toks, err := lexer.New([]byte(src)).Scan()
	if err != nil {
		t.Fatalf("lexer error: %v", err)
	}
	prog, err := New(toks).Parse()
	if err != nil {
		t.Fatalf("parser error: %v", err)
	}
	return prog
}

func TestParsePrecedence(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"multiplicative binds tighter than additive", "1 + 2 * 3", "(1 + (2 * 3))"},
		{"left-associative additive", "1 - 2 - 3", "((1 - 2) - 3)"},
		{"left-associative multiplicative", "8 / 4 / 2", "((8 / 4) / 2)"},
		{"parens override precedence", "(1 + 2) * 3", "((1 + 2) * 3)"},
		{"single comparison operator", "1 < 2", "(1 < 2)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parse(t, tt.src)
			if len(prog) != 1 {
				t.Fatalf("got %d top-level forms, want 1", len(prog))
			}
			if got := prog[0].String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseNegativeLiteralVsSubtraction(t *testing.T) {
	// "-1" with no preceding operand is a literal.
	prog := parse(t, "-1")
	c, ok := prog[0].(*ast.Constant)
	if !ok || c.IVal != -1 {
		t.Fatalf("got %#v, want Constant(-1)", prog[0])
	}

	// "a - 1" is subtraction: a BinOp, not a negative literal folded in.
	prog = parse(t, "a - 1")
	b, ok := prog[0].(*ast.BinOp)
	if !ok {
		t.Fatalf("got %#v, want *ast.BinOp", prog[0])
	}
	rhs, ok := b.Right.(*ast.Constant)
	if !ok || rhs.IVal != 1 || rhs.Raw != "1" {
		t.Errorf("right operand = %#v, want Constant(1) (not folded negative)", b.Right)
	}
}

func TestParseClosure(t *testing.T) {
	prog := parse(t, "|x, y| x + y")
	cl, ok := prog[0].(*ast.Closure)
	if !ok {
		t.Fatalf("got %#v, want *ast.Closure", prog[0])
	}
	if len(cl.Params) != 2 || cl.Params[0] != "x" || cl.Params[1] != "y" {
		t.Errorf("params = %v, want [x y]", cl.Params)
	}
}

func TestParseEmptyClosureParams(t *testing.T) {
	prog := parse(t, `|| "hi"`)
	cl, ok := prog[0].(*ast.Closure)
	if !ok {
		t.Fatalf("got %#v, want *ast.Closure", prog[0])
	}
	if len(cl.Params) != 0 {
		t.Errorf("params = %v, want none", cl.Params)
	}
}

func TestParseIfElseIfElse(t *testing.T) {
	src := `
if n > 0 { println("pos") } else if n < 0 { println("neg") } else { println("zero") }
`
	prog := parse(t, src)
	top, ok := prog[0].(*ast.If)
	if !ok {
		t.Fatalf("got %#v, want *ast.If", prog[0])
	}
	if len(top.Else) != 1 {
		t.Fatalf("got %d else forms, want 1 (chained If)", len(top.Else))
	}
	mid, ok := top.Else[0].(*ast.If)
	if !ok {
		t.Fatalf("else form = %#v, want *ast.If", top.Else[0])
	}
	if len(mid.Else) != 1 {
		t.Fatalf("got %d forms in final else, want 1", len(mid.Else))
	}
}

func TestParseForUntilFnIncludeReturn(t *testing.T) {
	src := `
fn add(a, b) {
  return a + b
}
include string
for x in [1, 2, 3] {
  println(x)
}
until false {
  println("loop")
}
`
	prog := parse(t, src)
	wantKinds := []string{"*ast.FnDef", "*ast.Include", "*ast.For", "*ast.Until"}
	if len(prog) != len(wantKinds) {
		t.Fatalf("got %d top-level forms, want %d", len(prog), len(wantKinds))
	}
	fn := prog[0].(*ast.FnDef)
	if fn.Name != "add" || len(fn.Params) != 2 {
		t.Errorf("fn = %#v", fn)
	}
	if _, ok := fn.Body[0].(*ast.Return); !ok {
		t.Errorf("fn body[0] = %#v, want *ast.Return", fn.Body[0])
	}
}

func TestParseCallAndIndexChaining(t *testing.T) {
	prog := parse(t, "mk(3)(4)[0]")
	get, ok := prog[0].(*ast.Get)
	if !ok {
		t.Fatalf("got %#v, want *ast.Get", prog[0])
	}
	outerCall, ok := get.Target.(*ast.Call)
	if !ok {
		t.Fatalf("get.Target = %#v, want *ast.Call", get.Target)
	}
	if _, ok := outerCall.Callee.(*ast.Call); !ok {
		t.Errorf("outerCall.Callee = %#v, want *ast.Call", outerCall.Callee)
	}
}

func TestParseArrayLiteral(t *testing.T) {
	prog := parse(t, "[-1, 0, 2]")
	arr, ok := prog[0].(*ast.Array)
	if !ok || len(arr.Elems) != 3 {
		t.Fatalf("got %#v, want 3-element Array", prog[0])
	}
}
