// Package ast defines Mussel's single Expr node hierarchy (spec §3.2).
//
// Mussel, unlike the teacher Lox grammar, has no separate Stmt/Expr split:
// every top-level form and every block member is an Expr, including `let`
// bindings and loops, which simply evaluate to Unit. Nodes here are pure
// data plus a String() method for debugging/dumping, following the split
// CWBudde-go-dws uses between its ast package (data only) and its
// interp/evaluator package (the walker, see internal/interp). Keeping
// Eval() out of this package avoids an import cycle, since evaluating a
// Call must reach the builtin registry in internal/builtins, which depends
// on this package through internal/value.
package ast

import (
	"fmt"
	"strings"

	"github.com/musselscript/mussel/internal/token"
)

// Expr is the interface every AST node implements.
type Expr interface {
	Pos() token.Position
	String() string
}

type Base struct {
	P token.Position
}

func (b Base) Pos() token.Position { return b.P }

// Constant is a literal atom: string, integer, float, or boolean.
// Kind distinguishes them since the lexical token type isn't retained.
type Constant struct {
	Base
	Kind  token.Type // STRING, INTEGER, FLOAT, TRUE, or FALSE
	Raw   string     // the literal's source text (unquoted for strings)
	IVal  int64
	FVal  float64
	BVal  bool
}

func (c *Constant) String() string {
	if c.Kind == token.STRING {
		return fmt.Sprintf("%q", c.Raw)
	}
	return c.Raw
}

// Name is a variable reference.
type Name struct {
	Base
	Ident string
}

func (n *Name) String() string { return n.Ident }

// Let binds (or rebinds/shadows) an identifier in the current scope.
type Let struct {
	Base
	Ident string
	Value Expr
}

func (l *Let) String() string { return fmt.Sprintf("let %s = %s", l.Ident, l.Value) }

// Array is an array constructor.
type Array struct {
	Base
	Elems []Expr
}

func (a *Array) String() string {
	parts := make([]string, len(a.Elems))
	for i, e := range a.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Get is an element access expression, target[index].
type Get struct {
	Base
	Target Expr
	Index  Expr
}

func (g *Get) String() string { return fmt.Sprintf("%s[%s]", g.Target, g.Index) }

// BinOp is an arithmetic or comparison binary operator application.
type BinOp struct {
	Base
	Op    token.Type
	Left  Expr
	Right Expr
}

func (b *BinOp) String() string { return fmt.Sprintf("(%s %s %s)", b.Left, opSymbol(b.Op), b.Right) }

func opSymbol(t token.Type) string {
	switch t {
	case token.PLUS:
		return "+"
	case token.MINUS:
		return "-"
	case token.STAR:
		return "*"
	case token.SLASH:
		return "/"
	case token.EQUAL_EQUAL:
		return "=="
	case token.BANG_EQUAL:
		return "!="
	case token.LESS:
		return "<"
	case token.LESS_EQUAL:
		return "<="
	case token.GREATER:
		return ">"
	case token.GREATER_EQUAL:
		return ">="
	default:
		return t.String()
	}
}

// If is a conditional; Else may hold another *If to represent "else if",
// or any other block for a plain "else".
type If struct {
	Base
	Cond Expr
	Then []Expr
	Else []Expr // nil if no else branch; a single *If element represents "else if"
}

func (i *If) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "if %s { ... }", i.Cond)
	if i.Else != nil {
		sb.WriteString(" else { ... }")
	}
	return sb.String()
}

// For iterates Iterable (must evaluate to an Array), binding Bind to each
// element in turn.
type For struct {
	Base
	Bind     string
	Iterable Expr
	Body     []Expr
}

func (f *For) String() string { return fmt.Sprintf("for %s in %s { ... }", f.Bind, f.Iterable) }

// Until loops while Cond evaluates false, terminating once it becomes true.
type Until struct {
	Base
	Cond Expr
	Body []Expr
}

func (u *Until) String() string { return fmt.Sprintf("until %s { ... }", u.Cond) }

// FnDef is a named function declaration; it registers Name in the current
// scope when evaluated.
type FnDef struct {
	Base
	Name   string
	Params []string
	Body   []Expr
}

func (f *FnDef) String() string {
	return fmt.Sprintf("fn %s(%s) { ... }", f.Name, strings.Join(f.Params, ", "))
}

// Closure is an anonymous |p1, p2| expr function literal. Its body is a
// single expression (not a block).
type Closure struct {
	Base
	Params []string
	Body   Expr
}

func (c *Closure) String() string {
	return fmt.Sprintf("|%s| %s", strings.Join(c.Params, ", "), c.Body)
}

// Call is a function application; Callee may name a builtin or evaluate to
// a Function value.
type Call struct {
	Base
	Callee Expr
	Args   []Expr
}

func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee, strings.Join(parts, ", "))
}

// Return unwinds the enclosing function invocation with Value's result.
type Return struct {
	Base
	Value Expr
}

func (r *Return) String() string { return fmt.Sprintf("return %s", r.Value) }

// Include registers a bundled library's builtins into the active registry.
type Include struct {
	Base
	Library string
}

func (i *Include) String() string { return fmt.Sprintf("include %s", i.Library) }

// NewBase is used by the parser to attach a source position to a node.
func NewBase(pos token.Position) Base { return Base{P: pos} }
