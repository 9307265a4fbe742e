// Package value implements Mussel's dynamically-typed runtime values
// (spec §3.1) and the lexically-scoped binding environment they live in
// (spec §3.3, the "Context"). The tagged-variant-via-interface shape and
// the extractor helper (AsNumber) are carried over from the teacher's
// object.go (LoxNumber/LoxString/... + IsNumber/IsString/...); the variant
// set is generalized to Mussel's (String, Integer, Float, Boolean, Array,
// Function, Unit) in place of Lox's (Nil, Bool, Number, String, Function,
// Class, Instance).
package value

import (
	"fmt"

	"github.com/musselscript/mussel/internal/ast"
)

// Kind tags a Value's variant.
type Kind int

const (
	KindString Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindArray
	KindFunction
	KindUnit
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Boolean"
	case KindArray:
		return "Array"
	case KindFunction:
		return "Function"
	case KindUnit:
		return "Unit"
	default:
		return "Unknown"
	}
}

// Value is the common interface every Mussel runtime value satisfies.
// Values are immutable once constructed (spec §3.1): "modification" means
// producing a new Value and rebinding a name to it.
type Value interface {
	Kind() Kind
	// DebugString is the implementation-defined debug form; String
	// interpolation formatting (spec §4.3.1) is a distinct,
	// stricter concern implemented in format.go.
	DebugString() string
}

type String struct{ Text string }

func (String) Kind() Kind            { return KindString }
func (s String) DebugString() string { return s.Text }

type Integer struct{ Val int64 }

func (Integer) Kind() Kind            { return KindInteger }
func (i Integer) DebugString() string { return fmt.Sprintf("%d", i.Val) }

type Float struct{ Val float64 }

func (Float) Kind() Kind            { return KindFloat }
func (f Float) DebugString() string { return formatFloat(f.Val) }

type Boolean struct{ Val bool }

func (Boolean) Kind() Kind            { return KindBoolean }
func (b Boolean) DebugString() string { return fmt.Sprintf("%t", b.Val) }

// Array is an ordered, zero-indexed sequence. The backing slice is never
// mutated in place by the evaluator; operations that "change" an array
// build a new one (spec §3.1, §3.4).
type Array struct{ Elems []Value }

func (Array) Kind() Kind { return KindArray }
func (a Array) DebugString() string {
	return FormatForInterpolation(a)
}

// Function is a first-class closure: parameter names, its body (a block of
// statements for FnDef/named functions, or a single expression wrapped in
// a one-element slice for a Closure literal), and the Context snapshot
// captured at definition time. Equality is identity, matching spec §3.1;
// Function deliberately has no Equal method so callers can only compare it
// via Go's `==` on the pointer carried by *Function.
type Function struct {
	Params  []string
	Body    []ast.Expr
	Closure *Context
	Name    string // empty for anonymous closures; used only for debug output
}

func (*Function) Kind() Kind { return KindFunction }
func (f *Function) DebugString() string {
	if f.Name != "" {
		return fmt.Sprintf("<fn %s>", f.Name)
	}
	return "<closure>"
}

// Unit is the result of expressions that carry no meaningful value, such
// as `let` bindings and `println`.
type Unit struct{}

func (Unit) Kind() Kind            { return KindUnit }
func (Unit) DebugString() string   { return "unit" }

// Truthy values are never implicitly coerced in Mussel; every condition
// position requires an actual Boolean (spec §4.2.1's "else TypeError").
// This helper exists only for internal convenience where a Boolean has
// already been type-asserted.
func Truthy(b Boolean) bool { return b.Val }

// AsNumber extracts a numeric value's float64 form regardless of whether
// it is an Integer or a Float, along with whether it was a Float (used by
// BinOp's promotion rule, spec §4.2.1).
func AsNumber(v Value) (f float64, isFloat bool, ok bool) {
	switch n := v.(type) {
	case Integer:
		return float64(n.Val), false, true
	case Float:
		return n.Val, true, true
	default:
		return 0, false, false
	}
}
