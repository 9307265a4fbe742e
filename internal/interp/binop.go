package interp

import (
	"github.com/musselscript/mussel/internal/ast"
	"github.com/musselscript/mussel/internal/diag"
	"github.com/musselscript/mussel/internal/token"
	"github.com/musselscript/mussel/internal/value"
)

func (in *Interpreter) evalGet(n *ast.Get, ctx *value.Context) (value.Value, error) {
	tv, err := in.evalPure(n.Target, ctx)
	if err != nil {
		return nil, err
	}
	arr, ok := tv.(value.Array)
	if !ok {
		return nil, diag.New(diag.TypeError, "index target must be an Array", n.Target.Pos())
	}
	iv, err := in.evalPure(n.Index, ctx)
	if err != nil {
		return nil, err
	}
	idx, ok := iv.(value.Integer)
	if !ok {
		return nil, diag.New(diag.TypeError, "index must be an Integer", n.Index.Pos())
	}
	if idx.Val < 0 || idx.Val >= int64(len(arr.Elems)) {
		return nil, diag.Newf(diag.IndexError, n.Pos(), "index %d out of range for array of length %d", idx.Val, len(arr.Elems))
	}
	return arr.Elems[idx.Val], nil
}

func (in *Interpreter) evalBinOp(n *ast.BinOp, ctx *value.Context) (value.Value, error) {
	lv, err := in.evalPure(n.Left, ctx)
	if err != nil {
		return nil, err
	}
	rv, err := in.evalPure(n.Right, ctx)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case token.PLUS:
		return evalPlus(lv, rv, n)
	case token.MINUS, token.STAR, token.SLASH:
		return evalArith(n.Op, lv, rv, n)
	case token.EQUAL_EQUAL, token.BANG_EQUAL:
		return evalEquality(n.Op, lv, rv, n)
	case token.LESS, token.LESS_EQUAL, token.GREATER, token.GREATER_EQUAL:
		return evalOrdering(n.Op, lv, rv, n)
	default:
		return nil, diag.New(diag.RuntimeError, "unsupported operator", n.Pos())
	}
}

// evalPlus additionally allows String+String concatenation, which the other
// arithmetic operators do not (spec §4.2.1).
func evalPlus(lv, rv value.Value, n *ast.BinOp) (value.Value, error) {
	ls, lok := lv.(value.String)
	rs, rok := rv.(value.String)
	if lok && rok {
		return value.String{Text: ls.Text + rs.Text}, nil
	}
	return evalArith(token.PLUS, lv, rv, n)
}

func evalArith(op token.Type, lv, rv value.Value, n *ast.BinOp) (value.Value, error) {
	lf, lIsFloat, lok := value.AsNumber(lv)
	rf, rIsFloat, rok := value.AsNumber(rv)
	if !lok || !rok {
		return nil, diag.New(diag.TypeError, "arithmetic operands must be numeric (or String for +)", n.Pos())
	}

	if op == token.SLASH && rf == 0 {
		return nil, diag.New(diag.RuntimeError, "division by zero", n.Pos())
	}

	var result float64
	switch op {
	case token.PLUS:
		result = lf + rf
	case token.MINUS:
		result = lf - rf
	case token.STAR:
		result = lf * rf
	case token.SLASH:
		result = lf / rf
	}

	// Promote to Float iff at least one operand is Float (spec §8.1-5);
	// division always promotes, resolving spec §9's open question in favor
	// of the quotient not silently truncating.
	if lIsFloat || rIsFloat || op == token.SLASH {
		return value.Float{Val: result}, nil
	}
	return value.Integer{Val: int64(result)}, nil
}

func evalEquality(op token.Type, lv, rv value.Value, n *ast.BinOp) (value.Value, error) {
	eq, err := valuesEqual(lv, rv, n)
	if err != nil {
		return nil, err
	}
	if op == token.BANG_EQUAL {
		eq = !eq
	}
	return value.Boolean{Val: eq}, nil
}

// valuesEqual requires same-kind operands, except Integer/Float which
// compare by numeric value (spec §4.2.1's stated cross-kind exception).
func valuesEqual(lv, rv value.Value, n *ast.BinOp) (bool, error) {
	if lf, _, lok := value.AsNumber(lv); lok {
		if rf, _, rok := value.AsNumber(rv); rok {
			return lf == rf, nil
		}
		return false, diag.New(diag.TypeError, "== / != require operands of the same kind", n.Pos())
	}
	switch l := lv.(type) {
	case value.String:
		r, ok := rv.(value.String)
		if !ok {
			return false, diag.New(diag.TypeError, "== / != require operands of the same kind", n.Pos())
		}
		return l.Text == r.Text, nil
	case value.Boolean:
		r, ok := rv.(value.Boolean)
		if !ok {
			return false, diag.New(diag.TypeError, "== / != require operands of the same kind", n.Pos())
		}
		return l.Val == r.Val, nil
	case value.Array:
		r, ok := rv.(value.Array)
		if !ok {
			return false, diag.New(diag.TypeError, "== / != require operands of the same kind", n.Pos())
		}
		return arraysEqual(l, r, n)
	case *value.Function:
		r, ok := rv.(*value.Function)
		if !ok {
			return false, diag.New(diag.TypeError, "== / != require operands of the same kind", n.Pos())
		}
		return l == r, nil
	default:
		return false, diag.New(diag.TypeError, "values of this kind are not comparable", n.Pos())
	}
}

func arraysEqual(l, r value.Array, n *ast.BinOp) (bool, error) {
	if len(l.Elems) != len(r.Elems) {
		return false, nil
	}
	for i := range l.Elems {
		eq, err := valuesEqual(l.Elems[i], r.Elems[i], n)
		if err != nil {
			return false, err
		}
		if !eq {
			return false, nil
		}
	}
	return true, nil
}

// evalOrdering requires numeric or String operands; String ordering is
// lexicographic by code point (spec §4.2.1).
func evalOrdering(op token.Type, lv, rv value.Value, n *ast.BinOp) (value.Value, error) {
	if lf, _, lok := value.AsNumber(lv); lok {
		if rf, _, rok := value.AsNumber(rv); rok {
			return value.Boolean{Val: compareOrdered(op, lf < rf, lf == rf, lf > rf)}, nil
		}
	}
	if ls, lok := lv.(value.String); lok {
		if rs, rok := rv.(value.String); rok {
			return value.Boolean{Val: compareOrdered(op, ls.Text < rs.Text, ls.Text == rs.Text, ls.Text > rs.Text)}, nil
		}
	}
	return nil, diag.New(diag.TypeError, "ordering operators require two numbers or two Strings", n.Pos())
}

func compareOrdered(op token.Type, less, equal, greater bool) bool {
	switch op {
	case token.LESS:
		return less
	case token.LESS_EQUAL:
		return less || equal
	case token.GREATER:
		return greater
	case token.GREATER_EQUAL:
		return greater || equal
	default:
		return false
	}
}
