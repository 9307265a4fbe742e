package interp

import (
	"strings"

	"github.com/musselscript/mussel/internal/lexer"
	"github.com/musselscript/mussel/internal/parser"
	"github.com/musselscript/mussel/internal/token"
	"github.com/musselscript/mussel/internal/value"
)

// interpolate implements spec §4.3's fixpoint algorithm: repeatedly splice
// the first `{...}` region's evaluated, formatted value back into the
// string until a pass changes nothing or the iteration cap is hit.
func (in *Interpreter) interpolate(s string, ctx *value.Context, pos token.Position) (value.Value, error) {
	cur := s
	for i := 0; i < MaxInterpolationPasses; i++ {
		next, found, err := in.interpolateOnce(cur, ctx, pos)
		if err != nil {
			return nil, err
		}
		if !found || next == cur {
			return value.String{Text: next}, nil
		}
		cur = next
	}
	return value.String{Text: cur}, nil
}

// interpolateOnce splices the first (non-nested) {...} region, if any.
func (in *Interpreter) interpolateOnce(s string, ctx *value.Context, pos token.Position) (result string, found bool, err error) {
	open := strings.IndexByte(s, '{')
	if open < 0 {
		return s, false, nil
	}
	close := strings.IndexByte(s[open+1:], '}')
	if close < 0 {
		return s, false, nil
	}
	close += open + 1

	inner := s[open+1 : close]

	toks, lexErr := lexer.New([]byte(inner)).Scan()
	if lexErr != nil {
		return "", false, lexErr
	}
	expr, parseErr := parser.New(toks).ParseExpression()
	if parseErr != nil {
		return "", false, parseErr
	}

	v, evalErr := in.evalPure(expr, ctx)
	if evalErr != nil {
		return "", false, evalErr
	}

	replacement := value.FormatForInterpolation(v)
	return s[:open] + replacement + s[close+1:], true, nil
}
