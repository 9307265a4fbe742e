package value

import (
	"strconv"
	"strings"
)

// FormatForInterpolation renders v per spec §4.3.1: the exact textual form
// spliced into a string during interpolation. It yields the same text as
// DebugString for every variant; for Function/Unit, whose form the spec
// says tests must not rely on, it simply reuses DebugString, since no
// interpolation of a Function/Unit value is exercised by any spec scenario.
func FormatForInterpolation(v Value) string {
	switch val := v.(type) {
	case String:
		return val.Text
	case Integer:
		return strconv.FormatInt(val.Val, 10)
	case Float:
		return formatFloat(val.Val)
	case Boolean:
		if val.Val {
			return "true"
		}
		return "false"
	case Array:
		parts := make([]string, len(val.Elems))
		for i, e := range val.Elems {
			parts[i] = FormatForInterpolation(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Function:
		return val.DebugString()
	case Unit:
		return val.DebugString()
	default:
		return v.DebugString()
	}
}

// formatFloat renders the shortest round-trip decimal for f (plain digits,
// never exponent notation), guaranteeing at least one fractional digit
// (spec §4.3.1), mirroring the teacher lexer's own numberLiteral
// normalization (a forced ".0").
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
