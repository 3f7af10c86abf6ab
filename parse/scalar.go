package parse

import (
	"strconv"
	"strings"

	"github.com/modsmith/confdoc/ir"
)

// decodeScalar applies the TOML/Properties value heuristic: bool literal,
// quoted string, bracketed array, number, else raw string. The heuristic is
// fixed and deterministic; the resulting coercion ambiguity for string-typed
// values is a documented limitation, not a knob.
func decodeScalar(v string) *ir.Node {
	v = strings.TrimSpace(v)
	switch v {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}
	if isQuoted(v) {
		return ir.FromString(unquote(v))
	}
	if strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]") {
		return decodeInlineArray(v, decodeScalar)
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return ir.FromNumber(f)
	}
	return ir.FromString(v)
}

// decodeYAMLScalar is the YAML variant: null spellings, the yes/no/on/off
// boolean family, then the shared string/array/number rules.
func decodeYAMLScalar(v string) *ir.Node {
	v = strings.TrimSpace(v)
	switch v {
	case "", "null", "~":
		return ir.Null()
	case "true", "yes", "on":
		return ir.FromBool(true)
	case "false", "no", "off":
		return ir.FromBool(false)
	}
	if isQuoted(v) {
		return ir.FromString(unquote(v))
	}
	if strings.HasPrefix(v, "[") && strings.HasSuffix(v, "]") {
		return decodeInlineArray(v, decodeYAMLScalar)
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return ir.FromNumber(f)
	}
	return ir.FromString(v)
}

func decodeInlineArray(v string, elem func(string) *ir.Node) *ir.Node {
	inner := strings.TrimSpace(v[1 : len(v)-1])
	if inner == "" {
		return ir.Array()
	}
	parts := splitTop(inner, ',')
	vals := make([]*ir.Node, len(parts))
	for i, p := range parts {
		vals[i] = elem(p)
	}
	return ir.FromSlice(vals)
}

func isQuoted(v string) bool {
	if len(v) < 2 {
		return false
	}
	q := v[0]
	return (q == '"' || q == '\'') && v[len(v)-1] == q
}

func unquote(v string) string {
	if !isQuoted(v) {
		return v
	}
	if v[0] == '"' {
		if s, err := strconv.Unquote(v); err == nil {
			return s
		}
	}
	inner := v[1 : len(v)-1]
	if v[0] == '\'' {
		return strings.ReplaceAll(inner, "''", "'")
	}
	return inner
}

// splitTop splits on sep outside quotes and outside nested brackets.
func splitTop(s string, sep byte) []string {
	var (
		res   []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == '\\' && quote == '"' {
				i++
				continue
			}
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		case sep:
			if depth == 0 {
				res = append(res, s[start:i])
				start = i + 1
			}
		}
	}
	return append(res, s[start:])
}

// indexUnescaped returns the index of the first sep that is neither
// backslash-escaped nor inside quotes, or -1.
func indexUnescaped(s string, sep byte) int {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == '\\' && quote == '"' {
				i++
				continue
			}
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '\\':
			i++
		case sep:
			return i
		}
	}
	return -1
}

// cutInlineComment splits a value portion at the first '#' outside quotes.
// The comment text comes back with the marker and surrounding space removed.
func cutInlineComment(s string) (value, comment string) {
	i := indexUnescaped(s, '#')
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s[i:]), "#"))
}
