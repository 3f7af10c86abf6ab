package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/modsmith/confdoc/ir"
)

// encodeProperties emits one key=value line per map entry. Properties values
// must be scalars; nesting is an encode error rather than silent flattening.
func encodeProperties(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Type != ir.ObjectType {
		return fmt.Errorf("%w: properties documents must be maps, got %s", ErrEncode, node.Type)
	}
	for i, f := range node.Fields {
		s, err := propertiesValue(node.Values[i], es)
		if err != nil {
			return err
		}
		key := es.color(ir.ObjectType, FieldColor, f)
		if err := writeString(w, key+"="+s+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func propertiesValue(node *ir.Node, es *EncState) (string, error) {
	switch node.Type {
	case ir.BoolType:
		return es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)), nil
	case ir.NumberType:
		return es.color(ir.NumberType, ValueColor, formatNumber(node)), nil
	case ir.StringType:
		v := node.String
		if propertiesNeedsQuote(v) {
			v = strconv.Quote(v)
		}
		return es.color(ir.StringType, ValueColor, v), nil
	case ir.NullType, ir.ArrayType, ir.ObjectType:
		return "", fmt.Errorf("%w: properties values must be scalars, got %s", ErrEncode, node.Type)
	default:
		panic("type")
	}
}

// propertiesNeedsQuote guards strings the next parse would reinterpret:
// boolean literals, numbers, already-quoted text, leading or trailing
// whitespace (the parser trims values), and anything that cannot survive a
// single line.
func propertiesNeedsQuote(v string) bool {
	switch v {
	case "true", "false":
		return true
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return true
	}
	if len(v) > 0 && (v[0] == '"' || v[0] == '\'') {
		return true
	}
	if v != strings.TrimSpace(v) {
		return true
	}
	return strings.ContainsAny(v, "\n\r")
}
