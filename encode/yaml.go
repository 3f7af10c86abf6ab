package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/modsmith/confdoc/ir"
)

// encodeYAML writes nested maps as indentation blocks and arrays inline in
// bracket form, which is the subset the YAML parser reads back.
func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Type != ir.ObjectType {
		return fmt.Errorf("%w: yaml documents must be maps, got %s", ErrEncode, node.Type)
	}
	return yamlObject(node, 0, w, es)
}

func yamlObject(node *ir.Node, depth int, w io.Writer, es *EncState) error {
	pad := strings.Repeat(" ", depth*es.indent)
	for i, f := range node.Fields {
		v := node.Values[i]
		key := es.color(ir.ObjectType, FieldColor, yamlKey(f))
		if v.Type == ir.ObjectType {
			if err := writeString(w, pad+key+":\n"); err != nil {
				return err
			}
			if err := yamlObject(v, depth+1, w, es); err != nil {
				return err
			}
			continue
		}
		s, err := yamlValue(v, es)
		if err != nil {
			return err
		}
		if err := writeString(w, pad+key+": "+s+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func yamlValue(node *ir.Node, es *EncState) (string, error) {
	switch node.Type {
	case ir.NullType:
		return es.color(ir.NullType, ValueColor, "null"), nil
	case ir.BoolType:
		return es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)), nil
	case ir.NumberType:
		return es.color(ir.NumberType, ValueColor, formatNumber(node)), nil
	case ir.StringType:
		v := node.String
		if yamlNeedsQuote(v) {
			v = strconv.Quote(v)
		}
		return es.color(ir.StringType, ValueColor, v), nil
	case ir.ArrayType:
		parts := make([]string, len(node.Values))
		for i, v := range node.Values {
			s, err := yamlValue(v, es)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case ir.ObjectType:
		return "", fmt.Errorf("%w: yaml maps inside arrays are unsupported", ErrEncode)
	default:
		panic("type")
	}
}

// yamlKey quotes a key whose text would move the `key:` split or start a
// comment on the next parse. The parser unquotes quoted keys.
func yamlKey(k string) string {
	if k == "" || k != strings.TrimSpace(k) ||
		strings.ContainsAny(k, ":#[]\n") ||
		k[0] == '"' || k[0] == '\'' {
		return strconv.Quote(k)
	}
	return k
}

// yamlNeedsQuote decides whether a string scalar must be quoted so the next
// parse does not reinterpret its type: empty strings, the boolean and null
// keywords, strings holding ':' or '#', and strings that parse as numbers.
// Characters that break the line or inline-array grammar force quoting too.
func yamlNeedsQuote(v string) bool {
	switch v {
	case "", "null", "~", "true", "false", "yes", "no", "on", "off":
		return true
	}
	if strings.ContainsAny(v, ":#,[]\n") {
		return true
	}
	if v[0] == '"' || v[0] == '\'' || v != strings.TrimSpace(v) {
		return true
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return true
	}
	return false
}
