package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/modsmith/confdoc/ir"
)

// encodeTOML emits each map level scalars-first, then every nested map as a
// [path] block, recursing. Null and table-in-array shapes have no TOML
// rendering here and fail with ErrEncode; the TOML parser never produces
// them, so round-tripped documents are unaffected.
func encodeTOML(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Type != ir.ObjectType {
		return fmt.Errorf("%w: toml documents must be maps, got %s", ErrEncode, node.Type)
	}
	return tomlSection(node, "", w, es)
}

func tomlSection(node *ir.Node, path string, w io.Writer, es *EncState) error {
	for i, f := range node.Fields {
		v := node.Values[i]
		if v.Type == ir.ObjectType {
			continue
		}
		s, err := tomlValue(v, es)
		if err != nil {
			return err
		}
		key := es.color(ir.ObjectType, FieldColor, tomlKey(f))
		if err := writeString(w, key+" = "+s+"\n"); err != nil {
			return err
		}
	}
	for i, f := range node.Fields {
		v := node.Values[i]
		if v.Type != ir.ObjectType {
			continue
		}
		childPath := ir.JoinPath(path, tomlKey(f))
		header := es.color(ir.ObjectType, SepColor, "["+childPath+"]")
		if err := writeString(w, "\n"+header+"\n"); err != nil {
			return err
		}
		if err := tomlSection(v, childPath, w, es); err != nil {
			return err
		}
	}
	return nil
}

// tomlKey quotes a key the next parse would otherwise mis-split: separator
// or comment characters, brackets, surrounding whitespace, or a leading
// quote. The parser unquotes both value keys and section path segments.
func tomlKey(k string) string {
	if k == "" || k != strings.TrimSpace(k) ||
		strings.ContainsAny(k, "=#[]\n") ||
		k[0] == '"' || k[0] == '\'' {
		return strconv.Quote(k)
	}
	return k
}

func tomlValue(node *ir.Node, es *EncState) (string, error) {
	switch node.Type {
	case ir.BoolType:
		return es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)), nil
	case ir.NumberType:
		return es.color(ir.NumberType, ValueColor, formatNumber(node)), nil
	case ir.StringType:
		return es.color(ir.StringType, ValueColor, strconv.Quote(node.String)), nil
	case ir.ArrayType:
		parts := make([]string, len(node.Values))
		for i, v := range node.Values {
			s, err := tomlValue(v, es)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case ir.NullType:
		return "", fmt.Errorf("%w: toml has no null", ErrEncode)
	case ir.ObjectType:
		return "", fmt.Errorf("%w: toml tables inside arrays are unsupported", ErrEncode)
	default:
		panic("type")
	}
}
