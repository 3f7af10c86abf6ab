package encode

import (
	"fmt"
	"io"

	"github.com/modsmith/confdoc/format"
	"github.com/modsmith/confdoc/ir"
)

type EncState struct {
	format format.Format
	indent int
	colors *Colors
}

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// Encode writes node to w in the configured format (JSON by default,
// 2-space indentation). The output is what the parser for that format
// accepts back, value-for-value.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	case format.TOMLFormat:
		return encodeTOML(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	case format.PropertiesFormat:
		return encodeProperties(node, w, es)
	case format.TextFormat:
		return fmt.Errorf("%w: text files have no structural form", ErrEncode)
	default:
		return fmt.Errorf("%w: %v", format.ErrBadFormat, es.format)
	}
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Color(t, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
