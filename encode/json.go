package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/modsmith/confdoc/ir"
)

// encodeJSON pretty-prints with the configured indent; object key order is
// the tree's insertion order, carried through an ordered map so the standard
// marshaler cannot resort it.
func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := toJSONValue(node)
	if err != nil {
		return err
	}
	d, err := json.MarshalIndent(v, "", strings.Repeat(" ", es.indent))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := writeString(w, string(d)); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func toJSONValue(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		return node.Float(), nil
	case ir.StringType:
		return node.String, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			jv, err := toJSONValue(v)
			if err != nil {
				return nil, err
			}
			res[i] = jv
		}
		return res, nil
	case ir.ObjectType:
		om := orderedmap.New()
		for i, f := range node.Fields {
			jv, err := toJSONValue(node.Values[i])
			if err != nil {
				return nil, err
			}
			om.Set(f, jv)
		}
		return om, nil
	default:
		panic("type")
	}
}
