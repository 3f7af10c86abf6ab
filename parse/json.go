package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"

	"github.com/modsmith/confdoc/ir"
)

// parseJSON is tolerant: it strips //-prefixed whole-line comments and
// trailing commas, then runs a standard JSON decode. If the cleanup itself
// broke the document it falls back to a strict decode of the original text.
// Stripped comments are discarded, not preserved: JSON has no comment
// grammar, so the comment map for this format is always empty.
func parseJSON(data []byte) (*ir.Node, ir.Comments, error) {
	node, err := decodeJSON(cleanupJSON(data))
	if err != nil {
		node, err = decodeJSON(data)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
	}
	return node, ir.Comments{}, nil
}

func decodeJSON(data []byte) (*ir.Node, error) {
	om := orderedmap.New()
	if err := json.Unmarshal(data, om); err == nil {
		return fromJSONValue(om), nil
	}
	// Array top level: decode element-wise so nested objects keep their key
	// order instead of passing through an unordered map. A null document
	// also unmarshals here, as a nil slice; it belongs to the scalar path.
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err == nil && raws != nil {
		vals := make([]*ir.Node, len(raws))
		for i, r := range raws {
			n, err := decodeJSON(r)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	}
	// Scalar top level.
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return fromJSONValue(v), nil
}

func fromJSONValue(v any) *ir.Node {
	switch x := v.(type) {
	case nil:
		return ir.Null()
	case bool:
		return ir.FromBool(x)
	case float64:
		return ir.FromNumber(x)
	case string:
		return ir.FromString(x)
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, e := range x {
			vals[i] = fromJSONValue(e)
		}
		return ir.FromSlice(vals)
	case orderedmap.OrderedMap:
		return fromOrderedMap(&x)
	case *orderedmap.OrderedMap:
		return fromOrderedMap(x)
	default:
		return ir.FromString(fmt.Sprintf("%v", x))
	}
}

func fromOrderedMap(om *orderedmap.OrderedMap) *ir.Node {
	res := ir.Object()
	for _, k := range om.Keys() {
		v, _ := om.Get(k)
		res.Set(k, fromJSONValue(v))
	}
	return res
}

// cleanupJSON removes //-prefixed whole-line comments, then trailing commas
// outside strings.
func cleanupJSON(data []byte) []byte {
	lines := strings.Split(string(data), "\n")
	kept := lines[:0]
	for _, ln := range lines {
		if strings.HasPrefix(strings.TrimSpace(ln), "//") {
			continue
		}
		kept = append(kept, ln)
	}
	s := strings.Join(kept, "\n")

	var (
		b       strings.Builder
		inStr   bool
		comma   = -1 // index in b of a pending comma, -1 when none
		escaped bool
	)
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inStr {
			b.WriteByte(c)
			if escaped {
				escaped = false
			} else if c == '\\' {
				escaped = true
			} else if c == '"' {
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
			comma = -1
		case ',':
			comma = b.Len()
		case '}', ']':
			if comma >= 0 {
				trimmed := b.String()[:comma] + b.String()[comma+1:]
				b.Reset()
				b.WriteString(trimmed)
			}
			comma = -1
		case ' ', '\t', '\r', '\n':
		default:
			comma = -1
		}
		b.WriteByte(c)
	}
	return []byte(b.String())
}
