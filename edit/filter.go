package edit

import (
	"strings"

	"github.com/modsmith/confdoc/ir"
)

// Filter retains a subtree when its own key matches query (case-insensitive
// substring) or any descendant key does. A matching key keeps its whole
// subtree. The result shares nodes with the input; nil means nothing
// matched. An empty query returns the tree unchanged.
func Filter(root *ir.Node, query string) *ir.Node {
	if query == "" {
		return root
	}
	return filterNode(root, strings.ToLower(query))
}

func filterNode(node *ir.Node, q string) *ir.Node {
	switch node.Type {
	case ir.ObjectType:
		res := ir.Object()
		for i, f := range node.Fields {
			if strings.Contains(strings.ToLower(f), q) {
				res.Set(f, node.Values[i])
				continue
			}
			if sub := filterNode(node.Values[i], q); sub != nil {
				res.Set(f, sub)
			}
		}
		if len(res.Fields) == 0 {
			return nil
		}
		return res
	case ir.ArrayType:
		var vals []*ir.Node
		for _, v := range node.Values {
			if sub := filterNode(v, q); sub != nil {
				vals = append(vals, sub)
			}
		}
		if len(vals) == 0 {
			return nil
		}
		return ir.FromSlice(vals)
	default:
		// Leaves carry no key of their own.
		return nil
	}
}
