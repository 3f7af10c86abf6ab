// Package ir defines the value tree shared by every parser, serializer and
// the structural editor. A Node is a tagged union over the JSON-like kinds;
// object key order is insertion order and is preserved through serialization.
package ir

import "math"

// Node is one node of a parsed configuration document.
//
// Nodes carry no parent backreferences: edits replace the ancestor chain and
// share every unaffected subtree, so a node may be reachable from several
// roots at once.
type Node struct {
	Type Type

	Bool    bool
	String  string
	Int64   *int64
	Float64 *float64

	// Fields holds object keys in insertion order; Values holds object
	// values (parallel to Fields) or array elements.
	Fields []string
	Values []*Node
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

// FromNumber stores f as an integer when it has no fractional part.
func FromNumber(f float64) *Node {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return FromInt(int64(f))
	}
	return FromFloat(f)
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func Object() *Node {
	return &Node{Type: ObjectType}
}

func Array() *Node {
	return &Node{Type: ArrayType}
}

func FromSlice(vals []*Node) *Node {
	return &Node{Type: ArrayType, Values: vals}
}

// Float returns the numeric value regardless of integer/float representation.
func (y *Node) Float() float64 {
	if y.Int64 != nil {
		return float64(*y.Int64)
	}
	if y.Float64 != nil {
		return *y.Float64
	}
	return 0
}

// IsInt reports whether a number node holds an integral value.
func (y *Node) IsInt() bool {
	return y.Int64 != nil
}

func (y *Node) IndexOf(field string) int {
	for i, f := range y.Fields {
		if f == field {
			return i
		}
	}
	return -1
}

func (y *Node) Get(field string) *Node {
	i := y.IndexOf(field)
	if i < 0 {
		return nil
	}
	return y.Values[i]
}

// Set appends field or replaces its value when already present. It mutates
// the node and is intended for tree construction in parsers; editor code
// goes through edit.Apply instead.
func (y *Node) Set(field string, val *Node) {
	if i := y.IndexOf(field); i >= 0 {
		y.Values[i] = val
		return
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, val)
}

// Delete removes field in place, preserving the order of the rest.
func (y *Node) Delete(field string) {
	i := y.IndexOf(field)
	if i < 0 {
		return
	}
	y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Bool = y.Bool
	dst.String = y.String
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Fields != nil {
		dst.Fields = append([]string(nil), y.Fields...)
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

// ShallowCopy copies the node but shares children. Editor mutations copy the
// ancestor chain with this and leave all other subtrees shared.
func (y *Node) ShallowCopy() *Node {
	res := &Node{
		Type:    y.Type,
		Bool:    y.Bool,
		String:  y.String,
		Int64:   y.Int64,
		Float64: y.Float64,
	}
	if y.Fields != nil {
		res.Fields = append([]string(nil), y.Fields...)
	}
	if y.Values != nil {
		res.Values = append([]*Node(nil), y.Values...)
	}
	return res
}

// Visit walks the tree depth first. f is called before and after children;
// returning false from the pre call skips them.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i, f := range node.Fields {
		res[f] = node.Values[i]
	}
	return res
}
