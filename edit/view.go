package edit

import (
	"strings"

	"github.com/modsmith/confdoc/ir"
)

// DefaultExpandDepth keeps the first two nesting levels open and collapses
// containers below that.
const DefaultExpandDepth = 2

// Control is the tagged union of leaf widgets. The switch in View is
// exhaustive over node kinds, so adding a kind fails to compile until every
// renderer handles it.
type Control interface {
	isControl()
}

// NullControl is display-only; deleting the key is the only offer.
type NullControl struct{}

// ToggleControl renders a boolean. Committing emits a whole-tree
// replacement with this path's value flipped.
type ToggleControl struct {
	Value bool
}

// NumberControl renders a number as a text field, stepping by 1 for values
// that were integral and 0.1 otherwise, with a bounded slider for small
// non-negative values.
type NumberControl struct {
	Value     float64
	Integer   bool
	Step      float64
	HasSlider bool
	SliderMax float64
}

// TextControl renders a string: single-line input, promoted to a text area
// for long or multi-line content.
type TextControl struct {
	Value     string
	Multiline bool
}

func (NullControl) isControl()   {}
func (ToggleControl) isControl() {}
func (NumberControl) isControl() {}
func (TextControl) isControl()   {}

// NodeView is the render model for one tree node, independent of which
// format produced the tree.
type NodeView struct {
	Path ir.Path
	Key  string
	Kind ir.Type

	Control  Control // set for leaf kinds only
	Children []*NodeView

	Collapsed  bool
	CanDelete  bool // offered on map children
	CanAddItem bool
	Comment    string
}

type ViewOptions struct {
	// ExpandDepth is the nesting level below which containers start
	// collapsed; zero means DefaultExpandDepth.
	ExpandDepth int
	// Comments attaches parse-time comments to their nodes by path.
	Comments ir.Comments
}

// View builds the render model for a whole tree.
func View(root *ir.Node, opts ViewOptions) *NodeView {
	if opts.ExpandDepth == 0 {
		opts.ExpandDepth = DefaultExpandDepth
	}
	return view(root, nil, "", 0, &opts)
}

func view(node *ir.Node, path ir.Path, key string, depth int, opts *ViewOptions) *NodeView {
	nv := &NodeView{
		Path: path,
		Key:  key,
		Kind: node.Type,
	}
	if opts.Comments != nil {
		nv.Comment = opts.Comments[path.String()]
	}
	switch node.Type {
	case ir.NullType:
		nv.Control = NullControl{}
	case ir.BoolType:
		nv.Control = ToggleControl{Value: node.Bool}
	case ir.NumberType:
		nv.Control = numberControl(node)
	case ir.StringType:
		nv.Control = TextControl{
			Value:     node.String,
			Multiline: len(node.String) > 50 || strings.Contains(node.String, "\n"),
		}
	case ir.ArrayType:
		nv.CanAddItem = true
		nv.Collapsed = depth >= opts.ExpandDepth
		nv.Children = make([]*NodeView, len(node.Values))
		for i, v := range node.Values {
			nv.Children[i] = view(v, path.Child(ir.Index(i)), "", depth+1, opts)
		}
	case ir.ObjectType:
		nv.Collapsed = depth >= opts.ExpandDepth
		nv.Children = make([]*NodeView, len(node.Fields))
		for i, f := range node.Fields {
			child := view(node.Values[i], path.Child(ir.Key(f)), f, depth+1, opts)
			child.CanDelete = true
			nv.Children[i] = child
		}
	default:
		panic("type")
	}
	return nv
}

func numberControl(node *ir.Node) NumberControl {
	v := node.Float()
	c := NumberControl{
		Value:   v,
		Integer: node.IsInt(),
		Step:    0.1,
	}
	if c.Integer {
		c.Step = 1
	}
	if v >= 0 && v <= 1000 {
		c.HasSlider = true
		c.SliderMax = max(100, 2*v)
	}
	return c
}
