// Package edit mutates ir.Node trees through pure functional replacement:
// every operation returns a new root, shallow-copying only the ancestor
// chain down to the touched node and sharing everything else by reference.
// It also builds the per-kind render model the surrounding UI consumes.
package edit

import (
	"errors"
	"fmt"

	"github.com/modsmith/confdoc/ir"
)

var ErrBadEdit = errors.New("bad edit")

// Op is the tagged union of editor mutations. The set is closed: Apply
// switches exhaustively over it, as it does over node kinds.
type Op interface {
	isOp()
}

// Toggle flips a boolean node.
type Toggle struct{}

// SetBool replaces a boolean node's value.
type SetBool struct{ Value bool }

// SetNumber replaces a number node's value; integral values stay integers.
type SetNumber struct{ Value float64 }

// SetString replaces a string node's value.
type SetString struct{ Value string }

// Delete removes the addressed entry from its parent: a key from a map, or
// an element (spliced by index) from an array.
type Delete struct{}

// AddItem appends to the addressed array a value cloned-by-type from its
// first element: booleans add false, numbers add 0, anything else adds the
// empty string. Empty arrays default to the empty string.
type AddItem struct{}

// RemoveItem splices the element at Index out of the addressed array.
type RemoveItem struct{ Index int }

func (Toggle) isOp()     {}
func (SetBool) isOp()    {}
func (SetNumber) isOp()  {}
func (SetString) isOp()  {}
func (Delete) isOp()     {}
func (AddItem) isOp()    {}
func (RemoveItem) isOp() {}

// Apply returns a new root with op applied at path. The input tree is never
// mutated; subtrees not on the ancestor chain are shared between old and new
// roots.
func Apply(root *ir.Node, path ir.Path, op Op) (*ir.Node, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrBadEdit)
	}
	return apply(root, path, op)
}

func apply(node *ir.Node, path ir.Path, op Op) (*ir.Node, error) {
	if len(path) == 0 {
		return applyHere(node, op)
	}
	seg := path[0]
	if seg.IsIndex {
		if node.Type != ir.ArrayType {
			return nil, fmt.Errorf("%w: index into %s", ErrBadEdit, node.Type)
		}
		if seg.Index < 0 || seg.Index >= len(node.Values) {
			return nil, fmt.Errorf("%w: index %d out of range", ErrBadEdit, seg.Index)
		}
		if _, ok := op.(Delete); ok && len(path) == 1 {
			cp := node.ShallowCopy()
			cp.Values = append(cp.Values[:seg.Index], cp.Values[seg.Index+1:]...)
			return cp, nil
		}
		child, err := apply(node.Values[seg.Index], path[1:], op)
		if err != nil {
			return nil, err
		}
		cp := node.ShallowCopy()
		cp.Values[seg.Index] = child
		return cp, nil
	}
	if node.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: key %q into %s", ErrBadEdit, seg.Field, node.Type)
	}
	i := node.IndexOf(seg.Field)
	if i < 0 {
		return nil, fmt.Errorf("%w: no key %q", ErrBadEdit, seg.Field)
	}
	if _, ok := op.(Delete); ok && len(path) == 1 {
		cp := node.ShallowCopy()
		cp.Delete(seg.Field)
		return cp, nil
	}
	child, err := apply(node.Values[i], path[1:], op)
	if err != nil {
		return nil, err
	}
	cp := node.ShallowCopy()
	cp.Values[i] = child
	return cp, nil
}

func applyHere(node *ir.Node, op Op) (*ir.Node, error) {
	switch x := op.(type) {
	case Toggle:
		if node.Type != ir.BoolType {
			return nil, fmt.Errorf("%w: toggle on %s", ErrBadEdit, node.Type)
		}
		return ir.FromBool(!node.Bool), nil
	case SetBool:
		if node.Type != ir.BoolType {
			return nil, fmt.Errorf("%w: set bool on %s", ErrBadEdit, node.Type)
		}
		return ir.FromBool(x.Value), nil
	case SetNumber:
		if node.Type != ir.NumberType {
			return nil, fmt.Errorf("%w: set number on %s", ErrBadEdit, node.Type)
		}
		return ir.FromNumber(x.Value), nil
	case SetString:
		if node.Type != ir.StringType {
			return nil, fmt.Errorf("%w: set string on %s", ErrBadEdit, node.Type)
		}
		return ir.FromString(x.Value), nil
	case AddItem:
		if node.Type != ir.ArrayType {
			return nil, fmt.Errorf("%w: add item on %s", ErrBadEdit, node.Type)
		}
		cp := node.ShallowCopy()
		cp.Values = append(cp.Values, defaultItem(cp.Values))
		return cp, nil
	case RemoveItem:
		if node.Type != ir.ArrayType {
			return nil, fmt.Errorf("%w: remove item on %s", ErrBadEdit, node.Type)
		}
		if x.Index < 0 || x.Index >= len(node.Values) {
			return nil, fmt.Errorf("%w: index %d out of range", ErrBadEdit, x.Index)
		}
		cp := node.ShallowCopy()
		cp.Values = append(cp.Values[:x.Index], cp.Values[x.Index+1:]...)
		return cp, nil
	case Delete:
		return nil, fmt.Errorf("%w: cannot delete the document root", ErrBadEdit)
	default:
		panic("op")
	}
}

func defaultItem(values []*ir.Node) *ir.Node {
	if len(values) == 0 {
		return ir.FromString("")
	}
	switch values[0].Type {
	case ir.BoolType:
		return ir.FromBool(false)
	case ir.NumberType:
		return ir.FromInt(0)
	default:
		return ir.FromString("")
	}
}
