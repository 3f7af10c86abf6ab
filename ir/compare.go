package ir

import (
	"cmp"
	"strings"
)

// Equal reports value equality. Object key order is ignored; array order is
// significant. Numbers compare numerically, so an integral float equals the
// equivalent integer.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		return a.Float() == b.Float()
	case StringType:
		return a.String == b.String
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i := range a.Values {
			if !Equal(a.Values[i], b.Values[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i, f := range a.Fields {
			bv := b.Get(f)
			if bv == nil {
				return false
			}
			if !Equal(a.Values[i], bv) {
				return false
			}
		}
		return true
	default:
		panic("type")
	}
}

// Compare returns an integer comparing two nodes, for deterministic output
// ordering. The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(rank(a.Type), rank(b.Type))
	}
	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NumberType:
		return cmp.Compare(a.Float(), b.Float())
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		n := min(len(a.Values), len(b.Values))
		for i := range n {
			if c := Compare(a.Values[i], b.Values[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a.Values), len(b.Values))
	case ObjectType:
		n := min(len(a.Fields), len(b.Fields))
		for i := range n {
			if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
				return c
			}
			if c := Compare(a.Values[i], b.Values[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a.Fields), len(b.Fields))
	default:
		panic("type")
	}
}

// rank orders types: Null < Bool < Number < String < Array < Object.
func rank(t Type) int {
	return int(t)
}
