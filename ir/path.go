package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// A Path addresses exactly one node in a tree: dot-separated object keys,
// with array elements written key[index], e.g. "server.rules[2]". Keys
// containing '.', '[' or ']' cannot be addressed (documented limitation).
type Path []Segment

type Segment struct {
	Field   string
	Index   int
	IsIndex bool
}

func Key(f string) Segment {
	return Segment{Field: f}
}

func Index(i int) Segment {
	return Segment{Index: i, IsIndex: true}
}

func ParsePath(s string) (Path, error) {
	if s == "" {
		return nil, nil
	}
	var res Path
	for _, part := range strings.Split(s, ".") {
		if part == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrPath, s)
		}
		for {
			open := strings.IndexByte(part, '[')
			if open < 0 {
				if part != "" {
					res = append(res, Key(part))
				}
				break
			}
			if open > 0 {
				res = append(res, Key(part[:open]))
			}
			close := strings.IndexByte(part[open:], ']')
			if close < 0 {
				return nil, fmt.Errorf("%w: unclosed index in %q", ErrPath, s)
			}
			idx, err := strconv.Atoi(part[open+1 : open+close])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("%w: bad index in %q", ErrPath, s)
			}
			res = append(res, Index(idx))
			part = part[open+close+1:]
			if part == "" {
				break
			}
			if part[0] != '[' {
				return nil, fmt.Errorf("%w: trailing %q in segment", ErrPath, part)
			}
		}
	}
	return res, nil
}

func (p Path) String() string {
	var b strings.Builder
	for _, seg := range p {
		if seg.IsIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.Index))
			b.WriteByte(']')
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.Field)
	}
	return b.String()
}

// Child extends p by one segment.
func (p Path) Child(seg Segment) Path {
	res := make(Path, len(p), len(p)+1)
	copy(res, p)
	return append(res, seg)
}

// Get resolves p against root, returning nil when the path does not exist or
// crosses a node of the wrong kind.
func (p Path) Get(root *Node) *Node {
	res := root
	for _, seg := range p {
		if res == nil {
			return nil
		}
		if seg.IsIndex {
			if res.Type != ArrayType || seg.Index >= len(res.Values) {
				return nil
			}
			res = res.Values[seg.Index]
			continue
		}
		if res.Type != ObjectType {
			return nil
		}
		res = res.Get(seg.Field)
	}
	return res
}

// JoinPath appends a key to a path string, the form parsers use while
// building comment maps.
func JoinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// IndexPath appends an array index to a path string.
func IndexPath(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}
