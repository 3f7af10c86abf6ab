package session

import (
	"github.com/modsmith/confdoc/format"
	"github.com/modsmith/confdoc/ir"
	"github.com/modsmith/confdoc/parse"
)

// parseCache memoizes parse results per (text, format) pair: parsing is a
// pure function and may run on every keystroke, so re-renders of unchanged
// text must not pay for a re-parse. Sessions are single-threaded by
// contract, so no locking.
type parseCache struct {
	entries map[cacheKey]cacheVal
}

type cacheKey struct {
	text   string
	format format.Format
}

type cacheVal struct {
	tree     *ir.Node
	comments ir.Comments
	err      error
}

const cacheLimit = 64

func newParseCache() *parseCache {
	return &parseCache{entries: map[cacheKey]cacheVal{}}
}

func (c *parseCache) parse(text string, f format.Format) (*ir.Node, ir.Comments, error) {
	key := cacheKey{text: text, format: f}
	if v, ok := c.entries[key]; ok {
		return v.tree, v.comments, v.err
	}
	tree, comments, err := parse.Parse([]byte(text), f)
	if len(c.entries) >= cacheLimit {
		clear(c.entries)
	}
	c.entries[key] = cacheVal{tree: tree, comments: comments, err: err}
	return tree, comments, err
}
