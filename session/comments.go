package session

import (
	"strconv"
	"strings"

	"github.com/modsmith/confdoc/ir"
)

// The comment map that came out of the parser keys on the paths the document
// had at parse time. Edits that remove nodes invalidate those keys, so Apply
// rewrites the map: pruned for a deleted key, index-shifted for a spliced
// array element. The input map may be shared with the parse cache and is
// never mutated.

// pruneComments drops the comment at path and every comment beneath it.
func pruneComments(c ir.Comments, path string) ir.Comments {
	res := ir.Comments{}
	for k, v := range c {
		if k == path || strings.HasPrefix(k, path+".") || strings.HasPrefix(k, path+"[") {
			continue
		}
		res[k] = v
	}
	return res
}

// spliceComments removes comments under arrayPath[index] and shifts the
// comments of every later element down by one.
func spliceComments(c ir.Comments, arrayPath string, index int) ir.Comments {
	prefix := arrayPath + "["
	res := ir.Comments{}
	for k, v := range c {
		if !strings.HasPrefix(k, prefix) {
			res[k] = v
			continue
		}
		rest := k[len(prefix):]
		close := strings.IndexByte(rest, ']')
		if close < 0 {
			res[k] = v
			continue
		}
		n, err := strconv.Atoi(rest[:close])
		if err != nil {
			res[k] = v
			continue
		}
		switch {
		case n == index:
			// The element these comments described is gone.
		case n > index:
			res[ir.IndexPath(arrayPath, n-1)+rest[close+1:]] = v
		default:
			res[k] = v
		}
	}
	return res
}
