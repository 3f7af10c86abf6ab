package parse

import (
	"strings"

	"github.com/modsmith/confdoc/ir"
)

// parseYAML handles the indentation-structured subset of YAML that mod
// configs actually use: nested maps, inline arrays and plain scalars. Block
// scalar bodies (| and >) are not captured verbatim; the key becomes an
// empty map and the body lines are skipped as unparseable (documented
// limitation). Dash-style sequences are likewise out of scope.
func parseYAML(data []byte) (*ir.Node, ir.Comments, error) {
	type frame struct {
		indent int
		node   *ir.Node
		path   string
	}
	var (
		root     = ir.Object()
		comments = ir.Comments{}
		stack    = []frame{{indent: -1, node: root}}
		pending  commentBuf
	)
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			pending.Blank()
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			pending.Line(strings.TrimPrefix(trimmed, "#"))
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " "))
		for len(stack) > 1 && indent <= stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}
		top := stack[len(stack)-1]

		colon := indexUnescaped(trimmed, ':')
		if colon < 0 {
			pending.Blank()
			continue
		}
		key := strings.TrimSpace(trimmed[:colon])
		if isQuoted(key) {
			key = unquote(key)
		}
		rest := strings.TrimSpace(trimmed[colon+1:])
		path := ir.JoinPath(top.path, key)

		if rest == "" || rest == "|" || rest == ">" {
			child := ir.Object()
			top.node.Set(key, child)
			comments.Add(path, pending.Take())
			stack = append(stack, frame{indent: indent, node: child, path: path})
			continue
		}

		// Inline trailing comments are only recognized on unquoted values;
		// a '#' inside a quoted scalar is data.
		inline := ""
		if !strings.HasPrefix(rest, `"`) && !strings.HasPrefix(rest, "'") {
			rest, inline = cutInlineComment(rest)
		}
		top.node.Set(key, decodeYAMLScalar(rest))
		comments.Add(path, pending.Take())
		comments.Add(path, inline)
	}
	return root, comments, nil
}
