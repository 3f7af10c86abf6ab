package parse

import (
	"strings"

	"github.com/modsmith/confdoc/ir"
)

// parseTOML is a line-oriented parser holding a current-section pointer (the
// map receiving top-level keys) and a pending-comment buffer. Array-of-tables
// syntax is out of scope; unparseable lines are skipped rather than fatal, so
// structural editing degrades gracefully on odd input.
func parseTOML(data []byte) (*ir.Node, ir.Comments, error) {
	var (
		root        = ir.Object()
		comments    = ir.Comments{}
		section     = root
		sectionPath = ""
		pending     commentBuf
	)
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			pending.Blank()
		case strings.HasPrefix(trimmed, "#"):
			pending.Line(strings.TrimPrefix(trimmed, "#"))
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			name := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			if name == "" {
				pending.Blank()
				continue
			}
			section = root
			sectionPath = ""
			for _, seg := range strings.Split(name, ".") {
				seg = strings.TrimSpace(seg)
				if isQuoted(seg) {
					seg = unquote(seg)
				}
				next := section.Get(seg)
				if next == nil || next.Type != ir.ObjectType {
					next = ir.Object()
					section.Set(seg, next)
				}
				section = next
				sectionPath = ir.JoinPath(sectionPath, seg)
			}
			comments.Add(sectionPath, pending.Take())
		default:
			eq := indexUnescaped(trimmed, '=')
			if eq < 0 {
				pending.Blank()
				continue
			}
			key := strings.TrimSpace(trimmed[:eq])
			if isQuoted(key) {
				key = unquote(key)
			}
			val, inline := cutInlineComment(trimmed[eq+1:])
			section.Set(key, decodeScalar(val))
			p := ir.JoinPath(sectionPath, key)
			comments.Add(p, pending.Take())
			comments.Add(p, inline)
		}
	}
	return root, comments, nil
}
