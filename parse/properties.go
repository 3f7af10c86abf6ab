package parse

import (
	"strconv"
	"strings"

	"github.com/modsmith/confdoc/ir"
)

// parseProperties handles Java-style .properties/.cfg files: one scalar per
// line, '#' or '!' comments, separator is whichever of '='/':' occurs first.
// There is no nesting; every value goes through the shared scalar heuristic.
func parseProperties(data []byte) (*ir.Node, ir.Comments, error) {
	var (
		root     = ir.Object()
		comments = ir.Comments{}
		pending  commentBuf
	)
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			pending.Blank()
		case trimmed[0] == '#' || trimmed[0] == '!':
			pending.Line(trimmed[1:])
		default:
			sep := separatorIndex(trimmed)
			if sep < 0 {
				pending.Blank()
				continue
			}
			key := strings.TrimSpace(trimmed[:sep])
			root.Set(key, decodePropertiesScalar(trimmed[sep+1:]))
			comments.Add(key, pending.Take())
		}
	}
	return root, comments, nil
}

// decodePropertiesScalar is the TOML heuristic minus arrays: properties
// values stay scalar so they always have a one-line rendering on save.
func decodePropertiesScalar(v string) *ir.Node {
	v = strings.TrimSpace(v)
	switch v {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}
	if isQuoted(v) {
		return ir.FromString(unquote(v))
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return ir.FromNumber(f)
	}
	return ir.FromString(v)
}

// separatorIndex finds whichever of '=' or ':' occurs first.
func separatorIndex(s string) int {
	eq := strings.IndexByte(s, '=')
	col := strings.IndexByte(s, ':')
	switch {
	case eq < 0:
		return col
	case col < 0:
		return eq
	case eq < col:
		return eq
	default:
		return col
	}
}
