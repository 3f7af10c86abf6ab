package parse

import (
	"fmt"

	"github.com/modsmith/confdoc/format"
	"github.com/modsmith/confdoc/ir"
)

// Parse parses data as the given format. The returned comments map paths to
// the comment text preceding (or trailing) the addressed node. Errors wrap
// ErrParse; callers that can fall back to raw-text editing are expected to
// catch them rather than surface them.
func Parse(data []byte, f format.Format) (*ir.Node, ir.Comments, error) {
	switch f {
	case format.JSONFormat:
		return parseJSON(data)
	case format.TOMLFormat:
		return parseTOML(data)
	case format.YAMLFormat:
		return parseYAML(data)
	case format.PropertiesFormat:
		return parseProperties(data)
	case format.TextFormat:
		return nil, nil, fmt.Errorf("%w: text files have no structural form", ErrParse)
	default:
		return nil, nil, fmt.Errorf("%w: %v", format.ErrBadFormat, f)
	}
}
