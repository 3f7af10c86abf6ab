package encode

import (
	"strconv"

	"github.com/modsmith/confdoc/ir"
)

func formatNumber(node *ir.Node) string {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	v := strconv.FormatFloat(node.Float(), 'f', -1, 64)
	// Zero floats encode as "0.0" not "0".
	if v == "0" || v == "-0" {
		v = "0.0"
	}
	return v
}
