// Package encode serializes an ir.Node tree back to format-correct text.
// Each serializer mirrors its parser's grammar; none of them re-emit
// comments.
package encode
