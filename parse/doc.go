// Package parse turns raw configuration text into an ir.Node tree plus the
// comments found along the way, keyed by path. Each format has its own
// hand-written line parser; none of them share state and all of them are
// pure functions of their input.
package parse
