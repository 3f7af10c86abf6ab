package parse

import "strings"

// The line parsers for TOML, YAML and Properties all carry a pending-comment
// buffer: comment lines accumulate until a key or section consumes them, and
// a blank line discards them. commentBuf makes that an explicit two-state
// machine so attachment behavior is testable apart from any grammar.

type commentState int

const (
	stateDefault commentState = iota
	stateComment
)

type commentBuf struct {
	state commentState
	lines []string
}

// Line feeds one comment line (marker already stripped) into the buffer.
func (b *commentBuf) Line(text string) {
	b.state = stateComment
	b.lines = append(b.lines, strings.TrimSpace(text))
}

// Blank resets the buffer: a blank line breaks the association between the
// accumulated comment and whatever key follows.
func (b *commentBuf) Blank() {
	b.state = stateDefault
	b.lines = b.lines[:0]
}

// Take returns the accumulated lines space-joined and resets the buffer.
func (b *commentBuf) Take() string {
	if b.state == stateDefault {
		return ""
	}
	res := strings.Join(b.lines, " ")
	b.Blank()
	return res
}
