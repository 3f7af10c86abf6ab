package ir

import "strings"

// Comments maps a Path string to the comment text captured for that node at
// parse time. Serializers do not consume it; it exists so callers can show
// the human-written documentation next to the value being edited.
type Comments map[string]string

// Add records text for path. Multiple consecutive comment lines collapse
// into one space-joined string before reaching here; Add joins again in case
// a format attaches twice to one path (pending plus trailing comment).
func (c Comments) Add(path, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if prev, ok := c[path]; ok && prev != "" {
		c[path] = prev + " " + text
		return
	}
	c[path] = text
}
