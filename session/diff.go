package session

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/modsmith/confdoc/encode"
	"github.com/modsmith/confdoc/format"
)

// DiffPretty renders a character diff of last-saved text against current
// text, for showing the user what saving would write.
func (s *Session) DiffPretty() string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(s.lastSavedText, s.currentText, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}

// ChangeSummary returns a JSON merge patch describing the value-level
// difference between the last-saved tree and the current tree. It needs
// both states to parse; raw mode has no structural summary.
func (s *Session) ChangeSummary() ([]byte, error) {
	if s.raw {
		return nil, fmt.Errorf("%w: %s", ErrRawMode, s.path)
	}
	savedTree, _, err := s.cache.parse(s.lastSavedText, s.format)
	if err != nil || savedTree == nil {
		return nil, fmt.Errorf("%w: saved text does not parse", ErrRawMode)
	}
	a := bytes.NewBuffer(nil)
	if err := encode.Encode(savedTree, a, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return nil, err
	}
	b := bytes.NewBuffer(nil)
	if err := encode.Encode(s.tree, b, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(a.Bytes(), b.Bytes())
}
