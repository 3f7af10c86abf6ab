// Package session composes the detector, parsers, editor and serializers
// around an external file store: it owns the load → edit → serialize → save
// round trip for exactly one open config file, including dirty tracking and
// the raw-text fallback when a file does not parse.
package session

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/modsmith/confdoc/edit"
	"github.com/modsmith/confdoc/encode"
	"github.com/modsmith/confdoc/format"
	"github.com/modsmith/confdoc/ir"
)

// ErrRawMode is returned by structural operations when the document did not
// parse; raw-text editing remains available.
var ErrRawMode = errors.New("structural editing unavailable")

// Session is one open config document. It is not safe for concurrent use;
// there is exactly one active document per editing session, and switching
// files means discarding the session without saving.
type Session struct {
	store  Store
	path   string
	format format.Format

	tree     *ir.Node
	comments ir.Comments
	raw      bool

	currentText   string
	lastSavedText string

	cache *parseCache
	log   *logrus.Entry
}

type Option func(*Session)

func WithLogger(l *logrus.Logger) Option {
	return func(s *Session) { s.log = l.WithField("path", s.path) }
}

// WithFormat overrides extension-based detection.
func WithFormat(f format.Format) Option {
	return func(s *Session) { s.format = f }
}

// Open reads path through store and parses it according to its detected
// format. Read errors are returned as-is; parse errors are not errors here,
// they put the session in raw-text mode.
func Open(ctx context.Context, store Store, path string, opts ...Option) (*Session, error) {
	text, err := store.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	s := &Session{
		store:         store,
		path:          path,
		format:        format.Detect(path),
		currentText:   text,
		lastSavedText: text,
		cache:         newParseCache(),
	}
	s.log = logrus.StandardLogger().WithField("path", path)
	for _, opt := range opts {
		opt(s)
	}
	s.reparse()
	return s, nil
}

func (s *Session) reparse() {
	if !s.format.IsStructured() {
		s.raw = true
		s.tree, s.comments = nil, nil
		return
	}
	tree, comments, err := s.cache.parse(s.currentText, s.format)
	if err != nil || tree == nil {
		s.raw = true
		s.tree, s.comments = nil, nil
		s.log.WithField("format", s.format).WithError(err).
			Warn("parse failed, falling back to raw-text editing")
		return
	}
	s.raw = false
	s.tree = tree
	s.comments = comments
}

func (s *Session) Path() string          { return s.path }
func (s *Session) Format() format.Format { return s.format }

// Raw reports whether structural editing is unavailable for this file.
func (s *Session) Raw() bool { return s.raw }

// Tree returns the current value tree, nil in raw mode.
func (s *Session) Tree() *ir.Node { return s.tree }

// Comments returns the parse-time comment map, nil in raw mode. Edits that
// remove nodes drop or re-key the comments addressed beneath them.
func (s *Session) Comments() ir.Comments { return s.comments }

// Text returns the current serialized document.
func (s *Session) Text() string { return s.currentText }

// Dirty compares current against last-saved text by string identity, not
// tree equality: reformatting alone counts as a change worth saving.
func (s *Session) Dirty() bool { return s.currentText != s.lastSavedText }

// Apply runs one editor operation and immediately re-serializes the new
// tree into the current text. On any failure the session is unchanged.
func (s *Session) Apply(path ir.Path, op edit.Op) error {
	if s.raw {
		return fmt.Errorf("%w: %s", ErrRawMode, s.path)
	}
	tree, err := edit.Apply(s.tree, path, op)
	if err != nil {
		return err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(tree, buf, encode.EncodeFormat(s.format)); err != nil {
		return err
	}
	s.tree = tree
	s.currentText = buf.String()
	switch x := op.(type) {
	case edit.RemoveItem:
		s.comments = spliceComments(s.comments, path.String(), x.Index)
	case edit.Delete:
		if last := path[len(path)-1]; last.IsIndex {
			s.comments = spliceComments(s.comments, path[:len(path)-1].String(), last.Index)
		} else {
			s.comments = pruneComments(s.comments, path.String())
		}
	}
	return nil
}

// SetText replaces the document text wholesale (raw-text editing). The text
// is re-parsed when the format is structured; a failed parse flips the
// session into raw mode without losing the text.
func (s *Session) SetText(text string) {
	s.currentText = text
	s.reparse()
}

// View builds the render model for the current tree with comments attached.
func (s *Session) View() (*edit.NodeView, error) {
	if s.raw {
		return nil, fmt.Errorf("%w: %s", ErrRawMode, s.path)
	}
	return edit.View(s.tree, edit.ViewOptions{Comments: s.comments}), nil
}

// Filter returns the tree filtered by a case-insensitive key substring.
func (s *Session) Filter(query string) (*ir.Node, error) {
	if s.raw {
		return nil, fmt.Errorf("%w: %s", ErrRawMode, s.path)
	}
	return edit.Filter(s.tree, query), nil
}

// Save writes the current text through the store. It is a no-op when not
// dirty. On write failure the dirty flag stays set and nothing else
// changes; there is no retry here, the caller re-triggers.
func (s *Session) Save(ctx context.Context) error {
	if !s.Dirty() {
		return nil
	}
	if err := s.store.WriteFile(ctx, s.path, s.currentText); err != nil {
		s.log.WithError(err).Warn("save failed")
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	s.lastSavedText = s.currentText
	s.log.Debug("saved")
	return nil
}

// Reset discards the in-memory tree and unsaved text, restoring the last
// successfully saved state and re-parsing it.
func (s *Session) Reset() {
	s.currentText = s.lastSavedText
	s.reparse()
}
