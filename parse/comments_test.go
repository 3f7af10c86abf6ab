package parse

import "testing"

func TestCommentBufAccumulates(t *testing.T) {
	var b commentBuf
	b.Line("first")
	b.Line("  second  ")
	if got := b.Take(); got != "first second" {
		t.Fatalf("got %q", got)
	}
	if got := b.Take(); got != "" {
		t.Fatalf("take after take: %q", got)
	}
}

func TestCommentBufBlankResets(t *testing.T) {
	var b commentBuf
	b.Line("orphan")
	b.Blank()
	if got := b.Take(); got != "" {
		t.Fatalf("blank should discard, got %q", got)
	}
	b.Line("kept")
	if got := b.Take(); got != "kept" {
		t.Fatalf("got %q", got)
	}
}

func TestCommentBufEmptyLines(t *testing.T) {
	var b commentBuf
	b.Line("")
	b.Line("x")
	if got := b.Take(); got != " x" {
		t.Fatalf("got %q", got)
	}
}
