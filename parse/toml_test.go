package parse

import (
	"testing"

	"github.com/modsmith/confdoc/ir"
)

func mustTOML(t *testing.T, in string) (*ir.Node, ir.Comments) {
	t.Helper()
	tree, comments, err := parseTOML([]byte(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return tree, comments
}

func TestTOMLCommentAttachment(t *testing.T) {
	_, comments := mustTOML(t, "# hello\nkey = 1")
	if comments["key"] != "hello" {
		t.Fatalf("comments[key] = %q", comments["key"])
	}
}

func TestTOMLSections(t *testing.T) {
	tree, comments := mustTOML(t, `
top = "a"

# section comment
[server]
# max players allowed
max-players = 20

[server.limits]
timeout = 1.5
`)
	if got := tree.Get("top"); got == nil || got.String != "a" {
		t.Fatalf("top = %v", got)
	}
	mp := tree.Get("server").Get("max-players")
	if mp == nil || !mp.IsInt() || *mp.Int64 != 20 {
		t.Fatalf("max-players = %v", mp)
	}
	to := tree.Get("server").Get("limits").Get("timeout")
	if to == nil || to.IsInt() || to.Float() != 1.5 {
		t.Fatalf("timeout = %v", to)
	}
	if comments["server"] != "section comment" {
		t.Errorf("section comment: %q", comments["server"])
	}
	if comments["server.max-players"] != "max players allowed" {
		t.Errorf("key comment: %q", comments["server.max-players"])
	}
}

func TestTOMLInlineComment(t *testing.T) {
	tree, comments := mustTOML(t, "[a]\nport = 8080 # listen here\n")
	if got := tree.Get("a").Get("port"); got == nil || *got.Int64 != 8080 {
		t.Fatalf("port = %v", got)
	}
	if comments["a.port"] != "listen here" {
		t.Errorf("inline comment: %q", comments["a.port"])
	}
}

func TestTOMLPendingPlusInlineJoin(t *testing.T) {
	_, comments := mustTOML(t, "# above\nkey = 1 # beside\n")
	if comments["key"] != "above beside" {
		t.Fatalf("joined comment: %q", comments["key"])
	}
}

func TestTOMLBlankLineBreaksComment(t *testing.T) {
	_, comments := mustTOML(t, "# stray\n\nkey = 1\n")
	if _, ok := comments["key"]; ok {
		t.Fatalf("blank line should discard pending comment, got %q", comments["key"])
	}
}

func TestTOMLHashInsideQuotesIsData(t *testing.T) {
	tree, comments := mustTOML(t, `motd = "hello # world"`)
	if got := tree.Get("motd"); got.String != "hello # world" {
		t.Fatalf("motd = %q", got.String)
	}
	if _, ok := comments["motd"]; ok {
		t.Fatalf("quoted hash captured as comment")
	}
}

func TestTOMLQuotedKeysAndSections(t *testing.T) {
	tree, comments := mustTOML(t, `
"a=b" = 1

# odd section
["sec=tion"]
# odd key
"has #" = 2
`)
	if got := tree.Get("a=b"); got == nil || *got.Int64 != 1 {
		t.Fatalf("a=b = %v", got)
	}
	sec := tree.Get("sec=tion")
	if sec == nil || sec.Type != ir.ObjectType {
		t.Fatalf("sec=tion = %v", sec)
	}
	if got := sec.Get("has #"); got == nil || *got.Int64 != 2 {
		t.Fatalf("has # = %v", got)
	}
	// Comment paths use the unquoted key text.
	if comments["sec=tion"] != "odd section" {
		t.Errorf("section comment: %q", comments["sec=tion"])
	}
	if comments["sec=tion.has #"] != "odd key" {
		t.Errorf("key comment: %q", comments["sec=tion.has #"])
	}
}

func TestTOMLValueHeuristics(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{"k = true", ir.FromBool(true)},
		{"k = false", ir.FromBool(false)},
		{`k = "true"`, ir.FromString("true")},
		{"k = 'single'", ir.FromString("single")},
		{"k = 3", ir.FromInt(3)},
		{"k = 3.25", ir.FromFloat(3.25)},
		{"k = bare words", ir.FromString("bare words")},
		{"k = []", ir.Array()},
		{"k = [1, 2, 3]", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)})},
		{`k = ["a", "b,c"]`, ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("b,c")})},
		{"k = [[1], [2]]", ir.FromSlice([]*ir.Node{
			ir.FromSlice([]*ir.Node{ir.FromInt(1)}),
			ir.FromSlice([]*ir.Node{ir.FromInt(2)}),
		})},
	}
	for _, tt := range tests {
		tree, _ := mustTOML(t, tt.in)
		got := tree.Get("k")
		if !ir.Equal(got, tt.want) {
			t.Errorf("%q: got %+v want %+v", tt.in, got, tt.want)
		}
	}
}
