package parse

import (
	"testing"

	"github.com/modsmith/confdoc/ir"
)

func TestPropertiesBasics(t *testing.T) {
	tree, comments, err := parseProperties([]byte(`
# how many
max-players=20
! legacy marker
motd: welcome home
ratio = 0.5
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := tree.Get("max-players"); got == nil || *got.Int64 != 20 {
		t.Fatalf("max-players = %v", got)
	}
	if got := tree.Get("motd"); got == nil || got.String != "welcome home" {
		t.Fatalf("motd = %v", got)
	}
	if got := tree.Get("ratio"); got == nil || got.Float() != 0.5 {
		t.Fatalf("ratio = %v", got)
	}
	if comments["max-players"] != "how many" {
		t.Errorf("max-players comment: %q", comments["max-players"])
	}
	if comments["motd"] != "legacy marker" {
		t.Errorf("motd comment: %q", comments["motd"])
	}
}

func TestPropertiesSeparatorIndex(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"a=b", 1},
		{"a:b", 1},
		{"a=b:c", 1},
		{"a:b=c", 1},
		{"url=http://x", 3},
		{"nosep", -1},
	}
	for _, tt := range tests {
		if got := separatorIndex(tt.in); got != tt.want {
			t.Errorf("separatorIndex(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPropertiesScalarStaysScalar(t *testing.T) {
	tree, _, err := parseProperties([]byte("list=[1, 2, 3]"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := tree.Get("list")
	if got.Type != ir.StringType || got.String != "[1, 2, 3]" {
		t.Fatalf("bracketed value should stay a string, got %+v", got)
	}
}

func TestPropertiesQuotedBool(t *testing.T) {
	tree, _, err := parseProperties([]byte(`flag="true"`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := tree.Get("flag")
	if got.Type != ir.StringType || got.String != "true" {
		t.Fatalf("quoted bool should stay a string, got %+v", got)
	}
}
