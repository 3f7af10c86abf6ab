package parse

import "testing"

func TestSplitTop(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", []string{""}},
		{"1, 2, 3", []string{"1", " 2", " 3"}},
		{`"a,b", c`, []string{`"a,b"`, " c"}},
		{"[1, 2], 3", []string{"[1, 2]", " 3"}},
		{"'x,y'", []string{"'x,y'"}},
	}
	for _, tt := range tests {
		got := splitTop(tt.in, ',')
		if len(got) != len(tt.want) {
			t.Errorf("splitTop(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitTop(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestIndexUnescaped(t *testing.T) {
	tests := []struct {
		in   string
		sep  byte
		want int
	}{
		{"a=b", '=', 1},
		{`"a=b"=c`, '=', 5},
		{"'a=b'", '=', -1},
		{"key: val", ':', 3},
		{`"no: here"`, ':', -1},
	}
	for _, tt := range tests {
		if got := indexUnescaped(tt.in, tt.sep); got != tt.want {
			t.Errorf("indexUnescaped(%q, %q) = %d, want %d", tt.in, tt.sep, got, tt.want)
		}
	}
}

func TestCutInlineComment(t *testing.T) {
	tests := []struct {
		in          string
		wantValue   string
		wantComment string
	}{
		{"8080 # listen", "8080 ", "listen"},
		{`"a # b"`, `"a # b"`, ""},
		{"plain", "plain", ""},
		{"x #", "x ", ""},
	}
	for _, tt := range tests {
		value, comment := cutInlineComment(tt.in)
		if value != tt.wantValue || comment != tt.wantComment {
			t.Errorf("cutInlineComment(%q) = (%q, %q), want (%q, %q)",
				tt.in, value, comment, tt.wantValue, tt.wantComment)
		}
	}
}
