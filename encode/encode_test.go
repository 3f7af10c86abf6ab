package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/modsmith/confdoc/format"
	"github.com/modsmith/confdoc/ir"
)

func obj(pairs ...any) *ir.Node {
	res := ir.Object()
	for i := 0; i < len(pairs); i += 2 {
		res.Set(pairs[i].(string), pairs[i+1].(*ir.Node))
	}
	return res
}

func enc(t *testing.T, node *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Encode(node, &buf, opts...); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.String()
}

func TestEncodeJSON(t *testing.T) {
	got := enc(t, obj(
		"z", ir.FromInt(1),
		"a", obj("nested", ir.FromBool(true)),
		"list", ir.FromSlice([]*ir.Node{ir.FromString("x"), ir.Null()}),
	))
	want := `{
  "z": 1,
  "a": {
    "nested": true
  },
  "list": [
    "x",
    null
  ]
}
`
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeTOMLShape(t *testing.T) {
	got := enc(t, obj(
		"server", obj("max-players", ir.FromInt(32)),
	), EncodeFormat(format.TOMLFormat))
	want := "\n[server]\nmax-players = 32\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodeTOMLScalarsBeforeSections(t *testing.T) {
	got := enc(t, obj(
		"top", ir.FromString("a"),
		"server", obj("port", ir.FromInt(8080), "limits", obj("timeout", ir.FromFloat(1.5))),
		"after", ir.FromBool(true),
		"tags", ir.FromSlice([]*ir.Node{ir.FromString("x"), ir.FromInt(2)}),
	), EncodeFormat(format.TOMLFormat))
	want := `top = "a"
after = true
tags = ["x", 2]

[server]
port = 8080

[server.limits]
timeout = 1.5
`
	if got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestEncodeTOMLErrors(t *testing.T) {
	if err := Encode(ir.FromInt(1), &bytes.Buffer{}, EncodeFormat(format.TOMLFormat)); !errors.Is(err, ErrEncode) {
		t.Errorf("non-map root: %v", err)
	}
	if err := Encode(obj("k", ir.Null()), &bytes.Buffer{}, EncodeFormat(format.TOMLFormat)); !errors.Is(err, ErrEncode) {
		t.Errorf("null value: %v", err)
	}
}

func TestEncodeYAML(t *testing.T) {
	got := enc(t, obj(
		"server", obj(
			"host", ir.FromString("localhost"),
			"deep", obj("flag", ir.FromBool(false)),
		),
		"ratio", ir.FromFloat(0.5),
		"list", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("two")}),
	), EncodeFormat(format.YAMLFormat))
	want := `server:
  host: localhost
  deep:
    flag: false
ratio: 0.5
list: [1, two]
`
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeYAMLIndentOption(t *testing.T) {
	got := enc(t, obj("a", obj("b", ir.FromInt(1))),
		EncodeFormat(format.YAMLFormat), Indent(4))
	want := "a:\n    b: 1\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestYAMLNeedsQuote(t *testing.T) {
	quoted := []string{"", "null", "~", "yes", "off", "true", "42", "-1.5",
		"a:b", "a#b", "a,b", "[x]", "line\nbreak", `"lead`, "'lead", " pad ", "1e3"}
	for _, v := range quoted {
		if !yamlNeedsQuote(v) {
			t.Errorf("%q should need quoting", v)
		}
	}
	plain := []string{"localhost", "hello world", "v1.2.3-beta", "some/path"}
	for _, v := range plain {
		if yamlNeedsQuote(v) {
			t.Errorf("%q should not need quoting", v)
		}
	}
}

func TestEncodeProperties(t *testing.T) {
	got := enc(t, obj(
		"motd", ir.FromString("A Minecraft Server"),
		"pvp", ir.FromBool(true),
		"max-players", ir.FromInt(20),
		"looks-bool", ir.FromString("true"),
	), EncodeFormat(format.PropertiesFormat))
	want := "motd=A Minecraft Server\npvp=true\nmax-players=20\nlooks-bool=\"true\"\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPropertiesNeedsQuote(t *testing.T) {
	quoted := []string{"true", "false", "42", "-1.5", `"lead`, "'lead",
		" padded ", "trail ", " lead", "line\nbreak"}
	for _, v := range quoted {
		if !propertiesNeedsQuote(v) {
			t.Errorf("%q should need quoting", v)
		}
	}
	plain := []string{"", "hello world", "A Minecraft Server", "v1.2.3"}
	for _, v := range plain {
		if propertiesNeedsQuote(v) {
			t.Errorf("%q should not need quoting", v)
		}
	}
}

func TestEncodePropertiesPaddedValue(t *testing.T) {
	got := enc(t, obj("motd", ir.FromString(" padded ")),
		EncodeFormat(format.PropertiesFormat))
	if got != "motd=\" padded \"\n" {
		t.Fatalf("got %q", got)
	}
}

func TestEncodeTOMLQuotedKeys(t *testing.T) {
	got := enc(t, obj(
		"a=b", ir.FromInt(1),
		"has #", ir.FromInt(2),
		"plain", ir.FromInt(3),
		"sec=tion", obj("k", ir.FromInt(4)),
	), EncodeFormat(format.TOMLFormat))
	want := "\"a=b\" = 1\n\"has #\" = 2\nplain = 3\n\n[\"sec=tion\"]\nk = 4\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodeYAMLQuotedKeys(t *testing.T) {
	got := enc(t, obj(
		"a:b", ir.FromInt(1),
		"x#y", ir.FromInt(2),
		"plain", ir.FromInt(3),
		"nest:ed", obj("k", ir.FromInt(4)),
	), EncodeFormat(format.YAMLFormat))
	want := "\"a:b\": 1\n\"x#y\": 2\nplain: 3\n\"nest:ed\":\n  k: 4\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncodePropertiesRejectsNesting(t *testing.T) {
	if err := Encode(obj("a", obj("b", ir.FromInt(1))), &bytes.Buffer{},
		EncodeFormat(format.PropertiesFormat)); !errors.Is(err, ErrEncode) {
		t.Errorf("nested map: %v", err)
	}
	if err := Encode(obj("a", ir.FromSlice(nil)), &bytes.Buffer{},
		EncodeFormat(format.PropertiesFormat)); !errors.Is(err, ErrEncode) {
		t.Errorf("array value: %v", err)
	}
}

func TestEncodeTextErrors(t *testing.T) {
	if err := Encode(obj(), &bytes.Buffer{}, EncodeFormat(format.TextFormat)); !errors.Is(err, ErrEncode) {
		t.Errorf("text: %v", err)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		node *ir.Node
		want string
	}{
		{ir.FromInt(20), "20"},
		{ir.FromInt(-3), "-3"},
		{ir.FromFloat(1.5), "1.5"},
		{ir.FromFloat(0.25), "0.25"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.node); got != tt.want {
			t.Errorf("formatNumber = %q, want %q", got, tt.want)
		}
	}
}

func TestMustString(t *testing.T) {
	got := MustString(obj("a", ir.FromInt(1)))
	if !strings.Contains(got, `"a": 1`) {
		t.Fatalf("MustString = %q", got)
	}
}
