// Package format names the config file formats the engine understands and
// maps filenames onto them.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	JSONFormat Format = iota
	TOMLFormat
	YAMLFormat
	PropertiesFormat
	// TextFormat means no structural parse is attempted; only raw-text
	// editing is offered.
	TextFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":          JSONFormat,
		"json":       JSONFormat,
		"t":          TOMLFormat,
		"toml":       TOMLFormat,
		"y":          YAMLFormat,
		"yaml":       YAMLFormat,
		"p":          PropertiesFormat,
		"properties": PropertiesFormat,
		"text":       TextFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// Detect maps a filename to a format by extension. Anything unrecognized is
// TextFormat.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json", ".json5":
		return JSONFormat
	case ".toml":
		return TOMLFormat
	case ".yml", ".yaml":
		return YAMLFormat
	case ".properties", ".cfg":
		return PropertiesFormat
	default:
		return TextFormat
	}
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case TOMLFormat:
		return []byte("toml"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case PropertiesFormat:
		return []byte("properties"), nil
	case TextFormat:
		return []byte("text"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsStructured() bool { return f != TextFormat }

// Suffix returns the canonical file extension for this format (with dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case TOMLFormat:
		return ".toml"
	case YAMLFormat:
		return ".yaml"
	case PropertiesFormat:
		return ".properties"
	default:
		return ""
	}
}

// AllFormats returns the structured formats in preference order.
func AllFormats() []Format {
	return []Format{JSONFormat, TOMLFormat, YAMLFormat, PropertiesFormat}
}
