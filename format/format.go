// Package format names the interchange formats the exporters understand.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	NewickFormat Format = iota
	JSONFormat
	YAMLFormat
	DOTFormat
	MermaidFormat
	TextFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"n":       NewickFormat,
		"nwk":     NewickFormat,
		"newick":  NewickFormat,
		"j":       JSONFormat,
		"json":    JSONFormat,
		"y":       YAMLFormat,
		"yaml":    YAMLFormat,
		"d":       DOTFormat,
		"dot":     DOTFormat,
		"m":       MermaidFormat,
		"mermaid": MermaidFormat,
		"t":       TextFormat,
		"text":    TextFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
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
	case NewickFormat:
		return []byte("newick"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case DOTFormat:
		return []byte("dot"), nil
	case MermaidFormat:
		return []byte("mermaid"), nil
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

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case NewickFormat:
		return ".nwk"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case DOTFormat:
		return ".dot"
	case MermaidFormat:
		return ".mmd"
	case TextFormat:
		return ".txt"
	default:
		return ""
	}
}

// FromSuffix guesses the format from a file name, defaulting to Newick.
func FromSuffix(name string) Format {
	for _, f := range AllFormats() {
		s := f.Suffix()
		if len(name) >= len(s) && name[len(name)-len(s):] == s {
			return f
		}
	}
	return NewickFormat
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{NewickFormat, JSONFormat, YAMLFormat, DOTFormat, MermaidFormat, TextFormat}
}
