// Package render writes atom counts in the output formats supported by the
// chemformula command.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/emirpasic/gods/maps/treemap"
	"gopkg.in/yaml.v3"

	"github.com/martinemde/chemformula/formula"
)

// Format selects an output encoding.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
	FormatTOML
)

var formatNames = map[Format]string{
	FormatText: "text",
	FormatJSON: "json",
	FormatYAML: "yaml",
	FormatTOML: "toml",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat returns the Format named by s (case-insensitive).
func ParseFormat(s string) (Format, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for f, name := range formatNames {
		if name == want {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown output format %q (want text, json, yaml or toml)", s)
}

// Write encodes counts to w.
func Write(w io.Writer, f Format, counts formula.Counts) error {
	plain := map[string]int(counts)
	if plain == nil {
		plain = map[string]int{}
	}

	switch f {
	case FormatText:
		return writeText(w, "", counts)
	case FormatJSON:
		enc := json.NewEncoder(w)
		return enc.Encode(plain)
	case FormatYAML:
		return writeYAML(w, plain)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(plain)
	default:
		return fmt.Errorf("unsupported output format %s", f)
	}
}

// writeText writes one "symbol<TAB>count" line per atom in ascending symbol
// order.
func writeText(w io.Writer, indent string, counts formula.Counts) error {
	sorted := treemap.NewWithStringComparator()
	for sym, n := range counts {
		sorted.Put(sym, n)
	}

	it := sorted.Iterator()
	for it.Next() {
		if _, err := fmt.Fprintf(w, "%s%s\t%d\n", indent, it.Key(), it.Value()); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
