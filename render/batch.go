package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/martinemde/chemformula/formula"
)

// Result is the outcome of parsing one formula in a batch.
type Result struct {
	Formula string
	Counts  formula.Counts
	Err     error
}

// record is the serialized form of a Result.
type record struct {
	Formula string         `json:"formula" yaml:"formula" toml:"formula"`
	Counts  map[string]int `json:"counts,omitempty" yaml:"counts,omitempty" toml:"counts,omitempty"`
	Error   string         `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
}

func toRecords(results []Result) []record {
	records := make([]record, 0, len(results))
	for _, r := range results {
		rec := record{Formula: r.Formula}
		if r.Err != nil {
			rec.Error = r.Err.Error()
		} else {
			rec.Counts = r.Counts
		}
		records = append(records, rec)
	}
	return records
}

// WriteBatch encodes a list of results to w.
func WriteBatch(w io.Writer, f Format, results []Result) error {
	switch f {
	case FormatText:
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "%s\n", r.Formula); err != nil {
				return err
			}
			if r.Err != nil {
				if _, err := fmt.Fprintf(w, "  error: %v\n", r.Err); err != nil {
					return err
				}
				continue
			}
			if err := writeText(w, "  ", r.Counts); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toRecords(results))
	case FormatYAML:
		return writeYAML(w, toRecords(results))
	case FormatTOML:
		// TOML has no top-level array.
		doc := struct {
			Results []record `toml:"results"`
		}{Results: toRecords(results)}
		return toml.NewEncoder(w).Encode(doc)
	default:
		return fmt.Errorf("unsupported output format %s", f)
	}
}
