package report

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes results as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a JSON formatter.
// If indent is true, the output is pretty-printed.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{writer: w, indent: indent}
}

// FormatResults writes the results as a JSON array.
func (f *JSONFormatter) FormatResults(results []Result) error {
	return f.write(nonNil(results))
}

// FormatMaterials writes the rows as a JSON array.
func (f *JSONFormatter) FormatMaterials(rows []MaterialRow) error {
	return f.write(nonNil(rows))
}

func (f *JSONFormatter) write(v any) error {
	encoder := json.NewEncoder(f.writer)
	if f.indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}

// nonNil keeps empty output as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
