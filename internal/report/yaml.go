package report

import (
	"io"

	"github.com/goccy/go-yaml"
)

// YAMLFormatter writes results as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// FormatResults writes the results as a YAML sequence.
func (f *YAMLFormatter) FormatResults(results []Result) error {
	return f.write(nonNil(results))
}

// FormatMaterials writes the rows as a YAML sequence.
func (f *YAMLFormatter) FormatMaterials(rows []MaterialRow) error {
	return f.write(nonNil(rows))
}

func (f *YAMLFormatter) write(v any) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}
