package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

const (
	colorReset = "\033[0m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// TableFormatter writes aligned, human-readable columns.
type TableFormatter struct {
	writer      io.Writer
	precision   int
	EnableColor bool
}

// NewTableFormatter creates a table formatter.
func NewTableFormatter(w io.Writer, opts Options) *TableFormatter {
	precision := opts.Precision
	if precision < 0 {
		precision = DefaultOptions().Precision
	}
	return &TableFormatter{
		writer:      w,
		precision:   precision,
		EnableColor: opts.EnableColor,
	}
}

// colorize wraps text in ANSI codes when color is enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// num formats a value with the configured precision, "-" when absent.
func (f *TableFormatter) num(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', f.precision, 64)
}

// FormatResults writes one row per result.
func (f *TableFormatter) FormatResults(results []Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(f.writer, "No results.")
		return err
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Operation, r.Material,
			f.num(r.Depth), f.num(r.UnshieldedRate), f.num(r.ShieldingFactor), f.num(r.ShieldedRate),
		})
	}

	return f.render([]string{"OPERATION", "MATERIAL", "DEPTH (cm)", "UNSHIELDED", "FACTOR", "SHIELDED"}, rows)
}

// FormatMaterials writes one row per material.
func (f *TableFormatter) FormatMaterials(materials []MaterialRow) error {
	rows := make([][]string, 0, len(materials))
	for _, m := range materials {
		rows = append(rows, []string{
			m.Key, m.Name,
			strconv.FormatFloat(m.MassAttenuationCoefficient, 'g', -1, 64),
			strconv.FormatFloat(m.Density, 'g', -1, 64),
			f.num(&m.LinearAttenuationCoefficient), f.num(&m.HalfValueLayer), f.num(&m.TenthValueLayer),
		})
	}

	return f.render([]string{"KEY", "NAME", "μ/ρ (cm²/g)", "ρ (g/cm³)", "μ (1/cm)", "HVL (cm)", "TVL (cm)"}, rows)
}

// render aligns the cells, then colors the header and rule lines. Colors are
// applied after alignment so escape codes never count toward column widths.
func (f *TableFormatter) render(columns []string, rows [][]string) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	rules := make([]string, len(columns))
	for i, c := range columns {
		rules[i] = strings.Repeat("─", len([]rune(c)))
	}

	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	fmt.Fprintln(tw, strings.Join(rules, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	lines := strings.SplitAfter(buf.String(), "\n")
	for i, line := range lines {
		switch i {
		case 0:
			line = f.colorize(strings.TrimSuffix(line, "\n"), colorBold) + "\n"
		case 1:
			line = f.colorize(strings.TrimSuffix(line, "\n"), colorGray) + "\n"
		}
		if _, err := io.WriteString(f.writer, line); err != nil {
			return err
		}
	}

	return nil
}
