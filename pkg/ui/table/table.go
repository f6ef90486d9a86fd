// Package table renders TableData as a lipgloss terminal table or as a
// Markdown table.
package table

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TableData is the interface that data sources implement to be rendered
// as a table.
type TableData interface {
	// Header returns the column header labels.
	Header() []string

	// Len returns the number of rows.
	Len() int

	// Row returns the cell values for row i. Return nil to skip a row.
	// Wrap a value in Bold{} to emphasise it.
	Row(i int) []any
}

// Bold wraps a cell value so that it is rendered emphasised.
type Bold struct{ Value any }

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	emptyCell = "-"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	boldStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	cellStyle   = lipgloss.NewStyle()
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Write renders the table to w. When w is a terminal the table is
// constrained to the terminal width.
func Write(w io.Writer, data TableData) error {
	width := 0
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = cols
		}
	}
	_, err := fmt.Fprintln(w, Render(data, width))
	return err
}

// Render renders the table data with rounded borders. A positive width
// wraps columns when the natural render is wider.
func Render(data TableData, width int) string {
	t := lgtable.New().
		Headers(data.Header()...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, cells := range rows(data, FormatCell) {
		t.Row(cells...)
	}

	result := t.Render()
	if width > 0 && widest(result) > width {
		t.Width(width)
		result = t.Render()
	}
	return result
}

// RenderMarkdown renders the table data as a Markdown table. Bold values
// are wrapped in ** markers.
func RenderMarkdown(data TableData) string {
	header := data.Header()
	if len(header) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("| " + strings.Join(header, " | ") + " |\n|")
	buf.WriteString(strings.Repeat("---|", len(header)))
	for _, cells := range rows(data, formatMarkdownCell) {
		for len(cells) < len(header) {
			cells = append(cells, emptyCell)
		}
		buf.WriteString("\n| " + strings.Join(cells[:len(header)], " | ") + " |")
	}
	return buf.String()
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

// Truncate shortens s to max runes, collapsing newlines and appending "…"
// if truncated. A max of zero or less returns an empty string.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// FormatCell converts a value to a display string for a terminal cell.
// Empty and zero values render as "-".
func FormatCell(v any) string {
	if b, ok := v.(Bold); ok {
		if s := plain(b.Value); s != emptyCell {
			return boldStyle.Render(s)
		}
		return emptyCell
	}
	return plain(v)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func formatMarkdownCell(v any) string {
	if b, ok := v.(Bold); ok {
		if s := plain(b.Value); s != emptyCell {
			return "**" + s + "**"
		}
		return emptyCell
	}
	return strings.ReplaceAll(plain(v), "|", "\\|")
}

func plain(v any) string {
	switch val := v.(type) {
	case nil:
		return emptyCell
	case Bold:
		return plain(val.Value)
	case string:
		if val == "" {
			return emptyCell
		}
		return val
	case time.Time:
		if val.IsZero() {
			return emptyCell
		}
		return val.Format("2006-01-02 15:04")
	case int:
		if val == 0 {
			return emptyCell
		}
		return fmt.Sprint(val)
	case uint:
		if val == 0 {
			return emptyCell
		}
		return fmt.Sprint(val)
	case float64:
		if val == 0 {
			return emptyCell
		}
		return fmt.Sprint(val)
	default:
		if s := fmt.Sprint(val); s != "" {
			return s
		}
		return emptyCell
	}
}

func rows(data TableData, format func(any) string) [][]string {
	result := make([][]string, 0, data.Len())
	for i := range data.Len() {
		row := data.Row(i)
		if row == nil {
			continue
		}
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = format(v)
		}
		result = append(result, cells)
	}
	return result
}

func widest(s string) int {
	n := 0
	for _, line := range strings.Split(s, "\n") {
		if w := lipgloss.Width(line); w > n {
			n = w
		}
	}
	return n
}
