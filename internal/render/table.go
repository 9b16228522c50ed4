package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spacesedan/reviewlens/internal/dataset"
)

const maxCellWidth = 48

var headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// Table renders up to limit rows of d as padded text columns. A limit of 0
// renders every row.
func Table(d *dataset.Dataset, limit int) string {
	records := d.Records()
	shown := len(records)
	if limit > 0 && limit < shown {
		shown = limit
	}

	widths := make([]int, len(d.Columns))
	for i, c := range d.Columns {
		widths[i] = min(lipgloss.Width(c), maxCellWidth)
	}
	for _, rec := range records[:shown] {
		for i, v := range rec {
			widths[i] = min(max(widths[i], lipgloss.Width(v)), maxCellWidth)
		}
	}

	var b strings.Builder
	header := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		header[i] = headerStyle.Render(pad(truncate(c, widths[i]), widths[i]))
	}
	b.WriteString(strings.Join(header, "  "))
	b.WriteString("\n")

	for _, rec := range records[:shown] {
		cells := make([]string, len(rec))
		for i, v := range rec {
			cells[i] = pad(truncate(v, widths[i]), widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteString("\n")
	}

	if shown < len(records) {
		fmt.Fprintf(&b, "... %d more rows\n", len(records)-shown)
	}

	return b.String()
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
