// Package render draws datasets and their aggregates for the terminal.
package render

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spacesedan/reviewlens/internal/dataset"
	"github.com/spacesedan/reviewlens/internal/sentiment"
)

const barRune = "█"

// Bar is one row of a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
	Text  string
	Color lipgloss.Color
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle()
)

// LabelColors are the fixed colours of the distribution chart.
var LabelColors = map[sentiment.Label]lipgloss.Color{
	sentiment.Positive: lipgloss.Color("#1A9850"),
	sentiment.Neutral:  lipgloss.Color("#FEE08B"),
	sentiment.Negative: lipgloss.Color("#D73027"),
}

// BarChart renders bars scaled so the largest absolute value fills width
// cells. Labels are right-padded to a common width.
func BarChart(title string, bars []Bar, width int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if len(bars) == 0 {
		b.WriteString("  (no data)\n")
		return b.String()
	}

	labelWidth, maxAbs := 0, 0.0
	for _, bar := range bars {
		labelWidth = max(labelWidth, lipgloss.Width(bar.Label))
		maxAbs = math.Max(maxAbs, math.Abs(bar.Value))
	}

	for _, bar := range bars {
		n := 0
		if maxAbs > 0 {
			n = int(math.Round(math.Abs(bar.Value) / maxAbs * float64(width)))
		}
		if n == 0 && bar.Value != 0 {
			n = 1
		}

		label := labelStyle.Width(labelWidth).Render(bar.Label)
		fill := lipgloss.NewStyle().Foreground(bar.Color).Render(strings.Repeat(barRune, n))
		fmt.Fprintf(&b, "  %s │%s %s\n", label, fill, bar.Text)
	}

	return b.String()
}

// AverageChart draws the per-product average sentiment, coloured on a
// red-yellow-green scale.
func AverageChart(averages []dataset.ProductAverage, width int) string {
	bars := make([]Bar, 0, len(averages))
	for _, a := range averages {
		bars = append(bars, Bar{
			Label: a.Product,
			Value: a.Average,
			Text:  fmt.Sprintf("%+.3f", a.Average),
			Color: ScoreColor(a.Average),
		})
	}
	return BarChart("Average Sentiment per Product", bars, width)
}

// DistributionChart draws label counts, most frequent first.
func DistributionChart(counts map[sentiment.Label]int, width int) string {
	labels := make([]sentiment.Label, 0, len(counts))
	for _, l := range sentiment.Labels {
		if _, ok := counts[l]; ok {
			labels = append(labels, l)
		}
	}
	sort.SliceStable(labels, func(i, j int) bool {
		return counts[labels[i]] > counts[labels[j]]
	})

	bars := make([]Bar, 0, len(labels))
	for _, l := range labels {
		bars = append(bars, Bar{
			Label: l.String(),
			Value: float64(counts[l]),
			Text:  fmt.Sprintf("%d", counts[l]),
			Color: LabelColors[l],
		})
	}
	return BarChart("Sentiment Category Distribution", bars, width)
}

var (
	scaleRed    = [3]float64{0xD7, 0x30, 0x27}
	scaleYellow = [3]float64{0xFF, 0xFF, 0xBF}
	scaleGreen  = [3]float64{0x1A, 0x98, 0x50}
)

// ScoreColor interpolates a polarity score in [-1, 1] onto a
// red-yellow-green scale.
func ScoreColor(score float64) lipgloss.Color {
	score = math.Max(-1, math.Min(1, score))

	from, to, t := scaleYellow, scaleGreen, score
	if score < 0 {
		from, to, t = scaleYellow, scaleRed, -score
	}

	var c [3]int
	for i := range c {
		c[i] = int(math.Round(from[i] + (to[i]-from[i])*t))
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c[0], c[1], c[2]))
}
