package dataset

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spacesedan/reviewlens/internal/metrics"
	"github.com/spacesedan/reviewlens/internal/sentiment"
)

const (
	ColumnProduct        = "product"
	ColumnSummary        = "summary"
	ColumnSentimentScore = "sentiment_score"
	ColumnSentimentLabel = "sentiment_label"

	// AllProducts selects every row in FilterByProduct.
	AllProducts = "All Products"
)

// RequiredColumns must be present before a dataset can be enriched.
var RequiredColumns = []string{ColumnProduct, ColumnSummary}

// Row is a single review. Values line up with Dataset.Columns; a row read
// from a ragged file may be shorter than the header.
type Row struct {
	Values    []string
	Sentiment *sentiment.Sentiment
}

// Dataset is an ordered, in-memory table of reviews. A Dataset returned by
// FilterByProduct is a read-only view that shares rows with its source.
type Dataset struct {
	Source  string
	Columns []string
	Rows    []Row

	enriched bool
}

// EnrichStats summarizes a single Enrich run.
type EnrichStats struct {
	Rows     int
	Failures int
	Duration time.Duration
}

// New builds a dataset from a header and records. It is what the file
// readers produce and is handy for callers holding data in memory.
func New(source string, columns []string, records [][]string) *Dataset {
	d := &Dataset{
		Source:  source,
		Columns: append([]string(nil), columns...),
		Rows:    make([]Row, 0, len(records)),
	}
	for _, rec := range records {
		d.Rows = append(d.Rows, Row{Values: append([]string(nil), rec...)})
	}
	return d
}

func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Enriched reports whether every row carries a sentiment score and label.
func (d *Dataset) Enriched() bool {
	return d.enriched
}

// Column returns the index of the named column. Names are compared
// case-insensitively after trimming.
func (d *Dataset) Column(name string) (int, bool) {
	for i, c := range d.Columns {
		if strings.EqualFold(strings.TrimSpace(c), name) {
			return i, true
		}
	}
	return -1, false
}

// Value returns the cell at row i, column col. Cells past the end of a short
// row are reported as missing.
func (d *Dataset) Value(i, col int) (string, bool) {
	if i < 0 || i >= len(d.Rows) || col < 0 {
		return "", false
	}
	values := d.Rows[i].Values
	if col >= len(values) {
		return "", false
	}
	return values[col], true
}

// ValidateSchema checks that the required columns are present.
func (d *Dataset) ValidateSchema() error {
	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := d.Column(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// Enrich scores every summary in row order and attaches the score and label
// to each row. The derived columns are added on first run and overwritten on
// later runs. Nothing is changed if the schema is invalid.
func (d *Dataset) Enrich(scorer *sentiment.Scorer) (EnrichStats, error) {
	if err := d.ValidateSchema(); err != nil {
		return EnrichStats{}, err
	}

	start := time.Now()
	summaryCol, _ := d.Column(ColumnSummary)
	stats := EnrichStats{Rows: len(d.Rows)}

	for i := range d.Rows {
		summary, _ := d.Value(i, summaryCol)

		res := scorer.Evaluate(summary)
		if res.Failed() {
			stats.Failures++
		}
		s := sentiment.NewSentiment(scorer.Resolve(res, slog.Int("row", i)))
		d.Rows[i].Sentiment = &s
	}

	d.addDerivedColumns()
	d.enriched = true

	stats.Duration = time.Since(start)
	metrics.RowsEnriched.Add(float64(stats.Rows))
	metrics.EnrichDuration.Observe(stats.Duration.Seconds())

	return stats, nil
}

func (d *Dataset) addDerivedColumns() {
	for _, name := range []string{ColumnSentimentScore, ColumnSentimentLabel} {
		if _, ok := d.Column(name); !ok {
			d.Columns = append(d.Columns, name)
		}
	}
}

// Clone returns a deep copy whose rows can be enriched without touching d.
func (d *Dataset) Clone() *Dataset {
	c := &Dataset{
		Source:   d.Source,
		Columns:  append([]string(nil), d.Columns...),
		Rows:     make([]Row, len(d.Rows)),
		enriched: d.enriched,
	}
	for i, r := range d.Rows {
		c.Rows[i].Values = append([]string(nil), r.Values...)
		if r.Sentiment != nil {
			s := *r.Sentiment
			c.Rows[i].Sentiment = &s
		}
	}
	return c
}

// Records renders every row padded to the full column set, with the derived
// sentiment columns filled in once the dataset is enriched.
func (d *Dataset) Records() [][]string {
	scoreCol, hasScore := d.Column(ColumnSentimentScore)
	labelCol, hasLabel := d.Column(ColumnSentimentLabel)

	out := make([][]string, len(d.Rows))
	for i, r := range d.Rows {
		rec := make([]string, len(d.Columns))
		copy(rec, r.Values)
		if r.Sentiment != nil {
			if hasScore {
				rec[scoreCol] = strconv.FormatFloat(r.Sentiment.Score, 'f', 4, 64)
			}
			if hasLabel {
				rec[labelCol] = r.Sentiment.Label.String()
			}
		}
		out[i] = rec
	}
	return out
}
