package dataset

import (
	"sort"

	"github.com/spacesedan/reviewlens/internal/sentiment"
)

// ProductAverage is the mean sentiment score of one product's reviews.
type ProductAverage struct {
	Product string  `json:"product"`
	Average float64 `json:"average"`
	Reviews int     `json:"reviews"`
}

// FilterByProduct returns the rows whose product equals name exactly. An
// empty name or AllProducts returns d itself. When no row matches, or the
// product column is missing, the view is empty.
func (d *Dataset) FilterByProduct(name string) *Dataset {
	if name == "" || name == AllProducts {
		return d
	}

	view := &Dataset{
		Source:   d.Source,
		Columns:  d.Columns,
		Rows:     []Row{},
		enriched: d.enriched,
	}

	col, ok := d.Column(ColumnProduct)
	if !ok {
		return view
	}

	for i, r := range d.Rows {
		if v, _ := d.Value(i, col); v == name {
			view.Rows = append(view.Rows, r)
		}
	}

	return view
}

// Products returns the distinct, non-empty product names sorted ascending.
func (d *Dataset) Products() []string {
	col, ok := d.Column(ColumnProduct)
	if !ok {
		return nil
	}

	seen := make(map[string]struct{})
	var products []string
	for i := range d.Rows {
		v, present := d.Value(i, col)
		if !present || v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		products = append(products, v)
	}
	sort.Strings(products)

	return products
}

// ProductOptions is the product selector list: AllProducts followed by
// every product in d.
func ProductOptions(d *Dataset) []string {
	return append([]string{AllProducts}, d.Products()...)
}

// GroupedAverageSentiment averages the sentiment score per product and
// sorts the groups by average, highest first. Groups with equal averages
// keep the order in which their product first appears. Rows without a
// product are not grouped.
func (d *Dataset) GroupedAverageSentiment() ([]ProductAverage, error) {
	if !d.enriched {
		return nil, &PreconditionError{Op: "grouped average sentiment"}
	}

	col, _ := d.Column(ColumnProduct)
	index := make(map[string]int)
	sums := []float64{}
	groups := []ProductAverage{}

	for i, r := range d.Rows {
		product, _ := d.Value(i, col)
		if product == "" {
			continue
		}
		g, ok := index[product]
		if !ok {
			g = len(groups)
			index[product] = g
			groups = append(groups, ProductAverage{Product: product})
			sums = append(sums, 0)
		}
		sums[g] += r.Sentiment.Score
		groups[g].Reviews++
	}

	for i := range groups {
		groups[i].Average = sums[i] / float64(groups[i].Reviews)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Average > groups[j].Average
	})

	return groups, nil
}

// SentimentCounts counts the rows per label. Labels that do not occur are
// left out of the map.
func (d *Dataset) SentimentCounts() (map[sentiment.Label]int, error) {
	if !d.enriched {
		return nil, &PreconditionError{Op: "sentiment counts"}
	}

	counts := make(map[sentiment.Label]int)
	for _, r := range d.Rows {
		counts[r.Sentiment.Label]++
	}

	return counts, nil
}
