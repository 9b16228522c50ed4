package metrics

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

var (
	// DatasetsLoaded counts successful dataset loads by file format
	DatasetsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewlens_datasets_loaded_total",
			Help: "Total datasets loaded by file format",
		},
		[]string{"format"},
	)

	// DatasetLoadErrors counts failed loads by error kind (not_found, io)
	DatasetLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewlens_dataset_load_errors_total",
			Help: "Total failed dataset loads by error kind",
		},
		[]string{"kind"},
	)

	RowsEnriched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviewlens_rows_enriched_total",
			Help: "Total review rows scored and labeled",
		},
	)

	// ScoringFailures counts rows whose polarity could not be computed and
	// were given a neutral score instead
	ScoringFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reviewlens_scoring_failures_total",
			Help: "Total polarity scoring failures absorbed as neutral scores",
		},
	)

	EnrichDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reviewlens_enrich_duration_seconds",
			Help:    "Time taken to enrich a full dataset",
			Buckets: []float64{.001, .01, .05, .1, .5, 1, 5, 10, 30},
		},
	)
)

// Dump writes every reviewlens metric from the default gatherer to w as
// "name{labels} value" lines.
func Dump(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), "reviewlens_") {
			continue
		}
		for _, m := range family.GetMetric() {
			fmt.Fprintf(w, "%s%s %s\n", family.GetName(), formatLabels(m.GetLabel()), formatValue(family.GetType(), m))
		}
	}

	return nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", p.GetName(), p.GetValue()))
	}
	sort.Strings(parts)

	return "{" + strings.Join(parts, ",") + "}"
}

func formatValue(kind dto.MetricType, m *dto.Metric) string {
	switch kind {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%g", m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprintf("%g", m.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return fmt.Sprintf("count=%d sum=%g", h.GetSampleCount(), h.GetSampleSum())
	default:
		return "?"
	}
}
