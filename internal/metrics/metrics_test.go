package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistration(t *testing.T) {
	collectors := []prometheus.Collector{
		DatasetsLoaded,
		DatasetLoadErrors,
		RowsEnriched,
		ScoringFailures,
		EnrichDuration,
	}

	for _, c := range collectors {
		err := prometheus.DefaultRegisterer.Register(c)
		var already prometheus.AlreadyRegisteredError
		assert.ErrorAs(t, err, &already, "collector should already be registered")
	}
}

func TestDump(t *testing.T) {
	before := testutil.ToFloat64(RowsEnriched)
	RowsEnriched.Add(3)
	DatasetsLoaded.WithLabelValues("csv").Inc()
	EnrichDuration.Observe(0.25)

	assert.Equal(t, before+3, testutil.ToFloat64(RowsEnriched))

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf))

	out := buf.String()
	assert.Contains(t, out, "reviewlens_rows_enriched_total ")
	assert.Contains(t, out, `reviewlens_datasets_loaded_total{format="csv"} `)
	assert.Contains(t, out, "reviewlens_enrich_duration_seconds count=")
	assert.NotContains(t, out, "go_goroutines")
}
