package session

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/reviewlens/internal/dataset"
	"github.com/spacesedan/reviewlens/internal/sentiment"
)

func newTestSession() *Session {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	scorer := sentiment.NewScorer(sentiment.PolarityFunc(func(text string) (float64, error) {
		switch text {
		case "great product":
			return 0.9, nil
		case "awful":
			return -0.9, nil
		}
		return 0, nil
	}), logger)
	return New(scorer, logger)
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reviews.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const reviewsCSV = "product,summary\nA,great product\nB,awful\nA,meh\n"

func TestNew_AssignsUniqueIDs(t *testing.T) {
	a, b := newTestSession(), newTestSession()

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Nil(t, a.Dataset())
}

func TestLoad_ReplacesDataset(t *testing.T) {
	s := newTestSession()

	require.NoError(t, s.Load(writeCSV(t, reviewsCSV)))
	assert.Equal(t, 3, s.Dataset().Len())

	require.NoError(t, s.Load(writeCSV(t, "product,summary\nC,great product\n")))
	assert.Equal(t, 1, s.Dataset().Len())
}

func TestLoad_FailureKeepsPreviousDataset(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(writeCSV(t, reviewsCSV)))
	previous := s.Dataset()

	err := s.Load(filepath.Join(t.TempDir(), "missing.csv"))

	var notFound *dataset.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Same(t, previous, s.Dataset())
}

func TestAnalyze_WithoutDataset(t *testing.T) {
	_, err := newTestSession().Analyze()

	assert.ErrorIs(t, err, ErrNoDataset)
}

func TestAnalyze_SchemaErrorKeepsLoadedState(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(writeCSV(t, "product,text\nA,great product\n")))
	loaded := s.Dataset()

	_, err := s.Analyze()

	var schemaErr *dataset.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"summary"}, schemaErr.Missing)
	assert.Same(t, loaded, s.Dataset())
	assert.False(t, s.Dataset().Enriched())
}

func TestAnalyze_EnrichesDataset(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(writeCSV(t, reviewsCSV)))
	loaded := s.Dataset()

	stats, err := s.Analyze()
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Rows)
	assert.True(t, s.Dataset().Enriched())
	assert.False(t, loaded.Enriched())
}

func TestView_WithoutDataset(t *testing.T) {
	_, err := newTestSession().View("")

	assert.ErrorIs(t, err, ErrNoDataset)
}

func TestView_BeforeAnalyze(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(writeCSV(t, reviewsCSV)))

	v, err := s.View("")
	require.NoError(t, err)

	assert.Equal(t, dataset.AllProducts, v.Product)
	assert.Equal(t, 3, v.Rows.Len())
	assert.False(t, v.Analyzed())
	assert.Nil(t, v.Averages)
	assert.Nil(t, v.Counts)
}

func TestView_AfterAnalyze(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.Load(writeCSV(t, reviewsCSV)))
	_, err := s.Analyze()
	require.NoError(t, err)

	all, err := s.View(dataset.AllProducts)
	require.NoError(t, err)
	require.True(t, all.Analyzed())
	require.Len(t, all.Averages, 2)
	assert.Equal(t, "A", all.Averages[0].Product)
	assert.InDelta(t, 0.45, all.Averages[0].Average, 1e-9)
	assert.Equal(t, map[sentiment.Label]int{
		sentiment.Positive: 1,
		sentiment.Negative: 1,
		sentiment.Neutral:  1,
	}, all.Counts)

	b, err := s.View("B")
	require.NoError(t, err)
	assert.Equal(t, 1, b.Rows.Len())
	assert.Equal(t, map[sentiment.Label]int{sentiment.Negative: 1}, b.Counts)
}
