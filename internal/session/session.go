// Package session holds the state of one interactive exploration: the
// currently loaded dataset and the scorer used to analyze it. A Session is
// owned by the presentation layer and is not safe for concurrent use.
package session

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/spacesedan/reviewlens/internal/dataset"
	"github.com/spacesedan/reviewlens/internal/sentiment"
)

// ErrNoDataset is returned by operations that need a loaded dataset.
var ErrNoDataset = errors.New("no dataset loaded: please load the dataset first")

type Session struct {
	ID string

	scorer   *sentiment.Scorer
	logger   *slog.Logger
	loadOpts []dataset.LoadOption
	data     *dataset.Dataset
}

// View is a filtered slice of the session dataset plus the aggregates that
// are available for it. Averages and Counts are nil until the dataset has
// been analyzed.
type View struct {
	Product  string
	Rows     *dataset.Dataset
	Averages []dataset.ProductAverage
	Counts   map[sentiment.Label]int
}

// Analyzed reports whether the view carries chart data.
func (v *View) Analyzed() bool {
	return v.Rows.Enriched()
}

func New(scorer *sentiment.Scorer, logger *slog.Logger, opts ...dataset.LoadOption) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if scorer == nil {
		scorer = sentiment.NewScorer(nil, logger)
	}

	id := uuid.NewString()
	logger = logger.With(slog.String("session_id", id))

	return &Session{
		ID:       id,
		scorer:   scorer,
		logger:   logger,
		loadOpts: append([]dataset.LoadOption{dataset.WithLogger(logger)}, opts...),
	}
}

// Dataset returns the current dataset, or nil before the first load.
func (s *Session) Dataset() *dataset.Dataset {
	return s.data
}

// Load replaces the current dataset with the one read from path. On error
// the previous dataset is kept.
func (s *Session) Load(path string) error {
	d, err := dataset.Load(path, s.loadOpts...)
	if err != nil {
		s.logger.Error("[Session] Failed to load dataset",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return err
	}

	s.data = d
	return nil
}

// Analyze validates and enriches a copy of the current dataset, then makes
// the copy current. A schema error leaves the session unchanged.
func (s *Session) Analyze() (dataset.EnrichStats, error) {
	if s.data == nil {
		return dataset.EnrichStats{}, ErrNoDataset
	}

	enriched := s.data.Clone()
	stats, err := enriched.Enrich(s.scorer)
	if err != nil {
		s.logger.Error("[Session] Sentiment analysis failed",
			slog.String("error", err.Error()))
		return stats, err
	}

	s.data = enriched
	s.logger.Info("[Session] Sentiment analysis completed",
		slog.Int("rows", stats.Rows),
		slog.Int("scoring_failures", stats.Failures),
		slog.Duration("elapsed", stats.Duration))

	return stats, nil
}

// View filters the current dataset by product and, if the dataset has been
// analyzed, computes the chart aggregates for the filtered rows.
func (s *Session) View(product string) (*View, error) {
	if s.data == nil {
		return nil, ErrNoDataset
	}
	if product == "" {
		product = dataset.AllProducts
	}

	v := &View{
		Product: product,
		Rows:    s.data.FilterByProduct(product),
	}
	if !v.Rows.Enriched() {
		return v, nil
	}

	var err error
	if v.Averages, err = v.Rows.GroupedAverageSentiment(); err != nil {
		return nil, err
	}
	if v.Counts, err = v.Rows.SentimentCounts(); err != nil {
		return nil, err
	}

	return v, nil
}
