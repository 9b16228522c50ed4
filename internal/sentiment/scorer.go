package sentiment

import (
	"log/slog"

	"github.com/spacesedan/reviewlens/internal/metrics"
)

// Result is the outcome of scoring a single text. Err is set when the
// analyzer failed, in which case Score is 0.
type Result struct {
	Score float64
	Err   error
}

func (r Result) Failed() bool {
	return r.Err != nil
}

// Scorer normalizes text and asks a PolarityAnalyzer for its polarity.
type Scorer struct {
	analyzer PolarityAnalyzer
	logger   *slog.Logger
}

// NewScorer wraps analyzer. A nil analyzer falls back to VADER and a nil
// logger to slog.Default().
func NewScorer(analyzer PolarityAnalyzer, logger *slog.Logger) *Scorer {
	if analyzer == nil {
		analyzer = NewVADERAnalyzer()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Scorer{analyzer: analyzer, logger: logger}
}

// Evaluate normalizes text and scores it without absorbing failures.
func (s *Scorer) Evaluate(text string) Result {
	score, err := s.analyzer.Polarity(Normalize(text))
	if err != nil {
		return Result{Err: err}
	}

	return Result{Score: score}
}

// Score returns the polarity of text. Analyzer failures are logged, counted
// and reported as a neutral 0.0.
func (s *Scorer) Score(text string) float64 {
	return s.Resolve(s.Evaluate(text))
}

// Resolve turns a Result into a score, absorbing a failure as 0.0.
func (s *Scorer) Resolve(res Result, attrs ...any) float64 {
	if res.Failed() {
		metrics.ScoringFailures.Inc()
		attrs = append(attrs, slog.String("error", res.Err.Error()))
		s.logger.Warn("[SentimentScorer] Scoring failed, using neutral score", attrs...)
		return 0
	}

	return res.Score
}

// Analyze scores text and labels the result.
func (s *Scorer) Analyze(text string) Sentiment {
	return NewSentiment(s.Score(text))
}
