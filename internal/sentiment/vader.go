package sentiment

import (
	"fmt"
	"math"

	"github.com/jonreiter/govader"
)

const (
	// vaderAlpha is the constant VADER uses to squash its valence sum into
	// the compound score: s / sqrt(s*s + alpha).
	vaderAlpha = 15

	// CalibratedAlpha replaces vaderAlpha when the valence sum is rescaled.
	// At 25 a lone mildly positive word such as "okay" (valence 0.9) lands
	// inside the neutral band, while "great" (3.1) or "terrible" (-2.1)
	// stay clearly positive or negative.
	CalibratedAlpha = 25
)

// PolarityAnalyzer maps normalized text to a polarity score in [-1, 1].
type PolarityAnalyzer interface {
	Polarity(text string) (float64, error)
}

// PolarityFunc adapts a plain function to a PolarityAnalyzer.
type PolarityFunc func(text string) (float64, error)

func (f PolarityFunc) Polarity(text string) (float64, error) {
	return f(text)
}

type vaderAnalyzer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVADERAnalyzer returns a PolarityAnalyzer backed by the VADER lexicon.
// The compound score is recalibrated with CalibratedAlpha, see Calibrate.
func NewVADERAnalyzer() PolarityAnalyzer {
	return &vaderAnalyzer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *vaderAnalyzer) Polarity(text string) (score float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			score, err = 0, fmt.Errorf("vader panicked: %v", r)
		}
	}()

	compound := v.analyzer.PolarityScores(text).Compound
	if math.IsNaN(compound) || compound < -1 || compound > 1 {
		return 0, fmt.Errorf("vader returned out of range score %v", compound)
	}

	return Calibrate(compound), nil
}

// Calibrate recovers the raw VADER valence sum from a compound score and
// squashes it again with CalibratedAlpha. Signs and ordering are kept; the
// ends of the range are returned unchanged.
func Calibrate(compound float64) float64 {
	if compound <= -1 || compound >= 1 || compound == 0 {
		return compound
	}

	sum := compound * math.Sqrt(vaderAlpha/(1-compound*compound))
	return sum / math.Sqrt(sum*sum+CalibratedAlpha)
}
