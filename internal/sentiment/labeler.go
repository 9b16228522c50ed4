package sentiment

// Label is the categorical sentiment of a review.
type Label string

const (
	Positive Label = "Positive"
	Negative Label = "Negative"
	Neutral  Label = "Neutral"
)

const (
	PositiveThreshold = 0.2
	NegativeThreshold = -0.2
)

// Labels lists every label in display order.
var Labels = []Label{Positive, Neutral, Negative}

func (l Label) String() string {
	return string(l)
}

// LabelFor maps a polarity score to a label. Both thresholds are exclusive,
// so scores in [-0.2, 0.2] are Neutral.
func LabelFor(score float64) Label {
	switch {
	case score > PositiveThreshold:
		return Positive
	case score < NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// Sentiment is the derived score and label of a single review. The two are
// always attached to a row together.
type Sentiment struct {
	Score float64
	Label Label
}

func NewSentiment(score float64) Sentiment {
	return Sentiment{Score: score, Label: LabelFor(score)}
}
