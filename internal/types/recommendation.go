package types

// Confidence buckets how certain the engine is about a recommendation's score.
type Confidence string

// Confidence levels.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Rank orders confidence levels for minimum-confidence filtering.
// Unknown values rank below low.
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 2
	case ConfidenceMedium:
		return 1
	case ConfidenceLow:
		return 0
	default:
		return -1
	}
}

// CrewRecommendation is one ranked (captain, bridge, bridge) trio with its
// score, confidence, and human-readable rationale.
type CrewRecommendation struct {
	CaptainID  string             `json:"captain_id"`
	Bridge1ID  string             `json:"bridge1_id"`
	Bridge2ID  string             `json:"bridge2_id"`
	TotalScore float64            `json:"total_score"`
	Confidence Confidence         `json:"confidence"`
	Reasons    []string           `json:"reasons"`
	Factors    map[string]float64 `json:"factors"`
}
