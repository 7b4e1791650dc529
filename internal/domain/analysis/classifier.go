package analysis

import "strings"

// RiskClassifier derives a risk level from the collaborator's free-text
// reply. Image analyses have no deterministic score, so the level comes
// from the narrative itself.
type RiskClassifier interface {
	ClassifyRisk(text string) RiskLevel
}

// keywordClassifier scans the reply for risk phrases, case-insensitive.
// A reply mentioning neither phrase classifies as low.
type keywordClassifier struct{}

func NewKeywordClassifier() RiskClassifier {
	return keywordClassifier{}
}

func (keywordClassifier) ClassifyRisk(text string) RiskLevel {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "high risk") || strings.Contains(lower, "high-risk"):
		return RiskHigh
	case strings.Contains(lower, "moderate"):
		return RiskModerate
	default:
		return RiskLow
	}
}
