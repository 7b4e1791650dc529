package analysis

// ScoreRisk computes the additive risk score for a patient profile and
// the level it maps to. Age brackets are mutually exclusive: only the
// highest matching bracket contributes.
func ScoreRisk(req RiskAssessmentRequest) (int, RiskLevel) {
	score := 0

	switch {
	case req.Age > 50:
		score += 3
	case req.Age > 40:
		score += 2
	case req.Age > 30:
		score += 1
	}

	if req.FamilyHistory {
		score += 4
	}
	if req.PreviousBiopsies {
		score += 3
	}
	if req.HormoneTherapy {
		score += 2
	}
	if req.BreastDensity != nil && *req.BreastDensity == "dense" {
		score += 2
	}

	return score, levelForScore(score)
}

func levelForScore(score int) RiskLevel {
	switch {
	case score >= 8:
		return RiskHigh
	case score >= 4:
		return RiskModerate
	default:
		return RiskLow
	}
}
