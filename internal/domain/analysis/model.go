package analysis

import (
	"time"

	"github.com/google/uuid"
)

// RiskLevel grades an analysis outcome.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// Analysis type tags.
const (
	TypeImage          = "image"
	TypeRiskAssessment = "risk_assessment"
)

// Analysis maps to the analyses table. Records are append-only, never
// updated or deleted. ImageData holds a truncated fingerprint of the
// uploaded image for image analyses; it is persisted but stripped from
// the analyze-image response.
type Analysis struct {
	ID              uuid.UUID `db:"id" json:"id"`
	UserID          uuid.UUID `db:"user_id" json:"user_id"`
	AnalysisType    string    `db:"analysis_type" json:"analysis_type"`
	Result          string    `db:"result" json:"result"`
	RiskLevel       RiskLevel `db:"risk_level" json:"risk_level"`
	Recommendations []string  `db:"recommendations" json:"recommendations"`
	ImageData       *string   `db:"image_data" json:"image_data,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// RiskAssessmentRequest is the POST /risk-assessment payload. It
// mirrors the medical history fields so a stored profile can be
// submitted verbatim.
type RiskAssessmentRequest struct {
	Age               int     `json:"age"`
	FamilyHistory     bool    `json:"family_history"`
	PreviousBiopsies  bool    `json:"previous_biopsies"`
	HormoneTherapy    bool    `json:"hormone_therapy"`
	FirstPregnancyAge *int    `json:"first_pregnancy_age"`
	MenstruationAge   *int    `json:"menstruation_age"`
	BreastDensity     *string `json:"breast_density"`
}
