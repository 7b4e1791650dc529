package profile

import (
	"time"

	"github.com/google/uuid"
)

// MedicalHistory maps to the medical_history table. Each user has at
// most one row; a new submission replaces the previous one. Optional
// fields stay pointers so the JSON carries explicit nulls.
type MedicalHistory struct {
	ID                uuid.UUID `db:"id" json:"id"`
	UserID            uuid.UUID `db:"user_id" json:"user_id"`
	Age               int       `db:"age" json:"age"`
	FamilyHistory     bool      `db:"family_history" json:"family_history"`
	PreviousBiopsies  bool      `db:"previous_biopsies" json:"previous_biopsies"`
	HormoneTherapy    bool      `db:"hormone_therapy" json:"hormone_therapy"`
	FirstPregnancyAge *int      `db:"first_pregnancy_age" json:"first_pregnancy_age"`
	MenstruationAge   *int      `db:"menstruation_age" json:"menstruation_age"`
	BreastDensity     *string   `db:"breast_density" json:"breast_density"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// UpsertRequest is the POST /medical-history payload.
type UpsertRequest struct {
	Age               int     `json:"age"`
	FamilyHistory     bool    `json:"family_history"`
	PreviousBiopsies  bool    `json:"previous_biopsies"`
	HormoneTherapy    bool    `json:"hormone_therapy"`
	FirstPregnancyAge *int    `json:"first_pregnancy_age"`
	MenstruationAge   *int    `json:"menstruation_age"`
	BreastDensity     *string `json:"breast_density"`
}
