package ai

import (
	"fmt"
	"strconv"
)

// Prompt strings sent to the collaborator. Frontend and clinical review
// both key off the exact wording, so treat changes as contract changes.
const (
	ImageSystemPrompt = "You are an AI medical assistant specialized in breast cancer detection. Analyze mammogram images and provide detailed insights about potential abnormalities, their characteristics, and recommendations. Always include a risk assessment (low, moderate, or high) and actionable next steps."

	ImageInstruction = "Please analyze this mammogram image for any signs of abnormalities or potential breast cancer indicators. Provide: 1) Detailed findings, 2) Risk level (low/moderate/high), 3) Specific recommendations for next steps."

	RiskSystemPrompt = "You are an AI medical assistant providing breast cancer risk assessments based on patient history and demographics."
)

const riskPromptTemplate = `Based on the following patient information, provide a detailed breast cancer risk assessment:

Age: %d
Family History: %s
Previous Biopsies: %s
Hormone Therapy: %s
First Pregnancy Age: %s
Menstruation Start Age: %s
Breast Density: %s

Provide a comprehensive risk analysis with specific recommendations.`

// RiskProfile carries the patient fields embedded into the risk
// assessment prompt. Optional fields render as N/A when unset or zero.
type RiskProfile struct {
	Age               int
	FamilyHistory     bool
	PreviousBiopsies  bool
	HormoneTherapy    bool
	FirstPregnancyAge *int
	MenstruationAge   *int
	BreastDensity     *string
}

// BuildRiskPrompt renders the risk assessment prompt for a profile.
func BuildRiskPrompt(p RiskProfile) string {
	return fmt.Sprintf(riskPromptTemplate,
		p.Age,
		yesNo(p.FamilyHistory),
		yesNo(p.PreviousBiopsies),
		yesNo(p.HormoneTherapy),
		intOrNA(p.FirstPregnancyAge),
		intOrNA(p.MenstruationAge),
		stringOrNA(p.BreastDensity),
	)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func intOrNA(v *int) string {
	if v == nil || *v == 0 {
		return "N/A"
	}
	return strconv.Itoa(*v)
}

func stringOrNA(v *string) string {
	if v == nil || *v == "" {
		return "N/A"
	}
	return *v
}
