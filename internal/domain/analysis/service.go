package analysis

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mammoscan/mammoscan/internal/platform/ai"
	"github.com/mammoscan/mammoscan/internal/platform/imaging"
)

// fingerprintLen bounds the stored base64 image fingerprint.
const fingerprintLen = 1000

// Recommendation lists returned verbatim with each analysis. The
// frontend renders these strings as-is.
var (
	imageRecommendations = []string{
		"Consult with a healthcare professional",
		"Schedule a follow-up examination",
		"Maintain regular screening schedule",
	}
	riskRecommendations = []string{
		"Schedule annual mammogram screening",
		"Perform monthly self-examinations",
		"Maintain a healthy lifestyle",
		"Discuss results with your healthcare provider",
	}
	highRiskRecommendations = []string{
		"Consult with an oncologist immediately",
		"Consider genetic testing",
	}
)

// Service orchestrates AI-assisted analyses. A failed collaborator call
// persists nothing; the caller retries from scratch.
type Service struct {
	analyses   Repository
	ai         ai.Client
	classifier RiskClassifier
}

func NewService(analyses Repository, client ai.Client, classifier RiskClassifier) *Service {
	return &Service{analyses: analyses, ai: client, classifier: classifier}
}

// AnalyzeImage normalizes the upload, asks the collaborator for
// findings, and stores the result. The stored record keeps a truncated
// image fingerprint; the returned record does not.
func (s *Service) AnalyzeImage(ctx context.Context, userID string, imageBytes []byte) (*Analysis, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("bad user id: %v", err)
	}

	png, _, err := imaging.Normalize(imageBytes)
	if err != nil {
		return nil, err
	}

	result, err := s.ai.Complete(ctx, ai.Request{
		System:   ai.ImageSystemPrompt,
		Text:     ai.ImageInstruction,
		ImagePNG: png,
	})
	if err != nil {
		return nil, err
	}

	fingerprint := imaging.Base64(png)
	if len(fingerprint) > fingerprintLen {
		fingerprint = fingerprint[:fingerprintLen]
	}

	record := &Analysis{
		UserID:          uid,
		AnalysisType:    TypeImage,
		Result:          result,
		RiskLevel:       s.classifier.ClassifyRisk(result),
		Recommendations: imageRecommendations,
		ImageData:       &fingerprint,
	}
	if err := s.analyses.Create(ctx, record); err != nil {
		return nil, err
	}

	response := *record
	response.ImageData = nil
	return &response, nil
}

// AssessRisk scores the profile deterministically, asks the
// collaborator for a narrative, and stores the result. The risk level
// always comes from the score; the AI text is narrative only.
func (s *Service) AssessRisk(ctx context.Context, userID string, req RiskAssessmentRequest) (*Analysis, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("bad user id: %v", err)
	}

	_, level := ScoreRisk(req)

	narrative, err := s.ai.Complete(ctx, ai.Request{
		System: ai.RiskSystemPrompt,
		Text: ai.BuildRiskPrompt(ai.RiskProfile{
			Age:               req.Age,
			FamilyHistory:     req.FamilyHistory,
			PreviousBiopsies:  req.PreviousBiopsies,
			HormoneTherapy:    req.HormoneTherapy,
			FirstPregnancyAge: req.FirstPregnancyAge,
			MenstruationAge:   req.MenstruationAge,
			BreastDensity:     req.BreastDensity,
		}),
	})
	if err != nil {
		return nil, err
	}

	recs := riskRecommendations
	if level == RiskHigh {
		recs = make([]string, 0, len(highRiskRecommendations)+len(riskRecommendations))
		recs = append(recs, highRiskRecommendations...)
		recs = append(recs, riskRecommendations...)
	}

	record := &Analysis{
		UserID:          uid,
		AnalysisType:    TypeRiskAssessment,
		Result:          narrative,
		RiskLevel:       level,
		Recommendations: recs,
	}
	if err := s.analyses.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListAnalyses returns the user's analyses, newest first, capped at
// ListLimit.
func (s *Service) ListAnalyses(ctx context.Context, userID string) ([]*Analysis, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("bad user id: %v", err)
	}

	records, err := s.analyses.ListByUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if len(records) > ListLimit {
		records = records[:ListLimit]
	}
	if records == nil {
		records = []*Analysis{}
	}
	return records, nil
}
