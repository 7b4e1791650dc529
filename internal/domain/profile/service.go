package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInvalidHistory = errors.New("invalid medical history")

// Service provides business logic for medical history records.
type Service struct {
	histories Repository
}

func NewService(histories Repository) *Service {
	return &Service{histories: histories}
}

// Upsert validates and stores a user's history, replacing any previous
// submission.
func (s *Service) Upsert(ctx context.Context, userID string, req UpsertRequest) (*MedicalHistory, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad user id", ErrInvalidHistory)
	}
	if req.Age <= 0 {
		return nil, fmt.Errorf("%w: age must be positive", ErrInvalidHistory)
	}

	h := &MedicalHistory{
		UserID:            uid,
		Age:               req.Age,
		FamilyHistory:     req.FamilyHistory,
		PreviousBiopsies:  req.PreviousBiopsies,
		HormoneTherapy:    req.HormoneTherapy,
		FirstPregnancyAge: req.FirstPregnancyAge,
		MenstruationAge:   req.MenstruationAge,
		BreastDensity:     req.BreastDensity,
	}
	if err := s.histories.Replace(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// Get returns the user's history, or nil when none has been submitted.
func (s *Service) Get(ctx context.Context, userID string) (*MedicalHistory, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad user id", ErrInvalidHistory)
	}
	return s.histories.GetByUser(ctx, uid)
}
