package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
	"github.com/zatekoja/physiodesk/backend/internal/infrastructure/observability"
)

// SessionService manages treatment session records
type SessionService struct {
	collection[entities.Session]
	patients repositories.RecordRepository[entities.Patient]
}

// NewSessionService creates a new session service
func NewSessionService(
	repo repositories.RecordRepository[entities.Session],
	patients repositories.RecordRepository[entities.Patient],
) *SessionService {
	return &SessionService{
		collection: newCollection(repo),
		patients:   patients,
	}
}

// Record saves a new session and then bumps the referenced patient's completedSessions.
// The two writes are independent: if the patient update fails the session stays saved and
// the error is returned. A session for an unknown patient is saved without an increment.
func (s *SessionService) Record(ctx context.Context, session entities.Session) (entities.Session, error) {
	logger := observability.LoggerFromContext(ctx)

	session.Base = entities.NewBase(s.now())
	saved, err := s.repo.Save(ctx, session)
	if err != nil {
		return saved, fmt.Errorf("failed to save session: %w", err)
	}

	if saved.PatientID == "" {
		return saved, nil
	}

	patient, found, err := s.patients.GetByID(ctx, saved.PatientID)
	if err != nil {
		logger.Error().Err(err).Str("session_id", saved.ID).Msg("session saved but patient lookup failed")
		return saved, fmt.Errorf("failed to load patient %s: %w", saved.PatientID, err)
	}
	if !found {
		logger.Warn().Str("session_id", saved.ID).Str("patient_id", saved.PatientID).Msg("session references unknown patient")
		return saved, nil
	}

	_, _, err = s.patients.Update(ctx, patient.ID, repositories.Patch{
		"completedSessions": patient.CompletedSessions + 1,
	})
	if err != nil {
		logger.Error().Err(err).
			Str("session_id", saved.ID).
			Str("patient_id", patient.ID).
			Msg("session saved but completed session count was not incremented")
		return saved, fmt.Errorf("failed to increment completed sessions: %w", err)
	}

	return saved, nil
}

// ListByPatient returns sessions newest first, restricted to patientID when it is not empty
func (s *SessionService) ListByPatient(ctx context.Context, patientID string) ([]entities.Session, error) {
	sessions, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if patientID != "" {
		sessions = filter(sessions, func(session entities.Session) bool {
			return session.PatientID == patientID
		})
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date > sessions[j].Date
	})
	return sessions, nil
}
