package services

import (
	"context"
	"strings"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
)

// UnknownPatientName is shown wherever a record references a patient that no longer exists.
const UnknownPatientName = "Bilinmeyen"

// PatientService manages the patient collection
type PatientService struct {
	collection[entities.Patient]
}

// NewPatientService creates a new patient service
func NewPatientService(repo repositories.RecordRepository[entities.Patient]) *PatientService {
	return &PatientService{collection: newCollection(repo)}
}

// Create stamps a new id and timestamps on patient and saves it
func (s *PatientService) Create(ctx context.Context, patient entities.Patient) (entities.Patient, error) {
	patient.Base = entities.NewBase(s.now())
	return s.repo.Save(ctx, patient)
}

// Search matches term case-insensitively against first and last name and as a substring of
// the phone number. An empty term returns every patient.
func (s *PatientService) Search(ctx context.Context, term string) ([]entities.Patient, error) {
	patients, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return patients, nil
	}

	lower := strings.ToLower(term)
	return filter(patients, func(p entities.Patient) bool {
		return strings.Contains(strings.ToLower(p.FirstName), lower) ||
			strings.Contains(strings.ToLower(p.LastName), lower) ||
			strings.Contains(p.Phone, term)
	}), nil
}

// DisplayName returns "First Last" for id, or UnknownPatientName when it does not resolve
func (s *PatientService) DisplayName(ctx context.Context, id string) (string, error) {
	patient, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !found {
		return UnknownPatientName, nil
	}
	return patient.FullName(), nil
}

// RemainingSessions returns the planned sessions the patient has not completed yet
func (s *PatientService) RemainingSessions(ctx context.Context, id string) (int, bool, error) {
	patient, found, err := s.repo.GetByID(ctx, id)
	if err != nil || !found {
		return 0, found, err
	}
	return patient.RemainingSessions(), true, nil
}

// nameIndex maps patient ids to display names for bulk lookups
func nameIndex(patients []entities.Patient) func(id string) string {
	names := make(map[string]string, len(patients))
	for _, p := range patients {
		if _, ok := names[p.ID]; !ok {
			names[p.ID] = p.FullName()
		}
	}
	return func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		return UnknownPatientName
	}
}
