package services

import (
	"context"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
)

// SettingsService serves the clinic settings, falling back to the built-in defaults
// while nothing has been stored.
type SettingsService struct {
	repo repositories.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the stored settings or the defaults. Defaults are not persisted.
func (s *SettingsService) Get(ctx context.Context) (entities.Settings, error) {
	settings, stored, err := s.repo.Load(ctx)
	if err != nil {
		return entities.Settings{}, err
	}
	if !stored {
		return entities.DefaultSettings(), nil
	}
	return settings, nil
}

// Save overwrites the stored settings
func (s *SettingsService) Save(ctx context.Context, settings entities.Settings) error {
	return s.repo.Save(ctx, settings)
}

// Update shallow-merges patch over the current settings (stored or default) and saves the result
func (s *SettingsService) Update(ctx context.Context, patch repositories.Patch) (entities.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return entities.Settings{}, err
	}

	merged, err := repositories.ApplyPatch(current, patch)
	if err != nil {
		return entities.Settings{}, err
	}

	if err := s.repo.Save(ctx, merged); err != nil {
		return entities.Settings{}, err
	}
	return merged, nil
}

// Reset removes the stored settings so the defaults apply again
func (s *SettingsService) Reset(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
