package records

import (
	"context"
	"encoding/json"

	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
	"github.com/zatekoja/physiodesk/backend/internal/domain/providers"
	"github.com/zatekoja/physiodesk/backend/internal/domain/repositories"
	apperrors "github.com/zatekoja/physiodesk/backend/pkg/errors"
)

// SettingsAdapter persists the settings singleton as one JSON object
type SettingsAdapter struct {
	store providers.KeyValueStore
	key   string
}

// NewSettingsAdapter creates a settings repository over the slot stored at key
func NewSettingsAdapter(store providers.KeyValueStore, key string) repositories.SettingsRepository {
	return &SettingsAdapter{
		store: store,
		key:   key,
	}
}

// Load returns the stored settings. stored is false when the slot was never written.
func (a *SettingsAdapter) Load(ctx context.Context) (entities.Settings, bool, error) {
	var settings entities.Settings

	raw, err := a.store.Get(ctx, a.key)
	if apperrors.IsNotFound(err) {
		return settings, false, nil
	}
	if err != nil {
		return settings, false, err
	}

	if err := json.Unmarshal(raw, &settings); err != nil {
		return settings, false, apperrors.NewMalformedDataError(a.key, err)
	}
	return settings, true, nil
}

// Save overwrites the singleton
func (a *SettingsAdapter) Save(ctx context.Context, settings entities.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return apperrors.NewInternalError("failed to encode settings", err)
	}
	return a.store.Set(ctx, a.key, raw)
}

// Clear removes the singleton
func (a *SettingsAdapter) Clear(ctx context.Context) error {
	return a.store.Delete(ctx, a.key)
}
