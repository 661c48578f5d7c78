package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is implemented by every entity stored in a collection slot.
type Record interface {
	GetID() string
	GetUpdatedAt() time.Time
}

// Base carries the identity and audit timestamps shared by all records.
// Field names match the JSON layout the clinic UI has always persisted.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetID returns the record identifier
func (b Base) GetID() string {
	return b.ID
}

// GetUpdatedAt returns the last modification instant
func (b Base) GetUpdatedAt() time.Time {
	return b.UpdatedAt
}

// NewID returns "<unix millis>-<9 random hex chars>". Uniqueness is probabilistic.
func NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}

// NewBase stamps a fresh id and identical created/updated timestamps.
func NewBase(now time.Time) Base {
	now = now.UTC()
	return Base{
		ID:        NewID(now),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
