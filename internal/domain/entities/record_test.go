package entities_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zatekoja/physiodesk/backend/internal/domain/entities"
)

func TestNewID(t *testing.T) {
	now := time.UnixMilli(1718182800000)

	id := entities.NewID(now)
	assert.Regexp(t, regexp.MustCompile(`^1718182800000-[0-9a-f]{9}$`), id)
	assert.NotEqual(t, id, entities.NewID(now))
}

func TestNewBase(t *testing.T) {
	now := time.Date(2024, 6, 12, 9, 0, 0, 0, time.FixedZone("TRT", 3*60*60))

	base := entities.NewBase(now)
	assert.NotEmpty(t, base.ID)
	assert.Equal(t, base.CreatedAt, base.UpdatedAt)
	assert.True(t, base.CreatedAt.Equal(now))
	assert.Equal(t, time.UTC, base.CreatedAt.Location())
	assert.Equal(t, base.ID, base.GetID())
	assert.Equal(t, base.UpdatedAt, base.GetUpdatedAt())
}

func TestPatient_Helpers(t *testing.T) {
	p := entities.Patient{FirstName: "Ayşe", LastName: "Yılmaz", TotalSessions: 8, CompletedSessions: 10}

	assert.Equal(t, "Ayşe Yılmaz", p.FullName())
	assert.Equal(t, -2, p.RemainingSessions(), "completed sessions are never capped")
}
