package entities

import (
	"fmt"
	"time"

	apperrors "github.com/zatekoja/physiodesk/backend/pkg/errors"
)

// WorkingHours is the opening window of one weekday. DayOfWeek follows time.Weekday (0 = Sunday).
type WorkingHours struct {
	DayOfWeek    int    `json:"dayOfWeek"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	IsWorkingDay bool   `json:"isWorkingDay"`
}

// Settings is the clinic-wide singleton configuration
type Settings struct {
	WorkingHours    []WorkingHours `json:"workingHours"`
	SessionDuration int            `json:"sessionDuration"`
	Currency        string         `json:"currency"`
	SessionPrice    float64        `json:"sessionPrice"`
	BreakDuration   int            `json:"breakDuration"`
}

// DefaultSettings is used whenever no settings have been stored. It is recomputed on every call.
func DefaultSettings() Settings {
	return Settings{
		WorkingHours: []WorkingHours{
			{DayOfWeek: 0, StartTime: "09:00", EndTime: "17:00", IsWorkingDay: false},
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", IsWorkingDay: true},
			{DayOfWeek: 2, StartTime: "09:00", EndTime: "18:00", IsWorkingDay: true},
			{DayOfWeek: 3, StartTime: "09:00", EndTime: "18:00", IsWorkingDay: true},
			{DayOfWeek: 4, StartTime: "09:00", EndTime: "18:00", IsWorkingDay: true},
			{DayOfWeek: 5, StartTime: "09:00", EndTime: "18:00", IsWorkingDay: true},
			{DayOfWeek: 6, StartTime: "09:00", EndTime: "14:00", IsWorkingDay: false},
		},
		SessionDuration: 45,
		Currency:        "TRY",
		SessionPrice:    500,
		BreakDuration:   15,
	}
}

// HoursFor returns the working hours entry for a weekday
func (s Settings) HoursFor(day time.Weekday) (WorkingHours, bool) {
	for _, wh := range s.WorkingHours {
		if wh.DayOfWeek == int(day) {
			return wh, true
		}
	}
	return WorkingHours{}, false
}

// Validate checks that every weekday appears exactly once with a sane window
func (s Settings) Validate() error {
	if len(s.WorkingHours) != 7 {
		return apperrors.NewValidationError("workingHours must list all 7 days")
	}
	seen := make(map[int]bool, 7)
	for _, wh := range s.WorkingHours {
		if wh.DayOfWeek < 0 || wh.DayOfWeek > 6 || seen[wh.DayOfWeek] {
			return apperrors.NewValidationError(fmt.Sprintf("invalid or duplicate dayOfWeek %d", wh.DayOfWeek))
		}
		seen[wh.DayOfWeek] = true

		start, err := time.Parse("15:04", wh.StartTime)
		if err != nil {
			return apperrors.NewValidationError("startTime must be HH:mm")
		}
		end, err := time.Parse("15:04", wh.EndTime)
		if err != nil {
			return apperrors.NewValidationError("endTime must be HH:mm")
		}
		if wh.IsWorkingDay && !end.After(start) {
			return apperrors.NewValidationError(fmt.Sprintf("day %d closes before it opens", wh.DayOfWeek))
		}
	}
	if s.SessionDuration <= 0 {
		return apperrors.NewValidationError("sessionDuration must be positive")
	}
	if s.BreakDuration < 0 {
		return apperrors.NewValidationError("breakDuration cannot be negative")
	}
	return nil
}
