// Package dates holds the calendar helpers used by the schedule and dashboard views.
// Weeks start on Monday and all human-readable output uses the clinic's fixed Turkish locale.
package dates

import (
	"time"

	"github.com/goodsign/monday"
)

// Layouts shared with the stored records.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
	LongLayout = "02 January 2006"
)

// Locale is the single display locale; it is not configurable per call.
const Locale = monday.LocaleTrTR

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays moves t by n calendar days, keeping wall-clock time across DST changes.
func AddDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// StartOfWeek returns midnight of the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return AddDays(StartOfDay(t), -offset)
}

// EndOfWeek returns the last instant of the Sunday on or after t.
func EndOfWeek(t time.Time) time.Time {
	return AddDays(StartOfWeek(t), 7).Add(-time.Nanosecond)
}

// WeekDates returns the seven midnights Monday..Sunday of the week containing t.
func WeekDates(t time.Time) []time.Time {
	start := StartOfWeek(t)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = AddDays(start, i)
	}
	return days
}

// IsDateInWeekOf reports whether t falls within [Monday 00:00, Sunday end] of ref's week.
func IsDateInWeekOf(t, ref time.Time) bool {
	start := StartOfWeek(ref)
	end := EndOfWeek(ref)
	t = t.In(ref.Location())
	return !t.Before(start) && !t.After(end)
}

// IsDateInCurrentWeek reports whether t falls within the current calendar week.
func IsDateInCurrentWeek(t time.Time) bool {
	return IsDateInWeekOf(t, time.Now())
}

// ParseDate parses a stored YYYY-MM-DD value as local midnight.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, value, time.Local)
}

// FormatISODate renders t as YYYY-MM-DD.
func FormatISODate(t time.Time) string {
	return t.Format(DateLayout)
}

// CurrentDate returns today's date as YYYY-MM-DD.
func CurrentDate() string {
	return FormatISODate(time.Now())
}

// FormatDate renders t with a Go layout, translating day and month names.
func FormatDate(t time.Time, layout string) string {
	return monday.Format(t, layout, Locale)
}

// FormatLong renders t as e.g. "12 Haziran 2024".
func FormatLong(t time.Time) string {
	return FormatDate(t, LongLayout)
}

// DayName returns the localized weekday name.
func DayName(t time.Time) string {
	return FormatDate(t, "Monday")
}

// MonthName returns the localized month name.
func MonthName(t time.Time) string {
	return FormatDate(t, "January")
}
