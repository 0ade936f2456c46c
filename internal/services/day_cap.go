package services

import (
	"errors"
	"time"

	"github.com/molarhq/molarlog/internal/models"
)

// MaxHoursPerDay caps the summed duration of all logs sharing one calendar
// day. Exactly 24 is permitted, anything over is rejected.
const MaxHoursPerDay = 24.0

var ErrDayCapExceeded = errors.New("day hour cap exceeded")

// SameDayTotal sums the durations already recorded for the proposed day,
// skipping the row being edited when excludeID is non-zero.
func SameDayTotal(logs []models.ActivityLog, day time.Time, excludeID uint, location *time.Location) float64 {
	dayKey := DayKey(day, location)
	total := 0.0
	for _, entry := range logs {
		if excludeID != 0 && entry.ID == excludeID {
			continue
		}
		if DayKey(entry.Date, location) != dayKey {
			continue
		}
		total += entry.Duration
	}
	return total
}

// ValidateDayCap must run before the store mutation so an over-cap day is
// never persisted.
func ValidateDayCap(logs []models.ActivityLog, day time.Time, proposedDuration float64, excludeID uint, location *time.Location) error {
	existing := SameDayTotal(logs, day, excludeID, location)
	if existing+proposedDuration > MaxHoursPerDay {
		return ErrDayCapExceeded
	}
	return nil
}
