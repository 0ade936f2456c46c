package services

import (
	"errors"
	"testing"
	"time"

	"github.com/molarhq/molarlog/internal/models"
)

func TestValidateDayCapAcceptsUpToTwentyFourHours(t *testing.T) {
	day := mustParseDayCapDay(t, "2024-03-10")
	logs := []models.ActivityLog{
		{ID: 1, Type: models.TypeShadowing, Duration: 10, Date: day},
	}

	if err := ValidateDayCap(logs, day, 14, 0, time.UTC); err != nil {
		t.Fatalf("expected 10+14 accepted, got %v", err)
	}
	if err := ValidateDayCap(logs, day, 15, 0, time.UTC); !errors.Is(err, ErrDayCapExceeded) {
		t.Fatalf("expected 10+15 rejected with ErrDayCapExceeded, got %v", err)
	}
}

func TestValidateDayCapExactBoundary(t *testing.T) {
	day := mustParseDayCapDay(t, "2024-03-10")
	if err := ValidateDayCap(nil, day, 24, 0, time.UTC); err != nil {
		t.Fatalf("expected exactly 24 hours accepted, got %v", err)
	}
	if err := ValidateDayCap(nil, day, 24.5, 0, time.UTC); !errors.Is(err, ErrDayCapExceeded) {
		t.Fatalf("expected 24.5 hours rejected, got %v", err)
	}
}

func TestValidateDayCapIgnoresOtherDays(t *testing.T) {
	logs := []models.ActivityLog{
		{ID: 1, Type: models.TypeShadowing, Duration: 20, Date: mustParseDayCapDay(t, "2024-03-09")},
	}
	day := mustParseDayCapDay(t, "2024-03-10")

	if err := ValidateDayCap(logs, day, 20, 0, time.UTC); err != nil {
		t.Fatalf("expected other-day hours to not count, got %v", err)
	}
}

func TestValidateDayCapExcludesEditedRow(t *testing.T) {
	day := mustParseDayCapDay(t, "2024-03-10")
	logs := []models.ActivityLog{
		{ID: 1, Type: models.TypeShadowing, Duration: 20, Date: day},
		{ID: 2, Type: models.TypeDentalVolunteering, Duration: 3, Date: day},
	}

	if err := ValidateDayCap(logs, day, 21, 1, time.UTC); err != nil {
		t.Fatalf("expected edited row's prior 20 hours excluded, got %v", err)
	}
	if err := ValidateDayCap(logs, day, 22, 1, time.UTC); !errors.Is(err, ErrDayCapExceeded) {
		t.Fatalf("expected 3+22 rejected on edit, got %v", err)
	}
}

func TestSameDayTotalUsesCalendarDayInLocation(t *testing.T) {
	logs := []models.ActivityLog{
		{ID: 1, Duration: 5, Date: time.Date(2024, time.March, 10, 23, 30, 0, 0, time.UTC)},
		{ID: 2, Duration: 2, Date: time.Date(2024, time.March, 10, 1, 0, 0, 0, time.UTC)},
	}
	day := mustParseDayCapDay(t, "2024-03-10")

	if total := SameDayTotal(logs, day, 0, time.UTC); total != 7 {
		t.Fatalf("expected same-day total 7, got %v", total)
	}
}

func mustParseDayCapDay(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return parsed
}
