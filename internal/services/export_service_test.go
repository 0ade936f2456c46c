package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/molarhq/molarlog/internal/models"
)

func TestHoursCSVHeaderAndRows(t *testing.T) {
	logs := newActivityLogStoreStub()
	clinicID := uint(4)
	danglingID := uint(9)
	logs.entries[1] = models.ActivityLog{
		ID:         1,
		UserID:     10,
		ClinicID:   &clinicID,
		Date:       mustParseExportDay(t, "2024-03-10"),
		Duration:   3.5,
		Type:       models.TypeShadowing,
		Supervisor: "Dr. Osei",
		Procedures: "Cleanings",
		Notes:      "Morning shift",
	}
	logs.entries[2] = models.ActivityLog{
		ID:       2,
		UserID:   10,
		ClinicID: &danglingID,
		Date:     mustParseExportDay(t, "2024-03-09"),
		Duration: 8,
		Type:     models.TypeDentalVolunteering,
	}
	logs.entries[3] = models.ActivityLog{
		ID:       3,
		UserID:   10,
		Date:     mustParseExportDay(t, "2024-03-08"),
		Duration: 2,
		Type:     models.TypeNonDentalVolunteering,
	}
	clinics := &logClinicReaderStub{clinics: []models.Clinic{{ID: 4, UserID: 10, Name: "Bright Smiles"}}}
	service := NewExportService(logs, clinics)

	content, err := service.HoursCSV(10, time.UTC)
	if err != nil {
		t.Fatalf("HoursCSV() unexpected error: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	if err != nil {
		t.Fatalf("parse exported CSV: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d", len(rows))
	}

	header := rows[0]
	expectedHeader := []string{"Date", "Type", "Duration (Hrs)", "Clinic", "Supervisor", "Procedures", "Notes"}
	for index, column := range expectedHeader {
		if header[index] != column {
			t.Fatalf("expected header column %q at %d, got %q", column, index, header[index])
		}
	}

	first := rows[1]
	if first[0] != "2024-03-10" || first[1] != models.TypeShadowing || first[2] != "3.5" {
		t.Fatalf("unexpected first row %#v", first)
	}
	if first[3] != "Bright Smiles" || first[4] != "Dr. Osei" {
		t.Fatalf("expected resolved clinic and supervisor, got %#v", first)
	}
	if rows[2][2] != "8" {
		t.Fatalf("expected whole-hour duration without trailing zeros, got %q", rows[2][2])
	}
	if rows[2][3] != ClinicLabelUnknown {
		t.Fatalf("expected %q for dangling reference, got %q", ClinicLabelUnknown, rows[2][3])
	}
	if rows[3][3] != ClinicLabelNone {
		t.Fatalf("expected %q without a clinic, got %q", ClinicLabelNone, rows[3][3])
	}
}

func TestHoursCSVEmptyCollectionStillHasHeader(t *testing.T) {
	service := NewExportService(newActivityLogStoreStub(), &logClinicReaderStub{})

	content, err := service.HoursCSV(10, time.UTC)
	if err != nil {
		t.Fatalf("HoursCSV() unexpected error: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	if err != nil {
		t.Fatalf("parse exported CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}

func mustParseExportDay(t *testing.T, raw string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return parsed
}
