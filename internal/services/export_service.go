package services

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
	"time"
)

var ErrExportFailed = errors.New("export failed")

// csvHeader is the fixed column order of the hours export.
var csvHeader = []string{"Date", "Type", "Duration (Hrs)", "Clinic", "Supervisor", "Procedures", "Notes"}

type ExportService struct {
	logs    ActivityLogStore
	clinics LogClinicReader
}

func NewExportService(logs ActivityLogStore, clinics LogClinicReader) *ExportService {
	return &ExportService{logs: logs, clinics: clinics}
}

// HoursCSV renders every log entry of the user as CSV, newest first, with
// the weak clinic reference resolved to a display name. An empty collection
// still yields the header row.
func (service *ExportService) HoursCSV(userID uint, location *time.Location) ([]byte, error) {
	logs, err := service.logs.ListByUser(userID)
	if err != nil {
		return nil, ErrExportFailed
	}

	clinics, err := service.clinics.ListByUser(userID)
	if err != nil {
		return nil, ErrExportFailed
	}
	names := make(map[uint]string, len(clinics))
	for _, clinic := range clinics {
		names[clinic.ID] = clinic.Name
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	if err := writer.Write(csvHeader); err != nil {
		return nil, ErrExportFailed
	}
	for _, entry := range logs {
		record := []string{
			DayKey(entry.Date, location),
			entry.Type,
			formatDuration(entry.Duration),
			ResolveClinicLabel(names, entry.ClinicID),
			entry.Supervisor,
			entry.Procedures,
			entry.Notes,
		}
		if err := writer.Write(record); err != nil {
			return nil, ErrExportFailed
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, ErrExportFailed
	}
	return buffer.Bytes(), nil
}

func formatDuration(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
