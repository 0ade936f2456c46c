package services

import (
	"errors"
	"time"

	"github.com/molarhq/molarlog/internal/models"
)

const (
	// Placeholder labels for the weak clinic reference: "Unknown" when the
	// referenced clinic no longer exists, "N/A" when no clinic was set.
	ClinicLabelUnknown = "Unknown"
	ClinicLabelNone    = "N/A"
)

var (
	ErrLogEntryLoadFailed   = errors.New("load log entry failed")
	ErrLogEntryCreateFailed = errors.New("create log entry failed")
	ErrLogEntryUpdateFailed = errors.New("update log entry failed")
	ErrLogEntryDeleteFailed = errors.New("delete log entry failed")
	ErrLogEntryNotFound     = errors.New("log entry not found")
)

type ActivityLogStore interface {
	ListByUser(userID uint) ([]models.ActivityLog, error)
	ListByUserAndType(userID uint, activityType string) ([]models.ActivityLog, error)
	FindByIDForUser(logID uint, userID uint) (models.ActivityLog, error)
	Create(entry *models.ActivityLog) error
	Save(entry *models.ActivityLog) error
	DeleteByIDForUser(logID uint, userID uint) error
}

type LogClinicReader interface {
	ListByUser(userID uint) ([]models.Clinic, error)
}

// LogView is an ActivityLog with its weak clinic reference resolved to a
// display name.
type LogView struct {
	models.ActivityLog
	ClinicName string `json:"clinic_name"`
}

type LogService struct {
	logs    ActivityLogStore
	clinics LogClinicReader
	feed    *ChangeFeed
}

func NewLogService(logs ActivityLogStore, clinics LogClinicReader, feed *ChangeFeed) *LogService {
	return &LogService{logs: logs, clinics: clinics, feed: feed}
}

func (service *LogService) FetchAllForUser(userID uint) ([]models.ActivityLog, error) {
	return service.logs.ListByUser(userID)
}

func (service *LogService) ListEntries(userID uint, typeFilter string) ([]LogView, error) {
	var logs []models.ActivityLog
	var err error
	if typeFilter == "" {
		logs, err = service.logs.ListByUser(userID)
	} else {
		logs, err = service.logs.ListByUserAndType(userID, typeFilter)
	}
	if err != nil {
		return nil, err
	}

	names, err := service.ClinicNamesForUser(userID)
	if err != nil {
		return nil, err
	}

	views := make([]LogView, 0, len(logs))
	for _, entry := range logs {
		views = append(views, LogView{
			ActivityLog: entry,
			ClinicName:  ResolveClinicLabel(names, entry.ClinicID),
		})
	}
	return views, nil
}

func (service *LogService) ClinicNamesForUser(userID uint) (map[uint]string, error) {
	clinics, err := service.clinics.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(clinics))
	for _, clinic := range clinics {
		names[clinic.ID] = clinic.Name
	}
	return names, nil
}

// CreateEntry validates the day cap against the existing collection before
// any store mutation, so an over-cap day is never persisted.
func (service *LogService) CreateEntry(userID uint, input LogEntryInput, location *time.Location) (models.ActivityLog, error) {
	normalized, err := NormalizeLogEntryInput(input)
	if err != nil {
		return models.ActivityLog{}, err
	}

	existing, err := service.logs.ListByUser(userID)
	if err != nil {
		return models.ActivityLog{}, ErrLogEntryLoadFailed
	}
	if err := ValidateDayCap(existing, normalized.Date, normalized.Duration, 0, location); err != nil {
		return models.ActivityLog{}, err
	}

	entry := models.ActivityLog{
		UserID:         userID,
		ClinicID:       normalized.ClinicID,
		Date:           DateAtLocation(normalized.Date, location),
		Duration:       normalized.Duration,
		Type:           normalized.Type,
		Supervisor:     normalized.Supervisor,
		Procedures:     normalized.Procedures,
		Notes:          normalized.Notes,
		AttachmentName: normalized.AttachmentName,
		Attachment:     normalized.Attachment,
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.ActivityLog{}, ErrLogEntryCreateFailed
	}

	service.notifyChanged()
	return entry, nil
}

// UpdateEntry re-checks the day cap with the edited row's own prior
// contribution excluded from the same-day total.
func (service *LogService) UpdateEntry(userID uint, logID uint, input LogEntryInput, location *time.Location) (models.ActivityLog, error) {
	normalized, err := NormalizeLogEntryInput(input)
	if err != nil {
		return models.ActivityLog{}, err
	}

	entry, err := service.logs.FindByIDForUser(logID, userID)
	if err != nil {
		return models.ActivityLog{}, ErrLogEntryNotFound
	}

	existing, err := service.logs.ListByUser(userID)
	if err != nil {
		return models.ActivityLog{}, ErrLogEntryLoadFailed
	}
	if err := ValidateDayCap(existing, normalized.Date, normalized.Duration, entry.ID, location); err != nil {
		return models.ActivityLog{}, err
	}

	entry.ClinicID = normalized.ClinicID
	entry.Date = DateAtLocation(normalized.Date, location)
	entry.Duration = normalized.Duration
	entry.Type = normalized.Type
	entry.Supervisor = normalized.Supervisor
	entry.Procedures = normalized.Procedures
	entry.Notes = normalized.Notes
	if normalized.AttachmentName != "" {
		entry.AttachmentName = normalized.AttachmentName
		entry.Attachment = normalized.Attachment
	}
	if err := service.logs.Save(&entry); err != nil {
		return models.ActivityLog{}, ErrLogEntryUpdateFailed
	}

	service.notifyChanged()
	return entry, nil
}

func (service *LogService) DeleteEntry(userID uint, logID uint) error {
	if _, err := service.logs.FindByIDForUser(logID, userID); err != nil {
		return ErrLogEntryNotFound
	}
	if err := service.logs.DeleteByIDForUser(logID, userID); err != nil {
		return ErrLogEntryDeleteFailed
	}
	service.notifyChanged()
	return nil
}

func (service *LogService) notifyChanged() {
	if service.feed != nil {
		service.feed.Notify()
	}
}

// ResolveClinicLabel resolves the nullable weak clinic reference for
// display. Every read path goes through this so a deleted clinic never
// surfaces as an error.
func ResolveClinicLabel(names map[uint]string, clinicID *uint) string {
	if clinicID == nil {
		return ClinicLabelNone
	}
	if name, ok := names[*clinicID]; ok {
		return name
	}
	return ClinicLabelUnknown
}
