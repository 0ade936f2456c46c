package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/molarhq/molarlog/internal/models"
)

const BackupFormatVersion = 1

var (
	ErrBackupFormatInvalid = errors.New("invalid backup format")
	ErrBackupExportFailed  = errors.New("backup export failed")
	ErrBackupRestoreFailed = errors.New("backup restore failed")
)

// BackupDocument is the full-snapshot interchange format. Clinics and Logs
// are pointers so a document missing either key is distinguishable from one
// carrying an empty collection.
type BackupDocument struct {
	Version   int                   `json:"version"`
	Timestamp time.Time             `json:"timestamp"`
	Clinics   *[]models.Clinic      `json:"clinics"`
	Logs      *[]models.ActivityLog `json:"logs"`
}

type BackupStore interface {
	ListByUser(userID uint) ([]models.ActivityLog, error)
	ReplaceClinicsAndLogs(userID uint, clinics []models.Clinic, logs []models.ActivityLog) error
}

type BackupClinicReader interface {
	ListByUser(userID uint) ([]models.Clinic, error)
}

type BackupService struct {
	logs    BackupStore
	clinics BackupClinicReader
	feed    *ChangeFeed
}

func NewBackupService(logs BackupStore, clinics BackupClinicReader, feed *ChangeFeed) *BackupService {
	return &BackupService{logs: logs, clinics: clinics, feed: feed}
}

// Export serializes the user's clinics and logs into a versioned snapshot.
func (service *BackupService) Export(userID uint, now time.Time) ([]byte, error) {
	clinics, err := service.clinics.ListByUser(userID)
	if err != nil {
		return nil, ErrBackupExportFailed
	}
	logs, err := service.logs.ListByUser(userID)
	if err != nil {
		return nil, ErrBackupExportFailed
	}

	document := BackupDocument{
		Version:   BackupFormatVersion,
		Timestamp: now.UTC(),
		Clinics:   &clinics,
		Logs:      &logs,
	}
	content, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, ErrBackupExportFailed
	}
	return content, nil
}

// Restore validates the document before touching the store, then replaces
// the user's clinics and logs in a single transaction. A malformed document
// leaves the existing data untouched.
func (service *BackupService) Restore(userID uint, content []byte) error {
	document, err := ParseBackupDocument(content)
	if err != nil {
		return err
	}

	clinics := make([]models.Clinic, 0, len(*document.Clinics))
	for _, clinic := range *document.Clinics {
		clinic.UserID = userID
		clinics = append(clinics, clinic)
	}
	logs := make([]models.ActivityLog, 0, len(*document.Logs))
	for _, entry := range *document.Logs {
		entry.UserID = userID
		logs = append(logs, entry)
	}

	if err := service.logs.ReplaceClinicsAndLogs(userID, clinics, logs); err != nil {
		return ErrBackupRestoreFailed
	}

	if service.feed != nil {
		service.feed.Notify()
	}
	return nil
}

// ParseBackupDocument rejects documents that are not valid JSON, carry an
// unsupported version, or are missing either collection key.
func ParseBackupDocument(content []byte) (BackupDocument, error) {
	var document BackupDocument
	if err := json.Unmarshal(content, &document); err != nil {
		return BackupDocument{}, ErrBackupFormatInvalid
	}
	if document.Version != BackupFormatVersion {
		return BackupDocument{}, ErrBackupFormatInvalid
	}
	if document.Clinics == nil || document.Logs == nil {
		return BackupDocument{}, ErrBackupFormatInvalid
	}
	return document, nil
}
