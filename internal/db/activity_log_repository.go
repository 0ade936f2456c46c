package db

import (
	"time"

	"github.com/molarhq/molarlog/internal/models"
	"gorm.io/gorm"
)

type ActivityLogRepository struct {
	database *gorm.DB
}

func NewActivityLogRepository(database *gorm.DB) *ActivityLogRepository {
	return &ActivityLogRepository{database: database}
}

func (repo *ActivityLogRepository) ListByUser(userID uint) ([]models.ActivityLog, error) {
	logs := make([]models.ActivityLog, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("date DESC, id DESC").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *ActivityLogRepository) ListByUserAndType(userID uint, activityType string) ([]models.ActivityLog, error) {
	logs := make([]models.ActivityLog, 0)
	if err := repo.database.
		Where("user_id = ? AND type = ?", userID, activityType).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *ActivityLogRepository) ListByUserDayRange(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.ActivityLog, error) {
	logs := make([]models.ActivityLog, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart, dayEnd).
		Order("date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *ActivityLogRepository) FindByIDForUser(logID uint, userID uint) (models.ActivityLog, error) {
	entry := models.ActivityLog{}
	if err := repo.database.Where("id = ? AND user_id = ?", logID, userID).First(&entry).Error; err != nil {
		return models.ActivityLog{}, err
	}
	return entry, nil
}

func (repo *ActivityLogRepository) Create(entry *models.ActivityLog) error {
	return repo.database.Create(entry).Error
}

func (repo *ActivityLogRepository) Save(entry *models.ActivityLog) error {
	return repo.database.Save(entry).Error
}

func (repo *ActivityLogRepository) DeleteByIDForUser(logID uint, userID uint) error {
	return repo.database.Where("id = ? AND user_id = ?", logID, userID).Delete(&models.ActivityLog{}).Error
}

// ReplaceClinicsAndLogs clears both tables for the user and inserts the
// replacement rows in a single transaction, so a failed restore leaves the
// previous data intact. Incoming primary keys are discarded and clinic
// references rewritten to the newly assigned ids; a document's ids can
// therefore never collide with another user's rows. A clinic id with no
// counterpart in the document stays as-is and keeps resolving to the
// "Unknown" placeholder.
func (repo *ActivityLogRepository) ReplaceClinicsAndLogs(userID uint, clinics []models.Clinic, logs []models.ActivityLog) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.ActivityLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Clinic{}).Error; err != nil {
			return err
		}

		assignedClinicIDs := make(map[uint]uint, len(clinics))
		for index := range clinics {
			originalID := clinics[index].ID
			clinics[index].ID = 0
			clinics[index].UserID = userID
			if err := tx.Create(&clinics[index]).Error; err != nil {
				return err
			}
			if originalID != 0 {
				assignedClinicIDs[originalID] = clinics[index].ID
			}
		}

		for index := range logs {
			logs[index].ID = 0
			logs[index].UserID = userID
			if reference := logs[index].ClinicID; reference != nil {
				if assigned, ok := assignedClinicIDs[*reference]; ok {
					remapped := assigned
					logs[index].ClinicID = &remapped
				}
			}
			if err := tx.Create(&logs[index]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
