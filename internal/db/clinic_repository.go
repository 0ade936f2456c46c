package db

import (
	"github.com/molarhq/molarlog/internal/models"
	"gorm.io/gorm"
)

type ClinicRepository struct {
	database *gorm.DB
}

func NewClinicRepository(database *gorm.DB) *ClinicRepository {
	return &ClinicRepository{database: database}
}

func (repo *ClinicRepository) ListByUser(userID uint) ([]models.Clinic, error) {
	clinics := make([]models.Clinic, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("name ASC, id ASC").Find(&clinics).Error; err != nil {
		return nil, err
	}
	return clinics, nil
}

func (repo *ClinicRepository) FindByIDForUser(clinicID uint, userID uint) (models.Clinic, error) {
	clinic := models.Clinic{}
	if err := repo.database.Where("id = ? AND user_id = ?", clinicID, userID).First(&clinic).Error; err != nil {
		return models.Clinic{}, err
	}
	return clinic, nil
}

func (repo *ClinicRepository) Create(clinic *models.Clinic) error {
	return repo.database.Create(clinic).Error
}

func (repo *ClinicRepository) Save(clinic *models.Clinic) error {
	return repo.database.Save(clinic).Error
}

// Delete removes the clinic row only. Activity logs keep their clinic_id and
// become dangling weak references resolved to a placeholder at read time.
func (repo *ClinicRepository) Delete(clinic *models.Clinic) error {
	return repo.database.Delete(clinic).Error
}
