package services

import (
	"errors"
	"strings"

	"github.com/molarhq/molarlog/internal/models"
)

var (
	ErrInvalidClinicName   = errors.New("invalid clinic name")
	ErrInvalidClinicStatus = errors.New("invalid clinic status")
	ErrClinicNotFound      = errors.New("clinic not found")
	ErrClinicSaveFailed    = errors.New("save clinic failed")
	ErrClinicDeleteFailed  = errors.New("delete clinic failed")
)

type ClinicStore interface {
	ListByUser(userID uint) ([]models.Clinic, error)
	FindByIDForUser(clinicID uint, userID uint) (models.Clinic, error)
	Create(clinic *models.Clinic) error
	Save(clinic *models.Clinic) error
	Delete(clinic *models.Clinic) error
}

type ClinicInput struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Phone     string
	Email     string
	Website   string
	Status    string
	Notes     string
}

type ClinicCounts struct {
	Total   int `json:"total"`
	Engaged int `json:"engaged"`
}

type ClinicService struct {
	clinics ClinicStore
	feed    *ChangeFeed
}

func NewClinicService(clinics ClinicStore, feed *ChangeFeed) *ClinicService {
	return &ClinicService{clinics: clinics, feed: feed}
}

func NormalizeClinicInput(input ClinicInput) (ClinicInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return input, ErrInvalidClinicName
	}
	if strings.TrimSpace(input.Status) == "" {
		input.Status = models.ClinicStatusToContact
	}
	if !models.IsValidClinicStatus(input.Status) {
		return input, ErrInvalidClinicStatus
	}
	return input, nil
}

func (service *ClinicService) ListForUser(userID uint) ([]models.Clinic, error) {
	return service.clinics.ListByUser(userID)
}

func (service *ClinicService) CreateClinic(userID uint, input ClinicInput) (models.Clinic, error) {
	normalized, err := NormalizeClinicInput(input)
	if err != nil {
		return models.Clinic{}, err
	}

	clinic := models.Clinic{
		UserID:    userID,
		Name:      normalized.Name,
		Address:   normalized.Address,
		Latitude:  normalized.Latitude,
		Longitude: normalized.Longitude,
		Phone:     normalized.Phone,
		Email:     normalized.Email,
		Website:   normalized.Website,
		Status:    normalized.Status,
		Notes:     normalized.Notes,
	}
	if err := service.clinics.Create(&clinic); err != nil {
		return models.Clinic{}, ErrClinicSaveFailed
	}

	service.notifyChanged()
	return clinic, nil
}

func (service *ClinicService) UpdateClinic(userID uint, clinicID uint, input ClinicInput) (models.Clinic, error) {
	normalized, err := NormalizeClinicInput(input)
	if err != nil {
		return models.Clinic{}, err
	}

	clinic, err := service.clinics.FindByIDForUser(clinicID, userID)
	if err != nil {
		return models.Clinic{}, ErrClinicNotFound
	}

	clinic.Name = normalized.Name
	clinic.Address = normalized.Address
	clinic.Latitude = normalized.Latitude
	clinic.Longitude = normalized.Longitude
	clinic.Phone = normalized.Phone
	clinic.Email = normalized.Email
	clinic.Website = normalized.Website
	clinic.Status = normalized.Status
	clinic.Notes = normalized.Notes
	if err := service.clinics.Save(&clinic); err != nil {
		return models.Clinic{}, ErrClinicSaveFailed
	}

	service.notifyChanged()
	return clinic, nil
}

// DeleteClinic does not cascade to activity logs: entries keep their
// clinic_id and resolve to the "Unknown" placeholder from then on.
func (service *ClinicService) DeleteClinic(userID uint, clinicID uint) error {
	clinic, err := service.clinics.FindByIDForUser(clinicID, userID)
	if err != nil {
		return ErrClinicNotFound
	}
	if err := service.clinics.Delete(&clinic); err != nil {
		return ErrClinicDeleteFailed
	}
	service.notifyChanged()
	return nil
}

func (service *ClinicService) CountsForUser(userID uint) (ClinicCounts, error) {
	clinics, err := service.clinics.ListByUser(userID)
	if err != nil {
		return ClinicCounts{}, err
	}

	counts := ClinicCounts{Total: len(clinics)}
	for _, clinic := range clinics {
		if models.IsEngagedClinicStatus(clinic.Status) {
			counts.Engaged++
		}
	}
	return counts, nil
}

func (service *ClinicService) notifyChanged() {
	if service.feed != nil {
		service.feed.Notify()
	}
}
