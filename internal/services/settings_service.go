package services

import (
	"errors"
	"strings"

	"github.com/molarhq/molarlog/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrSettingsPasswordMissing = errors.New("settings password missing")
	ErrSettingsPasswordInvalid = errors.New("settings password invalid")
	ErrSettingsTargetInvalid   = errors.New("settings target invalid")
)

type SettingsUserRepository interface {
	FindByID(userID uint) (models.User, error)
	UpdateDisplayName(userID uint, displayName string) error
	UpdateRecoveryCodeHash(userID uint, recoveryHash string) error
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
	UpdateByID(userID uint, updates map[string]any) error
	ClearAllDataAndResetTargets(userID uint) error
	DeleteAccountAndRelatedData(userID uint) error
}

// TargetsUpdate carries the per-category hour goals. The combined goal is
// always derived from these three and never stored.
type TargetsUpdate struct {
	Shadowing int
	Dental    int
	NonDental int
}

type SettingsService struct {
	users SettingsUserRepository
	feed  *ChangeFeed
}

func NewSettingsService(users SettingsUserRepository, feed *ChangeFeed) *SettingsService {
	return &SettingsService{users: users, feed: feed}
}

func (service *SettingsService) LoadSettings(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *SettingsService) UpdateDisplayName(userID uint, displayName string) error {
	return service.users.UpdateDisplayName(userID, displayName)
}

func (service *SettingsService) UpdateRecoveryCodeHash(userID uint, recoveryHash string) error {
	return service.users.UpdateRecoveryCodeHash(userID, recoveryHash)
}

func (service *SettingsService) UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	return service.users.UpdatePassword(userID, passwordHash, mustChangePassword)
}

func (service *SettingsService) ValidateDeleteAccountPassword(passwordHash string, rawPassword string) error {
	password := strings.TrimSpace(rawPassword)
	if password == "" {
		return ErrSettingsPasswordMissing
	}
	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) != nil {
		return ErrSettingsPasswordInvalid
	}
	return nil
}

// SaveTargets rejects non-positive goals. Raising a target does not clear a
// milestone flag that was already earned.
func (service *SettingsService) SaveTargets(userID uint, targets TargetsUpdate) error {
	if targets.Shadowing <= 0 || targets.Dental <= 0 || targets.NonDental <= 0 {
		return ErrSettingsTargetInvalid
	}

	updates := map[string]any{
		"target_shadowing":  targets.Shadowing,
		"target_dental":     targets.Dental,
		"target_non_dental": targets.NonDental,
	}
	if err := service.users.UpdateByID(userID, updates); err != nil {
		return err
	}

	service.notifyChanged()
	return nil
}

// FactoryReset wipes the user's clinics and logs, restores the default
// targets and clears every milestone flag.
func (service *SettingsService) FactoryReset(userID uint) error {
	if err := service.users.ClearAllDataAndResetTargets(userID); err != nil {
		return err
	}
	service.notifyChanged()
	return nil
}

func (service *SettingsService) DeleteAccount(userID uint) error {
	if err := service.users.DeleteAccountAndRelatedData(userID); err != nil {
		return err
	}
	service.notifyChanged()
	return nil
}

func (service *SettingsService) notifyChanged() {
	if service.feed != nil {
		service.feed.Notify()
	}
}
