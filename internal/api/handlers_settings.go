package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/molarhq/molarlog/internal/services"
)

func (handler *Handler) UpdateDisplayName(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := displayNameInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		return apiError(c, fiber.StatusBadRequest, "display name is required")
	}

	handler.ensureDependencies()
	if err := handler.settingsService.UpdateDisplayName(user.ID, displayName); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}
	return apiOK(c)
}

func (handler *Handler) UpdateTargets(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := targetsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	err := handler.settingsService.SaveTargets(user.ID, services.TargetsUpdate{
		Shadowing: input.Shadowing,
		Dental:    input.Dental,
		NonDental: input.NonDental,
	})
	if err != nil {
		if errors.Is(err, services.ErrSettingsTargetInvalid) {
			return apiError(c, fiber.StatusBadRequest, "targets must be positive")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update targets")
	}
	return apiOK(c)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	input.CurrentPassword = strings.TrimSpace(input.CurrentPassword)
	input.NewPassword = strings.TrimSpace(input.NewPassword)
	input.ConfirmPassword = strings.TrimSpace(input.ConfirmPassword)
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.NewPassword != input.ConfirmPassword {
		return apiError(c, fiber.StatusBadRequest, "password mismatch")
	}
	if err := services.ValidatePasswordStrength(input.NewPassword); err != nil {
		return apiError(c, fiber.StatusBadRequest, "weak password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid current password")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	handler.ensureDependencies()
	if err := handler.settingsService.UpdatePassword(user.ID, string(passwordHash), false); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update password")
	}
	return apiOK(c)
}

func (handler *Handler) RegenerateRecoveryCode(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	recoveryCode, recoveryHash, err := services.GenerateRecoveryCodeHash()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recovery code")
	}

	handler.ensureDependencies()
	if err := handler.settingsService.UpdateRecoveryCodeHash(user.ID, recoveryHash); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update recovery code")
	}
	return c.JSON(fiber.Map{
		"ok":            true,
		"recovery_code": recoveryCode,
	})
}

// FactoryReset wipes the user's clinics and logs and restores default
// targets. The account itself survives.
func (handler *Handler) FactoryReset(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	if err := handler.settingsService.FactoryReset(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to reset data")
	}
	return apiOK(c)
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if services.IsPrimaryAdminUser(user) {
		return apiError(c, fiber.StatusForbidden, "primary admin account cannot be deleted")
	}

	input := deleteAccountInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	if err := handler.settingsService.ValidateDeleteAccountPassword(user.PasswordHash, input.Password); err != nil {
		if errors.Is(err, services.ErrSettingsPasswordMissing) {
			return apiError(c, fiber.StatusBadRequest, "password is required")
		}
		return apiError(c, fiber.StatusUnauthorized, "invalid password")
	}

	if err := handler.settingsService.DeleteAccount(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete account")
	}
	handler.clearAuthCookie(c)
	return apiOK(c)
}
