package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/molarhq/molarlog/internal/services"
)

func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	const recoveryAttemptsLimit = 8
	const recoveryAttemptsWindow = 15 * time.Minute

	now := time.Now().In(handler.location)
	limiterKey := requestLimiterKey(c)
	if handler.recoveryLimiter.tooManyRecent(limiterKey, now, recoveryAttemptsLimit, recoveryAttemptsWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many recovery attempts")
	}

	input := forgotPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		handler.recoveryLimiter.addFailure(limiterKey, now, recoveryAttemptsWindow)
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	code := services.NormalizeRecoveryCode(input.RecoveryCode)
	if err := services.ValidateRecoveryCodeFormat(code); err != nil {
		handler.recoveryLimiter.addFailure(limiterKey, now, recoveryAttemptsWindow)
		return apiError(c, fiber.StatusBadRequest, "invalid recovery code")
	}

	handler.ensureDependencies()
	user, err := handler.authService.FindUserByRecoveryCode(code)
	if err != nil {
		handler.recoveryLimiter.addFailure(limiterKey, now, recoveryAttemptsWindow)
		return apiError(c, fiber.StatusBadRequest, "invalid recovery code")
	}

	token, err := services.BuildPasswordResetToken(handler.secretKey, user.ID, user.PasswordHash, 30*time.Minute, now)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create reset token")
	}
	handler.recoveryLimiter.reset(limiterKey)

	return c.JSON(fiber.Map{
		"ok":          true,
		"reset_token": token,
	})
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	input := resetPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	input.Token = strings.TrimSpace(input.Token)
	input.Password = strings.TrimSpace(input.Password)
	input.ConfirmPassword = strings.TrimSpace(input.ConfirmPassword)
	if input.Token == "" || input.Password == "" || input.ConfirmPassword == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Password != input.ConfirmPassword {
		return apiError(c, fiber.StatusBadRequest, "password mismatch")
	}
	if err := services.ValidatePasswordStrength(input.Password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "weak password")
	}

	claims, err := services.ParsePasswordResetToken(handler.secretKey, input.Token, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid reset token")
	}

	handler.ensureDependencies()
	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid reset token")
	}
	// A token minted before the last password change is no longer valid.
	if !services.IsPasswordStateFingerprintMatch(claims.PasswordState, user.PasswordHash) {
		return apiError(c, fiber.StatusBadRequest, "invalid reset token")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}
	recoveryCode, recoveryHash, err := services.GenerateRecoveryCodeHash()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recovery code")
	}

	user.PasswordHash = string(passwordHash)
	user.RecoveryCodeHash = recoveryHash
	user.MustChangePassword = false
	if err := handler.authService.SaveUser(&user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to reset password")
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"ok":            true,
		"recovery_code": recoveryCode,
	})
}
