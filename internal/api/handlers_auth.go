package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/molarhq/molarlog/internal/models"
	"github.com/molarhq/molarlog/internal/services"
)

func (handler *Handler) SetupStatus(c *fiber.Ctx) error {
	handler.ensureDependencies()
	required, err := handler.setupService.RequiresInitialSetup()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check setup status")
	}
	return c.JSON(fiber.Map{"requires_setup": required})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if validationError := validateRegistrationCredentials(credentials); validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	handler.ensureDependencies()
	exists, err := handler.authService.RegistrationEmailExists(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	role, err := handler.authService.RegistrationRole()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	recoveryCode, recoveryHash, err := services.GenerateRecoveryCodeHash()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create recovery code")
	}

	user := models.User{
		Email:            credentials.Email,
		DisplayName:      credentials.DisplayName,
		PasswordHash:     string(passwordHash),
		RecoveryCodeHash: recoveryHash,
		Role:             role,
		TargetShadowing:  models.DefaultTargetShadowing,
		TargetDental:     models.DefaultTargetDental,
		TargetNonDental:  models.DefaultTargetNonDental,
		CreatedAt:        time.Now().In(handler.location),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":            true,
		"role":          user.Role,
		"recovery_code": recoveryCode,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	user, err := handler.authService.FindByNormalizedEmail(credentials.Email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if user.MustChangePassword {
		token, err := services.BuildPasswordResetToken(handler.secretKey, user.ID, user.PasswordHash, 30*time.Minute, time.Now())
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to create reset token")
		}
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":       "password change required",
			"reset_token": token,
		})
	}

	if err := handler.setAuthCookie(c, &user, credentials.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return apiOK(c)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return apiOK(c)
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{
		"id":                  user.ID,
		"email":               user.Email,
		"display_name":        user.DisplayName,
		"role":                user.Role,
		"subscription_status": user.SubscriptionStatus,
		"is_subscriber":       services.IsSubscriberUser(user),
		"target_shadowing":    user.TargetShadowing,
		"target_dental":       user.TargetDental,
		"target_non_dental":   user.TargetNonDental,
		"target_combined":     user.CombinedTargetHours(),
	})
}
