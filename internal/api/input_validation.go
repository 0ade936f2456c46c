package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/molarhq/molarlog/internal/services"
)

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}

	email, password, err := services.NormalizeCredentialsInput(credentials.Email, credentials.Password)
	if err != nil {
		return credentialsInput{}, err
	}
	credentials.Email = email
	credentials.Password = password
	credentials.DisplayName = strings.TrimSpace(credentials.DisplayName)
	credentials.ConfirmPassword = strings.TrimSpace(credentials.ConfirmPassword)
	credentials.RememberMe = credentials.RememberMe || parseBoolValue(c.FormValue("remember_me"))

	return credentials, nil
}

func validateRegistrationCredentials(credentials credentialsInput) string {
	if credentials.ConfirmPassword == "" {
		return "invalid input"
	}
	if credentials.Password != credentials.ConfirmPassword {
		return "password mismatch"
	}
	if err := services.ValidatePasswordStrength(credentials.Password); err != nil {
		return "weak password"
	}
	return ""
}

func parseBoolValue(value string) bool {
	normalized := strings.ToLower(strings.TrimSpace(value))
	return normalized == "1" || normalized == "true" || normalized == "on" || normalized == "yes"
}

func parseLogDate(raw string, location *time.Location) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}, errors.New("date is required")
	}
	parsed, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(raw), location)
	if err != nil {
		return time.Time{}, err
	}
	return services.DateAtLocation(parsed, location), nil
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := c.ParamsInt(name)
	if err != nil || value <= 0 {
		return 0, errors.New("invalid id")
	}
	return uint(value), nil
}
