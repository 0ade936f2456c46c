package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/molarhq/molarlog/internal/services"
)

func (handler *Handler) GetLogs(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	typeFilter := strings.TrimSpace(c.Query("type"))
	views, err := handler.logService.ListEntries(user.ID, typeFilter)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load log entries")
	}
	return c.JSON(fiber.Map{"logs": views})
}

func (handler *Handler) CreateLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := handler.parseLogEntryInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	entry, err := handler.logService.CreateEntry(user.ID, input, handler.location)
	if err != nil {
		return respondLogError(c, err)
	}

	achievements, err := handler.evaluateAchievements(c, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to evaluate progress")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"log":          entry,
		"achievements": achievements,
	})
}

func (handler *Handler) UpdateLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	logID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid log id")
	}

	input, err := handler.parseLogEntryInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	entry, err := handler.logService.UpdateEntry(user.ID, logID, input, handler.location)
	if err != nil {
		return respondLogError(c, err)
	}

	achievements, err := handler.evaluateAchievements(c, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to evaluate progress")
	}
	return c.JSON(fiber.Map{
		"log":          entry,
		"achievements": achievements,
	})
}

func (handler *Handler) DeleteLog(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	logID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid log id")
	}

	handler.ensureDependencies()
	if err := handler.logService.DeleteEntry(user.ID, logID); err != nil {
		return respondLogError(c, err)
	}
	return apiOK(c)
}

func (handler *Handler) parseLogEntryInput(c *fiber.Ctx) (services.LogEntryInput, error) {
	payload := logPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.LogEntryInput{}, err
	}

	date, err := parseLogDate(payload.Date, handler.location)
	if err != nil {
		return services.LogEntryInput{}, err
	}

	return services.LogEntryInput{
		ClinicID:   payload.ClinicID,
		Date:       date,
		Duration:   payload.Duration,
		Type:       strings.TrimSpace(payload.Type),
		Supervisor: payload.Supervisor,
		Procedures: payload.Procedures,
		Notes:      payload.Notes,
	}, nil
}

// evaluateAchievements recomputes totals after a mutation and returns any
// newly earned milestones, persisting their flags.
func (handler *Handler) evaluateAchievements(c *fiber.Ctx, userID uint) ([]services.Achievement, error) {
	totals, err := handler.progressTracker.TotalsForUser(userID)
	if err != nil {
		return nil, err
	}

	user, err := handler.authService.FindByID(userID)
	if err != nil {
		return nil, err
	}
	achievements, err := handler.achievementService.Evaluate(&user, totals)
	if err != nil {
		return nil, err
	}
	c.Locals(contextUserKey, &user)
	return achievements, nil
}

func respondLogError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrDayCapExceeded):
		return apiError(c, fiber.StatusUnprocessableEntity, "daily hour limit of 24 exceeded")
	case errors.Is(err, services.ErrInvalidActivityType):
		return apiError(c, fiber.StatusBadRequest, "invalid activity type")
	case errors.Is(err, services.ErrInvalidLogDuration):
		return apiError(c, fiber.StatusBadRequest, "invalid duration")
	case errors.Is(err, services.ErrInvalidLogDate):
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	case errors.Is(err, services.ErrLogEntryNotFound):
		return apiError(c, fiber.StatusNotFound, "log entry not found")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save log entry")
	}
}
