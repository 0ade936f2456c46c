package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/molarhq/molarlog/internal/models"
	"github.com/molarhq/molarlog/internal/services"
)

type categoryProgress struct {
	Total     float64 `json:"total"`
	Target    int     `json:"target"`
	Remaining float64 `json:"remaining"`
	Met       bool    `json:"met"`
}

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	totals, err := handler.progressTracker.TotalsForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load totals")
	}
	counts, err := handler.clinicService.CountsForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load clinics")
	}

	return c.JSON(fiber.Map{
		"totals": totals,
		"progress": fiber.Map{
			"shadowing":  buildCategoryProgress(totals.Shadowing, user.TargetShadowing, user.ShadowingTargetMet),
			"dental":     buildCategoryProgress(totals.Dental, user.TargetDental, user.DentalTargetMet),
			"non_dental": buildCategoryProgress(totals.NonDental, user.TargetNonDental, user.NonDentalTargetMet),
			"combined":   buildCategoryProgress(totals.Grand, user.CombinedTargetHours(), user.CombinedTargetMet),
		},
		"clinics": counts,
	})
}

func (handler *Handler) GetWeeklyHours(c *fiber.Ctx) error {
	return handler.respondHoursSeries(c, services.WeeklyBuckets)
}

func (handler *Handler) GetMonthlyHours(c *fiber.Ctx) error {
	return handler.respondHoursSeries(c, services.MonthlyBuckets)
}

func (handler *Handler) GetFullProgressHours(c *fiber.Ctx) error {
	return handler.respondHoursSeries(c, services.FullProgressBuckets)
}

func (handler *Handler) respondHoursSeries(c *fiber.Ctx, bucketize func([]models.ActivityLog, time.Time, *time.Location) []services.HoursBucket) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	logs, err := handler.logService.FetchAllForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load log entries")
	}

	buckets := bucketize(logs, time.Now(), handler.location)
	return c.JSON(fiber.Map{"buckets": buckets})
}

func buildCategoryProgress(total float64, target int, met bool) categoryProgress {
	remaining := float64(target) - total
	if remaining < 0 {
		remaining = 0
	}
	return categoryProgress{
		Total:     total,
		Target:    target,
		Remaining: remaining,
		Met:       met,
	}
}
