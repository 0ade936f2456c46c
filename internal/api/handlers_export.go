package api

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	content, err := handler.exportService.HoursCSV(user.ID, handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export hours")
	}

	fileName := fmt.Sprintf("molarlog-hours-%s.csv", time.Now().In(handler.location).Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Send(content)
}
