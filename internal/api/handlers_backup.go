package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/molarhq/molarlog/internal/services"
)

func (handler *Handler) ExportBackup(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	content, err := handler.backupService.Export(user.ID, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create backup")
	}

	fileName := fmt.Sprintf("molarlog-backup-%s.json", time.Now().In(handler.location).Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Send(content)
}

func (handler *Handler) RestoreBackup(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	if err := handler.backupService.Restore(user.ID, c.Body()); err != nil {
		if errors.Is(err, services.ErrBackupFormatInvalid) {
			return apiError(c, fiber.StatusBadRequest, "invalid backup format")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to restore backup")
	}
	return apiOK(c)
}
