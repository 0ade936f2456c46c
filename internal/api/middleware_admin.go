package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/molarhq/molarlog/internal/services"
)

// AdminRequired runs after AuthRequired and gates the admin panel routes.
func (handler *Handler) AdminRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || !services.IsAdminUser(user) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
	}
	return c.Next()
}

// SubscriberRequired gates the premium routes: export, backup and restore.
func (handler *Handler) SubscriberRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || !services.IsSubscriberUser(user) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "subscription required"})
	}
	return c.Next()
}
