package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/molarhq/molarlog/internal/models"
	"github.com/molarhq/molarlog/internal/services"
)

type adminUserView struct {
	ID                 uint   `json:"id"`
	Email              string `json:"email"`
	DisplayName        string `json:"display_name"`
	Role               string `json:"role"`
	SubscriptionStatus string `json:"subscription_status"`
}

func (handler *Handler) AdminListUsers(c *fiber.Ctx) error {
	handler.ensureDependencies()
	users, err := handler.repositories.Users.ListAll()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load users")
	}

	views := make([]adminUserView, 0, len(users))
	for _, user := range users {
		views = append(views, adminUserView{
			ID:                 user.ID,
			Email:              user.Email,
			DisplayName:        user.DisplayName,
			Role:               user.Role,
			SubscriptionStatus: user.SubscriptionStatus,
		})
	}
	return c.JSON(fiber.Map{"users": views})
}

func (handler *Handler) AdminChangeRole(c *fiber.Ctx) error {
	actor, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	target, done := handler.loadAdminTarget(c)
	if target == nil {
		return done
	}

	input := adminRoleInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	role := strings.TrimSpace(input.Role)

	if err := services.ValidateRoleChange(actor, target, role); err != nil {
		return respondAdminPolicyError(c, err)
	}

	handler.ensureDependencies()
	if err := handler.repositories.Users.UpdateByID(target.ID, map[string]any{"role": role}); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update role")
	}
	return apiOK(c)
}

func (handler *Handler) AdminChangeSubscription(c *fiber.Ctx) error {
	target, done := handler.loadAdminTarget(c)
	if target == nil {
		return done
	}

	input := adminSubscriptionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	status := strings.TrimSpace(input.Status)

	if err := services.ValidateSubscriptionChange(target, status); err != nil {
		return respondAdminPolicyError(c, err)
	}

	handler.ensureDependencies()
	if err := handler.repositories.Users.UpdateByID(target.ID, map[string]any{"subscription_status": status}); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update subscription")
	}
	return apiOK(c)
}

func (handler *Handler) AdminDeleteUser(c *fiber.Ctx) error {
	actor, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	target, done := handler.loadAdminTarget(c)
	if target == nil {
		return done
	}

	if err := services.ValidateAccountRemoval(actor, target); err != nil {
		return respondAdminPolicyError(c, err)
	}

	handler.ensureDependencies()
	if err := handler.repositories.Users.DeleteAccountAndRelatedData(target.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete user")
	}
	return apiOK(c)
}

func (handler *Handler) loadAdminTarget(c *fiber.Ctx) (*models.User, error) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return nil, apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	handler.ensureDependencies()
	target, err := handler.repositories.Users.FindByID(userID)
	if err != nil {
		return nil, apiError(c, fiber.StatusNotFound, "user not found")
	}
	return &target, nil
}

func respondAdminPolicyError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrAdminPrimaryImmutable):
		return apiError(c, fiber.StatusForbidden, "primary admin cannot be changed")
	case errors.Is(err, services.ErrAdminSelfDemotion):
		return apiError(c, fiber.StatusForbidden, "cannot change own account")
	default:
		return apiError(c, fiber.StatusBadRequest, "invalid change")
	}
}
