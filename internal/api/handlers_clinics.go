package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/molarhq/molarlog/internal/services"
)

func (handler *Handler) GetClinics(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	clinics, err := handler.clinicService.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load clinics")
	}
	return c.JSON(fiber.Map{"clinics": clinics})
}

func (handler *Handler) CreateClinic(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := clinicPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	clinic, err := handler.clinicService.CreateClinic(user.ID, clinicInputFromPayload(payload))
	if err != nil {
		return respondClinicError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"clinic": clinic})
}

func (handler *Handler) UpdateClinic(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	clinicID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid clinic id")
	}

	payload := clinicPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	clinic, err := handler.clinicService.UpdateClinic(user.ID, clinicID, clinicInputFromPayload(payload))
	if err != nil {
		return respondClinicError(c, err)
	}
	return c.JSON(fiber.Map{"clinic": clinic})
}

func (handler *Handler) DeleteClinic(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	clinicID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid clinic id")
	}

	handler.ensureDependencies()
	if err := handler.clinicService.DeleteClinic(user.ID, clinicID); err != nil {
		return respondClinicError(c, err)
	}
	return apiOK(c)
}

func clinicInputFromPayload(payload clinicPayload) services.ClinicInput {
	return services.ClinicInput{
		Name:      payload.Name,
		Address:   payload.Address,
		Latitude:  payload.Latitude,
		Longitude: payload.Longitude,
		Phone:     payload.Phone,
		Email:     payload.Email,
		Website:   payload.Website,
		Status:    payload.Status,
		Notes:     payload.Notes,
	}
}

func respondClinicError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidClinicName):
		return apiError(c, fiber.StatusBadRequest, "clinic name is required")
	case errors.Is(err, services.ErrInvalidClinicStatus):
		return apiError(c, fiber.StatusBadRequest, "invalid clinic status")
	case errors.Is(err, services.ErrClinicNotFound):
		return apiError(c, fiber.StatusNotFound, "clinic not found")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save clinic")
	}
}
