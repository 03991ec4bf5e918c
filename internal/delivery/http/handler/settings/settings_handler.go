package settings

import (
	"github.com/gofiber/fiber/v2"

	settingsuc "github.com/Cyndie1416/RetailPOS/internal/usecase/settings"
)

type Handler struct {
	uc *settingsuc.Usecase
}

func New(uc *settingsuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(out)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	var in settingsuc.Settings
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.Update(c.Context(), in)
	if err != nil {
		if err == settingsuc.ErrInvalidInput {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(out)
}
