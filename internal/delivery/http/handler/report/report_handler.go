package report

import (
	"github.com/gofiber/fiber/v2"

	reportuc "github.com/Cyndie1416/RetailPOS/internal/usecase/report"
)

type Handler struct {
	uc *reportuc.Usecase
}

func New(uc *reportuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(out)
}

func (h *Handler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(fiber.Map{"items": out})
}

func (h *Handler) Expiring(c *fiber.Ctx) error {
	out, err := h.uc.Expiring(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(fiber.Map{"items": out})
}

func (h *Handler) Valuation(c *fiber.Ctx) error {
	out, err := h.uc.StockValuation(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(out)
}

func (h *Handler) RecentSales(c *fiber.Ctx) error {
	out, err := h.uc.RecentSales(c.Context(), c.QueryInt("limit", 10))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(fiber.Map{"items": out})
}
