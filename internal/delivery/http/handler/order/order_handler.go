package order

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	orderuc "github.com/Cyndie1416/RetailPOS/internal/usecase/order"
)

type Handler struct {
	uc *orderuc.Usecase
}

func New(uc *orderuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

// Create builds an auto-order for the supplier's low-stock products.
func (h *Handler) Create(c *fiber.Ctx) error {
	out, err := h.uc.CreateForSupplier(c.Context(), c.Params("id"))
	if err != nil {
		return mapErr(err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), orderuc.ListQuery{
		SupplierID: c.Query("supplierId"),
		Limit:      c.QueryInt("limit", 50),
		Offset:     c.QueryInt("offset", 0),
	})
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{"items": out})
}

func (h *Handler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(out)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) SetStatus(c *fiber.Ctx) error {
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.SetStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(out)
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, orderuc.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, orderuc.ErrNotFound), errors.Is(err, orderuc.ErrSupplierNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, orderuc.ErrNothingToOrder):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
