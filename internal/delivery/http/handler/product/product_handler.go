package product

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Cyndie1416/RetailPOS/internal/delivery/middleware"
	cataloguc "github.com/Cyndie1416/RetailPOS/internal/usecase/catalog"
)

type Handler struct {
	uc *cataloguc.Usecase
}

func New(uc *cataloguc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), cataloguc.ListQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Limit:    c.QueryInt("limit", 50),
		Offset:   c.QueryInt("offset", 0),
	})
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{"items": out})
}

func (h *Handler) Get(c *fiber.Ctx) error {
	out, err := h.uc.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(out)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var in cataloguc.UpsertInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}
	in.ID = nil

	out, err := h.uc.Upsert(c.Context(), in)
	if err != nil {
		return mapErr(err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var in cataloguc.UpsertInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}
	in.ID = &id

	out, err := h.uc.Upsert(c.Context(), in)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(out)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapErr(err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type restockRequest struct {
	Qty int `json:"qty"`
}

func (h *Handler) Restock(c *fiber.Ctx) error {
	var req restockRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.Restock(c.Context(), c.Params("id"), req.Qty, middleware.Operator(c))
	if err != nil {
		return mapErr(err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *Handler) RestockHistory(c *fiber.Ctx) error {
	out, err := h.uc.RestockHistory(c.Context(), c.Params("id"))
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(fiber.Map{"items": out})
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, cataloguc.ErrInvalidInput), errors.Is(err, cataloguc.ErrInvalidQuantity):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, cataloguc.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, cataloguc.ErrInsufficientStock):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
