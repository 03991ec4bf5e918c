package customer

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	ledgeruc "github.com/Cyndie1416/RetailPOS/internal/usecase/ledger"
)

type Handler struct {
	uc *ledgeruc.Usecase
}

func New(uc *ledgeruc.Usecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), ledgeruc.ListQuery{
		Search: c.Query("search"),
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
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
	var in ledgeruc.UpsertInput
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

	var in ledgeruc.UpsertInput
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

type entryRequest struct {
	AmountCentavos int64  `json:"amountCentavos"`
	Note           string `json:"note"`
}

func (h *Handler) AddCharge(c *fiber.Ctx) error {
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.AddCharge(c.Context(), c.Params("id"), req.AmountCentavos, req.Note)
	if err != nil {
		return mapErr(err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *Handler) RecordPayment(c *fiber.Ctx) error {
	var req entryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.RecordPayment(c.Context(), c.Params("id"), req.AmountCentavos, req.Note)
	if err != nil {
		return mapErr(err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, ledgeruc.ErrInvalidInput), errors.Is(err, ledgeruc.ErrInvalidAmount):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ledgeruc.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, ledgeruc.ErrPhoneConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
