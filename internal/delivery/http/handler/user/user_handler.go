package user

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	authuc "github.com/Cyndie1416/RetailPOS/internal/usecase/auth"
)

type Handler struct {
	uc *authuc.UserUsecase
}

func New(uc *authuc.UserUsecase) *Handler {
	return &Handler{uc: uc}
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), authuc.ListQuery{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
	})
	if err != nil {
		return mapErr(err)
	}

	items := make([]authuc.User, 0, len(out))
	for _, u := range out {
		items = append(items, u.Sanitized())
	}
	return c.JSON(fiber.Map{"items": items})
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var in authuc.UpsertInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}
	in.ID = nil

	out, err := h.uc.Upsert(c.Context(), in)
	if err != nil {
		return mapErr(err)
	}
	return c.Status(fiber.StatusCreated).JSON(out.Sanitized())
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var in authuc.UpsertInput
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}
	in.ID = &id

	out, err := h.uc.Upsert(c.Context(), in)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(out.Sanitized())
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
	return c.JSON(out.Sanitized())
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, authuc.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, authuc.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, authuc.ErrUsernameConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
