package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Cyndie1416/RetailPOS/internal/delivery/middleware"
	saleuc "github.com/Cyndie1416/RetailPOS/internal/usecase/sale"
)

type Handler struct {
	uc *saleuc.Usecase
}

func New(uc *saleuc.Usecase) *Handler {
	return &Handler{uc: uc}
}

type checkoutRequest struct {
	Items []struct {
		ProductID string `json:"productId"`
		Qty       int    `json:"qty"`
	} `json:"items"`
	Method     string  `json:"method"`
	CustomerID *string `json:"customerId"`
}

// Checkout builds a cart from the request and commits it in one call. The
// cart itself never leaves the server.
func (h *Handler) Checkout(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	cart := &saleuc.Cart{}
	for _, it := range req.Items {
		if err := h.uc.AddLine(c.Context(), cart, it.ProductID, it.Qty); err != nil {
			return mapErr(err)
		}
	}

	out, err := h.uc.Commit(c.Context(), cart, saleuc.CommitInput{
		Method:     req.Method,
		Operator:   middleware.Operator(c),
		CustomerID: req.CustomerID,
	})
	if err != nil {
		return mapErr(err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *Handler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), saleuc.ListQuery{
		Limit:  c.QueryInt("limit", 50),
		Offset: c.QueryInt("offset", 0),
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

func mapErr(err error) error {
	switch {
	case errors.Is(err, saleuc.ErrInvalidInput),
		errors.Is(err, saleuc.ErrInvalidMethod),
		errors.Is(err, saleuc.ErrEmptyCart):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, saleuc.ErrProductNotFound), errors.Is(err, saleuc.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, saleuc.ErrOutOfStock),
		errors.Is(err, saleuc.ErrStockChanged),
		errors.Is(err, saleuc.ErrCommitAborted):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
}
