package backup

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Cyndie1416/RetailPOS/internal/snapshot"
)

// Handler exposes full-state export and import. Import replaces everything;
// it is the restore half of the original backup workflow.
type Handler struct {
	svc *snapshot.Service
}

func New(svc *snapshot.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Export(c *fiber.Ctx) error {
	snap, err := h.svc.Export(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(snap)
}

func (h *Handler) Import(c *fiber.Ctx) error {
	var snap snapshot.Snapshot
	if err := c.BodyParser(&snap); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	if err := h.svc.Import(c.Context(), &snap); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "internal error")
	}
	return c.JSON(fiber.Map{"ok": true})
}
