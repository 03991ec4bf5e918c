package auth

import (
	"github.com/gofiber/fiber/v2"

	authuc "github.com/Cyndie1416/RetailPOS/internal/usecase/auth"
)

type LoginHandler struct {
	uc *authuc.LoginUsecase
}

func NewLoginHandler(uc *authuc.LoginUsecase) *LoginHandler {
	return &LoginHandler{uc: uc}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *LoginHandler) Handle(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid json")
	}

	out, err := h.uc.Execute(c.Context(), req.Username, req.Password)
	if err != nil {
		switch err {
		case authuc.ErrInvalidCredentials:
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		case authuc.ErrInactiveUser:
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "internal error")
		}
	}
	return c.JSON(out)
}
