package http

import (
	"context"
	"net/http"

	uc "investlink-backend/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	uc          *uc.Usecase
	development bool
}

func NewAuthHandler(u *uc.Usecase, development bool) *AuthHandler {
	return &AuthHandler{uc: u, development: development}
}

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

func (h *AuthHandler) AdminLogin(c echo.Context) error {
	return h.login(c, h.uc.AdminLogin)
}

func (h *AuthHandler) BusinessLogin(c echo.Context) error {
	return h.login(c, h.uc.BusinessLogin)
}

func (h *AuthHandler) login(c echo.Context, fn func(ctx context.Context, email, password string) (*uc.TokenDTO, error)) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := fn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}
