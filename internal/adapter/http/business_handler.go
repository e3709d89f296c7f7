package http

import (
	"net/http"
	"strconv"

	"investlink-backend/internal/adapter/middleware"
	uc "investlink-backend/internal/usecase/business"

	"github.com/labstack/echo/v4"
)

type BusinessHandler struct {
	uc          *uc.Usecase
	development bool
}

func NewBusinessHandler(u *uc.Usecase, development bool) *BusinessHandler {
	return &BusinessHandler{uc: u, development: development}
}

func (h *BusinessHandler) listInput(c echo.Context, defaultLimit int) (uc.ListInput, int, int) {
	page, limit := pageParams(c, defaultLimit)
	in := uc.ListInput{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	}
	if v := c.QueryParam("is_active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			in.IsActive = &b
		}
	}
	if v := c.QueryParam("category_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err == nil {
			in.CategoryID = &n
		}
	}
	return in, page, limit
}

// ---- public directory ----

func (h *BusinessHandler) PublicList(c echo.Context) error {
	in, page, limit := h.listInput(c, 12)
	in.Status = "" // the usecase pins approved+active
	items, total, err := h.uc.PublicList(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return listJSON(c, http.StatusOK, items, page, limit, total)
}

func (h *BusinessHandler) PublicGet(c echo.Context) error {
	dto, err := h.uc.PublicGet(c.Request().Context(), c.Param("business_id"))
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BusinessHandler) ListCategories(c echo.Context) error {
	items, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, items)
}

// ---- admin ----

func (h *BusinessHandler) AdminList(c echo.Context) error {
	in, page, limit := h.listInput(c, 20)
	items, total, err := h.uc.AdminList(c.Request().Context(), in)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return listJSON(c, http.StatusOK, items, page, limit, total)
}

func (h *BusinessHandler) AdminGet(c echo.Context) error {
	dto, err := h.uc.AdminGet(c.Request().Context(), c.Param("business_id"))
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BusinessHandler) Approve(c echo.Context) error {
	dto, err := h.uc.Approve(c.Request().Context(), c.Param("business_id"))
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}

type rejectBusinessReq struct {
	Reason string `json:"reason" validate:"required,min=3,max=2000"`
}

func (h *BusinessHandler) Reject(c echo.Context) error {
	var req rejectBusinessReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("business_id"), req.Reason)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}

type setActiveReq struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

func (h *BusinessHandler) SetActive(c echo.Context) error {
	var req setActiveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.SetActive(c.Request().Context(), c.Param("business_id"), *req.IsActive)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BusinessHandler) AdminUpdate(c echo.Context) error {
	var req uc.UpdateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("business_id"), req)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BusinessHandler) ListRemovals(c echo.Context) error {
	page, limit := pageParams(c, 20)
	items, total, err := h.uc.ListRemovals(c.Request().Context(), c.QueryParam("status"), page, limit)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return listJSON(c, http.StatusOK, items, page, limit, total)
}

type reviewRemovalReq struct {
	Approve *bool `json:"approve" validate:"required"`
}

func (h *BusinessHandler) ReviewRemoval(c echo.Context) error {
	var req reviewRemovalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.ReviewRemoval(c.Request().Context(), c.Param("removal_id"), *req.Approve)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}

// ---- business self-service ----

func (h *BusinessHandler) Profile(c echo.Context) error {
	loginID, err := middleware.LoginID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	dto, err := h.uc.GetByLoginID(c.Request().Context(), loginID)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BusinessHandler) UpdateProfile(c echo.Context) error {
	loginID, err := middleware.LoginID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	current, err := h.uc.GetByLoginID(c.Request().Context(), loginID)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	var req uc.UpdateInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Update(c.Request().Context(), current.BusinessID, req)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}

type removalReq struct {
	Reason *string `json:"reason"`
}

func (h *BusinessHandler) RequestRemoval(c echo.Context) error {
	loginID, err := middleware.LoginID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}
	current, err := h.uc.GetByLoginID(c.Request().Context(), loginID)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	var req removalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.RequestRemoval(c.Request().Context(), current.BusinessID, req.Reason)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusCreated, dto)
}
