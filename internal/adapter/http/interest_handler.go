package http

import (
	"net/http"
	"strconv"

	"investlink-backend/internal/adapter/middleware"
	ucBusiness "investlink-backend/internal/usecase/business"
	uc "investlink-backend/internal/usecase/interest"

	"github.com/labstack/echo/v4"
)

type InterestHandler struct {
	uc          *uc.Usecase
	businesses  *ucBusiness.Usecase
	development bool
}

func NewInterestHandler(u *uc.Usecase, businesses *ucBusiness.Usecase, development bool) *InterestHandler {
	return &InterestHandler{uc: u, businesses: businesses, development: development}
}

// scope resolves the caller's business numeric id; admins get nil (all).
func (h *InterestHandler) scope(c echo.Context) (*uint64, error) {
	claims, err := middleware.Claims(c)
	if err != nil {
		return nil, err
	}
	if claims.Role == "ADMIN" {
		return nil, nil
	}
	loginID, err := middleware.LoginID(c)
	if err != nil {
		return nil, err
	}
	biz, err := h.businesses.GetByLoginID(c.Request().Context(), loginID)
	if err != nil {
		return nil, err
	}
	return h.businessNumericID(c, biz.BusinessID)
}

func (h *InterestHandler) businessNumericID(c echo.Context, businessPublicID string) (*uint64, error) {
	id, err := h.businesses.NumericID(c.Request().Context(), businessPublicID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

type submitInterestReq struct {
	InvestorName string `json:"investor_name" validate:"required,min=2,max=255"`
	PhoneNumber  string `json:"phone_number"  validate:"required,phone"`
	Email        string `json:"email"         validate:"required,email"`
	Message      string `json:"message"       validate:"max=2000"`
	HasConsent   bool   `json:"has_consent"`
	Source       string `json:"source"        validate:"max=64"`
}

func (h *InterestHandler) Submit(c echo.Context) error {
	var req submitInterestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Submit(c.Request().Context(), c.Param("business_id"), uc.SubmitInput{
		InvestorName: req.InvestorName,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		Message:      req.Message,
		HasConsent:   req.HasConsent,
		Source:       req.Source,
	})
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InterestHandler) List(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	page, limit := pageParams(c, 20)
	in := uc.ListInput{Status: c.QueryParam("status"), Page: page, Limit: limit}
	if v := c.QueryParam("contacted"); v != "" {
		if b, perr := strconv.ParseBool(v); perr == nil {
			in.Contacted = &b
		}
	}
	items, total, err := h.uc.List(c.Request().Context(), scope, in)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return listJSON(c, http.StatusOK, items, page, limit, total)
}

func (h *InterestHandler) Get(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	dto, err := h.uc.Get(c.Request().Context(), c.Param("submission_id"), scope)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}

type updateInterestReq struct {
	Contacted       *bool   `json:"contacted"`
	FollowUpRemarks *string `json:"follow_up_remarks"`
	Status          *string `json:"status" validate:"omitempty,intereststatus"`
	Source          *string `json:"source" validate:"omitempty,max=64"`
}

func (h *InterestHandler) Update(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	var req updateInterestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("submission_id"), scope, uc.UpdateInput{
		Contacted:       req.Contacted,
		FollowUpRemarks: req.FollowUpRemarks,
		Status:          req.Status,
		Source:          req.Source,
	})
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}

type followUpReq struct {
	Remarks          string  `json:"remarks" validate:"required,min=1,max=2000"`
	NextFollowUpDate *string `json:"next_follow_up_date" validate:"omitempty,datetime=2006-01-02"`
}

func (h *InterestHandler) AddFollowUp(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	in, httpErr := h.bindFollowUp(c)
	if httpErr != nil {
		return httpErr
	}
	dto, err := h.uc.AddFollowUp(c.Request().Context(), c.Param("submission_id"), scope, *in)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InterestHandler) UpdateFollowUp(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	followUpID, err := strconv.ParseUint(c.Param("follow_up_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid follow-up id"})
	}
	in, httpErr := h.bindFollowUp(c)
	if httpErr != nil {
		return httpErr
	}
	dto, err := h.uc.UpdateFollowUp(c.Request().Context(), c.Param("submission_id"), followUpID, scope, *in)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InterestHandler) DeleteFollowUp(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	followUpID, err := strconv.ParseUint(c.Param("follow_up_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid follow-up id"})
	}
	if err := h.uc.DeleteFollowUp(c.Request().Context(), c.Param("submission_id"), followUpID, scope); err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *InterestHandler) ListFollowUps(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	items, err := h.uc.ListFollowUps(c.Request().Context(), c.Param("submission_id"), scope)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *InterestHandler) DueToday(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	items, err := h.uc.DueToday(c.Request().Context(), scope)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *InterestHandler) bindFollowUp(c echo.Context) (*uc.FollowUpInput, error) {
	var req followUpReq
	if err := c.Bind(&req); err != nil {
		return nil, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return nil, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := &uc.FollowUpInput{Remarks: req.Remarks}
	if req.NextFollowUpDate != nil {
		t, err := parseDate(*req.NextFollowUpDate)
		if err != nil {
			return nil, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid next_follow_up_date"})
		}
		in.NextFollowUpDate = &t
	}
	return in, nil
}

// ---- lead sources ----

func (h *InterestHandler) mustScope(c echo.Context) (*uint64, error) {
	scope, err := h.scope(c)
	if err != nil {
		return nil, err
	}
	if scope == nil {
		return nil, echo.NewHTTPError(http.StatusForbidden, "business scope required")
	}
	return scope, nil
}

func (h *InterestHandler) ListSources(c echo.Context) error {
	scope, err := h.mustScope(c)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	items, err := h.uc.ListSources(c.Request().Context(), *scope)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, items)
}

type addSourceReq struct {
	Name string `json:"name" validate:"required,min=2,max=64"`
}

func (h *InterestHandler) AddSource(c echo.Context) error {
	scope, err := h.mustScope(c)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	var req addSourceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.AddSource(c.Request().Context(), *scope, req.Name)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *InterestHandler) DeleteSource(c echo.Context) error {
	scope, err := h.mustScope(c)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	raw := c.Param("source_id")
	sourceID, perr := strconv.ParseUint(raw, 10, 64)
	if perr != nil {
		// Non-numeric means a name; the only deletable entries are
		// numeric custom ids, so a default name gets its distinct error.
		return writeDomainError(c, h.uc.DeleteDefaultSource(raw), h.development)
	}
	if err := h.uc.DeleteSource(c.Request().Context(), *scope, sourceID); err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.NoContent(http.StatusNoContent)
}
