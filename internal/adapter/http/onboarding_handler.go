package http

import (
	"net/http"

	uc "investlink-backend/internal/usecase/onboarding"

	"github.com/labstack/echo/v4"
)

type OnboardingHandler struct {
	uc          *uc.Usecase
	development bool
}

func NewOnboardingHandler(u *uc.Usecase, development bool) *OnboardingHandler {
	return &OnboardingHandler{uc: u, development: development}
}

type submitOnboardingReq struct {
	BusinessName string `json:"business_name" validate:"required,min=2,max=255"`
	Email        string `json:"email"         validate:"required,email"`
	PhoneNumber  string `json:"phone_number"  validate:"required,phone"`
	Message      string `json:"message"       validate:"max=2000"`
}

func (h *OnboardingHandler) Submit(c echo.Context) error {
	var req submitOnboardingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Submit(c.Request().Context(), uc.SubmitInput{
		BusinessName: req.BusinessName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Message:      req.Message,
	})
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *OnboardingHandler) List(c echo.Context) error {
	page, limit := pageParams(c, 20)
	items, total, err := h.uc.List(c.Request().Context(), uc.ListInput{
		Status: c.QueryParam("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return listJSON(c, http.StatusOK, items, page, limit, total)
}

func (h *OnboardingHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *OnboardingHandler) MarkContacted(c echo.Context) error {
	dto, err := h.uc.MarkContacted(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *OnboardingHandler) Approve(c echo.Context) error {
	dto, err := h.uc.Approve(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}

type rejectOnboardingReq struct {
	Reason string `json:"reason" validate:"required,min=3,max=2000"`
}

func (h *OnboardingHandler) Reject(c echo.Context) error {
	var req rejectOnboardingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("request_id"), req.Reason)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}

type validateTokenReq struct {
	Token string `json:"token" validate:"required,len=64,hexadecimal"`
}

func (h *OnboardingHandler) ValidateToken(c echo.Context) error {
	var req validateTokenReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.ValidateToken(c.Request().Context(), req.Token)
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusOK, dto)
}

type registerReq struct {
	Token              string  `json:"token"               validate:"required,len=64,hexadecimal"`
	Password           string  `json:"password"            validate:"required,min=8,max=72"`
	Name               string  `json:"name"                validate:"required,min=2,max=255"`
	RegistrationNumber string  `json:"registration_number" validate:"required,min=3,max=64"`
	Category           string  `json:"category"            validate:"required,min=2,max=128"`
	Description        string  `json:"description"         validate:"max=5000"`
	Website            string  `json:"website"             validate:"omitempty,url"`
	Address            string  `json:"address"             validate:"max=255"`
	City               string  `json:"city"                validate:"max=128"`
	FoundedYear        int     `json:"founded_year"        validate:"omitempty,gte=1800,lte=2100"`
	EmployeeCount      int     `json:"employee_count"      validate:"omitempty,gte=0"`
	AnnualRevenue      float64 `json:"annual_revenue"      validate:"omitempty,gte=0"`
	FundingSought      float64 `json:"funding_sought"      validate:"omitempty,gte=0"`
	PhoneNumber        string  `json:"phone_number"        validate:"omitempty,phone"`
	ContactEmail       string  `json:"contact_email"       validate:"omitempty,email"`
}

func (h *OnboardingHandler) CompleteRegistration(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.CompleteRegistration(c.Request().Context(), uc.RegisterInput(req))
	if err != nil {
		return writeDomainError(c, err, h.development)
	}
	return c.JSON(http.StatusCreated, dto)
}
