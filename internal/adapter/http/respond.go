package http

import (
	"errors"
	"net/http"
	"strconv"

	domainAuth "investlink-backend/internal/domain/auth"
	domainBusiness "investlink-backend/internal/domain/business"
	domainInterest "investlink-backend/internal/domain/interest"
	domainOnboarding "investlink-backend/internal/domain/onboarding"

	"investlink-backend/internal/adapter/middleware"

	"github.com/labstack/echo/v4"
)

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type ListResponse struct {
	Items      any        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// pageParams reads the shared page/limit query convention.
func pageParams(c echo.Context, defaultLimit int) (page, limit int) {
	page = 1
	limit = defaultLimit
	if v, err := strconv.Atoi(c.QueryParam("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func listJSON(c echo.Context, status int, items any, page, limit int, total int64) error {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return c.JSON(status, ListResponse{
		Items: items,
		Pagination: Pagination{
			Page: page, Limit: limit, Total: total, TotalPages: totalPages,
		},
	})
}

// writeDomainError maps domain sentinels onto the HTTP taxonomy. The
// development flag controls whether unexpected errors leak details.
func writeDomainError(c echo.Context, err error, development bool) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	if errors.Is(err, middleware.ErrNoClaims) {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	switch {
	case errors.Is(err, domainOnboarding.ErrNotFound),
		errors.Is(err, domainBusiness.ErrNotFound),
		errors.Is(err, domainBusiness.ErrLoginNotFound),
		errors.Is(err, domainBusiness.ErrRemovalNotFound),
		errors.Is(err, domainInterest.ErrNotFound),
		errors.Is(err, domainInterest.ErrFollowUpNotFound),
		errors.Is(err, domainInterest.ErrSourceNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domainOnboarding.ErrEmailActive),
		errors.Is(err, domainBusiness.ErrEmailTaken),
		errors.Is(err, domainBusiness.ErrRegistrationNumTaken),
		errors.Is(err, domainInterest.ErrSourceExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domainAuth.ErrInvalidCredentials),
		errors.Is(err, domainAuth.ErrTokenInvalid):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domainAuth.ErrAccountInactive):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})

	case errors.Is(err, domainOnboarding.ErrAlreadyApproved),
		errors.Is(err, domainOnboarding.ErrInvalidTransition),
		errors.Is(err, domainOnboarding.ErrReasonRequired),
		errors.Is(err, domainOnboarding.ErrTokenInvalid),
		errors.Is(err, domainOnboarding.ErrTokenExpired),
		errors.Is(err, domainOnboarding.ErrTokenUsed),
		errors.Is(err, domainBusiness.ErrAlreadyApproved),
		errors.Is(err, domainBusiness.ErrAlreadyRejected),
		errors.Is(err, domainBusiness.ErrReasonRequired),
		errors.Is(err, domainBusiness.ErrRemovalPending),
		errors.Is(err, domainBusiness.ErrRemovalAlreadyReviewed),
		errors.Is(err, domainInterest.ErrBusinessNotPublished),
		errors.Is(err, domainInterest.ErrConsentRequired),
		errors.Is(err, domainInterest.ErrRemarksRequired),
		errors.Is(err, domainInterest.ErrDefaultSourceLocked):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	if development {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}
