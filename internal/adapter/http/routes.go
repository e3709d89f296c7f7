package http

import (
	"github.com/labstack/echo/v4"

	appmw "investlink-backend/internal/adapter/middleware"
	domainAuth "investlink-backend/internal/domain/auth"
)

type Handlers struct {
	Health     *Handler
	Auth       *AuthHandler
	Onboarding *OnboardingHandler
	Business   *BusinessHandler
	Interest   *InterestHandler
	Media      *MediaHandler
}

type Middlewares struct {
	Authenticate echo.MiddlewareFunc
	Idempotency  echo.MiddlewareFunc
}

// RegisterRoutes mounts the full API surface on e.
func RegisterRoutes(e *echo.Echo, h Handlers, m Middlewares, uploadDir string) {
	e.GET("/health", h.Health.Health)
	e.Static("/uploads", uploadDir)

	v1 := e.Group("/api/v1")

	v1.POST("/auth/admin/login", h.Auth.AdminLogin)
	v1.POST("/auth/business/login", h.Auth.BusinessLogin)

	// Public onboarding flow.
	v1.POST("/onboarding", h.Onboarding.Submit, m.Idempotency)
	v1.POST("/onboarding/validate-token", h.Onboarding.ValidateToken)
	v1.POST("/onboarding/register", h.Onboarding.CompleteRegistration, m.Idempotency)

	// Public directory.
	v1.GET("/businesses", h.Business.PublicList)
	v1.GET("/businesses/categories", h.Business.ListCategories)
	v1.GET("/businesses/:business_id", h.Business.PublicGet)
	v1.POST("/businesses/:business_id/interests", h.Interest.Submit, m.Idempotency)

	v1.POST("/media/upload", h.Media.Upload, m.Authenticate)

	adm := v1.Group("/admin", m.Authenticate, appmw.RequireRole(domainAuth.RoleAdmin))
	adm.GET("/onboarding", h.Onboarding.List)
	adm.GET("/onboarding/:request_id", h.Onboarding.Get)
	adm.PUT("/onboarding/:request_id/contact", h.Onboarding.MarkContacted)
	adm.PUT("/onboarding/:request_id/approve", h.Onboarding.Approve)
	adm.PUT("/onboarding/:request_id/reject", h.Onboarding.Reject)

	adm.GET("/businesses", h.Business.AdminList)
	adm.GET("/businesses/:business_id", h.Business.AdminGet)
	adm.PUT("/businesses/:business_id", h.Business.AdminUpdate)
	adm.PUT("/businesses/:business_id/approve", h.Business.Approve)
	adm.PUT("/businesses/:business_id/reject", h.Business.Reject)
	adm.PUT("/businesses/:business_id/active", h.Business.SetActive)

	adm.GET("/removal-requests", h.Business.ListRemovals)
	adm.PUT("/removal-requests/:removal_id", h.Business.ReviewRemoval)

	adm.GET("/interests", h.Interest.List)
	adm.GET("/interests/today", h.Interest.DueToday)
	adm.GET("/interests/:submission_id", h.Interest.Get)

	biz := v1.Group("/business", m.Authenticate, appmw.RequireRole(domainAuth.RoleBusiness))
	biz.GET("/profile", h.Business.Profile)
	biz.PUT("/profile", h.Business.UpdateProfile)
	biz.POST("/removal-request", h.Business.RequestRemoval)

	biz.GET("/interests", h.Interest.List)
	biz.GET("/interests/today", h.Interest.DueToday)
	biz.GET("/interests/:submission_id", h.Interest.Get)
	biz.PUT("/interests/:submission_id", h.Interest.Update)
	biz.GET("/interests/:submission_id/follow-ups", h.Interest.ListFollowUps)
	biz.POST("/interests/:submission_id/follow-ups", h.Interest.AddFollowUp)
	biz.PUT("/interests/:submission_id/follow-ups/:follow_up_id", h.Interest.UpdateFollowUp)
	biz.DELETE("/interests/:submission_id/follow-ups/:follow_up_id", h.Interest.DeleteFollowUp)

	biz.GET("/lead-sources", h.Interest.ListSources)
	biz.POST("/lead-sources", h.Interest.AddSource)
	biz.DELETE("/lead-sources/:source_id", h.Interest.DeleteSource)
}
