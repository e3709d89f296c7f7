package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "investlink-backend/internal/adapter/http"
	appmw "investlink-backend/internal/adapter/middleware"
	"investlink-backend/internal/adapter/repository/mysql"
	"investlink-backend/internal/config"
	domainAuth "investlink-backend/internal/domain/auth"
	domainBusiness "investlink-backend/internal/domain/business"
	domainInterest "investlink-backend/internal/domain/interest"
	domainOnboarding "investlink-backend/internal/domain/onboarding"
	"investlink-backend/internal/infrastructure/cache"
	"investlink-backend/internal/infrastructure/db"
	"investlink-backend/internal/infrastructure/logger"
	"investlink-backend/internal/infrastructure/mail"
	ucAuth "investlink-backend/internal/usecase/auth"
	ucBusiness "investlink-backend/internal/usecase/business"
	ucInterest "investlink-backend/internal/usecase/interest"
	ucOnboarding "investlink-backend/internal/usecase/onboarding"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logLevel := "info"
	if cfg.IsDevelopment() {
		logLevel = "debug"
	}
	log := logger.New(logLevel, cfg.IsDevelopment())
	defer log.Sync() //nolint:errcheck

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal("mysql connect failed", zap.Error(err))
	}
	if err := gdb.AutoMigrate(
		&domainOnboarding.Request{},
		&domainBusiness.Login{},
		&domainBusiness.Category{},
		&domainBusiness.Business{},
		&domainBusiness.RemovalRequest{},
		&domainInterest.Submission{},
		&domainInterest.FollowUp{},
		&domainInterest.LeadSource{},
		&domainAuth.AdminUser{},
	); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal("redis connect failed", zap.Error(err))
	}

	var mailer mail.Mailer = mail.NewLogMailer(log)
	if cfg.MailEnabled {
		m, err := mail.NewSESMailer(context.Background(), cfg.MailRegion, cfg.MailSender)
		if err != nil {
			log.Fatal("ses init failed", zap.Error(err))
		}
		mailer = m
	}

	onboardingRepo := mysql.NewOnboardingRepository(gdb)
	businessRepo := mysql.NewBusinessRepository(gdb)
	loginRepo := mysql.NewLoginRepository(gdb)
	categoryRepo := mysql.NewCategoryRepository(gdb)
	removalRepo := mysql.NewRemovalRepository(gdb)
	submissionRepo := mysql.NewSubmissionRepository(gdb)
	followUpRepo := mysql.NewFollowUpRepository(gdb)
	sourceRepo := mysql.NewLeadSourceRepository(gdb)
	adminRepo := mysql.NewAdminRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	tokenTTL := time.Duration(cfg.TokenTTLHrs) * time.Hour
	jwtTTL := time.Duration(cfg.JWTTTLHours) * time.Hour

	onboardingUC := ucOnboarding.NewUsecase(onboardingRepo, unit, mailer, log, tokenTTL, cfg.BaseURL)
	businessUC := ucBusiness.NewUsecase(businessRepo, loginRepo, categoryRepo, removalRepo, unit, mailer, log)
	interestUC := ucInterest.NewUsecase(submissionRepo, followUpRepo, sourceRepo, businessRepo, loginRepo, unit, mailer, log)
	authUC := ucAuth.NewUsecase(adminRepo, loginRepo, cfg.JWTSecret, jwtTTL)

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := authUC.SeedAdmin(context.Background(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatal("admin seed failed", zap.Error(err))
		}
	}

	dev := cfg.IsDevelopment()
	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	httpadp.RegisterRoutes(e, httpadp.Handlers{
		Health:     httpadp.NewHandler(),
		Auth:       httpadp.NewAuthHandler(authUC, dev),
		Onboarding: httpadp.NewOnboardingHandler(onboardingUC, dev),
		Business:   httpadp.NewBusinessHandler(businessUC, dev),
		Interest:   httpadp.NewInterestHandler(interestUC, businessUC, dev),
		Media:      httpadp.NewMediaHandler(cfg.UploadDir),
	}, httpadp.Middlewares{
		Authenticate: appmw.Authenticate(authUC),
		Idempotency:  appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log),
	}, cfg.UploadDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.AppPort
		log.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
	_ = rdb.Close()
}
