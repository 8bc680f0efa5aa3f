package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/inventorypro/inventory-system/docs"
	"github.com/inventorypro/inventory-system/internal/api"
	"github.com/inventorypro/inventory-system/internal/core/service"
	"github.com/inventorypro/inventory-system/internal/infrastructure/config"
	mongodb "github.com/inventorypro/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/inventorypro/inventory-system/internal/infrastructure/db/redis"
	"github.com/inventorypro/inventory-system/internal/infrastructure/email"
	"github.com/inventorypro/inventory-system/internal/infrastructure/queue"
	"github.com/inventorypro/inventory-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Inventory System API
// @version      1.0
// @description  Inventory management backend: items, suppliers, analytics, stock alerts, and OTP-gated authentication.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	itemRepo := mongodb.NewItemRepository(db)
	supplierRepo := mongodb.NewSupplierRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := itemRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("item index creation failed")
	}

	// --- Outbound mail ---
	mailer := email.NewClient(email.Config{
		BaseURL:         cfg.Email.BaseURL,
		ServiceID:       cfg.Email.ServiceID,
		CodeTemplateID:  cfg.Email.CodeTemplateID,
		AlertTemplateID: cfg.Email.AlertTemplateID,
		PublicKey:       cfg.Email.PublicKey,
		AppName:         cfg.AppName,
		AlertsEmail:     cfg.Email.AlertsEmail,
	})

	// --- Core services ---
	challengeStore := redisdb.NewChallengeStore(rdb)
	otpService := service.NewOTPService(challengeStore, cfg.OTP.TTL)
	cooldown := redisdb.NewCooldownGuard(rdb, cfg.OTP.ResendCooldown)

	authService := service.NewAuthService(userRepo, otpService, mailer, cooldown, service.AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		OTPEnabled: cfg.OTP.Enabled,
		OTPTTL:     cfg.OTP.TTL,
	}, log)

	alertService := service.NewAlertService(itemRepo, redisdb.NewAlertDeduper(rdb), mailer, log)

	dispatcher := queue.NewDispatcher(0, alertService, log)
	dispatcher.Start(ctx)

	itemService := service.NewItemService(itemRepo, dispatcher, log)
	supplierService := service.NewSupplierService(supplierRepo, log)
	analyticsService := service.NewAnalyticsService(itemRepo, supplierRepo, categoryRepo)

	// --- HTTP ---
	e := api.NewRouter(api.RouterDeps{
		DB:               db,
		Redis:            rdb,
		JWTSecret:        cfg.JWTSecret,
		Logger:           log,
		AuthService:      authService,
		ItemService:      itemService,
		SupplierService:  supplierService,
		CategoryRepo:     categoryRepo,
		AnalyticsService: analyticsService,
		AlertService:     alertService,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}
