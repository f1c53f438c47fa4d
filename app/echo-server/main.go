package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpMetrics "mobileHospital/app/echo-server/metrics"
	"mobileHospital/app/echo-server/router"
	"mobileHospital/business/admin"
	"mobileHospital/business/auth"
	"mobileHospital/business/banner"
	"mobileHospital/business/carousel"
	"mobileHospital/business/product"
	"mobileHospital/business/session"
	"mobileHospital/business/shopinfo"
	"mobileHospital/business/store"
	"mobileHospital/business/user"
	"mobileHospital/domain"
	"mobileHospital/internal/middleware"
	"mobileHospital/internal/repository/gemini"
	psqlRepo "mobileHospital/internal/repository/postgres"
	redisRepo "mobileHospital/internal/repository/redis"
	"mobileHospital/internal/rest"
	"mobileHospital/pkg/config"
	"mobileHospital/pkg/database"
	redisdb "mobileHospital/pkg/database/redis"
	"mobileHospital/pkg/logger"
	"mobileHospital/pkg/metrics"
	"mobileHospital/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment, cfg.App.LogFile)
	defer logger.Sync()
	logger.Info("Starting storefront", "name", cfg.App.Name, "version", cfg.App.Version)

	metrics.Init()
	httpMetrics.Init()

	backend, closeBackend, err := openBackend(context.Background(), cfg)
	if err != nil {
		logger.Fatal("Failed to open storage backend", "driver", cfg.Storage.Driver, "error", err)
	}
	defer closeBackend()

	logger.Info("Storage connected successfully", "driver", cfg.Storage.Driver)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Init validate
	validate := utils.NewValidator()
	ids := utils.NewIDGenerator()
	tokens := utils.NewTokenIssuer(cfg.JWT.SecretKey, cfg.JWT.TTL)

	// Init repo
	kv := store.New(backend)
	productRepo := product.NewRepository(ctx, kv, ids, validate)
	bannerRepo := banner.NewRepository(ctx, kv, ids, validate)
	userRepo := user.NewRepository(ctx, kv, ids, validate, domain.DefaultAdmin(cfg.Admin.Name, cfg.Admin.Phone, cfg.Admin.Password))
	shopRepo := shopinfo.NewRepository(ctx, kv)
	sessionRepo := session.NewRepository(ctx, kv)

	descriptions, closeGenerator := newDescriptionGenerator(ctx, cfg)
	defer closeGenerator()

	// Init service
	gate := auth.NewGate(ctx, userRepo, sessionRepo)
	surface := admin.NewSurface(productRepo, bannerRepo, shopRepo, userRepo, gate, descriptions)

	ticker := carousel.NewTicker(cfg.Carousel.Interval, bannerRepo.Len())
	bannerRepo.OnChange(ticker.Reset)
	go ticker.Run(ctx)
	defer ticker.Stop()

	// Init handler
	timeout := cfg.Server.RequestTimeout
	authHandler := rest.NewAuthHandler(gate, tokens, timeout)
	productHandler := rest.NewProductHandler(productRepo, surface, userRepo, timeout)
	bannerHandler := rest.NewBannerHandler(bannerRepo, ticker, surface, userRepo, timeout)
	shopHandler := rest.NewShopHandler(shopRepo, surface, userRepo, timeout)
	userHandler := rest.NewUserHandler(surface, userRepo, timeout)
	healthHandler := rest.NewHealthHandler(kv, cfg.App.Version)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(httpMetrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(tokens)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	router.SetupOpsRoutes(e, healthHandler)
	api := e.Group("/api/v1")
	router.SetupAuthRoutes(api, authHandler)
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetupBannerRoutes(api, bannerHandler, authRequired, adminOnly)
	router.SetupShopRoutes(api, shopHandler, authRequired, adminOnly)
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}

// openBackend connects the durable key-value store selected by STORAGE_DRIVER.
func openBackend(ctx context.Context, cfg *config.Config) (store.Backend, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverRedis:
		client, err := redisdb.OpenKV(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := redisdb.Close(client); err != nil {
				logger.Error("Failed to close redis client", "error", err)
			}
		}
		return redisRepo.NewKVRepository(client, cfg.Redis.KeyPrefix), closeFn, nil

	case config.DriverPostgres, config.DriverSQLite:
		initDB := database.InitSQLite
		if cfg.Storage.Driver == config.DriverPostgres {
			initDB = database.InitPostgres
		}

		db, err := initDB(cfg)
		if err != nil {
			return nil, nil, err
		}

		repo := psqlRepo.NewKVRepository(db)
		if err := repo.Migrate(); err != nil {
			return nil, nil, fmt.Errorf("migrate kv table: %w", err)
		}

		closeFn := func() {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.Close()
			}
			if err != nil {
				logger.Error("Failed to close database", "error", err)
			}
		}
		return repo, closeFn, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func newDescriptionGenerator(ctx context.Context, cfg *config.Config) (admin.DescriptionGenerator, func()) {
	if cfg.Gemini.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, product descriptions use the fallback text")
		return gemini.Static{}, func() {}
	}

	generator, err := gemini.NewGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.Timeout)
	if err != nil {
		logger.Error("Failed to init gemini, using fallback text", "error", err)
		return gemini.Static{}, func() {}
	}

	return generator, func() {
		if err := generator.Close(); err != nil {
			logger.Error("Failed to close gemini client", "error", err)
		}
	}
}
