package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/hostbridge/backend/internal/application/catalog"
	"github.com/hostbridge/backend/internal/application/hostbridge"
	identityapp "github.com/hostbridge/backend/internal/application/identity"
	"github.com/hostbridge/backend/internal/domain/catalog"
	"github.com/hostbridge/backend/internal/domain/hostsession"
	"github.com/hostbridge/backend/internal/domain/identity"
	"github.com/hostbridge/backend/internal/infrastructure/auth"
	"github.com/hostbridge/backend/internal/infrastructure/config"
	"github.com/hostbridge/backend/internal/infrastructure/hostapi"
	"github.com/hostbridge/backend/internal/infrastructure/logger"
	"github.com/hostbridge/backend/internal/infrastructure/persistence"
	"github.com/hostbridge/backend/internal/interfaces/http/handler"
	"github.com/hostbridge/backend/internal/interfaces/http/middleware"
	"github.com/hostbridge/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync(log) }()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	if err := db.DB.AutoMigrate(
		&identity.User{},
		&catalog.Product{},
		&catalog.Brand{},
		&catalog.Category{},
		&hostsession.Session{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	brandRepo := persistence.NewGormBrandRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	sessionRepo := persistence.NewGormHostSessionRepository(db.DB)

	// Initialize the gateway to the external host
	tokens := hostbridge.NewSessionTokenSource(sessionRepo)
	gateway, err := hostapi.NewGateway(&hostapi.Config{
		BaseURL:        cfg.Host.BaseURL,
		TimeoutSeconds: cfg.Host.TimeoutSeconds,
	}, tokens)
	if err != nil {
		log.Fatal("Failed to initialize host gateway", zap.Error(err))
	}

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	userService := identityapp.NewUserService(userRepo, jwtService, log)
	productService := catalogapp.NewProductService(productRepo, brandRepo, categoryRepo)
	brandService := catalogapp.NewBrandService(brandRepo)
	categoryService := catalogapp.NewCategoryService(categoryRepo)
	hostAuthService := hostbridge.NewAuthService(gateway, sessionRepo)
	hostProductService := hostbridge.NewProductService(gateway)

	// Initialize HTTP handlers
	systemHandler := handler.NewSystemHandler(db)
	authHandler := handler.NewAuthHandler(userService)
	externalHandler := handler.NewExternalAuthHandler(hostAuthService)
	hostProductHandler := handler.NewHostProductHandler(hostProductService)
	productHandler := handler.NewProductHandler(productService)
	brandHandler := handler.NewBrandHandler(brandService)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	// Setup gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Register routes
	r := router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithAuthMiddleware(middleware.JWTAuthMiddleware(jwtService)),
	)
	r.Register(systemHandler).
		Register(authHandler)
	r.RegisterProtected(router.RegistrarFunc(authHandler.RegisterProtectedRoutes)).
		RegisterProtected(externalHandler).
		RegisterProtected(hostProductHandler).
		RegisterProtected(productHandler).
		RegisterProtected(brandHandler).
		RegisterProtected(categoryHandler)
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
