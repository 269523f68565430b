package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/socialhub/socialhub-api/internal/api/handler"
	"github.com/socialhub/socialhub-api/internal/api/middleware"
	"github.com/socialhub/socialhub-api/internal/core/domain"
	"github.com/socialhub/socialhub-api/internal/core/service"
	mongostore "github.com/socialhub/socialhub-api/internal/infrastructure/db/mongo"
	redisstore "github.com/socialhub/socialhub-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/socialhub/socialhub-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("socialhub"))

	// --- Immutable lookup tables, built once and injected ---
	planLimits := domain.DefaultPlanLimits()
	platforms := domain.DefaultPlatformRegistry()

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	sessionRepo := mongostore.NewSessionRepository(db)
	uploadRepo := mongostore.NewUploadLogRepository(db)
	accountRepo := mongostore.NewSocialAccountRepository(db)
	productRepo := mongostore.NewProductRepository(db)
	orderRepo := mongostore.NewOrderRepository(db)
	jobRepo := mongostore.NewAIJobRepository(db)

	authService := service.NewAuthService(userRepo, sessionRepo, 0, log)
	uploadService := service.NewUploadService(uploadRepo, planLimits, redisstore.NewQuotaLock(rdb), log)
	accountService := service.NewAccountService(accountRepo, log)
	commerceService := service.NewCommerceService(productRepo, orderRepo, jobRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	uploadHandler := handler.NewUploadHandler(uploadService)
	accountHandler := handler.NewAccountHandler(accountService)
	productHandler := handler.NewProductHandler(commerceService)
	aiHandler := handler.NewAIHandler(commerceService)
	platformHandler := handler.NewPlatformHandler(platforms)

	authRequired := middleware.Auth(authService)
	ultraProOnly := middleware.PlanOnly(domain.PlanUltraPro)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "SocialHub backend running"})
	})
	e.GET("/platforms", platformHandler.List)
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes ---
	e.GET("/me", authHandler.Me, authRequired)
	e.GET("/accounts", accountHandler.List, authRequired)
	e.POST("/accounts", accountHandler.Link, authRequired)
	e.GET("/uploads/stats", uploadHandler.Stats, authRequired)
	e.POST("/upload", uploadHandler.Upload, authRequired)
	e.GET("/products", productHandler.List, authRequired)
	e.POST("/products", productHandler.Create, authRequired)
	e.PUT("/products/:id", productHandler.Update, authRequired)
	e.DELETE("/products/:id", productHandler.Delete, authRequired)
	e.POST("/orders", productHandler.CreateOrder, authRequired)
	e.POST("/ai/edit", aiHandler.Edit, authRequired, ultraProOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
