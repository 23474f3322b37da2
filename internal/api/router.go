package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/boardhub/board-api/internal/api/handler"
	"github.com/boardhub/board-api/internal/api/middleware"
	"github.com/boardhub/board-api/internal/core/domain"
	"github.com/boardhub/board-api/internal/core/ports"
	"github.com/boardhub/board-api/internal/core/service"
	mongodb "github.com/boardhub/board-api/internal/infrastructure/db/mongo"
	redisdb "github.com/boardhub/board-api/internal/infrastructure/db/redis"
	"github.com/boardhub/board-api/internal/infrastructure/http/handlers"
)

// Options carries everything the router needs to assemble the API.
type Options struct {
	Mongo          *mongo.Database
	Redis          *redis.Client
	Audit          ports.AuditSink
	JWTSecret      string
	TokenTTL       time.Duration
	MinPasswordLen int
	BcryptCost     int
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("board"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(opts.Mongo)
	articleRepo := mongodb.NewArticleRepository(opts.Mongo)
	articleCache := redisdb.NewArticleCache(opts.Redis)

	hasher := service.NewBcryptHasher(opts.BcryptCost)
	tokens := service.NewJWTTokenService(opts.JWTSecret, opts.TokenTTL)
	authService := service.NewAuthService(userRepo, hasher, tokens, opts.Audit, opts.MinPasswordLen, opts.Logger)
	articleService := service.NewArticleService(articleRepo, articleCache, opts.Audit, opts.Logger)

	ttl := opts.TokenTTL
	if ttl <= 0 {
		ttl = service.DefaultTokenTTL
	}
	authHandler := handler.NewAuthHandler(authService, int(ttl.Seconds()))
	articleHandler := handler.NewArticleHandler(articleService)

	gate := middleware.Auth(tokens, opts.Logger)

	// --- Auth routes (anonymous by design) ---
	e.POST("/api/auth/signup", authHandler.SignUp)
	e.POST("/api/auth/signin", authHandler.SignIn)

	// --- Article routes ---
	articles := e.Group("/api/articles", gate)
	articles.POST("", articleHandler.Create, middleware.Require(domain.Authenticated()))
	articles.GET("", articleHandler.List, middleware.Require(domain.Authenticated()))
	articles.GET("/my", articleHandler.ListMine, middleware.Require(domain.Authenticated()))
	articles.GET("/search", articleHandler.Search, middleware.Require(domain.Authenticated()))
	articles.GET("/:id", articleHandler.GetByID, middleware.Require(domain.Authenticated()))
	// Ownership half of these requirements is finished in the service.
	articles.PUT("/:id", articleHandler.Update, middleware.Require(domain.AnyOfOrOwner(domain.RoleAdmin)))
	articles.DELETE("/:id", articleHandler.Delete, middleware.Require(domain.AnyOfOrOwner(domain.RoleAdmin)))
	articles.PATCH("/:id/status", articleHandler.UpdateStatus, middleware.Require(domain.AnyOf(domain.RoleAdmin)))

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(opts.Mongo, opts.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
