package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/stayora/booking-platform/docs"
	"github.com/stayora/booking-platform/internal/api/handler"
	"github.com/stayora/booking-platform/internal/api/middleware"
	"github.com/stayora/booking-platform/internal/core/domain"
	"github.com/stayora/booking-platform/internal/core/ports"
	"github.com/stayora/booking-platform/internal/core/service"
	"github.com/stayora/booking-platform/internal/infrastructure/auth"
	mongodb "github.com/stayora/booking-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/stayora/booking-platform/internal/infrastructure/db/redis"
	"github.com/stayora/booking-platform/internal/pkg/config"
)

// NewRouter builds the Echo instance with all routes registered.
// auditSink and auditService come from the caller so the audit dispatcher's
// lifecycle stays with main.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	cfg *config.Config,
	auditSink ports.AuditSink,
	auditService ports.AuditService,
	log zerolog.Logger,
) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	issuer, err := auth.NewJWTIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	denylist := redisdb.NewDenylist(rdb)

	authService := service.NewAuthService(userRepo, hasher, issuer, auditSink, log)
	authHandler := handler.NewAuthHandler(authService, denylist, auditSink)
	auditHandler := handler.NewAuditHandler(auditService)
	authed := middleware.Auth(cfg.JWTSecret, userRepo, denylist, log)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/me", authHandler.Me, authed)
	e.POST("/logout", authHandler.Logout, authed)

	// --- Admin routes ---
	e.GET("/admin/auth-events", auditHandler.List, authed, middleware.RequireRole(domain.RoleAdmin))

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
