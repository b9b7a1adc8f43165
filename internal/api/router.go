package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/storelane/ecommerce-api/internal/api/handler"
	"github.com/storelane/ecommerce-api/internal/api/middleware"
	"github.com/storelane/ecommerce-api/internal/core/domain"
	"github.com/storelane/ecommerce-api/internal/core/service"
	mongodb "github.com/storelane/ecommerce-api/internal/infrastructure/db/mongo"
	redisdb "github.com/storelane/ecommerce-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ecommerce"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	productCache := redisdb.NewProductCache(rdb)

	hasher := service.NewBcryptHasher(0)
	issuer := service.NewJWTIssuer(jwtSecret, domain.TokenTTL)

	authService := service.NewAuthService(userRepo, hasher, issuer, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	productService := service.NewProductService(productRepo, categoryRepo, productCache, log)

	authHandler := handler.NewAuthHandler(authService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	requireAuth := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- User routes (token required) ---
	users := e.Group("/v1/users", requireAuth)
	users.GET("", authHandler.GetUsers)
	users.GET("/:id", authHandler.GetUser)

	// --- Category routes (reads public, writes behind auth) ---
	e.GET("/v1/categories", categoryHandler.List)
	e.GET("/v1/categories/:id", categoryHandler.Get)
	e.POST("/v1/categories", categoryHandler.Create, requireAuth)
	e.PUT("/v1/categories/:id", categoryHandler.Update, requireAuth)
	e.DELETE("/v1/categories/:id", categoryHandler.Delete, requireAuth)

	// --- Product routes (reads public, writes behind auth) ---
	e.GET("/v1/products", productHandler.List)
	e.GET("/v1/products/:id", productHandler.Get)
	e.POST("/v1/products", productHandler.Create, requireAuth)
	e.PUT("/v1/products/:id", productHandler.Update, requireAuth)
	e.DELETE("/v1/products/:id", productHandler.Delete, requireAuth)
	e.POST("/v1/products/buy", productHandler.Buy, requireAuth)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
