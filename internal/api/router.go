package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inventorypro/inventory-system/internal/api/handler"
	"github.com/inventorypro/inventory-system/internal/api/middleware"
	"github.com/inventorypro/inventory-system/internal/core/domain"
	"github.com/inventorypro/inventory-system/internal/core/ports"
)

// RouterDeps bundles everything the HTTP layer needs. Services are built in
// main so their lifecycles (dispatcher workers, connections) stay there.
type RouterDeps struct {
	DB        *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger

	AuthService      ports.AuthService
	ItemService      ports.ItemService
	SupplierService  ports.SupplierService
	CategoryRepo     ports.CategoryRepository
	AnalyticsService ports.AnalyticsService
	AlertService     ports.AlertService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	itemHandler := handler.NewItemHandler(deps.ItemService)
	supplierHandler := handler.NewSupplierHandler(deps.SupplierService)
	categoryHandler := handler.NewCategoryHandler(deps.CategoryRepo)
	analyticsHandler := handler.NewAnalyticsHandler(deps.AnalyticsService)
	alertHandler := handler.NewAlertHandler(deps.AlertService)
	sectionHandler := handler.NewSectionHandler()
	healthHandler := handler.NewHealthHandler(deps.DB, deps.Redis)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/verify-otp", authHandler.VerifyOTP)
	e.POST("/auth/resend-otp", authHandler.ResendOTP)

	// --- Authenticated API, guarded per section ---
	v1 := e.Group("/v1", middleware.Auth(deps.JWTSecret))

	v1.GET("/sections", sectionHandler.List)
	v1.GET("/sections/initial", sectionHandler.Initial)

	inventory := v1.Group("", middleware.RequireSection(domain.SectionInventory))
	inventory.GET("/items", itemHandler.List)
	inventory.POST("/items", itemHandler.Create)
	inventory.GET("/items/:id", itemHandler.Get)
	inventory.PUT("/items/:id", itemHandler.Update)
	inventory.DELETE("/items/:id", itemHandler.Delete)
	inventory.GET("/categories", categoryHandler.List)
	inventory.POST("/categories", categoryHandler.Create)

	suppliers := v1.Group("/suppliers", middleware.RequireSection(domain.SectionSuppliers))
	suppliers.GET("", supplierHandler.List)
	suppliers.POST("", supplierHandler.Create)
	suppliers.GET("/:id", supplierHandler.Get)
	suppliers.PUT("/:id", supplierHandler.Update)
	suppliers.DELETE("/:id", supplierHandler.Delete)

	v1.GET("/dashboard/stats", analyticsHandler.DashboardStats, middleware.RequireSection(domain.SectionDashboard))
	v1.GET("/analytics", analyticsHandler.Report, middleware.RequireSection(domain.SectionAnalytics))
	v1.GET("/alerts", alertHandler.List, middleware.RequireSection(domain.SectionAlerts))

	return e
}
