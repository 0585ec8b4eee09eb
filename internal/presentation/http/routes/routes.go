package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lakshmiplex/canteen-api/internal/config"
	domainRepo "github.com/lakshmiplex/canteen-api/internal/domain/repository"
	"github.com/lakshmiplex/canteen-api/internal/presentation/http/handler"
	"github.com/lakshmiplex/canteen-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Stats   *handler.StatsHandler
	Billing *handler.BillingHandler
	Catalog *handler.CatalogHandler
	Printer *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg             *config.Config
	Logger          *zap.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.Terminal())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	rateLimiterCfg := middleware.DefaultRateLimiterConfig()
	if deps.Cfg.RateLimit.Requests > 0 {
		rateLimiterCfg.RequestsPerSecond = float64(deps.Cfg.RateLimit.Requests)
		rateLimiterCfg.BurstSize = deps.Cfg.RateLimit.Requests * 2
	}
	rateLimiter := middleware.NewTerminalRateLimiter(rateLimiterCfg)
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}))
	{
		registerCatalogRoutes(v1, h)
		registerBillingRoutes(v1, h)
		registerStatsRoutes(v1, h)
		registerPrinterRoutes(v1, h)
	}

	return router
}

func registerCatalogRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/categories", h.Catalog.GetCategories)
	rg.GET("/products", h.Catalog.GetProducts)
	rg.GET("/purchases", h.Catalog.GetPurchases)
}

func registerBillingRoutes(rg *gin.RouterGroup, h *Handlers) {
	bills := rg.Group("/bills")
	{
		bills.POST("", h.Billing.GenerateBill)
		bills.POST("/summary", h.Billing.PrintGrandTotalSummary)
	}
}

func registerStatsRoutes(rg *gin.RouterGroup, h *Handlers) {
	stats := rg.Group("/stats")
	{
		stats.GET("/categories", h.Stats.GetCategoryStats)
		stats.GET("/daily-payments", h.Stats.GetDailyPayments)
		stats.POST("/report", h.Stats.GenerateReport)
	}
}

func registerPrinterRoutes(rg *gin.RouterGroup, h *Handlers) {
	printer := rg.Group("/printer")
	{
		printer.GET("/status", h.Printer.GetStatus)
		printer.POST("/test", h.Printer.TestPrint)
	}
}
