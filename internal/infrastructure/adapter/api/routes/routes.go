package routes

import (
	coreport "github.com/amirhossein-jamali/timevault/internal/domain/port/core"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/timevault/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	lockHandler *handler.LockHandler,
	vaultHandler *handler.VaultHandler,
	registry *prometheus.Registry,
) {
	// Lock lifecycle and valuation routes
	lockRoutes := router.Group("/locks")
	{
		// POST /locks
		lockRoutes.POST("", lockHandler.Deposit)

		// POST /locks/:lockId/withdraw
		lockRoutes.POST("/:lockId/withdraw", lockHandler.Withdraw)

		// GET /locks/:lockId
		lockRoutes.GET("/:lockId", lockHandler.GetLock)

		// GET /locks/:lockId/balance
		lockRoutes.GET("/:lockId/balance", lockHandler.GetBalance)

		// GET /locks/:lockId/asset
		lockRoutes.GET("/:lockId/asset", lockHandler.GetAsset)

		// GET /locks/:lockId/maturity
		lockRoutes.GET("/:lockId/maturity", lockHandler.GetMaturity)

		// GET /locks/:lockId/value?holder=
		lockRoutes.GET("/:lockId/value", lockHandler.HolderValue)
	}

	// Account routes
	accountRoutes := router.Group("/accounts")
	{
		// GET /accounts/:accountId/locks
		accountRoutes.GET("/:accountId/locks", lockHandler.ListByOwner)
	}

	// GET /solvency?asset=
	router.GET("/solvency", vaultHandler.Solvency)

	// GET /health
	router.GET("/health", vaultHandler.Health)

	// GET /metrics
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, m *metrics.Metrics) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.HTTPMetrics(m))
}
