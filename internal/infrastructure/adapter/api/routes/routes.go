package routes

import (
	coreport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers the router dispatches to
type Handlers struct {
	Transaction *handler.TransactionHandler
	Report      *handler.ReportHandler
	Health      *handler.HealthHandler
}

// NewRouter builds a gin engine with middlewares and routes installed
func NewRouter(
	handlers Handlers,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	corsOptions middleware.CORSOptions,
) *gin.Engine {
	router := gin.New()
	// both /transactions and /transactions/ are registered explicitly
	router.RedirectTrailingSlash = false

	SetupMiddlewares(router, logger, timeProvider, corsOptions)
	SetupRoutes(router, handlers)

	return router
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, handlers Handlers) {
	transactionRoutes := router.Group("/transactions")
	{
		for _, path := range []string{"", "/"} {
			// POST /transactions/
			transactionRoutes.POST(path, handlers.Transaction.CreateTransaction)

			// GET /transactions/?skip=&limit=
			transactionRoutes.GET(path, handlers.Transaction.ListTransactions)
		}

		// DELETE /transactions/:id
		transactionRoutes.DELETE("/:id", handlers.Transaction.DeleteTransaction)
	}

	reportRoutes := router.Group("/report")
	{
		reportRoutes.GET("/weekly", handlers.Report.Weekly)
		reportRoutes.GET("/breakdown", handlers.Report.Breakdown)
	}

	router.GET("/health", handlers.Health.Health)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	corsOptions middleware.CORSOptions,
) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(corsOptions))
}
