package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"facturalo/internal/handler"
	"facturalo/internal/middleware"
	"facturalo/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	authSvc service.AuthService,
	fiscalH *handler.FiscalHandler,
	receiptH *handler.ReceiptHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Fiscal summary routes
	fiscal := protected.Group("/fiscal")
	fiscal.GET("/summary", fiscalH.GetSummary)
	fiscal.GET("/summary/warnings", fiscalH.GetSummaryWithWarnings)
	fiscal.GET("/last-computed", fiscalH.GetLastComputed)

	// Receipt routes
	receipts := protected.Group("/receipts")
	receipts.POST("", receiptH.Upload)
	receipts.GET("", receiptH.List)
	receipts.GET("/:id", receiptH.GetByID)
	receipts.GET("/:id/download", receiptH.GetDownloadURL)
	receipts.DELETE("/:id", receiptH.Delete)

	return r
}
