package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	_ "facturalo/docs" // swagger docs
	"facturalo/internal/config"
	"facturalo/internal/fiscal"
	"facturalo/internal/handler"
	"facturalo/internal/repository/postgres"
	"facturalo/internal/router"
	"facturalo/internal/service"
	s3storage "facturalo/internal/storage/s3"
)

// @title           Facturalo Fiscal API
// @version         1.0
// @description     Period-scoped IVA/IRPF fiscal summaries and expense receipts for Spanish self-employed workers.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	invoiceRepo := postgres.NewInvoiceRepo(db)
	txRepo := postgres.NewTransactionRepo(db)
	detailRepo := postgres.NewExpenseFiscalRepo(db)
	activityRepo := postgres.NewActivityRepo(db)
	receiptRepo := postgres.NewReceiptRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize the fiscal engine and services
	engine := fiscal.NewEngine(fiscal.NewPolicy(
		cfg.Fiscal.DefaultVATPercent,
		cfg.Fiscal.IRPFEstimatePercent,
		cfg.Fiscal.AnomalyMinWithholding,
		cfg.Fiscal.CorrectionMinBase,
	))
	authSvc := service.NewAuthService(cfg.JWT)
	fiscalSvc := service.NewFiscalSummaryService(engine, invoiceRepo, txRepo, detailRepo, activityRepo)
	receiptSvc := service.NewReceiptService(receiptRepo, txRepo, s3Client, &cfg.S3)

	// Initialize handlers
	fiscalH := handler.NewFiscalHandler(fiscalSvc)
	receiptH := handler.NewReceiptHandler(receiptSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg.CORS.AllowedOrigins, authSvc, fiscalH, receiptH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
