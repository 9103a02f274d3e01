package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"facturalo/internal/domain"
	"facturalo/internal/fiscal"
	"facturalo/internal/port"
)

// FiscalSummaryService computes period-scoped tax summaries for a user. The
// heavy lifting is the pure fiscal engine; this service fetches the input
// collections, runs it, and persists the "last computed" marker afterwards.
type FiscalSummaryService interface {
	GetSummary(ctx context.Context, userID uuid.UUID, year, period string) (*domain.FiscalSummary, error)
	GetSummaryWithWarnings(ctx context.Context, userID uuid.UUID, year, period string) (*domain.FiscalSummary, []fiscal.Warning, error)
	GetLastComputed(ctx context.Context, userID uuid.UUID) (*domain.FiscalActivity, error)
}

type fiscalSummaryService struct {
	engine       *fiscal.Engine
	invoiceRepo  port.InvoiceRepository
	txRepo       port.TransactionRepository
	detailRepo   port.ExpenseFiscalRepository
	activityRepo port.ActivityRepository
}

// NewFiscalSummaryService creates a new FiscalSummaryService implementation.
func NewFiscalSummaryService(
	engine *fiscal.Engine,
	invoiceRepo port.InvoiceRepository,
	txRepo port.TransactionRepository,
	detailRepo port.ExpenseFiscalRepository,
	activityRepo port.ActivityRepository,
) FiscalSummaryService {
	return &fiscalSummaryService{
		engine:       engine,
		invoiceRepo:  invoiceRepo,
		txRepo:       txRepo,
		detailRepo:   detailRepo,
		activityRepo: activityRepo,
	}
}

func (s *fiscalSummaryService) GetSummary(ctx context.Context, userID uuid.UUID, year, period string) (*domain.FiscalSummary, error) {
	summary, _, err := s.GetSummaryWithWarnings(ctx, userID, year, period)
	return summary, err
}

func (s *fiscalSummaryService) GetSummaryWithWarnings(ctx context.Context, userID uuid.UUID, year, period string) (*domain.FiscalSummary, []fiscal.Warning, error) {
	invoices, err := s.invoiceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching invoices: %w", err)
	}
	txs, err := s.txRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching transactions: %w", err)
	}
	details, err := s.detailRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching expense fiscal details: %w", err)
	}

	summary, warnings := s.engine.Compute(fiscal.Input{
		Invoices:     invoices,
		Transactions: txs,
		Details:      details,
	}, fiscal.Params{Year: year, Period: period})

	for _, w := range warnings {
		log.Printf("fiscalSummaryService: user %s: [%s] %s", userID, w.Code, w.Message)
	}

	// Post-computation hook: record the marker but never fail the request
	// over it, the summary is already computed.
	if err := s.activityRepo.UpsertLastComputed(ctx, userID, year, period, time.Now().UTC()); err != nil {
		log.Printf("fiscalSummaryService: failed to record last computed marker for user %s: %v", userID, err)
	}

	return summary, warnings, nil
}

func (s *fiscalSummaryService) GetLastComputed(ctx context.Context, userID uuid.UUID) (*domain.FiscalActivity, error) {
	return s.activityRepo.GetLastComputed(ctx, userID)
}
