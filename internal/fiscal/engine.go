// Package fiscal turns raw invoices, ledger transactions and expense fiscal
// details into a period-scoped tax-liability summary for the Spanish regime
// (IVA / IRPF). The engine is a pure, stateless computation: it performs no
// I/O, holds no mutable state across invocations, and always returns a
// summary, degrading individual figures on bad data instead of failing.
package fiscal

import (
	"log"

	"facturalo/internal/domain"
)

// Input holds the already-fetched collections the engine consumes read-only.
type Input struct {
	Invoices     []domain.Invoice
	Transactions []domain.Transaction
	Details      []domain.ExpenseFiscalDetail
}

// Params scope the computation to a fiscal period. An empty Year admits all
// years; Period is "all" or Q1..Q4, anything else excludes every record.
type Params struct {
	Year   string
	Period string
}

// Engine computes fiscal summaries under a fixed policy.
type Engine struct {
	policy Policy
}

// NewEngine creates an engine with the given policy.
func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Compute runs the full pipeline: period filtering, withholding extraction,
// expense resolution, aggregation, the withholding sanity check with its
// correction policy, and final assembly. The returned warnings are the
// data-quality diagnostics collected along the way.
func (e *Engine) Compute(in Input, params Params) (*domain.FiscalSummary, []Warning) {
	invoices := FilterInvoices(in.Invoices, params.Year, params.Period)
	txs := FilterTransactions(in.Transactions, params.Year, params.Period)
	details := indexDetails(in.Details)

	var totals Totals
	warnings := e.aggregateInvoices(&totals, invoices)
	warnings = append(warnings, e.aggregateExpenses(&totals, txs, details)...)

	vr := e.ValidateWithholdings(totals.IRPFInvoicesCount, totals.IRPFRetenidoIngresos)
	if !vr.IsValid {
		warnings = append(warnings, Warning{Code: WarnAnomalousWithholding, Message: vr.Message})
		if e.ApplyCorrectionPolicy(&totals, vr) {
			log.Printf("fiscal.Engine: withholding overridden to %s (base %s)",
				totals.IRPFRetenidoIngresos, totals.BaseImponible)
			warnings = append(warnings, Warning{
				Code:    WarnCorrectedWithholding,
				Message: "withholding total replaced with the policy estimate; dependent figures recomputed",
			})
		}
	}

	return buildSummary(&totals), warnings
}
