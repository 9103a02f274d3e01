package fiscal

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"facturalo/internal/domain"
)

// Totals carries every running sum at full precision. Nothing here is
// rounded; rounding happens once, in the summary builder.
type Totals struct {
	BaseImponible        decimal.Decimal
	InvoiceIncome        decimal.Decimal
	IVARepercutido       decimal.Decimal
	IRPFRetenidoIngresos decimal.Decimal

	BaseImponibleGastos decimal.Decimal
	IVASoportado        decimal.Decimal
	IRPFGastos          decimal.Decimal
	TotalExpenses       decimal.Decimal
	GastosDeducibles    decimal.Decimal
	IVADeducible        decimal.Decimal

	PendingAmount      decimal.Decimal
	InvoiceTotalAmount decimal.Decimal

	InvoicesTotal   int64
	InvoicesPaid    int64
	InvoicesPending int64
	InvoicesOverdue int64

	// IRPFInvoicesCount is the number of paid invoices carrying at least
	// one negative-rate IRPF line; the reconciler uses it.
	IRPFInvoicesCount int
}

// aggregateInvoices folds the period-filtered invoices into the totals.
// Only paid invoices contribute to income and withholding; every invoice
// contributes to the period counts.
func (e *Engine) aggregateInvoices(t *Totals, invoices []domain.Invoice) []Warning {
	var warnings []Warning
	for i := range invoices {
		inv := &invoices[i]
		t.InvoicesTotal++
		t.InvoiceTotalAmount = t.InvoiceTotalAmount.Add(inv.Total)

		if domain.PendingStatuses[inv.Status] {
			t.InvoicesPending++
			t.PendingAmount = t.PendingAmount.Add(inv.Total)
		}
		if inv.Status == domain.InvoiceStatusOverdue {
			t.InvoicesOverdue++
		}
		if inv.Status != domain.InvoiceStatusPaid {
			continue
		}

		t.InvoicesPaid++
		t.BaseImponible = t.BaseImponible.Add(inv.Subtotal)
		t.InvoiceIncome = t.InvoiceIncome.Add(inv.Total)

		ext := e.extractWithholding(inv)
		t.IRPFRetenidoIngresos = t.IRPFRetenidoIngresos.Add(ext.Amount)
		if ext.HasNegativeIRPF {
			t.IRPFInvoicesCount++
		}
		warnings = append(warnings, ext.Warnings...)
	}

	// VAT charged on sales: the exact difference when a granular base
	// exists, otherwise the default-rate share of gross income.
	if t.BaseImponible.IsPositive() {
		t.IVARepercutido = t.InvoiceIncome.Sub(t.BaseImponible)
	} else {
		t.IVARepercutido = t.InvoiceIncome.Mul(e.policy.DefaultVATPercent).Div(hundred)
	}

	return warnings
}

// aggregateExpenses resolves each expense transaction independently and folds
// the results into the totals. A transaction that fails resolution is logged
// and skipped; the batch never aborts.
func (e *Engine) aggregateExpenses(t *Totals, txs []domain.Transaction, details map[uuid.UUID]*domain.ExpenseFiscalDetail) []Warning {
	var warnings []Warning
	for i := range txs {
		tx := &txs[i]
		if tx.Type != domain.TransactionTypeExpense {
			continue
		}

		resolved, err := e.resolveExpense(tx, details)
		if err != nil {
			log.Printf("fiscal.Engine: skipping transaction %s: %v", tx.ID, err)
			warnings = append(warnings, Warning{
				Code:     WarnSkippedTransaction,
				RecordID: tx.ID,
				Message:  fmt.Sprintf("transaction excluded from totals: %v", err),
			})
			continue
		}

		t.BaseImponibleGastos = t.BaseImponibleGastos.Add(resolved.Net)
		t.IVASoportado = t.IVASoportado.Add(resolved.VAT)
		t.IRPFGastos = t.IRPFGastos.Add(resolved.IRPF)
		t.TotalExpenses = t.TotalExpenses.Add(resolved.Total)
		t.GastosDeducibles = t.GastosDeducibles.Add(resolved.DeductibleNet())
		t.IVADeducible = t.IVADeducible.Add(resolved.DeductibleVAT())
	}
	return warnings
}
