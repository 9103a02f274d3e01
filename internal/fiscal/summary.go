package fiscal

import (
	"github.com/shopspring/decimal"

	"facturalo/internal/domain"
)

// roundInt rounds an exact decimal to the nearest integer currency unit,
// half to even. This is the only place the engine rounds.
func roundInt(d decimal.Decimal) int64 {
	return d.RoundBank(0).IntPart()
}

// buildSummary assembles the output record from the full-precision totals.
// Every field is rounded here, independently, so no rounding error compounds
// through intermediate sums.
func buildSummary(t *Totals) *domain.FiscalSummary {
	irpfTotal := t.IRPFRetenidoIngresos.Add(t.IRPFGastos)
	ivaALiquidar := t.IVARepercutido.Sub(t.IVASoportado)
	netResult := t.BaseImponible.Sub(t.BaseImponibleGastos).Sub(irpfTotal)
	resultadoFiscal := t.BaseImponible.Sub(t.GastosDeducibles)
	ivaAIngresar := t.IVARepercutido.Sub(t.IVADeducible)

	return &domain.FiscalSummary{
		Income:               roundInt(t.InvoiceIncome),
		Expenses:             roundInt(t.TotalExpenses),
		PendingInvoices:      roundInt(t.PendingAmount),
		PendingCount:         t.InvoicesPending,
		BaseImponible:        roundInt(t.BaseImponible),
		BaseImponibleGastos:  roundInt(t.BaseImponibleGastos),
		IVARepercutido:       roundInt(t.IVARepercutido),
		IVASoportado:         roundInt(t.IVASoportado),
		IRPFRetenidoIngresos: roundInt(t.IRPFRetenidoIngresos),
		IRPFGastos:           roundInt(t.IRPFGastos),
		TotalWithholdings:    roundInt(irpfTotal),
		NetIncome:            roundInt(t.BaseImponible.Sub(t.IRPFRetenidoIngresos)),
		NetExpenses:          roundInt(t.BaseImponibleGastos.Sub(t.IRPFGastos)),
		NetResult:            roundInt(netResult),
		GastosDeducibles:     roundInt(t.GastosDeducibles),
		IVADeducible:         roundInt(t.IVADeducible),
		ResultadoFiscal:      roundInt(resultadoFiscal),
		IVAAIngresar:         roundInt(ivaAIngresar),
		Taxes: domain.TaxTotals{
			VAT:          roundInt(t.IVARepercutido),
			IncomeTax:    roundInt(irpfTotal),
			IVAALiquidar: roundInt(ivaALiquidar),
		},
		TaxStats: domain.TaxStats{
			IVARepercutido:   roundInt(t.IVARepercutido),
			IVASoportado:     roundInt(t.IVASoportado),
			IVALiquidar:      roundInt(ivaALiquidar),
			IRPFRetenido:     roundInt(t.IRPFRetenidoIngresos),
			IRPFTotal:        roundInt(irpfTotal),
			IRPFPagar:        roundInt(irpfTotal.Sub(t.IRPFRetenidoIngresos)),
			GastosDeducibles: roundInt(t.GastosDeducibles),
			IVADeducible:     roundInt(t.IVADeducible),
			ResultadoFiscal:  roundInt(resultadoFiscal),
			IVAAIngresar:     roundInt(ivaAIngresar),
		},
		Invoices: domain.InvoiceCounts{
			Total:       t.InvoicesTotal,
			Pending:     t.InvoicesPending,
			Paid:        t.InvoicesPaid,
			Overdue:     t.InvoicesOverdue,
			TotalAmount: roundInt(t.InvoiceTotalAmount),
		},
	}
}
