package fiscal

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"facturalo/internal/domain"
)

// ResolvedExpense is the fiscal breakdown of one expense transaction, taken
// from its detail record when present or estimated when absent.
type ResolvedExpense struct {
	TransactionID        uuid.UUID
	Net                  decimal.Decimal
	VAT                  decimal.Decimal
	IRPF                 decimal.Decimal
	Total                decimal.Decimal
	VATDeductiblePercent decimal.Decimal
	DeductiblePercent    decimal.Decimal
	Estimated            bool
}

// DeductibleNet returns the share of the net amount that reduces taxable
// income.
func (r ResolvedExpense) DeductibleNet() decimal.Decimal {
	return r.Net.Mul(r.DeductiblePercent).Div(hundred)
}

// DeductibleVAT returns the share of the VAT amount that reduces VAT
// liability.
func (r ResolvedExpense) DeductibleVAT() decimal.Decimal {
	return r.VAT.Mul(r.VATDeductiblePercent).Div(hundred)
}

// resolveExpense builds the breakdown for one expense transaction. A detail
// record is used verbatim, with nil percent fields defaulting to 100. Without
// a detail the gross amount is assumed VAT-inclusive at the default rate.
// An out-of-range percent is an unexpected shape: the caller skips the
// transaction and the batch continues.
func (e *Engine) resolveExpense(tx *domain.Transaction, details map[uuid.UUID]*domain.ExpenseFiscalDetail) (ResolvedExpense, error) {
	detail, ok := details[tx.ID]
	if !ok {
		net := tx.Amount.Div(e.policy.vatDivisor())
		return ResolvedExpense{
			TransactionID:        tx.ID,
			Net:                  net,
			VAT:                  tx.Amount.Sub(net),
			Total:                tx.Amount,
			VATDeductiblePercent: hundred,
			DeductiblePercent:    hundred,
			Estimated:            true,
		}, nil
	}

	vatPct, err := percentOrDefault(detail.VATDeductiblePercent)
	if err != nil {
		return ResolvedExpense{}, fmt.Errorf("vat_deductible_percent: %w", err)
	}
	dedPct, err := percentOrDefault(detail.DeductiblePercent)
	if err != nil {
		return ResolvedExpense{}, fmt.Errorf("deductible_percent: %w", err)
	}

	return ResolvedExpense{
		TransactionID:        tx.ID,
		Net:                  detail.NetAmount,
		VAT:                  detail.VATAmount,
		IRPF:                 detail.IRPFAmount,
		Total:                detail.TotalAmount,
		VATDeductiblePercent: vatPct,
		DeductiblePercent:    dedPct,
	}, nil
}

// percentOrDefault coerces a missing percent to the documented default of
// 100 and rejects values outside [0,100].
func percentOrDefault(p *decimal.Decimal) (decimal.Decimal, error) {
	if p == nil {
		return hundred, nil
	}
	if p.IsNegative() || p.GreaterThan(hundred) {
		return decimal.Zero, fmt.Errorf("value %s outside [0,100]", p)
	}
	return *p, nil
}

// indexDetails builds the O(1) transaction-id lookup used during resolution.
func indexDetails(details []domain.ExpenseFiscalDetail) map[uuid.UUID]*domain.ExpenseFiscalDetail {
	byTx := make(map[uuid.UUID]*domain.ExpenseFiscalDetail, len(details))
	for i := range details {
		byTx[details[i].TransactionID] = &details[i]
	}
	return byTx
}
