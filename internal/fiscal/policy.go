package fiscal

import "github.com/shopspring/decimal"

// Policy holds the fallback constants and anomaly thresholds the engine
// applies. Values are percentages and currency units, never touched by the
// aggregation logic directly so policy changes stay out of the math.
type Policy struct {
	// DefaultVATPercent is assumed when an expense has no fiscal detail
	// (the gross amount is taken as VAT-inclusive at this rate) and when
	// invoices carry no granular taxable base.
	DefaultVATPercent decimal.Decimal

	// IRPFEstimatePercent is the withholding estimate applied when
	// extraction degrades and when the correction policy overrides an
	// anomalous total.
	IRPFEstimatePercent decimal.Decimal

	// AnomalyMinWithholding is the floor under which a nonzero set of
	// withholding invoices makes the extracted total implausible.
	AnomalyMinWithholding decimal.Decimal

	// CorrectionMinBase is the taxable base above which an implausible
	// withholding total is overridden with the estimate.
	CorrectionMinBase decimal.Decimal
}

// DefaultPolicy returns the Spanish-regime defaults: 21% VAT, 15% IRPF
// estimate, anomaly floor of 10 currency units, correction base of 1000.
func DefaultPolicy() Policy {
	return Policy{
		DefaultVATPercent:     decimal.NewFromInt(21),
		IRPFEstimatePercent:   decimal.NewFromInt(15),
		AnomalyMinWithholding: decimal.NewFromInt(10),
		CorrectionMinBase:     decimal.NewFromInt(1000),
	}
}

// NewPolicy builds a Policy from configured constants.
func NewPolicy(vatPercent, irpfPercent, anomalyFloor, correctionBase float64) Policy {
	return Policy{
		DefaultVATPercent:     decimal.NewFromFloat(vatPercent),
		IRPFEstimatePercent:   decimal.NewFromFloat(irpfPercent),
		AnomalyMinWithholding: decimal.NewFromFloat(anomalyFloor),
		CorrectionMinBase:     decimal.NewFromFloat(correctionBase),
	}
}

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// vatDivisor returns 1 + rate/100, the factor dividing a VAT-inclusive gross
// down to its net amount.
func (p Policy) vatDivisor() decimal.Decimal {
	return one.Add(p.DefaultVATPercent.Div(hundred))
}
