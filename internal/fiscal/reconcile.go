package fiscal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationResult is the outcome of the withholding sanity check.
type ValidationResult struct {
	IsValid bool
	Message string
}

// ValidateWithholdings checks the extracted withholding total for
// plausibility: invoices carry negative-rate IRPF lines, yet the total is
// below the anomaly floor. The check never errors; it only diagnoses.
func (e *Engine) ValidateWithholdings(irpfInvoicesCount int, irpfRetenido decimal.Decimal) ValidationResult {
	if irpfInvoicesCount > 0 && irpfRetenido.LessThan(e.policy.AnomalyMinWithholding) {
		return ValidationResult{
			IsValid: false,
			Message: fmt.Sprintf(
				"%d invoice(s) carry IRPF withholding lines but the extracted total %s is below %s; extraction likely failed upstream",
				irpfInvoicesCount, irpfRetenido, e.policy.AnomalyMinWithholding,
			),
		}
	}
	return ValidationResult{IsValid: true}
}

// ApplyCorrectionPolicy substitutes the policy estimate for an implausible
// withholding total when the taxable base is large enough to make the
// estimate meaningful. Downstream figures recompute from the overridden
// total because rounding only happens at assembly. The substitution is a
// best-effort safety net against upstream data-entry errors; swap this
// function for a stricter flag-only mode if manual review is preferred.
func (e *Engine) ApplyCorrectionPolicy(t *Totals, vr ValidationResult) bool {
	if vr.IsValid {
		return false
	}
	if !t.BaseImponible.GreaterThan(e.policy.CorrectionMinBase) {
		return false
	}
	t.IRPFRetenidoIngresos = t.BaseImponible.Mul(e.policy.IRPFEstimatePercent).Div(hundred)
	return true
}
