package fiscal_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"facturalo/internal/fiscal"
)

func TestValidateWithholdings_PlausibleTotal(t *testing.T) {
	e := newEngine()

	vr := e.ValidateWithholdings(3, decimal.NewFromInt(450))
	assert.True(t, vr.IsValid)
	assert.Empty(t, vr.Message)
}

func TestValidateWithholdings_NoWithholdingInvoices(t *testing.T) {
	e := newEngine()

	// Zero invoices with IRPF lines: a zero total is expected, not anomalous.
	vr := e.ValidateWithholdings(0, decimal.Zero)
	assert.True(t, vr.IsValid)
}

func TestValidateWithholdings_BelowFloorIsAnomalous(t *testing.T) {
	e := newEngine()

	vr := e.ValidateWithholdings(2, decimal.NewFromInt(3))
	assert.False(t, vr.IsValid)
	assert.Contains(t, vr.Message, "below")
}

func TestApplyCorrectionPolicy_OverridesAboveBaseThreshold(t *testing.T) {
	e := newEngine()

	totals := fiscal.Totals{
		BaseImponible:        decimal.NewFromInt(5000),
		IRPFRetenidoIngresos: decimal.NewFromInt(2),
		IRPFInvoicesCount:    1,
	}
	vr := e.ValidateWithholdings(totals.IRPFInvoicesCount, totals.IRPFRetenidoIngresos)
	assert.False(t, vr.IsValid)

	applied := e.ApplyCorrectionPolicy(&totals, vr)
	assert.True(t, applied)
	assert.True(t, decimal.NewFromInt(750).Equal(totals.IRPFRetenidoIngresos))
}

func TestApplyCorrectionPolicy_NoOverrideAtOrBelowThreshold(t *testing.T) {
	e := newEngine()

	totals := fiscal.Totals{
		BaseImponible:        decimal.NewFromInt(1000),
		IRPFRetenidoIngresos: decimal.NewFromInt(2),
		IRPFInvoicesCount:    1,
	}
	vr := e.ValidateWithholdings(totals.IRPFInvoicesCount, totals.IRPFRetenidoIngresos)

	applied := e.ApplyCorrectionPolicy(&totals, vr)
	assert.False(t, applied)
	assert.True(t, decimal.NewFromInt(2).Equal(totals.IRPFRetenidoIngresos))
}

func TestApplyCorrectionPolicy_NoOverrideWhenValid(t *testing.T) {
	e := newEngine()

	totals := fiscal.Totals{
		BaseImponible:        decimal.NewFromInt(5000),
		IRPFRetenidoIngresos: decimal.NewFromInt(750),
	}

	applied := e.ApplyCorrectionPolicy(&totals, fiscal.ValidationResult{IsValid: true})
	assert.False(t, applied)
	assert.True(t, decimal.NewFromInt(750).Equal(totals.IRPFRetenidoIngresos))
}
