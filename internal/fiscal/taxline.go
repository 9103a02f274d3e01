package fiscal

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"facturalo/internal/domain"
)

// TaggedTaxLine is a tax line resolved once at ingestion into a typed kind
// and a parsed rate, so aggregation never re-parses name substrings.
// Withholding keeps its sign convention: a negative rate.
type TaggedTaxLine struct {
	Name      string
	Kind      domain.TaxKind
	Rate      decimal.Decimal
	Malformed bool
}

// TagTaxLines classifies an invoice's free-form tax entries. Unparseable
// rates are coerced to zero and flagged as malformed rather than erroring.
func TagTaxLines(lines []domain.TaxLine) []TaggedTaxLine {
	tagged := make([]TaggedTaxLine, 0, len(lines))
	for _, line := range lines {
		t := TaggedTaxLine{Name: line.Name, Kind: classifyTaxName(line.Name)}
		rate, err := decimal.NewFromString(line.Rate.String())
		if err != nil {
			t.Malformed = true
		} else {
			t.Rate = rate
		}
		tagged = append(tagged, t)
	}
	return tagged
}

func classifyTaxName(name string) domain.TaxKind {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "irpf"):
		return domain.TaxKindIRPF
	case strings.Contains(lower, "iva") || strings.Contains(lower, "vat"):
		return domain.TaxKindVAT
	default:
		return domain.TaxKindOther
	}
}

// withholdingExtraction is the per-invoice result of IRPF extraction.
type withholdingExtraction struct {
	// Amount withheld by the client, in currency units.
	Amount decimal.Decimal
	// HasNegativeIRPF is true when at least one IRPF line carries a
	// negative rate; the reconciler counts these invoices.
	HasNegativeIRPF bool
	Warnings        []Warning
}

// extractWithholding isolates the IRPF withheld on one invoice. Only strictly
// negative rates contribute subtotal * |rate| / 100. Positive IRPF rates are
// flagged and skipped. When every IRPF line on the invoice is malformed the
// extraction degrades to the policy estimate instead of failing.
func (e *Engine) extractWithholding(inv *domain.Invoice) withholdingExtraction {
	var out withholdingExtraction

	irpfLines := 0
	malformed := 0
	for _, line := range TagTaxLines(inv.AdditionalTaxes) {
		if line.Kind != domain.TaxKindIRPF {
			continue
		}
		irpfLines++
		if line.Malformed {
			malformed++
			out.Warnings = append(out.Warnings, Warning{
				Code:     WarnMalformedTaxRate,
				RecordID: inv.ID,
				Message:  fmt.Sprintf("tax line %q has an unparseable rate, coerced to 0", line.Name),
			})
			continue
		}
		if line.Rate.IsNegative() {
			out.HasNegativeIRPF = true
			out.Amount = out.Amount.Add(inv.Subtotal.Mul(line.Rate.Abs()).Div(hundred))
			continue
		}
		out.Warnings = append(out.Warnings, Warning{
			Code:     WarnPositiveIRPFRate,
			RecordID: inv.ID,
			Message:  fmt.Sprintf("tax line %q has a non-negative rate %s; withholding must be negative", line.Name, line.Rate),
		})
	}

	// Every IRPF line was unusable: estimate instead of dropping the
	// invoice's withholding entirely.
	if irpfLines > 0 && malformed == irpfLines {
		out.Amount = inv.Subtotal.Mul(e.policy.IRPFEstimatePercent).Div(hundred)
		out.Warnings = append(out.Warnings, Warning{
			Code:     WarnEstimatedWithholding,
			RecordID: inv.ID,
			Message:  fmt.Sprintf("withholding estimated at %s%% of subtotal", e.policy.IRPFEstimatePercent),
		})
	}

	return out
}
