package fiscal

import "github.com/google/uuid"

// Warning codes surfaced alongside a computed summary. Data-quality issues
// degrade individual figures; they never fail the computation.
const (
	WarnPositiveIRPFRate     = "POSITIVE_IRPF_RATE"
	WarnMalformedTaxRate     = "MALFORMED_TAX_RATE"
	WarnEstimatedWithholding = "ESTIMATED_WITHHOLDING"
	WarnSkippedTransaction   = "SKIPPED_TRANSACTION"
	WarnAnomalousWithholding = "ANOMALOUS_WITHHOLDING"
	WarnCorrectedWithholding = "CORRECTED_WITHHOLDING"
)

// Warning is a non-fatal data-quality diagnostic tied to a source record.
type Warning struct {
	Code     string    `json:"code"`
	RecordID uuid.UUID `json:"record_id,omitempty"`
	Message  string    `json:"message"`
}
