package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxLine is a single free-form additional tax entry on an invoice.
// Rate is kept as json.Number because upstream data is loosely typed;
// withholding (IRPF) is modeled as a negative percentage.
type TaxLine struct {
	Name string      `json:"name"`
	Rate json.Number `json:"rate"`
}

// Invoice is an immutable snapshot of an issued invoice. Only paid invoices
// contribute to income aggregation.
type Invoice struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	UserID          uuid.UUID       `db:"user_id" json:"user_id"`
	IssueDate       time.Time       `db:"issue_date" json:"issue_date"`
	DueDate         *time.Time      `db:"due_date" json:"due_date"`
	Subtotal        decimal.Decimal `db:"subtotal" json:"subtotal"`
	Total           decimal.Decimal `db:"total" json:"total"`
	Status          InvoiceStatus   `db:"status" json:"status"`
	AdditionalTaxes []TaxLine       `db:"-" json:"additional_taxes"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// Transaction is a generic ledger entry. Expense transactions may or may not
// have an associated ExpenseFiscalDetail.
type Transaction struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	UserID      uuid.UUID       `db:"user_id" json:"user_id"`
	Date        time.Time       `db:"date" json:"date"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Type        TransactionType `db:"type" json:"type"`
	Description string          `db:"description" json:"description"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// ExpenseFiscalDetail is the detailed fiscal breakdown of an expense
// transaction (at most one per transaction). Nil percent fields default to
// 100 during resolution.
type ExpenseFiscalDetail struct {
	ID                        uuid.UUID        `db:"id" json:"id"`
	TransactionID             uuid.UUID        `db:"transaction_id" json:"transaction_id"`
	UserID                    uuid.UUID        `db:"user_id" json:"user_id"`
	NetAmount                 decimal.Decimal  `db:"net_amount" json:"net_amount"`
	VATAmount                 decimal.Decimal  `db:"vat_amount" json:"vat_amount"`
	VATRate                   decimal.Decimal  `db:"vat_rate" json:"vat_rate"`
	VATDeductiblePercent      *decimal.Decimal `db:"vat_deductible_percent" json:"vat_deductible_percent"`
	IRPFAmount                decimal.Decimal  `db:"irpf_amount" json:"irpf_amount"`
	IRPFRate                  decimal.Decimal  `db:"irpf_rate" json:"irpf_rate"`
	TotalAmount               decimal.Decimal  `db:"total_amount" json:"total_amount"`
	DeductiblePercent         *decimal.Decimal `db:"deductible_percent" json:"deductible_percent"`
	DeductibleForCorporateTax bool             `db:"deductible_for_corporate_tax" json:"deductible_for_corporate_tax"`
	DeductibleForIRPF         bool             `db:"deductible_for_irpf" json:"deductible_for_irpf"`
	CreatedAt                 time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt                 time.Time        `db:"updated_at" json:"updated_at"`
}

// FiscalActivity records when a user's fiscal summary was last computed.
type FiscalActivity struct {
	UserID         uuid.UUID `db:"user_id" json:"user_id"`
	Year           string    `db:"year" json:"year"`
	Period         string    `db:"period" json:"period"`
	LastComputedAt time.Time `db:"last_computed_at" json:"last_computed_at"`
}

// Receipt stores metadata about an uploaded expense receipt (justificante).
type Receipt struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	UserID        uuid.UUID     `db:"user_id" json:"user_id"`
	TransactionID *uuid.UUID    `db:"transaction_id" json:"transaction_id"`
	FileName      string        `db:"file_name" json:"file_name"`
	OriginalName  string        `db:"original_name" json:"original_name"`
	FileType      FileType      `db:"file_type" json:"file_type"`
	FileSize      int64         `db:"file_size" json:"file_size"`
	S3Bucket      string        `db:"s3_bucket" json:"s3_bucket"`
	S3Key         string        `db:"s3_key" json:"s3_key"`
	ContentType   string        `db:"content_type" json:"content_type"`
	Status        ReceiptStatus `db:"status" json:"status"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// FiscalSummary is the single aggregated output of the fiscal engine. All
// numeric leaves are currency units rounded to the nearest integer; the JSON
// field names are a compatibility surface and must not change.
type FiscalSummary struct {
	Income               int64         `json:"income"`
	Expenses             int64         `json:"expenses"`
	PendingInvoices      int64         `json:"pendingInvoices"`
	PendingCount         int64         `json:"pendingCount"`
	BaseImponible        int64         `json:"baseImponible"`
	BaseImponibleGastos  int64         `json:"baseImponibleGastos"`
	IVARepercutido       int64         `json:"ivaRepercutido"`
	IVASoportado         int64         `json:"ivaSoportado"`
	IRPFRetenidoIngresos int64         `json:"irpfRetenidoIngresos"`
	IRPFGastos           int64         `json:"irpfGastos"`
	TotalWithholdings    int64         `json:"totalWithholdings"`
	NetIncome            int64         `json:"netIncome"`
	NetExpenses          int64         `json:"netExpenses"`
	NetResult            int64         `json:"netResult"`
	GastosDeducibles     int64         `json:"gastosDeducibles"`
	IVADeducible         int64         `json:"ivaDeducible"`
	ResultadoFiscal      int64         `json:"resultadoFiscal"`
	IVAAIngresar         int64         `json:"ivaAIngresar"`
	Taxes                TaxTotals     `json:"taxes"`
	TaxStats             TaxStats      `json:"taxStats"`
	Invoices             InvoiceCounts `json:"invoices"`
}

// TaxTotals holds the headline tax figures of a FiscalSummary.
type TaxTotals struct {
	VAT          int64 `json:"vat"`
	IncomeTax    int64 `json:"incomeTax"`
	IVAALiquidar int64 `json:"ivaALiquidar"`
}

// TaxStats mirrors a subset of the summary for the dashboard tax widget.
type TaxStats struct {
	IVARepercutido   int64 `json:"ivaRepercutido"`
	IVASoportado     int64 `json:"ivaSoportado"`
	IVALiquidar      int64 `json:"ivaLiquidar"`
	IRPFRetenido     int64 `json:"irpfRetenido"`
	IRPFTotal        int64 `json:"irpfTotal"`
	IRPFPagar        int64 `json:"irpfPagar"`
	GastosDeducibles int64 `json:"gastosDeducibles"`
	IVADeducible     int64 `json:"ivaDeducible"`
	ResultadoFiscal  int64 `json:"resultadoFiscal"`
	IVAAIngresar     int64 `json:"ivaAIngresar"`
}

// InvoiceCounts holds per-status invoice counts for the filtered period.
type InvoiceCounts struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	Paid        int64 `json:"paid"`
	Overdue     int64 `json:"overdue"`
	TotalAmount int64 `json:"totalAmount"`
}
