package domain

// InvoiceStatus represents the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft    InvoiceStatus = "draft"
	InvoiceStatusSent     InvoiceStatus = "sent"
	InvoiceStatusPaid     InvoiceStatus = "paid"
	InvoiceStatusPending  InvoiceStatus = "pending"
	InvoiceStatusOverdue  InvoiceStatus = "overdue"
	InvoiceStatusCanceled InvoiceStatus = "canceled"
	InvoiceStatusAccepted InvoiceStatus = "accepted"
	InvoiceStatusRejected InvoiceStatus = "rejected"
)

// PendingStatuses are the invoice states counted as outstanding income.
var PendingStatuses = map[InvoiceStatus]bool{
	InvoiceStatusSent:    true,
	InvoiceStatusPending: true,
	InvoiceStatusOverdue: true,
}

// TransactionType distinguishes ledger entry directions.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// TaxKind classifies an invoice tax line once at ingestion so aggregation
// never re-parses name substrings.
type TaxKind string

const (
	TaxKindVAT   TaxKind = "vat"
	TaxKindIRPF  TaxKind = "irpf"
	TaxKindOther TaxKind = "other"
)

// FileType represents the allowed receipt file types.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF: "application/pdf",
	FileTypeJPG: "image/jpeg",
	FileTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
}

// ReceiptStatus represents the lifecycle of an uploaded receipt.
type ReceiptStatus string

const (
	ReceiptStatusPending  ReceiptStatus = "pending"
	ReceiptStatusUploaded ReceiptStatus = "uploaded"
	ReceiptStatusFailed   ReceiptStatus = "failed"
	ReceiptStatusDeleted  ReceiptStatus = "deleted"
)
