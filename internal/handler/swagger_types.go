package handler

import (
	"github.com/google/uuid"

	"facturalo/internal/domain"
	"facturalo/internal/fiscal"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// WarningEntry is a single computation warning in API responses.
type WarningEntry struct {
	Code     string `json:"code" example:"MALFORMED_TAX_RATE"`
	RecordID string `json:"record_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Message  string `json:"message" example:"tax line \"IRPF\" has unparseable rate, treated as 0"`
}

// SummaryWithWarnings bundles a fiscal summary with its computation warnings.
type SummaryWithWarnings struct {
	Summary  *domain.FiscalSummary `json:"summary"`
	Warnings []WarningEntry        `json:"warnings"`
}

func toWarningEntries(warnings []fiscal.Warning) []WarningEntry {
	entries := make([]WarningEntry, 0, len(warnings))
	for _, w := range warnings {
		entry := WarningEntry{Code: w.Code, Message: w.Message}
		if w.RecordID != uuid.Nil {
			entry.RecordID = w.RecordID.String()
		}
		entries = append(entries, entry)
	}
	return entries
}

// DownloadURLResponse carries a presigned download URL.
type DownloadURLResponse struct {
	DownloadURL string `json:"download_url" example:"https://s3.eu-west-1.amazonaws.com/facturalo-receipts/...?X-Amz-Signature=..."`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
