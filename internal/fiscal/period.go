package fiscal

import (
	"regexp"
	"strconv"
	"time"

	"facturalo/internal/domain"
)

// PeriodAll selects every quarter of the requested year.
const PeriodAll = "all"

var quarterPattern = regexp.MustCompile(`^Q([1-4])$`)

// quarterOf returns the calendar quarter of a date, 1-indexed.
func quarterOf(t time.Time) int {
	return (int(t.Month()) + 2) / 3
}

// inPeriod reports whether a date falls inside the requested year/quarter
// window. An empty year admits every record. A period value that is neither
// "all" nor Q1..Q4 excludes everything (fail-closed, no error).
func inPeriod(date time.Time, year, period string) bool {
	if year == "" {
		return true
	}
	if strconv.Itoa(date.Year()) != year {
		return false
	}
	if period == "" || period == PeriodAll {
		return true
	}
	m := quarterPattern.FindStringSubmatch(period)
	if m == nil {
		return false
	}
	q, _ := strconv.Atoi(m[1])
	return quarterOf(date) == q
}

// FilterInvoices selects the invoices whose issue date falls in the window.
func FilterInvoices(invoices []domain.Invoice, year, period string) []domain.Invoice {
	out := make([]domain.Invoice, 0, len(invoices))
	for i := range invoices {
		if inPeriod(invoices[i].IssueDate, year, period) {
			out = append(out, invoices[i])
		}
	}
	return out
}

// FilterTransactions selects the transactions whose date falls in the window.
func FilterTransactions(txs []domain.Transaction, year, period string) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(txs))
	for i := range txs {
		if inPeriod(txs[i].Date, year, period) {
			out = append(out, txs[i])
		}
	}
	return out
}
