package fiscal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"facturalo/internal/domain"
	"facturalo/internal/fiscal"
)

func invoiceOn(date string) domain.Invoice {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return domain.Invoice{IssueDate: t, Status: domain.InvoiceStatusPaid}
}

func transactionOn(date string) domain.Transaction {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return domain.Transaction{Date: t, Type: domain.TransactionTypeExpense}
}

func TestFilterInvoices_QuarterBoundaries(t *testing.T) {
	invoices := []domain.Invoice{
		invoiceOn("2024-01-01"), // Q1 start
		invoiceOn("2024-03-31"), // Q1 end
		invoiceOn("2024-04-01"), // Q2 start
		invoiceOn("2024-06-30"), // Q2 end
		invoiceOn("2024-07-01"), // Q3
		invoiceOn("2024-12-31"), // Q4 end
	}

	assert.Len(t, fiscal.FilterInvoices(invoices, "2024", "Q1"), 2)
	assert.Len(t, fiscal.FilterInvoices(invoices, "2024", "Q2"), 2)
	assert.Len(t, fiscal.FilterInvoices(invoices, "2024", "Q3"), 1)
	assert.Len(t, fiscal.FilterInvoices(invoices, "2024", "Q4"), 1)
}

func TestFilterInvoices_YearScoping(t *testing.T) {
	invoices := []domain.Invoice{
		invoiceOn("2023-12-31"),
		invoiceOn("2024-01-01"),
		invoiceOn("2025-01-01"),
	}

	assert.Len(t, fiscal.FilterInvoices(invoices, "2024", "all"), 1)
	assert.Len(t, fiscal.FilterInvoices(invoices, "2024", ""), 1)
}

func TestFilterInvoices_EmptyYearAdmitsEverything(t *testing.T) {
	invoices := []domain.Invoice{
		invoiceOn("2019-05-20"),
		invoiceOn("2024-02-11"),
	}

	// Without a year the period is irrelevant, even a garbage one.
	assert.Len(t, fiscal.FilterInvoices(invoices, "", "Q1"), 2)
	assert.Len(t, fiscal.FilterInvoices(invoices, "", "nonsense"), 2)
}

func TestFilterInvoices_MalformedPeriodExcludesEverything(t *testing.T) {
	invoices := []domain.Invoice{
		invoiceOn("2024-02-01"),
		invoiceOn("2024-08-01"),
	}

	for _, period := range []string{"Q5", "Q0", "q1", "T1", "first", "1"} {
		assert.Empty(t, fiscal.FilterInvoices(invoices, "2024", period), "period %q", period)
	}
}

func TestFilterTransactions_QuarterAndYear(t *testing.T) {
	txs := []domain.Transaction{
		transactionOn("2024-03-15"),
		transactionOn("2024-10-02"),
		transactionOn("2023-03-15"),
	}

	q1 := fiscal.FilterTransactions(txs, "2024", "Q1")
	assert.Len(t, q1, 1)
	assert.Equal(t, time.March, q1[0].Date.Month())

	assert.Len(t, fiscal.FilterTransactions(txs, "2024", "all"), 2)
	assert.Len(t, fiscal.FilterTransactions(txs, "", ""), 3)
}
