package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SalesFilter struct {
	From *time.Time
	To   *time.Time
}

type SalesLine struct {
	RegistrationID uuid.UUID
	EventTitle     string
	UserName       string
	AmountPaid     decimal.Decimal
	PaymentStatus  PaymentStatus
	PaymentDate    time.Time
}

type SalesReport struct {
	Lines []SalesLine
	Total decimal.Decimal
	Count int
}

// NewSalesReport totals the lines at two decimal places.
func NewSalesReport(lines []SalesLine) *SalesReport {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.AmountPaid)
	}
	if lines == nil {
		lines = []SalesLine{}
	}
	return &SalesReport{Lines: lines, Total: total.Round(2), Count: len(lines)}
}

type EventReportLine struct {
	EventID         uuid.UUID
	Title           string
	StartsAt        time.Time
	Capacity        *int
	RegisteredUsers int
	TotalRevenue    decimal.Decimal
}
