package dto

import "github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"

// WeeklyReportEntry is one week of the weekly report
type WeeklyReportEntry struct {
	Week    string  `json:"week"`
	Credit  float64 `json:"credit"`
	Debit   float64 `json:"debit"`
	Balance float64 `json:"balance"`
}

// BreakdownReportEntry is one (type, category) total of the breakdown report
type BreakdownReportEntry struct {
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// NewWeeklyReportResponse maps weekly buckets, keeping their order
func NewWeeklyReportResponse(buckets []entity.WeeklyBucket) []WeeklyReportEntry {
	response := make([]WeeklyReportEntry, 0, len(buckets))
	for _, b := range buckets {
		response = append(response, WeeklyReportEntry{
			Week:    b.Week,
			Credit:  b.Credit,
			Debit:   b.Debit,
			Balance: b.Balance,
		})
	}
	return response
}

// NewBreakdownReportResponse maps breakdown entries, keeping their order
func NewBreakdownReportResponse(entries []entity.BreakdownEntry) []BreakdownReportEntry {
	response := make([]BreakdownReportEntry, 0, len(entries))
	for _, e := range entries {
		response = append(response, BreakdownReportEntry{
			Type:     string(e.Type),
			Category: e.Category,
			Amount:   e.Amount,
		})
	}
	return response
}
