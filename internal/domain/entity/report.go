package entity

// WeeklyBucket holds the credit, debit and net balance totals for one week
type WeeklyBucket struct {
	Week    string  `json:"week"`
	Credit  float64 `json:"credit"`
	Debit   float64 `json:"debit"`
	Balance float64 `json:"balance"`
}

// BreakdownEntry holds the total amount for one (type, category) pair
type BreakdownEntry struct {
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Amount   float64         `json:"amount"`
}
