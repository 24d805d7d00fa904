package entity

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	tport "github.com/amirhossein-jamali/finance-tracker/internal/domain/port/core"
)

// TransactionType represents the direction of a transaction
type TransactionType string

// Transaction types
const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

// UncategorizedCategory is the breakdown category for transactions without a description
const UncategorizedCategory = "Uncategorized"

// weekKeyLayout formats a week start as YYYY-MM-DD
const weekKeyLayout = "2006-01-02"

// IsKnown reports whether the type is credit or debit
func (t TransactionType) IsKnown() bool {
	return t == TypeCredit || t == TypeDebit
}

// Transaction represents a single credit or debit record
type Transaction struct {
	ID          uint64          // Assigned by the store on creation
	Type        TransactionType // Conventionally credit or debit; other values are stored as-is
	Amount      float64         // No sign constraint
	Description string          // Optional; empty means absent
	Date        time.Time       // Defaults to creation time
}

// TransactionOption customizes a transaction built by NewTransaction
type TransactionOption func(*Transaction)

// WithDate pins the transaction date instead of using the creation time
func WithDate(date time.Time) TransactionOption {
	return func(t *Transaction) {
		t.Date = date.UTC()
	}
}

// NewTransaction creates a new transaction dated now unless WithDate is given.
// The type is stored as given.
func NewTransaction(
	txType string,
	amount float64,
	description string,
	timeProvider tport.TimeProvider,
	opts ...TransactionOption,
) *Transaction {
	tx := &Transaction{
		Type:        TransactionType(txType),
		Amount:      amount,
		Description: description,
	}

	for _, opt := range opts {
		opt(tx)
	}

	if tx.Date.IsZero() {
		tx.Date = timeProvider.Now().UTC()
	}

	return tx
}

// IsCredit returns true if this transaction adds to the balance
func (t *Transaction) IsCredit() bool {
	return t.Type == TypeCredit
}

// IsDebit returns true if this transaction subtracts from the balance
func (t *Transaction) IsDebit() bool {
	return t.Type == TypeDebit
}

// Category derives the breakdown category from the description
func (t *Transaction) Category() string {
	return CategoryFor(t.Description)
}

// WeekKey returns the Monday of the week containing the transaction date, as YYYY-MM-DD
func (t *Transaction) WeekKey() string {
	return WeekStart(t.Date).Format(weekKeyLayout)
}

// CategoryFor trims the description and capitalizes it: the first rune is
// title-cased and the rest lower-cased. Blank descriptions are Uncategorized.
func CategoryFor(description string) string {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return UncategorizedCategory
	}

	first, size := utf8.DecodeRuneInString(trimmed)
	return string(unicode.ToTitle(first)) + strings.ToLower(trimmed[size:])
}

// WeekStart returns the date (UTC, time of day kept) of the Monday on or before date
func WeekStart(date time.Time) time.Time {
	d := date.UTC()
	return d.AddDate(0, 0, -isoWeekday(d))
}

// isoWeekday maps Go's Sunday-first weekday onto Monday=0..Sunday=6
func isoWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
