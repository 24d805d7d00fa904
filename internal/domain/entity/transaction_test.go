package entity

import (
	"testing"
	"time"

	coremocks "github.com/amirhossein-jamali/finance-tracker/mocks/port/core"
	"github.com/stretchr/testify/assert"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)

	t.Run("Valid transaction creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.On("Now").Return(fixedTime).Once()

		tx := NewTransaction("credit", 100, "Salary", mockTime)

		assert.Equal(t, uint64(0), tx.ID)
		assert.Equal(t, TypeCredit, tx.Type)
		assert.Equal(t, 100.0, tx.Amount)
		assert.Equal(t, "Salary", tx.Description)
		assert.Equal(t, fixedTime, tx.Date)
		assert.True(t, tx.IsCredit())
		assert.False(t, tx.IsDebit())
	})

	t.Run("With explicit date", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		local := time.Date(2024, 1, 1, 9, 0, 0, 0, time.FixedZone("CET", 3600))

		tx := NewTransaction("debit", 40, "Rent", mockTime, WithDate(local))

		assert.Equal(t, local.UTC(), tx.Date)
		assert.Equal(t, time.UTC, tx.Date.Location())
		mockTime.AssertNotCalled(t, "Now")
	})

	t.Run("Unknown and empty types are stored as given", func(t *testing.T) {
		for _, txType := range []string{"transfer", ""} {
			mockTime := coremocks.NewMockTimeProvider(t)
			mockTime.On("Now").Return(fixedTime).Once()

			tx := NewTransaction(txType, 5, "", mockTime)

			assert.Equal(t, TransactionType(txType), tx.Type)
			assert.False(t, tx.Type.IsKnown())
			assert.False(t, tx.IsCredit())
			assert.False(t, tx.IsDebit())
		}
	})

	t.Run("Negative and zero amounts are kept", func(t *testing.T) {
		for _, amount := range []float64{0, -12.5} {
			mockTime := coremocks.NewMockTimeProvider(t)
			mockTime.On("Now").Return(fixedTime).Once()

			tx := NewTransaction("debit", amount, "Refund", mockTime)

			assert.Equal(t, amount, tx.Amount)
		}
	})
}

func TestCategoryFor(t *testing.T) {
	testCases := []struct {
		name        string
		description string
		expected    string
	}{
		{"padded lowercase", "  salary ", "Salary"},
		{"uppercase", "SALARY", "Salary"},
		{"empty", "", UncategorizedCategory},
		{"whitespace only", " \t\n", UncategorizedCategory},
		{"multi word", "grocery STORE", "Grocery store"},
		{"leading digit", "1st rent", "1st rent"},
		{"non ascii", "élan", "Élan"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CategoryFor(tc.description))
		})
	}
}

func TestWeekKey(t *testing.T) {
	testCases := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{"monday", time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), "2024-01-01"},
		{"wednesday", time.Date(2024, 1, 3, 23, 59, 0, 0, time.UTC), "2024-01-01"},
		{"sunday", time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC), "2024-01-01"},
		{"next monday", time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), "2024-01-08"},
		{"crosses year", time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC), "2024-12-30"},
		{"non utc input", time.Date(2024, 1, 8, 0, 30, 0, 0, time.FixedZone("CET", 3600)), "2024-01-01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tx := &Transaction{Date: tc.date}
			assert.Equal(t, tc.expected, tx.WeekKey())
		})
	}
}

func TestTransactionTypeIsKnown(t *testing.T) {
	assert.True(t, TypeCredit.IsKnown())
	assert.True(t, TypeDebit.IsKnown())
	assert.False(t, TransactionType("Credit").IsKnown())
	assert.False(t, TransactionType("").IsKnown())
}
