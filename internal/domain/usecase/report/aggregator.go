package report

import (
	"sort"

	"github.com/amirhossein-jamali/finance-tracker/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// weekTotals accumulates one week's sums
type weekTotals struct {
	credit  decimal.Decimal
	debit   decimal.Decimal
	balance decimal.Decimal
}

// WeeklyReport groups transactions by the Monday that starts their week.
// Every transaction opens its week's bucket, but only credits and debits move the sums.
// Buckets are returned in ascending week order.
func WeeklyReport(transactions []*entity.Transaction) []entity.WeeklyBucket {
	weeks := make(map[string]*weekTotals)

	for _, tx := range transactions {
		key := tx.WeekKey()

		totals, ok := weeks[key]
		if !ok {
			totals = &weekTotals{}
			weeks[key] = totals
		}

		amount := decimal.NewFromFloat(tx.Amount)
		switch {
		case tx.IsCredit():
			totals.credit = totals.credit.Add(amount)
			totals.balance = totals.balance.Add(amount)
		case tx.IsDebit():
			totals.debit = totals.debit.Add(amount)
			totals.balance = totals.balance.Sub(amount)
		}
	}

	buckets := make([]entity.WeeklyBucket, 0, len(weeks))
	for key, totals := range weeks {
		buckets = append(buckets, entity.WeeklyBucket{
			Week:    key,
			Credit:  totals.credit.InexactFloat64(),
			Debit:   totals.debit.InexactFloat64(),
			Balance: totals.balance.InexactFloat64(),
		})
	}

	// YYYY-MM-DD keys sort chronologically
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Week < buckets[j].Week
	})

	return buckets
}

// categoryTotals is an insertion-ordered category -> sum map
type categoryTotals struct {
	order []string
	sums  map[string]decimal.Decimal
}

func newCategoryTotals() *categoryTotals {
	return &categoryTotals{sums: make(map[string]decimal.Decimal)}
}

func (c *categoryTotals) add(category string, amount decimal.Decimal) {
	sum, ok := c.sums[category]
	if !ok {
		c.order = append(c.order, category)
	}
	c.sums[category] = sum.Add(amount)
}

// BreakdownReport sums amounts per category, separately for credits and debits.
// Credit entries come first, then debit entries, each in first-seen category order.
// Transactions of any other type are left out.
func BreakdownReport(transactions []*entity.Transaction) []entity.BreakdownEntry {
	byType := map[entity.TransactionType]*categoryTotals{
		entity.TypeCredit: newCategoryTotals(),
		entity.TypeDebit:  newCategoryTotals(),
	}

	for _, tx := range transactions {
		totals, ok := byType[tx.Type]
		if !ok {
			continue
		}
		totals.add(tx.Category(), decimal.NewFromFloat(tx.Amount))
	}

	entries := make([]entity.BreakdownEntry, 0)
	for _, txType := range []entity.TransactionType{entity.TypeCredit, entity.TypeDebit} {
		totals := byType[txType]
		for _, category := range totals.order {
			entries = append(entries, entity.BreakdownEntry{
				Type:     txType,
				Category: category,
				Amount:   totals.sums[category].InexactFloat64(),
			})
		}
	}

	return entries
}
