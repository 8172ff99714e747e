package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/altamira-networks/expense-server/internal/categorizer"
)

// trendWindow returns the cutoff for a trailing window of months. Months are
// approximated as 30 days, matching the simple quarter math used by the
// budget recommendations.
func (e *Engine) trendWindow(months int) time.Time {
	return e.now().AddDate(0, 0, -months*30)
}

const periodLayout = "2006-01"

// MonthlyTrends groups spending by calendar month over the trailing window of
// months*30 days. Months with no transactions are absent, not zero-filled.
// Points are sorted ascending by period key.
func (e *Engine) MonthlyTrends(txs []Transaction, months int) []TrendPoint {
	cutoff := e.trendWindow(months)

	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	for _, tx := range txs {
		if tx.Date.Before(cutoff) {
			continue
		}
		period := tx.Date.Format(periodLayout)
		totals[period] = totals[period].Add(tx.Amount)
		counts[period]++
	}

	return sortedTrendPoints(totals, counts)
}

// CategoryTrends is MonthlyTrends partitioned by category.
func (e *Engine) CategoryTrends(txs []Transaction, months int) map[categorizer.Category][]TrendPoint {
	cutoff := e.trendWindow(months)

	totals := make(map[categorizer.Category]map[string]decimal.Decimal)
	counts := make(map[categorizer.Category]map[string]int)
	for _, tx := range txs {
		if tx.Date.Before(cutoff) {
			continue
		}
		category := tx.Category
		if category == "" {
			category = categorizer.CategoryOther
		}
		if totals[category] == nil {
			totals[category] = make(map[string]decimal.Decimal)
			counts[category] = make(map[string]int)
		}
		period := tx.Date.Format(periodLayout)
		totals[category][period] = totals[category][period].Add(tx.Amount)
		counts[category][period]++
	}

	trends := make(map[categorizer.Category][]TrendPoint, len(totals))
	for category, categoryTotals := range totals {
		trends[category] = sortedTrendPoints(categoryTotals, counts[category])
	}
	return trends
}

func sortedTrendPoints(totals map[string]decimal.Decimal, counts map[string]int) []TrendPoint {
	points := make([]TrendPoint, 0, len(totals))
	for period, total := range totals {
		points = append(points, TrendPoint{
			Period:           period,
			TotalSpent:       total,
			TransactionCount: counts[period],
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Period < points[j].Period })
	return points
}
