package analytics

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/altamira-networks/expense-server/internal/categorizer"
)

// testNow is the fixed clock all trailing-window tests run against.
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestEngine() *Engine {
	return NewEngineAt(func() time.Time { return testNow })
}

func tx(merchant string, amount string, category categorizer.Category, date time.Time) Transaction {
	return Transaction{
		ID:       uuid.Must(uuid.NewV4()),
		Merchant: merchant,
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
	}
}

// -- SpendingSummary tests --

func TestSpendingSummary_EmptySet(t *testing.T) {
	engine := newTestEngine()

	summary, err := engine.SpendingSummary(nil, testNow.AddDate(0, -1, 0), testNow)
	assert.NoError(t, err)
	assert.True(t, summary.TotalSpent.IsZero())
	assert.Equal(t, 0, summary.TransactionCount)
	assert.True(t, summary.DailyAverage.IsZero())
	assert.Empty(t, summary.CategoryBreakdown)
	assert.Empty(t, summary.TopMerchants)
}

func TestSpendingSummary_InvalidDateRange(t *testing.T) {
	engine := newTestEngine()

	_, err := engine.SpendingSummary(nil, testNow, testNow.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestSpendingSummary_Totals(t *testing.T) {
	engine := newTestEngine()
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	txs := []Transaction{
		tx("Padaria Do Joao", "23.50", categorizer.CategoryFood, day),
		tx("Posto Shell", "150.00", categorizer.CategoryTransport, day),
		tx("Padaria Do Joao", "10.00", categorizer.CategoryFood, day),
	}

	summary, err := engine.SpendingSummary(txs, day, day)
	assert.NoError(t, err)
	assert.Equal(t, "183.5", summary.TotalSpent.String())
	assert.Equal(t, 3, summary.TransactionCount)
	assert.Equal(t, "33.5", summary.CategoryBreakdown[categorizer.CategoryFood].String())
	assert.Equal(t, "150", summary.CategoryBreakdown[categorizer.CategoryTransport].String())
	// Single-day range: daily average equals the total.
	assert.True(t, summary.DailyAverage.Equal(summary.TotalSpent))
}

func TestSpendingSummary_RefundsReduceTotals(t *testing.T) {
	engine := newTestEngine()
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	txs := []Transaction{
		tx("Loja Azul", "100.00", categorizer.CategoryShopping, day),
		tx("Loja Azul", "-20.00", categorizer.CategoryShopping, day),
	}

	summary, err := engine.SpendingSummary(txs, day, day)
	assert.NoError(t, err)
	assert.Equal(t, "80", summary.TotalSpent.String())
	assert.Equal(t, "80", summary.CategoryBreakdown[categorizer.CategoryShopping].String())
}

func TestSpendingSummary_TopMerchantsOrderedAndCapped(t *testing.T) {
	engine := newTestEngine()
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	var txs []Transaction
	for i := 0; i < 12; i++ {
		amount := decimal.NewFromInt(int64(10 + i))
		txs = append(txs, Transaction{
			ID:       uuid.Must(uuid.NewV4()),
			Merchant: string(rune('A' + i)),
			Amount:   amount,
			Category: categorizer.CategoryShopping,
			Date:     day,
		})
	}

	summary, err := engine.SpendingSummary(txs, day, day)
	assert.NoError(t, err)
	assert.Len(t, summary.TopMerchants, 10)
	// Highest spend first.
	assert.Equal(t, "L", summary.TopMerchants[0].Merchant)
	assert.Equal(t, "21", summary.TopMerchants[0].Amount.String())
	for i := 1; i < len(summary.TopMerchants); i++ {
		assert.True(t, summary.TopMerchants[i].Amount.LessThanOrEqual(summary.TopMerchants[i-1].Amount))
	}
}

func TestSpendingSummary_DailyAverageUsesInclusiveDays(t *testing.T) {
	engine := newTestEngine()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	txs := []Transaction{
		tx("Loja Azul", "100.00", categorizer.CategoryShopping, start),
	}

	summary, err := engine.SpendingSummary(txs, start, end)
	assert.NoError(t, err)
	// 10 inclusive days.
	assert.Equal(t, "10", summary.DailyAverage.String())
}

func TestSpendingSummary_UncategorizedCountsAsOther(t *testing.T) {
	engine := newTestEngine()
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	txs := []Transaction{
		{ID: uuid.Must(uuid.NewV4()), Merchant: "X", Amount: decimal.NewFromInt(5), Date: day},
	}

	summary, err := engine.SpendingSummary(txs, day, day)
	assert.NoError(t, err)
	assert.Equal(t, "5", summary.CategoryBreakdown[categorizer.CategoryOther].String())
}

// -- Trend tests --

func TestMonthlyTrends_GroupsAndSorts(t *testing.T) {
	engine := newTestEngine()

	txs := []Transaction{
		tx("A", "10.00", categorizer.CategoryFood, time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC)),
		tx("B", "20.00", categorizer.CategoryFood, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		tx("C", "30.00", categorizer.CategoryFood, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)),
	}

	points := engine.MonthlyTrends(txs, 6)
	assert.Equal(t, []string{"2025-05", "2025-06"}, []string{points[0].Period, points[1].Period})
	assert.Equal(t, "40", points[0].TotalSpent.String())
	assert.Equal(t, 2, points[0].TransactionCount)
	assert.Equal(t, "20", points[1].TotalSpent.String())
}

func TestMonthlyTrends_WindowExcludesOldMonths(t *testing.T) {
	engine := newTestEngine()

	txs := []Transaction{
		// 3 * 30 days before testNow is 2025-03-17; February falls outside.
		tx("Old", "10.00", categorizer.CategoryFood, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)),
		tx("New", "20.00", categorizer.CategoryFood, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
	}

	points := engine.MonthlyTrends(txs, 3)
	assert.Len(t, points, 1)
	assert.Equal(t, "2025-06", points[0].Period)
}

func TestMonthlyTrends_EmptyMonthsAbsent(t *testing.T) {
	engine := newTestEngine()

	txs := []Transaction{
		tx("A", "10.00", categorizer.CategoryFood, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)),
		tx("B", "20.00", categorizer.CategoryFood, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)),
	}

	points := engine.MonthlyTrends(txs, 12)
	// No zero-filled points for the silent months in between.
	assert.Len(t, points, 2)
}

func TestCategoryTrends_PartitionsByCategory(t *testing.T) {
	engine := newTestEngine()
	may := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

	txs := []Transaction{
		tx("A", "10.00", categorizer.CategoryFood, may),
		tx("B", "20.00", categorizer.CategoryTransport, may),
		tx("C", "5.00", categorizer.CategoryFood, may),
	}

	trends := engine.CategoryTrends(txs, 6)
	assert.Len(t, trends, 2)
	assert.Equal(t, "15", trends[categorizer.CategoryFood][0].TotalSpent.String())
	assert.Equal(t, "20", trends[categorizer.CategoryTransport][0].TotalSpent.String())
}
