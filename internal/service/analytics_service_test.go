package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/altamira-networks/expense-server/internal/categorizer"
	"github.com/altamira-networks/expense-server/internal/storage"
	"github.com/altamira-networks/expense-server/internal/storage/sqlconfig"
)

var analyticsTestNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestAnalyticsService(t *testing.T) (*AnalyticsService, *mockExpensesTable) {
	t.Helper()
	mockTable := new(mockExpensesTable)
	store := &storage.Storage{Expenses: mockTable}
	svc := NewAnalyticsServiceAt(store, func() time.Time { return analyticsTestNow })
	return svc, mockTable
}

func analyticsRow(merchant, amount string, category categorizer.Category, date time.Time) *sqlconfig.Expense {
	return &sqlconfig.Expense{
		ID:                 uuid.Must(uuid.NewV4()),
		Merchant:           merchant,
		NormalizedMerchant: merchant,
		Amount:             decimal.RequireFromString(amount),
		Category:           category,
		ExpenseDate:        date,
		CreatedAt:          date,
	}
}

func TestSummary_FiltersByRangeAndAggregates(t *testing.T) {
	svc, mockTable := newTestAnalyticsService(t)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	mockTable.On("List", mock.Anything, mock.MatchedBy(func(f *sqlconfig.ExpenseFilter) bool {
		return f.From != nil && f.From.Equal(start) && f.To != nil && f.To.Equal(end)
	})).Return([]*sqlconfig.Expense{
		analyticsRow("Padaria Do Ze", "40.00", categorizer.CategoryFood, start),
		analyticsRow("Uber", "60.00", categorizer.CategoryTransport, start.AddDate(0, 0, 3)),
	}, nil)

	summary, err := svc.Summary(context.Background(), start, end)

	assert.NoError(t, err)
	assert.Equal(t, 2, summary.TransactionCount)
	assert.Equal(t, "100", summary.TotalSpent.String())
	assert.Equal(t, "10", summary.DailyAverage.String())
}

func TestMonthlyTrends_RequestsTrailingWindow(t *testing.T) {
	svc, mockTable := newTestAnalyticsService(t)

	expectedSince := analyticsTestNow.AddDate(0, 0, -6*trendWindowDaysPerMonth)
	mockTable.On("ListSince", mock.Anything, expectedSince).
		Return([]*sqlconfig.Expense{
			analyticsRow("Uber", "25.00", categorizer.CategoryTransport, analyticsTestNow.AddDate(0, 0, -2)),
		}, nil)

	trends, err := svc.MonthlyTrends(context.Background(), 6)

	assert.NoError(t, err)
	assert.Len(t, trends, 1)
	assert.Equal(t, "2025-06", trends[0].Period)
	mockTable.AssertExpectations(t)
}

func TestCategoryTrends_PartitionsByCategory(t *testing.T) {
	svc, mockTable := newTestAnalyticsService(t)

	mockTable.On("ListSince", mock.Anything, mock.Anything).
		Return([]*sqlconfig.Expense{
			analyticsRow("Padaria Do Ze", "40.00", categorizer.CategoryFood, analyticsTestNow.AddDate(0, 0, -1)),
			analyticsRow("Uber", "25.00", categorizer.CategoryTransport, analyticsTestNow.AddDate(0, 0, -1)),
		}, nil)

	trends, err := svc.CategoryTrends(context.Background(), 6)

	assert.NoError(t, err)
	assert.Len(t, trends, 2)
	assert.Contains(t, trends, categorizer.CategoryFood)
	assert.Contains(t, trends, categorizer.CategoryTransport)
}

func TestUnusualSpending_UsesNinetyDayWindow(t *testing.T) {
	svc, mockTable := newTestAnalyticsService(t)

	expectedSince := analyticsTestNow.AddDate(0, 0, -outlierWindowDays)
	mockTable.On("ListSince", mock.Anything, expectedSince).
		Return([]*sqlconfig.Expense{}, nil)

	outliers, err := svc.UnusualSpending(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, outliers)
	mockTable.AssertExpectations(t)
}

func TestBudgetRecommendations_Delegates(t *testing.T) {
	svc, mockTable := newTestAnalyticsService(t)

	rows := make([]*sqlconfig.Expense, 0, 3)
	for i := 0; i < 3; i++ {
		rows = append(rows, analyticsRow("Padaria Do Ze", "100.00", categorizer.CategoryFood, analyticsTestNow.AddDate(0, 0, -i*20)))
	}
	mockTable.On("ListSince", mock.Anything, mock.Anything).Return(rows, nil)

	rec, err := svc.BudgetRecommendations(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "100", rec.MonthlyBudget.String())
}
