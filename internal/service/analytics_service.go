package service

import (
	"context"
	"time"

	"github.com/altamira-networks/expense-server/internal/analytics"
	"github.com/altamira-networks/expense-server/internal/categorizer"
	"github.com/altamira-networks/expense-server/internal/storage"
	"github.com/altamira-networks/expense-server/internal/storage/sqlconfig"
)

const trendWindowDaysPerMonth = 30

const outlierWindowDays = 90

// AnalyticsService loads expenses and runs the analytics engine over them.
type AnalyticsService struct {
	storage *storage.Storage
	engine  *analytics.Engine
	now     func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(store *storage.Storage) *AnalyticsService {
	return &AnalyticsService{
		storage: store,
		engine:  analytics.NewEngine(),
		now:     time.Now,
	}
}

// NewAnalyticsServiceAt pins the clock, for tests.
func NewAnalyticsServiceAt(store *storage.Storage, now func() time.Time) *AnalyticsService {
	return &AnalyticsService{
		storage: store,
		engine:  analytics.NewEngineAt(now),
		now:     now,
	}
}

// Summary aggregates spending between start and end inclusive.
func (s *AnalyticsService) Summary(ctx context.Context, start, end time.Time) (analytics.SpendingSummary, error) {
	filter := &sqlconfig.ExpenseFilter{
		From: &start,
		To:   &end,
	}

	rows, err := s.storage.Expenses.List(ctx, filter)
	if err != nil {
		return analytics.SpendingSummary{}, err
	}

	return s.engine.SpendingSummary(transactionsFromStorage(rows), start, end)
}

// MonthlyTrends returns per-month totals over a trailing window.
func (s *AnalyticsService) MonthlyTrends(ctx context.Context, months int) ([]analytics.TrendPoint, error) {
	txs, err := s.loadWindow(ctx, months*trendWindowDaysPerMonth)
	if err != nil {
		return nil, err
	}

	return s.engine.MonthlyTrends(txs, months), nil
}

// CategoryTrends returns per-month totals partitioned by category over a
// trailing window.
func (s *AnalyticsService) CategoryTrends(ctx context.Context, months int) (map[categorizer.Category][]analytics.TrendPoint, error) {
	txs, err := s.loadWindow(ctx, months*trendWindowDaysPerMonth)
	if err != nil {
		return nil, err
	}

	return s.engine.CategoryTrends(txs, months), nil
}

// UnusualSpending flags transactions far above the norm of the recent window,
// largest amounts first.
func (s *AnalyticsService) UnusualSpending(ctx context.Context) ([]analytics.OutlierRecord, error) {
	txs, err := s.loadWindow(ctx, outlierWindowDays)
	if err != nil {
		return nil, err
	}

	return s.engine.DetectUnusualSpending(txs), nil
}

// BudgetRecommendations derives per-category budgets from the last quarter.
func (s *AnalyticsService) BudgetRecommendations(ctx context.Context) (analytics.BudgetRecommendation, error) {
	txs, err := s.loadWindow(ctx, outlierWindowDays)
	if err != nil {
		return analytics.BudgetRecommendation{}, err
	}

	return s.engine.BudgetRecommendations(txs)
}

func (s *AnalyticsService) loadWindow(ctx context.Context, days int) ([]analytics.Transaction, error) {
	since := s.now().AddDate(0, 0, -days)

	rows, err := s.storage.Expenses.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}

	return transactionsFromStorage(rows), nil
}

func transactionsFromStorage(rows []*sqlconfig.Expense) []analytics.Transaction {
	txs := make([]analytics.Transaction, len(rows))
	for i, row := range rows {
		txs[i] = analytics.Transaction{
			ID:       row.ID,
			Merchant: row.NormalizedMerchant,
			Amount:   row.Amount,
			Category: row.Category,
			Date:     row.ExpenseDate,
		}
	}
	return txs
}
