package service

import (
	"github.com/altamira-networks/expense-server/internal/aicategorizer"
	"github.com/altamira-networks/expense-server/internal/categorizer"
	"github.com/altamira-networks/expense-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Expense   *ExpenseService
	Analytics *AnalyticsService
}

// NewService creates a new Service with the given storage and write path.
// remote may be nil, in which case categorization is purely rule based.
func NewService(store *storage.Storage, processor ActionProcessor, remote aicategorizer.Categorizer) *Service {
	engine := categorizer.NewEngine()

	return &Service{
		Expense:   NewExpenseService(store, processor, engine, remote),
		Analytics: NewAnalyticsService(store),
	}
}
