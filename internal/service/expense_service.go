package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/altamira-networks/expense-server/internal/aicategorizer"
	"github.com/altamira-networks/expense-server/internal/categorizer"
	"github.com/altamira-networks/expense-server/internal/operator/actions"
	"github.com/altamira-networks/expense-server/internal/storage"
	"github.com/altamira-networks/expense-server/internal/storage/sqlconfig"
)

const defaultLimit = 20

const remoteCategorizeTimeout = 5 * time.Second

// ActionProcessor runs a write action through the operator queue.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// ExpenseService handles expense business logic.
type ExpenseService struct {
	storage       *storage.Storage
	processor     ActionProcessor
	engine        *categorizer.Engine
	remote        aicategorizer.Categorizer
	remoteTimeout time.Duration
}

// NewExpenseService creates a new ExpenseService. remote may be nil.
func NewExpenseService(store *storage.Storage, processor ActionProcessor, engine *categorizer.Engine, remote aicategorizer.Categorizer) *ExpenseService {
	return &ExpenseService{
		storage:       store,
		processor:     processor,
		engine:        engine,
		remote:        remote,
		remoteTimeout: remoteCategorizeTimeout,
	}
}

// SetRemoteTimeout overrides the per-call deadline for the remote categorizer.
func (s *ExpenseService) SetRemoteTimeout(timeout time.Duration) {
	if timeout > 0 {
		s.remoteTimeout = timeout
	}
}

// CreateExpense categorizes and records a new expense. The caller may pin a
// category, otherwise the remote categorizer is consulted first (when
// configured) with the rule engine as fallback.
func (s *ExpenseService) CreateExpense(ctx context.Context, create ExpenseCreate) (Expense, error) {
	category := s.resolveCategory(ctx, create)
	normalized := categorizer.Normalize(create.Merchant)

	action := &actions.CreateExpense{
		Merchant:           create.Merchant,
		NormalizedMerchant: normalized,
		Amount:             create.Amount,
		Category:           category,
		Description:        create.Description,
		Tags:               create.Tags,
		ExpenseDate:        create.ExpenseDate,
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return Expense{}, err
	}

	expenseDate := create.ExpenseDate
	if expenseDate.IsZero() {
		expenseDate = time.Now()
	}

	return Expense{
		ID:                 action.ID,
		Merchant:           create.Merchant,
		NormalizedMerchant: normalized,
		Amount:             create.Amount,
		Category:           category,
		Description:        create.Description,
		Tags:               create.Tags,
		ExpenseDate:        expenseDate,
	}, nil
}

func (s *ExpenseService) resolveCategory(ctx context.Context, create ExpenseCreate) categorizer.Category {
	if create.Category != nil {
		return *create.Category
	}

	amount := create.Amount.InexactFloat64()

	if s.remote != nil {
		remoteCtx, cancel := context.WithTimeout(ctx, s.remoteTimeout)
		defer cancel()

		category, err := s.remote.Categorize(remoteCtx, create.Merchant, amount, create.Description)
		if err == nil {
			return category
		}
	}

	return s.engine.CategorizeWithEnhancedRules(create.Merchant, amount, create.Description)
}

// RecategorizeExpense re-assigns the category of an existing expense and
// returns the updated record. Returns sqlconfig.ErrExpenseNotFound when the
// expense does not exist.
func (s *ExpenseService) RecategorizeExpense(ctx context.Context, update ExpenseRecategorize) (Expense, error) {
	action := &actions.RecategorizeExpense{
		ExpenseID: update.ID,
		Category:  update.Category,
		Merchant:  update.Merchant,
		Engine:    s.engine,
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return Expense{}, err
	}

	return expenseFromStorage(&action.Result), nil
}

// GetExpense returns a single expense by ID. Returns
// sqlconfig.ErrExpenseNotFound when the expense does not exist.
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (Expense, error) {
	row, err := s.storage.Expenses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Expense{}, sqlconfig.ErrExpenseNotFound
		}
		return Expense{}, err
	}

	return expenseFromStorage(row), nil
}

// ListExpenses returns a page of expenses using cursor-based pagination.
func (s *ExpenseService) ListExpenses(ctx context.Context, filter ExpenseFilter, cursor *ExpenseCursor) ([]Expense, *ExpenseCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	storageFilter := &sqlconfig.ExpenseFilter{
		Category:        filter.Category,
		From:            filter.From,
		To:              filter.To,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Expenses.List(ctx, storageFilter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *ExpenseCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &ExpenseCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedExpenses := make([]Expense, len(rows))
	for i, row := range rows {
		convertedExpenses[i] = expenseFromStorage(row)
	}

	return convertedExpenses, nextCursor, nil
}

// SuggestCategories ranks likely categories for a merchant name.
func (s *ExpenseService) SuggestCategories(merchant string) []categorizer.Category {
	return s.engine.SuggestCategories(merchant)
}

func expenseFromStorage(row *sqlconfig.Expense) Expense {
	return Expense{
		ID:                 row.ID,
		Merchant:           row.Merchant,
		NormalizedMerchant: row.NormalizedMerchant,
		Amount:             row.Amount,
		Category:           row.Category,
		Description:        row.Description,
		Tags:               row.Tags,
		ExpenseDate:        row.ExpenseDate,
		CreatedAt:          row.CreatedAt,
	}
}
