package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/altamira-networks/expense-server/internal/categorizer"
)

// Expense represents a categorized expense record.
type Expense struct {
	ID                 uuid.UUID
	Merchant           string
	NormalizedMerchant string
	Amount             decimal.Decimal
	Category           categorizer.Category
	Description        string
	Tags               []string
	ExpenseDate        time.Time
	CreatedAt          time.Time
}

// ExpenseCreate is the input for creating a new expense.
type ExpenseCreate struct {
	Merchant           string
	NormalizedMerchant string
	Amount             decimal.Decimal
	Category           categorizer.Category
	Description        string
	Tags               []string
	ExpenseDate        time.Time // defaults to now if zero
}

// ExpenseFilter specifies filters for listing expenses.
type ExpenseFilter struct {
	Category        *categorizer.Category
	From            *time.Time
	To              *time.Time
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// ExpenseRecategorize is the input for re-assigning an expense's category.
// Merchant and NormalizedMerchant are applied only when Merchant is non-nil,
// which is the raw-merchant-changed case.
type ExpenseRecategorize struct {
	ID                 uuid.UUID
	Category           categorizer.Category
	Merchant           *string
	NormalizedMerchant *string
}

//go:generate mockery --name IExpensesTable --output mock_IExpensesTable.go

// IExpensesTable defines the interface for expense storage operations.
// This abstraction allows swapping the implementation without changing callers.
type IExpensesTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	Insert(ctx context.Context, create *ExpenseCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error)
	ListSince(ctx context.Context, since time.Time) ([]*Expense, error)
}
