package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/altamira-networks/expense-server/internal/categorizer"
)

// Expense represents an expense in the service layer.
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

// ExpenseCreate is the input for recording a new expense. Category is
// optional, when nil the server decides.
type ExpenseCreate struct {
	Merchant    string
	Amount      decimal.Decimal
	Category    *categorizer.Category
	Description string
	Tags        []string
	ExpenseDate time.Time
}

// ExpenseRecategorize is the input for re-assigning an expense's category.
// Both fields are optional, a nil Category means the rule engine decides
// again and a nil Merchant leaves the stored merchant untouched.
type ExpenseRecategorize struct {
	ID       uuid.UUID
	Category *categorizer.Category
	Merchant *string
}

// ExpenseFilter narrows a listing to a category and/or a date range.
type ExpenseFilter struct {
	Category *categorizer.Category
	From     *time.Time
	To       *time.Time
}

// ExpenseCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type ExpenseCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}
