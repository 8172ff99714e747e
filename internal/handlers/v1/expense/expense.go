package expense

import (
	"time"

	"github.com/altamira-networks/expense-server/internal/service"
)

// Expense is the API response model for an expense.
// It is used only for responses, not for request bodies.
type Expense struct {
	ID                 string   `json:"id" doc:"Expense UUID"`
	Merchant           string   `json:"merchant" doc:"Raw merchant string from the statement"`
	NormalizedMerchant string   `json:"normalizedMerchant" doc:"Cleaned display merchant name"`
	Amount             string   `json:"amount" doc:"Decimal amount with two fraction digits"`
	Category           string   `json:"category" doc:"Assigned spending category"`
	Description        string   `json:"description,omitempty" doc:"Free-form description"`
	Tags               []string `json:"tags" doc:"Caller-supplied tags"`
	ExpenseDate        string   `json:"expenseDate" doc:"RFC3339 expense date"`
	CreatedAt          string   `json:"createdAt,omitempty" doc:"RFC3339 creation time"`
}

func fromService(e service.Expense) Expense {
	createdAt := ""
	if !e.CreatedAt.IsZero() {
		createdAt = e.CreatedAt.Format(time.RFC3339)
	}

	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}

	return Expense{
		ID:                 e.ID.String(),
		Merchant:           e.Merchant,
		NormalizedMerchant: e.NormalizedMerchant,
		Amount:             e.Amount.StringFixed(2),
		Category:           e.Category.String(),
		Description:        e.Description,
		Tags:               tags,
		ExpenseDate:        e.ExpenseDate.Format(time.RFC3339),
		CreatedAt:          createdAt,
	}
}
