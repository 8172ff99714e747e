package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/altamira-networks/expense-server/internal/categorizer"
	"github.com/altamira-networks/expense-server/internal/storage"
	"github.com/altamira-networks/expense-server/internal/storage/sqlconfig"
)

// CreateExpense inserts a new expense row. The category and normalized
// merchant are resolved by the service before the action is enqueued.
// ID is populated once Perform succeeds.
type CreateExpense struct {
	Merchant           string
	NormalizedMerchant string
	Amount             decimal.Decimal
	Category           categorizer.Category
	Description        string
	Tags               []string
	ExpenseDate        time.Time

	ID uuid.UUID
}

func (a *CreateExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.InsertExpense(ctx, &sqlconfig.ExpenseCreate{
		Merchant:           a.Merchant,
		NormalizedMerchant: a.NormalizedMerchant,
		Amount:             a.Amount,
		Category:           a.Category,
		Description:        a.Description,
		Tags:               a.Tags,
		ExpenseDate:        a.ExpenseDate,
	})
	if err != nil {
		return err
	}

	a.ID = id
	return nil
}
