package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/altamira-networks/expense-server/internal/categorizer"
	"github.com/altamira-networks/expense-server/internal/storage"
	"github.com/altamira-networks/expense-server/internal/storage/sqlconfig"
)

// RecategorizeExpense updates the category of an existing expense. When
// Merchant is set and differs from the stored one, the normalized merchant
// is recomputed as well. When Category is nil the rule engine decides based
// on the (possibly updated) merchant and the stored amount and description.
// The row is locked for the duration of the transaction.
type RecategorizeExpense struct {
	ExpenseID uuid.UUID
	Category  *categorizer.Category
	Merchant  *string
	Engine    *categorizer.Engine

	Result sqlconfig.Expense
}

func (a *RecategorizeExpense) Perform(ctx context.Context, writer *storage.Writer) error {
	current, err := writer.FindExpenseForUpdate(ctx, a.ExpenseID)
	if err != nil {
		return err
	}

	update := &sqlconfig.ExpenseRecategorize{ID: a.ExpenseID}

	merchant := current.Merchant
	normalized := current.NormalizedMerchant
	if a.Merchant != nil && *a.Merchant != current.Merchant {
		merchant = *a.Merchant
		normalized = categorizer.Normalize(merchant)
		update.Merchant = &merchant
		update.NormalizedMerchant = &normalized
	}

	var category categorizer.Category
	if a.Category != nil {
		category = *a.Category
	} else {
		amount, _ := current.Amount.Float64()
		category = a.Engine.CategorizeWithEnhancedRules(merchant, amount, current.Description)
	}
	update.Category = category

	if err = writer.RecategorizeExpense(ctx, update); err != nil {
		return err
	}

	a.Result = *current
	a.Result.Merchant = merchant
	a.Result.NormalizedMerchant = normalized
	a.Result.Category = category
	return nil
}
