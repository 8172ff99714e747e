package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
)

// ErrExpenseNotFound is returned by transactional lookups and updates when no
// row matches the ID.
var ErrExpenseNotFound = errors.New("sqlconfig: expense not found")

// InsertExpenseTx creates an expense inside an open transaction.
func InsertExpenseTx(ctx context.Context, tx *sql.Tx, create *ExpenseCreate) (uuid.UUID, error) {
	return insertExpense(ctx, tx, create)
}

// FindExpenseForUpdateTx loads an expense with FOR UPDATE so concurrent
// re-categorizations serialize on the row.
func FindExpenseForUpdateTx(ctx context.Context, tx *sql.Tx, id uuid.UUID) (*Expense, error) {
	row := tx.QueryRowContext(ctx,
		"SELECT "+expenseColumns+" FROM expenses WHERE id = $1 FOR UPDATE", id)
	expense, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExpenseNotFound
	}
	return expense, err
}

// RecategorizeExpenseTx re-assigns an expense's category and, when the raw
// merchant changed, its merchant and normalized merchant.
func RecategorizeExpenseTx(ctx context.Context, tx *sql.Tx, update *ExpenseRecategorize) error {
	var result sql.Result
	var err error
	if update.Merchant != nil {
		result, err = tx.ExecContext(ctx,
			"UPDATE expenses SET category = $1, merchant = $2, normalized_merchant = $3 WHERE id = $4",
			string(update.Category), *update.Merchant, *update.NormalizedMerchant, update.ID)
	} else {
		result, err = tx.ExecContext(ctx,
			"UPDATE expenses SET category = $1 WHERE id = $2",
			string(update.Category), update.ID)
	}
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}
