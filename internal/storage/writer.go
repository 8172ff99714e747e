package storage

import (
	"context"
	"database/sql"

	"github.com/gofrs/uuid/v5"

	"github.com/altamira-networks/expense-server/internal/storage/sqlconfig"
)

// Writer performs expense writes inside a single database transaction.
type Writer struct {
	tx *sql.Tx
}

func NewWriter(tx *sql.Tx) *Writer {
	return &Writer{tx: tx}
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}

// InsertExpense creates a new expense inside the transaction.
func (w *Writer) InsertExpense(ctx context.Context, create *sqlconfig.ExpenseCreate) (uuid.UUID, error) {
	return sqlconfig.InsertExpenseTx(ctx, w.tx, create)
}

// FindExpenseForUpdate loads an expense with a row lock held for the rest of
// the transaction.
func (w *Writer) FindExpenseForUpdate(ctx context.Context, id uuid.UUID) (*sqlconfig.Expense, error) {
	return sqlconfig.FindExpenseForUpdateTx(ctx, w.tx, id)
}

// RecategorizeExpense applies a category re-assignment inside the transaction.
func (w *Writer) RecategorizeExpense(ctx context.Context, update *sqlconfig.ExpenseRecategorize) error {
	return sqlconfig.RecategorizeExpenseTx(ctx, w.tx, update)
}
