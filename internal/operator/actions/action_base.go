package actions

import (
	"context"

	"github.com/altamira-networks/expense-server/internal/storage"
)

// IAction is a single unit of work performed inside one storage transaction.
// Perform must not commit or roll back the writer, the operator owns the
// transaction lifecycle.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
