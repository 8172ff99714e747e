package expense

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/altamira-networks/expense-server/internal/service"
	"github.com/altamira-networks/expense-server/internal/storage/sqlconfig"
)

// GetExpenseInput is the Huma input for fetching a single expense.
type GetExpenseInput struct {
	ID string `path:"id" doc:"Expense UUID"`
}

// GetExpenseOutput is the Huma output for fetching a single expense.
type GetExpenseOutput struct {
	Body Expense
}

// expenseGetter is the interface for fetching a single expense.
type expenseGetter interface {
	GetExpense(ctx context.Context, id uuid.UUID) (service.Expense, error)
}

// GetExpenseHandler handles GET /v1/expense/{id}.
type GetExpenseHandler struct {
	ExpenseService expenseGetter
}

// NewGetExpenseHandler creates a new GetExpenseHandler.
func NewGetExpenseHandler(svc expenseGetter) *GetExpenseHandler {
	return &GetExpenseHandler{ExpenseService: svc}
}

// Register registers the get expense endpoint with the Huma API.
func (h *GetExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-expense",
		Method:      http.MethodGet,
		Path:        "/v1/expense/{id}",
		Summary:     "Get expense",
		Description: "Returns a single expense by ID.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *GetExpenseHandler) handle(ctx context.Context, input *GetExpenseInput) (*GetExpenseOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid expense id", err)
	}

	found, err := h.ExpenseService.GetExpense(ctx, id)
	if err != nil {
		if errors.Is(err, sqlconfig.ErrExpenseNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "expense not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get expense", err)
	}

	return &GetExpenseOutput{Body: fromService(found)}, nil
}
