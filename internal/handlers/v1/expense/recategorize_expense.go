package expense

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/altamira-networks/expense-server/internal/categorizer"
	"github.com/altamira-networks/expense-server/internal/service"
	"github.com/altamira-networks/expense-server/internal/storage/sqlconfig"
)

// RecategorizeExpenseBody is the request body for re-assigning a category.
// Omitting category makes the server re-run its own categorization, which is
// useful after correcting the merchant.
type RecategorizeExpenseBody struct {
	Category string `json:"category,omitempty" doc:"New category, server re-categorizes when absent"`
	Merchant string `json:"merchant,omitempty" doc:"Corrected raw merchant string"`
}

// RecategorizeExpenseInput is the Huma input for re-assigning a category.
type RecategorizeExpenseInput struct {
	ID   string `path:"id" doc:"Expense UUID"`
	Body RecategorizeExpenseBody
}

// RecategorizeExpenseOutput is the Huma output for re-assigning a category.
type RecategorizeExpenseOutput struct {
	Body Expense
}

// expenseRecategorizer is the interface for re-assigning a category.
type expenseRecategorizer interface {
	RecategorizeExpense(ctx context.Context, update service.ExpenseRecategorize) (service.Expense, error)
}

// RecategorizeExpenseHandler handles POST /v1/expense/{id}/recategorize.
type RecategorizeExpenseHandler struct {
	ExpenseService expenseRecategorizer
}

// NewRecategorizeExpenseHandler creates a new RecategorizeExpenseHandler.
func NewRecategorizeExpenseHandler(svc expenseRecategorizer) *RecategorizeExpenseHandler {
	return &RecategorizeExpenseHandler{ExpenseService: svc}
}

// Register registers the recategorize endpoint with the Huma API.
func (h *RecategorizeExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "recategorize-expense",
		Method:      http.MethodPost,
		Path:        "/v1/expense/{id}/recategorize",
		Summary:     "Recategorize expense",
		Description: "Re-assigns the category of an expense, recomputing the normalized merchant when the raw merchant changed.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *RecategorizeExpenseHandler) handle(ctx context.Context, input *RecategorizeExpenseInput) (*RecategorizeExpenseOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid expense id", err)
	}

	update := service.ExpenseRecategorize{ID: id}

	if input.Body.Category != "" {
		category := categorizer.Category(input.Body.Category)
		if !category.Valid() {
			return nil, huma.NewError(http.StatusBadRequest, "unknown category")
		}
		update.Category = &category
	}

	if input.Body.Merchant != "" {
		merchant := input.Body.Merchant
		update.Merchant = &merchant
	}

	updated, err := h.ExpenseService.RecategorizeExpense(ctx, update)
	if err != nil {
		if errors.Is(err, sqlconfig.ErrExpenseNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "expense not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to recategorize expense", err)
	}

	return &RecategorizeExpenseOutput{Body: fromService(updated)}, nil
}
