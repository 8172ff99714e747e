package expense

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/altamira-networks/expense-server/internal/categorizer"
	"github.com/altamira-networks/expense-server/internal/logging"
	"github.com/altamira-networks/expense-server/internal/service"
)

// ListExpensesCursor represents a pagination cursor in request and response bodies.
// It bundles position, limit, and maxCreationTime so subsequent pages use consistent parameters.
type ListExpensesCursor struct {
	Position        int    `json:"position" minimum:"0" doc:"Numeric offset position for the next page"`
	Limit           int    `json:"limit" minimum:"1" maximum:"100" doc:"Page size used for this cursor"`
	MaxCreationTime string `json:"maxCreationTime" format:"date-time" doc:"Upper bound on created_at locked in from the first page"`
}

// ListExpensesBody is the request body for listing expenses.
type ListExpensesBody struct {
	Category string              `json:"category,omitempty" doc:"Only expenses with this category"`
	From     string              `json:"from,omitempty" doc:"RFC3339 lower bound on the expense date, inclusive"`
	To       string              `json:"to,omitempty" doc:"RFC3339 upper bound on the expense date, inclusive"`
	Cursor   *ListExpensesCursor `json:"cursor,omitempty" doc:"Cursor from a previous response to fetch the next page"`
}

// ListExpensesInput is the Huma input for listing expenses.
type ListExpensesInput struct {
	Body ListExpensesBody
}

// ListExpensesResponseBody is the response body for listing expenses.
type ListExpensesResponseBody struct {
	Expenses   []Expense           `json:"expenses" doc:"Page of expenses"`
	NextCursor *ListExpensesCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListExpensesOutput is the Huma output for listing expenses.
type ListExpensesOutput struct {
	Body ListExpensesResponseBody
}

// expenseLister is the interface for listing expenses.
type expenseLister interface {
	ListExpenses(ctx context.Context, filter service.ExpenseFilter, cursor *service.ExpenseCursor) ([]service.Expense, *service.ExpenseCursor, error)
}

// ListExpensesHandler handles POST /v1/expense/list.
type ListExpensesHandler struct {
	ExpenseService expenseLister
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(svc expenseLister) *ListExpensesHandler {
	return &ListExpensesHandler{ExpenseService: svc}
}

// Register registers the list expenses endpoint with the Huma API.
func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodPost,
		Path:        "/v1/expense/list",
		Summary:     "List expenses",
		Description: "Returns a paginated list of expenses using cursor-based pagination, optionally filtered by category and date range.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

// parseListExpensesInput parses and validates the API input.
// When a cursor is provided, limit and maxCreationTime come from it.
// Without a cursor, the service uses its default limit.
func parseListExpensesInput(input *ListExpensesInput) (filter service.ExpenseFilter, cursor *service.ExpenseCursor, err error) {
	if input.Body.Category != "" {
		category := categorizer.Category(input.Body.Category)
		if !category.Valid() {
			return filter, nil, huma.NewError(http.StatusBadRequest, "unknown category")
		}
		filter.Category = &category
	}

	if input.Body.From != "" {
		from, parseErr := time.Parse(time.RFC3339, input.Body.From)
		if parseErr != nil {
			return filter, nil, huma.NewError(http.StatusBadRequest, "invalid from date", parseErr)
		}
		filter.From = &from
	}

	if input.Body.To != "" {
		to, parseErr := time.Parse(time.RFC3339, input.Body.To)
		if parseErr != nil {
			return filter, nil, huma.NewError(http.StatusBadRequest, "invalid to date", parseErr)
		}
		filter.To = &to
	}

	if input.Body.Cursor == nil {
		return filter, nil, nil
	}

	if input.Body.Cursor.Position < 0 {
		return filter, nil, huma.NewError(http.StatusBadRequest, "cursor position must be non-negative")
	}

	maxCreationTime, parseErr := time.Parse(time.RFC3339, input.Body.Cursor.MaxCreationTime)
	if parseErr != nil {
		return filter, nil, huma.NewError(http.StatusBadRequest, "invalid cursor maxCreationTime", parseErr)
	}

	return filter, &service.ExpenseCursor{
		Position:        input.Body.Cursor.Position,
		Limit:           input.Body.Cursor.Limit,
		MaxCreationTime: maxCreationTime,
	}, nil
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	logData := logging.GetLogData(ctx)

	filter, requestCursor, err := parseListExpensesInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listExpensesMs")
	}
	expenses, nextCursor, err := h.ExpenseService.ListExpenses(ctx, filter, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list expenses", err)
	}

	if logData != nil {
		logData.AddData("expenseCount", len(expenses))
	}

	resp := ListExpensesResponseBody{
		Expenses: make([]Expense, len(expenses)),
	}

	for i, e := range expenses {
		resp.Expenses[i] = fromService(e)
	}

	if nextCursor != nil {
		resp.NextCursor = &ListExpensesCursor{
			Position:        nextCursor.Position,
			Limit:           nextCursor.Limit,
			MaxCreationTime: nextCursor.MaxCreationTime.Format(time.RFC3339),
		}
	}

	return &ListExpensesOutput{Body: resp}, nil
}
