package expense

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/altamira-networks/expense-server/internal/categorizer"
	"github.com/altamira-networks/expense-server/internal/logging"
	"github.com/altamira-networks/expense-server/internal/service"
)

// CreateExpenseBody is the request body for recording an expense.
type CreateExpenseBody struct {
	Merchant    string   `json:"merchant" required:"true" doc:"Raw merchant string from the statement"`
	Amount      string   `json:"amount" required:"true" doc:"Decimal amount, negative for refunds"`
	Category    string   `json:"category,omitempty" doc:"Optional category override, server categorizes when absent"`
	Description string   `json:"description,omitempty" doc:"Free-form description"`
	Tags        []string `json:"tags,omitempty" doc:"Free-form tags"`
	ExpenseDate string   `json:"expenseDate,omitempty" doc:"RFC3339 expense date, defaults to now"`
}

// CreateExpenseInput is the Huma input for recording an expense.
type CreateExpenseInput struct {
	Body CreateExpenseBody
}

// CreateExpenseOutput is the Huma output for recording an expense.
type CreateExpenseOutput struct {
	Body Expense
}

// expenseCreator is the interface for recording an expense.
type expenseCreator interface {
	CreateExpense(ctx context.Context, create service.ExpenseCreate) (service.Expense, error)
}

// CreateExpenseHandler handles POST /v1/expense.
type CreateExpenseHandler struct {
	ExpenseService expenseCreator
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(svc expenseCreator) *CreateExpenseHandler {
	return &CreateExpenseHandler{ExpenseService: svc}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-expense",
		Method:      http.MethodPost,
		Path:        "/v1/expense",
		Summary:     "Record expense",
		Description: "Records a new expense, categorizing it when no category is supplied.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func parseCreateExpenseInput(input *CreateExpenseInput) (service.ExpenseCreate, error) {
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return service.ExpenseCreate{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	create := service.ExpenseCreate{
		Merchant:    input.Body.Merchant,
		Amount:      amount,
		Description: input.Body.Description,
		Tags:        input.Body.Tags,
	}

	if input.Body.Category != "" {
		category := categorizer.Category(input.Body.Category)
		if !category.Valid() {
			return service.ExpenseCreate{}, huma.NewError(http.StatusBadRequest, "unknown category")
		}
		create.Category = &category
	}

	if input.Body.ExpenseDate != "" {
		expenseDate, parseErr := time.Parse(time.RFC3339, input.Body.ExpenseDate)
		if parseErr != nil {
			return service.ExpenseCreate{}, huma.NewError(http.StatusBadRequest, "invalid expenseDate", parseErr)
		}
		create.ExpenseDate = expenseDate
	}

	return create, nil
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateExpenseInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createExpenseMs")
	}
	created, err := h.ExpenseService.CreateExpense(ctx, create)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create expense", err)
	}

	if logData != nil {
		logData.AddData("category", created.Category.String())
	}

	return &CreateExpenseOutput{Body: fromService(created)}, nil
}
