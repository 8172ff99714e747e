package expense

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/altamira-networks/expense-server/internal/categorizer"
	"github.com/altamira-networks/expense-server/internal/service"
)

type mockExpenseLister struct {
	mock.Mock
}

func (m *mockExpenseLister) ListExpenses(ctx context.Context, filter service.ExpenseFilter, cursor *service.ExpenseCursor) ([]service.Expense, *service.ExpenseCursor, error) {
	args := m.Called(ctx, filter, cursor)
	expenses, _ := args.Get(0).([]service.Expense)
	next, _ := args.Get(1).(*service.ExpenseCursor)
	return expenses, next, args.Error(2)
}

func newListTestAPI(t *testing.T, svc expenseLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListExpensesHandler(svc).Register(api)
	return api
}

// -- parseListExpensesInput unit tests --

func TestParseListExpensesInput_Empty(t *testing.T) {
	input := &ListExpensesInput{Body: ListExpensesBody{}}

	filter, cursor, err := parseListExpensesInput(input)
	assert.NoError(t, err)
	assert.Nil(t, filter.Category)
	assert.Nil(t, filter.From)
	assert.Nil(t, filter.To)
	assert.Nil(t, cursor)
}

func TestParseListExpensesInput_FilterAndCursor(t *testing.T) {
	input := &ListExpensesInput{
		Body: ListExpensesBody{
			Category: "food",
			From:     "2025-05-01T00:00:00Z",
			To:       "2025-05-31T23:59:59Z",
			Cursor: &ListExpensesCursor{
				Position:        20,
				Limit:           20,
				MaxCreationTime: "2025-06-01T12:00:00Z",
			},
		},
	}

	filter, cursor, err := parseListExpensesInput(input)
	assert.NoError(t, err)
	assert.NotNil(t, filter.Category)
	assert.Equal(t, categorizer.CategoryFood, *filter.Category)
	assert.NotNil(t, filter.From)
	assert.NotNil(t, filter.To)
	assert.NotNil(t, cursor)
	assert.Equal(t, 20, cursor.Position)
}

func TestParseListExpensesInput_UnknownCategory(t *testing.T) {
	input := &ListExpensesInput{
		Body: ListExpensesBody{Category: "groceries"},
	}

	_, _, err := parseListExpensesInput(input)
	assert.Error(t, err)
}

func TestParseListExpensesInput_InvalidFrom(t *testing.T) {
	input := &ListExpensesInput{
		Body: ListExpensesBody{From: "yesterday"},
	}

	_, _, err := parseListExpensesInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_ListExpenses_SinglePage(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	expenseID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockExpenseLister)
	mockSvc.On("ListExpenses", mock.Anything, service.ExpenseFilter{}, (*service.ExpenseCursor)(nil)).
		Return([]service.Expense{
			{
				ID:                 expenseID,
				Merchant:           "UBER TRIP",
				NormalizedMerchant: "Uber",
				Amount:             decimal.RequireFromString("18.90"),
				Category:           categorizer.CategoryTransport,
				ExpenseDate:        now,
				CreatedAt:          now,
			},
		}, (*service.ExpenseCursor)(nil), nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/expense/list", ListExpensesBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListExpensesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Expenses, 1)
	assert.Equal(t, expenseID.String(), body.Expenses[0].ID)
	assert.Equal(t, "18.90", body.Expenses[0].Amount)
	assert.Equal(t, "transport", body.Expenses[0].Category)
	assert.Nil(t, body.NextCursor)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListExpenses_MultiplePages(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svcDefaultLimit := 20

	mockSvc := new(mockExpenseLister)
	mockSvc.On("ListExpenses", mock.Anything, mock.Anything, (*service.ExpenseCursor)(nil)).
		Return([]service.Expense{
			{
				ID:          uuid.Must(uuid.NewV4()),
				Merchant:    "PADARIA",
				Amount:      decimal.RequireFromString("5.00"),
				Category:    categorizer.CategoryFood,
				ExpenseDate: now,
				CreatedAt:   now,
			},
		}, &service.ExpenseCursor{
			Position:        svcDefaultLimit,
			Limit:           svcDefaultLimit,
			MaxCreationTime: now,
		}, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/expense/list", ListExpensesBody{})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListExpensesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.NextCursor)
	assert.Equal(t, svcDefaultLimit, body.NextCursor.Position)
	assert.Equal(t, now.Format(time.RFC3339), body.NextCursor.MaxCreationTime)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListExpenses_CategoryFilterPassedThrough(t *testing.T) {
	mockSvc := new(mockExpenseLister)
	mockSvc.On("ListExpenses", mock.Anything, mock.MatchedBy(func(f service.ExpenseFilter) bool {
		return f.Category != nil && *f.Category == categorizer.CategoryFood
	}), mock.Anything).
		Return(([]service.Expense)(nil), (*service.ExpenseCursor)(nil), nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/expense/list", ListExpensesBody{Category: "food"})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListExpenses_ServiceError(t *testing.T) {
	mockSvc := new(mockExpenseLister)
	mockSvc.On("ListExpenses", mock.Anything, mock.Anything, mock.Anything).
		Return(([]service.Expense)(nil), (*service.ExpenseCursor)(nil), errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Post("/v1/expense/list", ListExpensesBody{})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListExpenses_InvalidCursorMaxCreationTime(t *testing.T) {
	mockSvc := new(mockExpenseLister)

	resp := newListTestAPI(t, mockSvc).Post("/v1/expense/list", ListExpensesBody{
		Cursor: &ListExpensesCursor{
			Position:        0,
			Limit:           10,
			MaxCreationTime: "not-a-date",
		},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ListExpenses")
}
