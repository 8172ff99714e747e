package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/altamira-networks/expense-server/internal/categorizer"
)

// SuggestCategoriesInput is the Huma input for category suggestions.
type SuggestCategoriesInput struct {
	Merchant string `query:"merchant" required:"true" doc:"Raw merchant string to rank categories for"`
}

// SuggestCategoriesResponseBody is the response body for category suggestions.
type SuggestCategoriesResponseBody struct {
	Suggestions []string `json:"suggestions" doc:"Up to three categories, most likely first"`
}

// SuggestCategoriesOutput is the Huma output for category suggestions.
type SuggestCategoriesOutput struct {
	Body SuggestCategoriesResponseBody
}

// categorySuggester is the interface for ranking categories.
type categorySuggester interface {
	SuggestCategories(merchant string) []categorizer.Category
}

// SuggestCategoriesHandler handles GET /v1/expense/suggestions.
type SuggestCategoriesHandler struct {
	ExpenseService categorySuggester
}

// NewSuggestCategoriesHandler creates a new SuggestCategoriesHandler.
func NewSuggestCategoriesHandler(svc categorySuggester) *SuggestCategoriesHandler {
	return &SuggestCategoriesHandler{ExpenseService: svc}
}

// Register registers the suggestions endpoint with the Huma API.
func (h *SuggestCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "suggest-categories",
		Method:      http.MethodGet,
		Path:        "/v1/expense/suggestions",
		Summary:     "Suggest categories",
		Description: "Ranks the most likely categories for a merchant string without recording anything.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *SuggestCategoriesHandler) handle(_ context.Context, input *SuggestCategoriesInput) (*SuggestCategoriesOutput, error) {
	if input.Merchant == "" {
		return nil, huma.NewError(http.StatusBadRequest, "merchant must not be empty")
	}

	suggestions := h.ExpenseService.SuggestCategories(input.Merchant)

	resp := SuggestCategoriesResponseBody{
		Suggestions: make([]string, len(suggestions)),
	}
	for i, category := range suggestions {
		resp.Suggestions[i] = category.String()
	}

	return &SuggestCategoriesOutput{Body: resp}, nil
}
