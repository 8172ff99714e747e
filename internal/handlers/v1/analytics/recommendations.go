package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	analyticscore "github.com/altamira-networks/expense-server/internal/analytics"
)

// CategoryBudget pairs the observed monthly average with the suggested one.
type CategoryBudget struct {
	CurrentAvg string `json:"currentAvg" doc:"Average monthly spend over the trailing quarter"`
	Suggested  string `json:"suggested" doc:"Suggested monthly budget"`
}

// RecommendationsInput is the Huma input for budget recommendations, no parameters.
type RecommendationsInput struct{}

// RecommendationsResponseBody is the response body for budget recommendations.
type RecommendationsResponseBody struct {
	MonthlyBudget    string                    `json:"monthlyBudget" doc:"Suggested total monthly budget"`
	CategoryBudgets  map[string]CategoryBudget `json:"categoryBudgets" doc:"Per-category budget suggestions"`
	SavingsPotential string                    `json:"savingsPotential" doc:"Monthly amount saved if all suggestions are followed"`
	Tips             []string                  `json:"tips" doc:"Actionable advice derived from the spending mix"`
}

// RecommendationsOutput is the Huma output for budget recommendations.
type RecommendationsOutput struct {
	Body RecommendationsResponseBody
}

// budgetRecommender is the interface for budget recommendations.
type budgetRecommender interface {
	BudgetRecommendations(ctx context.Context) (analyticscore.BudgetRecommendation, error)
}

// RecommendationsHandler handles GET /v1/analytics/recommendations.
type RecommendationsHandler struct {
	AnalyticsService budgetRecommender
}

// NewRecommendationsHandler creates a new RecommendationsHandler.
func NewRecommendationsHandler(svc budgetRecommender) *RecommendationsHandler {
	return &RecommendationsHandler{AnalyticsService: svc}
}

// Register registers the recommendations endpoint with the Huma API.
func (h *RecommendationsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "budget-recommendations",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/recommendations",
		Summary:     "Budget recommendations",
		Description: "Derives per-category budget suggestions from the trailing quarter.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *RecommendationsHandler) handle(ctx context.Context, _ *RecommendationsInput) (*RecommendationsOutput, error) {
	rec, err := h.AnalyticsService.BudgetRecommendations(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute recommendations", err)
	}

	resp := RecommendationsResponseBody{
		MonthlyBudget:    rec.MonthlyBudget.StringFixed(2),
		CategoryBudgets:  make(map[string]CategoryBudget, len(rec.CategoryBudgets)),
		SavingsPotential: rec.SavingsPotential.StringFixed(2),
		Tips:             rec.Tips,
	}
	for category, budget := range rec.CategoryBudgets {
		resp.CategoryBudgets[category.String()] = CategoryBudget{
			CurrentAvg: budget.CurrentAvg.StringFixed(2),
			Suggested:  budget.Suggested.StringFixed(2),
		}
	}
	if resp.Tips == nil {
		resp.Tips = []string{}
	}

	return &RecommendationsOutput{Body: resp}, nil
}
