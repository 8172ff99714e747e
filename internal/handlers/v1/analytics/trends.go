package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	analyticscore "github.com/altamira-networks/expense-server/internal/analytics"
	"github.com/altamira-networks/expense-server/internal/categorizer"
)

// TrendPoint is the aggregate for one calendar month in responses.
type TrendPoint struct {
	Period           string `json:"period" doc:"Calendar month in YYYY-MM form"`
	TotalSpent       string `json:"totalSpent" doc:"Total spent in the month"`
	TransactionCount int    `json:"transactionCount" doc:"Number of expenses in the month"`
}

// TrendsInput is the Huma input for both trend endpoints.
type TrendsInput struct {
	Months int `query:"months" minimum:"1" maximum:"24" default:"6" doc:"Trailing window length in months"`
}

// MonthlyTrendsResponseBody is the response body for monthly trends.
type MonthlyTrendsResponseBody struct {
	Trends []TrendPoint `json:"trends" doc:"Per-month totals, oldest month first"`
}

// MonthlyTrendsOutput is the Huma output for monthly trends.
type MonthlyTrendsOutput struct {
	Body MonthlyTrendsResponseBody
}

// CategoryTrendsResponseBody is the response body for category trends.
type CategoryTrendsResponseBody struct {
	Trends map[string][]TrendPoint `json:"trends" doc:"Per-category monthly totals, oldest month first"`
}

// CategoryTrendsOutput is the Huma output for category trends.
type CategoryTrendsOutput struct {
	Body CategoryTrendsResponseBody
}

// trendAnalyzer is the interface for trend computations.
type trendAnalyzer interface {
	MonthlyTrends(ctx context.Context, months int) ([]analyticscore.TrendPoint, error)
	CategoryTrends(ctx context.Context, months int) (map[categorizer.Category][]analyticscore.TrendPoint, error)
}

// TrendsHandler handles GET /v1/analytics/trends/monthly and
// GET /v1/analytics/trends/category.
type TrendsHandler struct {
	AnalyticsService trendAnalyzer
}

// NewTrendsHandler creates a new TrendsHandler.
func NewTrendsHandler(svc trendAnalyzer) *TrendsHandler {
	return &TrendsHandler{AnalyticsService: svc}
}

// Register registers both trend endpoints with the Huma API.
func (h *TrendsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-trends",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/trends/monthly",
		Summary:     "Monthly trends",
		Description: "Returns per-month spending totals over a trailing window.",
		Tags:        []string{"Analytics"},
	}, h.handleMonthly)

	huma.Register(api, huma.Operation{
		OperationID: "category-trends",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/trends/category",
		Summary:     "Category trends",
		Description: "Returns per-month spending totals partitioned by category over a trailing window.",
		Tags:        []string{"Analytics"},
	}, h.handleCategory)
}

func (h *TrendsHandler) handleMonthly(ctx context.Context, input *TrendsInput) (*MonthlyTrendsOutput, error) {
	trends, err := h.AnalyticsService.MonthlyTrends(ctx, input.Months)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute monthly trends", err)
	}

	return &MonthlyTrendsOutput{Body: MonthlyTrendsResponseBody{
		Trends: trendPointsFromCore(trends),
	}}, nil
}

func (h *TrendsHandler) handleCategory(ctx context.Context, input *TrendsInput) (*CategoryTrendsOutput, error) {
	trends, err := h.AnalyticsService.CategoryTrends(ctx, input.Months)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute category trends", err)
	}

	resp := CategoryTrendsResponseBody{
		Trends: make(map[string][]TrendPoint, len(trends)),
	}
	for category, points := range trends {
		resp.Trends[category.String()] = trendPointsFromCore(points)
	}

	return &CategoryTrendsOutput{Body: resp}, nil
}

func trendPointsFromCore(points []analyticscore.TrendPoint) []TrendPoint {
	converted := make([]TrendPoint, len(points))
	for i, point := range points {
		converted[i] = TrendPoint{
			Period:           point.Period,
			TotalSpent:       point.TotalSpent.StringFixed(2),
			TransactionCount: point.TransactionCount,
		}
	}
	return converted
}
