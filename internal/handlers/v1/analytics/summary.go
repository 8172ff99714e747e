package analytics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	analyticscore "github.com/altamira-networks/expense-server/internal/analytics"
	"github.com/altamira-networks/expense-server/internal/logging"
)

// MerchantTotal is one entry of the top-merchants ranking in responses.
type MerchantTotal struct {
	Merchant string `json:"merchant" doc:"Normalized merchant name"`
	Amount   string `json:"amount" doc:"Decimal total with two fraction digits"`
}

// SummaryResponseBody is the response body for the spending summary.
type SummaryResponseBody struct {
	TotalSpent        string            `json:"totalSpent" doc:"Total spent in the range"`
	TransactionCount  int               `json:"transactionCount" doc:"Number of expenses in the range"`
	DailyAverage      string            `json:"dailyAverage" doc:"Total divided by the inclusive day count"`
	CategoryBreakdown map[string]string `json:"categoryBreakdown" doc:"Per-category totals"`
	TopMerchants      []MerchantTotal   `json:"topMerchants" doc:"Up to ten merchants by total spent, descending"`
	Start             string            `json:"start" doc:"RFC3339 range start"`
	End               string            `json:"end" doc:"RFC3339 range end"`
}

// SummaryInput is the Huma input for the spending summary.
type SummaryInput struct {
	Start string `query:"start" required:"true" format:"date-time" doc:"RFC3339 range start, inclusive"`
	End   string `query:"end" required:"true" format:"date-time" doc:"RFC3339 range end, inclusive"`
}

// SummaryOutput is the Huma output for the spending summary.
type SummaryOutput struct {
	Body SummaryResponseBody
}

// summarizer is the interface for computing a spending summary.
type summarizer interface {
	Summary(ctx context.Context, start, end time.Time) (analyticscore.SpendingSummary, error)
}

// SummaryHandler handles GET /v1/analytics/summary.
type SummaryHandler struct {
	AnalyticsService summarizer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(svc summarizer) *SummaryHandler {
	return &SummaryHandler{AnalyticsService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "spending-summary",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/summary",
		Summary:     "Spending summary",
		Description: "Aggregates spending between two dates inclusive.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	start, err := time.Parse(time.RFC3339, input.Start)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid start date", err)
	}
	end, err := time.Parse(time.RFC3339, input.End)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid end date", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("summaryMs")
	}
	summary, err := h.AnalyticsService.Summary(ctx, start, end)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, analyticscore.ErrInvalidDateRange) {
			return nil, huma.NewError(http.StatusBadRequest, "end date precedes start date")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute summary", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", summary.TransactionCount)
	}

	resp := SummaryResponseBody{
		TotalSpent:        summary.TotalSpent.StringFixed(2),
		TransactionCount:  summary.TransactionCount,
		DailyAverage:      summary.DailyAverage.StringFixed(2),
		CategoryBreakdown: make(map[string]string, len(summary.CategoryBreakdown)),
		TopMerchants:      make([]MerchantTotal, len(summary.TopMerchants)),
		Start:             summary.Start.Format(time.RFC3339),
		End:               summary.End.Format(time.RFC3339),
	}

	for category, total := range summary.CategoryBreakdown {
		resp.CategoryBreakdown[category.String()] = total.StringFixed(2)
	}
	for i, merchant := range summary.TopMerchants {
		resp.TopMerchants[i] = MerchantTotal{
			Merchant: merchant.Merchant,
			Amount:   merchant.Amount.StringFixed(2),
		}
	}

	return &SummaryOutput{Body: resp}, nil
}
