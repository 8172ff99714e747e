package analytics

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	analyticscore "github.com/altamira-networks/expense-server/internal/analytics"
)

// Outlier flags one transaction far above the recent window-wide norm.
type Outlier struct {
	TransactionID string  `json:"transactionId" doc:"Expense UUID"`
	Merchant      string  `json:"merchant" doc:"Normalized merchant name"`
	Amount        string  `json:"amount" doc:"Decimal amount"`
	Category      string  `json:"category" doc:"Spending category"`
	Date          string  `json:"date" doc:"RFC3339 expense date"`
	Deviation     float64 `json:"deviation" doc:"Sample standard deviations above the window mean"`
}

// UnusualSpendingInput is the Huma input for unusual spending, no parameters.
type UnusualSpendingInput struct{}

// UnusualSpendingResponseBody is the response body for unusual spending.
type UnusualSpendingResponseBody struct {
	Outliers []Outlier `json:"outliers" doc:"Up to ten outliers, largest amount first"`
}

// UnusualSpendingOutput is the Huma output for unusual spending.
type UnusualSpendingOutput struct {
	Body UnusualSpendingResponseBody
}

// outlierDetector is the interface for unusual spending detection.
type outlierDetector interface {
	UnusualSpending(ctx context.Context) ([]analyticscore.OutlierRecord, error)
}

// UnusualSpendingHandler handles GET /v1/analytics/unusual.
type UnusualSpendingHandler struct {
	AnalyticsService outlierDetector
}

// NewUnusualSpendingHandler creates a new UnusualSpendingHandler.
func NewUnusualSpendingHandler(svc outlierDetector) *UnusualSpendingHandler {
	return &UnusualSpendingHandler{AnalyticsService: svc}
}

// Register registers the unusual spending endpoint with the Huma API.
func (h *UnusualSpendingHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "unusual-spending",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/unusual",
		Summary:     "Unusual spending",
		Description: "Flags recent transactions well above the typical amount across the window.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *UnusualSpendingHandler) handle(ctx context.Context, _ *UnusualSpendingInput) (*UnusualSpendingOutput, error) {
	outliers, err := h.AnalyticsService.UnusualSpending(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to detect unusual spending", err)
	}

	resp := UnusualSpendingResponseBody{
		Outliers: make([]Outlier, len(outliers)),
	}
	for i, record := range outliers {
		resp.Outliers[i] = Outlier{
			TransactionID: record.TransactionID.String(),
			Merchant:      record.Merchant,
			Amount:        record.Amount.StringFixed(2),
			Category:      record.Category.String(),
			Date:          record.Date.Format(time.RFC3339),
			Deviation:     record.Deviation,
		}
	}

	return &UnusualSpendingOutput{Body: resp}, nil
}
