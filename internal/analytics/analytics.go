// Package analytics derives summaries, trend series, outlier signals and
// budget recommendations from sets of categorized expenses. Every operation
// is a pure aggregation over the supplied slice: nothing is cached, nothing
// is persisted, and results are recomputed in full on each call.
package analytics

import (
	"errors"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/altamira-networks/expense-server/internal/categorizer"
)

// ErrInvalidDateRange is returned when a summary is requested with the end
// date before the start date. The caller gets the error instead of a silently
// reordered range.
var ErrInvalidDateRange = errors.New("analytics: end date precedes start date")

const topMerchantLimit = 10

// Transaction is the categorized expense row the engine aggregates over.
// Amount is signed: refunds are negative and reduce totals.
type Transaction struct {
	ID       uuid.UUID
	Merchant string
	Amount   decimal.Decimal
	Category categorizer.Category
	Date     time.Time
}

// MerchantTotal is one entry of a top-merchants ranking.
type MerchantTotal struct {
	Merchant string
	Amount   decimal.Decimal
}

// SpendingSummary is the derived overview for a date range. Amounts carry
// full precision; rounding happens at the presentation boundary.
type SpendingSummary struct {
	TotalSpent        decimal.Decimal
	TransactionCount  int
	DailyAverage      decimal.Decimal
	CategoryBreakdown map[categorizer.Category]decimal.Decimal
	TopMerchants      []MerchantTotal
	Start             time.Time
	End               time.Time
}

// TrendPoint is the aggregate for one calendar month.
type TrendPoint struct {
	Period           string // "2006-01"
	TotalSpent       decimal.Decimal
	TransactionCount int
}

// OutlierRecord flags one transaction whose amount exceeded the unusual
// spending threshold. Deviation is in sample standard deviations from the
// window mean.
type OutlierRecord struct {
	TransactionID uuid.UUID
	Merchant      string
	Amount        decimal.Decimal
	Category      categorizer.Category
	Date          time.Time
	Deviation     float64
}

// CategoryBudget pairs the observed monthly average with the suggested one.
type CategoryBudget struct {
	CurrentAvg decimal.Decimal
	Suggested  decimal.Decimal
}

// BudgetRecommendation is the derived budget advice over the trailing
// quarter.
type BudgetRecommendation struct {
	MonthlyBudget    decimal.Decimal
	CategoryBudgets  map[categorizer.Category]CategoryBudget
	SavingsPotential decimal.Decimal
	Tips             []string
}

// Engine computes analytics over caller-supplied transaction sets. The clock
// is injectable so trailing-window operations are testable; NewEngine wires
// time.Now.
type Engine struct {
	now func() time.Time
}

// NewEngine returns an Engine using the wall clock.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineAt returns an Engine with a fixed clock, for tests and replays.
func NewEngineAt(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// SpendingSummary aggregates txs over the inclusive [start, end] range. The
// caller supplies the exact transaction set; no filtering happens here. An
// empty set yields a zero summary, not an error.
func (e *Engine) SpendingSummary(txs []Transaction, start, end time.Time) (SpendingSummary, error) {
	if end.Before(start) {
		return SpendingSummary{}, ErrInvalidDateRange
	}

	total := decimal.Zero
	breakdown := make(map[categorizer.Category]decimal.Decimal)
	merchantTotals := make(map[string]decimal.Decimal)

	for _, tx := range txs {
		total = total.Add(tx.Amount)
		category := tx.Category
		if category == "" {
			category = categorizer.CategoryOther
		}
		breakdown[category] = breakdown[category].Add(tx.Amount)
		merchantTotals[tx.Merchant] = merchantTotals[tx.Merchant].Add(tx.Amount)
	}

	topMerchants := make([]MerchantTotal, 0, len(merchantTotals))
	for merchant, amount := range merchantTotals {
		topMerchants = append(topMerchants, MerchantTotal{Merchant: merchant, Amount: amount})
	}
	// Descending by amount. Equal amounts land in no particular order: the
	// sort is unstable over map iteration, and no tie order is promised.
	sort.Slice(topMerchants, func(i, j int) bool {
		return topMerchants[i].Amount.GreaterThan(topMerchants[j].Amount)
	})
	if len(topMerchants) > topMerchantLimit {
		topMerchants = topMerchants[:topMerchantLimit]
	}

	dailyAverage := decimal.Zero
	days := inclusiveDays(start, end)
	if days > 0 {
		dailyAverage = total.Div(decimal.NewFromInt(int64(days)))
	}

	return SpendingSummary{
		TotalSpent:        total,
		TransactionCount:  len(txs),
		DailyAverage:      dailyAverage,
		CategoryBreakdown: breakdown,
		TopMerchants:      topMerchants,
		Start:             start,
		End:               end,
	}, nil
}

// inclusiveDays counts calendar days in [start, end], both ends included.
func inclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
