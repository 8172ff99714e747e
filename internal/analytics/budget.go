package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/altamira-networks/expense-server/internal/categorizer"
)

// Budget recommendation constants. The tip thresholds are deliberate literal
// constants carried over from the spending heuristics this engine encodes;
// they assume one currency unit and are a likely future configuration point.
const (
	budgetWindowDays         = 90
	foodShareTipThreshold    = 0.30
	entShareTipThreshold     = 0.15
	dailyAverageTipThreshold = 100
)

var (
	quarterMonths    = decimal.NewFromInt(3)
	discretionaryCut = decimal.NewFromFloat(0.9)
)

// discretionary are the categories that get a suggested 10% reduction.
var discretionary = map[categorizer.Category]bool{
	categorizer.CategoryEntertainment: true,
	categorizer.CategoryShopping:      true,
	categorizer.CategoryFood:          true,
}

// Tip texts, appended in a fixed order when their threshold is strictly
// exceeded.
const (
	tipFood         = "Your food expenses are over 30% of total spending. Consider meal planning to reduce costs."
	tipFun          = "Entertainment spending is high. Look for free or low-cost alternatives."
	tipDailyAverage = "Your daily average spending is over $100. Review your expenses for potential savings."
)

// BudgetRecommendations derives budget advice from the trailing 90 days of
// transactions. The monthly budget is a plain total/3 quarter average, not
// calendar-aware. Discretionary categories (entertainment, shopping, food)
// are suggested at 90% of their monthly average and the trimmed 10%
// accumulates into the savings potential; every other category keeps its
// current average. Tips fire only on strictly greater comparisons, so a food
// share of exactly 30% stays quiet.
func (e *Engine) BudgetRecommendations(txs []Transaction) (BudgetRecommendation, error) {
	now := e.now()
	summary, err := e.SpendingSummary(txs, now.AddDate(0, 0, -budgetWindowDays), now)
	if err != nil {
		return BudgetRecommendation{}, err
	}

	rec := BudgetRecommendation{
		MonthlyBudget:    summary.TotalSpent.Div(quarterMonths),
		CategoryBudgets:  make(map[categorizer.Category]CategoryBudget, len(summary.CategoryBreakdown)),
		SavingsPotential: decimal.Zero,
	}

	for category, amount := range summary.CategoryBreakdown {
		monthlyAvg := amount.Div(quarterMonths)
		suggested := monthlyAvg
		if discretionary[category] {
			suggested = monthlyAvg.Mul(discretionaryCut)
			rec.SavingsPotential = rec.SavingsPotential.Add(monthlyAvg.Sub(suggested))
		}
		rec.CategoryBudgets[category] = CategoryBudget{
			CurrentAvg: monthlyAvg,
			Suggested:  suggested,
		}
	}

	total := summary.TotalSpent
	if total.IsPositive() {
		foodShare := summary.CategoryBreakdown[categorizer.CategoryFood].Div(total)
		if foodShare.GreaterThan(decimal.NewFromFloat(foodShareTipThreshold)) {
			rec.Tips = append(rec.Tips, tipFood)
		}
		entShare := summary.CategoryBreakdown[categorizer.CategoryEntertainment].Div(total)
		if entShare.GreaterThan(decimal.NewFromFloat(entShareTipThreshold)) {
			rec.Tips = append(rec.Tips, tipFun)
		}
	}
	if summary.DailyAverage.GreaterThan(decimal.NewFromInt(dailyAverageTipThreshold)) {
		rec.Tips = append(rec.Tips, tipDailyAverage)
	}

	return rec, nil
}
