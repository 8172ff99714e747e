package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/altamira-networks/expense-server/internal/categorizer"
)

func quarterTx(merchant, amount string, category categorizer.Category) Transaction {
	return tx(merchant, amount, category, testNow.AddDate(0, 0, -10))
}

func TestBudgetRecommendations_MonthlyBudgetIsQuarterAverage(t *testing.T) {
	engine := newTestEngine()

	txs := []Transaction{
		quarterTx("A", "600.00", categorizer.CategoryUtilities),
		quarterTx("B", "300.00", categorizer.CategoryUtilities),
	}

	rec, err := engine.BudgetRecommendations(txs)
	assert.NoError(t, err)
	assert.Equal(t, "300.00", rec.MonthlyBudget.StringFixed(2))
}

func TestBudgetRecommendations_DiscretionaryCut(t *testing.T) {
	engine := newTestEngine()

	txs := []Transaction{
		quarterTx("Padaria", "300.00", categorizer.CategoryFood),
		quarterTx("Cinema", "150.00", categorizer.CategoryEntertainment),
		quarterTx("CPFL", "450.00", categorizer.CategoryUtilities),
	}

	rec, err := engine.BudgetRecommendations(txs)
	assert.NoError(t, err)

	food := rec.CategoryBudgets[categorizer.CategoryFood]
	assert.Equal(t, "100.00", food.CurrentAvg.StringFixed(2))
	assert.Equal(t, "90.00", food.Suggested.StringFixed(2))

	ent := rec.CategoryBudgets[categorizer.CategoryEntertainment]
	assert.Equal(t, "50.00", ent.CurrentAvg.StringFixed(2))
	assert.Equal(t, "45.00", ent.Suggested.StringFixed(2))

	// Utilities are not discretionary: suggested stays at the average.
	util := rec.CategoryBudgets[categorizer.CategoryUtilities]
	assert.Equal(t, "150.00", util.CurrentAvg.StringFixed(2))
	assert.Equal(t, "150.00", util.Suggested.StringFixed(2))

	// 10% of food + 10% of entertainment monthly averages.
	assert.Equal(t, "15.00", rec.SavingsPotential.StringFixed(2))
}

func TestBudgetRecommendations_FoodTipRequiresStrictlyOverThirtyPercent(t *testing.T) {
	engine := newTestEngine()

	// Food is exactly 30% of the 1000 total: the tip must stay quiet.
	// Entertainment at 20% is strictly over its 15% threshold.
	txs := []Transaction{
		quarterTx("Padaria", "300.00", categorizer.CategoryFood),
		quarterTx("Cinema", "200.00", categorizer.CategoryEntertainment),
		quarterTx("CPFL", "500.00", categorizer.CategoryUtilities),
	}

	rec, err := engine.BudgetRecommendations(txs)
	assert.NoError(t, err)
	assert.NotContains(t, rec.Tips, tipFood)
	assert.Contains(t, rec.Tips, tipFun)
}

func TestBudgetRecommendations_FoodTipFiresAboveThreshold(t *testing.T) {
	engine := newTestEngine()

	txs := []Transaction{
		quarterTx("Padaria", "301.00", categorizer.CategoryFood),
		quarterTx("CPFL", "699.00", categorizer.CategoryUtilities),
	}

	rec, err := engine.BudgetRecommendations(txs)
	assert.NoError(t, err)
	assert.Contains(t, rec.Tips, tipFood)
}

func TestBudgetRecommendations_DailyAverageTip(t *testing.T) {
	engine := newTestEngine()

	// 91 inclusive days in the window; push the daily average over 100.
	txs := []Transaction{
		quarterTx("Loja", "9500.00", categorizer.CategoryShopping),
	}

	rec, err := engine.BudgetRecommendations(txs)
	assert.NoError(t, err)
	assert.Contains(t, rec.Tips, tipDailyAverage)
}

func TestBudgetRecommendations_EmptySet(t *testing.T) {
	engine := newTestEngine()

	rec, err := engine.BudgetRecommendations(nil)
	assert.NoError(t, err)
	assert.True(t, rec.MonthlyBudget.IsZero())
	assert.True(t, rec.SavingsPotential.IsZero())
	assert.Empty(t, rec.CategoryBudgets)
	assert.Empty(t, rec.Tips)
}
