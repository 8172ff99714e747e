package analytics

import (
	"fmt"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"

	"github.com/altamira-networks/expense-server/internal/categorizer"
)

func recentTxs(amounts ...string) []Transaction {
	txs := make([]Transaction, len(amounts))
	for i, amount := range amounts {
		txs[i] = tx(fmt.Sprintf("M%d", i), amount, categorizer.CategoryShopping,
			testNow.AddDate(0, 0, -i%30))
	}
	return txs
}

func TestDetectUnusualSpending_SingleSpike(t *testing.T) {
	engine := newTestEngine()

	txs := recentTxs("10", "12", "11", "9", "13", "10", "11", "12", "10", "500")

	outliers := engine.DetectUnusualSpending(txs)
	assert.Len(t, outliers, 1, spew.Sdump(outliers))
	assert.Equal(t, "500", outliers[0].Amount.String())
	assert.Equal(t, txs[9].ID, outliers[0].TransactionID)
	// mean 59.8, sample stddev ~154.7: the spike sits just under 3 sigmas.
	assert.InDelta(t, 2.85, outliers[0].Deviation, 0.01)
}

func TestDetectUnusualSpending_InsufficientData(t *testing.T) {
	engine := newTestEngine()

	txs := recentTxs("10", "12", "11", "9", "13", "10", "11", "12", "500")
	assert.Empty(t, engine.DetectUnusualSpending(txs))
}

func TestDetectUnusualSpending_OldTransactionsOutsideWindow(t *testing.T) {
	engine := newTestEngine()

	txs := recentTxs("10", "12", "11", "9", "13", "10", "11", "12", "10")
	// The spike happened over 90 days ago, leaving 9 in-window samples.
	txs = append(txs, tx("Old", "500", categorizer.CategoryShopping, testNow.AddDate(0, 0, -120)))

	assert.Empty(t, engine.DetectUnusualSpending(txs))
}

func TestDetectUnusualSpending_ZeroStddev(t *testing.T) {
	engine := newTestEngine()

	// All amounts identical: nothing exceeds mean+0 and no division happens.
	txs := recentTxs("10", "10", "10", "10", "10", "10", "10", "10", "10", "10")
	assert.Empty(t, engine.DetectUnusualSpending(txs))
}

func TestDetectUnusualSpending_SortedDescending(t *testing.T) {
	engine := newTestEngine()

	var txs []Transaction
	for i := 0; i < 30; i++ {
		txs = append(txs, tx(fmt.Sprintf("base%d", i), "10", categorizer.CategoryShopping, testNow.AddDate(0, 0, -1)))
	}
	txs = append(txs,
		tx("spikeSmall", "2000", categorizer.CategoryShopping, testNow.AddDate(0, 0, -2)),
		tx("spikeBig", "2500", categorizer.CategoryShopping, testNow.AddDate(0, 0, -3)),
	)

	outliers := engine.DetectUnusualSpending(txs)
	assert.LessOrEqual(t, len(outliers), 10)
	for i := 1; i < len(outliers); i++ {
		assert.True(t, outliers[i].Amount.LessThanOrEqual(outliers[i-1].Amount))
	}
	if assert.Len(t, outliers, 2) {
		assert.Equal(t, "spikeBig", outliers[0].Merchant)
		assert.Equal(t, "spikeSmall", outliers[1].Merchant)
	}
}

func TestDetectUnusualSpending_At90DayBoundary(t *testing.T) {
	engine := newTestEngine()
	boundary := testNow.AddDate(0, 0, -90)

	var txs []Transaction
	for i := 0; i < 9; i++ {
		txs = append(txs, tx(fmt.Sprintf("M%d", i), "10", categorizer.CategoryShopping, testNow.AddDate(0, 0, -1)))
	}
	// Exactly on the cutoff still counts, reaching the 10-sample minimum.
	txs = append(txs, tx("Edge", "500", categorizer.CategoryShopping, boundary))

	outliers := engine.DetectUnusualSpending(txs)
	assert.Len(t, outliers, 1)
	assert.Equal(t, "Edge", outliers[0].Merchant)
}
