package analytics

import (
	"math"
	"sort"
)

const (
	outlierWindowDays = 90
	outlierMinSamples = 10
	outlierLimit      = 10
	outlierSigmas     = 2
)

// DetectUnusualSpending finds transactions in the trailing 90-day window
// whose amount exceeds mean + 2 sample standard deviations. Fewer than 10
// transactions in the window is insufficient data and yields an empty result,
// as does a zero standard deviation (all amounts identical, so nothing can
// exceed the threshold and the deviation quotient is undefined). At most 10
// records are returned, largest amount first.
func (e *Engine) DetectUnusualSpending(txs []Transaction) []OutlierRecord {
	cutoff := e.now().AddDate(0, 0, -outlierWindowDays)

	var window []Transaction
	for _, tx := range txs {
		if !tx.Date.Before(cutoff) {
			window = append(window, tx)
		}
	}
	if len(window) < outlierMinSamples {
		return nil
	}

	mean, stddev := sampleStats(window)
	if stddev == 0 {
		return nil
	}
	threshold := mean + outlierSigmas*stddev

	var unusual []OutlierRecord
	for _, tx := range window {
		amount := tx.Amount.InexactFloat64()
		if amount > threshold {
			unusual = append(unusual, OutlierRecord{
				TransactionID: tx.ID,
				Merchant:      tx.Merchant,
				Amount:        tx.Amount,
				Category:      tx.Category,
				Date:          tx.Date,
				Deviation:     (amount - mean) / stddev,
			})
		}
	}

	sort.Slice(unusual, func(i, j int) bool {
		return unusual[i].Amount.GreaterThan(unusual[j].Amount)
	})
	if len(unusual) > outlierLimit {
		unusual = unusual[:outlierLimit]
	}
	return unusual
}

// sampleStats returns the mean and sample (n-1) standard deviation of the
// transaction amounts.
func sampleStats(txs []Transaction) (mean, stddev float64) {
	n := float64(len(txs))
	var sum float64
	for _, tx := range txs {
		sum += tx.Amount.InexactFloat64()
	}
	mean = sum / n

	var squares float64
	for _, tx := range txs {
		diff := tx.Amount.InexactFloat64() - mean
		squares += diff * diff
	}
	stddev = math.Sqrt(squares / (n - 1))
	return mean, stddev
}
