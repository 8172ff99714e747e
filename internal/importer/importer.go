// Package importer parses bank statement CSV exports into expense rows.
// The expected layout is the Brazilian bank export with a data, lancamento
// and valor column; header matching is accent and case insensitive.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrMissingColumns = errors.New("importer: statement is missing required columns")

// Row is one parsed statement line. Amount keeps its sign, refunds stay
// negative.
type Row struct {
	Date     time.Time
	Merchant string
	Amount   decimal.Decimal
}

// Summary describes a filtered batch of rows.
type Summary struct {
	Rows    int
	Skipped int
	Total   decimal.Decimal
	From    time.Time
	To      time.Time
}

var dateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
}

// ParseStatement reads a CSV statement and returns all parseable rows in
// file order. Lines with an unparseable date or amount are dropped rather
// than failing the whole import.
func ParseStatement(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("importer: read header: %w", err)
	}

	dateIdx, merchantIdx, amountIdx := -1, -1, -1
	for i, name := range header {
		switch normalizeHeader(name) {
		case "data":
			dateIdx = i
		case "lancamento":
			merchantIdx = i
		case "valor":
			amountIdx = i
		}
	}
	if dateIdx < 0 || merchantIdx < 0 || amountIdx < 0 {
		return nil, ErrMissingColumns
	}

	var result []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("importer: read record: %w", err)
		}
		if len(record) <= dateIdx || len(record) <= merchantIdx || len(record) <= amountIdx {
			continue
		}

		date, ok := parseDate(record[dateIdx])
		if !ok {
			continue
		}
		amount, err := parseAmount(record[amountIdx])
		if err != nil {
			continue
		}
		merchant := strings.TrimSpace(record[merchantIdx])
		if merchant == "" {
			continue
		}

		result = append(result, Row{
			Date:     date,
			Merchant: merchant,
			Amount:   amount,
		})
	}

	return result, nil
}

// Filter drops rows that should not become expenses: zero amounts and rows
// dated in the future relative to now.
func Filter(rows []Row, now time.Time) (kept []Row, skipped int) {
	for _, row := range rows {
		if row.Amount.IsZero() || row.Date.After(now) {
			skipped++
			continue
		}
		kept = append(kept, row)
	}
	return kept, skipped
}

// Summarize reports row count, signed total and date range for a batch.
func Summarize(rows []Row, skipped int) Summary {
	summary := Summary{
		Rows:    len(rows),
		Skipped: skipped,
	}

	for i, row := range rows {
		summary.Total = summary.Total.Add(row.Amount)
		if i == 0 || row.Date.Before(summary.From) {
			summary.From = row.Date
		}
		if i == 0 || row.Date.After(summary.To) {
			summary.To = row.Date
		}
	}

	return summary
}

func normalizeHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	replacer := strings.NewReplacer("ç", "c", "ã", "a", "á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")
	return replacer.Replace(name)
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, true
		}
	}
	return time.Time{}, false
}

func parseAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	value = strings.ReplaceAll(value, "R$", "")
	value = strings.TrimSpace(value)

	// Brazilian exports use comma as the decimal separator and dot for
	// thousands. A value with both has its dots stripped first.
	if strings.Contains(value, ",") {
		value = strings.ReplaceAll(value, ".", "")
		value = strings.ReplaceAll(value, ",", ".")
	}

	return decimal.NewFromString(value)
}
