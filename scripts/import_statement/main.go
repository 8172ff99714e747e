package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/altamira-networks/expense-server/internal/categorizer"
	"github.com/altamira-networks/expense-server/internal/config"
	"github.com/altamira-networks/expense-server/internal/importer"
	"github.com/altamira-networks/expense-server/internal/storage"
	"github.com/altamira-networks/expense-server/internal/storage/sqlconfig"
)

// Imports a bank statement CSV into the expenses table, categorizing each
// row on the way in. Usage:
//
//	go run ./scripts/import_statement -file statement.csv
func main() {
	filePath := flag.String("file", "", "path to the statement CSV")
	dryRun := flag.Bool("dry-run", false, "parse and categorize without writing")
	flag.Parse()

	if *filePath == "" {
		logrus.Fatal("missing -file")
		return
	}

	env, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	file, err := os.Open(*filePath)
	if err != nil {
		logrus.WithError(err).Fatal("os.Open")
		return
	}
	defer file.Close()

	rows, err := importer.ParseStatement(file)
	if err != nil {
		logrus.WithError(err).Fatal("importer.ParseStatement")
		return
	}

	kept, skipped := importer.Filter(rows, time.Now())
	summary := importer.Summarize(kept, skipped)

	logrus.WithFields(logrus.Fields{
		"rows":    summary.Rows,
		"skipped": summary.Skipped,
		"total":   summary.Total.StringFixed(2),
		"from":    summary.From.Format("2006-01-02"),
		"to":      summary.To.Format("2006-01-02"),
	}).Info("Statement parsed")

	engine := categorizer.NewEngine()

	if *dryRun {
		for _, row := range kept {
			category := engine.CategorizeWithEnhancedRules(row.Merchant, row.Amount.InexactFloat64(), "")
			logrus.WithFields(logrus.Fields{
				"merchant": categorizer.Normalize(row.Merchant),
				"amount":   row.Amount.StringFixed(2),
				"category": category.String(),
			}).Info("Row")
		}
		return
	}

	dbStorage := storage.NewStorage(env)
	ctx := context.Background()

	imported := 0
	for _, row := range kept {
		category := engine.CategorizeWithEnhancedRules(row.Merchant, row.Amount.InexactFloat64(), "")

		_, err := dbStorage.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{
			Merchant:           row.Merchant,
			NormalizedMerchant: categorizer.Normalize(row.Merchant),
			Amount:             row.Amount,
			Category:           category,
			ExpenseDate:        row.Date,
		})
		if err != nil {
			logrus.WithError(err).WithField("merchant", row.Merchant).Error("Expenses.Insert")
			continue
		}
		imported++
	}

	logrus.WithField("imported", imported).Info("Statement imported")
}
