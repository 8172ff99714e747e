package main

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/altamira-networks/expense-server/api"
	"github.com/altamira-networks/expense-server/internal/aicategorizer"
	"github.com/altamira-networks/expense-server/internal/config"
	"github.com/altamira-networks/expense-server/internal/logging"
	"github.com/altamira-networks/expense-server/internal/operator"
	"github.com/altamira-networks/expense-server/internal/service"
	"github.com/altamira-networks/expense-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("expense-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	delegator := operator.NewOperatorDelegator(envConfig.OperatorWorkers)
	delegator.Start(dbStorage)

	var remote aicategorizer.Categorizer
	if envConfig.AICategorizerEnabled {
		genaiCategorizer, err := aicategorizer.NewGenAICategorizer(context.Background(), envConfig.AICategorizerModel)
		if err != nil {
			logrus.WithError(err).Warn("aicategorizer.NewGenAICategorizer, continuing rule-based only")
		} else {
			remote = genaiCategorizer
		}
	}

	svc := service.NewService(dbStorage, delegator, remote)
	svc.Expense.SetRemoteTimeout(envConfig.AICategorizerTimeout)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:  logger,
			Port:    envConfig.HTTPPort,
			Service: svc,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
