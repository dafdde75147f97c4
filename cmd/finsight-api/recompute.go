package main

import (
	"context"
	"fmt"

	"github.com/finsight/backend/internal/config"
	"github.com/finsight/backend/internal/logger"
	"github.com/finsight/backend/internal/repository"
	"github.com/finsight/backend/internal/service"
	"github.com/finsight/backend/pkg/postgrest"
	"github.com/spf13/cobra"
)

var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Recompute analytics snapshots for all users",
	Long:  `Run the monthly analytics snapshot recompute once and exit.`,
	RunE:  runRecompute,
}

func runRecompute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.SetDefault(logger.NewSlogLogger(logger.DefaultConfig()))

	storeClient := postgrest.NewClient(cfg.Store.URL, cfg.Store.ServiceKey)
	analyticsService := service.NewAnalyticsService(
		repository.NewExpenseRepository(storeClient),
		repository.NewIncomeRepository(storeClient),
		repository.NewBudgetRepository(storeClient),
		repository.NewSnapshotRepository(storeClient),
	)

	return analyticsService.RecomputeAllUsers(context.Background())
}
