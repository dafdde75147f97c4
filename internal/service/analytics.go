package service

import (
	"context"
	"fmt"
	"time"

	"github.com/finsight/backend/internal/analytics"
	"github.com/finsight/backend/internal/logger"
	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/internal/repository"
)

type analyticsService struct {
	expenseRepo  repository.ExpenseRepository
	incomeRepo   repository.IncomeRepository
	budgetRepo   repository.BudgetRepository
	snapshotRepo repository.SnapshotRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	expenseRepo repository.ExpenseRepository,
	incomeRepo repository.IncomeRepository,
	budgetRepo repository.BudgetRepository,
	snapshotRepo repository.SnapshotRepository,
) AnalyticsService {
	return &analyticsService{
		expenseRepo:  expenseRepo,
		incomeRepo:   incomeRepo,
		budgetRepo:   budgetRepo,
		snapshotRepo: snapshotRepo,
	}
}

func (s *analyticsService) ComputeSnapshot(ctx context.Context, userID, period string, periodType models.PeriodType) (*models.AnalyticsSnapshot, error) {
	if !periodType.Valid() {
		return nil, fmt.Errorf("%w: unknown period type %q", ErrInvalidPeriod, periodType)
	}
	start, end, err := analytics.PeriodBounds(period, periodType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	history, err := s.loadHistory(ctx, userID, periodType, start, end)
	if err != nil {
		return nil, err
	}
	current := history[len(history)-1]

	previous := analytics.PeriodData{}
	if prevKey, err := analytics.PreviousPeriod(period, periodType); err == nil {
		for _, p := range history {
			if p.Period == prevKey {
				previous = p
				break
			}
		}
	}

	totalBudget, hasBudgets, err := s.loadBudgetTotal(ctx, userID, start)
	if err != nil {
		return nil, err
	}

	snapshot := analytics.ComputeSnapshot(analytics.Inputs{
		UserID:      userID,
		Period:      period,
		PeriodType:  periodType,
		Current:     current,
		Previous:    previous,
		History:     history,
		TotalBudget: totalBudget,
		HasBudgets:  hasBudgets,
	}, time.Now())

	stored, err := s.snapshotRepo.Upsert(ctx, &snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to store snapshot: %w", err)
	}

	return stored, nil
}

func (s *analyticsService) GetSnapshot(ctx context.Context, userID, period string, periodType models.PeriodType) (*models.AnalyticsSnapshot, error) {
	if !periodType.Valid() {
		return nil, fmt.Errorf("%w: unknown period type %q", ErrInvalidPeriod, periodType)
	}
	if _, _, err := analytics.PeriodBounds(period, periodType); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	snapshot, err := s.snapshotRepo.GetByKey(ctx, userID, period, periodType)
	if err == nil {
		return snapshot, nil
	}

	// No stored snapshot yet; compute one on demand
	return s.ComputeSnapshot(ctx, userID, period, periodType)
}

func (s *analyticsService) RecomputeAllUsers(ctx context.Context) error {
	userIDs, err := s.expenseRepo.DistinctUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	period := analytics.CurrentPeriod(models.PeriodMonthly, time.Now())
	log := logger.Ctx(ctx)

	var failed int
	for _, userID := range userIDs {
		if _, err := s.ComputeSnapshot(ctx, userID, period, models.PeriodMonthly); err != nil {
			failed++
			log.Error("snapshot recompute failed",
				logger.String("user_id", userID),
				logger.String("period", period),
				logger.Err(err))
		}
	}

	log.Info("snapshot recompute finished",
		logger.String("period", period),
		logger.Int("users", len(userIDs)),
		logger.Int("failed", failed))

	if failed > 0 {
		return fmt.Errorf("recompute failed for %d of %d users", failed, len(userIDs))
	}
	return nil
}

// loadHistory fetches the trailing HistoryDepth periods of expenses and
// income in one query per table and partitions the rows by period key.
// The returned slice is ordered oldest first with the requested period last.
func (s *analyticsService) loadHistory(ctx context.Context, userID string, periodType models.PeriodType, start, end time.Time) ([]analytics.PeriodData, error) {
	keys := analytics.LastN(periodType, analytics.HistoryDepth, start)
	firstStart, _, err := analytics.PeriodBounds(keys[0], periodType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPeriod, err)
	}

	expenses, err := s.expenseRepo.GetByUserIDAndDateRange(ctx, userID, firstStart, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}
	incomes, err := s.incomeRepo.GetByUserIDAndDateRange(ctx, userID, firstStart, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get incomes: %w", err)
	}

	byPeriod := make(map[string]*analytics.PeriodData, len(keys))
	history := make([]analytics.PeriodData, len(keys))
	for i, key := range keys {
		history[i] = analytics.PeriodData{Period: key}
		byPeriod[key] = &history[i]
	}

	for _, e := range expenses {
		if p, ok := byPeriod[analytics.CurrentPeriod(periodType, e.OccurredAt)]; ok {
			p.Expenses = append(p.Expenses, e)
		}
	}
	for _, inc := range incomes {
		if p, ok := byPeriod[analytics.CurrentPeriod(periodType, inc.OccurredAt)]; ok {
			p.Income = append(p.Income, inc)
		}
	}

	return history, nil
}

// loadBudgetTotal sums the budget amounts for the calendar month containing
// the period start. Weekly and quarterly periods borrow that month's budgets.
func (s *analyticsService) loadBudgetTotal(ctx context.Context, userID string, periodStart time.Time) (float64, bool, error) {
	budgets, err := s.budgetRepo.GetByUserIDAndMonth(ctx, userID, periodStart.Year(), int(periodStart.Month()))
	if err != nil {
		return 0, false, fmt.Errorf("failed to get budgets: %w", err)
	}

	var total float64
	for _, b := range budgets {
		total += b.Amount
	}
	return total, len(budgets) > 0, nil
}
