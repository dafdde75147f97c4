package service

import (
	"context"
	"fmt"

	"github.com/finsight/backend/internal/analytics"
	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/internal/repository"
)

type expenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) ExpenseService {
	return &expenseService{expenseRepo: expenseRepo}
}

func (s *expenseService) CreateExpense(ctx context.Context, userID string, req *models.CreateExpenseRequest) (*models.Expense, error) {
	expense := &models.Expense{
		UserID:      userID,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		OccurredAt:  req.OccurredAt.UTC(),
		// Tag with the monthly period so period queries can filter cheaply
		PeriodTag: analytics.CurrentPeriod(models.PeriodMonthly, req.OccurredAt),
	}

	created, err := s.expenseRepo.Create(ctx, expense)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return created, nil
}

func (s *expenseService) GetUserExpenses(ctx context.Context, userID string, limit, offset int) ([]models.Expense, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	expenses, err := s.expenseRepo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	return expenses, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	expense, err := s.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		return ErrNotFound
	}
	if expense.UserID != userID {
		return ErrForbidden
	}

	if err := s.expenseRepo.Delete(ctx, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	return nil
}
