package service

import (
	"context"
	"fmt"
	"time"

	"github.com/finsight/backend/internal/budget"
	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/internal/repository"
)

type budgetService struct {
	budgetRepo  repository.BudgetRepository
	expenseRepo repository.ExpenseRepository
}

// NewBudgetService creates a new budget service
func NewBudgetService(budgetRepo repository.BudgetRepository, expenseRepo repository.ExpenseRepository) BudgetService {
	return &budgetService{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
	}
}

func (s *budgetService) CreateFiftyThirtyTwenty(ctx context.Context, userID string, req *models.CreateFiftyThirtyTwentyRequest) (*models.Budget, error) {
	b := budget.NewFiftyThirtyTwenty(userID, req.TotalIncome, req.Year, req.Month)
	return s.createWithSpending(ctx, b)
}

func (s *budgetService) CreateZeroBased(ctx context.Context, userID string, req *models.CreateZeroBasedRequest) (*models.Budget, error) {
	b := budget.NewZeroBased(userID, req.TotalIncome, req.Allocations, req.Year, req.Month)
	return s.createWithSpending(ctx, b)
}

func (s *budgetService) CreateEnvelope(ctx context.Context, userID string, req *models.CreateEnvelopeRequest) (*models.Budget, error) {
	b := budget.NewEnvelope(userID, req.Envelopes, req.Year, req.Month)
	return s.createWithSpending(ctx, b)
}

// createWithSpending applies the month's existing expenses before storing so
// a freshly created budget reflects spending recorded earlier in the month.
func (s *budgetService) createWithSpending(ctx context.Context, b *models.Budget) (*models.Budget, error) {
	expenses, err := s.monthExpenses(ctx, b)
	if err != nil {
		return nil, err
	}
	budget.ApplySpending(b, expenses)

	created, err := s.budgetRepo.Create(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return created, nil
}

func (s *budgetService) GetUserBudgets(ctx context.Context, userID string) ([]models.Budget, error) {
	budgets, err := s.budgetRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

func (s *budgetService) RefreshSpending(ctx context.Context, userID, budgetID string) (*models.Budget, error) {
	b, err := s.ownedBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.monthExpenses(ctx, b)
	if err != nil {
		return nil, err
	}
	budget.ApplySpending(b, expenses)

	updated, err := s.budgetRepo.Update(ctx, budgetID, b)
	if err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return updated, nil
}

func (s *budgetService) Analyze(ctx context.Context, userID, budgetID string) (*models.BudgetAnalysis, error) {
	b, err := s.ownedBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	// Analyze against fresh spend state, not whatever was last persisted
	expenses, err := s.monthExpenses(ctx, b)
	if err != nil {
		return nil, err
	}
	budget.ApplySpending(b, expenses)

	return budget.Analyze(b), nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	if _, err := s.ownedBudget(ctx, userID, budgetID); err != nil {
		return err
	}
	if err := s.budgetRepo.Delete(ctx, budgetID); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}

func (s *budgetService) ownedBudget(ctx context.Context, userID, budgetID string) (*models.Budget, error) {
	b, err := s.budgetRepo.GetByID(ctx, budgetID)
	if err != nil {
		return nil, ErrNotFound
	}
	if b.UserID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}

// monthExpenses fetches every expense in the budget's calendar month
func (s *budgetService) monthExpenses(ctx context.Context, b *models.Budget) ([]models.Expense, error) {
	start := time.Date(b.Year, time.Month(b.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	expenses, err := s.expenseRepo.GetByUserIDAndDateRange(ctx, b.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}
	return expenses, nil
}
