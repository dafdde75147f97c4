package service

import (
	"context"
	"errors"

	"github.com/finsight/backend/internal/models"
)

// Sentinel errors services return so handlers can map them to the right
// problem type without string matching.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrForbidden     = errors.New("access denied")
	ErrInvalidPeriod = errors.New("invalid period")
	ErrSplitMismatch = errors.New("split amounts do not match expense amount")
)

// ExpenseService defines the interface for expense business logic
type ExpenseService interface {
	CreateExpense(ctx context.Context, userID string, req *models.CreateExpenseRequest) (*models.Expense, error)
	GetUserExpenses(ctx context.Context, userID string, limit, offset int) ([]models.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}

// IncomeService defines the interface for income business logic
type IncomeService interface {
	CreateIncome(ctx context.Context, userID string, req *models.CreateIncomeRequest) (*models.Income, error)
	GetUserIncomes(ctx context.Context, userID string, limit, offset int) ([]models.Income, error)
}

// AnalyticsService defines the interface for analytics business logic
type AnalyticsService interface {
	// ComputeSnapshot runs the full analytics pipeline for one user and
	// period, stores the result, and returns it.
	ComputeSnapshot(ctx context.Context, userID, period string, periodType models.PeriodType) (*models.AnalyticsSnapshot, error)
	// GetSnapshot returns the stored snapshot for a key, computing it on
	// demand when none exists yet.
	GetSnapshot(ctx context.Context, userID, period string, periodType models.PeriodType) (*models.AnalyticsSnapshot, error)
	// RecomputeAllUsers refreshes the current monthly snapshot for every
	// user with recorded expenses.
	RecomputeAllUsers(ctx context.Context) error
}

// BudgetService defines the interface for budget business logic
type BudgetService interface {
	CreateFiftyThirtyTwenty(ctx context.Context, userID string, req *models.CreateFiftyThirtyTwentyRequest) (*models.Budget, error)
	CreateZeroBased(ctx context.Context, userID string, req *models.CreateZeroBasedRequest) (*models.Budget, error)
	CreateEnvelope(ctx context.Context, userID string, req *models.CreateEnvelopeRequest) (*models.Budget, error)
	GetUserBudgets(ctx context.Context, userID string) ([]models.Budget, error)
	// RefreshSpending recomputes a budget's spent state from the full
	// expense list of its month and persists the result.
	RefreshSpending(ctx context.Context, userID, budgetID string) (*models.Budget, error)
	Analyze(ctx context.Context, userID, budgetID string) (*models.BudgetAnalysis, error)
	DeleteBudget(ctx context.Context, userID, budgetID string) error
}

// SharedExpenseService defines the interface for shared expense business logic
type SharedExpenseService interface {
	CreateSharedExpense(ctx context.Context, req *models.CreateSharedExpenseRequest) (*models.SharedExpense, error)
	GetGroupExpenses(ctx context.Context, groupID string) ([]models.SharedExpense, error)
	GetGroupBalances(ctx context.Context, groupID string) (*models.GroupBalancesResponse, error)
	MarkSplitPaid(ctx context.Context, expenseID, participantID string) (*models.SharedExpense, error)
}
