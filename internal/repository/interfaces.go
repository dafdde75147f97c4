package repository

import (
	"context"
	"time"

	"github.com/finsight/backend/internal/models"
)

// ExpenseRepository defines the interface for expense data access
type ExpenseRepository interface {
	Create(ctx context.Context, expense *models.Expense) (*models.Expense, error)
	GetByID(ctx context.Context, id string) (*models.Expense, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.Expense, error)
	GetByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Expense, error)
	Delete(ctx context.Context, id string) error
	DistinctUserIDs(ctx context.Context) ([]string, error)
}

// IncomeRepository defines the interface for income data access
type IncomeRepository interface {
	Create(ctx context.Context, income *models.Income) (*models.Income, error)
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.Income, error)
	GetByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Income, error)
	Delete(ctx context.Context, id string) error
}

// BudgetRepository defines the interface for budget data access
type BudgetRepository interface {
	Create(ctx context.Context, budget *models.Budget) (*models.Budget, error)
	GetByID(ctx context.Context, id string) (*models.Budget, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Budget, error)
	GetByUserIDAndMonth(ctx context.Context, userID string, year, month int) ([]models.Budget, error)
	Update(ctx context.Context, id string, budget *models.Budget) (*models.Budget, error)
	Delete(ctx context.Context, id string) error
}

// SharedExpenseRepository defines the interface for shared expense data access
type SharedExpenseRepository interface {
	Create(ctx context.Context, expense *models.SharedExpense) (*models.SharedExpense, error)
	GetByID(ctx context.Context, id string) (*models.SharedExpense, error)
	GetByGroupID(ctx context.Context, groupID string) ([]models.SharedExpense, error)
	Update(ctx context.Context, id string, expense *models.SharedExpense) (*models.SharedExpense, error)
}

// SnapshotRepository defines the interface for analytics snapshot storage
type SnapshotRepository interface {
	Upsert(ctx context.Context, snapshot *models.AnalyticsSnapshot) (*models.AnalyticsSnapshot, error)
	GetByKey(ctx context.Context, userID, period string, periodType models.PeriodType) (*models.AnalyticsSnapshot, error)
}
