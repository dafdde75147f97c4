package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finsight/backend/internal/models"
)

// Map-backed mock repositories shared by the service tests.

type mockExpenseRepository struct {
	expenses    map[string]*models.Expense
	createCalls int
	lastLimit   int
	lastOffset  int
}

func newMockExpenseRepository() *mockExpenseRepository {
	return &mockExpenseRepository{expenses: make(map[string]*models.Expense)}
}

func (m *mockExpenseRepository) Create(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	m.createCalls++
	if expense.ID == "" {
		expense.ID = fmt.Sprintf("expense-%d", m.createCalls)
	}
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = time.Now()
	m.expenses[expense.ID] = expense
	return expense, nil
}

func (m *mockExpenseRepository) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	if expense, ok := m.expenses[id]; ok {
		return expense, nil
	}
	return nil, errors.New("expense not found")
}

func (m *mockExpenseRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.Expense, error) {
	m.lastLimit = limit
	m.lastOffset = offset
	var result []models.Expense
	for _, expense := range m.expenses {
		if expense.UserID == userID {
			result = append(result, *expense)
		}
	}
	return result, nil
}

func (m *mockExpenseRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Expense, error) {
	var result []models.Expense
	for _, expense := range m.expenses {
		if expense.UserID == userID && !expense.OccurredAt.Before(start) && expense.OccurredAt.Before(end) {
			result = append(result, *expense)
		}
	}
	return result, nil
}

func (m *mockExpenseRepository) Delete(ctx context.Context, id string) error {
	delete(m.expenses, id)
	return nil
}

func (m *mockExpenseRepository) DistinctUserIDs(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, expense := range m.expenses {
		if !seen[expense.UserID] {
			seen[expense.UserID] = true
			ids = append(ids, expense.UserID)
		}
	}
	return ids, nil
}

type mockIncomeRepository struct {
	incomes     map[string]*models.Income
	createCalls int
}

func newMockIncomeRepository() *mockIncomeRepository {
	return &mockIncomeRepository{incomes: make(map[string]*models.Income)}
}

func (m *mockIncomeRepository) Create(ctx context.Context, income *models.Income) (*models.Income, error) {
	m.createCalls++
	if income.ID == "" {
		income.ID = fmt.Sprintf("income-%d", m.createCalls)
	}
	income.CreatedAt = time.Now()
	income.UpdatedAt = time.Now()
	m.incomes[income.ID] = income
	return income, nil
}

func (m *mockIncomeRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.Income, error) {
	var result []models.Income
	for _, income := range m.incomes {
		if income.UserID == userID {
			result = append(result, *income)
		}
	}
	return result, nil
}

func (m *mockIncomeRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Income, error) {
	var result []models.Income
	for _, income := range m.incomes {
		if income.UserID == userID && !income.OccurredAt.Before(start) && income.OccurredAt.Before(end) {
			result = append(result, *income)
		}
	}
	return result, nil
}

func (m *mockIncomeRepository) Delete(ctx context.Context, id string) error {
	delete(m.incomes, id)
	return nil
}

type mockBudgetRepository struct {
	budgets     map[string]*models.Budget
	updateCalls int
}

func newMockBudgetRepository() *mockBudgetRepository {
	return &mockBudgetRepository{budgets: make(map[string]*models.Budget)}
}

func (m *mockBudgetRepository) Create(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	m.budgets[budget.ID] = budget
	return budget, nil
}

func (m *mockBudgetRepository) GetByID(ctx context.Context, id string) (*models.Budget, error) {
	if budget, ok := m.budgets[id]; ok {
		return budget, nil
	}
	return nil, errors.New("budget not found")
}

func (m *mockBudgetRepository) GetByUserID(ctx context.Context, userID string) ([]models.Budget, error) {
	var result []models.Budget
	for _, budget := range m.budgets {
		if budget.UserID == userID {
			result = append(result, *budget)
		}
	}
	return result, nil
}

func (m *mockBudgetRepository) GetByUserIDAndMonth(ctx context.Context, userID string, year, month int) ([]models.Budget, error) {
	var result []models.Budget
	for _, budget := range m.budgets {
		if budget.UserID == userID && budget.Year == year && budget.Month == month {
			result = append(result, *budget)
		}
	}
	return result, nil
}

func (m *mockBudgetRepository) Update(ctx context.Context, id string, budget *models.Budget) (*models.Budget, error) {
	m.updateCalls++
	m.budgets[id] = budget
	return budget, nil
}

func (m *mockBudgetRepository) Delete(ctx context.Context, id string) error {
	delete(m.budgets, id)
	return nil
}

type mockSharedExpenseRepository struct {
	expenses    map[string]*models.SharedExpense
	createCalls int
}

func newMockSharedExpenseRepository() *mockSharedExpenseRepository {
	return &mockSharedExpenseRepository{expenses: make(map[string]*models.SharedExpense)}
}

func (m *mockSharedExpenseRepository) Create(ctx context.Context, expense *models.SharedExpense) (*models.SharedExpense, error) {
	m.createCalls++
	if expense.ID == "" {
		expense.ID = fmt.Sprintf("shared-%d", m.createCalls)
	}
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = time.Now()
	m.expenses[expense.ID] = expense
	return expense, nil
}

func (m *mockSharedExpenseRepository) GetByID(ctx context.Context, id string) (*models.SharedExpense, error) {
	if expense, ok := m.expenses[id]; ok {
		return expense, nil
	}
	return nil, errors.New("shared expense not found")
}

func (m *mockSharedExpenseRepository) GetByGroupID(ctx context.Context, groupID string) ([]models.SharedExpense, error) {
	var result []models.SharedExpense
	for _, expense := range m.expenses {
		if expense.GroupID == groupID {
			result = append(result, *expense)
		}
	}
	return result, nil
}

func (m *mockSharedExpenseRepository) Update(ctx context.Context, id string, expense *models.SharedExpense) (*models.SharedExpense, error) {
	m.expenses[id] = expense
	return expense, nil
}

type mockSnapshotRepository struct {
	snapshots   map[string]*models.AnalyticsSnapshot
	upsertCalls int
}

func newMockSnapshotRepository() *mockSnapshotRepository {
	return &mockSnapshotRepository{snapshots: make(map[string]*models.AnalyticsSnapshot)}
}

func snapshotKey(userID, period string, periodType models.PeriodType) string {
	return userID + "|" + period + "|" + string(periodType)
}

func (m *mockSnapshotRepository) Upsert(ctx context.Context, snapshot *models.AnalyticsSnapshot) (*models.AnalyticsSnapshot, error) {
	m.upsertCalls++
	m.snapshots[snapshotKey(snapshot.UserID, snapshot.Period, snapshot.PeriodType)] = snapshot
	return snapshot, nil
}

func (m *mockSnapshotRepository) GetByKey(ctx context.Context, userID, period string, periodType models.PeriodType) (*models.AnalyticsSnapshot, error) {
	if snapshot, ok := m.snapshots[snapshotKey(userID, period, periodType)]; ok {
		return snapshot, nil
	}
	return nil, errors.New("snapshot not found")
}
