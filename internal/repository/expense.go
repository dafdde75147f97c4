package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/pkg/postgrest"
)

type expenseRepository struct {
	client *postgrest.Client
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(client *postgrest.Client) ExpenseRepository {
	return &expenseRepository{client: client}
}

func (r *expenseRepository) Create(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	data := map[string]interface{}{
		"user_id":     expense.UserID,
		"amount":      expense.Amount,
		"category":    expense.Category,
		"occurred_at": expense.OccurredAt,
		"period_tag":  expense.PeriodTag,
	}
	if expense.ID != "" {
		data["id"] = expense.ID
	}
	if expense.Description != nil {
		data["description"] = *expense.Description
	}

	body, err := r.client.Insert("expenses", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	var expenses []models.Expense
	if err := json.Unmarshal(body, &expenses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(expenses) == 0 {
		return nil, fmt.Errorf("no expense returned")
	}

	return &expenses[0], nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	query := map[string]string{
		"id": fmt.Sprintf("eq.%s", id),
	}

	body, err := r.client.Query("expenses", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	var expenses []models.Expense
	if err := json.Unmarshal(body, &expenses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(expenses) == 0 {
		return nil, fmt.Errorf("expense not found")
	}

	return &expenses[0], nil
}

func (r *expenseRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.Expense, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"order":   "occurred_at.desc",
		"limit":   fmt.Sprintf("%d", limit),
		"offset":  fmt.Sprintf("%d", offset),
	}

	body, err := r.client.Query("expenses", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	var expenses []models.Expense
	if err := json.Unmarshal(body, &expenses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return expenses, nil
}

// GetByUserIDAndDateRange fetches a user's expenses in [start, end). The
// exclusive upper bound lines up with period bounds so boundary transactions
// land in exactly one period.
func (r *expenseRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Expense, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"and":     fmt.Sprintf("(occurred_at.gte.%s,occurred_at.lt.%s)", start.Format(time.RFC3339), end.Format(time.RFC3339)),
		"order":   "occurred_at.asc",
	}

	body, err := r.client.Query("expenses", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	var expenses []models.Expense
	if err := json.Unmarshal(body, &expenses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return expenses, nil
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	query := map[string]string{
		"id": fmt.Sprintf("eq.%s", id),
	}
	if err := r.client.Delete("expenses", query); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// DistinctUserIDs lists every user with at least one recorded expense. Used
// by the scheduled recompute to enumerate snapshot owners.
func (r *expenseRepository) DistinctUserIDs(ctx context.Context) ([]string, error) {
	query := map[string]string{
		"select": "user_id",
	}

	body, err := r.client.Query("expenses", query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var rows []struct {
		UserID string `json:"user_id"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	seen := make(map[string]struct{}, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.UserID]; ok {
			continue
		}
		seen[row.UserID] = struct{}{}
		ids = append(ids, row.UserID)
	}

	return ids, nil
}
