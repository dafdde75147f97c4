package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/pkg/postgrest"
)

type sharedExpenseRepository struct {
	client *postgrest.Client
}

// NewSharedExpenseRepository creates a new shared expense repository
func NewSharedExpenseRepository(client *postgrest.Client) SharedExpenseRepository {
	return &sharedExpenseRepository{client: client}
}

func sharedExpenseData(expense *models.SharedExpense) map[string]interface{} {
	data := map[string]interface{}{
		"group_id":   expense.GroupID,
		"name":       expense.Name,
		"amount":     expense.Amount,
		"category":   expense.Category,
		"date":       expense.Date,
		"paid_by":    expense.PaidBy,
		"split_type": expense.SplitType,
		"splits":     expense.Splits,
	}
	if expense.ID != "" {
		data["id"] = expense.ID
	}
	if expense.Description != nil {
		data["description"] = *expense.Description
	}
	return data
}

func (r *sharedExpenseRepository) Create(ctx context.Context, expense *models.SharedExpense) (*models.SharedExpense, error) {
	body, err := r.client.Insert("shared_expenses", sharedExpenseData(expense))
	if err != nil {
		return nil, fmt.Errorf("failed to create shared expense: %w", err)
	}

	var expenses []models.SharedExpense
	if err := json.Unmarshal(body, &expenses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(expenses) == 0 {
		return nil, fmt.Errorf("no shared expense returned")
	}

	return &expenses[0], nil
}

func (r *sharedExpenseRepository) GetByID(ctx context.Context, id string) (*models.SharedExpense, error) {
	query := map[string]string{
		"id": fmt.Sprintf("eq.%s", id),
	}

	body, err := r.client.Query("shared_expenses", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get shared expense: %w", err)
	}

	var expenses []models.SharedExpense
	if err := json.Unmarshal(body, &expenses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(expenses) == 0 {
		return nil, fmt.Errorf("shared expense not found")
	}

	return &expenses[0], nil
}

func (r *sharedExpenseRepository) GetByGroupID(ctx context.Context, groupID string) ([]models.SharedExpense, error) {
	query := map[string]string{
		"group_id": fmt.Sprintf("eq.%s", groupID),
		"order":    "date.desc",
	}

	body, err := r.client.Query("shared_expenses", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get shared expenses: %w", err)
	}

	var expenses []models.SharedExpense
	if err := json.Unmarshal(body, &expenses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return expenses, nil
}

func (r *sharedExpenseRepository) Update(ctx context.Context, id string, expense *models.SharedExpense) (*models.SharedExpense, error) {
	query := map[string]string{
		"id": fmt.Sprintf("eq.%s", id),
	}

	data := sharedExpenseData(expense)
	delete(data, "id")
	data["updated_at"] = expense.UpdatedAt

	body, err := r.client.Update("shared_expenses", query, data)
	if err != nil {
		return nil, fmt.Errorf("failed to update shared expense: %w", err)
	}

	var expenses []models.SharedExpense
	if err := json.Unmarshal(body, &expenses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(expenses) == 0 {
		return nil, fmt.Errorf("shared expense not found")
	}

	return &expenses[0], nil
}
