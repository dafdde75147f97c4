package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/pkg/postgrest"
)

type budgetRepository struct {
	client *postgrest.Client
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(client *postgrest.Client) BudgetRepository {
	return &budgetRepository{client: client}
}

// budgetData maps a budget to its row shape. The variant state lives in a
// jsonb column per methodology; only the active one is non-null.
func budgetData(budget *models.Budget) map[string]interface{} {
	data := map[string]interface{}{
		"user_id":         budget.UserID,
		"name":            budget.Name,
		"budget_type":     budget.BudgetType,
		"year":            budget.Year,
		"month":           budget.Month,
		"amount":          budget.Amount,
		"alert_threshold": budget.AlertThreshold,
	}
	if budget.ID != "" {
		data["id"] = budget.ID
	}
	if budget.FiftyThirtyTwenty != nil {
		data["fifty_thirty_twenty"] = budget.FiftyThirtyTwenty
	}
	if budget.ZeroBased != nil {
		data["zero_based"] = budget.ZeroBased
	}
	if budget.Envelope != nil {
		data["envelope"] = budget.Envelope
	}
	return data
}

func (r *budgetRepository) Create(ctx context.Context, budget *models.Budget) (*models.Budget, error) {
	body, err := r.client.Insert("budgets", budgetData(budget))
	if err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	var budgets []models.Budget
	if err := json.Unmarshal(body, &budgets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(budgets) == 0 {
		return nil, fmt.Errorf("no budget returned")
	}

	return &budgets[0], nil
}

func (r *budgetRepository) GetByID(ctx context.Context, id string) (*models.Budget, error) {
	query := map[string]string{
		"id": fmt.Sprintf("eq.%s", id),
	}

	body, err := r.client.Query("budgets", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	var budgets []models.Budget
	if err := json.Unmarshal(body, &budgets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(budgets) == 0 {
		return nil, fmt.Errorf("budget not found")
	}

	return &budgets[0], nil
}

func (r *budgetRepository) GetByUserID(ctx context.Context, userID string) ([]models.Budget, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"order":   "created_at.desc",
	}

	body, err := r.client.Query("budgets", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}

	var budgets []models.Budget
	if err := json.Unmarshal(body, &budgets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return budgets, nil
}

func (r *budgetRepository) GetByUserIDAndMonth(ctx context.Context, userID string, year, month int) ([]models.Budget, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"year":    fmt.Sprintf("eq.%d", year),
		"month":   fmt.Sprintf("eq.%d", month),
	}

	body, err := r.client.Query("budgets", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}

	var budgets []models.Budget
	if err := json.Unmarshal(body, &budgets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return budgets, nil
}

func (r *budgetRepository) Update(ctx context.Context, id string, budget *models.Budget) (*models.Budget, error) {
	query := map[string]string{
		"id": fmt.Sprintf("eq.%s", id),
	}

	data := budgetData(budget)
	delete(data, "id")
	data["updated_at"] = budget.UpdatedAt

	body, err := r.client.Update("budgets", query, data)
	if err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	var budgets []models.Budget
	if err := json.Unmarshal(body, &budgets); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(budgets) == 0 {
		return nil, fmt.Errorf("budget not found")
	}

	return &budgets[0], nil
}

func (r *budgetRepository) Delete(ctx context.Context, id string) error {
	query := map[string]string{
		"id": fmt.Sprintf("eq.%s", id),
	}
	if err := r.client.Delete("budgets", query); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}
