package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/pkg/postgrest"
)

type incomeRepository struct {
	client *postgrest.Client
}

// NewIncomeRepository creates a new income repository
func NewIncomeRepository(client *postgrest.Client) IncomeRepository {
	return &incomeRepository{client: client}
}

func (r *incomeRepository) Create(ctx context.Context, income *models.Income) (*models.Income, error) {
	data := map[string]interface{}{
		"user_id":     income.UserID,
		"amount":      income.Amount,
		"category":    income.Category,
		"occurred_at": income.OccurredAt,
	}
	if income.ID != "" {
		data["id"] = income.ID
	}
	if income.Description != nil {
		data["description"] = *income.Description
	}

	body, err := r.client.Insert("incomes", data)
	if err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	var incomes []models.Income
	if err := json.Unmarshal(body, &incomes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(incomes) == 0 {
		return nil, fmt.Errorf("no income returned")
	}

	return &incomes[0], nil
}

func (r *incomeRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.Income, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"order":   "occurred_at.desc",
		"limit":   fmt.Sprintf("%d", limit),
		"offset":  fmt.Sprintf("%d", offset),
	}

	body, err := r.client.Query("incomes", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get incomes: %w", err)
	}

	var incomes []models.Income
	if err := json.Unmarshal(body, &incomes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return incomes, nil
}

func (r *incomeRepository) GetByUserIDAndDateRange(ctx context.Context, userID string, start, end time.Time) ([]models.Income, error) {
	query := map[string]string{
		"user_id": fmt.Sprintf("eq.%s", userID),
		"and":     fmt.Sprintf("(occurred_at.gte.%s,occurred_at.lt.%s)", start.Format(time.RFC3339), end.Format(time.RFC3339)),
		"order":   "occurred_at.asc",
	}

	body, err := r.client.Query("incomes", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get incomes: %w", err)
	}

	var incomes []models.Income
	if err := json.Unmarshal(body, &incomes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return incomes, nil
}

func (r *incomeRepository) Delete(ctx context.Context, id string) error {
	query := map[string]string{
		"id": fmt.Sprintf("eq.%s", id),
	}
	if err := r.client.Delete("incomes", query); err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}
	return nil
}
