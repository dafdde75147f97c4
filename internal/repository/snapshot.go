package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/pkg/postgrest"
)

type snapshotRepository struct {
	client *postgrest.Client
}

// NewSnapshotRepository creates a new analytics snapshot repository
func NewSnapshotRepository(client *postgrest.Client) SnapshotRepository {
	return &snapshotRepository{client: client}
}

// Upsert stores a snapshot, replacing any existing row with the same
// (user_id, period, period_type) key. Recomputation never appends duplicates.
func (r *snapshotRepository) Upsert(ctx context.Context, snapshot *models.AnalyticsSnapshot) (*models.AnalyticsSnapshot, error) {
	data := map[string]interface{}{
		"user_id":           snapshot.UserID,
		"period":            snapshot.Period,
		"period_type":       snapshot.PeriodType,
		"spending_patterns": snapshot.SpendingPatterns,
		"anomalies":         snapshot.Anomalies,
		"predictions":       snapshot.Predictions,
		"seasonal_trends":   snapshot.SeasonalTrends,
		"metrics":           snapshot.Metrics,
		"computed_at":       snapshot.ComputedAt,
	}

	body, err := r.client.Upsert("analytics_snapshots", data, "user_id,period,period_type")
	if err != nil {
		return nil, fmt.Errorf("failed to upsert snapshot: %w", err)
	}

	var snapshots []models.AnalyticsSnapshot
	if err := json.Unmarshal(body, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(snapshots) == 0 {
		return nil, fmt.Errorf("no snapshot returned")
	}

	return &snapshots[0], nil
}

func (r *snapshotRepository) GetByKey(ctx context.Context, userID, period string, periodType models.PeriodType) (*models.AnalyticsSnapshot, error) {
	query := map[string]string{
		"user_id":     fmt.Sprintf("eq.%s", userID),
		"period":      fmt.Sprintf("eq.%s", period),
		"period_type": fmt.Sprintf("eq.%s", periodType),
	}

	body, err := r.client.Query("analytics_snapshots", query)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var snapshots []models.AnalyticsSnapshot
	if err := json.Unmarshal(body, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(snapshots) == 0 {
		return nil, fmt.Errorf("snapshot not found")
	}

	return &snapshots[0], nil
}
