package analytics

import (
	"testing"
	"time"

	"github.com/finsight/backend/internal/models"
)

func TestBuildHistoricalStats(t *testing.T) {
	periods := [][]models.Expense{
		{
			expense("Groceries", 900, date(2026, time.June, 5)),
			expense("Groceries", 1100, date(2026, time.June, 20)),
		},
		{
			expense("Groceries", 1000, date(2026, time.July, 5)),
			expense("Rent", 5000, date(2026, time.July, 1)),
		},
	}

	stats := BuildHistoricalStats(periods)

	groceries, ok := stats.Categories["Groceries"]
	if !ok {
		t.Fatal("expected Groceries stats")
	}
	if !almostEqual(groceries.Mean, 1000) {
		t.Errorf("Groceries mean = %v, want 1000", groceries.Mean)
	}
	if groceries.Count != 3 {
		t.Errorf("Groceries count = %d, want 3", groceries.Count)
	}

	// 3 groceries transactions over 2 periods
	if !almostEqual(stats.Frequency["Groceries"], 1.5) {
		t.Errorf("Groceries frequency = %v, want 1.5", stats.Frequency["Groceries"])
	}
	if !almostEqual(stats.Frequency["Rent"], 0.5) {
		t.Errorf("Rent frequency = %v, want 0.5", stats.Frequency["Rent"])
	}
}

func TestBuildHistoricalStatsEmpty(t *testing.T) {
	stats := BuildHistoricalStats(nil)
	if len(stats.Categories) != 0 || len(stats.Frequency) != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}
}

func histWith(category string, mean, stddev, frequency float64) HistoricalStats {
	return HistoricalStats{
		Categories: map[string]CategoryStats{
			category: {Mean: mean, StdDev: stddev, Count: 12},
		},
		Frequency: map[string]float64{category: frequency},
	}
}

func TestDetectAnomaliesAmountOutlier(t *testing.T) {
	hist := histWith("Groceries", 1000, 100, 10)

	tests := []struct {
		name           string
		amount         float64
		wantFlagged    bool
		wantSeverity   models.Severity
		wantConfidence float64
	}{
		{"within range", 1150, false, "", 0},
		{"at threshold", 1200, false, "", 0},
		{"medium outlier", 1250, true, models.SeverityMedium, 2.5 / 3},
		{"high outlier", 1350, true, models.SeverityHigh, 1.0},
		{"far below mean", 650, true, models.SeverityHigh, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := []models.Expense{expense("Groceries", tt.amount, date(2026, time.September, 3))}
			anomalies := DetectAnomalies(current, hist)

			var amountAnomalies []models.Anomaly
			for _, a := range anomalies {
				if a.Kind == models.AnomalyAmountOutlier {
					amountAnomalies = append(amountAnomalies, a)
				}
			}

			if !tt.wantFlagged {
				if len(amountAnomalies) != 0 {
					t.Fatalf("expected no amount anomaly, got %+v", amountAnomalies)
				}
				return
			}
			if len(amountAnomalies) != 1 {
				t.Fatalf("expected 1 amount anomaly, got %d", len(amountAnomalies))
			}

			a := amountAnomalies[0]
			if a.Severity != tt.wantSeverity {
				t.Errorf("severity = %v, want %v", a.Severity, tt.wantSeverity)
			}
			if !almostEqual(a.Confidence, tt.wantConfidence) {
				t.Errorf("confidence = %v, want %v", a.Confidence, tt.wantConfidence)
			}
			if a.Amount == nil || !almostEqual(*a.Amount, tt.amount) {
				t.Errorf("amount = %v, want %v", a.Amount, tt.amount)
			}
			if a.Category != "Groceries" {
				t.Errorf("category = %q, want Groceries", a.Category)
			}
		})
	}
}

func TestDetectAnomaliesConfidenceCapped(t *testing.T) {
	hist := histWith("Groceries", 1000, 100, 10)
	current := []models.Expense{expense("Groceries", 3000, date(2026, time.September, 3))}

	anomalies := DetectAnomalies(current, hist)
	if len(anomalies) != 1 {
		t.Fatalf("expected 1 anomaly, got %d", len(anomalies))
	}
	if anomalies[0].Confidence != 1 {
		t.Errorf("confidence = %v, want capped at 1", anomalies[0].Confidence)
	}
}

func TestDetectAnomaliesNewCategorySkipped(t *testing.T) {
	hist := HistoricalStats{
		Categories: map[string]CategoryStats{},
		Frequency:  map[string]float64{},
	}
	current := []models.Expense{expense("Skydiving", 9000, date(2026, time.September, 3))}

	anomalies := DetectAnomalies(current, hist)
	for _, a := range anomalies {
		if a.Kind == models.AnomalyAmountOutlier {
			t.Errorf("no amount outlier expected without history, got %+v", a)
		}
	}
}

func TestDetectAnomaliesFrequencyOutlier(t *testing.T) {
	hist := histWith("Coffee", 5, 1, 2)

	// 5 transactions against a historical average of 2 per period
	current := make([]models.Expense, 0, 5)
	for i := 0; i < 5; i++ {
		current = append(current, expense("Coffee", 5, date(2026, time.September, i+1)))
	}

	anomalies := DetectAnomalies(current, hist)

	var freq []models.Anomaly
	for _, a := range anomalies {
		if a.Kind == models.AnomalyFrequencyOutlier {
			freq = append(freq, a)
		}
	}

	// Flagged once per category, not once per transaction
	if len(freq) != 1 {
		t.Fatalf("expected 1 frequency anomaly, got %d", len(freq))
	}
	if freq[0].Severity != models.SeverityMedium {
		t.Errorf("severity = %v, want medium", freq[0].Severity)
	}
	if !almostEqual(freq[0].Confidence, 0.7) {
		t.Errorf("confidence = %v, want 0.7", freq[0].Confidence)
	}
	if freq[0].Category != "Coffee" {
		t.Errorf("category = %q, want Coffee", freq[0].Category)
	}
}

func TestDetectAnomaliesFrequencyAtBoundary(t *testing.T) {
	hist := histWith("Coffee", 5, 1, 2)

	// Exactly twice the historical average is not an outlier
	current := []models.Expense{
		expense("Coffee", 5, date(2026, time.September, 1)),
		expense("Coffee", 5, date(2026, time.September, 2)),
		expense("Coffee", 5, date(2026, time.September, 3)),
		expense("Coffee", 5, date(2026, time.September, 4)),
	}

	anomalies := DetectAnomalies(current, hist)
	for _, a := range anomalies {
		if a.Kind == models.AnomalyFrequencyOutlier {
			t.Errorf("no frequency anomaly expected at exactly 2x, got %+v", a)
		}
	}
}
