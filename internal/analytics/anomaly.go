package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/finsight/backend/internal/models"
)

const (
	// z-score above which an expense is flagged, and above which the flag
	// escalates from medium to high severity
	anomalyThreshold     = 2.0
	anomalyHighThreshold = 3.0
	frequencyMultiple    = 2.0
	frequencyConfidence  = 0.7
)

// CategoryStats is the historical amount distribution for one category
type CategoryStats struct {
	Mean   float64
	StdDev float64
	Count  int
}

// HistoricalStats aggregates trailing-period expense history per category
type HistoricalStats struct {
	// Categories maps category name to its amount distribution
	Categories map[string]CategoryStats
	// Frequency maps category name to its average transactions per period
	Frequency map[string]float64
}

// BuildHistoricalStats computes per-category amount statistics and average
// per-period transaction frequency from trailing periods of expenses
func BuildHistoricalStats(periods [][]models.Expense) HistoricalStats {
	stats := HistoricalStats{
		Categories: make(map[string]CategoryStats),
		Frequency:  make(map[string]float64),
	}
	if len(periods) == 0 {
		return stats
	}

	amounts := make(map[string][]float64)
	counts := make(map[string]int)
	for _, period := range periods {
		for _, e := range period {
			amounts[e.Category] = append(amounts[e.Category], e.Amount)
			counts[e.Category]++
		}
	}

	for category, values := range amounts {
		stats.Categories[category] = CategoryStats{
			Mean:   Mean(values),
			StdDev: StdDev(values),
			Count:  len(values),
		}
	}
	for category, count := range counts {
		stats.Frequency[category] = float64(count) / float64(len(periods))
	}
	return stats
}

// DetectAnomalies flags current-period expenses whose amounts deviate from
// their category's historical distribution, and categories whose transaction
// count exceeds twice their historical per-period frequency. The result is
// unordered; presentation-layer sorting is the caller's concern.
func DetectAnomalies(current []models.Expense, hist HistoricalStats) []models.Anomaly {
	anomalies := make([]models.Anomaly, 0)

	currentCounts := make(map[string]int)
	for _, e := range current {
		currentCounts[e.Category]++
	}

	for _, e := range current {
		stats, ok := hist.Categories[e.Category]
		if !ok {
			continue
		}
		z := ZScore(e.Amount, stats.Mean, stats.StdDev)
		if z <= anomalyThreshold {
			continue
		}

		severity := models.SeverityMedium
		if z > anomalyHighThreshold {
			severity = models.SeverityHigh
		}
		amount := e.Amount
		anomalies = append(anomalies, models.Anomaly{
			Kind:     models.AnomalyAmountOutlier,
			Severity: severity,
			Description: fmt.Sprintf("Unusual %s expense: %.2f (avg: %.2f)",
				e.Category, e.Amount, stats.Mean),
			Category:   e.Category,
			Amount:     &amount,
			Date:       e.OccurredAt,
			Confidence: math.Min(z/anomalyHighThreshold, 1),
		})
	}

	// One frequency anomaly per category, not per transaction
	categories := make([]string, 0, len(currentCounts))
	for category := range currentCounts {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	now := time.Now().UTC()
	for _, category := range categories {
		count := currentCounts[category]
		if float64(count) <= hist.Frequency[category]*frequencyMultiple {
			continue
		}
		anomalies = append(anomalies, models.Anomaly{
			Kind:     models.AnomalyFrequencyOutlier,
			Severity: models.SeverityMedium,
			Description: fmt.Sprintf("Unusual frequency for %s: %d transactions this period",
				category, count),
			Category:   category,
			Date:       now,
			Confidence: frequencyConfidence,
		})
	}

	return anomalies
}
