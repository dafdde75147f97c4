package budget

import (
	"fmt"

	"github.com/finsight/backend/internal/models"
)

// Analyze produces the performance view, recommendations, and threshold
// alerts for a budget in its current spend state
func Analyze(b *models.Budget) *models.BudgetAnalysis {
	analysis := &models.BudgetAnalysis{
		Budget:          b,
		Recommendations: []string{},
		Alerts:          []models.BudgetAlert{},
	}

	switch b.BudgetType {
	case models.BudgetFiftyThirtyTwenty:
		analysis.FiftyThirtyTwenty = analyzeFiftyThirtyTwenty(b.FiftyThirtyTwenty)
		analysis.Recommendations = fiftyThirtyTwentyRecommendations(analysis.FiftyThirtyTwenty)
		analysis.Alerts = fiftyThirtyTwentyAlerts(analysis.FiftyThirtyTwenty, b.AlertThreshold)
	case models.BudgetZeroBased:
		analysis.ZeroBased = analyzeZeroBased(b.ZeroBased)
		analysis.Alerts = zeroBasedAlerts(analysis.ZeroBased, b.AlertThreshold)
	case models.BudgetEnvelope:
		analysis.Envelope = analyzeEnvelope(b.Envelope)
		analysis.Alerts = envelopeAlerts(analysis.Envelope, b.AlertThreshold)
	}

	return analysis
}

func bucketPerformance(bucket models.Bucket) models.BucketPerformance {
	var percentage float64
	if bucket.Allocated > 0 {
		percentage = bucket.Spent / bucket.Allocated * 100
	}
	return models.BucketPerformance{
		Allocated:  bucket.Allocated,
		Spent:      bucket.Spent,
		Remaining:  bucket.Allocated - bucket.Spent,
		Percentage: percentage,
	}
}

func analyzeFiftyThirtyTwenty(f *models.FiftyThirtyTwenty) *models.FiftyThirtyTwentyPerformance {
	if f == nil {
		return nil
	}
	return &models.FiftyThirtyTwentyPerformance{
		Needs:         bucketPerformance(f.Needs),
		Wants:         bucketPerformance(f.Wants),
		Savings:       bucketPerformance(f.Savings),
		Uncategorized: f.Uncategorized,
	}
}

func analyzeZeroBased(z *models.ZeroBased) *models.ZeroBasedPerformance {
	if z == nil {
		return nil
	}
	perf := &models.ZeroBasedPerformance{
		TotalIncome: z.TotalIncome,
		Unallocated: z.Unallocated,
		Categories:  make([]models.AllocationPerformance, 0, len(z.Allocations)),
	}
	for _, a := range z.Allocations {
		perf.TotalAllocated += a.Amount
		perf.TotalSpent += a.Spent
		var percentage float64
		if a.Amount > 0 {
			percentage = a.Spent / a.Amount * 100
		}
		perf.Categories = append(perf.Categories, models.AllocationPerformance{
			Category:   a.Category,
			Allocated:  a.Amount,
			Spent:      a.Spent,
			Remaining:  a.Amount - a.Spent,
			Percentage: percentage,
			Priority:   a.Priority,
			IsFixed:    a.IsFixed,
		})
	}
	return perf
}

func analyzeEnvelope(set *models.EnvelopeSet) *models.EnvelopeSetPerformance {
	if set == nil {
		return nil
	}
	perf := &models.EnvelopeSetPerformance{
		Envelopes: make([]models.EnvelopePerformance, 0, len(set.Envelopes)),
	}
	for _, env := range set.Envelopes {
		spent := env.BudgetAmount - env.CurrentAmount + env.Overspend
		var percentage float64
		if env.BudgetAmount > 0 {
			percentage = spent / env.BudgetAmount * 100
		}
		perf.TotalBudget += env.BudgetAmount
		perf.TotalRemaining += env.CurrentAmount
		perf.Envelopes = append(perf.Envelopes, models.EnvelopePerformance{
			Name:       env.Name,
			Budget:     env.BudgetAmount,
			Remaining:  env.CurrentAmount,
			Spent:      spent,
			Overspend:  env.Overspend,
			Percentage: percentage,
		})
	}
	return perf
}

func fiftyThirtyTwentyRecommendations(perf *models.FiftyThirtyTwentyPerformance) []string {
	recommendations := []string{}
	if perf == nil {
		return recommendations
	}
	if perf.Needs.Percentage > 100 {
		recommendations = append(recommendations, "Consider reducing needs expenses or increasing income")
	}
	if perf.Wants.Percentage > 100 {
		recommendations = append(recommendations, "You're overspending on wants. Try to cut back on discretionary expenses")
	}
	if perf.Savings.Percentage < 50 {
		recommendations = append(recommendations, "Great job on savings! Consider increasing your savings rate")
	}
	if perf.Uncategorized > 0 {
		recommendations = append(recommendations, "Some expenses match none of your buckets. Review your category lists")
	}
	return recommendations
}

func fiftyThirtyTwentyAlerts(perf *models.FiftyThirtyTwentyPerformance, threshold float64) []models.BudgetAlert {
	alerts := []models.BudgetAlert{}
	if perf == nil {
		return alerts
	}
	buckets := []struct {
		name string
		perf models.BucketPerformance
	}{
		{"needs", perf.Needs},
		{"wants", perf.Wants},
		{"savings", perf.Savings},
	}
	for _, b := range buckets {
		if b.perf.Percentage >= threshold*100 {
			alerts = append(alerts, models.BudgetAlert{
				Type:     "warning",
				Message:  fmt.Sprintf("%s spending is at %.1f%% of budget", b.name, b.perf.Percentage),
				Category: b.name,
			})
		}
	}
	return alerts
}

func zeroBasedAlerts(perf *models.ZeroBasedPerformance, threshold float64) []models.BudgetAlert {
	alerts := []models.BudgetAlert{}
	if perf == nil {
		return alerts
	}
	if perf.Unallocated < 0 {
		alerts = append(alerts, models.BudgetAlert{
			Type:     "warning",
			Message:  fmt.Sprintf("Allocations exceed income by %.2f", -perf.Unallocated),
			Category: "unallocated",
		})
	}
	for _, c := range perf.Categories {
		if c.Percentage >= threshold*100 {
			alerts = append(alerts, models.BudgetAlert{
				Type:     "warning",
				Message:  fmt.Sprintf("%s spending is at %.1f%% of allocation", c.Category, c.Percentage),
				Category: c.Category,
			})
		}
	}
	return alerts
}

func envelopeAlerts(perf *models.EnvelopeSetPerformance, threshold float64) []models.BudgetAlert {
	alerts := []models.BudgetAlert{}
	if perf == nil {
		return alerts
	}
	for _, env := range perf.Envelopes {
		if env.Overspend > 0 {
			alerts = append(alerts, models.BudgetAlert{
				Type:     "overspent",
				Message:  fmt.Sprintf("Envelope %s is overspent by %.2f", env.Name, env.Overspend),
				Category: env.Name,
			})
		} else if env.Percentage >= threshold*100 {
			alerts = append(alerts, models.BudgetAlert{
				Type:     "warning",
				Message:  fmt.Sprintf("Envelope %s is at %.1f%% of budget", env.Name, env.Percentage),
				Category: env.Name,
			})
		}
	}
	return alerts
}
