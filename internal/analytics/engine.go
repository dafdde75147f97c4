package analytics

import (
	"time"

	"github.com/finsight/backend/internal/models"
)

// HistoryDepth is the number of trailing periods (current included) used for
// anomaly baselines, forecasting, and seasonality
const HistoryDepth = 12

// Inputs is everything ComputeSnapshot needs for one user and period. History
// is ordered oldest first and includes the current period as its last entry.
type Inputs struct {
	UserID            string
	Period            string
	PeriodType        models.PeriodType
	Current           PeriodData
	Previous          PeriodData
	History           []PeriodData
	TotalBudget       float64
	HasBudgets        bool
	DebtToIncomeRatio float64
}

// ComputeSnapshot runs the full analytics pipeline over the supplied records
// and assembles the snapshot for storage. It is pure and all-or-nothing:
// sparse or absent history degrades every metric to a neutral value rather
// than failing, and no partial snapshot is ever produced.
func ComputeSnapshot(in Inputs, now time.Time) models.AnalyticsSnapshot {
	patterns := AnalyzeSpendingPatterns(in.Current.Expenses, in.Current.Income, in.Previous.Expenses)

	historical := make([][]models.Expense, len(in.History))
	for i, p := range in.History {
		historical[i] = p.Expenses
	}
	anomalies := DetectAnomalies(in.Current.Expenses, BuildHistoricalStats(historical))

	predictions := GeneratePredictions(in.History, in.Current)
	seasonal := AnalyzeSeasonalTrends(in.History, in.PeriodType)

	return models.AnalyticsSnapshot{
		UserID:           in.UserID,
		Period:           in.Period,
		PeriodType:       in.PeriodType,
		SpendingPatterns: patterns,
		Anomalies:        anomalies,
		Predictions:      predictions,
		SeasonalTrends:   seasonal,
		Metrics:          computeMetrics(in, patterns),
		ComputedAt:       now.UTC(),
	}
}

func computeMetrics(in Inputs, patterns models.SpendingPatterns) models.Metrics {
	currentExpenses := patterns.TotalExpenses
	currentIncome := patterns.TotalIncome
	previousExpenses := in.Previous.Total()

	adherence := BudgetAdherence(in.TotalBudget, currentExpenses, in.HasBudgets)

	var savingsRate float64
	if currentIncome > 0 {
		savingsRate = (currentIncome - currentExpenses) / currentIncome * 100
	}

	growthRate := PercentChange(currentExpenses, previousExpenses)

	return models.Metrics{
		BudgetAdherence:      adherence,
		SavingsRate:          savingsRate,
		ExpenseGrowthRate:    growthRate,
		FinancialHealthScore: HealthScore(savingsRate, adherence, growthRate, in.DebtToIncomeRatio),
		DebtToIncomeRatio:    in.DebtToIncomeRatio,
	}
}
