package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/finsight/backend/internal/models"
)

// forecastConfidence is the fixed confidence reported with the next-period
// prediction. TODO: replace with a residual-based prediction interval once
// the frontend can render a range instead of a single number.
const forecastConfidence = 0.75

const (
	riskHighThresholdPct   = 20.0
	riskMediumThresholdPct = 10.0
	minTargetSavingsRate   = 20.0
	targetSavingsRateBump  = 5.0
)

// PeriodData bundles one period's records for history-based computations
type PeriodData struct {
	Period   string
	Expenses []models.Expense
	Income   []models.Income
}

// Total returns the period's total expense amount
func (p PeriodData) Total() float64 {
	return sumExpenses(p.Expenses)
}

// IncomeTotal returns the period's total income amount
func (p PeriodData) IncomeTotal() float64 {
	return sumIncome(p.Income)
}

// GeneratePredictions forecasts next-period spending from trailing history
// (oldest first) and the current period, assesses budget risk, and computes
// savings potential versus a target savings rate.
func GeneratePredictions(history []PeriodData, current PeriodData) models.Predictions {
	totals := make([]float64, len(history))
	for i, p := range history {
		totals[i] = p.Total()
	}
	predicted := PredictNext(totals)

	return models.Predictions{
		NextPeriodExpenses: models.ExpenseForecast{
			Predicted:  predicted,
			Confidence: forecastConfidence,
			Breakdown:  predictCategoryBreakdown(history, predicted),
		},
		BudgetRisk:       assessBudgetRisk(current, predicted),
		SavingsPotential: savingsPotential(current, history),
	}
}

// predictCategoryBreakdown distributes the predicted total across categories
// by each category's average share of the period total, taken over the
// periods in which the category appeared
func predictCategoryBreakdown(history []PeriodData, predicted float64) []models.CategoryAmount {
	shares := make(map[string][]float64)
	for _, p := range history {
		periodTotal := p.Total()
		if periodTotal <= 0 {
			continue
		}
		byCategory := make(map[string]float64)
		for _, e := range p.Expenses {
			byCategory[e.Category] += e.Amount
		}
		for category, amount := range byCategory {
			shares[category] = append(shares[category], amount/periodTotal*100)
		}
	}

	breakdown := make([]models.CategoryAmount, 0, len(shares))
	for category, percentages := range shares {
		breakdown = append(breakdown, models.CategoryAmount{
			Category: category,
			Amount:   predicted * Mean(percentages) / 100,
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount != breakdown[j].Amount {
			return breakdown[i].Amount > breakdown[j].Amount
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}

// assessBudgetRisk grades the predicted increase over current spend against
// fixed thresholds and names the top three categories by current spend
func assessBudgetRisk(current PeriodData, predicted float64) models.BudgetRisk {
	currentTotal := current.Total()

	var increasePct float64
	if currentTotal > 0 && predicted > currentTotal {
		increasePct = (predicted - currentTotal) / currentTotal * 100
	}

	level := models.RiskLow
	probability := 0.2
	switch {
	case increasePct > riskHighThresholdPct:
		level = models.RiskHigh
		probability = 0.8
	case increasePct > riskMediumThresholdPct:
		level = models.RiskMedium
		probability = 0.5
	}

	byCategory := make(map[string]float64)
	for _, e := range current.Expenses {
		byCategory[e.Category] += e.Amount
	}
	categories := make([]string, 0, len(byCategory))
	for category := range byCategory {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		if byCategory[categories[i]] != byCategory[categories[j]] {
			return byCategory[categories[i]] > byCategory[categories[j]]
		}
		return categories[i] < categories[j]
	})
	if len(categories) > 3 {
		categories = categories[:3]
	}

	return models.BudgetRisk{
		Level:       level,
		Categories:  categories,
		Probability: probability,
	}
}

// savingsPotential computes the gap between the current savings position and
// a target rate of max(historical average + 5, 20) percent, floored at zero
func savingsPotential(current PeriodData, history []PeriodData) models.SavingsPotential {
	currentExpenses := current.Total()
	currentIncome := current.IncomeTotal()

	var historicalRates []float64
	for _, p := range history {
		income := p.IncomeTotal()
		if income > 0 {
			historicalRates = append(historicalRates, (income-p.Total())/income*100)
		}
	}
	avgRate := Mean(historicalRates)

	targetRate := math.Max(avgRate+targetSavingsRateBump, minTargetSavingsRate)

	var potential float64
	if currentIncome > 0 {
		potential = currentIncome*targetRate/100 - (currentIncome - currentExpenses)
	}
	potential = math.Max(potential, 0)

	var recommendations []string
	if potential > 0 {
		recommendations = []string{
			fmt.Sprintf("Reduce spending by %.2f to reach a %.1f%% savings rate", potential, targetRate),
			"Consider reviewing discretionary expenses",
			"Look for subscription services you can cancel",
		}
	}

	return models.SavingsPotential{
		Amount:          potential,
		Recommendations: recommendations,
	}
}
