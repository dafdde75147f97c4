package analytics

import "math"

// HealthScore combines savings rate, budget adherence, expense growth, and
// debt-to-income ratio into a 0-100 composite via fixed weighted bands:
// savings up to 30 points, adherence up to 25, growth up to 25, debt up to 20.
func HealthScore(savingsRate, budgetAdherencePct, expenseGrowthRatePct, debtToIncomeRatio float64) int {
	var score float64

	switch {
	case savingsRate >= 20:
		score += 30
	case savingsRate >= 10:
		score += 20
	case savingsRate >= 5:
		score += 10
	}

	score += budgetAdherencePct / 100 * 25

	switch {
	case expenseGrowthRatePct <= 0:
		score += 25
	case expenseGrowthRatePct <= 5:
		score += 20
	case expenseGrowthRatePct <= 10:
		score += 10
	}

	switch {
	case debtToIncomeRatio <= 0.1:
		score += 20
	case debtToIncomeRatio <= 0.3:
		score += 15
	case debtToIncomeRatio <= 0.5:
		score += 10
	}

	return int(math.Min(100, math.Max(0, score)))
}

// BudgetAdherence returns the percentage of the total budget still unspent,
// floored at 0. No budgets means perfect adherence (100); a zero total budget
// with budgets present means none (0).
func BudgetAdherence(totalBudget, totalSpent float64, hasBudgets bool) float64 {
	if !hasBudgets {
		return 100
	}
	if totalBudget <= 0 {
		return 0
	}
	return math.Max(0, (totalBudget-totalSpent)/totalBudget*100)
}
