package analytics

import (
	"github.com/finsight/backend/internal/models"
)

// AnalyzeSeasonalTrends computes a dense 12-entry table of per-calendar-month
// spending multipliers relative to the overall period average. Months with no
// historical periods take the grand mean, so their multiplier is 1. A zero
// grand mean also yields multipliers of 1. Periods whose keys fail to parse
// are skipped.
func AnalyzeSeasonalTrends(history []PeriodData, pt models.PeriodType) models.SeasonalTrends {
	monthTotals := make(map[int][]float64)
	var allTotals []float64

	for _, p := range history {
		start, _, err := PeriodBounds(p.Period, pt)
		if err != nil {
			continue
		}
		month := int(start.Month())
		total := p.Total()
		monthTotals[month] = append(monthTotals[month], total)
		allTotals = append(allTotals, total)
	}

	grandMean := Mean(allTotals)

	multipliers := make([]models.MonthlyMultiplier, 0, 12)
	for month := 1; month <= 12; month++ {
		monthAverage := grandMean
		if totals := monthTotals[month]; len(totals) > 0 {
			monthAverage = Mean(totals)
		}

		multiplier := 1.0
		if grandMean > 0 {
			multiplier = monthAverage / grandMean
		}
		multipliers = append(multipliers, models.MonthlyMultiplier{
			Month:      month,
			Multiplier: multiplier,
		})
	}

	return models.SeasonalTrends{MonthlyMultipliers: multipliers}
}
