package analytics

import (
	"sort"
	"time"

	"github.com/finsight/backend/internal/models"
)

// dayNames indexes weekday names by time.Weekday (Sunday = 0). Peak-day ties
// resolve in this natural order.
var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// AnalyzeSpendingPatterns summarizes one period's expenses and income against
// the previous period's expenses
func AnalyzeSpendingPatterns(current []models.Expense, income []models.Income, previous []models.Expense) models.SpendingPatterns {
	totalExpenses := sumExpenses(current)
	totalIncome := sumIncome(income)
	previousTotal := sumExpenses(previous)

	return models.SpendingPatterns{
		TotalExpenses:     totalExpenses,
		TotalIncome:       totalIncome,
		NetCashFlow:       totalIncome - totalExpenses,
		CategoryBreakdown: categoryBreakdown(current, totalExpenses),
		DailyAverages:     dailyAverages(current),
		PeakSpendingDays:  peakSpendingDays(current),
		SpendingVelocity:  PercentChange(totalExpenses, previousTotal),
	}
}

func sumExpenses(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

func sumIncome(income []models.Income) float64 {
	var total float64
	for _, inc := range income {
		total += inc.Amount
	}
	return total
}

// categoryBreakdown groups expenses by category with each category's share of
// the period total. Percentages are 0 when the total is 0. Output is sorted
// by amount descending so the largest categories lead.
func categoryBreakdown(expenses []models.Expense, total float64) []models.CategoryBreakdown {
	type agg struct {
		amount float64
		count  int
	}
	byCategory := make(map[string]*agg)
	for _, e := range expenses {
		a, ok := byCategory[e.Category]
		if !ok {
			a = &agg{}
			byCategory[e.Category] = a
		}
		a.amount += e.Amount
		a.count++
	}

	breakdown := make([]models.CategoryBreakdown, 0, len(byCategory))
	for category, a := range byCategory {
		var percentage float64
		if total > 0 {
			percentage = a.amount / total * 100
		}
		breakdown = append(breakdown, models.CategoryBreakdown{
			Category:         category,
			Amount:           a.amount,
			Percentage:       percentage,
			TransactionCount: a.count,
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

// dailyAverages splits mean per-transaction spend between Mon-Fri and Sat-Sun
func dailyAverages(expenses []models.Expense) models.DailyAverages {
	var weekdaySum, weekendSum float64
	var weekdayCount, weekendCount int

	for _, e := range expenses {
		switch e.OccurredAt.Weekday() {
		case time.Saturday, time.Sunday:
			weekendSum += e.Amount
			weekendCount++
		default:
			weekdaySum += e.Amount
			weekdayCount++
		}
	}

	var averages models.DailyAverages
	if weekdayCount > 0 {
		averages.Weekdays = weekdaySum / float64(weekdayCount)
	}
	if weekendCount > 0 {
		averages.Weekends = weekendSum / float64(weekendCount)
	}
	return averages
}

// peakSpendingDays returns the top three weekday names by total spend,
// descending, skipping days with no spend
func peakSpendingDays(expenses []models.Expense) []string {
	var dayTotals [7]float64
	for _, e := range expenses {
		dayTotals[int(e.OccurredAt.Weekday())] += e.Amount
	}

	days := make([]int, 0, 7)
	for day, total := range dayTotals {
		if total > 0 {
			days = append(days, day)
		}
	}
	// Stable sort keeps natural day order among ties
	sort.SliceStable(days, func(i, j int) bool {
		return dayTotals[days[i]] > dayTotals[days[j]]
	})

	if len(days) > 3 {
		days = days[:3]
	}
	peaks := make([]string, 0, len(days))
	for _, day := range days {
		peaks = append(peaks, dayNames[day])
	}
	return peaks
}
