package analytics

import (
	"fmt"
	"time"

	"github.com/finsight/backend/internal/models"
)

// Canonical period key encodings, one per period type:
//
//	weekly     2026-36   (ISO week number, Monday-start weeks)
//	monthly    2026-09
//	quarterly  2026-Q3
//	yearly     2026
//
// Keys of the same type order chronologically and their [start, end) bounds
// tile the calendar with no gaps or overlaps. All boundaries are in UTC.

// CurrentPeriod returns the canonical period key containing ref
func CurrentPeriod(pt models.PeriodType, ref time.Time) string {
	ref = ref.UTC()
	switch pt {
	case models.PeriodWeekly:
		isoYear, isoWeek := ref.ISOWeek()
		return fmt.Sprintf("%04d-%02d", isoYear, isoWeek)
	case models.PeriodQuarterly:
		quarter := (int(ref.Month())-1)/3 + 1
		return fmt.Sprintf("%04d-Q%d", ref.Year(), quarter)
	case models.PeriodYearly:
		return fmt.Sprintf("%04d", ref.Year())
	default: // monthly
		return ref.Format("2006-01")
	}
}

// PeriodBounds returns the half-open [start, end) instant pair for a period key
func PeriodBounds(period string, pt models.PeriodType) (start, end time.Time, err error) {
	switch pt {
	case models.PeriodWeekly:
		var isoYear, isoWeek int
		if _, err := fmt.Sscanf(period, "%d-%d", &isoYear, &isoWeek); err != nil || isoWeek < 1 || isoWeek > 53 {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid weekly period %q", period)
		}
		start = isoWeekStart(isoYear, isoWeek)
		return start, start.AddDate(0, 0, 7), nil
	case models.PeriodQuarterly:
		var year, quarter int
		if _, err := fmt.Sscanf(period, "%d-Q%d", &year, &quarter); err != nil || quarter < 1 || quarter > 4 {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid quarterly period %q", period)
		}
		start = time.Date(year, time.Month((quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 3, 0), nil
	case models.PeriodYearly:
		var year int
		if _, err := fmt.Sscanf(period, "%d", &year); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid yearly period %q", period)
		}
		start = time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(1, 0, 0), nil
	default: // monthly
		t, err := time.Parse("2006-01", period)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid monthly period %q", period)
		}
		start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0), nil
	}
}

// PreviousPeriod returns the key of the period immediately before the given one
func PreviousPeriod(period string, pt models.PeriodType) (string, error) {
	start, _, err := PeriodBounds(period, pt)
	if err != nil {
		return "", err
	}
	// One day before the start is always inside the preceding period
	return CurrentPeriod(pt, start.AddDate(0, 0, -1)), nil
}

// LastN returns the n period keys ending with the one containing ref,
// ordered oldest first
func LastN(pt models.PeriodType, n int, ref time.Time) []string {
	if n <= 0 {
		return nil
	}
	ref = ref.UTC()
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, CurrentPeriod(pt, shiftBack(pt, ref, i)))
	}
	return keys
}

// shiftBack moves ref back by i periods, anchoring month-based arithmetic to
// the period start so Go's date normalization cannot skip a month
func shiftBack(pt models.PeriodType, ref time.Time, i int) time.Time {
	switch pt {
	case models.PeriodWeekly:
		return ref.AddDate(0, 0, -7*i)
	case models.PeriodQuarterly:
		quarterStart := time.Date(ref.Year(), time.Month(((int(ref.Month())-1)/3)*3+1), 1, 0, 0, 0, 0, time.UTC)
		return quarterStart.AddDate(0, -3*i, 0)
	case models.PeriodYearly:
		return time.Date(ref.Year()-i, 1, 1, 0, 0, 0, 0, time.UTC)
	default: // monthly
		monthStart := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
		return monthStart.AddDate(0, -i, 0)
	}
}

// isoWeekStart returns the Monday starting the given ISO week
func isoWeekStart(isoYear, isoWeek int) time.Time {
	// January 4th is always inside ISO week 1
	jan4 := time.Date(isoYear, 1, 4, 0, 0, 0, 0, time.UTC)
	week1Monday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))
	return week1Monday.AddDate(0, 0, (isoWeek-1)*7)
}
