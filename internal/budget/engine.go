// Package budget implements the three budgeting methodologies: 50/30/20
// fixed-ratio, zero-based explicit allocation, and envelope virtual accounts.
// Spend updates always recompute from the complete expense list, so applying
// the same expenses twice yields identical state.
package budget

import (
	"fmt"
	"math"
	"time"

	"github.com/finsight/backend/internal/models"
	"github.com/google/uuid"
)

// Default category membership for the three 50/30/20 buckets
var (
	defaultNeedsCategories   = []string{"Rent", "Utilities", "Groceries", "Transportation", "Insurance"}
	defaultWantsCategories   = []string{"Entertainment", "Dining Out", "Shopping", "Hobbies"}
	defaultSavingsCategories = []string{"Emergency Fund", "Retirement", "Investments"}
)

// NewFiftyThirtyTwenty allocates income 50% needs, 30% wants, 20% savings
// with the default category membership
func NewFiftyThirtyTwenty(userID string, totalIncome float64, year, month int) *models.Budget {
	now := time.Now().UTC()
	return &models.Budget{
		ID:             uuid.New().String(),
		UserID:         userID,
		Name:           fmt.Sprintf("50/30/20 Budget - %d/%d", month, year),
		BudgetType:     models.BudgetFiftyThirtyTwenty,
		Year:           year,
		Month:          month,
		Amount:         totalIncome,
		AlertThreshold: models.DefaultAlertThreshold,
		FiftyThirtyTwenty: &models.FiftyThirtyTwenty{
			Needs:   models.Bucket{Allocated: totalIncome * 0.5, Categories: defaultNeedsCategories},
			Wants:   models.Bucket{Allocated: totalIncome * 0.3, Categories: defaultWantsCategories},
			Savings: models.Bucket{Allocated: totalIncome * 0.2, Categories: defaultSavingsCategories},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewZeroBased assigns income to explicit allocations. Unallocated is the
// remainder and may be negative when allocations exceed income; that signals
// over-allocation and is surfaced rather than rejected here.
func NewZeroBased(userID string, totalIncome float64, allocations []models.Allocation, year, month int) *models.Budget {
	var totalAllocated float64
	for _, a := range allocations {
		totalAllocated += a.Amount
	}

	now := time.Now().UTC()
	return &models.Budget{
		ID:             uuid.New().String(),
		UserID:         userID,
		Name:           fmt.Sprintf("Zero-Based Budget - %d/%d", month, year),
		BudgetType:     models.BudgetZeroBased,
		Year:           year,
		Month:          month,
		Amount:         totalIncome,
		AlertThreshold: models.DefaultAlertThreshold,
		ZeroBased: &models.ZeroBased{
			TotalIncome: totalIncome,
			Allocations: allocations,
			Unallocated: totalIncome - totalAllocated,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewEnvelope creates an envelope budget; each envelope starts full
func NewEnvelope(userID string, envelopes []models.Envelope, year, month int) *models.Budget {
	var totalAmount float64
	for i := range envelopes {
		envelopes[i].CurrentAmount = envelopes[i].BudgetAmount
		envelopes[i].Overspend = 0
		totalAmount += envelopes[i].BudgetAmount
	}

	now := time.Now().UTC()
	return &models.Budget{
		ID:             uuid.New().String(),
		UserID:         userID,
		Name:           fmt.Sprintf("Envelope Budget - %d/%d", month, year),
		BudgetType:     models.BudgetEnvelope,
		Year:           year,
		Month:          month,
		Amount:         totalAmount,
		AlertThreshold: models.DefaultAlertThreshold,
		Envelope:       &models.EnvelopeSet{Envelopes: envelopes},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ApplySpending recomputes the budget's spent/remaining state from the
// complete expense list. It fully replaces prior spend state, never adds
// deltas, so the operation is idempotent.
func ApplySpending(b *models.Budget, expenses []models.Expense) {
	switch b.BudgetType {
	case models.BudgetFiftyThirtyTwenty:
		applyFiftyThirtyTwenty(b.FiftyThirtyTwenty, expenses)
	case models.BudgetZeroBased:
		applyZeroBased(b.ZeroBased, expenses)
	case models.BudgetEnvelope:
		applyEnvelope(b.Envelope, expenses)
	}
	b.UpdatedAt = time.Now().UTC()
}

func applyFiftyThirtyTwenty(f *models.FiftyThirtyTwenty, expenses []models.Expense) {
	if f == nil {
		return
	}
	f.Needs.Spent = 0
	f.Wants.Spent = 0
	f.Savings.Spent = 0
	f.Uncategorized = 0

	for _, e := range expenses {
		switch {
		case containsCategory(f.Needs.Categories, e.Category):
			f.Needs.Spent += e.Amount
		case containsCategory(f.Wants.Categories, e.Category):
			f.Wants.Spent += e.Amount
		case containsCategory(f.Savings.Categories, e.Category):
			f.Savings.Spent += e.Amount
		default:
			f.Uncategorized += e.Amount
		}
	}
}

func applyZeroBased(z *models.ZeroBased, expenses []models.Expense) {
	if z == nil {
		return
	}
	byCategory := make(map[string]float64)
	for _, e := range expenses {
		byCategory[e.Category] += e.Amount
	}
	for i := range z.Allocations {
		z.Allocations[i].Spent = byCategory[z.Allocations[i].Category]
	}
}

func applyEnvelope(set *models.EnvelopeSet, expenses []models.Expense) {
	if set == nil {
		return
	}
	for i := range set.Envelopes {
		env := &set.Envelopes[i]
		var spent float64
		for _, e := range expenses {
			if containsCategory(env.Categories, e.Category) {
				spent += e.Amount
			}
		}
		env.CurrentAmount = math.Max(0, env.BudgetAmount-spent)
		env.Overspend = math.Max(0, spent-env.BudgetAmount)
	}
}

func containsCategory(categories []string, category string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
