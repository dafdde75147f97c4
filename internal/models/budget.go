package models

import "time"

// BudgetType identifies the budgeting methodology a budget follows
type BudgetType string

const (
	BudgetFiftyThirtyTwenty BudgetType = "fifty-thirty-twenty"
	BudgetZeroBased         BudgetType = "zero-based"
	BudgetEnvelope          BudgetType = "envelope"
)

// DefaultAlertThreshold is the fraction of an allocation at which alerts fire
const DefaultAlertThreshold = 0.8

// Bucket is one of the three 50/30/20 buckets with its category membership
type Bucket struct {
	Allocated  float64  `json:"allocated"`
	Spent      float64  `json:"spent"`
	Categories []string `json:"categories"`
}

// FiftyThirtyTwenty holds the fixed-ratio budget state. Expenses whose
// category belongs to none of the three buckets accumulate in Uncategorized
// rather than being silently dropped.
type FiftyThirtyTwenty struct {
	Needs         Bucket  `json:"needs"`
	Wants         Bucket  `json:"wants"`
	Savings       Bucket  `json:"savings"`
	Uncategorized float64 `json:"uncategorized"`
}

// Allocation is one explicit zero-based assignment of income to a category
type Allocation struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Priority int     `json:"priority"`
	IsFixed  bool    `json:"is_fixed"`
	Spent    float64 `json:"spent"`
}

// ZeroBased holds the zero-based budget state. Unallocated may be negative,
// which signals over-allocation; that is surfaced, not rejected.
type ZeroBased struct {
	TotalIncome float64      `json:"total_income"`
	Allocations []Allocation `json:"allocations"`
	Unallocated float64      `json:"unallocated"`
}

// Envelope is one virtual cash envelope. CurrentAmount never goes below zero;
// Overspend records how far past the envelope the matching spend went.
type Envelope struct {
	Name          string   `json:"name"`
	BudgetAmount  float64  `json:"budget_amount"`
	CurrentAmount float64  `json:"current_amount"`
	Overspend     float64  `json:"overspend"`
	Categories    []string `json:"categories"`
	Color         string   `json:"color,omitempty"`
}

// EnvelopeSet holds the envelope budget state
type EnvelopeSet struct {
	Envelopes []Envelope `json:"envelopes"`
}

// Budget is one budget document; exactly one of the variant fields is set,
// matching BudgetType.
type Budget struct {
	ID                string             `json:"id"`
	UserID            string             `json:"user_id"`
	Name              string             `json:"name"`
	BudgetType        BudgetType         `json:"budget_type"`
	Year              int                `json:"year"`
	Month             int                `json:"month"`
	Amount            float64            `json:"amount"`
	AlertThreshold    float64            `json:"alert_threshold"`
	FiftyThirtyTwenty *FiftyThirtyTwenty `json:"fifty_thirty_twenty,omitempty"`
	ZeroBased         *ZeroBased         `json:"zero_based,omitempty"`
	Envelope          *EnvelopeSet       `json:"envelope,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// CreateFiftyThirtyTwentyRequest creates a fixed-ratio budget from income
type CreateFiftyThirtyTwentyRequest struct {
	TotalIncome float64 `json:"total_income" binding:"required,gt=0"`
	Year        int     `json:"year" binding:"required"`
	Month       int     `json:"month" binding:"required,min=1,max=12"`
}

// CreateZeroBasedRequest creates a zero-based budget with explicit allocations
type CreateZeroBasedRequest struct {
	TotalIncome float64      `json:"total_income" binding:"required,gt=0"`
	Allocations []Allocation `json:"allocations" binding:"required,min=1"`
	Year        int          `json:"year" binding:"required"`
	Month       int          `json:"month" binding:"required,min=1,max=12"`
}

// CreateEnvelopeRequest creates an envelope budget
type CreateEnvelopeRequest struct {
	Envelopes []Envelope `json:"envelopes" binding:"required,min=1"`
	Year      int        `json:"year" binding:"required"`
	Month     int        `json:"month" binding:"required,min=1,max=12"`
}

// BucketPerformance is spend-versus-allocation for one 50/30/20 bucket
type BucketPerformance struct {
	Allocated  float64 `json:"allocated"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

// FiftyThirtyTwentyPerformance is the analysis of a fixed-ratio budget
type FiftyThirtyTwentyPerformance struct {
	Needs         BucketPerformance `json:"needs"`
	Wants         BucketPerformance `json:"wants"`
	Savings       BucketPerformance `json:"savings"`
	Uncategorized float64           `json:"uncategorized"`
}

// AllocationPerformance is spend-versus-allocation for one zero-based category
type AllocationPerformance struct {
	Category   string  `json:"category"`
	Allocated  float64 `json:"allocated"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
	Priority   int     `json:"priority"`
	IsFixed    bool    `json:"is_fixed"`
}

// ZeroBasedPerformance is the analysis of a zero-based budget
type ZeroBasedPerformance struct {
	TotalIncome    float64                 `json:"total_income"`
	TotalAllocated float64                 `json:"total_allocated"`
	TotalSpent     float64                 `json:"total_spent"`
	Unallocated    float64                 `json:"unallocated"`
	Categories     []AllocationPerformance `json:"categories"`
}

// EnvelopePerformance is the analysis of one envelope
type EnvelopePerformance struct {
	Name       string  `json:"name"`
	Budget     float64 `json:"budget_amount"`
	Remaining  float64 `json:"current_amount"`
	Spent      float64 `json:"spent"`
	Overspend  float64 `json:"overspend"`
	Percentage float64 `json:"percentage"`
}

// EnvelopeSetPerformance is the analysis of an envelope budget
type EnvelopeSetPerformance struct {
	TotalBudget    float64               `json:"total_budget"`
	TotalRemaining float64               `json:"total_remaining"`
	Envelopes      []EnvelopePerformance `json:"envelopes"`
}

// BudgetAlert is a threshold warning raised by budget analysis
type BudgetAlert struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

// BudgetAnalysis is the full analysis response for one budget; the
// performance field matching the budget's type is set, the others are nil.
type BudgetAnalysis struct {
	Budget            *Budget                       `json:"budget"`
	FiftyThirtyTwenty *FiftyThirtyTwentyPerformance `json:"fifty_thirty_twenty,omitempty"`
	ZeroBased         *ZeroBasedPerformance         `json:"zero_based,omitempty"`
	Envelope          *EnvelopeSetPerformance       `json:"envelope,omitempty"`
	Recommendations   []string                      `json:"recommendations"`
	Alerts            []BudgetAlert                 `json:"alerts"`
}
