package models

import "time"

// Expense represents a single expense transaction
type Expense struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description *string   `json:"description,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
	PeriodTag   string    `json:"period_tag"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Income represents a single income transaction
type Income struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description *string   `json:"description,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateExpenseRequest represents the request to record an expense
type CreateExpenseRequest struct {
	Amount      float64   `json:"amount" binding:"required,gte=0"`
	Category    string    `json:"category" binding:"required"`
	Description *string   `json:"description"`
	OccurredAt  time.Time `json:"occurred_at" binding:"required"`
}

// CreateIncomeRequest represents the request to record an income
type CreateIncomeRequest struct {
	Amount      float64   `json:"amount" binding:"required,gte=0"`
	Category    string    `json:"category" binding:"required"`
	Description *string   `json:"description"`
	OccurredAt  time.Time `json:"occurred_at" binding:"required"`
}

// SplitType determines how a shared expense is divided between participants
type SplitType string

const (
	SplitTypeEqual      SplitType = "equal"
	SplitTypePercentage SplitType = "percentage"
	SplitTypeAmount     SplitType = "amount"
)

// PaidBy identifies who paid a shared expense and how much they covered
type PaidBy struct {
	ParticipantID string  `json:"participant_id"`
	Amount        float64 `json:"amount"`
}

// SharedExpenseSplit is one participant's share of a shared expense
type SharedExpenseSplit struct {
	ParticipantID string     `json:"participant_id"`
	Amount        float64    `json:"amount"`
	Percentage    float64    `json:"percentage,omitempty"`
	IsPaid        bool       `json:"is_paid"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

// SharedExpense is an expense paid by one participant and split among several
type SharedExpense struct {
	ID          string               `json:"id"`
	GroupID     string               `json:"group_id"`
	Name        string               `json:"name"`
	Description *string              `json:"description,omitempty"`
	Amount      float64              `json:"amount"`
	Category    string               `json:"category"`
	Date        time.Time            `json:"date"`
	PaidBy      PaidBy               `json:"paid_by"`
	SplitType   SplitType            `json:"split_type"`
	Splits      []SharedExpenseSplit `json:"splits"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// IsFullySettled reports whether every split has been paid back
func (e *SharedExpense) IsFullySettled() bool {
	for _, s := range e.Splits {
		if !s.IsPaid {
			return false
		}
	}
	return true
}

// CreateSharedExpenseRequest represents the request to create a shared expense
type CreateSharedExpenseRequest struct {
	GroupID     string               `json:"group_id" binding:"required"`
	Name        string               `json:"name" binding:"required"`
	Description *string              `json:"description"`
	Amount      float64              `json:"amount" binding:"required,gt=0"`
	Category    string               `json:"category" binding:"required"`
	Date        time.Time            `json:"date" binding:"required"`
	PaidBy      PaidBy               `json:"paid_by" binding:"required"`
	SplitType   SplitType            `json:"split_type"`
	Splits      []SharedExpenseSplit `json:"splits"`
	// Participants is used with the equal split type when Splits is omitted
	Participants []string `json:"participants"`
}

// SettlementTransfer is a suggested peer-to-peer payment that reduces group debt
type SettlementTransfer struct {
	FromParticipant string  `json:"from_participant"`
	ToParticipant   string  `json:"to_participant"`
	Amount          float64 `json:"amount"`
}

// ParticipantBalance is a participant's aggregate position across shared expenses
type ParticipantBalance struct {
	ParticipantID string  `json:"participant_id"`
	TotalPaid     float64 `json:"total_paid"`
	TotalOwed     float64 `json:"total_owed"`
	NetBalance    float64 `json:"net_balance"`
}

// GroupBalancesResponse is the API response for a group's balance sheet
type GroupBalancesResponse struct {
	Balances    []ParticipantBalance `json:"balances"`
	Settlements []SettlementTransfer `json:"settlements"`
	Summary     GroupBalancesSummary `json:"summary"`
}

// GroupBalancesSummary carries headline numbers for a group's shared spending
type GroupBalancesSummary struct {
	TotalExpenses      float64 `json:"total_expenses"`
	TotalTransactions  int     `json:"total_transactions"`
	PendingSettlements int     `json:"pending_settlements"`
}
