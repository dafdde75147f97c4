package models

import "time"

// PeriodType is the calendar granularity used for analytics aggregation
type PeriodType string

const (
	PeriodWeekly    PeriodType = "weekly"
	PeriodMonthly   PeriodType = "monthly"
	PeriodQuarterly PeriodType = "quarterly"
	PeriodYearly    PeriodType = "yearly"
)

// Valid reports whether the period type is one of the supported granularities
func (p PeriodType) Valid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodYearly:
		return true
	}
	return false
}

// AnomalyKind distinguishes the two classes of spending anomaly
type AnomalyKind string

const (
	AnomalyAmountOutlier    AnomalyKind = "amount_outlier"
	AnomalyFrequencyOutlier AnomalyKind = "frequency_outlier"
)

// Severity grades how unusual an anomaly is
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// RiskLevel grades the budget risk of the forecast
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// CategoryBreakdown is one category's share of a period's spending
type CategoryBreakdown struct {
	Category         string  `json:"category"`
	Amount           float64 `json:"amount"`
	Percentage       float64 `json:"percentage"`
	TransactionCount int     `json:"transaction_count"`
}

// DailyAverages splits average per-transaction spend between weekdays and weekends
type DailyAverages struct {
	Weekdays float64 `json:"weekdays"`
	Weekends float64 `json:"weekends"`
}

// SpendingPatterns summarizes one period's spending behaviour
type SpendingPatterns struct {
	TotalExpenses     float64             `json:"total_expenses"`
	TotalIncome       float64             `json:"total_income"`
	NetCashFlow       float64             `json:"net_cash_flow"`
	CategoryBreakdown []CategoryBreakdown `json:"category_breakdown"`
	DailyAverages     DailyAverages       `json:"daily_averages"`
	PeakSpendingDays  []string            `json:"peak_spending_days"`
	SpendingVelocity  float64             `json:"spending_velocity"`
}

// Anomaly flags a transaction or category whose behaviour deviates from history
type Anomaly struct {
	Kind        AnomalyKind `json:"kind"`
	Severity    Severity    `json:"severity"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Amount      *float64    `json:"amount,omitempty"`
	Date        time.Time   `json:"date"`
	Confidence  float64     `json:"confidence"`
}

// CategoryAmount pairs a category with a predicted amount
type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// ExpenseForecast is the next-period spending prediction
type ExpenseForecast struct {
	Predicted  float64          `json:"predicted"`
	Confidence float64          `json:"confidence"`
	Breakdown  []CategoryAmount `json:"breakdown"`
}

// BudgetRisk assesses how likely the next period is to overshoot current spend
type BudgetRisk struct {
	Level       RiskLevel `json:"level"`
	Categories  []string  `json:"categories"`
	Probability float64   `json:"probability"`
}

// SavingsPotential quantifies headroom versus a target savings rate
type SavingsPotential struct {
	Amount          float64  `json:"amount"`
	Recommendations []string `json:"recommendations"`
}

// Predictions aggregates the forward-looking analytics outputs
type Predictions struct {
	NextPeriodExpenses ExpenseForecast  `json:"next_period_expenses"`
	BudgetRisk         BudgetRisk       `json:"budget_risk"`
	SavingsPotential   SavingsPotential `json:"savings_potential"`
}

// MonthlyMultiplier is a calendar month's spend relative to the overall average
type MonthlyMultiplier struct {
	Month      int     `json:"month"`
	Multiplier float64 `json:"multiplier"`
}

// SeasonalTrends is the dense 12-month seasonality table
type SeasonalTrends struct {
	MonthlyMultipliers []MonthlyMultiplier `json:"monthly_multipliers"`
}

// Metrics carries the composite financial-health inputs and score
type Metrics struct {
	BudgetAdherence      float64 `json:"budget_adherence"`
	SavingsRate          float64 `json:"savings_rate"`
	ExpenseGrowthRate    float64 `json:"expense_growth_rate"`
	FinancialHealthScore int     `json:"financial_health_score"`
	DebtToIncomeRatio    float64 `json:"debt_to_income_ratio"`
}

// AnalyticsSnapshot is the full computed analytics result for one user and
// period. At most one snapshot exists per (user, period, period type); the
// store upserts on that key so recomputation replaces rather than appends.
type AnalyticsSnapshot struct {
	ID               string           `json:"id,omitempty"`
	UserID           string           `json:"user_id"`
	Period           string           `json:"period"`
	PeriodType       PeriodType       `json:"period_type"`
	SpendingPatterns SpendingPatterns `json:"spending_patterns"`
	Anomalies        []Anomaly        `json:"anomalies"`
	Predictions      Predictions      `json:"predictions"`
	SeasonalTrends   SeasonalTrends   `json:"seasonal_trends"`
	Metrics          Metrics          `json:"metrics"`
	ComputedAt       time.Time        `json:"computed_at"`
}
