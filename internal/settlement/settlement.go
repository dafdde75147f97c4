// Package settlement computes who-owes-whom for shared expenses: per-expense
// balances, net balances across a group, and a greedy transfer plan that
// settles all debts.
package settlement

import (
	"fmt"
	"math"
	"sort"

	"github.com/finsight/backend/internal/models"
)

// Tolerance is the absolute amount below which balances and split sums are
// treated as settled. Keeps floating-point residue from producing cent-level
// transfers.
const Tolerance = 0.01

// ValidateSplits checks that the split amounts sum to the expense amount
// within Tolerance.
func ValidateSplits(amount float64, splits []models.SharedExpenseSplit) error {
	var sum float64
	for _, s := range splits {
		sum += s.Amount
	}
	if math.Abs(sum-amount) > Tolerance {
		return fmt.Errorf("split amounts sum to %.2f, expense amount is %.2f", sum, amount)
	}
	return nil
}

// EqualSplit divides an amount evenly across the participants. The last
// participant absorbs the rounding remainder so the splits sum exactly.
func EqualSplit(amount float64, participants []string) []models.SharedExpenseSplit {
	n := len(participants)
	if n == 0 {
		return []models.SharedExpenseSplit{}
	}
	share := math.Round(amount/float64(n)*100) / 100
	splits := make([]models.SharedExpenseSplit, 0, n)
	var assigned float64
	for i, p := range participants {
		s := share
		if i == n-1 {
			s = math.Round((amount-assigned)*100) / 100
		}
		assigned += s
		splits = append(splits, models.SharedExpenseSplit{
			ParticipantID: p,
			Amount:        s,
		})
	}
	return splits
}

// PercentageSplit converts percentage shares into amounts. Percentages must
// sum to 100 within Tolerance.
func PercentageSplit(amount float64, splits []models.SharedExpenseSplit) ([]models.SharedExpenseSplit, error) {
	var pctSum float64
	for _, s := range splits {
		pctSum += s.Percentage
	}
	if math.Abs(pctSum-100) > Tolerance {
		return nil, fmt.Errorf("percentages sum to %.2f, expected 100", pctSum)
	}

	out := make([]models.SharedExpenseSplit, len(splits))
	var assigned float64
	for i, s := range splits {
		a := math.Round(amount*s.Percentage/100*100) / 100
		if i == len(splits)-1 {
			a = math.Round((amount-assigned)*100) / 100
		}
		assigned += a
		out[i] = s
		out[i].Amount = a
	}
	return out, nil
}

// AmountSplit validates explicitly specified amounts against the expense
// total and returns them unchanged.
func AmountSplit(amount float64, splits []models.SharedExpenseSplit) ([]models.SharedExpenseSplit, error) {
	if err := ValidateSplits(amount, splits); err != nil {
		return nil, err
	}
	return splits, nil
}

// Balances returns the per-participant net effect of a single expense: the
// payer's contribution counts positive, each split obligation negative.
// A payer who also owes a split nets out.
func Balances(expense models.SharedExpense) map[string]float64 {
	balances := make(map[string]float64)
	balances[expense.PaidBy.ParticipantID] += expense.PaidBy.Amount
	for _, s := range expense.Splits {
		balances[s.ParticipantID] -= s.Amount
	}
	return balances
}

// NetBalances aggregates paid and owed totals across a group's expenses.
// Results are sorted by net balance descending, so creditors come first.
func NetBalances(expenses []models.SharedExpense) []models.ParticipantBalance {
	paid := make(map[string]float64)
	owed := make(map[string]float64)

	for _, e := range expenses {
		paid[e.PaidBy.ParticipantID] += e.PaidBy.Amount
		for _, s := range e.Splits {
			owed[s.ParticipantID] += s.Amount
		}
	}

	ids := make(map[string]struct{})
	for id := range paid {
		ids[id] = struct{}{}
	}
	for id := range owed {
		ids[id] = struct{}{}
	}

	balances := make([]models.ParticipantBalance, 0, len(ids))
	for id := range ids {
		balances = append(balances, models.ParticipantBalance{
			ParticipantID: id,
			TotalPaid:     paid[id],
			TotalOwed:     owed[id],
			NetBalance:    paid[id] - owed[id],
		})
	}
	sort.Slice(balances, func(i, j int) bool {
		if balances[i].NetBalance != balances[j].NetBalance {
			return balances[i].NetBalance > balances[j].NetBalance
		}
		return balances[i].ParticipantID < balances[j].ParticipantID
	})
	return balances
}

// Settle produces a transfer plan that zeroes all net balances. Greedy
// pairing: the largest creditor is matched with the most indebted debtor,
// the smaller magnitude transfers, and whoever is exhausted advances.
// The plan conserves money exactly but is not guaranteed to minimize the
// number of transfers. Residual balances under Tolerance are dropped.
func Settle(balances []models.ParticipantBalance) []models.SettlementTransfer {
	var creditors, debtors []models.ParticipantBalance
	for _, b := range balances {
		switch {
		case b.NetBalance > Tolerance:
			creditors = append(creditors, b)
		case b.NetBalance < -Tolerance:
			debtors = append(debtors, b)
		}
	}

	sort.Slice(creditors, func(i, j int) bool {
		if creditors[i].NetBalance != creditors[j].NetBalance {
			return creditors[i].NetBalance > creditors[j].NetBalance
		}
		return creditors[i].ParticipantID < creditors[j].ParticipantID
	})
	sort.Slice(debtors, func(i, j int) bool {
		if debtors[i].NetBalance != debtors[j].NetBalance {
			return debtors[i].NetBalance < debtors[j].NetBalance
		}
		return debtors[i].ParticipantID < debtors[j].ParticipantID
	})

	transfers := []models.SettlementTransfer{}
	ci, di := 0, 0
	for ci < len(creditors) && di < len(debtors) {
		credit := creditors[ci].NetBalance
		debt := -debtors[di].NetBalance

		amount := math.Min(credit, debt)
		amount = math.Round(amount*100) / 100
		if amount >= Tolerance {
			transfers = append(transfers, models.SettlementTransfer{
				FromParticipant: debtors[di].ParticipantID,
				ToParticipant:   creditors[ci].ParticipantID,
				Amount:          amount,
			})
		}

		creditors[ci].NetBalance -= amount
		debtors[di].NetBalance += amount

		if creditors[ci].NetBalance < Tolerance {
			ci++
		}
		if debtors[di].NetBalance > -Tolerance {
			di++
		}
	}
	return transfers
}
