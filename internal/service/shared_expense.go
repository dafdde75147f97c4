package service

import (
	"context"
	"fmt"
	"time"

	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/internal/repository"
	"github.com/finsight/backend/internal/settlement"
)

type sharedExpenseService struct {
	sharedRepo repository.SharedExpenseRepository
}

// NewSharedExpenseService creates a new shared expense service
func NewSharedExpenseService(sharedRepo repository.SharedExpenseRepository) SharedExpenseService {
	return &sharedExpenseService{sharedRepo: sharedRepo}
}

func (s *sharedExpenseService) CreateSharedExpense(ctx context.Context, req *models.CreateSharedExpenseRequest) (*models.SharedExpense, error) {
	splits, err := resolveSplits(req)
	if err != nil {
		return nil, err
	}

	expense := &models.SharedExpense{
		GroupID:     req.GroupID,
		Name:        req.Name,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        req.Date.UTC(),
		PaidBy:      req.PaidBy,
		SplitType:   req.SplitType,
		Splits:      splits,
	}

	created, err := s.sharedRepo.Create(ctx, expense)
	if err != nil {
		return nil, fmt.Errorf("failed to create shared expense: %w", err)
	}

	return created, nil
}

// resolveSplits turns the request into concrete split amounts according to
// the split type, then validates the sum invariant.
func resolveSplits(req *models.CreateSharedExpenseRequest) ([]models.SharedExpenseSplit, error) {
	switch req.SplitType {
	case models.SplitTypePercentage:
		splits, err := settlement.PercentageSplit(req.Amount, req.Splits)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSplitMismatch, err)
		}
		return splits, nil
	case models.SplitTypeAmount:
		splits, err := settlement.AmountSplit(req.Amount, req.Splits)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSplitMismatch, err)
		}
		return splits, nil
	default: // equal
		participants := req.Participants
		if len(participants) == 0 {
			for _, split := range req.Splits {
				participants = append(participants, split.ParticipantID)
			}
		}
		if len(participants) == 0 {
			return nil, fmt.Errorf("%w: no participants to split between", ErrSplitMismatch)
		}
		return settlement.EqualSplit(req.Amount, participants), nil
	}
}

func (s *sharedExpenseService) GetGroupExpenses(ctx context.Context, groupID string) ([]models.SharedExpense, error) {
	expenses, err := s.sharedRepo.GetByGroupID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shared expenses: %w", err)
	}
	return expenses, nil
}

func (s *sharedExpenseService) GetGroupBalances(ctx context.Context, groupID string) (*models.GroupBalancesResponse, error) {
	expenses, err := s.sharedRepo.GetByGroupID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shared expenses: %w", err)
	}

	balances := settlement.NetBalances(expenses)
	transfers := settlement.Settle(balances)

	var total float64
	for _, e := range expenses {
		total += e.Amount
	}

	return &models.GroupBalancesResponse{
		Balances:    balances,
		Settlements: transfers,
		Summary: models.GroupBalancesSummary{
			TotalExpenses:      total,
			TotalTransactions:  len(expenses),
			PendingSettlements: len(transfers),
		},
	}, nil
}

func (s *sharedExpenseService) MarkSplitPaid(ctx context.Context, expenseID, participantID string) (*models.SharedExpense, error) {
	expense, err := s.sharedRepo.GetByID(ctx, expenseID)
	if err != nil {
		return nil, ErrNotFound
	}

	found := false
	now := time.Now().UTC()
	for i := range expense.Splits {
		if expense.Splits[i].ParticipantID == participantID {
			expense.Splits[i].IsPaid = true
			expense.Splits[i].PaidAt = &now
			found = true
			break
		}
	}
	if !found {
		return nil, ErrNotFound
	}

	expense.UpdatedAt = now
	updated, err := s.sharedRepo.Update(ctx, expenseID, expense)
	if err != nil {
		return nil, fmt.Errorf("failed to update shared expense: %w", err)
	}

	return updated, nil
}
