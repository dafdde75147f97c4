package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/finsight/backend/internal/models"
)

func sharedExpenseRequest(splitType models.SplitType) *models.CreateSharedExpenseRequest {
	return &models.CreateSharedExpenseRequest{
		GroupID:   "group-1",
		Name:      "Dinner",
		Amount:    90,
		Category:  "Dining Out",
		Date:      time.Date(2026, time.September, 5, 19, 0, 0, 0, time.UTC),
		PaidBy:    models.PaidBy{ParticipantID: "alice", Amount: 90},
		SplitType: splitType,
	}
}

func TestCreateSharedExpenseEqualSplit(t *testing.T) {
	repo := newMockSharedExpenseRepository()
	svc := NewSharedExpenseService(repo)

	req := sharedExpenseRequest(models.SplitTypeEqual)
	req.Participants = []string{"alice", "bob", "carol"}

	created, err := svc.CreateSharedExpense(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(created.Splits) != 3 {
		t.Fatalf("expected 3 splits, got %d", len(created.Splits))
	}
	for _, s := range created.Splits {
		if math.Abs(s.Amount-30) > 1e-9 {
			t.Errorf("split %s = %v, want 30", s.ParticipantID, s.Amount)
		}
	}
}

func TestCreateSharedExpenseEqualFromSplits(t *testing.T) {
	repo := newMockSharedExpenseRepository()
	svc := NewSharedExpenseService(repo)

	// Participants can be named through split entries instead
	req := sharedExpenseRequest(models.SplitTypeEqual)
	req.Splits = []models.SharedExpenseSplit{
		{ParticipantID: "alice"},
		{ParticipantID: "bob"},
	}

	created, err := svc.CreateSharedExpense(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created.Splits) != 2 || math.Abs(created.Splits[0].Amount-45) > 1e-9 {
		t.Errorf("splits = %+v, want two 45 shares", created.Splits)
	}
}

func TestCreateSharedExpenseNoParticipants(t *testing.T) {
	svc := NewSharedExpenseService(newMockSharedExpenseRepository())

	req := sharedExpenseRequest(models.SplitTypeEqual)
	if _, err := svc.CreateSharedExpense(context.Background(), req); !errors.Is(err, ErrSplitMismatch) {
		t.Errorf("error = %v, want ErrSplitMismatch", err)
	}
}

func TestCreateSharedExpensePercentage(t *testing.T) {
	svc := NewSharedExpenseService(newMockSharedExpenseRepository())

	req := sharedExpenseRequest(models.SplitTypePercentage)
	req.Splits = []models.SharedExpenseSplit{
		{ParticipantID: "alice", Percentage: 60},
		{ParticipantID: "bob", Percentage: 40},
	}

	created, err := svc.CreateSharedExpense(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(created.Splits[0].Amount-54) > 1e-9 || math.Abs(created.Splits[1].Amount-36) > 1e-9 {
		t.Errorf("splits = %+v, want 54 and 36", created.Splits)
	}

	req.Splits = []models.SharedExpenseSplit{
		{ParticipantID: "alice", Percentage: 60},
		{ParticipantID: "bob", Percentage: 30},
	}
	if _, err := svc.CreateSharedExpense(context.Background(), req); !errors.Is(err, ErrSplitMismatch) {
		t.Errorf("error = %v, want ErrSplitMismatch for 90%% total", err)
	}
}

func TestCreateSharedExpenseAmountMismatch(t *testing.T) {
	svc := NewSharedExpenseService(newMockSharedExpenseRepository())

	req := sharedExpenseRequest(models.SplitTypeAmount)
	req.Splits = []models.SharedExpenseSplit{
		{ParticipantID: "alice", Amount: 50},
		{ParticipantID: "bob", Amount: 50},
	}

	if _, err := svc.CreateSharedExpense(context.Background(), req); !errors.Is(err, ErrSplitMismatch) {
		t.Errorf("error = %v, want ErrSplitMismatch for 100 against 90", err)
	}
}

func TestGetGroupBalances(t *testing.T) {
	repo := newMockSharedExpenseRepository()
	svc := NewSharedExpenseService(repo)

	req := sharedExpenseRequest(models.SplitTypeEqual)
	req.Participants = []string{"alice", "bob", "carol"}
	if _, err := svc.CreateSharedExpense(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := svc.GetGroupBalances(context.Background(), "group-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Summary.TotalExpenses != 90 || resp.Summary.TotalTransactions != 1 {
		t.Errorf("summary = %+v, want 90 across 1 expense", resp.Summary)
	}
	if resp.Summary.PendingSettlements != len(resp.Settlements) {
		t.Errorf("PendingSettlements = %d, settlements = %d", resp.Summary.PendingSettlements, len(resp.Settlements))
	}

	// Alice paid 90 and owes 30, everyone else owes 30
	if resp.Balances[0].ParticipantID != "alice" || math.Abs(resp.Balances[0].NetBalance-60) > 1e-9 {
		t.Errorf("top balance = %+v, want alice +60", resp.Balances[0])
	}
	if len(resp.Settlements) != 2 {
		t.Fatalf("expected 2 settlements, got %+v", resp.Settlements)
	}
	for _, tr := range resp.Settlements {
		if tr.ToParticipant != "alice" || math.Abs(tr.Amount-30) > 1e-9 {
			t.Errorf("settlement = %+v, want 30 to alice", tr)
		}
	}
}

func TestGetGroupBalancesEmptyGroup(t *testing.T) {
	svc := NewSharedExpenseService(newMockSharedExpenseRepository())

	resp, err := svc.GetGroupBalances(context.Background(), "group-none")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Balances) != 0 || len(resp.Settlements) != 0 || resp.Summary.TotalExpenses != 0 {
		t.Errorf("expected empty balance sheet, got %+v", resp)
	}
}

func TestMarkSplitPaid(t *testing.T) {
	repo := newMockSharedExpenseRepository()
	svc := NewSharedExpenseService(repo)

	req := sharedExpenseRequest(models.SplitTypeEqual)
	req.Participants = []string{"alice", "bob"}
	created, err := svc.CreateSharedExpense(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.MarkSplitPaid(context.Background(), created.ID, "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var bob models.SharedExpenseSplit
	for _, s := range updated.Splits {
		if s.ParticipantID == "bob" {
			bob = s
		}
	}
	if !bob.IsPaid || bob.PaidAt == nil {
		t.Errorf("bob's split = %+v, want paid with timestamp", bob)
	}
	if updated.IsFullySettled() {
		t.Error("expense should not be fully settled while alice's split is open")
	}

	if _, err := svc.MarkSplitPaid(context.Background(), created.ID, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown participant: error = %v, want ErrNotFound", err)
	}
	if _, err := svc.MarkSplitPaid(context.Background(), "missing", "bob"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown expense: error = %v, want ErrNotFound", err)
	}
}
