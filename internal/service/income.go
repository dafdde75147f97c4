package service

import (
	"context"
	"fmt"

	"github.com/finsight/backend/internal/models"
	"github.com/finsight/backend/internal/repository"
)

type incomeService struct {
	incomeRepo repository.IncomeRepository
}

// NewIncomeService creates a new income service
func NewIncomeService(incomeRepo repository.IncomeRepository) IncomeService {
	return &incomeService{incomeRepo: incomeRepo}
}

func (s *incomeService) CreateIncome(ctx context.Context, userID string, req *models.CreateIncomeRequest) (*models.Income, error) {
	income := &models.Income{
		UserID:      userID,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		OccurredAt:  req.OccurredAt.UTC(),
	}

	created, err := s.incomeRepo.Create(ctx, income)
	if err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	return created, nil
}

func (s *incomeService) GetUserIncomes(ctx context.Context, userID string, limit, offset int) ([]models.Income, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	incomes, err := s.incomeRepo.GetByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get incomes: %w", err)
	}

	return incomes, nil
}
