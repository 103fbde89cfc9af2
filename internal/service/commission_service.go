package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hrm8/hrm8-backend/internal/apperrors"
	"github.com/hrm8/hrm8-backend/internal/models"
	"github.com/hrm8/hrm8-backend/internal/repository"
)

type CommissionService interface {
	CreateCommission(ctx context.Context, commission *models.Commission) error
	GetUserCommissions(ctx context.Context, userID int64) ([]models.Commission, error)
	UpdateCommissionStatus(ctx context.Context, id string, status models.CommissionStatus) error
}

type commissionService struct {
	repo repository.CommissionRepository
}

func NewCommissionService(repo repository.CommissionRepository) CommissionService {
	return &commissionService{repo: repo}
}

func (s *commissionService) CreateCommission(ctx context.Context, commission *models.Commission) error {
	if commission.Amount <= 0 {
		return fmt.Errorf("%w: commission amount must be positive", apperrors.ErrInvalidRequest)
	}

	if commission.ID == "" {
		commission.ID = uuid.NewString()
	}
	if commission.Status == "" {
		commission.Status = models.CommissionPending
	}
	if !commission.Status.Valid() {
		return fmt.Errorf("%w: unknown commission status %q", apperrors.ErrInvalidRequest, commission.Status)
	}
	if commission.Currency == "" {
		commission.Currency = "AUD"
	}
	if commission.Type == "" {
		commission.Type = models.CommissionTypePlacement
	}
	if commission.CreatedAt.IsZero() {
		commission.CreatedAt = time.Now()
	}

	return s.repo.CreateCommission(ctx, commission)
}

func (s *commissionService) GetUserCommissions(ctx context.Context, userID int64) ([]models.Commission, error) {
	return s.repo.GetCommissionsByUser(ctx, userID)
}

func (s *commissionService) UpdateCommissionStatus(ctx context.Context, id string, status models.CommissionStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown commission status %q", apperrors.ErrInvalidRequest, status)
	}
	return s.repo.UpdateCommissionStatus(ctx, id, status)
}
