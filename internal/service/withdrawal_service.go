package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hrm8/hrm8-backend/internal/apperrors"
	"github.com/hrm8/hrm8-backend/internal/gateway"
	"github.com/hrm8/hrm8-backend/internal/logger"
	"github.com/hrm8/hrm8-backend/internal/models"
	"github.com/hrm8/hrm8-backend/internal/reconcile"
	"github.com/hrm8/hrm8-backend/internal/repository"
	"github.com/hrm8/hrm8-backend/internal/utils"
	"go.uber.org/zap"
)

type WithdrawalService interface {
	GetBalance(ctx context.Context, userID int64) (models.WithdrawalBalance, error)
	GetUserWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error)
	Submit(ctx context.Context, userID int64, req models.WithdrawalRequest) (*models.Withdrawal, error)
	Cancel(ctx context.Context, userID int64, withdrawalID string) (*models.Withdrawal, error)
	ListWithdrawals(ctx context.Context, status models.WithdrawalStatus) ([]models.Withdrawal, error)
	Approve(ctx context.Context, adminID int64, withdrawalID, note string) (*models.Withdrawal, error)
	Reject(ctx context.Context, adminID int64, withdrawalID, reason string) (*models.Withdrawal, error)
	ProcessPayment(ctx context.Context, adminID int64, withdrawalID string) (*models.Withdrawal, error)
}

type withdrawalService struct {
	withdrawalRepo repository.WithdrawalRepository
	commissionRepo repository.CommissionRepository
	gatewayClient  gateway.ClientInterface
	validate       *validator.Validate
}

func NewWithdrawalService(withdrawalRepo repository.WithdrawalRepository, commissionRepo repository.CommissionRepository, gatewayClient gateway.ClientInterface) WithdrawalService {
	return &withdrawalService{
		withdrawalRepo: withdrawalRepo,
		commissionRepo: commissionRepo,
		gatewayClient:  gatewayClient,
		validate:       validator.New(),
	}
}

// GetBalance recomputes the snapshot from storage on every call. The
// availableBalance is derived from the same rows as the commission
// list, so the two can never disagree.
func (s *withdrawalService) GetBalance(ctx context.Context, userID int64) (models.WithdrawalBalance, error) {
	available, err := s.commissionRepo.GetEligibleCommissions(ctx, userID)
	if err != nil {
		return models.WithdrawalBalance{}, err
	}
	if available == nil {
		available = []models.CommissionRef{}
	}

	var availableSum models.Cents
	for _, ref := range available {
		availableSum += ref.Amount
	}

	pending, earned, err := s.commissionRepo.GetCommissionTotals(ctx, userID)
	if err != nil {
		return models.WithdrawalBalance{}, err
	}

	withdrawn, err := s.withdrawalRepo.GetTotalWithdrawn(ctx, userID)
	if err != nil {
		return models.WithdrawalBalance{}, err
	}

	return models.WithdrawalBalance{
		AvailableBalance:     availableSum,
		PendingBalance:       pending,
		TotalEarned:          earned,
		TotalWithdrawn:       withdrawn,
		AvailableCommissions: available,
	}, nil
}

func (s *withdrawalService) GetUserWithdrawals(ctx context.Context, userID int64) ([]models.Withdrawal, error) {
	return s.withdrawalRepo.GetWithdrawalsByUser(ctx, userID)
}

func (s *withdrawalService) Submit(ctx context.Context, userID int64, req models.WithdrawalRequest) (*models.Withdrawal, error) {
	if len(req.CommissionIDs) == 0 {
		return nil, apperrors.ErrEmptySelection
	}
	if req.Amount <= 0 {
		return nil, apperrors.ErrInvalidWithdrawalAmount
	}
	if !req.PaymentMethod.Valid() {
		return nil, apperrors.ErrInvalidPaymentMethod
	}
	if err := s.validatePaymentDetails(req.PaymentMethod, req.PaymentDetails); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(req.CommissionIDs))
	commissions := make([]models.Commission, 0, len(req.CommissionIDs))
	for _, id := range req.CommissionIDs {
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: duplicate commission id %s", apperrors.ErrInvalidRequest, id)
		}
		seen[id] = struct{}{}

		commission, err := s.commissionRepo.GetCommissionByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if commission.UserID != userID {
			// Do not reveal that the id exists for someone else.
			return nil, apperrors.ErrCommissionNotFound
		}
		if commission.Status != models.CommissionConfirmed {
			return nil, apperrors.ErrCommissionNotEligible
		}
		commissions = append(commissions, *commission)
	}

	if !reconcile.Reconciles(req.Amount, commissions) {
		return nil, apperrors.ErrAmountMismatch
	}

	now := time.Now()
	withdrawal := &models.Withdrawal{
		ID:             uuid.NewString(),
		UserID:         userID,
		Amount:         req.Amount,
		PaymentMethod:  req.PaymentMethod,
		Status:         models.WithdrawalPending,
		CommissionIDs:  req.CommissionIDs,
		PaymentDetails: req.PaymentDetails,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.withdrawalRepo.CreateWithdrawal(ctx, withdrawal); err != nil {
		return nil, err
	}
	return withdrawal, nil
}

func (s *withdrawalService) Cancel(ctx context.Context, userID int64, withdrawalID string) (*models.Withdrawal, error) {
	withdrawal, err := s.withdrawalRepo.GetWithdrawalByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	if withdrawal.UserID != userID {
		return nil, apperrors.ErrWithdrawalNotFound
	}
	if withdrawal.Status != models.WithdrawalPending {
		return nil, apperrors.ErrWithdrawalNotCancellable
	}

	withdrawal.Status = models.WithdrawalCancelled
	err = s.withdrawalRepo.UpdateWithdrawalStatus(ctx, withdrawal, models.WithdrawalPending)
	if errors.Is(err, apperrors.ErrInvalidTransition) {
		// Lost the race against an admin decision.
		return nil, apperrors.ErrWithdrawalNotCancellable
	}
	if err != nil {
		return nil, err
	}
	return withdrawal, nil
}

func (s *withdrawalService) ListWithdrawals(ctx context.Context, status models.WithdrawalStatus) ([]models.Withdrawal, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrInvalidRequest, status)
	}
	return s.withdrawalRepo.ListWithdrawals(ctx, status)
}

func (s *withdrawalService) Approve(ctx context.Context, adminID int64, withdrawalID, note string) (*models.Withdrawal, error) {
	return s.decide(ctx, adminID, withdrawalID, models.WithdrawalApproved, func(w *models.Withdrawal) {
		w.AdminNote = note
	})
}

func (s *withdrawalService) Reject(ctx context.Context, adminID int64, withdrawalID, reason string) (*models.Withdrawal, error) {
	if reason == "" {
		return nil, apperrors.ErrRejectionReasonRequired
	}
	return s.decide(ctx, adminID, withdrawalID, models.WithdrawalRejected, func(w *models.Withdrawal) {
		w.RejectionReason = reason
	})
}

func (s *withdrawalService) decide(ctx context.Context, adminID int64, withdrawalID string, next models.WithdrawalStatus, apply func(*models.Withdrawal)) (*models.Withdrawal, error) {
	withdrawal, err := s.withdrawalRepo.GetWithdrawalByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	if !withdrawal.Status.CanTransitionTo(next) {
		return nil, apperrors.ErrInvalidTransition
	}

	from := withdrawal.Status
	now := time.Now()
	withdrawal.Status = next
	withdrawal.DecidedBy = &adminID
	withdrawal.DecidedAt = &now
	apply(withdrawal)

	if err := s.withdrawalRepo.UpdateWithdrawalStatus(ctx, withdrawal, from); err != nil {
		return nil, err
	}
	return withdrawal, nil
}

// ProcessPayment registers the payout with the gateway and moves the
// withdrawal to PROCESSING. A gateway failure leaves it APPROVED.
func (s *withdrawalService) ProcessPayment(ctx context.Context, adminID int64, withdrawalID string) (*models.Withdrawal, error) {
	withdrawal, err := s.withdrawalRepo.GetWithdrawalByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	if !withdrawal.Status.CanTransitionTo(models.WithdrawalProcessing) {
		return nil, apperrors.ErrInvalidTransition
	}

	ref, err := s.gatewayClient.RegisterPayout(ctx, withdrawal)
	if err != nil {
		logger.Log.Error("failed to register payout", zap.String("withdrawal", withdrawal.ID), zap.Error(err))
		return nil, apperrors.ErrGatewayUnavailable
	}

	from := withdrawal.Status
	now := time.Now()
	withdrawal.Status = models.WithdrawalProcessing
	withdrawal.GatewayRef = ref
	withdrawal.DecidedBy = &adminID
	withdrawal.DecidedAt = &now

	if err := s.withdrawalRepo.UpdateWithdrawalStatus(ctx, withdrawal, from); err != nil {
		return nil, err
	}
	return withdrawal, nil
}

type bankTransferDetails struct {
	AccountName   string `json:"accountName" validate:"required"`
	AccountNumber string `json:"accountNumber" validate:"required"`
	BankName      string `json:"bankName" validate:"required"`
	RoutingNumber string `json:"routingNumber" validate:"required,numeric,len=9"`
}

type paypalDetails struct {
	Email string `json:"email" validate:"required,email"`
}

type stripeDetails struct {
	StripeAccountID string `json:"stripeAccountId" validate:"required"`
}

func (s *withdrawalService) validatePaymentDetails(method models.PaymentMethod, raw json.RawMessage) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: payment details are required for %s", apperrors.ErrInvalidPaymentDetails, method)
	}

	switch method {
	case models.PaymentMethodBankTransfer:
		var details bankTransferDetails
		if err := json.Unmarshal(raw, &details); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrInvalidPaymentDetails, err)
		}
		if err := s.validate.Struct(details); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrInvalidPaymentDetails, err)
		}
		if !utils.IsValidRoutingNumber(details.RoutingNumber) {
			return fmt.Errorf("%w: invalid routing number", apperrors.ErrInvalidPaymentDetails)
		}
	case models.PaymentMethodPayPal:
		var details paypalDetails
		if err := json.Unmarshal(raw, &details); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrInvalidPaymentDetails, err)
		}
		if err := s.validate.Struct(details); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrInvalidPaymentDetails, err)
		}
	case models.PaymentMethodStripe:
		var details stripeDetails
		if err := json.Unmarshal(raw, &details); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrInvalidPaymentDetails, err)
		}
		if err := s.validate.Struct(details); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrInvalidPaymentDetails, err)
		}
	default:
		return apperrors.ErrInvalidPaymentMethod
	}
	return nil
}
