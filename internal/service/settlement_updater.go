package service

import (
	"context"
	"time"

	"github.com/hrm8/hrm8-backend/internal/gateway"
	"github.com/hrm8/hrm8-backend/internal/logger"
	"github.com/hrm8/hrm8-backend/internal/models"
	"github.com/hrm8/hrm8-backend/internal/repository"
	"go.uber.org/zap"
)

// SettlementUpdater polls the payment gateway for every PROCESSING
// withdrawal and finishes the lifecycle: confirmed payouts become
// COMPLETED (and their commissions PAID), failed payouts fall back to
// APPROVED so an admin can re-run the payment.
type SettlementUpdater struct {
	withdrawalRepo repository.WithdrawalRepository
	commissionRepo repository.CommissionRepository
	gatewayClient  gateway.ClientInterface
	pollInterval   time.Duration
}

func NewSettlementUpdater(withdrawalRepo repository.WithdrawalRepository, commissionRepo repository.CommissionRepository, client gateway.ClientInterface, interval time.Duration) *SettlementUpdater {
	return &SettlementUpdater{
		withdrawalRepo: withdrawalRepo,
		commissionRepo: commissionRepo,
		gatewayClient:  client,
		pollInterval:   interval,
	}
}

func (u *SettlementUpdater) Run(ctx context.Context) {
	ticker := time.NewTicker(u.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.checkProcessingWithdrawals(ctx)
		}
	}
}

func (u *SettlementUpdater) checkProcessingWithdrawals(ctx context.Context) {
	withdrawals, err := u.withdrawalRepo.ListWithdrawals(ctx, models.WithdrawalProcessing)
	if err != nil {
		logger.Log.Error("failed to list processing withdrawals", zap.Error(err))
		return
	}

	for i := range withdrawals {
		withdrawal := &withdrawals[i]
		if withdrawal.GatewayRef == "" {
			logger.Log.Warn("processing withdrawal has no gateway ref", zap.String("withdrawal", withdrawal.ID))
			continue
		}

		payout, _, err := u.gatewayClient.GetPayoutStatus(ctx, withdrawal.GatewayRef)
		if err != nil {
			logger.Log.Warn("failed to get payout status", zap.String("withdrawal", withdrawal.ID), zap.Error(err))
			continue
		}

		if payout == nil {
			continue
		}

		switch payout.Status {
		case gateway.StatusConfirmed:
			u.completeWithdrawal(ctx, withdrawal)
		case gateway.StatusFailed:
			u.revertWithdrawal(ctx, withdrawal, payout.Reason)
		}
	}
}

func (u *SettlementUpdater) completeWithdrawal(ctx context.Context, withdrawal *models.Withdrawal) {
	withdrawal.Status = models.WithdrawalCompleted
	if err := u.withdrawalRepo.UpdateWithdrawalStatus(ctx, withdrawal, models.WithdrawalProcessing); err != nil {
		logger.Log.Error("failed to complete withdrawal", zap.String("withdrawal", withdrawal.ID), zap.Error(err))
		return
	}

	for _, commissionID := range withdrawal.CommissionIDs {
		if err := u.commissionRepo.UpdateCommissionStatus(ctx, commissionID, models.CommissionPaid); err != nil {
			logger.Log.Error("failed to mark commission paid",
				zap.String("commission", commissionID), zap.Error(err))
		}
	}

	logger.Log.Info("withdrawal completed", zap.String("withdrawal", withdrawal.ID))
}

func (u *SettlementUpdater) revertWithdrawal(ctx context.Context, withdrawal *models.Withdrawal, reason string) {
	withdrawal.Status = models.WithdrawalApproved
	withdrawal.GatewayRef = ""
	if err := u.withdrawalRepo.UpdateWithdrawalStatus(ctx, withdrawal, models.WithdrawalProcessing); err != nil {
		logger.Log.Error("failed to revert withdrawal", zap.String("withdrawal", withdrawal.ID), zap.Error(err))
		return
	}

	logger.Log.Warn("payout failed, withdrawal returned to approved",
		zap.String("withdrawal", withdrawal.ID), zap.String("reason", reason))
}
