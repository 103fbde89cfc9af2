package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/hrm8/hrm8-backend/internal/gateway"
	"github.com/hrm8/hrm8-backend/internal/mocks/gateway_mocks"
	"github.com/hrm8/hrm8-backend/internal/mocks/repository_mocks"
	"github.com/hrm8/hrm8-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func processingWithdrawal(ref string) models.Withdrawal {
	return models.Withdrawal{
		ID:            testWithdrawal,
		UserID:        1,
		Amount:        35050,
		Status:        models.WithdrawalProcessing,
		GatewayRef:    ref,
		CommissionIDs: []string{testCommissionA, testCommissionB},
	}
}

func TestSettlementUpdater_ConfirmedPayoutCompletesWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	withdrawalRepo := repository_mocks.NewMockWithdrawalRepository(ctrl)
	commissionRepo := repository_mocks.NewMockCommissionRepository(ctrl)
	client := gateway_mocks.NewMockClientInterface(ctrl)
	ctx := context.Background()

	withdrawalRepo.EXPECT().ListWithdrawals(ctx, models.WithdrawalProcessing).
		Return([]models.Withdrawal{processingWithdrawal("payout-42")}, nil)
	client.EXPECT().GetPayoutStatus(ctx, "payout-42").
		Return(&gateway.PayoutResponse{Ref: "payout-42", Status: gateway.StatusConfirmed}, 200, nil)
	withdrawalRepo.EXPECT().UpdateWithdrawalStatus(ctx, gomock.Any(), models.WithdrawalProcessing).DoAndReturn(
		func(_ context.Context, w *models.Withdrawal, _ models.WithdrawalStatus) error {
			assert.Equal(t, models.WithdrawalCompleted, w.Status)
			return nil
		})
	commissionRepo.EXPECT().UpdateCommissionStatus(ctx, testCommissionA, models.CommissionPaid).Return(nil)
	commissionRepo.EXPECT().UpdateCommissionStatus(ctx, testCommissionB, models.CommissionPaid).Return(nil)

	updater := NewSettlementUpdater(withdrawalRepo, commissionRepo, client, time.Second)
	updater.checkProcessingWithdrawals(ctx)
}

func TestSettlementUpdater_FailedPayoutRevertsToApproved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	withdrawalRepo := repository_mocks.NewMockWithdrawalRepository(ctrl)
	commissionRepo := repository_mocks.NewMockCommissionRepository(ctrl)
	client := gateway_mocks.NewMockClientInterface(ctrl)
	ctx := context.Background()

	withdrawalRepo.EXPECT().ListWithdrawals(ctx, models.WithdrawalProcessing).
		Return([]models.Withdrawal{processingWithdrawal("payout-42")}, nil)
	client.EXPECT().GetPayoutStatus(ctx, "payout-42").
		Return(&gateway.PayoutResponse{Ref: "payout-42", Status: gateway.StatusFailed, Reason: "account closed"}, 200, nil)
	withdrawalRepo.EXPECT().UpdateWithdrawalStatus(ctx, gomock.Any(), models.WithdrawalProcessing).DoAndReturn(
		func(_ context.Context, w *models.Withdrawal, _ models.WithdrawalStatus) error {
			assert.Equal(t, models.WithdrawalApproved, w.Status)
			assert.Empty(t, w.GatewayRef)
			return nil
		})

	updater := NewSettlementUpdater(withdrawalRepo, commissionRepo, client, time.Second)
	updater.checkProcessingWithdrawals(ctx)
}

func TestSettlementUpdater_PendingPayoutLeftAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	withdrawalRepo := repository_mocks.NewMockWithdrawalRepository(ctrl)
	commissionRepo := repository_mocks.NewMockCommissionRepository(ctrl)
	client := gateway_mocks.NewMockClientInterface(ctrl)
	ctx := context.Background()

	withdrawalRepo.EXPECT().ListWithdrawals(ctx, models.WithdrawalProcessing).
		Return([]models.Withdrawal{processingWithdrawal("payout-42")}, nil)
	client.EXPECT().GetPayoutStatus(ctx, "payout-42").
		Return(&gateway.PayoutResponse{Ref: "payout-42", Status: gateway.StatusProcessing}, 200, nil)

	updater := NewSettlementUpdater(withdrawalRepo, commissionRepo, client, time.Second)
	updater.checkProcessingWithdrawals(ctx)
}

func TestSettlementUpdater_GatewayErrorSkipsWithdrawal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	withdrawalRepo := repository_mocks.NewMockWithdrawalRepository(ctrl)
	commissionRepo := repository_mocks.NewMockCommissionRepository(ctrl)
	client := gateway_mocks.NewMockClientInterface(ctrl)
	ctx := context.Background()

	withdrawalRepo.EXPECT().ListWithdrawals(ctx, models.WithdrawalProcessing).
		Return([]models.Withdrawal{processingWithdrawal("payout-42")}, nil)
	client.EXPECT().GetPayoutStatus(ctx, "payout-42").
		Return(nil, 0, errors.New("connection refused"))

	updater := NewSettlementUpdater(withdrawalRepo, commissionRepo, client, time.Second)
	updater.checkProcessingWithdrawals(ctx)
}

func TestSettlementUpdater_MissingGatewayRefSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	withdrawalRepo := repository_mocks.NewMockWithdrawalRepository(ctrl)
	commissionRepo := repository_mocks.NewMockCommissionRepository(ctrl)
	client := gateway_mocks.NewMockClientInterface(ctrl)
	ctx := context.Background()

	withdrawalRepo.EXPECT().ListWithdrawals(ctx, models.WithdrawalProcessing).
		Return([]models.Withdrawal{processingWithdrawal("")}, nil)

	updater := NewSettlementUpdater(withdrawalRepo, commissionRepo, client, time.Second)
	updater.checkProcessingWithdrawals(ctx)
}

func TestSettlementUpdater_RunStopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	withdrawalRepo := repository_mocks.NewMockWithdrawalRepository(ctrl)
	commissionRepo := repository_mocks.NewMockCommissionRepository(ctrl)
	client := gateway_mocks.NewMockClientInterface(ctrl)

	withdrawalRepo.EXPECT().ListWithdrawals(gomock.Any(), models.WithdrawalProcessing).
		Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	updater := NewSettlementUpdater(withdrawalRepo, commissionRepo, client, 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		updater.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("updater did not stop after context cancellation")
	}
}
