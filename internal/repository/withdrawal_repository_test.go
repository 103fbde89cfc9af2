package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hrm8/hrm8-backend/internal/apperrors"
	"github.com/hrm8/hrm8-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithdrawalRepo_CreateWithdrawal(t *testing.T) {
	requireDB(t)

	r := NewWithdrawalRepository(testDB)
	ctx := context.Background()

	tests := []struct {
		name          string
		commissionIDs []string
		wantErr       error
	}{
		{
			name: "reserves free confirmed commissions",
			commissionIDs: []string{
				"11111111-1111-1111-1111-111111111111",
				"55555555-5555-5555-5555-555555555555",
			},
		},
		{
			name:          "commission held by pending withdrawal",
			commissionIDs: []string{"22222222-2222-2222-2222-222222222222"},
			wantErr:       apperrors.ErrCommissionReserved,
		},
		{
			name:          "commission not yet confirmed",
			commissionIDs: []string{"33333333-3333-3333-3333-333333333333"},
			wantErr:       apperrors.ErrCommissionReserved,
		},
		{
			name:          "commission owned by another user",
			commissionIDs: []string{"44444444-4444-4444-4444-444444444444"},
			wantErr:       apperrors.ErrCommissionReserved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestData(t, testDB)

			withdrawal := &models.Withdrawal{
				ID:             "cccccccc-cccc-cccc-cccc-cccccccccccc",
				UserID:         1,
				Amount:         11200,
				PaymentMethod:  models.PaymentMethodPayPal,
				Status:         models.WithdrawalPending,
				CommissionIDs:  tt.commissionIDs,
				PaymentDetails: json.RawMessage(`{"email":"consultant1@example.com"}`),
				CreatedAt:      time.Now(),
			}

			err := r.CreateWithdrawal(ctx, withdrawal)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				// The whole transaction rolls back, nothing is inserted.
				var count int
				err = testDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM withdrawals WHERE id=$1`, withdrawal.ID).Scan(&count)
				require.NoError(t, err)
				assert.Zero(t, count)
				return
			}
			require.NoError(t, err)

			got, err := r.GetWithdrawalByID(ctx, withdrawal.ID)
			require.NoError(t, err)
			assert.Equal(t, models.WithdrawalPending, got.Status)
			assert.ElementsMatch(t, tt.commissionIDs, got.CommissionIDs)
		})
	}
}

func TestWithdrawalRepo_GetWithdrawalByID(t *testing.T) {
	requireDB(t)

	r := NewWithdrawalRepository(testDB)
	ctx := context.Background()
	setupTestData(t, testDB)

	got, err := r.GetWithdrawalByID(ctx, "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, models.Cents(25050), got.Amount)
	assert.Equal(t, models.PaymentMethodBankTransfer, got.PaymentMethod)
	assert.Equal(t, []string{"22222222-2222-2222-2222-222222222222"}, got.CommissionIDs)
	assert.NotEmpty(t, got.PaymentDetails)

	got, err = r.GetWithdrawalByID(ctx, "99999999-9999-9999-9999-999999999999")
	assert.ErrorIs(t, err, apperrors.ErrWithdrawalNotFound)
	assert.Nil(t, got)
}

func TestWithdrawalRepo_GetWithdrawalsByUser(t *testing.T) {
	requireDB(t)

	r := NewWithdrawalRepository(testDB)
	ctx := context.Background()
	setupTestData(t, testDB)

	withdrawals, err := r.GetWithdrawalsByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, withdrawals, 1)
	assert.Equal(t, "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", withdrawals[0].ID)

	withdrawals, err = r.GetWithdrawalsByUser(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, withdrawals)
}

func TestWithdrawalRepo_ListWithdrawals(t *testing.T) {
	requireDB(t)

	r := NewWithdrawalRepository(testDB)
	ctx := context.Background()
	setupTestData(t, testDB)

	all, err := r.ListWithdrawals(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := r.ListWithdrawals(ctx, models.WithdrawalPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa", pending[0].ID)

	rejected, err := r.ListWithdrawals(ctx, models.WithdrawalRejected)
	require.NoError(t, err)
	assert.Empty(t, rejected)
}

func TestWithdrawalRepo_UpdateWithdrawalStatus(t *testing.T) {
	requireDB(t)

	r := NewWithdrawalRepository(testDB)
	ctx := context.Background()
	setupTestData(t, testDB)

	adminID := int64(3)
	now := time.Now()

	withdrawal, err := r.GetWithdrawalByID(ctx, "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa")
	require.NoError(t, err)

	withdrawal.Status = models.WithdrawalApproved
	withdrawal.AdminNote = "looks good"
	withdrawal.DecidedBy = &adminID
	withdrawal.DecidedAt = &now
	require.NoError(t, r.UpdateWithdrawalStatus(ctx, withdrawal, models.WithdrawalPending))

	got, err := r.GetWithdrawalByID(ctx, withdrawal.ID)
	require.NoError(t, err)
	assert.Equal(t, models.WithdrawalApproved, got.Status)
	assert.Equal(t, "looks good", got.AdminNote)
	require.NotNil(t, got.DecidedBy)
	assert.Equal(t, adminID, *got.DecidedBy)

	// Second compare-and-set from PENDING loses: the row already moved.
	err = r.UpdateWithdrawalStatus(ctx, withdrawal, models.WithdrawalPending)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestWithdrawalRepo_GetTotalWithdrawn(t *testing.T) {
	requireDB(t)

	r := NewWithdrawalRepository(testDB)
	ctx := context.Background()
	setupTestData(t, testDB)

	total, err := r.GetTotalWithdrawn(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, models.Cents(7500), total)

	// Only completed withdrawals count.
	total, err = r.GetTotalWithdrawn(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, total)
}
