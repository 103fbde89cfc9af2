package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hrm8/hrm8-backend/internal/apperrors"
	"github.com/hrm8/hrm8-backend/internal/mocks/repository_mocks"
	"github.com/hrm8/hrm8-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommissionService_CreateCommission(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		commission models.Commission
		mockSetup  func(m *repository_mocks.MockCommissionRepository)
		wantErr    error
		check      func(t *testing.T, c *models.Commission)
	}{
		{
			name:       "fills defaults",
			commission: models.Commission{UserID: 1, Amount: 10000},
			mockSetup: func(m *repository_mocks.MockCommissionRepository) {
				m.EXPECT().CreateCommission(ctx, gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, c *models.Commission) {
				assert.NotEmpty(t, c.ID)
				assert.Equal(t, models.CommissionPending, c.Status)
				assert.Equal(t, "AUD", c.Currency)
				assert.Equal(t, models.CommissionTypePlacement, c.Type)
				assert.False(t, c.CreatedAt.IsZero())
			},
		},
		{
			name: "keeps explicit fields",
			commission: models.Commission{
				UserID:   1,
				Amount:   5000,
				Currency: "USD",
				Type:     models.CommissionTypeReferral,
				Status:   models.CommissionConfirmed,
			},
			mockSetup: func(m *repository_mocks.MockCommissionRepository) {
				m.EXPECT().CreateCommission(ctx, gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, c *models.Commission) {
				assert.Equal(t, "USD", c.Currency)
				assert.Equal(t, models.CommissionTypeReferral, c.Type)
				assert.Equal(t, models.CommissionConfirmed, c.Status)
			},
		},
		{
			name:       "rejects non-positive amount",
			commission: models.Commission{UserID: 1, Amount: 0},
			mockSetup:  func(m *repository_mocks.MockCommissionRepository) {},
			wantErr:    apperrors.ErrInvalidRequest,
		},
		{
			name:       "rejects unknown status",
			commission: models.Commission{UserID: 1, Amount: 100, Status: "SETTLED"},
			mockSetup:  func(m *repository_mocks.MockCommissionRepository) {},
			wantErr:    apperrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repository_mocks.NewMockCommissionRepository(ctrl)
			tt.mockSetup(repo)

			service := NewCommissionService(repo)
			commission := tt.commission
			err := service.CreateCommission(ctx, &commission)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, &commission)
		})
	}
}

func TestCommissionService_UpdateCommissionStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockCommissionRepository(ctrl)
	service := NewCommissionService(repo)
	ctx := context.Background()

	repo.EXPECT().UpdateCommissionStatus(ctx, testCommissionA, models.CommissionConfirmed).Return(nil)
	require.NoError(t, service.UpdateCommissionStatus(ctx, testCommissionA, models.CommissionConfirmed))

	err := service.UpdateCommissionStatus(ctx, testCommissionA, models.CommissionStatus("SETTLED"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
}

func TestCommissionService_GetUserCommissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockCommissionRepository(ctrl)
	service := NewCommissionService(repo)
	ctx := context.Background()

	repo.EXPECT().GetCommissionsByUser(ctx, int64(1)).Return([]models.Commission{{ID: testCommissionA}}, nil)

	commissions, err := service.GetUserCommissions(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, commissions, 1)
}
