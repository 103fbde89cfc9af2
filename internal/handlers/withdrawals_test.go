package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/hrm8/hrm8-backend/internal/apperrors"
	"github.com/hrm8/hrm8-backend/internal/middleware"
	"github.com/hrm8/hrm8-backend/internal/mocks/service_mocks"
	"github.com/hrm8/hrm8-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWithdrawalID = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"

func newAuthedRequest(method, target string, body []byte, userID int64) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	return req.WithContext(ctx)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func TestHandler_GetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWithdrawalService := service_mocks.NewMockWithdrawalService(ctrl)
	h := &Handler{withdrawalService: mockWithdrawalService}

	tests := []struct {
		name           string
		mockSetup      func()
		wantStatusCode int
		wantSuccess    bool
	}{
		{
			name: "returns balance snapshot",
			mockSetup: func() {
				mockWithdrawalService.EXPECT().GetBalance(gomock.Any(), int64(1)).Return(models.WithdrawalBalance{
					AvailableBalance: 35050,
					AvailableCommissions: []models.CommissionRef{
						{ID: "c1", Amount: 10000},
						{ID: "c2", Amount: 25050},
					},
				}, nil)
			},
			wantStatusCode: http.StatusOK,
			wantSuccess:    true,
		},
		{
			name: "service error",
			mockSetup: func() {
				mockWithdrawalService.EXPECT().GetBalance(gomock.Any(), int64(1)).Return(models.WithdrawalBalance{}, errors.New("fail"))
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := newAuthedRequest(http.MethodGet, "/api/withdrawals/balance", nil, 1)
			w := httptest.NewRecorder()
			h.GetBalance(w, req)

			resp := w.Result()
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)

			env := decodeEnvelope(t, resp)
			assert.Equal(t, tt.wantSuccess, env.Success)
			if !tt.wantSuccess {
				assert.NotEmpty(t, env.Error)
			}
		})
	}
}

func TestHandler_GetBalance_Unauthorized(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodGet, "/api/withdrawals/balance", nil)
	w := httptest.NewRecorder()
	h.GetBalance(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestHandler_GetWithdrawals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWithdrawalService := service_mocks.NewMockWithdrawalService(ctrl)
	h := &Handler{withdrawalService: mockWithdrawalService}

	t.Run("nil history encodes as empty list", func(t *testing.T) {
		mockWithdrawalService.EXPECT().GetUserWithdrawals(gomock.Any(), int64(1)).Return(nil, nil)

		req := newAuthedRequest(http.MethodGet, "/api/withdrawals", nil, 1)
		w := httptest.NewRecorder()
		h.GetWithdrawals(w, req)

		resp := w.Result()
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var env struct {
			Success bool              `json:"success"`
			Data    []json.RawMessage `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
		assert.True(t, env.Success)
		assert.NotNil(t, env.Data)
		assert.Empty(t, env.Data)
	})

	t.Run("returns history", func(t *testing.T) {
		mockWithdrawalService.EXPECT().GetUserWithdrawals(gomock.Any(), int64(1)).Return([]models.Withdrawal{
			{ID: testWithdrawalID, Status: models.WithdrawalPending, Amount: 35050},
		}, nil)

		req := newAuthedRequest(http.MethodGet, "/api/withdrawals", nil, 1)
		w := httptest.NewRecorder()
		h.GetWithdrawals(w, req)

		resp := w.Result()
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestHandler_SubmitWithdrawal(t *testing.T) {
	validBody := []byte(`{
		"amount": 350.50,
		"paymentMethod": "PAYPAL",
		"commissionIds": ["c1", "c2"],
		"paymentDetails": {"email": "jane@example.com"}
	}`)

	tests := []struct {
		name           string
		body           []byte
		mockSetup      func(m *service_mocks.MockWithdrawalService)
		wantStatusCode int
	}{
		{
			name: "created",
			body: validBody,
			mockSetup: func(m *service_mocks.MockWithdrawalService) {
				m.EXPECT().Submit(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ int64, req models.WithdrawalRequest) (*models.Withdrawal, error) {
						assert.Equal(t, models.Cents(35050), req.Amount)
						assert.Equal(t, []string{"c1", "c2"}, req.CommissionIDs)
						return &models.Withdrawal{ID: testWithdrawalID, Status: models.WithdrawalPending}, nil
					})
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "malformed json",
			body:           []byte(`{"amount"`),
			mockSetup:      func(m *service_mocks.MockWithdrawalService) {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "empty selection",
			body: validBody,
			mockSetup: func(m *service_mocks.MockWithdrawalService) {
				m.EXPECT().Submit(gomock.Any(), int64(1), gomock.Any()).Return(nil, apperrors.ErrEmptySelection)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "amount mismatch",
			body: validBody,
			mockSetup: func(m *service_mocks.MockWithdrawalService) {
				m.EXPECT().Submit(gomock.Any(), int64(1), gomock.Any()).Return(nil, apperrors.ErrAmountMismatch)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "invalid payment details",
			body: validBody,
			mockSetup: func(m *service_mocks.MockWithdrawalService) {
				m.EXPECT().Submit(gomock.Any(), int64(1), gomock.Any()).Return(nil, apperrors.ErrInvalidPaymentDetails)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "unknown commission",
			body: validBody,
			mockSetup: func(m *service_mocks.MockWithdrawalService) {
				m.EXPECT().Submit(gomock.Any(), int64(1), gomock.Any()).Return(nil, apperrors.ErrCommissionNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "commission not eligible",
			body: validBody,
			mockSetup: func(m *service_mocks.MockWithdrawalService) {
				m.EXPECT().Submit(gomock.Any(), int64(1), gomock.Any()).Return(nil, apperrors.ErrCommissionNotEligible)
			},
			wantStatusCode: http.StatusPaymentRequired,
		},
		{
			name: "commission reserved",
			body: validBody,
			mockSetup: func(m *service_mocks.MockWithdrawalService) {
				m.EXPECT().Submit(gomock.Any(), int64(1), gomock.Any()).Return(nil, apperrors.ErrCommissionReserved)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "unexpected error",
			body: validBody,
			mockSetup: func(m *service_mocks.MockWithdrawalService) {
				m.EXPECT().Submit(gomock.Any(), int64(1), gomock.Any()).Return(nil, errors.New("fail"))
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockWithdrawalService := service_mocks.NewMockWithdrawalService(ctrl)
			tt.mockSetup(mockWithdrawalService)
			h := &Handler{withdrawalService: mockWithdrawalService}

			req := newAuthedRequest(http.MethodPost, "/api/withdrawals", tt.body, 1)
			w := httptest.NewRecorder()
			h.SubmitWithdrawal(w, req)

			resp := w.Result()
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)

			env := decodeEnvelope(t, resp)
			assert.Equal(t, tt.wantStatusCode < 300, env.Success)
		})
	}
}

func TestHandler_CancelWithdrawal(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(m *service_mocks.MockWithdrawalService)
		wantStatusCode int
	}{
		{
			name: "cancelled",
			mockSetup: func(m *service_mocks.MockWithdrawalService) {
				m.EXPECT().Cancel(gomock.Any(), int64(1), testWithdrawalID).Return(
					&models.Withdrawal{ID: testWithdrawalID, Status: models.WithdrawalCancelled}, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "not found",
			mockSetup: func(m *service_mocks.MockWithdrawalService) {
				m.EXPECT().Cancel(gomock.Any(), int64(1), testWithdrawalID).Return(nil, apperrors.ErrWithdrawalNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "not cancellable",
			mockSetup: func(m *service_mocks.MockWithdrawalService) {
				m.EXPECT().Cancel(gomock.Any(), int64(1), testWithdrawalID).Return(nil, apperrors.ErrWithdrawalNotCancellable)
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "unexpected error",
			mockSetup: func(m *service_mocks.MockWithdrawalService) {
				m.EXPECT().Cancel(gomock.Any(), int64(1), testWithdrawalID).Return(nil, errors.New("fail"))
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockWithdrawalService := service_mocks.NewMockWithdrawalService(ctrl)
			tt.mockSetup(mockWithdrawalService)
			h := &Handler{withdrawalService: mockWithdrawalService}

			req := newAuthedRequest(http.MethodPost, "/api/withdrawals/"+testWithdrawalID+"/cancel", nil, 1)
			req = withURLParam(req, "id", testWithdrawalID)
			w := httptest.NewRecorder()
			h.CancelWithdrawal(w, req)

			resp := w.Result()
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
		})
	}
}
