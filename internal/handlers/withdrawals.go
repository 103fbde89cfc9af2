package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrm8/hrm8-backend/internal/apperrors"
	"github.com/hrm8/hrm8-backend/internal/logger"
	"github.com/hrm8/hrm8-backend/internal/middleware"
	"github.com/hrm8/hrm8-backend/internal/models"
	"go.uber.org/zap"
)

func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	balance, err := h.withdrawalService.GetBalance(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		logger.Log.Error("failed to get withdrawal balance", zap.Error(err))
		return
	}

	writeJSON(w, http.StatusOK, balance)
}

func (h *Handler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	withdrawals, err := h.withdrawalService.GetUserWithdrawals(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		logger.Log.Error("failed to get withdrawals", zap.Error(err))
		return
	}

	if withdrawals == nil {
		withdrawals = []models.Withdrawal{}
	}
	writeJSON(w, http.StatusOK, withdrawals)
}

func (h *Handler) SubmitWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req models.WithdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	withdrawal, err := h.withdrawalService.Submit(r.Context(), userID, req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, withdrawal)
	case errors.Is(err, apperrors.ErrEmptySelection),
		errors.Is(err, apperrors.ErrInvalidWithdrawalAmount),
		errors.Is(err, apperrors.ErrInvalidPaymentMethod),
		errors.Is(err, apperrors.ErrInvalidPaymentDetails),
		errors.Is(err, apperrors.ErrAmountMismatch),
		errors.Is(err, apperrors.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrCommissionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrCommissionNotEligible),
		errors.Is(err, apperrors.ErrInsufficientFunds):
		writeError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, apperrors.ErrCommissionReserved):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
		logger.Log.Error("submit withdrawal error", zap.Error(err))
	}
}

func (h *Handler) CancelWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	withdrawalID := chi.URLParam(r, "id")

	withdrawal, err := h.withdrawalService.Cancel(r.Context(), userID, withdrawalID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, withdrawal)
	case errors.Is(err, apperrors.ErrWithdrawalNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrWithdrawalNotCancellable):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
		logger.Log.Error("cancel withdrawal error", zap.Error(err))
	}
}
