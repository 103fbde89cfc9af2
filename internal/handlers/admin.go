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

type approveRequest struct {
	Note string `json:"note"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

type createCommissionRequest struct {
	UserID      int64                   `json:"userId"`
	Amount      models.Cents            `json:"amount"`
	Currency    string                  `json:"currency,omitempty"`
	Type        models.CommissionType   `json:"type,omitempty"`
	Status      models.CommissionStatus `json:"status,omitempty"`
	Description string                  `json:"description,omitempty"`
}

func (h *Handler) AdminListWithdrawals(w http.ResponseWriter, r *http.Request) {
	status := models.WithdrawalStatus(r.URL.Query().Get("status"))

	withdrawals, err := h.withdrawalService.ListWithdrawals(r.Context(), status)
	switch {
	case err == nil:
		if withdrawals == nil {
			withdrawals = []models.Withdrawal{}
		}
		writeJSON(w, http.StatusOK, withdrawals)
	case errors.Is(err, apperrors.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
		logger.Log.Error("failed to list withdrawals", zap.Error(err))
	}
}

func (h *Handler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req approveRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid input")
			return
		}
	}

	withdrawal, err := h.withdrawalService.Approve(r.Context(), adminID, chi.URLParam(r, "id"), req.Note)
	h.writeDecision(w, withdrawal, err)
}

func (h *Handler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	withdrawal, err := h.withdrawalService.Reject(r.Context(), adminID, chi.URLParam(r, "id"), req.Reason)
	h.writeDecision(w, withdrawal, err)
}

func (h *Handler) ProcessWithdrawalPayment(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	withdrawal, err := h.withdrawalService.ProcessPayment(r.Context(), adminID, chi.URLParam(r, "id"))
	h.writeDecision(w, withdrawal, err)
}

func (h *Handler) writeDecision(w http.ResponseWriter, withdrawal *models.Withdrawal, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, withdrawal)
	case errors.Is(err, apperrors.ErrWithdrawalNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrRejectionReasonRequired):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrGatewayUnavailable):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
		logger.Log.Error("withdrawal decision error", zap.Error(err))
	}
}

func (h *Handler) CreateCommission(w http.ResponseWriter, r *http.Request) {
	var req createCommissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == 0 {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	commission := &models.Commission{
		UserID:      req.UserID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Type:        req.Type,
		Status:      req.Status,
		Description: req.Description,
	}

	err := h.commissionService.CreateCommission(r.Context(), commission)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, commission)
	case errors.Is(err, apperrors.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
		logger.Log.Error("create commission error", zap.Error(err))
	}
}
