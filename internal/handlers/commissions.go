package handlers

import (
	"net/http"

	"github.com/hrm8/hrm8-backend/internal/logger"
	"github.com/hrm8/hrm8-backend/internal/middleware"
	"github.com/hrm8/hrm8-backend/internal/models"
	"go.uber.org/zap"
)

func (h *Handler) GetCommissions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	commissions, err := h.commissionService.GetUserCommissions(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		logger.Log.Error("failed to get commissions", zap.Error(err))
		return
	}

	if commissions == nil {
		commissions = []models.Commission{}
	}
	writeJSON(w, http.StatusOK, commissions)
}
