package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hrm8/hrm8-backend/internal/apperrors"
	"github.com/hrm8/hrm8-backend/internal/logger"
	"github.com/hrm8/hrm8-backend/internal/models"
	"go.uber.org/zap"
)

type registerRequest struct {
	Login    string          `json:"login"`
	Password string          `json:"password"`
	Role     models.UserRole `json:"role"`
}

type authRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
	Role  models.UserRole `json:"role"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Login == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	err := h.userService.Register(r.Context(), req.Login, req.Password, req.Role)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrUserAlreadyExists):
		writeError(w, http.StatusConflict, err.Error())
		return
	case errors.Is(err, apperrors.ErrInvalidRole):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
		logger.Log.Error("register failed", zap.Error(err))
		return
	}

	h.issueToken(w, r, req.Login)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req authRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Login == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if err := h.userService.Authenticate(r.Context(), req.Login, req.Password); err != nil {
		writeError(w, http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error())
		return
	}

	h.issueToken(w, r, req.Login)
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, login string) {
	user, err := h.userService.GetUserByLogin(r.Context(), login)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		logger.Log.Error("get user failed", zap.Error(err))
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString([]byte(h.secretKey))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not create token")
		return
	}

	w.Header().Set("Authorization", "Bearer "+tokenString)
	writeJSON(w, http.StatusOK, authResponse{Token: tokenString, Role: user.Role})
}
