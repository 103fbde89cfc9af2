package apperrors

import "errors"

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidAuthHeader  = errors.New("invalid or missing Authorization header")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidRole        = errors.New("invalid user role")
	ErrForbidden          = errors.New("forbidden")

	ErrEmptySelection          = errors.New("at least one commission must be selected")
	ErrInvalidWithdrawalAmount = errors.New("withdrawal amount must be positive")
	ErrAmountMismatch          = errors.New("amount does not match the selected commissions")
	ErrInsufficientFunds       = errors.New("insufficient available balance")
	ErrInvalidPaymentMethod    = errors.New("unsupported payment method")
	ErrInvalidPaymentDetails   = errors.New("missing or invalid payment details")

	ErrCommissionNotFound    = errors.New("commission not found")
	ErrCommissionNotEligible = errors.New("commission is not eligible for withdrawal")
	ErrCommissionReserved    = errors.New("commission is already reserved by another withdrawal")

	ErrWithdrawalNotFound       = errors.New("withdrawal not found")
	ErrWithdrawalNotCancellable = errors.New("withdrawal can only be cancelled while pending")
	ErrInvalidTransition        = errors.New("withdrawal status transition is not permitted")
	ErrRejectionReasonRequired  = errors.New("rejection reason is required")
	ErrGatewayUnavailable       = errors.New("payment gateway unavailable")
)
