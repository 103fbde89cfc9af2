package models

import (
	"encoding/json"
	"time"
)

type WithdrawalStatus string

const (
	WithdrawalPending    WithdrawalStatus = "PENDING"
	WithdrawalApproved   WithdrawalStatus = "APPROVED"
	WithdrawalProcessing WithdrawalStatus = "PROCESSING"
	WithdrawalCompleted  WithdrawalStatus = "COMPLETED"
	WithdrawalRejected   WithdrawalStatus = "REJECTED"
	WithdrawalCancelled  WithdrawalStatus = "CANCELLED"
)

func (s WithdrawalStatus) Valid() bool {
	switch s {
	case WithdrawalPending, WithdrawalApproved, WithdrawalProcessing,
		WithdrawalCompleted, WithdrawalRejected, WithdrawalCancelled:
		return true
	}
	return false
}

// Terminal statuses release the reserved commissions and accept no
// further transitions.
func (s WithdrawalStatus) Terminal() bool {
	switch s {
	case WithdrawalCompleted, WithdrawalRejected, WithdrawalCancelled:
		return true
	}
	return false
}

// CanTransitionTo encodes the withdrawal lifecycle. PROCESSING may fall
// back to APPROVED when the payment gateway reports the payout failed.
func (s WithdrawalStatus) CanTransitionTo(next WithdrawalStatus) bool {
	switch s {
	case WithdrawalPending:
		return next == WithdrawalApproved || next == WithdrawalRejected || next == WithdrawalCancelled
	case WithdrawalApproved:
		return next == WithdrawalProcessing
	case WithdrawalProcessing:
		return next == WithdrawalCompleted || next == WithdrawalApproved
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodPayPal       PaymentMethod = "PAYPAL"
	PaymentMethodStripe       PaymentMethod = "STRIPE"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodBankTransfer, PaymentMethodPayPal, PaymentMethodStripe:
		return true
	}
	return false
}

type Withdrawal struct {
	ID              string           `json:"id" db:"id"`
	UserID          int64            `json:"-" db:"user_id"`
	Amount          Cents            `json:"amount" db:"amount_cents"`
	PaymentMethod   PaymentMethod    `json:"paymentMethod" db:"payment_method"`
	Status          WithdrawalStatus `json:"status" db:"status"`
	CommissionIDs   []string         `json:"commissionIds" db:"-"`
	PaymentDetails  json.RawMessage  `json:"paymentDetails,omitempty" db:"payment_details"`
	Notes           string           `json:"notes,omitempty" db:"notes"`
	RejectionReason string           `json:"rejectionReason,omitempty" db:"rejection_reason"`
	AdminNote       string           `json:"adminNote,omitempty" db:"admin_note"`
	DecidedBy       *int64           `json:"-" db:"decided_by"`
	DecidedAt       *time.Time       `json:"decidedAt,omitempty" db:"decided_at"`
	GatewayRef      string           `json:"-" db:"gateway_ref"`
	CreatedAt       time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time        `json:"updatedAt" db:"updated_at"`
}

type WithdrawalRequest struct {
	Amount         Cents           `json:"amount"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	CommissionIDs  []string        `json:"commissionIds"`
	PaymentDetails json.RawMessage `json:"paymentDetails,omitempty"`
	Notes          string          `json:"notes,omitempty"`
}

// WithdrawalBalance is recomputed from storage on every fetch, never
// persisted. AvailableBalance always equals the sum of the amounts in
// AvailableCommissions.
type WithdrawalBalance struct {
	AvailableBalance     Cents           `json:"availableBalance"`
	PendingBalance       Cents           `json:"pendingBalance"`
	TotalEarned          Cents           `json:"totalEarned"`
	TotalWithdrawn       Cents           `json:"totalWithdrawn"`
	AvailableCommissions []CommissionRef `json:"availableCommissions"`
}
