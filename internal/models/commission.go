package models

import "time"

type CommissionStatus string

const (
	CommissionPending   CommissionStatus = "PENDING"
	CommissionConfirmed CommissionStatus = "CONFIRMED"
	CommissionPaid      CommissionStatus = "PAID"
	CommissionCancelled CommissionStatus = "CANCELLED"
)

func (s CommissionStatus) Valid() bool {
	switch s {
	case CommissionPending, CommissionConfirmed, CommissionPaid, CommissionCancelled:
		return true
	}
	return false
}

type CommissionType string

const (
	CommissionTypePlacement CommissionType = "placement"
	CommissionTypeSales     CommissionType = "sales"
	CommissionTypeReferral  CommissionType = "referral"
	CommissionTypeBonus     CommissionType = "bonus"
)

type Commission struct {
	ID          string           `json:"id" db:"id"`
	UserID      int64            `json:"-" db:"user_id"`
	Amount      Cents            `json:"amount" db:"amount_cents"`
	Currency    string           `json:"currency" db:"currency"`
	Type        CommissionType   `json:"type" db:"type"`
	Status      CommissionStatus `json:"status" db:"status"`
	Description string           `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time        `json:"createdAt" db:"created_at"`
}

// CommissionRef is the slice of a commission exposed in the balance
// snapshot's availableCommissions list.
type CommissionRef struct {
	ID          string    `json:"id"`
	Amount      Cents     `json:"amount"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
