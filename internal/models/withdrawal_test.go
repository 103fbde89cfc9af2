package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithdrawalStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from WithdrawalStatus
		to   WithdrawalStatus
		want bool
	}{
		{name: "pending to approved", from: WithdrawalPending, to: WithdrawalApproved, want: true},
		{name: "pending to rejected", from: WithdrawalPending, to: WithdrawalRejected, want: true},
		{name: "pending to cancelled", from: WithdrawalPending, to: WithdrawalCancelled, want: true},
		{name: "pending to processing", from: WithdrawalPending, to: WithdrawalProcessing, want: false},
		{name: "pending to completed", from: WithdrawalPending, to: WithdrawalCompleted, want: false},
		{name: "approved to processing", from: WithdrawalApproved, to: WithdrawalProcessing, want: true},
		{name: "approved to cancelled", from: WithdrawalApproved, to: WithdrawalCancelled, want: false},
		{name: "approved to completed", from: WithdrawalApproved, to: WithdrawalCompleted, want: false},
		{name: "processing to completed", from: WithdrawalProcessing, to: WithdrawalCompleted, want: true},
		{name: "processing falls back to approved", from: WithdrawalProcessing, to: WithdrawalApproved, want: true},
		{name: "processing to cancelled", from: WithdrawalProcessing, to: WithdrawalCancelled, want: false},
		{name: "completed is terminal", from: WithdrawalCompleted, to: WithdrawalApproved, want: false},
		{name: "rejected is terminal", from: WithdrawalRejected, to: WithdrawalPending, want: false},
		{name: "cancelled is terminal", from: WithdrawalCancelled, to: WithdrawalPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestWithdrawalStatus_Terminal(t *testing.T) {
	terminal := []WithdrawalStatus{WithdrawalCompleted, WithdrawalRejected, WithdrawalCancelled}
	for _, s := range terminal {
		assert.True(t, s.Terminal(), "%s should be terminal", s)
	}

	active := []WithdrawalStatus{WithdrawalPending, WithdrawalApproved, WithdrawalProcessing}
	for _, s := range active {
		assert.False(t, s.Terminal(), "%s should not be terminal", s)
	}
}

func TestWithdrawalStatus_Valid(t *testing.T) {
	assert.True(t, WithdrawalPending.Valid())
	assert.True(t, WithdrawalCompleted.Valid())
	assert.False(t, WithdrawalStatus("SHIPPED").Valid())
	assert.False(t, WithdrawalStatus("").Valid())
}

func TestPaymentMethod_Valid(t *testing.T) {
	assert.True(t, PaymentMethodBankTransfer.Valid())
	assert.True(t, PaymentMethodPayPal.Valid())
	assert.True(t, PaymentMethodStripe.Valid())
	assert.False(t, PaymentMethod("CASH").Valid())
	assert.False(t, PaymentMethod("").Valid())
}
