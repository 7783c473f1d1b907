package models

import (
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentCheck        PaymentMethod = "check"
)

type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment records funds received against a membership. MemberID is
// denormalized alongside MembershipID for query convenience.
type Payment struct {
	ID            uuid.UUID     `json:"id"`
	MembershipID  uuid.UUID     `json:"membershipId"`
	MemberID      uuid.UUID     `json:"memberId"`
	Amount        float64       `json:"amount"`
	PaymentDate   time.Time     `json:"paymentDate"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Status        PaymentStatus `json:"status"`
	Notes         string        `json:"notes,omitempty"`
}

// PaymentInput carries the caller-supplied fields for recording a payment.
type PaymentInput struct {
	Amount        float64       `json:"amount" binding:"required,gt=0"`
	PaymentMethod PaymentMethod `json:"paymentMethod" binding:"required,oneof=cash card bank_transfer check"`
	Notes         string        `json:"notes"`
}
