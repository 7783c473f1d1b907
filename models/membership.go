package models

import (
	"time"

	"github.com/google/uuid"
)

type MembershipStatus string

const (
	MembershipActive  MembershipStatus = "active"
	MembershipExpired MembershipStatus = "expired"
	MembershipPending MembershipStatus = "pending"
)

// Membership is a renewable one-month paid term belonging to one member.
// Status is derived from EndDate against the clock; RenewalDate always
// equals EndDate.
type Membership struct {
	ID            uuid.UUID        `json:"id"`
	MemberID      uuid.UUID        `json:"memberId"`
	StartDate     time.Time        `json:"startDate"`
	EndDate       time.Time        `json:"endDate"`
	MonthlyAmount float64          `json:"monthlyAmount"`
	Status        MembershipStatus `json:"status"`
	RenewalDate   time.Time        `json:"renewalDate"`
}
