package services

import "errors"

var (
	// ErrMemberNotFound is returned when an operation references a member
	// id that does not exist.
	ErrMemberNotFound = errors.New("member not found")

	// ErrMembershipNotFound is returned when an operation references a
	// membership id that does not exist.
	ErrMembershipNotFound = errors.New("membership not found")

	// ErrMembershipExists is returned when creating a membership for a
	// member who already has one. A member holds at most one membership.
	ErrMembershipExists = errors.New("member already has a membership")

	// ErrInvalidAmount is returned for zero or negative monetary amounts.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrPaymentMismatch is returned when a payment names a membership
	// that does not belong to the named member.
	ErrPaymentMismatch = errors.New("membership does not belong to member")
)
