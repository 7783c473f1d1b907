package services

import (
	"fmt"
	"time"

	"churchpro-backend/models"
	"churchpro-backend/storage"
	"churchpro-backend/utils"

	"github.com/google/uuid"
)

// Lifecycle derives membership status from the calendar and handles
// renewal, either directly or as the side effect of a recorded payment.
// Statuses are refreshed lazily on read; there is no background clock.
type Lifecycle struct {
	repo *Repository
}

func NewLifecycle(repo *Repository) *Lifecycle {
	return &Lifecycle{repo: repo}
}

// RefreshStatuses flips every active membership whose end date has passed
// to expired. Idempotent; the collection is only rewritten when something
// actually changed. Status never moves from expired back to active here —
// only a renewal does that.
func (l *Lifecycle) RefreshStatuses(now time.Time) error {
	memberships, err := l.repo.Memberships()
	if err != nil {
		return err
	}

	changed := false
	for i := range memberships {
		if memberships[i].Status == models.MembershipActive && memberships[i].EndDate.Before(now) {
			memberships[i].Status = models.MembershipExpired
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return l.repo.store.Save(storage.CollectionMemberships, memberships)
}

// RenewMembership pushes the membership's end and renewal dates one month
// past now and resets the status to active, whatever it was before.
// Renewing an expired membership reactivates it.
func (l *Lifecycle) RenewMembership(membershipID uuid.UUID, now time.Time) (*models.Membership, error) {
	memberships, err := l.repo.Memberships()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range memberships {
		if memberships[i].ID == membershipID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrMembershipNotFound, membershipID)
	}

	newEnd := utils.AddMonths(utils.BeginningOfDay(now), 1)
	memberships[idx].EndDate = newEnd
	memberships[idx].RenewalDate = newEnd
	memberships[idx].Status = models.MembershipActive

	if err := l.repo.store.Save(storage.CollectionMemberships, memberships); err != nil {
		return nil, err
	}
	return &memberships[idx], nil
}

// RecordPayment stores a completed payment and renews the membership as a
// mandatory side effect. The amount is informational only: any positive
// amount buys a full month, there is no proration and no check against the
// membership's monthly rate. If the renewal cannot be written the payment
// is rolled back so no "paid but not renewed" state survives.
func (l *Lifecycle) RecordPayment(membershipID, memberID uuid.UUID, input models.PaymentInput, now time.Time) (*models.Payment, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	membership, err := l.repo.MembershipByMemberID(memberID)
	if err != nil {
		return nil, err
	}
	if membership.ID != membershipID {
		return nil, fmt.Errorf("%w: membership %s, member %s", ErrPaymentMismatch, membershipID, memberID)
	}

	payments, err := l.repo.Payments()
	if err != nil {
		return nil, err
	}

	payment := models.Payment{
		ID:            uuid.New(),
		MembershipID:  membershipID,
		MemberID:      memberID,
		Amount:        input.Amount,
		PaymentDate:   utils.BeginningOfDay(now),
		PaymentMethod: input.PaymentMethod,
		Status:        models.PaymentCompleted,
		Notes:         input.Notes,
	}

	withPayment := append(payments, payment)
	if err := l.repo.store.Save(storage.CollectionPayments, withPayment); err != nil {
		return nil, err
	}

	if _, err := l.RenewMembership(membershipID, now); err != nil {
		// Undo the payment so the combined operation fails as a unit.
		if rbErr := l.repo.store.Save(storage.CollectionPayments, payments); rbErr != nil {
			return nil, fmt.Errorf("renewal failed (%w), payment rollback also failed: %v", err, rbErr)
		}
		return nil, fmt.Errorf("payment rolled back, renewal failed: %w", err)
	}

	return &payment, nil
}
