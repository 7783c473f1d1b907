package services

import (
	"errors"
	"testing"
	"time"

	"churchpro-backend/models"
	"churchpro-backend/storage"
	"churchpro-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMembership(t *testing.T, now time.Time) (*Repository, *Lifecycle, *models.Member, *models.Membership) {
	t.Helper()
	repo, _ := newTestRepo(now)
	lifecycle := NewLifecycle(repo)

	member, err := repo.AddMember(sampleInput("John"))
	require.NoError(t, err)
	membership, err := repo.CreateMembership(member.ID, 50)
	require.NoError(t, err)

	return repo, lifecycle, member, membership
}

func TestRefreshStatusesFlipsLapsedMemberships(t *testing.T) {
	created := fixedDate(2026, time.September, 1)
	repo, lifecycle, member, _ := setupMembership(t, created)

	// Day before the end date: nothing changes.
	require.NoError(t, lifecycle.RefreshStatuses(fixedDate(2026, time.September, 30)))
	ms, err := repo.MembershipByMemberID(member.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MembershipActive, ms.Status)

	// Past the end date: active flips to expired.
	after := fixedDate(2026, time.October, 5)
	require.NoError(t, lifecycle.RefreshStatuses(after))
	ms, err = repo.MembershipByMemberID(member.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MembershipExpired, ms.Status)

	// Idempotent: a second pass with the same clock changes nothing.
	require.NoError(t, lifecycle.RefreshStatuses(after))
	again, err := repo.MembershipByMemberID(member.ID)
	require.NoError(t, err)
	assert.Equal(t, ms.Status, again.Status)
	assert.True(t, again.EndDate.Equal(ms.EndDate))
	assert.True(t, again.RenewalDate.Equal(ms.RenewalDate))
}

func TestRenewMembershipFromActive(t *testing.T) {
	created := fixedDate(2026, time.September, 1)
	repo, lifecycle, member, membership := setupMembership(t, created)

	renewedAt := fixedDate(2026, time.September, 20)
	renewed, err := lifecycle.RenewMembership(membership.ID, renewedAt)
	require.NoError(t, err)

	wantEnd := utils.AddMonths(utils.BeginningOfDay(renewedAt), 1)
	assert.True(t, renewed.EndDate.Equal(wantEnd))
	assert.True(t, renewed.RenewalDate.Equal(wantEnd))
	assert.Equal(t, models.MembershipActive, renewed.Status)

	persisted, err := repo.MembershipByMemberID(member.ID)
	require.NoError(t, err)
	assert.True(t, persisted.EndDate.Equal(wantEnd))
}

func TestRenewMembershipReactivatesExpired(t *testing.T) {
	created := fixedDate(2026, time.September, 1)
	_, lifecycle, _, membership := setupMembership(t, created)

	lapsed := fixedDate(2026, time.November, 15)
	require.NoError(t, lifecycle.RefreshStatuses(lapsed))

	renewed, err := lifecycle.RenewMembership(membership.ID, lapsed)
	require.NoError(t, err)
	assert.Equal(t, models.MembershipActive, renewed.Status)
	assert.True(t, renewed.EndDate.Equal(utils.AddMonths(utils.BeginningOfDay(lapsed), 1)))
}

func TestRenewMembershipNotFound(t *testing.T) {
	_, lifecycle, _, _ := setupMembership(t, fixedDate(2026, time.September, 1))

	_, err := lifecycle.RenewMembership(uuid.New(), time.Now())
	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func TestRecordPaymentRenewsMembership(t *testing.T) {
	for _, expired := range []bool{false, true} {
		name := "from active"
		if expired {
			name = "from expired"
		}
		t.Run(name, func(t *testing.T) {
			created := fixedDate(2026, time.September, 1)
			repo, lifecycle, member, membership := setupMembership(t, created)

			paidAt := fixedDate(2026, time.October, 10)
			if expired {
				require.NoError(t, lifecycle.RefreshStatuses(paidAt))
				ms, err := repo.MembershipByMemberID(member.ID)
				require.NoError(t, err)
				require.Equal(t, models.MembershipExpired, ms.Status)
			}

			payment, err := lifecycle.RecordPayment(membership.ID, member.ID, models.PaymentInput{
				Amount:        50,
				PaymentMethod: models.PaymentCash,
				Notes:         "September dues",
			}, paidAt)
			require.NoError(t, err)

			assert.Equal(t, models.PaymentCompleted, payment.Status)
			assert.Equal(t, 50.0, payment.Amount)
			assert.True(t, payment.PaymentDate.Equal(utils.BeginningOfDay(paidAt)))

			ms, err := repo.MembershipByMemberID(member.ID)
			require.NoError(t, err)
			wantRenewal := utils.AddMonths(utils.BeginningOfDay(paidAt), 1)
			assert.Equal(t, models.MembershipActive, ms.Status)
			assert.True(t, ms.RenewalDate.Equal(wantRenewal))
			assert.True(t, ms.EndDate.Equal(wantRenewal))
		})
	}
}

func TestRecordPaymentAnyAmountBuysFullMonth(t *testing.T) {
	created := fixedDate(2026, time.September, 1)
	repo, lifecycle, member, membership := setupMembership(t, created)

	// 10 does not match the 50 monthly rate; the renewal happens anyway.
	paidAt := fixedDate(2026, time.September, 15)
	_, err := lifecycle.RecordPayment(membership.ID, member.ID, models.PaymentInput{
		Amount: 10, PaymentMethod: models.PaymentCheck,
	}, paidAt)
	require.NoError(t, err)

	ms, err := repo.MembershipByMemberID(member.ID)
	require.NoError(t, err)
	assert.True(t, ms.EndDate.Equal(utils.AddMonths(utils.BeginningOfDay(paidAt), 1)))
}

func TestRecordPaymentValidation(t *testing.T) {
	created := fixedDate(2026, time.September, 1)
	repo, lifecycle, member, membership := setupMembership(t, created)

	_, err := lifecycle.RecordPayment(membership.ID, member.ID, models.PaymentInput{
		Amount: 0, PaymentMethod: models.PaymentCash,
	}, created)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	// A membership id that is not the member's own membership.
	other, err := repo.AddMember(sampleInput("Mary"))
	require.NoError(t, err)
	otherMembership, err := repo.CreateMembership(other.ID, 60)
	require.NoError(t, err)

	_, err = lifecycle.RecordPayment(otherMembership.ID, member.ID, models.PaymentInput{
		Amount: 50, PaymentMethod: models.PaymentCash,
	}, created)
	assert.ErrorIs(t, err, ErrPaymentMismatch)

	_, err = lifecycle.RecordPayment(membership.ID, uuid.New(), models.PaymentInput{
		Amount: 50, PaymentMethod: models.PaymentCash,
	}, created)
	assert.ErrorIs(t, err, ErrMembershipNotFound)

	// None of the failures left a payment behind.
	payments, err := repo.Payments()
	require.NoError(t, err)
	assert.Empty(t, payments)
}

// failingStore wraps a store and fails saves to one collection after a
// number of successful writes, to exercise the payment rollback path.
type failingStore struct {
	storage.Store
	failCollection string
	allowed        int
}

func (f *failingStore) Save(collection string, v any) error {
	if collection == f.failCollection {
		if f.allowed <= 0 {
			return errors.New("disk full")
		}
		f.allowed--
	}
	return f.Store.Save(collection, v)
}

func TestRecordPaymentRollsBackWhenRenewalFails(t *testing.T) {
	created := fixedDate(2026, time.September, 1)
	inner := storage.NewMemoryStore()
	// Allow the membership creation write, fail the renewal write.
	store := &failingStore{Store: inner, failCollection: storage.CollectionMemberships, allowed: 1}

	clock := &testClock{current: created}
	repo := NewRepository(store).WithClock(clock.Now)
	lifecycle := NewLifecycle(repo)

	member, err := repo.AddMember(sampleInput("John"))
	require.NoError(t, err)
	membership, err := repo.CreateMembership(member.ID, 50)
	require.NoError(t, err)

	_, err = lifecycle.RecordPayment(membership.ID, member.ID, models.PaymentInput{
		Amount: 50, PaymentMethod: models.PaymentCash,
	}, created)
	require.Error(t, err)

	// No observable "paid but not renewed" state.
	payments, err := repo.Payments()
	require.NoError(t, err)
	assert.Empty(t, payments)

	ms, err := repo.MembershipByMemberID(member.ID)
	require.NoError(t, err)
	assert.True(t, ms.EndDate.Equal(membership.EndDate))
}
