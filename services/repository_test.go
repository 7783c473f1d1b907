package services

import (
	"testing"
	"time"

	"churchpro-backend/models"
	"churchpro-backend/storage"
	"churchpro-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.Local)
}

// testClock is a settable wall clock for pinning "today" in tests.
type testClock struct {
	current time.Time
}

func (c *testClock) Now() time.Time { return c.current }

func newTestRepo(now time.Time) (*Repository, *testClock) {
	clock := &testClock{current: now}
	repo := NewRepository(storage.NewMemoryStore()).WithClock(clock.Now)
	return repo, clock
}

func sampleInput(first string) models.MemberInput {
	return models.MemberInput{
		FirstName:                    first,
		LastName:                     "Doe",
		Phone:                        "+1234567890",
		DateOfBirth:                  "1980-05-15",
		Address:                      "123 Church St",
		EmergencyContactName:         "Jane Doe",
		EmergencyContactPhone:        "+1234567891",
		EmergencyContactRelationship: "Spouse",
		MemberType:                   models.MemberTypeFulltime,
	}
}

func TestAddMemberRoundTrip(t *testing.T) {
	now := fixedDate(2026, time.September, 1)
	repo, _ := newTestRepo(now)

	input := sampleInput("John")
	created, err := repo.AddMember(input)
	require.NoError(t, err)

	got, err := repo.Member(created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, input.FirstName, got.FirstName)
	assert.Equal(t, input.LastName, got.LastName)
	assert.Equal(t, input.Phone, got.Phone)
	assert.Equal(t, input.Address, got.Address)
	assert.Equal(t, input.EmergencyContactName, got.EmergencyContact.Name)
	assert.Equal(t, input.MemberType, got.MemberType)
	assert.True(t, got.IsActive)
	assert.True(t, got.JoinDate.Equal(utils.BeginningOfDay(now)))
}

func TestMembersKeepInsertionOrder(t *testing.T) {
	repo, _ := newTestRepo(fixedDate(2026, time.September, 1))

	names := []string{"John", "Mary", "Paul"}
	for _, n := range names {
		_, err := repo.AddMember(sampleInput(n))
		require.NoError(t, err)
	}

	members, err := repo.Members()
	require.NoError(t, err)
	require.Len(t, members, 3)
	for i, n := range names {
		assert.Equal(t, n, members[i].FirstName)
	}
}

func TestUpdateMemberPartialMerge(t *testing.T) {
	repo, _ := newTestRepo(fixedDate(2026, time.September, 1))
	created, err := repo.AddMember(sampleInput("John"))
	require.NoError(t, err)

	phone := "+19998887777"
	updated, err := repo.UpdateMember(created.ID, models.MemberUpdate{Phone: &phone})
	require.NoError(t, err)

	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "John", updated.FirstName) // untouched
	assert.True(t, updated.JoinDate.Equal(created.JoinDate))
}

func TestUpdateMemberNotFound(t *testing.T) {
	repo, _ := newTestRepo(fixedDate(2026, time.September, 1))

	_, err := repo.UpdateMember(uuid.New(), models.MemberUpdate{})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestDeactivateReactivateIdempotent(t *testing.T) {
	repo, _ := newTestRepo(fixedDate(2026, time.September, 1))
	created, err := repo.AddMember(sampleInput("John"))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		m, err := repo.DeactivateMember(created.ID)
		require.NoError(t, err)
		assert.False(t, m.IsActive)
	}

	m, err := repo.ReactivateMember(created.ID)
	require.NoError(t, err)
	assert.True(t, m.IsActive)
}

func TestDeleteMemberCascades(t *testing.T) {
	now := fixedDate(2026, time.September, 1)
	repo, _ := newTestRepo(now)
	lifecycle := NewLifecycle(repo)

	member, err := repo.AddMember(sampleInput("John"))
	require.NoError(t, err)
	other, err := repo.AddMember(sampleInput("Mary"))
	require.NoError(t, err)

	membership, err := repo.CreateMembership(member.ID, 50)
	require.NoError(t, err)
	otherMembership, err := repo.CreateMembership(other.ID, 75)
	require.NoError(t, err)

	_, err = lifecycle.RecordPayment(membership.ID, member.ID, models.PaymentInput{
		Amount: 50, PaymentMethod: models.PaymentCash,
	}, now)
	require.NoError(t, err)
	_, err = lifecycle.RecordPayment(otherMembership.ID, other.ID, models.PaymentInput{
		Amount: 75, PaymentMethod: models.PaymentCard,
	}, now)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteMember(member.ID))

	_, err = repo.Member(member.ID)
	assert.ErrorIs(t, err, ErrMemberNotFound)
	_, err = repo.MembershipByMemberID(member.ID)
	assert.ErrorIs(t, err, ErrMembershipNotFound)

	payments, err := repo.Payments()
	require.NoError(t, err)
	for _, p := range payments {
		assert.NotEqual(t, member.ID, p.MemberID)
	}

	// The other member's records survive untouched.
	_, err = repo.Member(other.ID)
	require.NoError(t, err)
	_, err = repo.MembershipByMemberID(other.ID)
	require.NoError(t, err)
	otherPayments, err := repo.PaymentsByMemberID(other.ID)
	require.NoError(t, err)
	assert.Len(t, otherPayments, 1)
}

func TestDeleteMemberNotFound(t *testing.T) {
	repo, _ := newTestRepo(fixedDate(2026, time.September, 1))
	assert.ErrorIs(t, repo.DeleteMember(uuid.New()), ErrMemberNotFound)
}

func TestCreateMembershipOneMonthTerm(t *testing.T) {
	now := fixedDate(2026, time.September, 1)
	repo, _ := newTestRepo(now)
	member, err := repo.AddMember(sampleInput("John"))
	require.NoError(t, err)

	created, err := repo.CreateMembership(member.ID, 50)
	require.NoError(t, err)

	got, err := repo.MembershipByMemberID(member.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, models.MembershipActive, got.Status)
	assert.True(t, got.StartDate.Equal(utils.BeginningOfDay(now)))
	assert.True(t, got.EndDate.Equal(utils.AddMonths(utils.BeginningOfDay(now), 1)))
	assert.True(t, got.RenewalDate.Equal(got.EndDate))
	assert.Equal(t, 50.0, got.MonthlyAmount)
}

func TestCreateMembershipRejectsSecond(t *testing.T) {
	repo, _ := newTestRepo(fixedDate(2026, time.September, 1))
	member, err := repo.AddMember(sampleInput("John"))
	require.NoError(t, err)

	_, err = repo.CreateMembership(member.ID, 50)
	require.NoError(t, err)

	_, err = repo.CreateMembership(member.ID, 60)
	assert.ErrorIs(t, err, ErrMembershipExists)
}

func TestCreateMembershipValidation(t *testing.T) {
	repo, _ := newTestRepo(fixedDate(2026, time.September, 1))
	member, err := repo.AddMember(sampleInput("John"))
	require.NoError(t, err)

	_, err = repo.CreateMembership(member.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = repo.CreateMembership(member.ID, -10)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = repo.CreateMembership(uuid.New(), 50)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestMembersWithMemberships(t *testing.T) {
	repo, _ := newTestRepo(fixedDate(2026, time.September, 1))

	withTerm, err := repo.AddMember(sampleInput("John"))
	require.NoError(t, err)
	withoutTerm, err := repo.AddMember(sampleInput("Mary"))
	require.NoError(t, err)

	_, err = repo.CreateMembership(withTerm.ID, 50)
	require.NoError(t, err)

	overview, err := repo.MembersWithMemberships()
	require.NoError(t, err)
	require.Len(t, overview, 2)

	assert.Equal(t, withTerm.ID, overview[0].ID)
	require.NotNil(t, overview[0].Membership)
	assert.Equal(t, withTerm.ID, overview[0].Membership.MemberID)

	assert.Equal(t, withoutTerm.ID, overview[1].ID)
	assert.Nil(t, overview[1].Membership)
}
