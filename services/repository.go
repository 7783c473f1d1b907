package services

import (
	"fmt"
	"time"

	"churchpro-backend/models"
	"churchpro-backend/storage"
	"churchpro-backend/utils"

	"github.com/google/uuid"
)

// Repository owns durable CRUD for members, memberships and payments over
// an injected store. Collections are read and rewritten in full on every
// operation; fine at this data scale. It assumes a single writer — see the
// cascade note on DeleteMember.
type Repository struct {
	store storage.Store
	now   func() time.Time
}

func NewRepository(store storage.Store) *Repository {
	return &Repository{store: store, now: time.Now}
}

// WithClock replaces the repository's clock. Tests use this to pin "today".
func (r *Repository) WithClock(now func() time.Time) *Repository {
	r.now = now
	return r
}

// Members returns all members in insertion order.
func (r *Repository) Members() ([]models.Member, error) {
	var members []models.Member
	if err := r.store.Load(storage.CollectionMembers, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// Member returns the member with the given id, or ErrMemberNotFound.
func (r *Repository) Member(id uuid.UUID) (*models.Member, error) {
	members, err := r.Members()
	if err != nil {
		return nil, err
	}
	for i := range members {
		if members[i].ID == id {
			return &members[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, id)
}

// AddMember creates a member with a fresh id, JoinDate stamped to today
// and IsActive true. Field validation is the caller's job.
func (r *Repository) AddMember(input models.MemberInput) (*models.Member, error) {
	members, err := r.Members()
	if err != nil {
		return nil, err
	}

	member := models.Member{
		ID:          uuid.New(),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Phone:       input.Phone,
		DateOfBirth: input.DateOfBirth,
		Address:     input.Address,
		EmergencyContact: models.EmergencyContact{
			Name:         input.EmergencyContactName,
			Phone:        input.EmergencyContactPhone,
			Relationship: input.EmergencyContactRelationship,
		},
		JoinDate:   utils.BeginningOfDay(r.now()),
		IsActive:   true,
		MemberType: input.MemberType,
	}

	members = append(members, member)
	if err := r.store.Save(storage.CollectionMembers, members); err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateMember merges the non-nil fields of update into the stored member.
func (r *Repository) UpdateMember(id uuid.UUID, update models.MemberUpdate) (*models.Member, error) {
	members, err := r.Members()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range members {
		if members[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %s", ErrMemberNotFound, id)
	}

	m := &members[idx]
	if update.FirstName != nil {
		m.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		m.LastName = *update.LastName
	}
	if update.Email != nil {
		m.Email = *update.Email
	}
	if update.Phone != nil {
		m.Phone = *update.Phone
	}
	if update.DateOfBirth != nil {
		m.DateOfBirth = *update.DateOfBirth
	}
	if update.Address != nil {
		m.Address = *update.Address
	}
	if update.EmergencyContactName != nil {
		m.EmergencyContact.Name = *update.EmergencyContactName
	}
	if update.EmergencyContactPhone != nil {
		m.EmergencyContact.Phone = *update.EmergencyContactPhone
	}
	if update.EmergencyContactRelationship != nil {
		m.EmergencyContact.Relationship = *update.EmergencyContactRelationship
	}
	if update.IsActive != nil {
		m.IsActive = *update.IsActive
	}
	if update.MemberType != nil {
		m.MemberType = *update.MemberType
	}

	if err := r.store.Save(storage.CollectionMembers, members); err != nil {
		return nil, err
	}
	return m, nil
}

// DeactivateMember marks a member inactive. Idempotent.
func (r *Repository) DeactivateMember(id uuid.UUID) (*models.Member, error) {
	inactive := false
	return r.UpdateMember(id, models.MemberUpdate{IsActive: &inactive})
}

// ReactivateMember marks a member active again. Idempotent.
func (r *Repository) ReactivateMember(id uuid.UUID) (*models.Member, error) {
	active := true
	return r.UpdateMember(id, models.MemberUpdate{IsActive: &active})
}

// DeleteMember removes a member together with their memberships and
// payments. All three collections are loaded up front so a load failure
// aborts before anything is written. The three saves themselves are not
// transactional: a crash between them can leave orphans (single-writer,
// local-store tradeoff). Dependents are written first so a partial delete
// never leaves a payment pointing at a removed member.
func (r *Repository) DeleteMember(id uuid.UUID) error {
	members, err := r.Members()
	if err != nil {
		return err
	}
	memberships, err := r.Memberships()
	if err != nil {
		return err
	}
	payments, err := r.Payments()
	if err != nil {
		return err
	}

	idx := -1
	for i := range members {
		if members[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: %s", ErrMemberNotFound, id)
	}

	members = append(members[:idx], members[idx+1:]...)

	keptMemberships := memberships[:0]
	for _, ms := range memberships {
		if ms.MemberID != id {
			keptMemberships = append(keptMemberships, ms)
		}
	}
	keptPayments := payments[:0]
	for _, p := range payments {
		if p.MemberID != id {
			keptPayments = append(keptPayments, p)
		}
	}

	if err := r.store.Save(storage.CollectionPayments, keptPayments); err != nil {
		return err
	}
	if err := r.store.Save(storage.CollectionMemberships, keptMemberships); err != nil {
		return err
	}
	return r.store.Save(storage.CollectionMembers, members)
}

// Memberships returns all memberships in insertion order.
func (r *Repository) Memberships() ([]models.Membership, error) {
	var memberships []models.Membership
	if err := r.store.Load(storage.CollectionMemberships, &memberships); err != nil {
		return nil, err
	}
	return memberships, nil
}

// MembershipByMemberID returns the member's membership, or
// ErrMembershipNotFound when they have none.
func (r *Repository) MembershipByMemberID(memberID uuid.UUID) (*models.Membership, error) {
	memberships, err := r.Memberships()
	if err != nil {
		return nil, err
	}
	for i := range memberships {
		if memberships[i].MemberID == memberID {
			return &memberships[i], nil
		}
	}
	return nil, fmt.Errorf("%w: member %s", ErrMembershipNotFound, memberID)
}

// CreateMembership starts a one-month term for the member beginning today.
// A member holds at most one membership; a second creation is rejected.
func (r *Repository) CreateMembership(memberID uuid.UUID, monthlyAmount float64) (*models.Membership, error) {
	if monthlyAmount <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := r.Member(memberID); err != nil {
		return nil, err
	}

	memberships, err := r.Memberships()
	if err != nil {
		return nil, err
	}
	for _, ms := range memberships {
		if ms.MemberID == memberID {
			return nil, fmt.Errorf("%w: member %s", ErrMembershipExists, memberID)
		}
	}

	startDate := utils.BeginningOfDay(r.now())
	endDate := utils.AddMonths(startDate, 1)

	membership := models.Membership{
		ID:            uuid.New(),
		MemberID:      memberID,
		StartDate:     startDate,
		EndDate:       endDate,
		MonthlyAmount: monthlyAmount,
		Status:        models.MembershipActive,
		RenewalDate:   endDate,
	}

	memberships = append(memberships, membership)
	if err := r.store.Save(storage.CollectionMemberships, memberships); err != nil {
		return nil, err
	}
	return &membership, nil
}

// Payments returns all payments in insertion order.
func (r *Repository) Payments() ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.store.Load(storage.CollectionPayments, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// PaymentsByMemberID returns the member's payments in insertion order.
func (r *Repository) PaymentsByMemberID(memberID uuid.UUID) ([]models.Payment, error) {
	payments, err := r.Payments()
	if err != nil {
		return nil, err
	}
	matched := make([]models.Payment, 0)
	for _, p := range payments {
		if p.MemberID == memberID {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// MembersWithMemberships returns every member joined with their membership,
// nil where none exists yet.
func (r *Repository) MembersWithMemberships() ([]models.MemberOverview, error) {
	members, err := r.Members()
	if err != nil {
		return nil, err
	}
	memberships, err := r.Memberships()
	if err != nil {
		return nil, err
	}

	byMember := make(map[uuid.UUID]*models.Membership, len(memberships))
	for i := range memberships {
		if _, ok := byMember[memberships[i].MemberID]; !ok {
			byMember[memberships[i].MemberID] = &memberships[i]
		}
	}

	overview := make([]models.MemberOverview, 0, len(members))
	for _, m := range members {
		overview = append(overview, models.MemberOverview{
			Member:     m,
			Membership: byMember[m.ID],
		})
	}
	return overview, nil
}
