package services

import (
	"time"

	"churchpro-backend/models"
	"churchpro-backend/utils"
)

// Stats computes the weekly dashboard snapshot. Nothing is cached; every
// call recomputes from the full collections.
type Stats struct {
	repo      *Repository
	lifecycle *Lifecycle
	now       func() time.Time
}

func NewStats(repo *Repository, lifecycle *Lifecycle) *Stats {
	return &Stats{repo: repo, lifecycle: lifecycle, now: time.Now}
}

// WithClock replaces the wall clock used for status refresh. Tests use it.
func (s *Stats) WithClock(now func() time.Time) *Stats {
	s.now = now
	return s
}

// Weekly aggregates the Monday..Sunday week containing reference into a
// WeeklyStats record. Statuses are refreshed against the real current time
// first, not against reference: browsing a past or future week never
// pretends the clock moved.
func (s *Stats) Weekly(reference time.Time) (*models.WeeklyStats, error) {
	weekStart := utils.StartOfWeek(reference)
	weekEnd := utils.EndOfWeek(reference)

	if err := s.lifecycle.RefreshStatuses(s.now()); err != nil {
		return nil, err
	}

	members, err := s.repo.Members()
	if err != nil {
		return nil, err
	}
	memberships, err := s.repo.Memberships()
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.Payments()
	if err != nil {
		return nil, err
	}

	stats := models.WeeklyStats{TotalMembers: len(members)}

	for _, m := range members {
		if m.IsActive {
			stats.ActiveMembers++
		} else {
			stats.InactiveMembers++
		}
		switch m.MemberType {
		case models.MemberTypeFulltime:
			stats.FulltimeMembers++
		case models.MemberTypeOnetime:
			stats.OnetimeMembers++
		}
		if utils.WithinInterval(m.JoinDate, weekStart, weekEnd) {
			stats.NewMembers++
		}
	}

	for _, ms := range memberships {
		switch ms.Status {
		case models.MembershipActive:
			stats.ActiveMemberships++
			if utils.WithinInterval(ms.RenewalDate, weekStart, weekEnd) {
				stats.PendingRenewals++
			}
		case models.MembershipExpired:
			stats.ExpiredMemberships++
		}
	}

	for _, p := range payments {
		if p.Status == models.PaymentCompleted && utils.WithinInterval(p.PaymentDate, weekStart, weekEnd) {
			stats.TotalRevenue += p.Amount
		}
	}

	return &stats, nil
}
