// services/reminder_service.go
package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"churchpro-backend/models"
	"churchpro-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ReminderService nudges members whose membership comes up for renewal in
// the next seven days. Messages go out via Twilio, over WhatsApp when the
// member's phone is in E.164 format, SMS otherwise.
type ReminderService struct {
	repo   *Repository
	client *twilio.RestClient
}

func NewReminderService(repo *Repository) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		repo: repo,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// Enabled reports whether Twilio credentials are configured. Without them
// the scheduler is never started.
func (s *ReminderService) Enabled() bool {
	return os.Getenv("TWILIO_ACCOUNT_SID") != "" && os.Getenv("TWILIO_AUTH_TOKEN") != ""
}

// StartScheduler runs the renewal pass every day at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 9 * * *", func() {
		s.SendRenewalReminders(time.Now())
	})

	c.Start()
	log.Info().Msg("renewal reminder scheduler started")
}

// SendRenewalReminders messages every member with an active membership
// whose renewal date falls within the next seven days of now.
func (s *ReminderService) SendRenewalReminders(now time.Time) {
	log.Info().Msg("starting renewal reminder processing")

	due, err := s.upcomingRenewals(now)
	if err != nil {
		log.Error().Err(err).Msg("failed to collect upcoming renewals")
		return
	}

	for _, ms := range due {
		member, err := s.repo.Member(ms.MemberID)
		if err != nil {
			log.Error().Err(err).Str("membershipId", ms.ID.String()).Msg("member lookup failed")
			continue
		}
		if !member.IsActive {
			continue
		}
		s.sendReminder(member, &ms)
	}

	log.Info().Int("memberships", len(due)).Msg("renewal reminder processing completed")
}

// upcomingRenewals returns active memberships with a renewal date inside
// [today, today+7d].
func (s *ReminderService) upcomingRenewals(now time.Time) ([]models.Membership, error) {
	memberships, err := s.repo.Memberships()
	if err != nil {
		return nil, err
	}

	windowStart := utils.BeginningOfDay(now)
	windowEnd := windowStart.AddDate(0, 0, 7)

	var due []models.Membership
	for _, ms := range memberships {
		if ms.Status != models.MembershipActive {
			continue
		}
		if utils.WithinInterval(ms.RenewalDate, windowStart, windowEnd) {
			due = append(due, ms)
		}
	}
	return due, nil
}

func (s *ReminderService) sendReminder(member *models.Member, ms *models.Membership) {
	message := fmt.Sprintf(
		"Hi %s, your membership is due for renewal on %s. Monthly amount: %.2f.",
		member.FirstName, ms.RenewalDate.Format("Jan 02, 2006"), ms.MonthlyAmount,
	)

	// WhatsApp when the phone is in E.164 format, SMS otherwise.
	channel := "sms"
	to := member.Phone
	if strings.HasPrefix(member.Phone, "+") {
		to = "whatsapp:" + member.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Error().Err(err).Str("phone", member.Phone).Msg("failed to send renewal reminder")
		return
	}
	if resp.Sid != nil {
		log.Info().Str("phone", member.Phone).Str("sid", *resp.Sid).Msg("renewal reminder sent")
	} else {
		log.Info().Str("phone", member.Phone).Msg("renewal reminder sent, no SID returned")
	}
}
