// services/reminder_service.go
package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"nailstudio-backend/models"
	"nailstudio-backend/scheduling"
	"nailstudio-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService sends an SMS the day before each booked entry and records
// the attempt. Users without a usable phone number in their social profile
// are skipped.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
	from   string
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_FROM_NUMBER"),
	}
}

// StartScheduler runs the daily reminder pass at 9 AM.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 9 * * *", s.SendDailyReminders); err != nil {
		log.Error().Err(err).Msg("failed to schedule reminders")
		return
	}

	c.Start()
	log.Info().Msg("Reminder scheduler started")
}

// SendDailyReminders processes tomorrow's entries.
func (s *ReminderService) SendDailyReminders() {
	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))
	log.Info().Str("date", tomorrow.Format(utils.DateLayout)).Msg("Starting daily reminder processing")

	var entries []models.Entry
	if err := s.db.Preload("Services").
		Where("date = ?", tomorrow.Format(utils.DateLayout)).
		Order("time").
		Find(&entries).Error; err != nil {
		log.Error().Err(err).Msg("Failed to fetch tomorrow's entries")
		return
	}

	for i := range entries {
		s.remind(&entries[i])
	}

	log.Info().Int("entries", len(entries)).Msg("Daily reminder processing completed")
}

func (s *ReminderService) remind(entry *models.Entry) {
	reminderLog := models.ReminderLog{
		EntryID: entry.ID,
		UserID:  entry.UserID,
		SentAt:  time.Now(),
	}

	var socials models.SocialMedia
	err := s.db.First(&socials, "user_id = ?", entry.UserID).Error
	phone, ok := utils.NormalizePhone(socials.PhoneNumber)
	if err != nil || !ok {
		reminderLog.Status = "skipped"
		reminderLog.ErrorMessage = "no valid phone number on profile"
		s.saveLog(&reminderLog)
		return
	}

	reminderLog.Message = BuildReminderMessage(entry)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.from)
	params.SetBody(reminderLog.Message)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Error().Err(err).Str("entry", entry.ID.String()).Msg("Failed to send reminder")
		reminderLog.Status = "failed"
		reminderLog.ErrorMessage = err.Error()
	} else {
		reminderLog.Status = "sent"
	}
	s.saveLog(&reminderLog)
}

func (s *ReminderService) saveLog(reminderLog *models.ReminderLog) {
	if err := s.db.Create(reminderLog).Error; err != nil {
		log.Error().Err(err).Msg("Failed to save reminder log")
	}
}

// BuildReminderMessage renders the SMS body for an entry.
func BuildReminderMessage(entry *models.Entry) string {
	var services string
	if len(entry.Services) > 0 {
		names := make([]string, 0, len(entry.Services))
		for _, service := range entry.Services {
			names = append(names, service.Name)
		}
		services = " (" + strings.Join(names, ", ") + ")"
	}

	when := entry.Time
	if interval, err := scheduling.IntervalOf(entry); err == nil {
		when = interval.Start.Format("15:04")
	}

	return fmt.Sprintf("Reminder: you have an appointment%s tomorrow at %s. See you soon!",
		services, when)
}
