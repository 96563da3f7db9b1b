package notification

import (
	"context"
	"time"

	"dentora/config"
	"dentora/models"
	"dentora/services/tasks"
	"dentora/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultNotificationService enqueues reminders on the asynq queue and
// logs delivery. Wiring an SMS or email provider means replacing Send.
type DefaultNotificationService struct {
	Client *asynq.Client
}

// NewDefaultNotificationService builds the service with its own asynq client.
func NewDefaultNotificationService() *DefaultNotificationService {
	return &DefaultNotificationService{
		Client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleReminder enqueues a reminder ahead of the appointment. Failures
// are logged, never surfaced: a missed reminder must not fail a booking.
func (s *DefaultNotificationService) ScheduleReminder(ctx context.Context, appt models.Appointment) {
	logger := utils.GetLogger()

	at, err := time.Parse("2006-01-02 15:04", appt.Date+" "+appt.Time)
	if err != nil {
		logger.Warn("ScheduleReminder: unparseable appointment time",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}
	fireAt := at.Add(-time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour)
	if fireAt.Before(time.Now()) {
		return // too close to the visit; nothing to schedule
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientName:   appt.PatientName,
		PatientPhone:  appt.PatientPhone,
		Practitioner:  appt.PractitionerName,
		Date:          appt.Date,
		Time:          appt.Time,
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		logger.Warn("ScheduleReminder: failed to build task", zap.Error(err))
		return
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		logger.Warn("ScheduleReminder: failed to enqueue reminder",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}

func (s *DefaultNotificationService) Send(_ context.Context, payload models.ReminderPayload) error {
	utils.GetLogger().Info("reminder due",
		zap.String("appointmentID", payload.AppointmentID),
		zap.String("patient", payload.PatientName),
		zap.String("date", payload.Date),
		zap.String("time", payload.Time))
	return nil
}
