package notification

import (
	"context"

	"dentora/models"
)

// NotificationService schedules and delivers appointment reminders.
// Delivery transport (SMS/email) is pluggable behind Send; the default
// implementation only logs, the queue wiring is real.
type NotificationService interface {
	ScheduleReminder(ctx context.Context, appt models.Appointment)
	Send(ctx context.Context, payload models.ReminderPayload) error
}
