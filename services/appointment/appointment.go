package appointment

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "dentora/database/repository/appointment"
	practitionerRepo "dentora/database/repository/practitioner"
	"dentora/models"
	"dentora/services/notification"
	"dentora/services/scheduling"
	"dentora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAppointmentService implements AppointmentService for the staff
// portal. It runs every write through the same scheduling engine the
// public wizard uses; staff get no bypass around conflicts.
type DefaultAppointmentService struct {
	Repo             appointmentRepo.AppointmentRepository
	PractitionerRepo practitionerRepo.PractitionerRepository
	Engine           *scheduling.DefaultSchedulingEngine
	NotificationSvc  notification.NotificationService
}

var validStatuses = map[string]bool{
	models.StatusConfirmed: true,
	models.StatusPending:   true,
	models.StatusCancelled: true,
	models.StatusCompleted: true,
	models.StatusArrived:   true,
	models.StatusNoShow:    true,
}

func (s *DefaultAppointmentService) Create(ctx context.Context, req CreateRequest) ([]models.BookingOutcome, error) {
	practitioner, err := s.PractitionerRepo.GetByID(ctx, req.PractitionerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch practitioner: %w", err)
	}
	if practitioner == nil {
		return nil, fmt.Errorf("practitioner %s not found", req.PractitionerID)
	}

	candidate := models.Appointment{
		PractitionerID:   practitioner.ID,
		PractitionerName: practitioner.Name,
		PatientID:        req.PatientID,
		PatientName:      req.PatientName,
		PatientPhone:     req.PatientPhone,
		Date:             req.Date,
		Time:             req.Time,
		Duration:         req.Duration,
		Status:           models.StatusConfirmed,
		Treatment:        req.Treatment,
		Notes:            req.Notes,
	}

	pattern, err := scheduling.PatternFromInput(req.Recurrence)
	if err != nil {
		return nil, err
	}
	occurrences, err := s.Engine.ValidateSeries(ctx, candidate, pattern)
	if err != nil {
		return nil, err
	}

	groupID := ""
	if req.Recurrence.HasRecurrence() {
		groupID = uuid.New().String()
	}

	outcomes := make([]models.BookingOutcome, 0, len(occurrences))
	for _, occ := range occurrences {
		if occ.Rejection != nil {
			outcomes = append(outcomes, models.BookingOutcome{
				Date:    occ.Date,
				Reason:  occ.Rejection.Code,
				Message: occ.Rejection.Message,
			})
			continue
		}
		inst := candidate
		inst.Date = occ.Date
		inst.RecurrenceGroupID = groupID
		if err := s.Repo.Create(ctx, &inst); err != nil {
			utils.GetLogger().Error("Create: failed to persist occurrence",
				zap.String("date", occ.Date), zap.Error(err))
			outcomes = append(outcomes, models.BookingOutcome{
				Date: occ.Date, Reason: "storeError", Message: "could not save the appointment",
			})
			continue
		}
		if s.NotificationSvc != nil {
			s.NotificationSvc.ScheduleReminder(ctx, inst)
		}
		booked := inst
		outcomes = append(outcomes, models.BookingOutcome{Date: occ.Date, Booked: true, Appointment: &booked})
	}
	return outcomes, nil
}

// Reschedule revalidates the new slot with the appointment's own ID kept
// on the candidate, so its current slot does not conflict with itself.
func (s *DefaultAppointmentService) Reschedule(ctx context.Context, id string, req RescheduleRequest) (*models.Appointment, error) {
	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("appointment %s not found", id)
	}

	duration := req.Duration
	if duration <= 0 {
		duration = current.EffectiveDuration()
	}

	candidate := *current
	candidate.Date = req.Date
	candidate.Time = req.Time
	candidate.Duration = duration
	if err := s.Engine.ValidateCandidate(ctx, candidate); err != nil {
		return nil, err
	}

	if err := s.Repo.Reschedule(ctx, id, req.Date, req.Time, duration); err != nil {
		return nil, err
	}
	candidate.UpdatedAt = time.Now()
	return &candidate, nil
}

func (s *DefaultAppointmentService) UpdateStatus(ctx context.Context, id, status string) error {
	if !validStatuses[status] {
		return fmt.Errorf("unknown appointment status %q", status)
	}
	return s.Repo.UpdateStatus(ctx, id, status)
}

func (s *DefaultAppointmentService) Cancel(ctx context.Context, id string) error {
	return s.Repo.UpdateStatus(ctx, id, models.StatusCancelled)
}

func (s *DefaultAppointmentService) DayCalendar(ctx context.Context, date string) ([]models.Appointment, error) {
	return s.Repo.ListByDate(ctx, date)
}

func (s *DefaultAppointmentService) PractitionerDay(ctx context.Context, practitionerID, date string) ([]models.Appointment, error) {
	return s.Repo.ListByPractitionerAndDate(ctx, practitionerID, date)
}

func (s *DefaultAppointmentService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	today := time.Now().Format("2006-01-02")
	weekAgo := time.Now().AddDate(0, 0, -7).Format("2006-01-02")

	stats := &models.DashboardStats{}
	counts := []struct {
		dest   *int
		status string
		from   string
		to     string
	}{
		{&stats.TodayTotal, "", today, today},
		{&stats.TodayCompleted, models.StatusCompleted, today, today},
		{&stats.TodayArrived, models.StatusArrived, today, today},
		{&stats.TodayPending, models.StatusPending, today, today},
		{&stats.WeekTotal, "", weekAgo, today},
		{&stats.CancelledWeek, models.StatusCancelled, weekAgo, today},
		{&stats.NoShowWeek, models.StatusNoShow, weekAgo, today},
	}
	for _, c := range counts {
		n, err := s.Repo.CountByStatus(ctx, c.status, c.from, c.to)
		if err != nil {
			return nil, err
		}
		*c.dest = int(n)
	}
	return stats, nil
}
