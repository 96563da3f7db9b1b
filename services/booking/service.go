package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appointmentRepo "dentora/database/repository/appointment"
	practitionerRepo "dentora/database/repository/practitioner"
	"dentora/models"
	"dentora/services/notification"
	"dentora/services/scheduling"
	"dentora/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionTTL = 30 * time.Minute

// DefaultBookingSessionService implements BookingSessionService. Wizard
// state lives in Redis under the session ID and expires if the visitor
// walks away mid-flow.
type DefaultBookingSessionService struct {
	AppointmentRepo  appointmentRepo.AppointmentRepository
	PractitionerRepo practitionerRepo.PractitionerRepository
	Engine           *scheduling.DefaultSchedulingEngine
	NotificationSvc  notification.NotificationService
	Cache            *redis.Client
}

func (s *DefaultBookingSessionService) StartSession(ctx context.Context, treatment string) (*models.BookingSession, []models.Practitioner, error) {
	practitioners, err := s.PractitionerRepo.ListActive(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list practitioners: %w", err)
	}

	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		Treatment: treatment,
		CreatedAt: time.Now(),
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, practitioners, nil
}

func (s *DefaultBookingSessionService) GetAvailability(ctx context.Context, sessionID, practitionerID, date string, slotCount int) (*models.DayAvailability, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	onLeave, err := s.PractitionerRepo.IsOnLeave(ctx, practitionerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to check leave days: %w", err)
	}
	existing, err := s.AppointmentRepo.ListByPractitionerAndDate(ctx, practitionerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	session.PractitionerID = practitionerID
	session.Date = date
	session.SlotCount = slotCount
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	now := time.Now()
	if s.Engine != nil && s.Engine.Now != nil {
		now = s.Engine.Now()
	}
	return BuildDayAvailability(practitionerID, date, slotCount, existing, onLeave, now), nil
}

// ConfirmBooking validates the chosen slot (and every expanded occurrence
// of a recurring request) and persists the accepted dates. Occurrences
// succeed or fail independently; one clash never sinks its siblings.
func (s *DefaultBookingSessionService) ConfirmBooking(ctx context.Context, sessionID string, req ConfirmRequest) ([]models.BookingOutcome, error) {
	logger := utils.GetLogger()
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	practitioner, err := s.PractitionerRepo.GetByID(ctx, req.PractitionerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch practitioner: %w", err)
	}
	if practitioner == nil {
		return nil, fmt.Errorf("practitioner %s not found", req.PractitionerID)
	}

	slotCount := req.SlotCount
	if slotCount < 1 {
		slotCount = 1
	}
	candidate := models.Appointment{
		PractitionerID:   practitioner.ID,
		PractitionerName: practitioner.Name,
		PatientName:      req.PatientName,
		PatientPhone:     req.PatientPhone,
		Date:             req.Date,
		Time:             req.Time,
		Duration:         slotCount * scheduling.SlotMinutes,
		Status:           models.StatusConfirmed,
		Treatment:        req.Treatment,
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
		if err := s.AppointmentRepo.Create(ctx, &inst); err != nil {
			logger.Error("ConfirmBooking: failed to persist occurrence",
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

	_ = s.CancelSession(ctx, session.SessionID)
	return outcomes, nil
}

func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Cache.Del(ctx, sessionKey(sessionID)).Err()
}

func (s *DefaultBookingSessionService) saveSession(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(session.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, fmt.Errorf("booking session not found or expired")
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func sessionKey(sessionID string) string {
	return "booking:session:" + sessionID
}
