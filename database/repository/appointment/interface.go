package appointmentRepo

import (
	"context"

	"dentora/database"
	"dentora/models"
	"dentora/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// AppointmentRepository persists appointments and serves the read-only
// snapshots the scheduling engine validates against.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByPractitionerAndDate(ctx context.Context, practitionerID, date string) ([]models.Appointment, error)
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Reschedule(ctx context.Context, id, date, clock string, duration int) error
	CountByStatus(ctx context.Context, status, fromDate, toDate string) (int64, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &mongoAppointmentRepo{coll: database.Collection("appointments")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("appointment repo: failed to create indexes", zap.Error(err))
	}
	return repo
}
