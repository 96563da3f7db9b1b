package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"dentora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListByPractitionerAndDate returns every appointment for a practitioner
// on one date, regardless of status; the conflict detector filters
// statuses itself so callers can also render cancelled entries.
func (r *mongoAppointmentRepo) ListByPractitionerAndDate(ctx context.Context, practitionerID, date string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"practitioner_id": practitionerID, "date": date})
}

func (r *mongoAppointmentRepo) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"date": date})
}

func (r *mongoAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.list(ctx, bson.M{"patient_id": patientID})
}

func (r *mongoAppointmentRepo) list(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// CountByStatus counts appointments with the given status in the
// inclusive [fromDate, toDate] range. Empty status counts all.
func (r *mongoAppointmentRepo) CountByStatus(ctx context.Context, status, fromDate, toDate string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": fromDate, "$lte": toDate}}
	if status != "" {
		filter["status"] = status
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}
