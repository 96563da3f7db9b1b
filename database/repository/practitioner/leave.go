package practitionerRepo

import (
	"context"
	"fmt"
	"time"

	"dentora/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Leave days are embedded on the practitioner document, the same shape a
// provider carries its timeslots: small bounded arrays updated in place.

func (r *mongoPractitionerRepo) AddLeaveDay(ctx context.Context, practitionerID string, leave models.LeaveDay) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if leave.CreatedAt.IsZero() {
		leave.CreatedAt = time.Now()
	}
	// $addToSet would compare CreatedAt too; guard against duplicate dates
	// explicitly instead.
	filter := bson.M{
		"id":              practitionerID,
		"leave_days.date": bson.M{"$ne": leave.Date},
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$push": bson.M{"leave_days": leave}})
	if err != nil {
		return fmt.Errorf("failed to add leave day: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("practitioner %s not found or already on leave on %s", practitionerID, leave.Date)
	}
	return nil
}

func (r *mongoPractitionerRepo) RemoveLeaveDay(ctx context.Context, practitionerID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$pull": bson.M{"leave_days": bson.M{"date": date}}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": practitionerID}, update)
	if err != nil {
		return fmt.Errorf("failed to remove leave day: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IsOnLeave satisfies the scheduling engine's LeaveChecker.
func (r *mongoPractitionerRepo) IsOnLeave(ctx context.Context, practitionerID, date string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":         practitionerID,
		"leave_days": bson.M{"$elemMatch": bson.M{"date": date}},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check leave days: %w", err)
	}
	return count > 0, nil
}
