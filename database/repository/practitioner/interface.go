package practitionerRepo

import (
	"context"

	"dentora/database"
	"dentora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// PractitionerRepository manages practitioners and their embedded leave days.
type PractitionerRepository interface {
	Create(ctx context.Context, p *models.Practitioner) error
	GetByID(ctx context.Context, id string) (*models.Practitioner, error)
	ListActive(ctx context.Context) ([]models.Practitioner, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error

	AddLeaveDay(ctx context.Context, practitionerID string, leave models.LeaveDay) error
	RemoveLeaveDay(ctx context.Context, practitionerID, date string) error
	IsOnLeave(ctx context.Context, practitionerID, date string) (bool, error)
}

type mongoPractitionerRepo struct {
	coll *mongo.Collection
}

// NewMongoPractitionerRepo constructs a new MongoDB PractitionerRepository.
func NewMongoPractitionerRepo() PractitionerRepository {
	return &mongoPractitionerRepo{coll: database.Collection("practitioners")}
}
