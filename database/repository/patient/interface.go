package patientRepo

import (
	"context"

	"dentora/database"
	"dentora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PatientRepository interface {
	Create(ctx context.Context, p *models.Patient) error
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	Search(ctx context.Context, query string) ([]models.Patient, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type mongoPatientRepo struct {
	coll *mongo.Collection
}

// NewMongoPatientRepo constructs a new MongoDB PatientRepository.
func NewMongoPatientRepo() PatientRepository {
	return &mongoPatientRepo{coll: database.Collection("patients")}
}
