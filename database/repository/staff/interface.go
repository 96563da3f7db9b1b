package staffRepo

import (
	"context"

	"dentora/database"
	"dentora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type StaffRepository interface {
	Create(ctx context.Context, u *models.StaffUser) error
	GetByEmail(ctx context.Context, email string) (*models.StaffUser, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.StaffUser, error)
	SetTokenHash(ctx context.Context, id, tokenHash string) error
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new MongoDB StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	return &mongoStaffRepo{coll: database.Collection("staff_users")}
}
