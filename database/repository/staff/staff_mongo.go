package staffRepo

import (
	"context"
	"fmt"
	"time"

	"dentora/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoStaffRepo) Create(ctx context.Context, u *models.StaffUser) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("failed to create staff user: %w", err)
	}
	return nil
}

func (r *mongoStaffRepo) GetByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// GetByTokenHash resolves the staff user holding the given session token.
func (r *mongoStaffRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.StaffUser, error) {
	return r.findOne(ctx, bson.M{"token_hash": tokenHash})
}

func (r *mongoStaffRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"token_hash": tokenHash}})
	if err != nil {
		return fmt.Errorf("failed to set token hash: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoStaffRepo) findOne(ctx context.Context, filter bson.M) (*models.StaffUser, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var u models.StaffUser
	if err := r.coll.FindOne(ctx, filter).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff user: %w", err)
	}
	return &u, nil
}
