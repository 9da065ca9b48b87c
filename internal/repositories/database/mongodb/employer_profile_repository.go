package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/workmapr/employer_directory_app/internal/apperrors"
	"github.com/workmapr/employer_directory_app/internal/core/domain"
	portsrepo "github.com/workmapr/employer_directory_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// employerProfileDoc is the persisted shape of an employer profile.
type employerProfileDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     string             `bson:"user_id"`
	BusinessID string             `bson:"business_id"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

// MongoEmployerProfileRepository stores employer profiles in a Mongo
// collection keyed uniquely by user_id. The unique index means a racing
// double-insert for the same user fails at the store instead of producing a
// second profile.
type MongoEmployerProfileRepository struct {
	c *mongo.Collection
}

func NewEmployerProfileRepository(db *mongo.Database) *MongoEmployerProfileRepository {
	return &MongoEmployerProfileRepository{c: db.Collection("employer_profiles")}
}

// Ensure MongoEmployerProfileRepository implements the facade
var _ portsrepo.EmployerProfileRepositoryFacade = (*MongoEmployerProfileRepository)(nil)

// EnsureIndexes creates the unique user_id index. Called once at startup.
func (r *MongoEmployerProfileRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return apperrors.NewAppError(500, "failed to ensure employer_profiles indexes", err)
	}
	return nil
}

func toDomainProfile(doc employerProfileDoc) domain.EmployerProfile {
	return domain.EmployerProfile{
		ProfileID:  doc.ID.Hex(),
		UserID:     doc.UserID,
		BusinessID: doc.BusinessID,
		CreatedAt:  doc.CreatedAt,
		UpdatedAt:  doc.UpdatedAt,
	}
}

func (r *MongoEmployerProfileRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	var doc employerProfileDoc
	err := r.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find employer profile for user "+userID, err)
	}
	profile := toDomainProfile(doc)
	return &profile, nil
}

func (r *MongoEmployerProfileRepository) InsertProfile(ctx context.Context, userID, businessID string) (*domain.EmployerProfile, error) {
	now := time.Now().UTC()
	doc := employerProfileDoc{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		BusinessID: businessID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	_, err := r.c.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.NewConflictError("employer profile for user " + userID + " already exists")
		}
		return nil, apperrors.NewAppError(500, "failed to insert employer profile for user "+userID, err)
	}
	profile := toDomainProfile(doc)
	return &profile, nil
}

func (r *MongoEmployerProfileRepository) UpdateProfileBusiness(ctx context.Context, userID, businessID string) error {
	result, err := r.c.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{
			"business_id": businessID,
			"updated_at":  time.Now().UTC(),
		}},
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update employer profile for user "+userID, err)
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProfileByUserID removes the user's profile. A zero delete count is
// success: leaving a workplace you never joined is idempotent.
func (r *MongoEmployerProfileRepository) DeleteProfileByUserID(ctx context.Context, userID string) error {
	_, err := r.c.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete employer profile for user "+userID, err)
	}
	return nil
}
