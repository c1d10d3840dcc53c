package repo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/campuslab/printbooth/internal/model"
	appErr "github.com/campuslab/printbooth/internal/pkg/errors"
)

// PendingAccountRepository owns the pending_accounts collection.
type PendingAccountRepository interface {
	Create(ctx context.Context, acct *model.PendingAccount) (*model.PendingAccount, error)
	GetByEmail(ctx context.Context, email string) (*model.PendingAccount, error)
	GetByStudentID(ctx context.Context, studentID string) (*model.PendingAccount, error)
	UpdateVerificationCode(ctx context.Context, id string, code string, expiresAt time.Time) error
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

const (
	pendingAccountCollection = "pending_accounts"
	// PendingAccountTTL is how long an unpromoted signup survives.
	PendingAccountTTL = 24 * time.Hour
)

type pendingAccountMongoRepository struct {
	db *mongo.Database
}

// NewPendingAccountRepository builds the repository and ensures its
// indexes, including the TTL index the store uses to purge stale signups.
func NewPendingAccountRepository(ctx context.Context, db *mongo.Database) (PendingAccountRepository, error) {
	collection := db.Collection(pendingAccountCollection)
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}},
		{Keys: bson.D{{Key: "student_id", Value: 1}}},
		{
			Keys:    bson.D{{Key: "created_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(PendingAccountTTL / time.Second)),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, err
	}
	return &pendingAccountMongoRepository{db: db}, nil
}

func (r *pendingAccountMongoRepository) Create(ctx context.Context, acct *model.PendingAccount) (*model.PendingAccount, error) {
	if err := PrepareNewPendingAccount(acct); err != nil {
		return nil, err
	}
	result, err := r.db.Collection(pendingAccountCollection).InsertOne(ctx, acct)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, appErr.ErrConflict
		}
		return nil, err
	}
	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		acct.ID = objectID
	}
	return acct, nil
}

func (r *pendingAccountMongoRepository) GetByEmail(ctx context.Context, email string) (*model.PendingAccount, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *pendingAccountMongoRepository) GetByStudentID(ctx context.Context, studentID string) (*model.PendingAccount, error) {
	return r.findOne(ctx, bson.M{"student_id": studentID})
}

// findOne filters out records past their TTL so a signup is unreachable
// the moment it expires, even while the store's TTL monitor lags behind.
func (r *pendingAccountMongoRepository) findOne(ctx context.Context, filter bson.M) (*model.PendingAccount, error) {
	filter["created_at"] = bson.M{"$gt": time.Now().Add(-PendingAccountTTL)}
	result := r.db.Collection(pendingAccountCollection).FindOne(ctx, filter)
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	var acct model.PendingAccount
	if err := result.Decode(&acct); err != nil {
		return nil, err
	}
	return &acct, nil
}

func (r *pendingAccountMongoRepository) UpdateVerificationCode(ctx context.Context, id string, code string, expiresAt time.Time) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return appErr.ErrNotFound
	}
	update := bson.M{"$set": bson.M{
		"verification_code":            code,
		"verification_code_expires_at": expiresAt,
	}}
	result, err := r.db.Collection(pendingAccountCollection).UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (r *pendingAccountMongoRepository) Delete(ctx context.Context, id string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return appErr.ErrNotFound
	}
	result, err := r.db.Collection(pendingAccountCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (r *pendingAccountMongoRepository) DeleteExpired(ctx context.Context) (int64, error) {
	filter := bson.M{"created_at": bson.M{"$lt": time.Now().Add(-PendingAccountTTL)}}
	result, err := r.db.Collection(pendingAccountCollection).DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
