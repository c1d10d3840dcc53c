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

// BoothManagerRepository owns the booth_managers collection. Reads by ID
// project the password hash out; GetByEmail keeps it because the login
// path needs it for comparison.
type BoothManagerRepository interface {
	Create(ctx context.Context, m *model.BoothManager) (*model.BoothManager, error)
	GetByID(ctx context.Context, id string) (*model.BoothManager, error)
	GetByEmail(ctx context.Context, email string) (*model.BoothManager, error)
	UpdatePaper(ctx context.Context, id string, paperAvailable int) (*model.BoothManager, error)
	SetActive(ctx context.Context, id string, active bool) (*model.BoothManager, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}

const boothManagerCollection = "booth_managers"

type boothManagerMongoRepository struct {
	db *mongo.Database
}

func NewBoothManagerRepository(ctx context.Context, db *mongo.Database) (BoothManagerRepository, error) {
	collection := db.Collection(boothManagerCollection)
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "booth_code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return nil, err
	}
	return &boothManagerMongoRepository{db: db}, nil
}

func (r *boothManagerMongoRepository) Create(ctx context.Context, m *model.BoothManager) (*model.BoothManager, error) {
	if err := PrepareNewBoothManager(m); err != nil {
		return nil, err
	}
	result, err := r.db.Collection(boothManagerCollection).InsertOne(ctx, m)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, appErr.ErrConflict
		}
		return nil, err
	}
	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		m.ID = objectID
	}
	return m, nil
}

func (r *boothManagerMongoRepository) GetByID(ctx context.Context, id string) (*model.BoothManager, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, appErr.ErrNotFound
	}
	opts := options.FindOne().SetProjection(bson.M{"password_hash": 0})
	result := r.db.Collection(boothManagerCollection).FindOne(ctx, bson.M{"_id": objectID}, opts)
	return decodeBoothManager(result)
}

func (r *boothManagerMongoRepository) GetByEmail(ctx context.Context, email string) (*model.BoothManager, error) {
	result := r.db.Collection(boothManagerCollection).FindOne(ctx, bson.M{"email": email})
	return decodeBoothManager(result)
}

func (r *boothManagerMongoRepository) UpdatePaper(ctx context.Context, id string, paperAvailable int) (*model.BoothManager, error) {
	return r.update(ctx, id, bson.M{"paper_available": paperAvailable})
}

func (r *boothManagerMongoRepository) SetActive(ctx context.Context, id string, active bool) (*model.BoothManager, error) {
	return r.update(ctx, id, bson.M{"is_active": active})
}

// UpdatePassword is the only mutator that touches the stored hash; every
// other update leaves it byte-for-byte as written.
func (r *boothManagerMongoRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return appErr.ErrNotFound
	}
	update := bson.M{"$set": bson.M{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	}}
	result, err := r.db.Collection(boothManagerCollection).UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (r *boothManagerMongoRepository) update(ctx context.Context, id string, fields bson.M) (*model.BoothManager, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, appErr.ErrNotFound
	}
	fields["updated_at"] = time.Now()
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password_hash": 0})
	result := r.db.Collection(boothManagerCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": fields},
		opts,
	)
	return decodeBoothManager(result)
}

func decodeBoothManager(result *mongo.SingleResult) (*model.BoothManager, error) {
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, appErr.ErrNotFound
		}
		return nil, err
	}
	var m model.BoothManager
	if err := result.Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}
