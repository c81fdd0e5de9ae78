package mongo

import (
	"context"
	"errors"
	"time"

	"fitbook/booking-app/internal/domain"
	"fitbook/booking-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const trainerCollectionName = "trainers"

// mongoTrainerRepository implements repository.TrainerRepository using MongoDB.
type mongoTrainerRepository struct {
	collection *mongo.Collection
}

// NewMongoTrainerRepository creates a new trainer profile repository backed by MongoDB.
func NewMongoTrainerRepository(db *mongo.Database) repository.TrainerRepository {
	return &mongoTrainerRepository{
		collection: db.Collection(trainerCollectionName),
	}
}

// Create inserts a new trainer profile.
func (r *mongoTrainerRepository) Create(ctx context.Context, trainer *domain.Trainer) error {
	if trainer.ID == "" || trainer.UserID == "" {
		return errors.New("trainer id and userId are required")
	}

	trainer.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, trainer)
	return err
}

// GetByID retrieves a trainer profile by its identifier.
func (r *mongoTrainerRepository) GetByID(ctx context.Context, id string) (*domain.Trainer, error) {
	var trainer domain.Trainer
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&trainer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

// GetByUserID retrieves the trainer profile owned by the given account.
func (r *mongoTrainerRepository) GetByUserID(ctx context.Context, userID string) (*domain.Trainer, error) {
	var trainer domain.Trainer
	filter := bson.M{"userId": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&trainer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &trainer, nil
}

// List retrieves all trainer profiles.
func (r *mongoTrainerRepository) List(ctx context.Context) ([]domain.Trainer, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	trainers := []domain.Trainer{}
	if err = cursor.All(ctx, &trainers); err != nil {
		return nil, err
	}
	return trainers, nil
}

// EnsureTrainerIndexes creates necessary indexes for the trainers collection.
func EnsureTrainerIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true), // One profile per account
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
