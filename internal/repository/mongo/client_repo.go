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

const clientCollectionName = "clients"

// mongoClientRepository implements repository.ClientRepository using MongoDB.
type mongoClientRepository struct {
	collection *mongo.Collection
}

// NewMongoClientRepository creates a new client profile repository backed by MongoDB.
func NewMongoClientRepository(db *mongo.Database) repository.ClientRepository {
	return &mongoClientRepository{
		collection: db.Collection(clientCollectionName),
	}
}

// Create inserts a new client profile.
func (r *mongoClientRepository) Create(ctx context.Context, client *domain.Client) error {
	if client.ID == "" || client.UserID == "" {
		return errors.New("client id and userId are required")
	}

	client.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, client)
	return err
}

// GetByID retrieves a client profile by its identifier.
func (r *mongoClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	var client domain.Client
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// GetByUserID retrieves the client profile owned by the given account.
func (r *mongoClientRepository) GetByUserID(ctx context.Context, userID string) (*domain.Client, error) {
	var client domain.Client
	filter := bson.M{"userId": userID}

	err := r.collection.FindOne(ctx, filter).Decode(&client)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &client, nil
}

// List retrieves all client profiles.
func (r *mongoClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	clients := []domain.Client{}
	if err = cursor.All(ctx, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// EnsureClientIndexes creates necessary indexes for the clients collection.
func EnsureClientIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetUnique(true), // One profile per account
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
