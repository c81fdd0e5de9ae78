package mongo

import (
	"context"
	"errors"

	"fitbook/booking-app/internal/domain"
	"fitbook/booking-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const bookingCollectionName = "bookings"

// mongoBookingRepository implements repository.BookingRepository using MongoDB.
type mongoBookingRepository struct {
	collection *mongo.Collection
}

// NewMongoBookingRepository creates a new booking repository backed by MongoDB.
func NewMongoBookingRepository(db *mongo.Database) repository.BookingRepository {
	return &mongoBookingRepository{
		collection: db.Collection(bookingCollectionName),
	}
}

// Save upserts a booking session by its identifier. Status updates and
// new bookings go through the same path since bookings are never removed.
func (r *mongoBookingRepository) Save(ctx context.Context, booking *domain.BookingSession) error {
	if booking.ID == "" || booking.ClientID == "" || booking.TrainerID == "" {
		return errors.New("booking requires id, clientId and trainerId")
	}

	filter := bson.M{"_id": booking.ID}
	update := bson.M{"$set": booking}
	opts := options.Update().SetUpsert(true)

	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// GetByID retrieves a booking by its identifier.
func (r *mongoBookingRepository) GetByID(ctx context.Context, id string) (*domain.BookingSession, error) {
	var booking domain.BookingSession
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

// List retrieves every booking, newest first.
func (r *mongoBookingRepository) List(ctx context.Context) ([]domain.BookingSession, error) {
	return r.listByFilter(ctx, bson.M{})
}

// ListByClientID retrieves all bookings made by a specific client.
func (r *mongoBookingRepository) ListByClientID(ctx context.Context, clientID string) ([]domain.BookingSession, error) {
	return r.listByFilter(ctx, bson.M{"clientId": clientID})
}

// ListByTrainerID retrieves all bookings on a specific trainer's calendar.
func (r *mongoBookingRepository) ListByTrainerID(ctx context.Context, trainerID string) ([]domain.BookingSession, error) {
	return r.listByFilter(ctx, bson.M{"trainerId": trainerID})
}

func (r *mongoBookingRepository) listByFilter(ctx context.Context, filter bson.M) ([]domain.BookingSession, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []domain.BookingSession{}
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// EnsureBookingIndexes creates necessary indexes for the bookings collection.
// Call this once during application startup.
func EnsureBookingIndexes(ctx context.Context, collection *mongo.Collection) {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "trainerId", Value: 1}, {Key: "status", Value: 1}}, // Conflict scans
			Options: options.Index(),
		},
		{
			Keys:    bson.D{{Key: "clientId", Value: 1}},
			Options: options.Index(),
		},
	}

	_, _ = collection.Indexes().CreateMany(ctx, indexes)
}
