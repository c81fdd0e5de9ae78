package repository

import (
	"context"

	"fitbook/booking-app/internal/domain"
)

// Error constants for repository layer
var (
	ErrNotFound       = RepositoryError("not found")
	ErrDuplicateEmail = RepositoryError("email already registered")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// BookingRepository is the durable store for booking sessions. Save is
// an upsert: it persists new bookings and status updates alike, since a
// booking record is never physically deleted.
type BookingRepository interface {
	Save(ctx context.Context, booking *domain.BookingSession) error
	GetByID(ctx context.Context, id string) (*domain.BookingSession, error)
	List(ctx context.Context) ([]domain.BookingSession, error)
	ListByClientID(ctx context.Context, clientID string) ([]domain.BookingSession, error)
	ListByTrainerID(ctx context.Context, trainerID string) ([]domain.BookingSession, error)
}

// ClientRepository defines the interface for client profile data.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
}

// TrainerRepository defines the interface for trainer profile data.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *domain.Trainer) error
	GetByID(ctx context.Context, id string) (*domain.Trainer, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Trainer, error)
	List(ctx context.Context) ([]domain.Trainer, error)
}

// UserRepository defines the interface for account data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
