// Package memory provides map-backed implementations of the repository
// interfaces. They honor the same contracts as the MongoDB versions and
// back the unit tests; all methods return copies so callers cannot
// mutate stored state without going through Save/Create.
package memory

import (
	"context"
	"sync"
	"time"

	"fitbook/booking-app/internal/domain"
	"fitbook/booking-app/internal/repository"
)

// BookingRepository is an in-memory repository.BookingRepository.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]domain.BookingSession
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{bookings: make(map[string]domain.BookingSession)}
}

func (r *BookingRepository) Save(ctx context.Context, booking *domain.BookingSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.BookingSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &booking, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.BookingSession, error) {
	return r.listMatching(func(domain.BookingSession) bool { return true }), nil
}

func (r *BookingRepository) ListByClientID(ctx context.Context, clientID string) ([]domain.BookingSession, error) {
	return r.listMatching(func(b domain.BookingSession) bool { return b.ClientID == clientID }), nil
}

func (r *BookingRepository) ListByTrainerID(ctx context.Context, trainerID string) ([]domain.BookingSession, error) {
	return r.listMatching(func(b domain.BookingSession) bool { return b.TrainerID == trainerID }), nil
}

func (r *BookingRepository) listMatching(match func(domain.BookingSession) bool) []domain.BookingSession {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []domain.BookingSession{}
	for _, b := range r.bookings {
		if match(b) {
			result = append(result, b)
		}
	}
	return result
}

// ClientRepository is an in-memory repository.ClientRepository.
type ClientRepository struct {
	mu      sync.RWMutex
	clients map[string]domain.Client
}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{clients: make(map[string]domain.Client)}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if client.CreatedAt.IsZero() {
		client.CreatedAt = time.Now().UTC()
	}
	r.clients[client.ID] = *client
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &client, nil
}

func (r *ClientRepository) GetByUserID(ctx context.Context, userID string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, client := range r.clients {
		if client.UserID == userID {
			c := client
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []domain.Client{}
	for _, c := range r.clients {
		result = append(result, c)
	}
	return result, nil
}

// TrainerRepository is an in-memory repository.TrainerRepository.
type TrainerRepository struct {
	mu       sync.RWMutex
	trainers map[string]domain.Trainer
}

func NewTrainerRepository() *TrainerRepository {
	return &TrainerRepository{trainers: make(map[string]domain.Trainer)}
}

func (r *TrainerRepository) Create(ctx context.Context, trainer *domain.Trainer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if trainer.CreatedAt.IsZero() {
		trainer.CreatedAt = time.Now().UTC()
	}
	r.trainers[trainer.ID] = *trainer
	return nil
}

func (r *TrainerRepository) GetByID(ctx context.Context, id string) (*domain.Trainer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	trainer, ok := r.trainers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &trainer, nil
}

func (r *TrainerRepository) GetByUserID(ctx context.Context, userID string) (*domain.Trainer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, trainer := range r.trainers {
		if trainer.UserID == userID {
			t := trainer
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *TrainerRepository) List(ctx context.Context) ([]domain.Trainer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := []domain.Trainer{}
	for _, t := range r.trainers {
		result = append(result, t)
	}
	return result, nil
}

// UserRepository is an in-memory repository.UserRepository.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}
