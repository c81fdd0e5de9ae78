package service

import (
	"context"
	"errors"

	"fitbook/booking-app/internal/domain"
	"fitbook/booking-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrProfileAlreadyExists = errors.New("user already has a profile")
	ErrUserNotFound         = errors.New("user account not found")
)

// --- Service Interface ---
type ClientService interface {
	CreateClient(ctx context.Context, userID, name, email, phone, fitnessGoals string) (*domain.Client, error)
	GetClient(ctx context.Context, clientID string) (*domain.Client, error)
	GetClientByUserID(ctx context.Context, userID string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// --- Service Implementation ---

type clientService struct {
	clientRepo repository.ClientRepository
	userRepo   repository.UserRepository
}

// NewClientService creates a new instance of clientService.
func NewClientService(clientRepo repository.ClientRepository, userRepo repository.UserRepository) ClientService {
	return &clientService{
		clientRepo: clientRepo,
		userRepo:   userRepo,
	}
}

// CreateClient creates the client profile owned by the given user
// account. The profile identifier is what bookings reference.
func (s *clientService) CreateClient(ctx context.Context, userID, name, email, phone, fitnessGoals string) (*domain.Client, error) {
	if userID == "" || name == "" || email == "" || phone == "" {
		return nil, errors.New("user ID, name, email, and phone are required")
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// One profile per account
	if _, err := s.clientRepo.GetByUserID(ctx, userID); err == nil {
		return nil, ErrProfileAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	client := &domain.Client{
		ID:           domain.NewClientID(),
		UserID:       userID,
		Name:         name,
		Email:        email,
		Phone:        phone,
		FitnessGoals: fitnessGoals,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// GetClient retrieves a client profile by its identifier.
func (s *clientService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &domain.NotFoundError{Resource: "client", ID: clientID}
		}
		return nil, err
	}
	return client, nil
}

// GetClientByUserID retrieves the profile owned by a user account.
func (s *clientService) GetClientByUserID(ctx context.Context, userID string) (*domain.Client, error) {
	client, err := s.clientRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &domain.NotFoundError{Resource: "client profile for user", ID: userID}
		}
		return nil, err
	}
	return client, nil
}

// ListClients retrieves all client profiles.
func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}
