package service

import (
	"context"
	"errors"

	"fitbook/booking-app/internal/domain"
	"fitbook/booking-app/internal/repository"
)

// --- Service Interface ---
type TrainerService interface {
	CreateTrainer(ctx context.Context, userID string, input CreateTrainerInput) (*domain.Trainer, error)
	GetTrainer(ctx context.Context, trainerID string) (*domain.Trainer, error)
	GetTrainerByUserID(ctx context.Context, userID string) (*domain.Trainer, error)
	ListTrainers(ctx context.Context) ([]domain.Trainer, error)
}

// CreateTrainerInput carries the profile fields for a new trainer.
type CreateTrainerInput struct {
	Name            string
	Email           string
	Phone           string
	Specialty       string
	Certification   string
	ExperienceYears int
}

// --- Service Implementation ---

type trainerService struct {
	trainerRepo repository.TrainerRepository
	userRepo    repository.UserRepository
}

// NewTrainerService creates a new instance of trainerService.
func NewTrainerService(trainerRepo repository.TrainerRepository, userRepo repository.UserRepository) TrainerService {
	return &trainerService{
		trainerRepo: trainerRepo,
		userRepo:    userRepo,
	}
}

// CreateTrainer creates the trainer profile owned by the given user
// account. The profile identifier is what bookings reference.
func (s *trainerService) CreateTrainer(ctx context.Context, userID string, input CreateTrainerInput) (*domain.Trainer, error) {
	if userID == "" || input.Name == "" || input.Email == "" || input.Phone == "" {
		return nil, errors.New("user ID, name, email, and phone are required")
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// One profile per account
	if _, err := s.trainerRepo.GetByUserID(ctx, userID); err == nil {
		return nil, ErrProfileAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	trainer := &domain.Trainer{
		ID:              domain.NewTrainerID(),
		UserID:          userID,
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Specialty:       input.Specialty,
		Certification:   input.Certification,
		ExperienceYears: input.ExperienceYears,
	}

	if err := s.trainerRepo.Create(ctx, trainer); err != nil {
		return nil, err
	}
	return trainer, nil
}

// GetTrainer retrieves a trainer profile by its identifier.
func (s *trainerService) GetTrainer(ctx context.Context, trainerID string) (*domain.Trainer, error) {
	trainer, err := s.trainerRepo.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &domain.NotFoundError{Resource: "trainer", ID: trainerID}
		}
		return nil, err
	}
	return trainer, nil
}

// GetTrainerByUserID retrieves the profile owned by a user account.
func (s *trainerService) GetTrainerByUserID(ctx context.Context, userID string) (*domain.Trainer, error) {
	trainer, err := s.trainerRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &domain.NotFoundError{Resource: "trainer profile for user", ID: userID}
		}
		return nil, err
	}
	return trainer, nil
}

// ListTrainers retrieves all trainer profiles.
func (s *trainerService) ListTrainers(ctx context.Context) ([]domain.Trainer, error) {
	return s.trainerRepo.List(ctx)
}
