package service

import (
	"context"
	"errors"
	"time"

	"fitbook/booking-app/internal/domain"
	"fitbook/booking-app/internal/repository"
)

// --- Error Definitions ---
var (
	ErrBookingForOtherClient = errors.New("clients may only create bookings for themselves")
)

// Default bound on waiting for a trainer's or booking's admission lock.
const DefaultLockWait = 5 * time.Second

// --- Service Interface ---

// BookingService is the only entry point permitted to create or
// transition a BookingSession.
type BookingService interface {
	CreateBooking(ctx context.Context, clientID, trainerID string, slot domain.TimeSlot, duration domain.SessionDuration, actor domain.Actor) (*domain.BookingSession, error)
	ConfirmBooking(ctx context.Context, bookingID string, actor domain.Actor) (*domain.BookingSession, error)
	RejectBooking(ctx context.Context, bookingID string, actor domain.Actor, reason string) (*domain.BookingSession, error)
	CancelBooking(ctx context.Context, bookingID string, actor domain.Actor, reason string) (*domain.BookingSession, error)
	CompleteBooking(ctx context.Context, bookingID string, actor domain.Actor) (*domain.BookingSession, error)

	GetBooking(ctx context.Context, bookingID string) (*domain.BookingSession, error)
	ListBookings(ctx context.Context) ([]domain.BookingSession, error)
	ListBookingsByClient(ctx context.Context, clientID string) ([]domain.BookingSession, error)
	ListBookingsByTrainer(ctx context.Context, trainerID string) ([]domain.BookingSession, error)
}

// --- Service Implementation ---

type bookingService struct {
	bookingRepo repository.BookingRepository
	clientRepo  repository.ClientRepository
	trainerRepo repository.TrainerRepository
	conflicts   *ConflictChecker
	locks       *keyedLock
	lockWait    time.Duration
}

// NewBookingService creates a new instance of bookingService. lockWait
// bounds how long a call may wait for admission to a trainer's calendar
// or a booking before failing with ResourceBusyError; zero selects
// DefaultLockWait.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	clientRepo repository.ClientRepository,
	trainerRepo repository.TrainerRepository,
	lockWait time.Duration,
) BookingService {
	if lockWait <= 0 {
		lockWait = DefaultLockWait
	}
	return &bookingService{
		bookingRepo: bookingRepo,
		clientRepo:  clientRepo,
		trainerRepo: trainerRepo,
		conflicts:   NewConflictChecker(bookingRepo),
		locks:       newKeyedLock(),
		lockWait:    lockWait,
	}
}

// acquire takes the lock for key within the bounded wait, translating a
// timeout into ResourceBusyError. No partial mutation has occurred when
// it fails.
func (s *bookingService) acquire(ctx context.Context, resource, id string) error {
	lockCtx, cancel := context.WithTimeout(ctx, s.lockWait)
	defer cancel()

	if err := s.locks.Acquire(lockCtx, resource+":"+id); err != nil {
		return &domain.ResourceBusyError{Resource: resource, ID: id}
	}
	return nil
}

// CreateBooking validates both parties exist, runs the conflict check
// and commits the new PENDING booking, all under the trainer's
// admission lock so two concurrent attempts cannot both pass the check.
func (s *bookingService) CreateBooking(ctx context.Context, clientID, trainerID string, slot domain.TimeSlot, duration domain.SessionDuration, actor domain.Actor) (*domain.BookingSession, error) {
	if actor.Role == domain.RoleClient && actor.ID != clientID {
		return nil, ErrBookingForOtherClient
	}

	if err := s.acquire(ctx, "trainer", trainerID); err != nil {
		return nil, err
	}
	defer s.locks.Release("trainer:" + trainerID)

	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &domain.NotFoundError{Resource: "client", ID: clientID}
		}
		return nil, err
	}

	if _, err := s.trainerRepo.GetByID(ctx, trainerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &domain.NotFoundError{Resource: "trainer", ID: trainerID}
		}
		return nil, err
	}

	if err := s.conflicts.Check(ctx, trainerID, slot); err != nil {
		return nil, err
	}

	booking := domain.NewBookingSession(clientID, trainerID, slot, duration)
	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ConfirmBooking confirms a pending booking on behalf of its trainer.
func (s *bookingService) ConfirmBooking(ctx context.Context, bookingID string, actor domain.Actor) (*domain.BookingSession, error) {
	return s.transition(ctx, bookingID, func(b *domain.BookingSession) error {
		return b.Confirm(actor)
	})
}

// RejectBooking refuses a pending booking with a reason, trainer only.
func (s *bookingService) RejectBooking(ctx context.Context, bookingID string, actor domain.Actor, reason string) (*domain.BookingSession, error) {
	return s.transition(ctx, bookingID, func(b *domain.BookingSession) error {
		return b.Reject(actor, reason)
	})
}

// CancelBooking withdraws a booking on behalf of either referenced party.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID string, actor domain.Actor, reason string) (*domain.BookingSession, error) {
	return s.transition(ctx, bookingID, func(b *domain.BookingSession) error {
		return b.Cancel(actor, reason)
	})
}

// CompleteBooking marks a confirmed booking as done, trainer only.
func (s *bookingService) CompleteBooking(ctx context.Context, bookingID string, actor domain.Actor) (*domain.BookingSession, error) {
	return s.transition(ctx, bookingID, func(b *domain.BookingSession) error {
		return b.Complete(actor)
	})
}

// transition loads the booking, applies the aggregate operation and
// persists the result while holding the booking's lock, so simultaneous
// operations on one booking cannot race each other.
func (s *bookingService) transition(ctx context.Context, bookingID string, apply func(*domain.BookingSession) error) (*domain.BookingSession, error) {
	if err := s.acquire(ctx, "booking", bookingID); err != nil {
		return nil, err
	}
	defer s.locks.Release("booking:" + bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &domain.NotFoundError{Resource: "booking", ID: bookingID}
		}
		return nil, err
	}

	if err := apply(booking); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// GetBooking retrieves a booking by its identifier.
func (s *bookingService) GetBooking(ctx context.Context, bookingID string) (*domain.BookingSession, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &domain.NotFoundError{Resource: "booking", ID: bookingID}
		}
		return nil, err
	}
	return booking, nil
}

// ListBookings retrieves every booking.
func (s *bookingService) ListBookings(ctx context.Context) ([]domain.BookingSession, error) {
	return s.bookingRepo.List(ctx)
}

// ListBookingsByClient retrieves all bookings made by a client.
func (s *bookingService) ListBookingsByClient(ctx context.Context, clientID string) ([]domain.BookingSession, error) {
	return s.bookingRepo.ListByClientID(ctx, clientID)
}

// ListBookingsByTrainer retrieves all bookings on a trainer's calendar.
func (s *bookingService) ListBookingsByTrainer(ctx context.Context, trainerID string) ([]domain.BookingSession, error) {
	return s.bookingRepo.ListByTrainerID(ctx, trainerID)
}
