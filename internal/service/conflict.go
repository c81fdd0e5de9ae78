package service

import (
	"context"

	"fitbook/booking-app/internal/domain"
	"fitbook/booking-app/internal/repository"
)

// ConflictChecker is the sole admission-control gate for new bookings:
// it scans a trainer's existing bookings for time-slot overlap.
type ConflictChecker struct {
	bookingRepo repository.BookingRepository
}

// NewConflictChecker creates a ConflictChecker over the given booking store.
func NewConflictChecker(bookingRepo repository.BookingRepository) *ConflictChecker {
	return &ConflictChecker{bookingRepo: bookingRepo}
}

// Check fails with DoubleBookingError when the candidate slot overlaps
// any PENDING or CONFIRMED booking on the trainer's calendar. CANCELLED
// bookings free their slot; COMPLETED bookings are history and are
// skipped as well. The caller must hold the trainer's admission lock
// across this check and the subsequent save.
func (c *ConflictChecker) Check(ctx context.Context, trainerID string, slot domain.TimeSlot) error {
	existing, err := c.bookingRepo.ListByTrainerID(ctx, trainerID)
	if err != nil {
		return err
	}

	for i := range existing {
		booking := &existing[i]
		if !booking.IsActive() {
			continue
		}
		if booking.TimeSlot.OverlapsWith(slot) {
			return &domain.DoubleBookingError{ConflictingBookingID: booking.ID}
		}
	}
	return nil
}
