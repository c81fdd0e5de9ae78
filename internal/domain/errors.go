package domain

import "fmt"

// The booking core reports every rejected operation through one of the
// typed errors below. All of them are recoverable from the caller's
// perspective and leave the data model untouched.

// ValidationError signals a malformed value object or request field.
type ValidationError struct {
	Reason string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// NotFoundError names a client, trainer or booking identifier that does
// not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// DoubleBookingError reports a scheduling conflict with an existing
// non-terminal booking on the same trainer's calendar.
type DoubleBookingError struct {
	ConflictingBookingID string
}

func (e *DoubleBookingError) Error() string {
	return fmt.Sprintf("time slot conflicts with existing booking %s", e.ConflictingBookingID)
}

// StateTransitionError reports an operation that is illegal for the
// booking's current status. The booking is left unchanged.
type StateTransitionError struct {
	Current   BookingStatus
	Operation Operation
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("booking with status %s cannot be %sed", e.Current, e.Operation)
}

// AuthorizationError reports an actor who is not entitled to perform an
// operation on a booking.
type AuthorizationError struct {
	Operation Operation
	Reason    string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("not authorized to %s booking: %s", e.Operation, e.Reason)
}

// ResourceBusyError signals that the admission lock for a trainer's
// calendar or a booking could not be acquired within the bounded wait.
// The caller may retry; no partial mutation has occurred.
type ResourceBusyError struct {
	Resource string
	ID       string
}

func (e *ResourceBusyError) Error() string {
	return fmt.Sprintf("%s %s is busy, try again", e.Resource, e.ID)
}
