package domain

import (
	"time"
)

// BookingStatus type for the booking lifecycle
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"   // Waiting for trainer confirmation
	StatusConfirmed BookingStatus = "CONFIRMED" // Accepted by the trainer
	StatusCancelled BookingStatus = "CANCELLED" // Withdrawn or rejected (terminal)
	StatusCompleted BookingStatus = "COMPLETED" // Session took place (terminal)
)

// Operation names a state-changing action on a booking.
type Operation string

const (
	OpConfirm  Operation = "confirm"
	OpReject   Operation = "reject"
	OpCancel   Operation = "cancel"
	OpComplete Operation = "complete"
)

// transitions is the single source of truth for the booking state
// machine: operation × current status → next status. An operation
// missing an entry for the current status is illegal.
var transitions = map[Operation]map[BookingStatus]BookingStatus{
	OpConfirm:  {StatusPending: StatusConfirmed},
	OpReject:   {StatusPending: StatusCancelled},
	OpCancel:   {StatusPending: StatusCancelled, StatusConfirmed: StatusCancelled},
	OpComplete: {StatusConfirmed: StatusCompleted},
}

// Actor is the authenticated party attempting an operation, already
// resolved by the credential layer to a client or trainer identifier.
type Actor struct {
	ID   string
	Role Role
}

// BookingSession is the aggregate root for a single reservation between
// a client and a trainer. It references both parties by identifier only
// and owns the sole legal state-transition operations. Bookings are
// never deleted; cancellation is a status change.
type BookingSession struct {
	ID                 string          `bson:"_id" json:"id"`
	ClientID           string          `bson:"clientId" json:"clientId"`
	TrainerID          string          `bson:"trainerId" json:"trainerId"`
	TimeSlot           TimeSlot        `bson:"timeSlot" json:"timeSlot"`
	DurationMinutes    SessionDuration `bson:"durationMinutes" json:"durationMinutes"`
	Status             BookingStatus   `bson:"status" json:"status"`
	CreatedAt          time.Time       `bson:"createdAt" json:"createdAt"`
	ConfirmedAt        *time.Time      `bson:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
	CancellationReason string          `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
}

// NewBookingSession creates a booking in PENDING for the given parties
// and slot. Conflict checking happens in the service layer before this
// constructor is called.
func NewBookingSession(clientID, trainerID string, slot TimeSlot, duration SessionDuration) *BookingSession {
	return &BookingSession{
		ID:              NewBookingID(),
		ClientID:        clientID,
		TrainerID:       trainerID,
		TimeSlot:        slot,
		DurationMinutes: duration,
		Status:          StatusPending,
		CreatedAt:       time.Now().UTC(),
	}
}

// Authorize checks whether the actor may perform op on this booking.
// Confirm, reject and complete belong to the referenced trainer only;
// cancel is open to either referenced party.
func (b *BookingSession) Authorize(op Operation, actor Actor) error {
	switch op {
	case OpConfirm, OpReject, OpComplete:
		if actor.Role != RoleTrainer || actor.ID != b.TrainerID {
			return &AuthorizationError{Operation: op, Reason: "only the booked trainer may perform this operation"}
		}
	case OpCancel:
		if actor.ID != b.ClientID && actor.ID != b.TrainerID {
			return &AuthorizationError{Operation: op, Reason: "only the booked client or trainer may cancel"}
		}
	default:
		return &AuthorizationError{Operation: op, Reason: "unknown operation"}
	}
	return nil
}

// transition applies the state machine after authorizing the actor.
// Illegal transitions never silently no-op: re-confirming a confirmed
// booking is an error so caller bugs surface early.
func (b *BookingSession) transition(op Operation, actor Actor) error {
	if err := b.Authorize(op, actor); err != nil {
		return err
	}
	next, ok := transitions[op][b.Status]
	if !ok {
		return &StateTransitionError{Current: b.Status, Operation: op}
	}
	b.Status = next
	return nil
}

// Confirm moves a PENDING booking to CONFIRMED and records the
// confirmation time. Trainer only.
func (b *BookingSession) Confirm(actor Actor) error {
	if err := b.transition(OpConfirm, actor); err != nil {
		return err
	}
	now := time.Now().UTC()
	b.ConfirmedAt = &now
	return nil
}

// Reject refuses a PENDING booking with a mandatory reason. Trainer
// only. The result is CANCELLED, but the stored reason keeps the
// rejection path distinguishable from a plain cancellation.
func (b *BookingSession) Reject(actor Actor, reason string) error {
	if reason == "" {
		return NewValidationError("a rejection reason is required")
	}
	if err := b.transition(OpReject, actor); err != nil {
		return err
	}
	b.CancellationReason = "rejected by trainer: " + reason
	return nil
}

// Cancel withdraws a PENDING or CONFIRMED booking. Either referenced
// party may cancel; the reason is optional.
func (b *BookingSession) Cancel(actor Actor, reason string) error {
	if err := b.transition(OpCancel, actor); err != nil {
		return err
	}
	b.CancellationReason = reason
	return nil
}

// Complete marks a CONFIRMED booking as having taken place. Trainer only.
func (b *BookingSession) Complete(actor Actor) error {
	return b.transition(OpComplete, actor)
}

// IsTerminal reports whether no further transition is permitted.
func (b *BookingSession) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// IsActive reports whether the booking still occupies calendar time
// (PENDING or CONFIRMED) and therefore participates in conflict checks.
func (b *BookingSession) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}
