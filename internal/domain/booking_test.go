package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(t *testing.T) *BookingSession {
	t.Helper()
	slot := mustSlot(t, "2025-12-15", "09:00", "10:00")
	duration, err := NewSessionDuration(60)
	require.NoError(t, err)
	return NewBookingSession("CL000001", "TR000001", slot, duration)
}

var (
	bookedTrainer    = Actor{ID: "TR000001", Role: RoleTrainer}
	bookedClient     = Actor{ID: "CL000001", Role: RoleClient}
	unrelatedTrainer = Actor{ID: "TR999999", Role: RoleTrainer}
	unrelatedClient  = Actor{ID: "CL999999", Role: RoleClient}
)

func TestNewBookingSessionStartsPending(t *testing.T) {
	booking := newTestBooking(t)

	assert.Equal(t, StatusPending, booking.Status)
	assert.True(t, booking.IsActive())
	assert.False(t, booking.IsTerminal())
	assert.NotEmpty(t, booking.ID)
	assert.Nil(t, booking.ConfirmedAt)
}

func TestConfirm(t *testing.T) {
	t.Run("trainer confirms pending booking", func(t *testing.T) {
		booking := newTestBooking(t)

		require.NoError(t, booking.Confirm(bookedTrainer))
		assert.Equal(t, StatusConfirmed, booking.Status)
		require.NotNil(t, booking.ConfirmedAt)
	})

	t.Run("client cannot confirm", func(t *testing.T) {
		booking := newTestBooking(t)

		err := booking.Confirm(bookedClient)
		var authErr *AuthorizationError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, StatusPending, booking.Status)
	})

	t.Run("unrelated trainer cannot confirm", func(t *testing.T) {
		booking := newTestBooking(t)

		err := booking.Confirm(unrelatedTrainer)
		var authErr *AuthorizationError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, StatusPending, booking.Status)
	})

	t.Run("re-confirming fails instead of no-op", func(t *testing.T) {
		booking := newTestBooking(t)
		require.NoError(t, booking.Confirm(bookedTrainer))

		err := booking.Confirm(bookedTrainer)
		var stateErr *StateTransitionError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, StatusConfirmed, stateErr.Current)
		assert.Equal(t, OpConfirm, stateErr.Operation)
	})
}

func TestReject(t *testing.T) {
	t.Run("trainer rejects with reason", func(t *testing.T) {
		booking := newTestBooking(t)

		require.NoError(t, booking.Reject(bookedTrainer, "schedule clash"))
		assert.Equal(t, StatusCancelled, booking.Status)
		assert.Equal(t, "rejected by trainer: schedule clash", booking.CancellationReason)
		assert.True(t, booking.IsTerminal())
	})

	t.Run("reason is mandatory", func(t *testing.T) {
		booking := newTestBooking(t)

		err := booking.Reject(bookedTrainer, "")
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, StatusPending, booking.Status)
	})

	t.Run("client cannot reject", func(t *testing.T) {
		booking := newTestBooking(t)

		err := booking.Reject(bookedClient, "nope")
		var authErr *AuthorizationError
		require.ErrorAs(t, err, &authErr)
	})

	t.Run("confirmed booking cannot be rejected", func(t *testing.T) {
		booking := newTestBooking(t)
		require.NoError(t, booking.Confirm(bookedTrainer))

		err := booking.Reject(bookedTrainer, "too late")
		var stateErr *StateTransitionError
		require.ErrorAs(t, err, &stateErr)
	})
}

func TestCancel(t *testing.T) {
	t.Run("client cancels pending booking", func(t *testing.T) {
		booking := newTestBooking(t)

		require.NoError(t, booking.Cancel(bookedClient, "can't make it"))
		assert.Equal(t, StatusCancelled, booking.Status)
		assert.Equal(t, "can't make it", booking.CancellationReason)
	})

	t.Run("trainer cancels confirmed booking", func(t *testing.T) {
		booking := newTestBooking(t)
		require.NoError(t, booking.Confirm(bookedTrainer))

		require.NoError(t, booking.Cancel(bookedTrainer, ""))
		assert.Equal(t, StatusCancelled, booking.Status)
	})

	t.Run("unrelated parties cannot cancel", func(t *testing.T) {
		for _, actor := range []Actor{unrelatedClient, unrelatedTrainer} {
			booking := newTestBooking(t)

			err := booking.Cancel(actor, "not mine")
			var authErr *AuthorizationError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, StatusPending, booking.Status)
		}
	})

	t.Run("cancelled booking is terminal", func(t *testing.T) {
		booking := newTestBooking(t)
		require.NoError(t, booking.Cancel(bookedClient, ""))

		var stateErr *StateTransitionError
		require.ErrorAs(t, booking.Cancel(bookedClient, "again"), &stateErr)
		require.ErrorAs(t, booking.Confirm(bookedTrainer), &stateErr)
		require.ErrorAs(t, booking.Complete(bookedTrainer), &stateErr)
	})
}

func TestComplete(t *testing.T) {
	t.Run("trainer completes confirmed booking", func(t *testing.T) {
		booking := newTestBooking(t)
		require.NoError(t, booking.Confirm(bookedTrainer))

		require.NoError(t, booking.Complete(bookedTrainer))
		assert.Equal(t, StatusCompleted, booking.Status)
		assert.True(t, booking.IsTerminal())
		assert.False(t, booking.IsActive())
	})

	t.Run("pending booking cannot be completed", func(t *testing.T) {
		booking := newTestBooking(t)

		err := booking.Complete(bookedTrainer)
		var stateErr *StateTransitionError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, StatusPending, stateErr.Current)
	})

	t.Run("client cannot complete", func(t *testing.T) {
		booking := newTestBooking(t)
		require.NoError(t, booking.Confirm(bookedTrainer))

		err := booking.Complete(bookedClient)
		var authErr *AuthorizationError
		require.ErrorAs(t, err, &authErr)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		booking := newTestBooking(t)
		require.NoError(t, booking.Confirm(bookedTrainer))
		require.NoError(t, booking.Complete(bookedTrainer))

		err := booking.Cancel(bookedClient, "changed my mind")
		var stateErr *StateTransitionError
		require.ErrorAs(t, err, &stateErr)
		assert.Equal(t, StatusCompleted, booking.Status)
	})
}
