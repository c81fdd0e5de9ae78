package memory

import (
	"context"
	"testing"

	"fitbook/booking-app/internal/domain"
	"fitbook/booking-app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository()

	_, err := repo.GetByID(ctx, "BKMISSING")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	booking := &domain.BookingSession{
		ID:        domain.NewBookingID(),
		ClientID:  "CL000001",
		TrainerID: "TR000001",
		Status:    domain.StatusPending,
	}
	require.NoError(t, repo.Save(ctx, booking))

	// Save is an upsert; a second save overwrites in place.
	booking.Status = domain.StatusConfirmed
	require.NoError(t, repo.Save(ctx, booking))

	stored, err := repo.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)

	// Mutating the returned copy must not touch the stored booking.
	stored.Status = domain.StatusCancelled
	again, err := repo.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, again.Status)

	other := &domain.BookingSession{
		ID:        domain.NewBookingID(),
		ClientID:  "CL000002",
		TrainerID: "TR000001",
		Status:    domain.StatusPending,
	}
	require.NoError(t, repo.Save(ctx, other))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byClient, err := repo.ListByClientID(ctx, "CL000001")
	require.NoError(t, err)
	assert.Len(t, byClient, 1)

	byTrainer, err := repo.ListByTrainerID(ctx, "TR000001")
	require.NoError(t, err)
	assert.Len(t, byTrainer, 2)
}

func TestClientRepositoryGetByUserID(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository()

	client := &domain.Client{
		ID:     domain.NewClientID(),
		UserID: "USR0001",
		Name:   "John Doe",
		Email:  "john@example.com",
	}
	require.NoError(t, repo.Create(ctx, client))
	assert.False(t, client.CreatedAt.IsZero())

	found, err := repo.GetByUserID(ctx, "USR0001")
	require.NoError(t, err)
	assert.Equal(t, client.ID, found.ID)

	_, err = repo.GetByUserID(ctx, "USR9999")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	first := &domain.User{ID: domain.NewUserID(), Email: "john@example.com", Role: domain.RoleClient}
	require.NoError(t, repo.Create(ctx, first))

	second := &domain.User{ID: domain.NewUserID(), Email: "john@example.com", Role: domain.RoleTrainer}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	byEmail, err := repo.GetByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, byEmail.ID)
}
