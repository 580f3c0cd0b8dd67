package services_test

import (
	"context"
	"testing"

	"getapet-backend/internal/apperr"
	"getapet-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAdoption(t *testing.T) (*fixture, *models.User, *models.User, *models.Pet) {
	t.Helper()
	f := newFixture(t)
	owner := f.registerUser(t, "Alice", "alice@example.com")
	adopter := f.registerUser(t, "Bob", "bob@example.com")

	pet, err := f.pets.Create(context.Background(), owner.ID, validPet(), []string{"a.jpg"})
	require.NoError(t, err)
	return f, owner, adopter, pet
}

func TestScheduleVisit(t *testing.T) {
	f, owner, adopter, pet := setupAdoption(t)
	ctx := context.Background()

	t.Run("owner cannot adopt own pet", func(t *testing.T) {
		_, err := f.adoption.ScheduleVisit(ctx, owner.ID, pet.ID)
		assert.ErrorIs(t, err, apperr.ErrSelfAdoption)
	})

	t.Run("sets adopter snapshot", func(t *testing.T) {
		got, err := f.adoption.ScheduleVisit(ctx, adopter.ID, pet.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Adopter)
		assert.Equal(t, adopter.ID, got.Adopter.ID)
		assert.Equal(t, "Bob", got.Adopter.Name)
		assert.True(t, got.Available, "scheduling does not change availability")
	})

	t.Run("same user twice", func(t *testing.T) {
		_, err := f.adoption.ScheduleVisit(ctx, adopter.ID, pet.ID)
		assert.ErrorIs(t, err, apperr.ErrAlreadyScheduled)
	})

	t.Run("different user overwrites", func(t *testing.T) {
		carol := f.registerUser(t, "Carol", "carol@example.com")
		got, err := f.adoption.ScheduleVisit(ctx, carol.ID, pet.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Adopter)
		assert.Equal(t, carol.ID, got.Adopter.ID)
	})

	t.Run("malformed pet id", func(t *testing.T) {
		_, err := f.adoption.ScheduleVisit(ctx, adopter.ID, "nope")
		assert.ErrorIs(t, err, apperr.ErrInvalidID)
	})
}

func TestScheduleVisitShowsUpInMyAdoptions(t *testing.T) {
	f, _, adopter, pet := setupAdoption(t)
	ctx := context.Background()

	_, err := f.adoption.ScheduleVisit(ctx, adopter.ID, pet.ID)
	require.NoError(t, err)

	pets, err := f.pets.ListAdoptionsOf(ctx, adopter.ID)
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, pet.ID, pets[0].ID)
}

func TestConcludeAdoption(t *testing.T) {
	f, owner, adopter, pet := setupAdoption(t)
	ctx := context.Background()

	_, err := f.adoption.ScheduleVisit(ctx, adopter.ID, pet.ID)
	require.NoError(t, err)

	t.Run("non-owner forbidden", func(t *testing.T) {
		_, err := f.adoption.ConcludeAdoption(ctx, adopter.ID, pet.ID)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("owner concludes", func(t *testing.T) {
		got, err := f.adoption.ConcludeAdoption(ctx, owner.ID, pet.ID)
		require.NoError(t, err)
		assert.False(t, got.Available)
		require.NotNil(t, got.Adopter, "concluding keeps the adopter")
		assert.Equal(t, adopter.ID, got.Adopter.ID)
	})

	t.Run("idempotent", func(t *testing.T) {
		got, err := f.adoption.ConcludeAdoption(ctx, owner.ID, pet.ID)
		require.NoError(t, err)
		assert.False(t, got.Available)
	})

	// scheduling against an adopted pet is still accepted
	t.Run("schedule after conclusion", func(t *testing.T) {
		carol := f.registerUser(t, "Carol", "carol@example.com")
		got, err := f.adoption.ScheduleVisit(ctx, carol.ID, pet.ID)
		require.NoError(t, err)
		assert.Equal(t, carol.ID, got.Adopter.ID)
		assert.False(t, got.Available)
	})
}
