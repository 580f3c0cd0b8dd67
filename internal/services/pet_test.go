package services_test

import (
	"context"
	"testing"

	"getapet-backend/internal/apperr"
	"getapet-backend/internal/models"
	"getapet-backend/internal/repository/memory"
	"getapet-backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	users    *services.UserService
	pets     *services.PetService
	adoption *services.AdoptionService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	userStore := memory.NewUserStore()
	petStore := memory.NewPetStore()
	tokens := services.NewTokenService("test-secret", 1)
	return &fixture{
		users:    services.NewUserService(userStore, tokens),
		pets:     services.NewPetService(petStore, userStore),
		adoption: services.NewAdoptionService(petStore, userStore),
	}
}

func (f *fixture) registerUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	user, _, err := f.users.Register(context.Background(), services.RegisterInput{
		Name:            name,
		Email:           email,
		Phone:           "555-0100",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
	})
	require.NoError(t, err)
	return user
}

func validPet() services.PetInput {
	return services.PetInput{Name: "Rex", Age: 3, Weight: 12.5, Color: "brown"}
}

func TestPetCreate(t *testing.T) {
	f := newFixture(t)
	owner := f.registerUser(t, "Alice", "alice@example.com")
	ctx := context.Background()

	t.Run("zero images", func(t *testing.T) {
		_, err := f.pets.Create(ctx, owner.ID, validPet(), nil)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("missing fields", func(t *testing.T) {
		for name, in := range map[string]services.PetInput{
			"name":   {Age: 3, Weight: 12.5, Color: "brown"},
			"age":    {Name: "Rex", Weight: 12.5, Color: "brown"},
			"weight": {Name: "Rex", Age: 3, Color: "brown"},
			"color":  {Name: "Rex", Age: 3, Weight: 12.5},
		} {
			_, err := f.pets.Create(ctx, owner.ID, in, []string{"a.jpg"})
			assert.True(t, apperr.IsValidation(err), "missing %s", name)
		}
	})

	t.Run("images echoed in order", func(t *testing.T) {
		pet, err := f.pets.Create(ctx, owner.ID, validPet(), []string{"a.jpg", "b.jpg", "c.jpg"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, pet.Images)
		assert.True(t, pet.Available)
		assert.Nil(t, pet.Adopter)
	})

	t.Run("owner snapshot embedded", func(t *testing.T) {
		pet, err := f.pets.Create(ctx, owner.ID, validPet(), []string{"a.jpg"})
		require.NoError(t, err)
		assert.Equal(t, owner.ID, pet.Owner.ID)
		assert.Equal(t, "Alice", pet.Owner.Name)
		assert.Equal(t, "555-0100", pet.Owner.Phone)
	})
}

func TestPetOwnerSnapshotIsStale(t *testing.T) {
	f := newFixture(t)
	owner := f.registerUser(t, "Alice", "alice@example.com")
	ctx := context.Background()

	pet, err := f.pets.Create(ctx, owner.ID, validPet(), []string{"a.jpg"})
	require.NoError(t, err)

	_, err = f.users.Edit(ctx, owner.ID, services.EditInput{
		Name:  "Renamed",
		Email: "alice@example.com",
		Phone: "555-0999",
	})
	require.NoError(t, err)

	// the snapshot was taken at listing time and does not follow the user
	got, err := f.pets.GetByID(ctx, pet.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Owner.Name)
	assert.Equal(t, "555-0100", got.Owner.Phone)
}

func TestPetListAllNewestFirst(t *testing.T) {
	f := newFixture(t)
	owner := f.registerUser(t, "Alice", "alice@example.com")
	ctx := context.Background()

	first, err := f.pets.Create(ctx, owner.ID, validPet(), []string{"a.jpg"})
	require.NoError(t, err)
	in := validPet()
	in.Name = "Mila"
	second, err := f.pets.Create(ctx, owner.ID, in, []string{"b.jpg"})
	require.NoError(t, err)

	pets, err := f.pets.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.Equal(t, second.ID, pets[0].ID)
	assert.Equal(t, first.ID, pets[1].ID)
}

func TestPetListByOwner(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	ctx := context.Background()

	mine, err := f.pets.Create(ctx, alice.ID, validPet(), []string{"a.jpg"})
	require.NoError(t, err)
	_, err = f.pets.Create(ctx, bob.ID, validPet(), []string{"b.jpg"})
	require.NoError(t, err)

	pets, err := f.pets.ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, mine.ID, pets[0].ID)
}

func TestPetGetByIDMalformed(t *testing.T) {
	f := newFixture(t)

	_, err := f.pets.GetByID(context.Background(), "definitely-not-a-uuid")
	assert.ErrorIs(t, err, apperr.ErrInvalidID)
}

func TestPetRemove(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	ctx := context.Background()

	pet, err := f.pets.Create(ctx, alice.ID, validPet(), []string{"a.jpg"})
	require.NoError(t, err)

	err = f.pets.Remove(ctx, bob.ID, pet.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	err = f.pets.Remove(ctx, alice.ID, pet.ID)
	require.NoError(t, err)

	_, err = f.pets.GetByID(ctx, pet.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPetUpdate(t *testing.T) {
	f := newFixture(t)
	alice := f.registerUser(t, "Alice", "alice@example.com")
	bob := f.registerUser(t, "Bob", "bob@example.com")
	ctx := context.Background()

	pet, err := f.pets.Create(ctx, alice.ID, validPet(), []string{"a.jpg"})
	require.NoError(t, err)

	t.Run("non-owner forbidden", func(t *testing.T) {
		_, err := f.pets.Update(ctx, bob.ID, pet.ID, validPet(), nil)
		assert.ErrorIs(t, err, apperr.ErrForbidden)
	})

	t.Run("all fields must be resupplied", func(t *testing.T) {
		in := validPet()
		in.Color = ""
		_, err := f.pets.Update(ctx, alice.ID, pet.ID, in, nil)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("images untouched without new upload", func(t *testing.T) {
		in := validPet()
		in.Name = "Rexy"
		updated, err := f.pets.Update(ctx, alice.ID, pet.ID, in, nil)
		require.NoError(t, err)
		assert.Equal(t, "Rexy", updated.Name)
		assert.Equal(t, []string{"a.jpg"}, updated.Images)
	})

	t.Run("images replaced wholesale", func(t *testing.T) {
		updated, err := f.pets.Update(ctx, alice.ID, pet.ID, validPet(), []string{"x.jpg", "y.jpg"})
		require.NoError(t, err)
		assert.Equal(t, []string{"x.jpg", "y.jpg"}, updated.Images)
	})
}
