package services

import (
	"context"

	"getapet-backend/internal/models"
)

// UserStore is the persistence surface the user service needs.
// Implemented by repository.UserRepository and the in-memory test store.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// PetStore is the persistence surface the pet and adoption services need.
type PetStore interface {
	Create(ctx context.Context, pet *models.Pet) error
	GetByID(ctx context.Context, id string) (*models.Pet, error)
	ListAll(ctx context.Context) ([]*models.Pet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Pet, error)
	ListByAdopter(ctx context.Context, adopterID string) ([]*models.Pet, error)
	Update(ctx context.Context, pet *models.Pet) error
	Delete(ctx context.Context, id string) error
}
