package services

import (
	"context"
	"time"

	"getapet-backend/internal/apperr"
	"getapet-backend/internal/models"

	"github.com/google/uuid"
)

// PetService handles pet listings and their ownership rules
type PetService struct {
	pets  PetStore
	users UserStore
}

// NewPetService creates a new pet service
func NewPetService(pets PetStore, users UserStore) *PetService {
	return &PetService{pets: pets, users: users}
}

// PetInput carries the fields of a pet create or update request
type PetInput struct {
	Name   string
	Age    int
	Weight float64
	Color  string
}

func validatePetInput(in PetInput) error {
	switch {
	case in.Name == "":
		return apperr.Validation("name")
	case in.Age <= 0:
		return apperr.Validation("age")
	case in.Weight <= 0:
		return apperr.Validation("weight")
	case in.Color == "":
		return apperr.Validation("color")
	}
	return nil
}

// Create lists a pet for adoption, embedding an owner snapshot of the acting user
func (s *PetService) Create(ctx context.Context, actingUserID string, in PetInput, images []string) (*models.Pet, error) {
	if err := validatePetInput(in); err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, apperr.Validation("image")
	}

	owner, err := s.users.GetByID(ctx, actingUserID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	pet := &models.Pet{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Age:       in.Age,
		Weight:    in.Weight,
		Color:     in.Color,
		Images:    images,
		Available: true,
		Owner: models.OwnerRef{
			ID:    owner.ID,
			Name:  owner.Name,
			Image: owner.Image,
			Phone: owner.Phone,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.pets.Create(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// ListAll returns every listed pet, newest first
func (s *PetService) ListAll(ctx context.Context) ([]*models.Pet, error) {
	return s.pets.ListAll(ctx)
}

// ListByOwner returns the pets the acting user has listed, newest first
func (s *PetService) ListByOwner(ctx context.Context, actingUserID string) ([]*models.Pet, error) {
	return s.pets.ListByOwner(ctx, actingUserID)
}

// ListAdoptionsOf returns the pets the acting user has scheduled visits for, newest first
func (s *PetService) ListAdoptionsOf(ctx context.Context, actingUserID string) ([]*models.Pet, error) {
	return s.pets.ListByAdopter(ctx, actingUserID)
}

// GetByID loads a single pet. Malformed ids fail before any store round-trip.
func (s *PetService) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrInvalidID
	}
	return s.pets.GetByID(ctx, id)
}

// Remove deletes a pet. Only its owner may do so.
func (s *PetService) Remove(ctx context.Context, actingUserID, id string) error {
	pet, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pet.Owner.ID != actingUserID {
		return apperr.ErrForbidden
	}
	return s.pets.Delete(ctx, id)
}

// Update edits a pet's listing. All four fields must be resupplied; the image
// sequence is replaced wholesale only when new images accompany the request.
func (s *PetService) Update(ctx context.Context, actingUserID, id string, in PetInput, images []string) (*models.Pet, error) {
	pet, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pet.Owner.ID != actingUserID {
		return nil, apperr.ErrForbidden
	}
	if err := validatePetInput(in); err != nil {
		return nil, err
	}

	pet.Name = in.Name
	pet.Age = in.Age
	pet.Weight = in.Weight
	pet.Color = in.Color
	if len(images) > 0 {
		pet.Images = images
	}
	pet.UpdatedAt = time.Now()

	if err := s.pets.Update(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}
