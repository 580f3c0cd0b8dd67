package services

import (
	"context"
	"time"

	"getapet-backend/internal/apperr"
	"getapet-backend/internal/models"

	"github.com/google/uuid"
)

// AdoptionService drives the pet adoption workflow:
// Available -> VisitScheduled (adopter set) -> Adopted (available=false).
// Once set, the adopter is never cleared; concluding only flips availability.
type AdoptionService struct {
	pets  PetStore
	users UserStore
}

// NewAdoptionService creates a new adoption service
func NewAdoptionService(pets PetStore, users UserStore) *AdoptionService {
	return &AdoptionService{pets: pets, users: users}
}

// ScheduleVisit records the acting user as the pet's prospective adopter.
// A different user scheduling later overwrites the adopter: last writer wins.
func (s *AdoptionService) ScheduleVisit(ctx context.Context, actingUserID, petID string) (*models.Pet, error) {
	if _, err := uuid.Parse(petID); err != nil {
		return nil, apperr.ErrInvalidID
	}

	pet, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}

	if pet.Owner.ID == actingUserID {
		return nil, apperr.ErrSelfAdoption
	}
	if pet.Adopter != nil && pet.Adopter.ID == actingUserID {
		return nil, apperr.ErrAlreadyScheduled
	}

	adopter, err := s.users.GetByID(ctx, actingUserID)
	if err != nil {
		return nil, err
	}

	pet.Adopter = &models.AdopterRef{
		ID:    adopter.ID,
		Name:  adopter.Name,
		Image: adopter.Image,
	}
	pet.UpdatedAt = time.Now()

	if err := s.pets.Update(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// ConcludeAdoption marks the pet as adopted. Owner-only and idempotent:
// repeating the call on an adopted pet lands in the same final state.
func (s *AdoptionService) ConcludeAdoption(ctx context.Context, actingUserID, petID string) (*models.Pet, error) {
	if _, err := uuid.Parse(petID); err != nil {
		return nil, apperr.ErrInvalidID
	}

	pet, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}

	if pet.Owner.ID != actingUserID {
		return nil, apperr.ErrForbidden
	}

	pet.Available = false
	pet.UpdatedAt = time.Now()

	if err := s.pets.Update(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}
