package memory

import (
	"context"
	"slices"
	"sync"

	"getapet-backend/internal/apperr"
	"getapet-backend/internal/models"
)

type PetStore struct {
	mu    sync.RWMutex
	byID  map[string]models.Pet
	order []string // insertion order; listings return it reversed
}

func NewPetStore() *PetStore {
	return &PetStore{byID: make(map[string]models.Pet)}
}

func clonePet(p models.Pet) *models.Pet {
	p.Images = slices.Clone(p.Images)
	if p.Adopter != nil {
		adopter := *p.Adopter
		p.Adopter = &adopter
	}
	return &p
}

func (s *PetStore) Create(_ context.Context, pet *models.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[pet.ID] = *clonePet(*pet)
	s.order = append(s.order, pet.ID)
	return nil
}

func (s *PetStore) GetByID(_ context.Context, id string) (*models.Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pet, ok := s.byID[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return clonePet(pet), nil
}

func (s *PetStore) ListAll(ctx context.Context) ([]*models.Pet, error) {
	return s.listWhere(func(models.Pet) bool { return true }), nil
}

func (s *PetStore) ListByOwner(_ context.Context, ownerID string) ([]*models.Pet, error) {
	return s.listWhere(func(p models.Pet) bool { return p.Owner.ID == ownerID }), nil
}

func (s *PetStore) ListByAdopter(_ context.Context, adopterID string) ([]*models.Pet, error) {
	return s.listWhere(func(p models.Pet) bool {
		return p.Adopter != nil && p.Adopter.ID == adopterID
	}), nil
}

func (s *PetStore) Update(_ context.Context, pet *models.Pet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[pet.ID]; !ok {
		return apperr.ErrNotFound
	}
	s.byID[pet.ID] = *clonePet(*pet)
	return nil
}

func (s *PetStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(s.byID, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return nil
}

func (s *PetStore) listWhere(match func(models.Pet) bool) []*models.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Pet, 0)
	for i := len(s.order) - 1; i >= 0; i-- {
		pet := s.byID[s.order[i]]
		if match(pet) {
			out = append(out, clonePet(pet))
		}
	}
	return out
}
