// Package memory provides in-memory store implementations used by tests
// and local development without a database.
package memory

import (
	"context"
	"sync"

	"getapet-backend/internal/apperr"
	"getapet-backend/internal/models"
)

type UserStore struct {
	mu   sync.RWMutex
	byID map[string]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{byID: make(map[string]models.User)}
}

func (s *UserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[user.ID] = *user
	return nil
}

func (s *UserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.byID[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return &user, nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.byID {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (s *UserStore) Update(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[user.ID]; !ok {
		return apperr.ErrNotFound
	}
	s.byID[user.ID] = *user
	return nil
}
