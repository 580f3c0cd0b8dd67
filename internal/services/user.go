package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"getapet-backend/internal/apperr"
	"getapet-backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// UserService handles account registration, authentication and profile edits
type UserService struct {
	users  UserStore
	tokens *TokenService
}

// NewUserService creates a new user service
func NewUserService(users UserStore, tokens *TokenService) *UserService {
	return &UserService{users: users, tokens: tokens}
}

// RegisterInput carries the fields of a registration request
type RegisterInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// Register creates an account and returns it with an issued token
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	switch {
	case in.Name == "":
		return nil, "", apperr.Validation("name")
	case in.Email == "":
		return nil, "", apperr.Validation("email")
	case in.Phone == "":
		return nil, "", apperr.Validation("phone")
	case in.Password == "":
		return nil, "", apperr.Validation("password")
	case in.ConfirmPassword == "":
		return nil, "", apperr.Validation("password confirmation")
	}
	if in.Password != in.ConfirmPassword {
		return nil, "", apperr.ErrPasswordMismatch
	}

	_, err := s.users.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, "", apperr.ErrEmailInUse
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Name)
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

// Login authenticates an account by email and password and issues a token
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" {
		return nil, "", apperr.Validation("email")
	}
	if password == "" {
		return nil, "", apperr.Validation("password")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Name)
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

// CurrentFromToken resolves the user a token belongs to.
// An empty token means an anonymous caller and yields (nil, nil).
func (s *UserService) CurrentFromToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// GetByID loads a public profile, password scrubbed
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrInvalidID
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// EditInput carries the fields of a profile update request
type EditInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	Image           string // new stored filename, empty when no upload accompanied the request
}

// Edit applies a partial profile update for the acting user.
// Name, email and phone must always be resupplied. The password only changes
// when both password and confirmation are present and equal; supplying them
// unequal is an error, leaving both empty requests no change.
func (s *UserService) Edit(ctx context.Context, actingUserID string, in EditInput) (*models.User, error) {
	user, err := s.users.GetByID(ctx, actingUserID)
	if err != nil {
		return nil, err
	}

	if in.Name == "" {
		return nil, apperr.Validation("name")
	}
	if in.Email == "" {
		return nil, apperr.Validation("email")
	}
	if in.Phone == "" {
		return nil, apperr.Validation("phone")
	}

	if in.Email != user.Email {
		if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
			return nil, apperr.ErrEmailInUse
		} else if !errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
	}

	if in.Password != in.ConfirmPassword {
		return nil, apperr.ErrPasswordMismatch
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	user.Name = in.Name
	user.Email = in.Email
	user.Phone = in.Phone
	if in.Image != "" {
		user.Image = in.Image
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}
