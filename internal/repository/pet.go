package repository

import (
	"context"
	"errors"
	"fmt"

	"getapet-backend/internal/apperr"
	"getapet-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const petColumns = `
	id, name, age, weight, color, images, available,
	owner_id, owner_name, owner_image, owner_phone,
	adopter_id, adopter_name, adopter_image,
	created_at, updated_at
`

// PetRepository handles database operations for pets
type PetRepository struct {
	db *pgxpool.Pool
}

// NewPetRepository creates a new pet repository
func NewPetRepository(db *pgxpool.Pool) *PetRepository {
	return &PetRepository{db: db}
}

// Create creates a new pet
func (r *PetRepository) Create(ctx context.Context, pet *models.Pet) error {
	query := `
		INSERT INTO pets (` + petColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	adopterID, adopterName, adopterImage := adopterFields(pet)
	_, err := r.db.Exec(ctx, query,
		pet.ID, pet.Name, pet.Age, pet.Weight, pet.Color, pet.Images, pet.Available,
		pet.Owner.ID, pet.Owner.Name, pet.Owner.Image, pet.Owner.Phone,
		adopterID, adopterName, adopterImage,
		pet.CreatedAt, pet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

// GetByID retrieves a pet by ID
func (r *PetRepository) GetByID(ctx context.Context, id string) (*models.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE id = $1`
	pet, err := scanPet(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}
	return pet, nil
}

// ListAll retrieves every pet, newest first
func (r *PetRepository) ListAll(ctx context.Context) ([]*models.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// ListByOwner retrieves pets listed by a user, newest first
func (r *PetRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, ownerID)
}

// ListByAdopter retrieves pets a user has scheduled a visit for, newest first
func (r *PetRepository) ListByAdopter(ctx context.Context, adopterID string) ([]*models.Pet, error) {
	query := `SELECT ` + petColumns + ` FROM pets WHERE adopter_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, adopterID)
}

// Update persists the mutable fields of a pet
func (r *PetRepository) Update(ctx context.Context, pet *models.Pet) error {
	query := `
		UPDATE pets
		SET name = $2, age = $3, weight = $4, color = $5, images = $6, available = $7,
		    adopter_id = $8, adopter_name = $9, adopter_image = $10, updated_at = $11
		WHERE id = $1
	`
	adopterID, adopterName, adopterImage := adopterFields(pet)
	result, err := r.db.Exec(ctx, query,
		pet.ID, pet.Name, pet.Age, pet.Weight, pet.Color, pet.Images, pet.Available,
		adopterID, adopterName, adopterImage, pet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update pet: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// Delete removes a pet
func (r *PetRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pet: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *PetRepository) list(ctx context.Context, query string, args ...any) ([]*models.Pet, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	defer rows.Close()

	pets := make([]*models.Pet, 0)
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pet: %w", err)
		}
		pets = append(pets, pet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pets: %w", err)
	}
	return pets, nil
}

func scanPet(row pgx.Row) (*models.Pet, error) {
	var pet models.Pet
	var adopterID, adopterName, adopterImage *string
	err := row.Scan(
		&pet.ID, &pet.Name, &pet.Age, &pet.Weight, &pet.Color, &pet.Images, &pet.Available,
		&pet.Owner.ID, &pet.Owner.Name, &pet.Owner.Image, &pet.Owner.Phone,
		&adopterID, &adopterName, &adopterImage,
		&pet.CreatedAt, &pet.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if adopterID != nil {
		pet.Adopter = &models.AdopterRef{ID: *adopterID}
		if adopterName != nil {
			pet.Adopter.Name = *adopterName
		}
		if adopterImage != nil {
			pet.Adopter.Image = *adopterImage
		}
	}
	return &pet, nil
}

func adopterFields(pet *models.Pet) (id, name, image *string) {
	if pet.Adopter == nil {
		return nil, nil, nil
	}
	return &pet.Adopter.ID, &pet.Adopter.Name, &pet.Adopter.Image
}
