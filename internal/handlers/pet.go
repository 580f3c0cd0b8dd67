package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"getapet-backend/internal/apperr"
	"getapet-backend/internal/middleware"
	"getapet-backend/internal/models"
	"getapet-backend/internal/services"
	"getapet-backend/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// PetHandler handles pet-related HTTP requests
type PetHandler struct {
	petService      *services.PetService
	adoptionService *services.AdoptionService
	images          storage.ImageStore
}

// NewPetHandler creates a new pet handler
func NewPetHandler(petService *services.PetService, adoptionService *services.AdoptionService, images storage.ImageStore) *PetHandler {
	return &PetHandler{
		petService:      petService,
		adoptionService: adoptionService,
		images:          images,
	}
}

// petInputFromForm reads the pet fields from a parsed multipart form.
// Missing numeric fields surface as validation errors, not parse failures.
func petInputFromForm(r *http.Request) (services.PetInput, error) {
	in := services.PetInput{
		Name:  r.FormValue("name"),
		Color: r.FormValue("color"),
	}

	if v := r.FormValue("age"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			return in, apperr.Validation("age")
		}
		in.Age = age
	}
	if v := r.FormValue("weight"); v != "" {
		weight, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return in, apperr.Validation("weight")
		}
		in.Weight = weight
	}
	return in, nil
}

// Create handles POST /pets/create (multipart form with "images" files)
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	in, err := petInputFromForm(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	imageFiles, err := saveUploads(r, h.images, storage.KindPets, "images")
	if err != nil {
		respondServiceError(w, err)
		return
	}

	pet, err := h.petService.Create(r.Context(), claims.UserID, in, imageFiles)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("pet_id", pet.ID).
		Str("owner_id", pet.Owner.ID).
		Msg("Pet listed")

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Pet listed for adoption",
		"pet":     pet,
	})
}

// GetAll handles GET /pets
func (h *PetHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	pets, err := h.petService.ListAll(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string][]*models.Pet{"pets": pets})
}

// GetMyPets handles GET /pets/mypets
func (h *PetHandler) GetMyPets(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	pets, err := h.petService.ListByOwner(r.Context(), claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string][]*models.Pet{"pets": pets})
}

// GetMyAdoptions handles GET /pets/myadoptions
func (h *PetHandler) GetMyAdoptions(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	pets, err := h.petService.ListAdoptionsOf(r.Context(), claims.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string][]*models.Pet{"pets": pets})
}

// GetPetByID handles GET /pets/{id}
func (h *PetHandler) GetPetByID(w http.ResponseWriter, r *http.Request) {
	pet, err := h.petService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]*models.Pet{"pet": pet})
}

// RemovePet handles DELETE /pets/{id}
func (h *PetHandler) RemovePet(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	petID := chi.URLParam(r, "id")

	if err := h.petService.Remove(r.Context(), claims.UserID, petID); err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().Str("pet_id", petID).Msg("Pet removed")

	respondJSON(w, http.StatusOK, map[string]string{"message": "Pet removed"})
}

type petUpdateRequest struct {
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Weight float64 `json:"weight"`
	Color  string  `json:"color"`
}

// UpdatePet handles PATCH /pets/{id}. The body is either a multipart form
// with optional "images" files or, since images are optional here, plain JSON.
func (h *PetHandler) UpdatePet(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	var in services.PetInput
	var imageFiles []string
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			respondError(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		var err error
		in, err = petInputFromForm(r)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		imageFiles, err = saveUploads(r, h.images, storage.KindPets, "images")
		if err != nil {
			respondServiceError(w, err)
			return
		}
	} else {
		var req petUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		in = services.PetInput{
			Name:   req.Name,
			Age:    req.Age,
			Weight: req.Weight,
			Color:  req.Color,
		}
	}

	pet, err := h.petService.Update(r.Context(), claims.UserID, chi.URLParam(r, "id"), in, imageFiles)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Pet updated",
		"pet":     pet,
	})
}

// ScheduleVisit handles PATCH /pets/schedule/{id}
func (h *PetHandler) ScheduleVisit(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	petID := chi.URLParam(r, "id")

	pet, err := h.adoptionService.ScheduleVisit(r.Context(), claims.UserID, petID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("pet_id", pet.ID).
		Str("adopter_id", claims.UserID).
		Msg("Visit scheduled")

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Visit scheduled, contact " + pet.Owner.Name + " at " + pet.Owner.Phone,
		"pet":     pet,
	})
}

// ConcludeAdoption handles PATCH /pets/conclude/{id}
func (h *PetHandler) ConcludeAdoption(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	petID := chi.URLParam(r, "id")

	pet, err := h.adoptionService.ConcludeAdoption(r.Context(), claims.UserID, petID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().Str("pet_id", pet.ID).Msg("Adoption concluded")

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Adoption concluded",
		"pet":     pet,
	})
}
