package handlers

import (
	"encoding/json"
	"net/http"

	"getapet-backend/internal/middleware"
	"getapet-backend/internal/models"
	"getapet-backend/internal/services"
	"getapet-backend/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService *services.UserService
	images      storage.ImageStore
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService, images storage.ImageStore) *UserHandler {
	return &UserHandler{
		userService: userService,
		images:      images,
	}
}

type authResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"userId"`
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
}

// Register handles POST /users/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, token, err := h.userService.Register(r.Context(), services.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().Str("user_id", user.ID).Msg("User registered")

	respondJSON(w, http.StatusOK, authResponse{
		Message: "You are authenticated",
		Token:   token,
		UserID:  user.ID,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /users/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, token, err := h.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, authResponse{
		Message: "You are authenticated",
		Token:   token,
		UserID:  user.ID,
	})
}

// CheckUser handles GET /users/checkuser; anonymous callers get null
func (h *UserHandler) CheckUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.CurrentFromToken(r.Context(), middleware.BearerToken(r))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// GetUserByID handles GET /users/{id}
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]*models.User{"user": user})
}

// EditUser handles PATCH /users/edit. The body is either JSON or a multipart
// form with an optional "image" file part.
func (h *UserHandler) EditUser(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())

	var in services.EditInput
	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			respondError(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		in = services.EditInput{
			Name:            r.FormValue("name"),
			Email:           r.FormValue("email"),
			Phone:           r.FormValue("phone"),
			Password:        r.FormValue("password"),
			ConfirmPassword: r.FormValue("confirmpassword"),
		}

		uploaded, err := saveUploads(r, h.images, storage.KindUsers, "image")
		if err != nil {
			respondServiceError(w, err)
			return
		}
		if len(uploaded) > 0 {
			in.Image = uploaded[0]
		}
	} else {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		in = services.EditInput{
			Name:            req.Name,
			Email:           req.Email,
			Phone:           req.Phone,
			Password:        req.Password,
			ConfirmPassword: req.ConfirmPassword,
		}
	}

	user, err := h.userService.Edit(r.Context(), claims.UserID, in)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	log.Info().Str("user_id", user.ID).Msg("User updated")

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "User updated",
		"data":    user,
	})
}
