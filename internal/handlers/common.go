package handlers

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"getapet-backend/internal/apperr"
	"getapet-backend/internal/storage"

	"github.com/rs/zerolog/log"
)

const maxUploadSize = 32 << 20 // multipart memory limit

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, statusCode, ErrorResponse{Message: message})
}

// respondServiceError maps a service error onto an HTTP status. Unexpected
// errors are logged in full but surfaced as a generic message.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case apperr.IsValidation(err),
		errors.Is(err, apperr.ErrPasswordMismatch),
		errors.Is(err, apperr.ErrSelfAdoption),
		errors.Is(err, apperr.ErrAlreadyScheduled):
		respondError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, apperr.ErrInvalidID):
		respondError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperr.ErrNotFound):
		respondError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, apperr.ErrForbidden):
		respondError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, apperr.ErrEmailInUse):
		respondError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, apperr.ErrInvalidToken), errors.Is(err, apperr.ErrInvalidCredentials):
		respondError(w, err.Error(), http.StatusUnauthorized)
	default:
		log.Error().Err(err).Msg("Unexpected service error")
		respondError(w, "internal server error", http.StatusInternalServerError)
	}
}

// allowed image extensions, matching the upload filter of the web frontend
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// saveUploads persists every file under the given multipart field and returns
// the stored filenames in upload order.
func saveUploads(r *http.Request, store storage.ImageStore, kind, field string) ([]string, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	files := r.MultipartForm.File[field]
	filenames := make([]string, 0, len(files))
	for _, fh := range files {
		name, err := saveUpload(r, store, kind, fh)
		if err != nil {
			return nil, err
		}
		filenames = append(filenames, name)
	}
	return filenames, nil
}

func saveUpload(r *http.Request, store storage.ImageStore, kind string, fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !imageExts[ext] {
		return "", apperr.Validation("image (png or jpg)")
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return store.Save(r.Context(), kind, ext, fh.Header.Get("Content-Type"), f)
}

// isMultipart reports whether the request body is a multipart form
func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}
