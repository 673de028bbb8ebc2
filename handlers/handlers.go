// Package handlers implements the HTTP controllers for the flashcards API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/studyflash/flashcards-api/auth"
	"github.com/studyflash/flashcards-api/errs"
	"github.com/studyflash/flashcards-api/repositories"
)

// API bundles the services and stores the controllers operate on.
type API struct {
	Auth       *auth.Service
	StudySets  *repositories.StudySetStore
	Flashcards *repositories.FlashcardStore
	Logger     *zap.Logger
}

func New(db *gorm.DB, logger *zap.Logger) *API {
	return &API{
		Auth:       auth.NewService(db),
		StudySets:  repositories.NewStudySetStore(db),
		Flashcards: repositories.NewFlashcardStore(db),
		Logger:     logger,
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.Logger.Error("encode response", zap.Error(err))
	}
}

// writeError maps service errors onto the wire taxonomy: field-keyed 400 for
// validation, 401/404/409 for the sentinels, logged 500 for the rest.
func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var v *errs.ValidationError
	switch {
	case errors.As(err, &v):
		a.writeJSON(w, http.StatusBadRequest, v.Fields)
	case errors.Is(err, errs.ErrUnauthorized):
		a.writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid token."})
	case errors.Is(err, errs.ErrNotFound):
		a.writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
	case errors.Is(err, errs.ErrConflict):
		a.writeJSON(w, http.StatusConflict, map[string]string{"detail": "Conflict."})
	default:
		a.Logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		a.writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal server error."})
	}
}

// decodeJSON reads the request body into dst. Unknown fields are ignored, so
// a client-supplied owner never reaches the stores.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return errs.NewValidation("non_field_errors", "invalid request body")
	}
	return nil
}
