package handlers

import (
	"net/http"

	"github.com/studyflash/flashcards-api/middleware"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"omitempty,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// Register creates a new account and returns its representation.
func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := checkStruct(req); err != nil {
		a.writeError(w, r, err)
		return
	}

	user, err := a.Auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges credentials for an opaque bearer token.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := checkStruct(req); err != nil {
		a.writeError(w, r, err)
		return
	}

	key, err := a.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]string{"auth_token": key})
}

// Logout revokes the token the request authenticated with.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	key, ok := middleware.TokenFrom(r)
	if !ok {
		a.writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid token."})
		return
	}
	if err := a.Auth.Logout(r.Context(), key); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
