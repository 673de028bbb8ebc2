package handlers

import (
	"net/http"
	"strconv"

	"github.com/studyflash/flashcards-api/errs"
	"github.com/studyflash/flashcards-api/middleware"
	"github.com/studyflash/flashcards-api/models"
)

type studySetRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
}

type studySetPatch struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
}

// pathID parses the {id} path segment. Non-numeric ids are reported as not
// found, the same as ids that don't exist.
func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, errs.ErrNotFound
	}
	return uint(id), nil
}

func (a *API) ListStudySets(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)
	sets, err := a.StudySets.ListForUser(r.Context(), user)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, sets)
}

func (a *API) CreateStudySet(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	var req studySetRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := checkStruct(req); err != nil {
		a.writeError(w, r, err)
		return
	}

	set := models.StudySet{Title: req.Title, Description: req.Description}
	if err := a.StudySets.Create(r.Context(), user, &set); err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, set)
}

func (a *API) GetStudySet(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	set, err := a.StudySets.GetForUser(r.Context(), user, id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, set)
}

// UpdateStudySet handles PUT: all required fields must be present.
func (a *API) UpdateStudySet(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	set, err := a.StudySets.GetForUser(r.Context(), user, id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	var req studySetRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := checkStruct(req); err != nil {
		a.writeError(w, r, err)
		return
	}

	set.Title = req.Title
	set.Description = req.Description
	if err := a.StudySets.Save(r.Context(), set); err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, set)
}

// PatchStudySet handles PATCH: only supplied fields change.
func (a *API) PatchStudySet(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	set, err := a.StudySets.GetForUser(r.Context(), user, id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	var req studySetPatch
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := checkStruct(req); err != nil {
		a.writeError(w, r, err)
		return
	}

	if req.Title != nil {
		set.Title = *req.Title
	}
	if req.Description != nil {
		set.Description = *req.Description
	}
	if err := a.StudySets.Save(r.Context(), set); err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, set)
}

func (a *API) DeleteStudySet(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	if err := a.StudySets.DeleteForUser(r.Context(), user, id); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
