package handlers

import (
	"net/http"
	"strconv"

	"github.com/studyflash/flashcards-api/errs"
	"github.com/studyflash/flashcards-api/middleware"
	"github.com/studyflash/flashcards-api/models"
)

type flashcardRequest struct {
	StudySet   *uint  `json:"study_set" validate:"required"`
	Term       string `json:"term" validate:"required,max=200"`
	Definition string `json:"definition" validate:"required,max=200"`
}

type flashcardPatch struct {
	StudySet   *uint   `json:"study_set"`
	Term       *string `json:"term" validate:"omitempty,min=1,max=200"`
	Definition *string `json:"definition" validate:"omitempty,min=1,max=200"`
}

// ListFlashcards returns the user's flashcards, optionally restricted to one
// study set via ?study_set=. A filter pointing at a set the user doesn't own
// yields an empty list.
func (a *API) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	var studySetID *uint
	if raw := r.URL.Query().Get("study_set"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			a.writeError(w, r, errs.NewValidation("study_set", "a valid integer is required"))
			return
		}
		v := uint(id)
		studySetID = &v
	}

	cards, err := a.Flashcards.ListForUser(r.Context(), user, studySetID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, cards)
}

// CreateFlashcard validates the payload, resolves the parent set (404 when it
// is missing or owned by someone else) and persists the card.
func (a *API) CreateFlashcard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	var req flashcardRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := checkStruct(req); err != nil {
		a.writeError(w, r, err)
		return
	}

	set, err := a.StudySets.GetForUser(r.Context(), user, *req.StudySet)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	card := models.FlashCard{
		StudySetID: set.ID,
		Term:       req.Term,
		Definition: req.Definition,
	}
	if err := a.Flashcards.Create(r.Context(), &card); err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusCreated, card)
}

func (a *API) GetFlashcard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	card, err := a.Flashcards.GetForUser(r.Context(), user, id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, card)
}

// UpdateFlashcard handles PUT. Re-parenting is allowed, but only onto another
// set the user owns.
func (a *API) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	card, err := a.Flashcards.GetForUser(r.Context(), user, id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	var req flashcardRequest
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := checkStruct(req); err != nil {
		a.writeError(w, r, err)
		return
	}

	if *req.StudySet != card.StudySetID {
		set, err := a.StudySets.GetForUser(r.Context(), user, *req.StudySet)
		if err != nil {
			a.writeError(w, r, err)
			return
		}
		card.StudySetID = set.ID
	}
	card.Term = req.Term
	card.Definition = req.Definition

	if err := a.Flashcards.Save(r.Context(), card); err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, card)
}

// PatchFlashcard handles PATCH: only supplied fields change.
func (a *API) PatchFlashcard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	card, err := a.Flashcards.GetForUser(r.Context(), user, id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	var req flashcardPatch
	if err := decodeJSON(r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := checkStruct(req); err != nil {
		a.writeError(w, r, err)
		return
	}

	if req.StudySet != nil && *req.StudySet != card.StudySetID {
		set, err := a.StudySets.GetForUser(r.Context(), user, *req.StudySet)
		if err != nil {
			a.writeError(w, r, err)
			return
		}
		card.StudySetID = set.ID
	}
	if req.Term != nil {
		card.Term = *req.Term
	}
	if req.Definition != nil {
		card.Definition = *req.Definition
	}

	if err := a.Flashcards.Save(r.Context(), card); err != nil {
		a.writeError(w, r, err)
		return
	}
	a.writeJSON(w, http.StatusOK, card)
}

func (a *API) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)
	id, err := pathID(r)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	if err := a.Flashcards.DeleteForUser(r.Context(), user, id); err != nil {
		a.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
