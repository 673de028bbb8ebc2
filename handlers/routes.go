package handlers

import (
	"net/http"

	"github.com/studyflash/flashcards-api/middleware"
)

// Routes assembles the route table. Paths follow the trailing-slash
// convention of the API surface; {$} anchors each pattern to an exact match.
func (a *API) Routes() http.Handler {
	mux := http.NewServeMux()
	authed := middleware.RequireToken(a.Auth)

	// Auth
	mux.HandleFunc("POST /auth/users/{$}", a.Register)
	mux.HandleFunc("POST /auth/token/login/{$}", a.Login)
	mux.HandleFunc("POST /auth/token/logout/{$}", authed(a.Logout))

	// Study sets
	mux.HandleFunc("GET /api/studysets/{$}", authed(a.ListStudySets))
	mux.HandleFunc("POST /api/studysets/{$}", authed(a.CreateStudySet))
	mux.HandleFunc("GET /api/studysets/{id}/{$}", authed(a.GetStudySet))
	mux.HandleFunc("PUT /api/studysets/{id}/{$}", authed(a.UpdateStudySet))
	mux.HandleFunc("PATCH /api/studysets/{id}/{$}", authed(a.PatchStudySet))
	mux.HandleFunc("DELETE /api/studysets/{id}/{$}", authed(a.DeleteStudySet))

	// Flashcards
	mux.HandleFunc("GET /api/flashcards/{$}", authed(a.ListFlashcards))
	mux.HandleFunc("POST /api/flashcards/{$}", authed(a.CreateFlashcard))
	mux.HandleFunc("GET /api/flashcards/{id}/{$}", authed(a.GetFlashcard))
	mux.HandleFunc("PUT /api/flashcards/{id}/{$}", authed(a.UpdateFlashcard))
	mux.HandleFunc("PATCH /api/flashcards/{id}/{$}", authed(a.PatchFlashcard))
	mux.HandleFunc("DELETE /api/flashcards/{id}/{$}", authed(a.DeleteFlashcard))

	return mux
}
