package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/cantor/internal/planservice"
)

// NewRouter creates a chi router with all API routes mounted.
// authEnabled controls whether Bearer token auth is enforced.
// sseHandler, if non-nil, is mounted at GET /events inside the auth group.
func NewRouter(svc *planservice.Service, authEnabled bool, token string, sseHandler http.Handler) chi.Router {
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Use(AuthMiddleware(authEnabled, token))

	// Planner operations.
	r.Post("/recommendations", h.Recommend)
	r.Post("/setlists/generate", h.GenerateSetList)
	r.Post("/chords/analyze", h.AnalyzeChords)
	r.Post("/schedule", h.Schedule)
	r.Post("/songs/{id}/practice-track", h.PracticeTrack)

	// Catalog snapshots.
	r.Get("/songs", h.ListSongs)
	r.Get("/songs/{id}", h.GetSong)
	r.Get("/musicians", h.ListMusicians)
	r.Get("/setlists", h.ListSetLists)
	r.Get("/setlists/{id}", h.GetSetList)
	r.Get("/rehearsals", h.ListRehearsals)

	// Search.
	r.Get("/search", h.Search)

	// SSE endpoint (protected by the same auth middleware).
	if sseHandler != nil {
		r.Get("/events", sseHandler.ServeHTTP)
	}

	return r
}
