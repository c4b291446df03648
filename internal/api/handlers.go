package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/starford/cantor/internal/apperr"
	"github.com/starford/cantor/internal/planservice"
)

// Handler holds API route handlers.
type Handler struct {
	svc *planservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(svc *planservice.Service) *Handler {
	return &Handler{svc: svc}
}

// Recommend handles POST /api/recommendations.
//
//	@Summary		Recommend songs for a theme, mood, and service type
//	@Tags			planner
//	@Accept			json
//	@Produce		json
//	@Param			body	body		RecommendRequest	true	"Recommendation criteria"
//	@Success		200		{object}	RecommendResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/recommendations [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	songs := h.svc.RecommendSongs(r.Context(), req)
	writeJSON(w, http.StatusOK, RecommendResponse{Songs: songs})
}

// GenerateSetList handles POST /api/setlists/generate.
//
//	@Summary		Generate a draft set list
//	@Tags			planner
//	@Accept			json
//	@Produce		json
//	@Param			body	body		GenerateSetListRequest	true	"Generation config"
//	@Success		201		{object}	models.SetList
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/setlists/generate [post]
func (h *Handler) GenerateSetList(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req GenerateSetListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	sl, err := h.svc.GenerateSetList(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		} else {
			slog.Error("generate set list failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusCreated, sl)
}

// AnalyzeChords handles POST /api/chords/analyze.
//
//	@Summary		Analyze a chord progression
//	@Tags			planner
//	@Accept			json
//	@Produce		json
//	@Param			body	body		AnalyzeChordsRequest	true	"Chord text"
//	@Success		200		{object}	ChordAnalysis
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/chords/analyze [post]
func (h *Handler) AnalyzeChords(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req AnalyzeChordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	writeJSON(w, http.StatusOK, h.svc.AnalyzeChordProgression(r.Context(), req.Chords))
}

// Schedule handles POST /api/schedule.
//
//	@Summary		Schedule musicians for a service date
//	@Tags			planner
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ScheduleRequest	true	"Date and required instruments"
//	@Success		200		{object}	ScheduleResult
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/schedule [post]
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Date.IsZero() {
		writeJSON(w, http.StatusBadRequest, errorBody("date is required"))
		return
	}
	writeJSON(w, http.StatusOK, h.svc.ScheduleMusicians(r.Context(), req.Date, req.Instruments))
}

// PracticeTrack handles POST /api/songs/{id}/practice-track.
//
//	@Summary		Generate a practice track descriptor for a song
//	@Tags			planner
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Song id"
//	@Param			body	body		PracticeTrackRequest	false	"Track options"
//	@Success		200		{object}	PracticeTrack
//	@Failure		404		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/songs/{id}/practice-track [post]
func (h *Handler) PracticeTrack(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	id := chi.URLParam(r, "id")
	var req PracticeTrackRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
			return
		}
	}
	track, err := h.svc.GeneratePracticeTrack(r.Context(), id, req)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
		} else {
			slog.Error("practice track failed", slog.String("id", id), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, track)
}

// ListSongs handles GET /api/songs.
//
//	@Summary		List the song catalog
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	SongListResponse
//	@Security		BearerAuth
//	@Router			/songs [get]
func (h *Handler) ListSongs(w http.ResponseWriter, r *http.Request) {
	songs := h.svc.Songs(r.Context())
	writeJSON(w, http.StatusOK, SongListResponse{Songs: songs, Total: len(songs)})
}

// GetSong handles GET /api/songs/{id}.
//
//	@Summary		Get a single song by id
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		string	true	"Song id"
//	@Success		200	{object}	models.Song
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/songs/{id} [get]
func (h *Handler) GetSong(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	song, err := h.svc.Song(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, song)
}

// ListMusicians handles GET /api/musicians.
//
//	@Summary		List the musician roster
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	MusicianListResponse
//	@Security		BearerAuth
//	@Router			/musicians [get]
func (h *Handler) ListMusicians(w http.ResponseWriter, r *http.Request) {
	musicians := h.svc.Musicians(r.Context())
	writeJSON(w, http.StatusOK, MusicianListResponse{Musicians: musicians, Total: len(musicians)})
}

// ListSetLists handles GET /api/setlists.
//
//	@Summary		List all set lists
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	SetListListResponse
//	@Security		BearerAuth
//	@Router			/setlists [get]
func (h *Handler) ListSetLists(w http.ResponseWriter, r *http.Request) {
	setLists := h.svc.SetLists(r.Context())
	writeJSON(w, http.StatusOK, SetListListResponse{SetLists: setLists, Total: len(setLists)})
}

// GetSetList handles GET /api/setlists/{id}.
//
//	@Summary		Get a single set list by id
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		string	true	"Set list id"
//	@Success		200	{object}	models.SetList
//	@Failure		404	{object}	errResponse
//	@Security		BearerAuth
//	@Router			/setlists/{id} [get]
func (h *Handler) GetSetList(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sl, err := h.svc.SetList(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, sl)
}

// ListRehearsals handles GET /api/rehearsals.
//
//	@Summary		List all rehearsals
//	@Tags			catalog
//	@Produce		json
//	@Success		200	{object}	RehearsalListResponse
//	@Security		BearerAuth
//	@Router			/rehearsals [get]
func (h *Handler) ListRehearsals(w http.ResponseWriter, r *http.Request) {
	rehearsals := h.svc.Rehearsals(r.Context())
	writeJSON(w, http.StatusOK, RehearsalListResponse{Rehearsals: rehearsals, Total: len(rehearsals)})
}

// Search handles GET /api/search.
//
//	@Summary		Full-text search across song titles, lyrics, and themes
//	@Tags			search
//	@Produce		json
//	@Param			q		query		string	true	"Search query"
//	@Param			limit	query		int		false	"Max results"
//	@Success		200		{object}	SearchResponse
//	@Failure		400		{object}	errResponse
//	@Security		BearerAuth
//	@Router			/search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("query parameter 'q' is required"))
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	results, err := h.svc.SearchSongs(r.Context(), q, limit)
	if err != nil {
		slog.Error("search failed", slog.String("query", q), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if results == nil {
		results = []SearchResult{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}
