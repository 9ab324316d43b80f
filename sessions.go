package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type sessionReq struct {
	SessionID   string   `json:"sessionId,omitempty"`
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	JSONFileURL string   `json:"json_file_url"`
}

// POST /api/v1/my-sessions/save-draft
func (a *api) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	a.upsertSession(w, r, statusDraft)
}

// POST /api/v1/my-sessions/publish
func (a *api) handlePublish(w http.ResponseWriter, r *http.Request) {
	a.upsertSession(w, r, statusPublished)
}

// upsertSession creates a record for the caller, or updates one the caller
// owns, setting its status to the requested state. Draft->published and
// published->draft are both legal; there is no forced progression.
func (a *api) upsertSession(w http.ResponseWriter, r *http.Request, status string) {
	u := currentUser(r.Context())
	if u == nil {
		errorJSON(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var in sessionReq
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	title := strings.TrimSpace(in.Title)
	fileURL := strings.TrimSpace(in.JSONFileURL)
	if title == "" || fileURL == "" {
		errorJSON(w, http.StatusBadRequest, "Title and JSON file URL are required")
		return
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	okMsg := "Draft session saved successfully"
	failMsg := "Error occurred while saving draft session"
	if status == statusPublished {
		okMsg = "Session published successfully"
		failMsg = "Error occurred while publishing session"
	}

	if in.SessionID == "" {
		rec := Session{
			UserID:      u.ID,
			Title:       title,
			Tags:        tags,
			JSONFileURL: fileURL,
			Status:      status,
		}
		if err := a.sessions.CreateSession(r.Context(), &rec); err != nil {
			errorJSON(w, http.StatusInternalServerError, failMsg)
			return
		}
		respondJSON(w, http.StatusCreated, okMsg, toSessionDTO(rec))
		return
	}

	rec, err := a.sessions.UpdateOwned(r.Context(), in.SessionID, u.ID, SessionUpdate{
		Title:       title,
		Tags:        tags,
		JSONFileURL: fileURL,
		Status:      status,
	})
	if errors.Is(err, ErrNotFound) {
		// missing id and someone else's id are deliberately the same answer
		errorJSON(w, http.StatusNotFound, "Session not found")
		return
	} else if err != nil {
		errorJSON(w, http.StatusInternalServerError, failMsg)
		return
	}
	respondJSON(w, http.StatusCreated, okMsg, toSessionDTO(*rec))
}

// GET /api/v1/my-sessions
func (a *api) handleMySessions(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	if u == nil {
		errorJSON(w, http.StatusUnauthorized, "User not authenticated")
		return
	}
	recs, err := a.sessions.SessionsByOwner(r.Context(), u.ID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Error occurred while fetching sessions")
		return
	}
	respondJSON(w, http.StatusOK, "Sessions fetched successfully", toSessionDTOs(recs))
}

// GET /api/v1/my-sessions/{id}
func (a *api) handleMySessionByID(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	if u == nil {
		errorJSON(w, http.StatusUnauthorized, "User not authenticated")
		return
	}
	id := chi.URLParam(r, "id")
	if id == "" {
		errorJSON(w, http.StatusBadRequest, "Session ID is required")
		return
	}
	rec, err := a.sessions.SessionOwned(r.Context(), id, u.ID)
	if errors.Is(err, ErrNotFound) {
		errorJSON(w, http.StatusNotFound, "Session not found")
		return
	} else if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Error occurred while fetching session")
		return
	}
	respondJSON(w, http.StatusOK, "Session fetched successfully", toSessionDTO(*rec))
}

// GET /api/v1/sessions
func (a *api) handleAllSessions(w http.ResponseWriter, r *http.Request) {
	recs, err := a.sessions.SessionsByStatus(r.Context(), statusPublished)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Error occurred while fetching all sessions")
		return
	}
	respondJSON(w, http.StatusOK, "All published sessions fetched successfully", toSessionDTOs(recs))
}
