package httpapi

import (
	"net/http"

	"github.com/dwikikusuma/shoping-mobile/internal/session"
	"github.com/go-chi/chi/v5"
)

type sessionDTO struct {
	ID string `json:"id"`
}

func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()
	respondJSON(w, http.StatusCreated, sessionDTO{ID: s.ID()})
}

func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if !h.sessions.Delete(sessionID(r)) {
		respondError(w, h.log, session.ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func sessionID(r *http.Request) string {
	return chi.URLParam(r, "sessionId")
}

// do runs fn against the request's session and writes any error.
func (h *Handler) do(w http.ResponseWriter, r *http.Request, fn func(*session.Session) error) bool {
	if err := h.sessions.Do(sessionID(r), fn); err != nil {
		respondError(w, h.log, err)
		return false
	}
	return true
}
