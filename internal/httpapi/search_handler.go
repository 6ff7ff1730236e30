package httpapi

import (
	"net/http"
	"net/url"

	catalog "github.com/dwikikusuma/shoping-mobile/internal/catalog/domain"
	"github.com/dwikikusuma/shoping-mobile/internal/session"
	"github.com/go-chi/chi/v5"
)

// Search filters on every keystroke. It never records a recent search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	var (
		results []catalog.Product
		recent  []string
	)
	ok := h.do(w, r, func(s *session.Session) error {
		var err error
		results, err = h.search.Filter(r.Context(), q)
		recent = s.Recent.List()
		return err
	})
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, searchDTO{Query: q, Results: toProductDTOs(results), Recent: recent})
}

type submitSearchRequest struct {
	Query string `json:"query"`
}

func (h *Handler) SubmitSearch(w http.ResponseWriter, r *http.Request) {
	var req submitSearchRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.log, err)
		return
	}

	var recent []string
	ok := h.do(w, r, func(s *session.Session) error {
		s.Recent.Submit(req.Query)
		recent = s.Recent.List()
		return nil
	})
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, recent)
}

func (h *Handler) ClearRecentSearches(w http.ResponseWriter, r *http.Request) {
	ok := h.do(w, r, func(s *session.Session) error {
		s.Recent.Clear()
		return nil
	})
	if ok {
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) RemoveRecentSearch(w http.ResponseWriter, r *http.Request) {
	q, err := pathParam(r, "query")
	if err != nil {
		respondError(w, h.log, errBadRequest)
		return
	}

	ok := h.do(w, r, func(s *session.Session) error {
		s.Recent.Remove(q)
		return nil
	})
	if ok {
		w.WriteHeader(http.StatusNoContent)
	}
}

// pathParam returns a decoded URL parameter. chi matches on RawPath when it
// is set, so only then is the segment still escaped.
func pathParam(r *http.Request, key string) (string, error) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, nil
	}
	return url.PathUnescape(v)
}
