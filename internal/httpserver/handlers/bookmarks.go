package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"linkden/internal/domain"
	"linkden/internal/httpserver/deps"
	"linkden/internal/logger"
	"linkden/internal/store/sqlite"
)

const msgBookmarkNotFound = "Bookmark doesn't exist"

// ListBookmarks handles GET /bookmarks. Always succeeds with an array, empty
// when the table is empty. Order is storage order.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookmarks, err := d.Store.List(r.Context())
		if err != nil {
			respondServerError(d, w, err)
			return
		}
		out := make([]domain.Bookmark, 0, len(bookmarks))
		for _, b := range bookmarks {
			out = append(out, b.Sanitized())
		}
		respondJSON(w, http.StatusOK, out)
	}
}

// GetBookmark handles GET /bookmarks/{id}.
func GetBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, ok := fetchBookmark(d, w, r)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, b.Sanitized())
	}
}

// CreateBookmark handles POST /bookmarks. Validation short-circuits on the
// first failed rule; the id is server-generated and immutable.
func CreateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.CreateBookmarkInput
		if !decodeBody(w, r, &in) {
			return
		}
		if err := in.Validate(); err != nil {
			d.Logger.Error("invalid create request", logger.Error(err))
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		b := domain.Bookmark{
			ID:          uuid.NewString(),
			Title:       *in.Title,
			URL:         *in.URL,
			Description: *in.Description,
			Rating:      *in.Rating,
			CreatedAt:   d.TimeNow().UTC(),
		}
		if err := d.Store.Insert(r.Context(), b); err != nil {
			respondServerError(d, w, err)
			return
		}

		d.Logger.Info("bookmark created", logger.String("id", b.ID))
		w.Header().Set("Location", "/bookmarks/"+b.ID)
		respondJSON(w, http.StatusCreated, b.Sanitized())
	}
}

// UpdateBookmark handles PATCH /bookmarks/{id}. The bookmark must exist
// before the body is even validated; supplied fields are merged over the
// stored record.
func UpdateBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, ok := fetchBookmark(d, w, r)
		if !ok {
			return
		}

		var in domain.PatchBookmarkInput
		if !decodeBody(w, r, &in) {
			return
		}
		if err := in.Validate(); err != nil {
			d.Logger.Error("invalid patch request",
				logger.String("id", b.ID),
				logger.Error(err))
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		in.Apply(b)
		if err := d.Store.Update(r.Context(), *b); err != nil {
			respondServerError(d, w, err)
			return
		}

		d.Logger.Info("bookmark updated", logger.String("id", b.ID))
		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteBookmark handles DELETE /bookmarks/{id}. Deleting an id that was
// already removed yields the same 404 as a never-used id.
func DeleteBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, ok := fetchBookmark(d, w, r)
		if !ok {
			return
		}

		if err := d.Store.Delete(r.Context(), b.ID); err != nil {
			if errors.Is(err, sqlite.ErrNotFound) {
				respondError(w, http.StatusNotFound, msgBookmarkNotFound)
				return
			}
			respondServerError(d, w, err)
			return
		}

		d.Logger.Info("bookmark deleted", logger.String("id", b.ID))
		w.WriteHeader(http.StatusNoContent)
	}
}

// fetchBookmark is the shared existence check used by get, update and delete.
// A malformed id and a nonexistent id are both a 404.
func fetchBookmark(d deps.Deps, w http.ResponseWriter, r *http.Request) (*domain.Bookmark, bool) {
	id := chi.URLParam(r, "id")
	b, err := d.Store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sqlite.ErrNotFound) {
			d.Logger.Error("bookmark not found", logger.String("id", id))
			respondError(w, http.StatusNotFound, msgBookmarkNotFound)
			return nil, false
		}
		respondServerError(d, w, err)
		return nil, false
	}
	return b, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON in request body")
		return false
	}
	return true
}
