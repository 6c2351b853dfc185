package api

import (
	"net/http"
	"strconv"

	"github.com/fitfoodie/fitfoodie-api/internal/api/middleware"
	"github.com/fitfoodie/fitfoodie-api/internal/api/shared"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// getAuthenticatedUserID extracts the authenticated user's ID from the
// request context, rendering a 401 if the middleware did not set one.
// Returns false if the response has already been written.
func getAuthenticatedUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	return userID, true
}

// getPathUUID parses the named chi URL parameter as a UUID, rendering a
// 400 on a malformed value. Returns false if the response has already
// been written.
func getPathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// getListParams reads the page/per_page query parameters, falling back to
// defaults on absent or malformed values. Out-of-range values are clamped
// by ListParams.Normalize at the store boundary.
func getListParams(r *http.Request) store.ListParams {
	params := store.ListParams{
		Page:    store.DefaultPage,
		PerPage: store.DefaultPerPage,
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			params.Page = page
		}
	}
	if raw := r.URL.Query().Get("per_page"); raw != "" {
		if perPage, err := strconv.Atoi(raw); err == nil {
			params.PerPage = perPage
		}
	}

	return params
}
