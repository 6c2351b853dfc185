package api

import (
	"log/slog"
	"net/http"

	"github.com/fitfoodie/fitfoodie-api/internal/api/shared"
	"github.com/fitfoodie/fitfoodie-api/internal/service"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
	"github.com/google/uuid"
)

// MealHandler handles meal discovery, influencer-owned CRUD, and the
// favorite relationship.
type MealHandler struct {
	mealService service.MealService
	logger      *slog.Logger
}

// NewMealHandler creates a new MealHandler.
func NewMealHandler(mealService service.MealService, log *slog.Logger) *MealHandler {
	return &MealHandler{
		mealService: mealService,
		logger:      log.With(slog.String("component", "meal_handler")),
	}
}

// List handles GET /api/meals/.
func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	params := getListParams(r)

	filter := store.MealListFilter{
		Tag: r.URL.Query().Get("tag"),
	}
	if raw := r.URL.Query().Get("influencer_id"); raw != "" {
		influencerID, err := uuid.Parse(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid influencer_id format")
			return
		}
		filter.InfluencerID = &influencerID
	}

	page, err := h.mealService.List(r.Context(), params, filter)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MealListResponse{
		Meals:       page.Items,
		Total:       page.Total,
		Pages:       page.Pages,
		CurrentPage: page.CurrentPage,
	})
}

// Get handles GET /api/meals/{id}.
func (h *MealHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	meal, err := h.mealService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, meal)
}

// Create handles POST /api/meals/.
func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getAuthenticatedUserID(w, r)
	if !ok {
		return
	}

	var req CreateMealRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	meal, err := h.mealService.Create(r.Context(), userID, req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse{
		Message: "Meal created successfully",
		Meal:    meal,
	})
}

// Update handles PUT /api/meals/{id}.
func (h *MealHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := getAuthenticatedUserID(w, r)
	if !ok {
		return
	}

	mealID, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateMealRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	meal, err := h.mealService.Update(r.Context(), userID, mealID, req.toDomain())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Meal updated successfully",
		Meal:    meal,
	})
}

// Delete handles DELETE /api/meals/{id}.
func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := getAuthenticatedUserID(w, r)
	if !ok {
		return
	}

	mealID, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.mealService.Delete(r.Context(), userID, mealID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Meal deleted successfully",
	})
}

// Favorite handles POST /api/meals/{id}/favorite.
func (h *MealHandler) Favorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := getAuthenticatedUserID(w, r)
	if !ok {
		return
	}

	mealID, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.mealService.Favorite(r.Context(), userID, mealID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Meal added to favorites",
	})
}

// Unfavorite handles DELETE /api/meals/{id}/favorite.
func (h *MealHandler) Unfavorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := getAuthenticatedUserID(w, r)
	if !ok {
		return
	}

	mealID, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.mealService.Unfavorite(r.Context(), userID, mealID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Meal removed from favorites",
	})
}
