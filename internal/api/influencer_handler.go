package api

import (
	"log/slog"
	"net/http"

	"github.com/fitfoodie/fitfoodie-api/internal/api/shared"
	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/fitfoodie/fitfoodie-api/internal/service"
)

// InfluencerHandler handles influencer discovery, profile management, and
// the follow relationship.
type InfluencerHandler struct {
	influencerService service.InfluencerService
	logger            *slog.Logger
}

// NewInfluencerHandler creates a new InfluencerHandler.
func NewInfluencerHandler(influencerService service.InfluencerService, log *slog.Logger) *InfluencerHandler {
	return &InfluencerHandler{
		influencerService: influencerService,
		logger:            log.With(slog.String("component", "influencer_handler")),
	}
}

// List handles GET /api/influencers/.
func (h *InfluencerHandler) List(w http.ResponseWriter, r *http.Request) {
	params := getListParams(r)
	specialty := r.URL.Query().Get("specialty")

	page, err := h.influencerService.List(r.Context(), params, specialty)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, InfluencerListResponse{
		Influencers: page.Items,
		Total:       page.Total,
		Pages:       page.Pages,
		CurrentPage: page.CurrentPage,
	})
}

// Get handles GET /api/influencers/{id}.
func (h *InfluencerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	influencer, err := h.influencerService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, influencer)
}

// CreateProfile handles POST /api/influencers/profile.
func (h *InfluencerHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getAuthenticatedUserID(w, r)
	if !ok {
		return
	}

	var req CreateInfluencerProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	influencer, err := h.influencerService.CreateProfile(r.Context(), userID, req.Specialty, req.SocialMediaLinks)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse{
		Message:    "Influencer profile created successfully",
		Influencer: influencer,
	})
}

// UpdateProfile handles PUT /api/influencers/profile.
func (h *InfluencerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getAuthenticatedUserID(w, r)
	if !ok {
		return
	}

	var req UpdateInfluencerProfileRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	update := domain.InfluencerProfileUpdate{
		Specialty:        req.Specialty,
		SocialMediaLinks: req.SocialMediaLinks,
	}

	influencer, err := h.influencerService.UpdateProfile(r.Context(), userID, update)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message:    "Influencer profile updated successfully",
		Influencer: influencer,
	})
}

// Follow handles POST /api/influencers/{id}/follow.
func (h *InfluencerHandler) Follow(w http.ResponseWriter, r *http.Request) {
	userID, ok := getAuthenticatedUserID(w, r)
	if !ok {
		return
	}

	influencerID, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.influencerService.Follow(r.Context(), userID, influencerID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Influencer followed successfully",
	})
}

// Unfollow handles DELETE /api/influencers/{id}/follow.
func (h *InfluencerHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	userID, ok := getAuthenticatedUserID(w, r)
	if !ok {
		return
	}

	influencerID, ok := getPathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.influencerService.Unfollow(r.Context(), userID, influencerID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Influencer unfollowed successfully",
	})
}
