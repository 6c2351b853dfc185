package api

import (
	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/google/uuid"
)

// Request and response models for the HTTP API. Field names mirror the
// public JSON contract; sparse-update requests use pointer fields so an
// absent key is distinguishable from an explicit zero value.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    string    `json:"expires_at,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpdateUserProfileRequest is the sparse payload for PUT /api/users/profile.
type UpdateUserProfileRequest struct {
	Name               *string   `json:"name"`
	Bio                *string   `json:"bio"`
	HeightCm           *float64  `json:"height"`
	WeightKg           *float64  `json:"weight"`
	Age                *int      `json:"age" validate:"omitempty,gte=0,lte=150"`
	ActivityLevel      *string   `json:"activity_level"`
	DietaryPreferences *[]string `json:"dietary_preferences"`
}

// toDomain converts the request into the domain's sparse update form.
func (r UpdateUserProfileRequest) toDomain() domain.UserProfileUpdate {
	return domain.UserProfileUpdate{
		Name:               r.Name,
		Bio:                r.Bio,
		HeightCm:           r.HeightCm,
		WeightKg:           r.WeightKg,
		Age:                r.Age,
		ActivityLevel:      r.ActivityLevel,
		DietaryPreferences: r.DietaryPreferences,
	}
}

// ChangePasswordRequest is the payload for PUT /api/users/change-password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72"`
}

// CreateInfluencerProfileRequest is the payload for POST /api/influencers/profile.
type CreateInfluencerProfileRequest struct {
	Specialty        string            `json:"specialty"`
	SocialMediaLinks map[string]string `json:"social_media_links"`
}

// UpdateInfluencerProfileRequest is the sparse payload for PUT /api/influencers/profile.
type UpdateInfluencerProfileRequest struct {
	Specialty        *string            `json:"specialty"`
	SocialMediaLinks *map[string]string `json:"social_media_links"`
}

// CreateMealRequest is the payload for POST /api/meals/.
type CreateMealRequest struct {
	Title           string                 `json:"title"       validate:"required"`
	Description     string                 `json:"description" validate:"required"`
	ImageURL        string                 `json:"image_url"`
	Ingredients     []domain.Ingredient    `json:"ingredients"`
	Instructions    string                 `json:"instructions"`
	PrepTimeMinutes *int                   `json:"prep_time" validate:"omitempty,gte=0"`
	CookTimeMinutes *int                   `json:"cook_time" validate:"omitempty,gte=0"`
	Servings        *int                   `json:"servings"  validate:"omitempty,gt=0"`
	Calories        *int                   `json:"calories"  validate:"omitempty,gte=0"`
	ProteinGrams    *float64               `json:"protein"   validate:"omitempty,gte=0"`
	CarbsGrams      *float64               `json:"carbs"     validate:"omitempty,gte=0"`
	FatGrams        *float64               `json:"fat"       validate:"omitempty,gte=0"`
	Tags            []string               `json:"tags"`
	AffiliateLinks  []domain.AffiliateLink `json:"affiliate_links"`
}

// toDomain converts the request into creation fields for the domain layer.
func (r CreateMealRequest) toDomain() domain.MealFields {
	return domain.MealFields{
		Title:           r.Title,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		Ingredients:     r.Ingredients,
		Instructions:    r.Instructions,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Servings:        r.Servings,
		Calories:        r.Calories,
		ProteinGrams:    r.ProteinGrams,
		CarbsGrams:      r.CarbsGrams,
		FatGrams:        r.FatGrams,
		Tags:            r.Tags,
		AffiliateLinks:  r.AffiliateLinks,
	}
}

// UpdateMealRequest is the sparse payload for PUT /api/meals/{id}.
type UpdateMealRequest struct {
	Title           *string                 `json:"title"`
	Description     *string                 `json:"description"`
	ImageURL        *string                 `json:"image_url"`
	Ingredients     *[]domain.Ingredient    `json:"ingredients"`
	Instructions    *string                 `json:"instructions"`
	PrepTimeMinutes *int                    `json:"prep_time" validate:"omitempty,gte=0"`
	CookTimeMinutes *int                    `json:"cook_time" validate:"omitempty,gte=0"`
	Servings        *int                    `json:"servings"  validate:"omitempty,gt=0"`
	Calories        *int                    `json:"calories"  validate:"omitempty,gte=0"`
	ProteinGrams    *float64                `json:"protein"   validate:"omitempty,gte=0"`
	CarbsGrams      *float64                `json:"carbs"     validate:"omitempty,gte=0"`
	FatGrams        *float64                `json:"fat"       validate:"omitempty,gte=0"`
	Tags            *[]string               `json:"tags"`
	AffiliateLinks  *[]domain.AffiliateLink `json:"affiliate_links"`
}

// toDomain converts the request into the domain's sparse update form.
func (r UpdateMealRequest) toDomain() domain.MealUpdate {
	return domain.MealUpdate{
		Title:           r.Title,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		Ingredients:     r.Ingredients,
		Instructions:    r.Instructions,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Servings:        r.Servings,
		Calories:        r.Calories,
		ProteinGrams:    r.ProteinGrams,
		CarbsGrams:      r.CarbsGrams,
		FatGrams:        r.FatGrams,
		Tags:            r.Tags,
		AffiliateLinks:  r.AffiliateLinks,
	}
}

// MessageResponse is the envelope for mutations that return a message
// alongside an optional payload.
type MessageResponse struct {
	Message    string             `json:"message"`
	User       *domain.User       `json:"user,omitempty"`
	Influencer *domain.Influencer `json:"influencer,omitempty"`
	Meal       *domain.Meal       `json:"meal,omitempty"`
}

// InfluencerListResponse is the paginated payload for GET /api/influencers/.
type InfluencerListResponse struct {
	Influencers []*domain.Influencer `json:"influencers"`
	Total       int                  `json:"total"`
	Pages       int                  `json:"pages"`
	CurrentPage int                  `json:"current_page"`
}

// MealListResponse is the paginated payload for GET /api/meals/.
type MealListResponse struct {
	Meals       []*domain.Meal `json:"meals"`
	Total       int            `json:"total"`
	Pages       int            `json:"pages"`
	CurrentPage int            `json:"current_page"`
}

// FavoritesResponse is the payload for GET /api/users/favorites.
type FavoritesResponse struct {
	Favorites []*domain.Meal `json:"favorites"`
}

// FollowingResponse is the payload for GET /api/users/following.
type FollowingResponse struct {
	Following []*domain.Influencer `json:"following"`
}
