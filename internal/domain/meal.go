package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Meal validation errors.
var (
	ErrEmptyMealID           = fmt.Errorf("%w: meal ID cannot be empty", ErrValidation)
	ErrEmptyMealInfluencerID = fmt.Errorf("%w: meal influencer ID cannot be empty", ErrValidation)
	ErrEmptyMealTitle        = fmt.Errorf("%w: meal title cannot be empty", ErrValidation)
	ErrEmptyMealDescription  = fmt.Errorf("%w: meal description cannot be empty", ErrValidation)
)

// Ingredient is one entry of a meal's ingredient list.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
}

// AffiliateLink is a labeled outbound product link attached to a meal.
type AffiliateLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Meal is a recipe record owned by exactly one influencer. The owning
// influencer is fixed at creation and never changes. Numeric nutrition and
// timing fields are pointers; nil means "not provided".
type Meal struct {
	ID              uuid.UUID       `json:"id"`
	InfluencerID    uuid.UUID       `json:"influencer_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	ImageURL        string          `json:"image_url"`
	Ingredients     []Ingredient    `json:"ingredients"`
	Instructions    string          `json:"instructions"`
	PrepTimeMinutes *int            `json:"prep_time"`
	CookTimeMinutes *int            `json:"cook_time"`
	Servings        *int            `json:"servings"`
	Calories        *int            `json:"calories"`
	ProteinGrams    *float64        `json:"protein"`
	CarbsGrams      *float64        `json:"carbs"`
	FatGrams        *float64        `json:"fat"`
	Tags            []string        `json:"tags"`
	AffiliateLinks  []AffiliateLink `json:"affiliate_links"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// MealFields carries the caller-supplied fields for meal creation. Title
// and Description are required; everything else defaults to empty.
type MealFields struct {
	Title           string
	Description     string
	ImageURL        string
	Ingredients     []Ingredient
	Instructions    string
	PrepTimeMinutes *int
	CookTimeMinutes *int
	Servings        *int
	Calories        *int
	ProteinGrams    *float64
	CarbsGrams      *float64
	FatGrams        *float64
	Tags            []string
	AffiliateLinks  []AffiliateLink
}

// MealUpdate is a sparse update for a meal. A nil field means "leave
// untouched". Tags are normalized into set form when present. The owning
// influencer is not updatable.
type MealUpdate struct {
	Title           *string
	Description     *string
	ImageURL        *string
	Ingredients     *[]Ingredient
	Instructions    *string
	PrepTimeMinutes *int
	CookTimeMinutes *int
	Servings        *int
	Calories        *int
	ProteinGrams    *float64
	CarbsGrams      *float64
	FatGrams        *float64
	Tags            *[]string
	AffiliateLinks  *[]AffiliateLink
}

// NewMeal creates a new Meal owned by the given influencer, applying the
// documented defaults for absent optional fields.
func NewMeal(influencerID uuid.UUID, fields MealFields) (*Meal, error) {
	ingredients := fields.Ingredients
	if ingredients == nil {
		ingredients = []Ingredient{}
	}
	links := fields.AffiliateLinks
	if links == nil {
		links = []AffiliateLink{}
	}

	now := time.Now().UTC()
	meal := &Meal{
		ID:              uuid.New(),
		InfluencerID:    influencerID,
		Title:           fields.Title,
		Description:     fields.Description,
		ImageURL:        fields.ImageURL,
		Ingredients:     ingredients,
		Instructions:    fields.Instructions,
		PrepTimeMinutes: fields.PrepTimeMinutes,
		CookTimeMinutes: fields.CookTimeMinutes,
		Servings:        fields.Servings,
		Calories:        fields.Calories,
		ProteinGrams:    fields.ProteinGrams,
		CarbsGrams:      fields.CarbsGrams,
		FatGrams:        fields.FatGrams,
		Tags:            NormalizeSet(fields.Tags),
		AffiliateLinks:  links,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := meal.Validate(); err != nil {
		return nil, err
	}

	return meal, nil
}

// Apply copies the non-nil fields of the update onto the meal and bumps
// UpdatedAt.
func (m *Meal) Apply(update MealUpdate) {
	if update.Title != nil {
		m.Title = *update.Title
	}
	if update.Description != nil {
		m.Description = *update.Description
	}
	if update.ImageURL != nil {
		m.ImageURL = *update.ImageURL
	}
	if update.Ingredients != nil {
		m.Ingredients = *update.Ingredients
	}
	if update.Instructions != nil {
		m.Instructions = *update.Instructions
	}
	if update.PrepTimeMinutes != nil {
		m.PrepTimeMinutes = update.PrepTimeMinutes
	}
	if update.CookTimeMinutes != nil {
		m.CookTimeMinutes = update.CookTimeMinutes
	}
	if update.Servings != nil {
		m.Servings = update.Servings
	}
	if update.Calories != nil {
		m.Calories = update.Calories
	}
	if update.ProteinGrams != nil {
		m.ProteinGrams = update.ProteinGrams
	}
	if update.CarbsGrams != nil {
		m.CarbsGrams = update.CarbsGrams
	}
	if update.FatGrams != nil {
		m.FatGrams = update.FatGrams
	}
	if update.Tags != nil {
		m.Tags = NormalizeSet(*update.Tags)
	}
	if update.AffiliateLinks != nil {
		m.AffiliateLinks = *update.AffiliateLinks
	}
	m.UpdatedAt = time.Now().UTC()
}

// Validate checks if the Meal has valid data.
func (m *Meal) Validate() error {
	if m.ID == uuid.Nil {
		return ErrEmptyMealID
	}
	if m.InfluencerID == uuid.Nil {
		return ErrEmptyMealInfluencerID
	}
	if m.Title == "" {
		return ErrEmptyMealTitle
	}
	if m.Description == "" {
		return ErrEmptyMealDescription
	}
	return nil
}
