package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Influencer validation errors.
var (
	ErrEmptyInfluencerID     = fmt.Errorf("%w: influencer ID cannot be empty", ErrValidation)
	ErrEmptyInfluencerUserID = fmt.Errorf("%w: influencer user ID cannot be empty", ErrValidation)
)

// Influencer is a user who has opted into publishing meals. Each user may
// have at most one influencer profile; the uniqueness is enforced by the
// store, not here.
type Influencer struct {
	ID               uuid.UUID         `json:"id"`
	UserID           uuid.UUID         `json:"user_id"`
	Specialty        string            `json:"specialty"`
	SocialMediaLinks map[string]string `json:"social_media_links"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// InfluencerProfileUpdate is a sparse update for an influencer profile.
// A nil field means "leave untouched". SocialMediaLinks replaces the whole
// stored document when present.
type InfluencerProfileUpdate struct {
	Specialty        *string
	SocialMediaLinks *map[string]string
}

// NewInfluencer creates a new Influencer profile for the given user.
func NewInfluencer(userID uuid.UUID, specialty string, links map[string]string) (*Influencer, error) {
	if links == nil {
		links = map[string]string{}
	}

	now := time.Now().UTC()
	influencer := &Influencer{
		ID:               uuid.New(),
		UserID:           userID,
		Specialty:        specialty,
		SocialMediaLinks: links,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := influencer.Validate(); err != nil {
		return nil, err
	}

	return influencer, nil
}

// Apply copies the non-nil fields of the update onto the profile and bumps
// UpdatedAt.
func (i *Influencer) Apply(update InfluencerProfileUpdate) {
	if update.Specialty != nil {
		i.Specialty = *update.Specialty
	}
	if update.SocialMediaLinks != nil {
		i.SocialMediaLinks = *update.SocialMediaLinks
	}
	i.UpdatedAt = time.Now().UTC()
}

// Validate checks if the Influencer has valid data.
func (i *Influencer) Validate() error {
	if i.ID == uuid.Nil {
		return ErrEmptyInfluencerID
	}
	if i.UserID == uuid.Nil {
		return ErrEmptyInfluencerUserID
	}
	return nil
}
