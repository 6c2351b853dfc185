package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User validation errors. All wrap ErrValidation so callers can treat
// them uniformly as 400-class failures.
var (
	ErrEmptyUserID         = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyEmail          = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrInvalidEmail        = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrEmptyPassword       = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrPasswordTooShort    = fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)
	ErrPasswordTooLong     = fmt.Errorf("%w: password must be at most 72 characters long", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// User represents a registered user of the FitFoodie platform. Physical
// stats are pointers because they are optional; a nil value means the user
// never supplied one. IsInfluencer flips to true exactly once, when the
// user creates an influencer profile.
type User struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	Password           string    `json:"-"` // Plaintext, held only between registration and hashing
	HashedPassword     string    `json:"-"` // Never expose the hash in JSON
	Name               string    `json:"name"`
	Bio                string    `json:"bio"`
	HeightCm           *float64  `json:"height"`
	WeightKg           *float64  `json:"weight"`
	Age                *int      `json:"age"`
	ActivityLevel      string    `json:"activity_level"`
	DietaryPreferences []string  `json:"dietary_preferences"`
	IsInfluencer       bool      `json:"is_influencer"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UserProfileUpdate is a sparse update for a user's profile. A nil field
// means "leave untouched"; a non-nil field overwrites the stored value.
// DietaryPreferences replaces the whole stored set when present.
type UserProfileUpdate struct {
	Name               *string
	Bio                *string
	HeightCm           *float64
	WeightKg           *float64
	Age                *int
	ActivityLevel      *string
	DietaryPreferences *[]string
}

// NewUser creates a new User with the given email and plaintext password.
// The caller is responsible for hashing the password before storage.
func NewUser(email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:                 uuid.New(),
		Email:              email,
		Password:           password,
		DietaryPreferences: []string{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Apply copies the non-nil fields of the update onto the user and bumps
// UpdatedAt. Absent fields are untouched, never nulled.
func (u *User) Apply(update UserProfileUpdate) {
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
	}
	if update.HeightCm != nil {
		u.HeightCm = update.HeightCm
	}
	if update.WeightKg != nil {
		u.WeightKg = update.WeightKg
	}
	if update.Age != nil {
		u.Age = update.Age
	}
	if update.ActivityLevel != nil {
		u.ActivityLevel = *update.ActivityLevel
	}
	if update.DietaryPreferences != nil {
		u.DietaryPreferences = NormalizeSet(*update.DietaryPreferences)
	}
	u.UpdatedAt = time.Now().UTC()
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !validateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < 8 {
			return ErrPasswordTooShort
		}
		// bcrypt truncates beyond 72 bytes
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// validateEmailFormat performs basic validation of email format: a single
// non-leading, non-trailing '@' with a dotted domain part.
func validateEmailFormat(email string) bool {
	atIndex := -1
	for i, char := range email {
		if char == '@' {
			atIndex = i
			break
		}
	}

	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	domainPart := email[atIndex+1:]
	if len(domainPart) < 3 {
		return false
	}

	dotIndex := -1
	for i, char := range domainPart {
		if char == '.' {
			dotIndex = i
			break
		}
	}

	return dotIndex > 0 && dotIndex < len(domainPart)-1
}

// NormalizeSet trims whitespace, drops empties, and removes duplicates
// while preserving first-seen order. Used for dietary preferences and
// meal tags, which are sets rather than lists.
func NormalizeSet(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
