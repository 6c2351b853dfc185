package service

import "errors"

// Authorization errors returned by the resource services. The API layer
// maps these to 403 responses.
var (
	// ErrNotInfluencer indicates the acting user has not created an
	// influencer profile and therefore cannot publish meals.
	ErrNotInfluencer = errors.New("user is not an influencer")

	// ErrMealNotOwned indicates the acting user's influencer profile does
	// not own the meal being mutated.
	ErrMealNotOwned = errors.New("meal is owned by another influencer")
)
