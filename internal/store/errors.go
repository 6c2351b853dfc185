package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic form of the entity-specific not found
	// errors below.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity or relationship edge.
	ErrDuplicate = errors.New("entity already exists")

	// ErrConflict is returned when an edge mutation targets a state the
	// edge is not in, such as unfollowing an influencer the user does not
	// follow. Rendered as 409, like ErrDuplicate.
	ErrConflict = errors.New("conflicting edge state")

	// ErrInvalidEntity is returned when an entity fails validation or a
	// constraint before being stored. Check the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrInfluencerNotFound indicates that the requested influencer profile
	// does not exist.
	ErrInfluencerNotFound = fmt.Errorf("%w: influencer", ErrNotFound)

	// ErrMealNotFound indicates that the requested meal does not exist.
	ErrMealNotFound = fmt.Errorf("%w: meal", ErrNotFound)

	// ErrNotFavorited indicates that the user has no favorite edge to the
	// meal being unfavorited.
	ErrNotFavorited = fmt.Errorf("%w: not favorited", ErrConflict)

	// ErrNotFollowing indicates that the user has no follow edge to the
	// influencer being unfollowed.
	ErrNotFollowing = fmt.Errorf("%w: not following", ErrConflict)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrInfluencerExists indicates that the user already has an influencer
	// profile. A user has at most one.
	ErrInfluencerExists = fmt.Errorf("%w: influencer profile", ErrDuplicate)

	// ErrAlreadyFavorited indicates that the favorite edge already exists.
	ErrAlreadyFavorited = fmt.Errorf("%w: favorite", ErrDuplicate)

	// ErrAlreadyFollowing indicates that the follow edge already exists.
	ErrAlreadyFollowing = fmt.Errorf("%w: follow", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
