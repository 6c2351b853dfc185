package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fitfoodie/fitfoodie-api/internal/api/shared"
	"github.com/fitfoodie/fitfoodie-api/internal/domain"
	"github.com/fitfoodie/fitfoodie-api/internal/service"
	"github.com/fitfoodie/fitfoodie-api/internal/service/auth"
	"github.com/fitfoodie/fitfoodie-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. This is
// the only place the translation happens, so every handler renders the
// same taxonomy: 400 validation, 401 unauthenticated/invalid credential,
// 403 forbidden, 404 not found, 409 conflict, 500 everything else.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrNotInfluencer),
		errors.Is(err, service.ErrMealNotOwned):
		return http.StatusForbidden

	// Not found errors (entities and absent relationship edges)
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors (duplicate entities, duplicate edges, and edge
	// mutations against an absent edge)
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrConflict):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error. Internal detail never leaves through here.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, service.ErrNotInfluencer):
		return "Only influencers can manage meals"

	case errors.Is(err, service.ErrMealNotOwned):
		return "You can only modify your own meals"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrInfluencerNotFound):
		return "Influencer not found"

	case errors.Is(err, store.ErrMealNotFound):
		return "Meal not found"

	case errors.Is(err, store.ErrNotFavorited):
		return "Meal not in favorites"

	case errors.Is(err, store.ErrNotFollowing):
		return "Not following this influencer"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrInfluencerExists):
		return "Influencer profile already exists"

	case errors.Is(err, store.ErrAlreadyFavorited):
		return "Meal already favorited"

	case errors.Is(err, store.ErrAlreadyFollowing):
		return "Already following this influencer"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		// Domain validation messages are written for users; pass them on.
		return err.Error()

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError renders err through the status and message mappings. An
// empty overrideMessage uses the mapped safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, overrideMessage string) {
	status := MapErrorToStatusCode(err)
	message := overrideMessage
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError turns a validator.FieldError chain into a short
// user-facing message without leaking struct internals.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Format: "Key: 'LoginRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, validationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
