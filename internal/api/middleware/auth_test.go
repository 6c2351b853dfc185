package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitfoodie/fitfoodie-api/internal/mocks"
	"github.com/fitfoodie/fitfoodie-api/internal/service/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	newHandler := func(jwtService *mocks.MockJWTService) (http.Handler, *uuid.UUID) {
		var seenUserID uuid.UUID
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := GetUserID(r)
			require.True(t, ok)
			seenUserID = id
			w.WriteHeader(http.StatusOK)
		})
		return NewAuthMiddleware(jwtService).Authenticate(next), &seenUserID
	}

	t.Run("valid token passes user through", func(t *testing.T) {
		t.Parallel()

		jwtService := &mocks.MockJWTService{
			Claims: &auth.Claims{UserID: userID, TokenType: "access"},
		}
		handler, seenUserID := newHandler(jwtService)

		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, *seenUserID)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()

		handler, _ := newHandler(&mocks.MockJWTService{})

		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		t.Parallel()

		handler, _ := newHandler(&mocks.MockJWTService{})

		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		handler, _ := newHandler(&mocks.MockJWTService{Err: auth.ErrExpiredToken})

		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		req.Header.Set("Authorization", "Bearer expired-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Token expired")
	})

	t.Run("refresh token rejected on access routes", func(t *testing.T) {
		t.Parallel()

		handler, _ := newHandler(&mocks.MockJWTService{Err: auth.ErrWrongTokenType})

		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		req.Header.Set("Authorization", "Bearer refresh-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid token")
	})
}

func TestGetUserIDWithoutMiddleware(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.Background())

	_, ok := GetUserID(req)
	assert.False(t, ok)
}
