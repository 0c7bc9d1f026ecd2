package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// ─────────────────────────────────────────────
// getTokenFromAuthHeader
// ─────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", wantToken: "abc"},
		{name: "empty header", header: "", wantErr: ErrEmptyAuthorizationHeader},
		{name: "token only", header: "abc.def.ghi", wantErr: ErrInvalidAuthorizationHeader},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty token", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ─────────────────────────────────────────────
// auth
// ─────────────────────────────────────────────

func runAuth(t *testing.T, auth *mockAuthService, header string) (*httptest.ResponseRecorder, *models.User) {
	t.Helper()
	h := newTestHandler(t, auth, nil, config.StructuredConfig{})

	var seen *models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		require.True(t, ok)
		seen = &user
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/todos", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rec, req)

	return rec, seen
}

func TestAuth_StoresUserInContext(t *testing.T) {
	rec, seen := runAuth(t, &mockAuthService{authenticateFn: authenticatingAs(testUser)}, "Bearer "+testToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, testUser, *seen)
}

func TestAuth_AllRejectionsLookIdentical(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, raw string) (models.User, error) {
			switch raw {
			case "expired":
				return models.User{}, errors.Join(service.ErrUnauthenticated, service.ErrInvalidToken)
			case "forged":
				return models.User{}, service.ErrInvalidToken
			default:
				return models.User{}, service.ErrUnauthenticated
			}
		},
	}

	headers := []string{"", "Token abc", "Bearer ", "Bearer expired", "Bearer forged", "Bearer deleted-user"}

	var bodies []string
	for _, header := range headers {
		rec, seen := runAuth(t, auth, header)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
		assert.Nil(t, seen, header)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"), header)
		bodies = append(bodies, rec.Body.String())
	}

	for i := 1; i < len(bodies); i++ {
		assert.Equal(t, bodies[0], bodies[i], "header %q", headers[i])
	}
}

func TestAuth_InternalErrorIsNotReportedAs401(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(context.Context, string) (models.User, error) {
			return models.User{}, errors.New("db down")
		},
	}

	rec, seen := runAuth(t, auth, "Bearer "+testToken)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Nil(t, seen)
	assert.NotContains(t, rec.Body.String(), "db down")
}

// ─────────────────────────────────────────────
// adminOnly
// ─────────────────────────────────────────────

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name       string
		user       *models.User
		wantStatus int
	}{
		{name: "admin passes", user: &models.User{UserID: 1, IsAdmin: true}, wantStatus: http.StatusOK},
		{name: "regular user is forbidden", user: &models.User{UserID: 2}, wantStatus: http.StatusForbidden},
		{name: "no principal", user: nil, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &mockAuthService{}, nil, config.StructuredConfig{})
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodDelete, "/delete-todo/1", nil)
			if tt.user != nil {
				req = req.WithContext(utils.WithUser(req.Context(), *tt.user))
			}
			rec := httptest.NewRecorder()
			h.adminOnly(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
