package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVerifier is a fake implementation of the TokenVerifier interface
type fakeVerifier struct {
	token *fbauth.Token
	err   error
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, _ string) (*fbauth.Token, error) {
	return f.token, f.err
}

func validToken() *fbauth.Token {
	return &fbauth.Token{
		UID: "uid-1",
		Claims: map[string]any{
			"email": "maryam@example.com",
			"name":  "مریم احمدی",
		},
	}
}

func identityEcho(t *testing.T, captured *Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := IdentityFrom(r.Context()); ok {
			*captured = id
		}
		w.WriteHeader(http.StatusOK)
	})
}

func Test_RequireAuth(t *testing.T) {
	testCases := []struct {
		name       string
		authHeader string
		verifier   *fakeVerifier
		wantStatus int
		wantUID    string
	}{
		{
			name:       "valid bearer token injects identity",
			authHeader: "Bearer good-token",
			verifier:   &fakeVerifier{token: validToken()},
			wantStatus: http.StatusOK,
			wantUID:    "uid-1",
		},
		{
			name:       "missing header rejected",
			authHeader: "",
			verifier:   &fakeVerifier{token: validToken()},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-bearer scheme rejected",
			authHeader: "Basic Zm9vOmJhcg==",
			verifier:   &fakeVerifier{token: validToken()},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token rejected",
			authHeader: "Bearer ",
			verifier:   &fakeVerifier{token: validToken()},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "verification failure rejected",
			authHeader: "Bearer expired",
			verifier:   &fakeVerifier{err: errors.New("token expired")},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "token without uid rejected",
			authHeader: "Bearer odd",
			verifier:   &fakeVerifier{token: &fbauth.Token{}},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var captured Identity
			handler := RequireAuth(tc.verifier)(identityEcho(t, &captured))

			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantUID != "" {
				assert.Equal(t, tc.wantUID, captured.UID)
				assert.Equal(t, "maryam@example.com", captured.Email)
				assert.Equal(t, "مریم احمدی", captured.DisplayName)
			}
		})
	}
}

func Test_OptionalAuth(t *testing.T) {
	t.Run("valid token injects identity", func(t *testing.T) {
		var captured Identity
		handler := OptionalAuth(&fakeVerifier{token: validToken()})(identityEcho(t, &captured))

		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "uid-1", captured.UID)
	})

	t.Run("anonymous request passes through", func(t *testing.T) {
		var captured Identity
		handler := OptionalAuth(&fakeVerifier{err: errors.New("bad token")})(identityEcho(t, &captured))

		req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, captured.UID)
	})
}
