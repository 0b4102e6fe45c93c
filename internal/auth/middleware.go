package auth

import (
	"context"
	"net/http"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
)

// TokenVerifier is the subset of the Firebase Auth client used by the
// middleware. Satisfied by *fbauth.Client; tests plug in fakes.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

type identityKey struct{}

// WithIdentity attaches an identity to the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom retrieves the authenticated identity from the context.
// Returns the identity and a boolean indicating whether it was found.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// RequireAuth verifies the Authorization bearer token and injects the
// identity into the request context. Requests without a valid token get 401.
func RequireAuth(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			identity, ok := verify(r, verifier)
			if !ok {
				http.Error(w, "Unauthorized: missing or invalid bearer token", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		}
		return http.HandlerFunc(fn)
	}
}

// OptionalAuth injects the identity when a valid bearer token is present and
// passes the request through anonymously otherwise. Used by checkout, which
// accepts guests.
func OptionalAuth(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if identity, ok := verify(r, verifier); ok {
				r = r.WithContext(WithIdentity(r.Context(), identity))
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

func verify(r *http.Request, verifier TokenVerifier) (Identity, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return Identity{}, false
	}
	idToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if idToken == "" {
		return Identity{}, false
	}
	token, err := verifier.VerifyIDToken(r.Context(), idToken)
	if err != nil || token.UID == "" {
		return Identity{}, false
	}
	return identityFromToken(token), true
}

// identityFromToken builds the request identity from verified token claims.
func identityFromToken(token *fbauth.Token) Identity {
	id := Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		id.Email = strings.TrimSpace(email)
	}
	if name, ok := token.Claims["name"].(string); ok {
		id.DisplayName = strings.TrimSpace(name)
	}
	return id
}
