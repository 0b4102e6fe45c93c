// Package auth adapts the hosted identity provider (Firebase Auth) behind a
// small interface and maps its failures onto a stable, localized error
// taxonomy.
package auth

import (
	"context"
)

// Identity is the authenticated principal attached to a request.
type Identity struct {
	UID         string `json:"uid"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// User is an identity-provider account as seen by the admin panel.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	Disabled    bool   `json:"disabled"`
}

// RegisterDto carries a sign-up request.
type RegisterDto struct {
	Email       string `json:"email"       validate:"required,email"`
	Password    string `json:"password"    validate:"required,min=6,max=72"`
	DisplayName string `json:"displayName" validate:"max=100"`
}

// Provider is the identity-provider capability consumed by handlers. Every
// method returns *Error (see errors.go) for provider-side failures so the
// taxonomy is stable across implementations.
type Provider interface {
	// Register creates a new email/password account.
	Register(ctx context.Context, dto RegisterDto) (*User, error)

	// PasswordResetLink generates a reset link for the given email.
	PasswordResetLink(ctx context.Context, email string) (string, error)

	// UpdatePassword replaces the account password.
	UpdatePassword(ctx context.Context, uid, password string) error

	// GetUser fetches one account by uid.
	GetUser(ctx context.Context, uid string) (*User, error)

	// ListUsers pages through all accounts (admin surface).
	ListUsers(ctx context.Context, limit int) ([]User, error)

	// DeleteUser removes an account (admin surface).
	DeleteUser(ctx context.Context, uid string) error
}
