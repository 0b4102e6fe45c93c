package auth

import (
	"context"
	"strings"

	fbauth "firebase.google.com/go/v4/auth"
	"firebase.google.com/go/v4/errorutils"
	"google.golang.org/api/iterator"
)

// FirebaseProvider implements Provider over the Firebase Auth admin client.
type FirebaseProvider struct {
	client   *fbauth.Client
	resetURL string
}

// NewFirebaseProvider creates a provider. resetURL, when non-empty, is the
// continue URL embedded in password reset links.
func NewFirebaseProvider(client *fbauth.Client, resetURL string) *FirebaseProvider {
	return &FirebaseProvider{client: client, resetURL: resetURL}
}

// Register creates a new email/password account.
func (p *FirebaseProvider) Register(ctx context.Context, dto RegisterDto) (*User, error) {
	params := (&fbauth.UserToCreate{}).
		Email(dto.Email).
		Password(dto.Password)
	if dto.DisplayName != "" {
		params = params.DisplayName(dto.DisplayName)
	}
	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		return nil, mapError(err)
	}
	return toUser(record), nil
}

// PasswordResetLink generates a reset link for the given email.
func (p *FirebaseProvider) PasswordResetLink(ctx context.Context, email string) (string, error) {
	var (
		link string
		err  error
	)
	if p.resetURL != "" {
		settings := &fbauth.ActionCodeSettings{URL: p.resetURL}
		link, err = p.client.PasswordResetLinkWithSettings(ctx, email, settings)
	} else {
		link, err = p.client.PasswordResetLink(ctx, email)
	}
	if err != nil {
		return "", mapError(err)
	}
	return link, nil
}

// UpdatePassword replaces the account password.
func (p *FirebaseProvider) UpdatePassword(ctx context.Context, uid, password string) error {
	params := (&fbauth.UserToUpdate{}).Password(password)
	if _, err := p.client.UpdateUser(ctx, uid, params); err != nil {
		return mapError(err)
	}
	return nil
}

// GetUser fetches one account by uid.
func (p *FirebaseProvider) GetUser(ctx context.Context, uid string) (*User, error) {
	record, err := p.client.GetUser(ctx, uid)
	if err != nil {
		return nil, mapError(err)
	}
	return toUser(record), nil
}

// ListUsers pages through all accounts up to limit.
func (p *FirebaseProvider) ListUsers(ctx context.Context, limit int) ([]User, error) {
	users := make([]User, 0, limit)
	iter := p.client.Users(ctx, "")
	for len(users) < limit {
		record, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapError(err)
		}
		users = append(users, *toUser(record.UserRecord))
	}
	return users, nil
}

// DeleteUser removes an account.
func (p *FirebaseProvider) DeleteUser(ctx context.Context, uid string) error {
	if err := p.client.DeleteUser(ctx, uid); err != nil {
		return mapError(err)
	}
	return nil
}

func toUser(record *fbauth.UserRecord) *User {
	return &User{
		UID:         record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		Disabled:    record.Disabled,
	}
}

// mapError translates a Firebase Auth failure into the stable taxonomy.
func mapError(err error) *Error {
	switch {
	case fbauth.IsEmailAlreadyExists(err):
		return NewError(CodeEmailInUse, err)
	case fbauth.IsUserNotFound(err):
		return NewError(CodeUserNotFound, err)
	case errorutils.IsResourceExhausted(err):
		return NewError(CodeTooManyRequests, err)
	case errorutils.IsUnauthenticated(err) || errorutils.IsPermissionDenied(err):
		return NewError(CodeWrongCredential, err)
	case isWeakPassword(err):
		return NewError(CodeWeakPassword, err)
	default:
		return NewError(CodeUnknown, err)
	}
}

// isWeakPassword catches the admin SDK's password complexity rejection, which
// surfaces as an invalid-argument error. The substring disambiguates it from
// other invalid-argument failures.
func isWeakPassword(err error) bool {
	return errorutils.IsInvalidArgument(err) &&
		strings.Contains(strings.ToLower(err.Error()), "password must be")
}
