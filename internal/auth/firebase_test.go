package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_mapError_WeakPasswordRequiresInvalidArgument(t *testing.T) {
	// The password complexity text alone is not enough: only errors the admin
	// SDK tags as invalid-argument may classify as weak password. Anything
	// else with matching text stays unknown so unrelated failures are never
	// shown as a password hint.
	err := errors.New("password must be a string with at least 6 characters")

	assert.False(t, isWeakPassword(err))
	assert.Equal(t, CodeUnknown, mapError(err).Code)
}

func Test_mapError_UntaggedError(t *testing.T) {
	mapped := mapError(errors.New("connection reset"))

	assert.Equal(t, CodeUnknown, mapped.Code)
	assert.Equal(t, genericMessage, mapped.Message())
}
