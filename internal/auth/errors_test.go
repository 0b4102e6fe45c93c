package auth

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MessageFor(t *testing.T) {
	testCases := []struct {
		name    string
		code    Code
		generic bool
	}{
		{name: "user not found", code: CodeUserNotFound},
		{name: "wrong credential", code: CodeWrongCredential},
		{name: "email in use", code: CodeEmailInUse},
		{name: "weak password", code: CodeWeakPassword},
		{name: "too many requests", code: CodeTooManyRequests},
		{name: "user disabled", code: CodeUserDisabled},
		{name: "invalid token", code: CodeInvalidToken},
		{name: "unknown falls back to generic", code: CodeUnknown, generic: true},
		{name: "unrecognized falls back to generic", code: Code("quota-exceeded-v2"), generic: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg := MessageFor(tc.code)
			assert.NotEmpty(t, msg)
			if tc.generic {
				assert.Equal(t, genericMessage, msg)
			} else {
				assert.NotEqual(t, genericMessage, msg)
			}
		})
	}
}

func Test_CodeOf(t *testing.T) {
	cause := errors.New("upstream said no")

	t.Run("tagged error", func(t *testing.T) {
		err := NewError(CodeEmailInUse, cause)
		assert.Equal(t, CodeEmailInUse, CodeOf(err))
		assert.ErrorIs(t, err, cause)
	})

	t.Run("wrapped tagged error", func(t *testing.T) {
		err := fmt.Errorf("register failed: %w", NewError(CodeWeakPassword, cause))
		assert.Equal(t, CodeWeakPassword, CodeOf(err))
	})

	t.Run("untagged error", func(t *testing.T) {
		assert.Equal(t, CodeUnknown, CodeOf(cause))
	})
}

func Test_Error_Message(t *testing.T) {
	err := NewError(CodeUserDisabled, nil)
	assert.Equal(t, MessageFor(CodeUserDisabled), err.Message())
	assert.Contains(t, err.Error(), string(CodeUserDisabled))
}
