package auth

import (
	"errors"
	"fmt"
)

// Code is a stable identity-provider error code. Codes survive provider
// changes; user-facing messages are looked up from the code, never from the
// provider error text.
type Code string

const (
	CodeUserNotFound    Code = "user-not-found"
	CodeWrongCredential Code = "wrong-credential"
	CodeEmailInUse      Code = "email-already-in-use"
	CodeWeakPassword    Code = "weak-password"
	CodeTooManyRequests Code = "too-many-requests"
	CodeUserDisabled    Code = "user-disabled"
	CodeInvalidToken    Code = "invalid-token"
	CodeUnknown         Code = "unknown"
)

// Error is a provider failure tagged with its taxonomy code.
type Error struct {
	Code  Code
	cause error
}

func NewError(code Code, cause error) *Error {
	return &Error{Code: code, cause: cause}
}

func (e *Error) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("auth: %s", e.Code)
	}
	return fmt.Sprintf("auth: %s: %v", e.Code, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Message returns the user-facing Persian message for the error code.
func (e *Error) Message() string {
	return MessageFor(e.Code)
}

// messages maps each stable code to its user-facing Persian text.
var messages = map[Code]string{
	CodeUserNotFound:    "کاربری با این مشخصات یافت نشد.",
	CodeWrongCredential: "ایمیل یا رمز عبور اشتباه است.",
	CodeEmailInUse:      "این ایمیل قبلاً ثبت شده است.",
	CodeWeakPassword:    "رمز عبور باید حداقل ۶ کاراکتر باشد.",
	CodeTooManyRequests: "تعداد تلاش‌ها بیش از حد مجاز است. لطفاً بعداً دوباره امتحان کنید.",
	CodeUserDisabled:    "این حساب کاربری غیرفعال شده است.",
	CodeInvalidToken:    "نشست شما منقضی شده است. لطفاً دوباره وارد شوید.",
}

const genericMessage = "خطایی رخ داده است. لطفاً دوباره تلاش کنید."

// MessageFor returns the localized message for a code, falling back to a
// generic message for unrecognized codes.
func MessageFor(code Code) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return genericMessage
}

// CodeOf extracts the taxonomy code from err, or CodeUnknown if err carries
// no *Error.
func CodeOf(err error) Code {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeUnknown
}
