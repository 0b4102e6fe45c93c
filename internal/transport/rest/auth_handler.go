package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/golshop/storefront/internal/auth"
	"github.com/golshop/storefront/pkg/web"
)

type passwordResetDto struct {
	Email string `json:"email" validate:"required,email"`
}

type passwordChangeDto struct {
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// Register creates a new email/password account.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto auth.RegisterDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		mLogger.WarnContext(r.Context(), "Validation errors occurred", "error", err)
		web.RespondValidationErrors(w, mLogger, err)
		return
	}

	user, err := h.users.Register(r.Context(), dto)
	if err != nil {
		respondAuthError(w, r, mLogger, "Registration failed", err)
		return
	}
	mLogger.InfoContext(r.Context(), "User registered", slog.String("uid", user.UID))
	web.RespondJSON(w, mLogger, http.StatusCreated, user)
}

// PasswordReset generates a password reset link for the given email.
func (h *Handler) PasswordReset(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto passwordResetDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		mLogger.WarnContext(r.Context(), "Validation errors occurred", "error", err)
		web.RespondValidationErrors(w, mLogger, err)
		return
	}

	link, err := h.users.PasswordResetLink(r.Context(), dto.Email)
	if err != nil {
		respondAuthError(w, r, mLogger, "Password reset failed", err)
		return
	}
	mLogger.InfoContext(r.Context(), "Password reset link generated")
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]string{"resetLink": link})
}

// ChangePassword replaces the authenticated user's password.
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	identity, ok := requireIdentity(w, r, mLogger)
	if !ok {
		return
	}
	var dto passwordChangeDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(dto); err != nil {
		mLogger.WarnContext(r.Context(), "Validation errors occurred", "error", err)
		web.RespondValidationErrors(w, mLogger, err)
		return
	}

	if err := h.users.UpdatePassword(r.Context(), identity.UID, dto.Password); err != nil {
		respondAuthError(w, r, mLogger, "Password change failed", err)
		return
	}
	mLogger.InfoContext(r.Context(), "Password changed", slog.String("uid", identity.UID))
	w.WriteHeader(http.StatusNoContent)
}

// respondAuthError maps an identity-provider failure onto its stable code and
// localized message.
func respondAuthError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, logMsg string, err error) {
	code := auth.CodeOf(err)
	logger.WarnContext(r.Context(), logMsg, "code", code, "error", err)
	web.RespondJSON(w, logger, statusForAuthCode(code), map[string]string{
		"code":    string(code),
		"message": auth.MessageFor(code),
	})
}

// statusForAuthCode maps taxonomy codes to HTTP statuses.
func statusForAuthCode(code auth.Code) int {
	switch code {
	case auth.CodeEmailInUse:
		return http.StatusConflict
	case auth.CodeWeakPassword:
		return http.StatusBadRequest
	case auth.CodeUserNotFound:
		return http.StatusNotFound
	case auth.CodeWrongCredential, auth.CodeInvalidToken:
		return http.StatusUnauthorized
	case auth.CodeUserDisabled:
		return http.StatusForbidden
	case auth.CodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
