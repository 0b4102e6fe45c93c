package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/golshop/storefront/internal/auth"
	"github.com/golshop/storefront/internal/checkout"
	"github.com/golshop/storefront/internal/order"
	"github.com/golshop/storefront/pkg/web"
)

// checkoutDto carries the checkout form. Identity comes from the optional
// bearer token, never from the body.
type checkoutDto struct {
	Customer order.CustomerDto `json:"customer" validate:"required"`
}

// checkoutFailedMessage is shown when the order store rejects the write. The
// cart is kept so the user can retry without re-adding items.
const checkoutFailedMessage = "ثبت سفارش با خطا مواجه شد. سبد خرید شما دست‌نخورده مانده است؛ لطفاً دوباره تلاش کنید."

const emptyCartMessage = "سبد خرید شما خالی است."

// Checkout finalizes the session's cart into an order. On success the cart is
// cleared; on failure the cart is left untouched and the response says so.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(r.Context())
	if !ok {
		mLogger.ErrorContext(r.Context(), "Session ID missing from request context")
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Session unavailable")
		return
	}
	engine := h.carts.Engine(r.Context(), sessionID)

	var dto checkoutDto
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

	// Guest checkouts carry an empty user ID.
	var userID string
	if identity, ok := auth.IdentityFrom(r.Context()); ok {
		userID = identity.UID
	}

	created, err := h.checkout.Checkout(r.Context(), engine, userID, dto.Customer)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			mLogger.WarnContext(r.Context(), "Checkout attempted with empty cart")
			web.RespondError(w, mLogger, http.StatusBadRequest, emptyCartMessage)
			return
		}
		mLogger.ErrorContext(r.Context(), "Checkout failed, cart kept", "error", err)
		web.RespondJSON(w, mLogger, http.StatusBadGateway, map[string]any{
			"error":    checkoutFailedMessage,
			"cartKept": true,
		})
		return
	}
	// The cart is empty now; drop the cached engine so the session does not
	// keep holding memory until the idle sweep reaches it.
	h.carts.Evict(sessionID)

	mLogger.InfoContext(r.Context(), "Checkout completed", slog.String("ID", created.ID.String()))
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}
