package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/golshop/storefront/internal/auth"
	"github.com/golshop/storefront/internal/order"
	"github.com/golshop/storefront/pkg/web"
)

// FindOrdersByUser returns the authenticated user's order history.
func (h *Handler) FindOrdersByUser(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	identity, ok := requireIdentity(w, r, mLogger)
	if !ok {
		return
	}
	offset, ok := web.ParseValidateGteOrDefault(r, w, mLogger, "offset", 0, 0)
	if !ok {
		return
	}
	limit, ok := web.ParseValidateGteOrDefault(r, w, mLogger, "limit", 1, defaultPageSize)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to find orders", "user_id", identity.UID, "offset", offset, "limit", limit)
	list, err := h.orders.FindByUserID(r.Context(), identity.UID, offset, limit)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving order list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved order list", "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// FindOrderByID retrieves one of the authenticated user's orders.
func (h *Handler) FindOrderByID(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	identity, ok := requireIdentity(w, r, mLogger)
	if !ok {
		return
	}
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to find order by ID", "ID", id)
	found, err := h.orders.FindByID(r.Context(), identity.UID, id)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			mLogger.WarnContext(r.Context(), "Order not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Order with ID %s not found", id))
			return
		} else if errors.Is(err, order.ErrAccessDenied) {
			mLogger.WarnContext(r.Context(), "Access denied to order", "ID", id, "user_id", identity.UID)
			web.RespondError(w, mLogger, http.StatusForbidden, fmt.Sprintf("Access denied to order with ID %s", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving order", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve order with ID %s", id))
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved order", slog.String("ID", found.ID.String()))
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// requireIdentity extracts the authenticated identity injected by the auth
// middleware. A missing identity means the route was wired without it.
func requireIdentity(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (auth.Identity, bool) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		logger.ErrorContext(r.Context(), "Identity missing from request context")
		web.RespondError(w, logger, http.StatusUnauthorized, "Unauthorized")
		return auth.Identity{}, false
	}
	return identity, true
}
