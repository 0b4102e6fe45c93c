package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/golshop/storefront/internal/order"
	"github.com/golshop/storefront/pkg/web"
)

type orderStatusDto struct {
	Status string `json:"status" validate:"required"`
}

// AdminListOrders returns all orders, newest first.
func (h *Handler) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	offset, ok := web.ParseValidateGteOrDefault(r, w, mLogger, "offset", 0, 0)
	if !ok {
		return
	}
	limit, ok := web.ParseValidateGteOrDefault(r, w, mLogger, "limit", 1, defaultPageSize)
	if !ok {
		return
	}

	list, err := h.orders.FindAll(r.Context(), offset, limit)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving order list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved order list", "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// AdminUpdateOrderStatus moves an order to a new lifecycle status.
func (h *Handler) AdminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var dto orderStatusDto
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

	updated, err := h.orders.UpdateStatus(r.Context(), id, dto.Status)
	if err != nil {
		if errors.Is(err, order.ErrInvalidStatus) {
			mLogger.WarnContext(r.Context(), "Invalid order status", "status", dto.Status)
			web.RespondError(w, mLogger, http.StatusBadRequest, fmt.Sprintf("Invalid order status: %s", dto.Status))
			return
		} else if errors.Is(err, order.ErrOrderNotFound) {
			mLogger.WarnContext(r.Context(), "Order not found for status update", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Order with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error updating order status", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update order with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Order status updated", slog.String("ID", updated.ID.String()), "status", updated.Status)
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// AdminListUsers pages through the identity provider's accounts.
func (h *Handler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	limit, ok := web.ParseValidateGteOrDefault(r, w, mLogger, "limit", 1, defaultPageSize)
	if !ok {
		return
	}

	list, err := h.users.ListUsers(r.Context(), int(limit))
	if err != nil {
		respondAuthError(w, r, mLogger, "Error listing users", err)
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved user list", "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// AdminDeleteUser removes an identity-provider account.
func (h *Handler) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	uid := r.PathValue("id")
	if uid == "" {
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.users.DeleteUser(r.Context(), uid); err != nil {
		respondAuthError(w, r, mLogger, "Error deleting user", err)
		return
	}
	mLogger.InfoContext(r.Context(), "User deleted", slog.String("uid", uid))
	w.WriteHeader(http.StatusNoContent)
}
