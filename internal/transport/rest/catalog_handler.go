package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/golshop/storefront/internal/catalog"
	"github.com/golshop/storefront/pkg/web"
)

const defaultPageSize = 50

// ListProducts returns the storefront product listing. The order, offset and
// limit query parameters are optional.
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	offset, ok := web.ParseValidateGteOrDefault(r, w, mLogger, "offset", 0, 0)
	if !ok {
		return
	}
	limit, ok := web.ParseValidateGteOrDefault(r, w, mLogger, "limit", 1, defaultPageSize)
	if !ok {
		return
	}
	order := catalog.OrderHint(r.URL.Query().Get("order"))
	if order == "" {
		order = catalog.OrderNewest
	}

	mLogger.DebugContext(r.Context(), "Received request to list products", "order", order, "offset", offset, "limit", limit)
	list, err := h.catalog.FindAll(r.Context(), order, offset, limit)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error retrieving product list", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	mLogger.DebugContext(r.Context(), "Successfully retrieved product list", "count", len(list))
	web.RespondJSON(w, mLogger, http.StatusOK, list)
}

// GetProduct retrieves a product by its ID.
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	mLogger.DebugContext(r.Context(), "Received request to find product by ID", "ID", id)
	found, err := h.catalog.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to retrieve product with ID %s", id))
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, found)
}

// AdminCreateProduct handles the creation of a new product.
func (h *Handler) AdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	var dto catalog.ProductCreateDto
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

	created, err := h.catalog.Create(r.Context(), dto)
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error creating product", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to create product")
		return
	}
	mLogger.InfoContext(r.Context(), "Product created successfully", slog.String("ID", created.ID))
	web.RespondJSON(w, mLogger, http.StatusCreated, created)
}

// AdminUpdateProduct replaces an existing product's details.
func (h *Handler) AdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}
	var dto catalog.ProductCreateDto
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

	updated, err := h.catalog.Update(r.Context(), id, dto)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for update", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error updating product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to update product with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Product updated successfully", slog.String("ID", updated.ID))
	web.RespondJSON(w, mLogger, http.StatusOK, updated)
}

// AdminDeleteProduct removes a product from the catalog.
func (h *Handler) AdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	id, ok := web.ParseID(w, r, mLogger)
	if !ok {
		return
	}

	if err := h.catalog.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for delete", "ID", id)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", id))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error deleting product", "ID", id, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, fmt.Sprintf("Failed to delete product with ID %s", id))
		return
	}
	mLogger.InfoContext(r.Context(), "Product deleted successfully", slog.String("ID", id.String()))
	w.WriteHeader(http.StatusNoContent)
}
