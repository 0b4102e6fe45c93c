package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/golshop/storefront/internal/cart"
	"github.com/golshop/storefront/internal/catalog"
	"github.com/golshop/storefront/pkg/web"
)

// cartAddDto adds a product to the session's cart. The product snapshot is
// looked up server-side so the client cannot forge prices.
type cartAddDto struct {
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity"  validate:"required,min=1"`
}

// cartQuantityDto sets an item's quantity. Values below zero are clamped to
// zero by the cart engine, and zero removes the item.
type cartQuantityDto struct {
	Quantity int `json:"quantity"`
}

// cartView is the cart as rendered to the client, with derived totals.
type cartView struct {
	Items      []cart.Item `json:"items"`
	TotalItems int         `json:"totalItems"`
	TotalPrice int64       `json:"totalPrice"`
}

// GetCart returns the session's cart with derived totals.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	engine, ok := h.engineFor(w, r)
	if !ok {
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, viewOf(engine))
}

// AddCartItem inserts the product into the cart or increments its quantity.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	engine, ok := h.engineFor(w, r)
	if !ok {
		return
	}
	var dto cartAddDto
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

	id, ok := parseUUID(w, mLogger, dto.ProductID)
	if !ok {
		return
	}
	product, err := h.catalog.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			mLogger.WarnContext(r.Context(), "Product not found for cart add", "ID", dto.ProductID)
			web.RespondError(w, mLogger, http.StatusNotFound, fmt.Sprintf("Product with ID %s not found", dto.ProductID))
			return
		}
		mLogger.ErrorContext(r.Context(), "Error retrieving product for cart add", "ID", dto.ProductID, "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to add item to cart")
		return
	}

	engine.AddItem(r.Context(), cart.Product{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		ImageHint:   product.ImageHint,
	}, dto.Quantity)

	mLogger.DebugContext(r.Context(), "Item added to cart", "product_id", product.ID, "quantity", dto.Quantity)
	web.RespondJSON(w, mLogger, http.StatusOK, viewOf(engine))
}

// UpdateCartItem sets the quantity for one cart line.
func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	engine, ok := h.engineFor(w, r)
	if !ok {
		return
	}
	var dto cartQuantityDto
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		mLogger.ErrorContext(r.Context(), "Error decoding request body", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Invalid request body")
		return
	}

	productID := r.PathValue("id")
	engine.UpdateItemQuantity(r.Context(), productID, dto.Quantity)
	web.RespondJSON(w, mLogger, http.StatusOK, viewOf(engine))
}

// RemoveCartItem deletes one cart line. Removing an absent item is a no-op.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	engine, ok := h.engineFor(w, r)
	if !ok {
		return
	}

	productID := r.PathValue("id")
	engine.RemoveItem(r.Context(), productID)
	web.RespondJSON(w, mLogger, http.StatusOK, viewOf(engine))
}

// ClearCart empties the session's cart.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	engine, ok := h.engineFor(w, r)
	if !ok {
		return
	}

	engine.ClearCart(r.Context())
	web.RespondJSON(w, mLogger, http.StatusOK, viewOf(engine))
}

// engineFor resolves the cart engine for the request's session cookie.
func (h *Handler) engineFor(w http.ResponseWriter, r *http.Request) (*cart.Engine, bool) {
	mLogger := h.loggerWithReqID(r)
	sessionID, ok := web.GetSessionID(r.Context())
	if !ok {
		mLogger.ErrorContext(r.Context(), "Session ID missing from request context")
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Session unavailable")
		return nil, false
	}
	return h.carts.Engine(r.Context(), sessionID), true
}

// viewOf snapshots the engine state into the client-facing cart view.
func viewOf(engine *cart.Engine) cartView {
	snapshot := engine.Snapshot()
	items := snapshot.Items
	if items == nil {
		items = []cart.Item{}
	}
	return cartView{
		Items:      items,
		TotalItems: snapshot.TotalItems(),
		TotalPrice: snapshot.TotalPrice(),
	}
}
