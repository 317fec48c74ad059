package transport

import (
	"net/http"
	"strconv"
	"time"

	"minimalbites/internal/cart"
	"minimalbites/internal/catalog"
	"minimalbites/internal/domain"
	"minimalbites/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	cartCookieName = "mb_cart_id"
	cartCookieTTL  = 30 * 24 * time.Hour
)

// AddLineRequest adds a catalog item to the cart
type AddLineRequest struct {
	ID       int `json:"id" validate:"required,gt=0"`
	Quantity int `json:"quantity" validate:"gte=0"`
}

// UpdateLineRequest changes a line's quantity; zero or less removes it
type UpdateLineRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart contents plus derived totals
type CartResponse struct {
	Items     []domain.CartLine `json:"items"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"itemCount"`
}

// OrderSummary is returned by checkout before the cart is destroyed
type OrderSummary struct {
	Total     float64 `json:"total"`
	ItemCount int     `json:"itemCount"`
}

// CartHandler handles HTTP requests for the visitor's cart. The cart is
// identified by the mb_cart_id cookie, minted on first use.
type CartHandler struct {
	cart    *cart.Store
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(store *cart.Store, cat *catalog.Catalog, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cart:    store,
		catalog: cat,
		logger:  logger,
	}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Delete("/", h.Clear)
		r.Post("/items", h.AddLine)
		r.Put("/items/{id}", h.UpdateLine)
		r.Delete("/items/{id}", h.RemoveLine)
		r.Post("/checkout", h.Checkout)
	})
}

// Get returns the current cart contents
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cartID := h.cartID(w, r)
	h.respondCart(w, r, cartID)
}

// AddLine adds a catalog item to the cart, merging quantities up to the
// per-line cap
func (h *CartHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	var req AddLineRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add to cart validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.catalog.Lookup(req.ID)
	if err != nil {
		respondItemNotFound(w)
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	cartID := h.cartID(w, r)
	if err := h.cart.Add(r.Context(), cartID, item, quantity); err != nil {
		h.logger.Error("Failed to add cart line", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}

	h.respondCart(w, r, cartID)
}

// UpdateLine sets the quantity on an existing line
func (h *CartHandler) UpdateLine(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondItemNotFound(w)
		return
	}

	var req UpdateLineRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cartID := h.cartID(w, r)
	if err := h.cart.UpdateQuantity(r.Context(), cartID, itemID, req.Quantity); err != nil {
		h.logger.Error("Failed to update cart line", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}

	h.respondCart(w, r, cartID)
}

// RemoveLine drops the matching line
func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondItemNotFound(w)
		return
	}

	cartID := h.cartID(w, r)
	if err := h.cart.Remove(r.Context(), cartID, itemID); err != nil {
		h.logger.Error("Failed to remove cart line", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}

	h.respondCart(w, r, cartID)
}

// Clear drops the whole cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	cartID := h.cartID(w, r)
	if err := h.cart.Clear(r.Context(), cartID); err != nil {
		h.logger.Error("Failed to clear cart", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to clear cart")
		return
	}

	h.respondCart(w, r, cartID)
}

// Checkout returns an order summary and destroys the cart
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	cartID := h.cartID(w, r)

	total := h.cart.Total(r.Context(), cartID)
	count := h.cart.ItemCount(r.Context(), cartID)
	if count == 0 {
		middleware.RespondWithError(w, http.StatusBadRequest, "cart is empty")
		return
	}

	if err := h.cart.Clear(r.Context(), cartID); err != nil {
		h.logger.Error("Failed to clear cart after checkout", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to complete checkout")
		return
	}

	h.logger.Info("Checkout completed",
		zap.String("cart_id", cartID),
		zap.Float64("total", total),
		zap.Int("item_count", count),
	)
	middleware.RespondWithJSON(w, http.StatusOK, OrderSummary{
		Total:     total,
		ItemCount: count,
	})
}

func (h *CartHandler) respondCart(w http.ResponseWriter, r *http.Request, cartID string) {
	middleware.RespondWithJSON(w, http.StatusOK, CartResponse{
		Items:     h.cart.Get(r.Context(), cartID),
		Total:     h.cart.Total(r.Context(), cartID),
		ItemCount: h.cart.ItemCount(r.Context(), cartID),
	})
}

// cartID reads the visitor's cart id cookie, minting one when absent
func (h *CartHandler) cartID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(cartCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:    cartCookieName,
		Value:   id,
		Path:    "/",
		Expires: time.Now().Add(cartCookieTTL),
	})
	return id
}
