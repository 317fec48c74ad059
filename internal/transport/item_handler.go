package transport

import (
	"net/http"
	"strconv"

	"minimalbites/internal/catalog"
	"minimalbites/internal/domain"
	"minimalbites/internal/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreateItemRequest represents the add-item form payload
type CreateItemRequest struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	ImageURL        string   `json:"imageUrl" validate:"required"`
	Category        string   `json:"category" validate:"required,category"`
	PreparationTime string   `json:"preparationTime"`
	Calories        int      `json:"calories" validate:"gte=0"`
	Ingredients     []string `json:"ingredients"`
	IsPopular       bool     `json:"isPopular"`
	IsNew           bool     `json:"isNew"`
}

// ItemHandler handles HTTP requests for the menu catalog
type ItemHandler struct {
	catalog         *catalog.Catalog
	isAuthenticated middleware.AuthCheck
	logger          *zap.Logger
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(cat *catalog.Catalog, isAuthenticated middleware.AuthCheck, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{
		catalog:         cat,
		isAuthenticated: isAuthenticated,
		logger:          logger,
	}
}

// RegisterRoutes registers all catalog routes
func (h *ItemHandler) RegisterRoutes(r chi.Router) {
	r.Get("/items", h.List)
	r.Get("/items/{id}", h.GetByID)
	r.Post("/items", h.Create)
}

// List returns the catalog, optionally filtered by the q and category
// query parameters and reordered by the sort parameter
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items := h.catalog.All()
	items = catalog.Filter(items, r.URL.Query().Get("q"), r.URL.Query().Get("category"))
	items = catalog.Sort(items, catalog.SortKey(r.URL.Query().Get("sort")))

	middleware.RespondWithJSON(w, http.StatusOK, items)
}

// GetByID returns a single item, or the catalog's 404 payload when the
// id does not parse or is unknown
func (h *ItemHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondItemNotFound(w)
		return
	}

	item, err := h.catalog.Lookup(id)
	if err != nil {
		respondItemNotFound(w)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, item)
}

// Create validates a submitted item and echoes it back with an assigned
// id. Submissions do not enter the catalog read path: the dataset is
// fixed, so a created item will not reappear in subsequent listings.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.isAuthenticated(r) {
		middleware.RespondWithError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req CreateItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Item validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item := domain.MenuItem{
		ID:              h.catalog.NextID(),
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		ImageURL:        req.ImageURL,
		Category:        req.Category,
		Rating:          4.5,
		Reviews:         0,
		PreparationTime: req.PreparationTime,
		Calories:        req.Calories,
		Ingredients:     req.Ingredients,
		IsPopular:       req.IsPopular,
		IsNew:           req.IsNew,
	}

	h.logger.Info("Item submission accepted",
		zap.String("name", item.Name),
		zap.String("category", item.Category),
	)
	middleware.RespondWithJSON(w, http.StatusCreated, item)
}

// respondItemNotFound writes the catalog's legacy 404 payload. The flat
// shape is part of the wire contract and differs from the structured
// errors used elsewhere.
func respondItemNotFound(w http.ResponseWriter) {
	middleware.RespondWithJSON(w, http.StatusNotFound, map[string]string{"error": "Item not found"})
}
