package httpapi

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"chocoshop-be/internal/catalog"
	"chocoshop-be/internal/logger"
	"chocoshop-be/internal/order"

	"go.uber.org/zap"
)

// Handler owns the REST surface: catalog listing, checkout, and the static
// landing page.
type Handler struct {
	catalogSvc catalog.Service
	orderSvc   order.Service
	staticDir  string
}

func NewHandler(catalogSvc catalog.Service, orderSvc order.Service, staticDir string) *Handler {
	return &Handler{
		catalogSvc: catalogSvc,
		orderSvc:   orderSvc,
		staticDir:  staticDir,
	}
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type productResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Flavor     string  `json:"flavor"`
	Img        string  `json:"img"`
	CategoryID string  `json:"categoryId,omitempty"`
}

type productsResponse struct {
	Categories []categoryResponse `json:"categories"`
	Products   []productResponse  `json:"products"`
}

type checkoutItem struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}

type checkoutRequest struct {
	Items []checkoutItem `json:"items"`
}

type checkoutResponse struct {
	OrderID string  `json:"orderId"`
	Status  string  `json:"status"`
	Total   float64 `json:"total"`
	Message string  `json:"message"`
}

// GetProducts returns the full catalog plus the static category list.
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.catalogSvc.ListProducts(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB connection failed")
		return
	}

	categories, err := h.catalogSvc.ListCategories(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB connection failed")
		return
	}

	resp := productsResponse{
		Categories: make([]categoryResponse, 0, len(categories)),
		Products:   make([]productResponse, 0, len(products)),
	}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, categoryResponse{ID: c.ID, Name: c.Name})
	}
	for _, p := range products {
		resp.Products = append(resp.Products, productResponse{
			ID:         p.ID,
			Name:       p.Name,
			Price:      p.Price.Round(2).InexactFloat64(),
			Flavor:     p.Flavor,
			Img:        p.ImageURL,
			CategoryID: p.CategoryID,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Checkout validates the submitted cart shape, hands the typed items to the
// order service, and maps its errors onto HTTP statuses. Client-supplied
// price fields, if any, never reach the service.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	items := make([]order.CartItem, 0, len(req.Items))
	for _, it := range req.Items {
		if strings.TrimSpace(it.ID) == "" {
			writeError(w, http.StatusBadRequest, "Malformed cart item: missing product id.")
			return
		}
		items = append(items, order.CartItem{
			ProductID: it.ID,
			Quantity:  it.Qty,
		})
	}

	conf, err := h.orderSvc.Checkout(ctx, items)
	if err != nil {
		if order.IsValidation(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.FromCtx(ctx).Error("checkout failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Could not place order. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, checkoutResponse{
		OrderID: conf.OrderID.String(),
		Status:  string(conf.Status),
		Total:   conf.Total.InexactFloat64(),
		Message: conf.Message,
	})
}

// ServeIndex serves the static landing page.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	index := filepath.Join(h.staticDir, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.Error(w, "index.html not found", http.StatusNotFound)
		return
	}
	http.ServeFile(w, r, index)
}
