package controller

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"signage-quote/app/middleware"
	"signage-quote/catalog"
	"signage-quote/models"
	"signage-quote/pricing"
	"signage-quote/service"
	"signage-quote/utils"
)

// CatalogController handles HTTP requests for catalog browsing and price lookups
type CatalogController struct {
	registry *catalog.Registry
	carts    service.CartServiceInterface
	images   service.ImageServiceInterface
	log      logrus.FieldLogger
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(
	registry *catalog.Registry,
	carts service.CartServiceInterface,
	images service.ImageServiceInterface,
	log logrus.FieldLogger,
) *CatalogController {
	return &CatalogController{
		registry: registry,
		carts:    carts,
		images:   images,
		log:      log,
	}
}

// ListProducts handles GET /{brand}/catalogs/{catalog}/products[?category=]
func (c *CatalogController) ListProducts(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	vars := mux.Vars(r)
	category := r.URL.Query().Get("category")

	cat, err := c.registry.Catalog(vars["brand"], vars["catalog"])
	if err != nil {
		writeError(w, log, err)
		return
	}

	products := cat.Products(category)
	log.Debugf("📋 ListProducts: %s/%s category=%q count=%d", cat.Brand(), cat.ID(), category, len(products))
	writeJSON(w, log, http.StatusOK, models.ProductListResponse{
		Brand:      cat.Brand(),
		Catalog:    cat.ID(),
		Category:   category,
		Categories: cat.Categories(),
		Products:   products,
	})
}

// GetProduct handles GET /{brand}/catalogs/{catalog}/products/{id}
func (c *CatalogController) GetProduct(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	vars := mux.Vars(r)

	p, err := c.registry.FindProduct(vars["brand"], vars["catalog"], vars["id"])
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, p)
}

// GetPrice handles GET /{brand}/catalogs/{catalog}/products/{id}/price?option=&height=&width=
// The answer lets a client keep add-to-cart disabled until the selection resolves.
func (c *CatalogController) GetPrice(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	vars := mux.Vars(r)
	q := r.URL.Query()

	height, err := utils.ParseDimension(q.Get("height"))
	if err != nil {
		writeJSON(w, log, http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("invalid height: %v", err), Field: "height"})
		return
	}
	width, err := utils.ParseDimension(q.Get("width"))
	if err != nil {
		writeJSON(w, log, http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("invalid width: %v", err), Field: "width"})
		return
	}

	draft, err := c.carts.ResolvePrice(vars["brand"], vars["catalog"], vars["id"], pricing.Selection{
		OptionKey: q.Get("option"),
		Height:    height,
		Width:     width,
	})
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Debugf("💰 GetPrice: %s option=%q price=%s", draft.ProductID, draft.OptionKey, draft.UnitPrice.StringFixed(2))
	writeJSON(w, log, http.StatusOK, draft.Model())
}

// GetImage handles GET /{brand}/catalogs/{catalog}/products/{id}/image?size=thumb|medium
func (c *CatalogController) GetImage(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	vars := mux.Vars(r)

	data, err := c.images.ProductImage(r.Context(), vars["brand"], vars["catalog"], vars["id"], r.URL.Query().Get("size"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
