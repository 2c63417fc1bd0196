package controller

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"signage-quote/app/middleware"
	"signage-quote/catalog"
	"signage-quote/models"
)

// PortalController serves the landing page data and the health check
type PortalController struct {
	registry *catalog.Registry
	log      logrus.FieldLogger
}

// NewPortalController creates a new PortalController
func NewPortalController(registry *catalog.Registry, log logrus.FieldLogger) *PortalController {
	return &PortalController{registry: registry, log: log}
}

// PortalResponse lists the brand sites
// Example: {"brands":[{"id":"dr","name":"Digital Realty","catalogs":[{"id":"exterior",...}]}]}
type PortalResponse struct {
	Brands []models.Brand `json:"brands"`
}

// Ping handles GET /ping
func (c *PortalController) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// Home handles GET /
func (c *PortalController) Home(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	writeJSON(w, log, http.StatusOK, PortalResponse{Brands: c.registry.Brands()})
}
