package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"signage-quote/app/middleware"
	"signage-quote/catalog"
	"signage-quote/service"
)

// ExportController handles HTTP requests for quote downloads
type ExportController struct {
	registry *catalog.Registry
	exports  service.ExportServiceInterface
	log      logrus.FieldLogger
}

// NewExportController creates a new ExportController
func NewExportController(registry *catalog.Registry, exports service.ExportServiceInterface, log logrus.FieldLogger) *ExportController {
	return &ExportController{registry: registry, exports: exports, log: log}
}

// Document handles GET /{brand}/quote/document
func (c *ExportController) Document(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	brand := mux.Vars(r)["brand"]

	a, err := c.exports.Document(r.Context(), middleware.SessionIDFromContext(r.Context()), brand)
	if err != nil {
		redirectOrError(w, r, log, c.registry, brand, err)
		return
	}
	writeArtifact(w, a, true)
}

// PDF handles GET /{brand}/quote/export.pdf
func (c *ExportController) PDF(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	brand := mux.Vars(r)["brand"]

	a, err := c.exports.PDF(r.Context(), middleware.SessionIDFromContext(r.Context()), brand)
	if err != nil {
		redirectOrError(w, r, log, c.registry, brand, err)
		return
	}
	log.Infof("📄 PDF: sending %s (%d bytes)", a.FileName, len(a.Data))
	writeArtifact(w, a, false)
}

// Spreadsheet handles GET /{brand}/quote/export.xlsx
func (c *ExportController) Spreadsheet(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	brand := mux.Vars(r)["brand"]

	a, err := c.exports.Spreadsheet(r.Context(), middleware.SessionIDFromContext(r.Context()), brand)
	if err != nil {
		redirectOrError(w, r, log, c.registry, brand, err)
		return
	}
	log.Infof("📊 Spreadsheet: sending %s (%d bytes)", a.FileName, len(a.Data))
	writeArtifact(w, a, false)
}
