package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"signage-quote/app/middleware"
	"signage-quote/catalog"
	"signage-quote/models"
	"signage-quote/service"
)

// QuoteController handles HTTP requests for quote preview and submission
type QuoteController struct {
	registry *catalog.Registry
	quotes   service.QuoteServiceInterface
	log      logrus.FieldLogger
}

// NewQuoteController creates a new QuoteController
func NewQuoteController(registry *catalog.Registry, quotes service.QuoteServiceInterface, log logrus.FieldLogger) *QuoteController {
	return &QuoteController{registry: registry, quotes: quotes, log: log}
}

// Preview handles POST /{brand}/quote/preview
// An optional body with client details replaces the stored ones before the quote is assembled.
func (c *QuoteController) Preview(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	log.Debugf("📥 Preview: Received %s request to %s", r.Method, r.URL.Path)

	var client *models.ClientInfo
	var body models.ClientInfo
	err := json.NewDecoder(r.Body).Decode(&body)
	switch {
	case err == nil:
		client = &body
	case errors.Is(err, io.EOF):
	default:
		writeJSON(w, log, http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("Invalid request body: %v", err)})
		return
	}

	q, err := c.quotes.Preview(r.Context(), middleware.SessionIDFromContext(r.Context()), mux.Vars(r)["brand"], client)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, q.View(false))
}

// GetQuote handles GET /{brand}/quote
func (c *QuoteController) GetQuote(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	brand := mux.Vars(r)["brand"]

	q, submitted, err := c.quotes.Current(r.Context(), middleware.SessionIDFromContext(r.Context()), brand)
	if err != nil {
		redirectOrError(w, r, log, c.registry, brand, err)
		return
	}
	writeJSON(w, log, http.StatusOK, q.View(submitted))
}

// Submit handles POST /{brand}/quote/submit
func (c *QuoteController) Submit(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	brand := mux.Vars(r)["brand"]

	q, err := c.quotes.Submit(r.Context(), middleware.SessionIDFromContext(r.Context()), brand)
	if err != nil {
		redirectOrError(w, r, log, c.registry, brand, err)
		return
	}

	log.Infof("✅ Submit: quote %s submitted", q.Number())
	writeJSON(w, log, http.StatusOK, models.SubmitResponse{
		Status:        "submitted",
		RequestNumber: q.Number(),
		PDFURL:        fmt.Sprintf("/%s/quote/export.pdf", q.Brand()),
		XLSXURL:       fmt.Sprintf("/%s/quote/export.xlsx", q.Brand()),
	})
}
