package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"signage-quote/cart"
	"signage-quote/catalog"
	"signage-quote/models"
	"signage-quote/pricing"
	"signage-quote/quote"
	"signage-quote/service"
	"signage-quote/utils"
)

// writeJSON encodes v with the given status
func writeJSON(w http.ResponseWriter, log logrus.FieldLogger, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("❌ Error encoding response: %v", err)
	}
}

// writeError maps a service error to a status code and a JSON error body
func writeError(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		log.Errorf("❌ %v", err)
	} else {
		log.Debugf("⚠️  %v", err)
	}
	writeJSON(w, log, status, body)
}

func errorResponse(err error) (int, models.ErrorResponse) {
	body := models.ErrorResponse{Error: err.Error()}

	var fe *quote.FieldError
	if errors.As(err, &fe) {
		body.Field = fe.Field
	}

	switch {
	case errors.Is(err, catalog.ErrBrandNotFound),
		errors.Is(err, catalog.ErrCatalogNotFound),
		errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, pricing.ErrOptionNotFound),
		errors.Is(err, cart.ErrLineNotFound),
		errors.Is(err, service.ErrImageNotFound):
		return http.StatusNotFound, body
	case pricing.IsValidation(err),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, cart.ErrBackerNotOffered),
		errors.Is(err, quote.ErrEmptyCart),
		errors.Is(err, quote.ErrMissingClientField),
		errors.Is(err, quote.ErrInvalidEmail),
		errors.Is(err, quote.ErrTotalMismatch):
		return http.StatusBadRequest, body
	case errors.Is(err, service.ErrSubmissionInFlight):
		return http.StatusConflict, body
	case errors.Is(err, service.ErrDeliveryFailed):
		body.Error = "We could not send your quote request. Please try again."
		body.Retry = true
		return http.StatusBadGateway, body
	default:
		body.Error = "internal error"
		return http.StatusInternalServerError, body
	}
}

// catalogEntryPath is where a user lands when a quote page has nothing to show
func catalogEntryPath(registry *catalog.Registry, brand string) string {
	b, err := registry.Brand(brand)
	if err != nil || b.DefaultCatalog() == "" {
		return "/"
	}
	return fmt.Sprintf("/%s/catalogs/%s/products", b.ID, b.DefaultCatalog())
}

// redirectOrError sends the user back to the catalog when the session has no quote
func redirectOrError(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger, registry *catalog.Registry, brand string, err error) {
	if errors.Is(err, service.ErrNoQuote) {
		target := catalogEntryPath(registry, brand)
		log.Debugf("↪️  No quote in session, redirecting to %s", target)
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	writeError(w, log, err)
}

// writeArtifact sends a rendered export, as a download unless inline is set
func writeArtifact(w http.ResponseWriter, a service.Artifact, inline bool) {
	w.Header().Set("Content-Type", a.ContentType)
	if !inline {
		w.Header().Set("Content-Disposition", utils.ContentDisposition(a.FileName))
		w.Header().Set("Content-Transfer-Encoding", "binary")
		w.Header().Set("Expires", "0")
	}
	w.Header().Set("Content-Length", fmt.Sprint(len(a.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(a.Data)
}
