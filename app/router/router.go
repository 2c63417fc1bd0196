package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"signage-quote/app/controller"
	"signage-quote/app/middleware"
)

type Controllers struct {
	Portal  *controller.PortalController
	Catalog *controller.CatalogController
	Cart    *controller.CartController
	Quote   *controller.QuoteController
	Export  *controller.ExportController
}

// SetupRoutes registers every route and wraps the router with logging, session and tracing middleware
func SetupRoutes(controllers *Controllers, log logrus.FieldLogger, cookieName string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/ping", controllers.Portal.Ping).Methods(http.MethodGet)
	r.HandleFunc("/", controllers.Portal.Home).Methods(http.MethodGet, http.MethodHead)

	// Catalog browsing and price lookups
	r.HandleFunc("/{brand}/catalogs/{catalog}/products", controllers.Catalog.ListProducts).Methods(http.MethodGet)
	r.HandleFunc("/{brand}/catalogs/{catalog}/products/{id}", controllers.Catalog.GetProduct).Methods(http.MethodGet)
	r.HandleFunc("/{brand}/catalogs/{catalog}/products/{id}/price", controllers.Catalog.GetPrice).Methods(http.MethodGet)
	r.HandleFunc("/{brand}/catalogs/{catalog}/products/{id}/image", controllers.Catalog.GetImage).Methods(http.MethodGet)

	// Cart
	r.HandleFunc("/{brand}/cart", controllers.Cart.GetCart).Methods(http.MethodGet)
	r.HandleFunc("/{brand}/cart", controllers.Cart.ClearCart).Methods(http.MethodDelete)
	r.HandleFunc("/{brand}/cart/items", controllers.Cart.AddItem).Methods(http.MethodPost)
	r.HandleFunc("/{brand}/cart/items/{lineId}", controllers.Cart.UpdateItem).Methods(http.MethodPut, http.MethodPatch)
	r.HandleFunc("/{brand}/cart/items/{lineId}", controllers.Cart.RemoveItem).Methods(http.MethodDelete)

	// Client details and session
	r.HandleFunc("/{brand}/client", controllers.Cart.GetClient).Methods(http.MethodGet)
	r.HandleFunc("/{brand}/client", controllers.Cart.SetClient).Methods(http.MethodPut)
	r.HandleFunc("/{brand}/session/reset", controllers.Cart.ResetSession).Methods(http.MethodPost)

	// Quote
	r.HandleFunc("/{brand}/quote/preview", controllers.Quote.Preview).Methods(http.MethodPost)
	r.HandleFunc("/{brand}/quote", controllers.Quote.GetQuote).Methods(http.MethodGet)
	r.HandleFunc("/{brand}/quote/submit", controllers.Quote.Submit).Methods(http.MethodPost)

	// Exports
	r.HandleFunc("/{brand}/quote/document", controllers.Export.Document).Methods(http.MethodGet)
	r.HandleFunc("/{brand}/quote/export.pdf", controllers.Export.PDF).Methods(http.MethodGet)
	r.HandleFunc("/{brand}/quote/export.xlsx", controllers.Export.Spreadsheet).Methods(http.MethodGet)

	var handler http.Handler = r
	handler = &middleware.LogHandler{Log: log, Next: handler} // add logging
	handler = middleware.EnsureSessionID(cookieName, handler) // add session ID
	handler = otelhttp.NewHandler(handler, "signage-quote")   // add OTel tracing
	return handler
}
