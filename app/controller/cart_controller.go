package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"signage-quote/app/middleware"
	"signage-quote/models"
	"signage-quote/service"
)

// CartController handles HTTP requests for the session cart and client details
type CartController struct {
	carts service.CartServiceInterface
	log   logrus.FieldLogger
}

// NewCartController creates a new CartController
func NewCartController(carts service.CartServiceInterface, log logrus.FieldLogger) *CartController {
	return &CartController{carts: carts, log: log}
}

// GetCart handles GET /{brand}/cart
func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	snap, err := c.carts.GetCart(r.Context(), middleware.SessionIDFromContext(r.Context()), mux.Vars(r)["brand"])
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, snap)
}

// AddItem handles POST /{brand}/cart/items
// Body: {"catalog":"signs","productId":"ri-7","option":"custom","height":40,"width":100,"quantity":1}
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	log.Debugf("📥 AddItem: Received %s request to %s", r.Method, r.URL.Path)

	var req models.AddLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, log, http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("Invalid request body: %v", err)})
		return
	}
	if req.ProductID == "" {
		writeJSON(w, log, http.StatusBadRequest, models.ErrorResponse{Error: "productId is required", Field: "productId"})
		return
	}

	resp, err := c.carts.AddItem(r.Context(), middleware.SessionIDFromContext(r.Context()), mux.Vars(r)["brand"], req)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusCreated, resp)
}

// UpdateItem handles PUT /{brand}/cart/items/{lineId}
// Body: {"quantity":5}; zero or less removes the line
func (c *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	vars := mux.Vars(r)

	var req models.UpdateLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, log, http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("Invalid request body: %v", err)})
		return
	}

	snap, err := c.carts.UpdateItem(r.Context(), middleware.SessionIDFromContext(r.Context()), vars["brand"], vars["lineId"], req.Quantity)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, snap)
}

// RemoveItem handles DELETE /{brand}/cart/items/{lineId}
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	vars := mux.Vars(r)

	snap, err := c.carts.RemoveItem(r.Context(), middleware.SessionIDFromContext(r.Context()), vars["brand"], vars["lineId"])
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, snap)
}

// ClearCart handles DELETE /{brand}/cart
func (c *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	snap, err := c.carts.ClearCart(r.Context(), middleware.SessionIDFromContext(r.Context()), mux.Vars(r)["brand"])
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, snap)
}

// GetClient handles GET /{brand}/client
func (c *CartController) GetClient(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	client, err := c.carts.GetClient(r.Context(), middleware.SessionIDFromContext(r.Context()), mux.Vars(r)["brand"])
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, client)
}

// SetClient handles PUT /{brand}/client
// Body: {"fullName":"Jane Doe","email":"jane@example.com","company":"Acme","propertyAddress":"1 Main St"}
func (c *CartController) SetClient(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)

	var req models.ClientInfo
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, log, http.StatusBadRequest, models.ErrorResponse{Error: fmt.Sprintf("Invalid request body: %v", err)})
		return
	}

	client, err := c.carts.SetClient(r.Context(), middleware.SessionIDFromContext(r.Context()), mux.Vars(r)["brand"], req)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, log, http.StatusOK, client)
}

// ResetSession handles POST /{brand}/session/reset
func (c *CartController) ResetSession(w http.ResponseWriter, r *http.Request) {
	log := middleware.LoggerFromContext(r.Context(), c.log)
	if err := c.carts.ResetSession(r.Context(), middleware.SessionIDFromContext(r.Context()), mux.Vars(r)["brand"]); err != nil {
		writeError(w, log, err)
		return
	}
	log.Info("✅ ResetSession: workspace cleared")
	w.WriteHeader(http.StatusNoContent)
}
