package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"signage-quote/cart"
	"signage-quote/catalog"
	"signage-quote/models"
	"signage-quote/pricing"
	"signage-quote/repository"
)

// CartService resolves product options and applies cart changes to a session workspace
type CartService struct {
	registry *catalog.Registry
	engine   *pricing.Engine
	sessions repository.SessionRepositoryInterface
	log      logrus.FieldLogger
}

// Ensure CartService implements CartServiceInterface
var _ CartServiceInterface = (*CartService)(nil)

// NewCartService creates a new CartService
func NewCartService(
	registry *catalog.Registry,
	engine *pricing.Engine,
	sessions repository.SessionRepositoryInterface,
	log logrus.FieldLogger,
) *CartService {
	return &CartService{
		registry: registry,
		engine:   engine,
		sessions: sessions,
		log:      log,
	}
}

// ResolvePrice resolves a selection without touching any cart
func (s *CartService) ResolvePrice(brand, catalogID, productID string, sel pricing.Selection) (pricing.Draft, error) {
	p, err := s.registry.FindProduct(brand, catalogID, productID)
	if err != nil {
		return pricing.Draft{}, err
	}
	return s.engine.Resolve(p, sel)
}

// GetCart returns the current cart of the brand workspace
func (s *CartService) GetCart(ctx context.Context, sessionID, brand string) (models.CartSnapshot, error) {
	ws, b, err := s.workspace(ctx, sessionID, brand)
	if err != nil {
		return models.CartSnapshot{}, err
	}
	ws.Lock()
	defer ws.Unlock()
	return ws.Ledger.Snapshot(b.ID), nil
}

// AddItem resolves the requested option and adds it to the cart.
// The unit price is fixed here; later catalog lookups never change it.
func (s *CartService) AddItem(ctx context.Context, sessionID, brand string, req models.AddLineRequest) (models.AddLineResponse, error) {
	ws, b, err := s.workspace(ctx, sessionID, brand)
	if err != nil {
		return models.AddLineResponse{}, err
	}

	catalogID := strings.TrimSpace(req.Catalog)
	if catalogID == "" {
		catalogID = b.DefaultCatalog()
	}
	draft, err := s.ResolvePrice(b.ID, catalogID, req.ProductID, pricing.Selection{
		OptionKey: req.Option,
		Height:    req.Height,
		Width:     req.Width,
	})
	if err != nil {
		return models.AddLineResponse{}, err
	}

	ws.Lock()
	defer ws.Unlock()

	lineID, err := ws.Ledger.AddLine(draft, req.Quantity, req.BackerPanel, strings.TrimSpace(req.Notes))
	if err != nil {
		return models.AddLineResponse{}, fmt.Errorf("failed to add %s: %w", req.ProductID, err)
	}
	ws.Invalidate()

	s.log.WithFields(logrus.Fields{
		"session": sessionID,
		"brand":   b.ID,
		"product": draft.ProductID,
		"option":  draft.OptionKey,
		"qty":     req.Quantity,
		"line":    lineID,
	}).Info("🛒 AddItem: line added")

	return models.AddLineResponse{LineID: lineID, Cart: ws.Ledger.Snapshot(b.ID)}, nil
}

// UpdateItem sets the quantity of a line; zero or less removes it
func (s *CartService) UpdateItem(ctx context.Context, sessionID, brand, lineID string, quantity int) (models.CartSnapshot, error) {
	ws, b, err := s.workspace(ctx, sessionID, brand)
	if err != nil {
		return models.CartSnapshot{}, err
	}
	ws.Lock()
	defer ws.Unlock()

	if err := ws.Ledger.UpdateQuantity(lineID, quantity); err != nil {
		return models.CartSnapshot{}, fmt.Errorf("failed to update line %s: %w", lineID, err)
	}
	ws.Invalidate()
	return ws.Ledger.Snapshot(b.ID), nil
}

// RemoveItem removes a line; removing an unknown line is not an error
func (s *CartService) RemoveItem(ctx context.Context, sessionID, brand, lineID string) (models.CartSnapshot, error) {
	ws, b, err := s.workspace(ctx, sessionID, brand)
	if err != nil {
		return models.CartSnapshot{}, err
	}
	ws.Lock()
	defer ws.Unlock()

	ws.Ledger.RemoveLine(lineID)
	ws.Invalidate()
	return ws.Ledger.Snapshot(b.ID), nil
}

// ClearCart empties the cart but keeps the client details
func (s *CartService) ClearCart(ctx context.Context, sessionID, brand string) (models.CartSnapshot, error) {
	ws, b, err := s.workspace(ctx, sessionID, brand)
	if err != nil {
		return models.CartSnapshot{}, err
	}
	ws.Lock()
	defer ws.Unlock()

	ws.Ledger.Clear()
	ws.Invalidate()
	s.log.WithFields(logrus.Fields{"session": sessionID, "brand": b.ID}).Info("🗑️  ClearCart: cart emptied")
	return ws.Ledger.Snapshot(b.ID), nil
}

// GetClient returns the client details entered so far
func (s *CartService) GetClient(ctx context.Context, sessionID, brand string) (models.ClientInfo, error) {
	ws, _, err := s.workspace(ctx, sessionID, brand)
	if err != nil {
		return models.ClientInfo{}, err
	}
	ws.Lock()
	defer ws.Unlock()
	return ws.Client, nil
}

// SetClient stores client details. Fields are checked when a quote is previewed, not here.
func (s *CartService) SetClient(ctx context.Context, sessionID, brand string, client models.ClientInfo) (models.ClientInfo, error) {
	ws, _, err := s.workspace(ctx, sessionID, brand)
	if err != nil {
		return models.ClientInfo{}, err
	}
	ws.Lock()
	defer ws.Unlock()

	ws.Client = trimClient(client)
	ws.Invalidate()
	return ws.Client, nil
}

// ResetSession drops the cart, client details and quotes of the brand workspace
func (s *CartService) ResetSession(ctx context.Context, sessionID, brand string) error {
	b, err := s.registry.Brand(brand)
	if err != nil {
		return err
	}
	s.sessions.Reset(ctx, sessionID, b.ID)
	return nil
}

func (s *CartService) workspace(ctx context.Context, sessionID, brand string) (*repository.Workspace, models.Brand, error) {
	return openWorkspace(ctx, s.registry, s.sessions, sessionID, brand)
}

// openWorkspace looks up the brand and returns its workspace, creating it with the brand's cart policy
func openWorkspace(
	ctx context.Context,
	registry *catalog.Registry,
	sessions repository.SessionRepositoryInterface,
	sessionID, brand string,
) (*repository.Workspace, models.Brand, error) {
	b, err := registry.Brand(brand)
	if err != nil {
		return nil, models.Brand{}, err
	}
	policy, err := cart.ParseMergePolicy(b.CartPolicy)
	if err != nil {
		return nil, models.Brand{}, fmt.Errorf("failed to read cart policy of %s: %w", b.ID, err)
	}
	return sessions.GetOrCreate(ctx, sessionID, b.ID, policy), b, nil
}

func trimClient(c models.ClientInfo) models.ClientInfo {
	return models.ClientInfo{
		FullName:        strings.TrimSpace(c.FullName),
		Email:           strings.TrimSpace(c.Email),
		Company:         strings.TrimSpace(c.Company),
		PropertyAddress: strings.TrimSpace(c.PropertyAddress),
	}
}
