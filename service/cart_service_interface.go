package service

import (
	"context"

	"signage-quote/models"
	"signage-quote/pricing"
)

// CartServiceInterface defines the contract for pricing lookups and cart changes within a session
type CartServiceInterface interface {
	ResolvePrice(brand, catalogID, productID string, sel pricing.Selection) (pricing.Draft, error)
	GetCart(ctx context.Context, sessionID, brand string) (models.CartSnapshot, error)
	AddItem(ctx context.Context, sessionID, brand string, req models.AddLineRequest) (models.AddLineResponse, error)
	UpdateItem(ctx context.Context, sessionID, brand, lineID string, quantity int) (models.CartSnapshot, error)
	RemoveItem(ctx context.Context, sessionID, brand, lineID string) (models.CartSnapshot, error)
	ClearCart(ctx context.Context, sessionID, brand string) (models.CartSnapshot, error)
	GetClient(ctx context.Context, sessionID, brand string) (models.ClientInfo, error)
	SetClient(ctx context.Context, sessionID, brand string, client models.ClientInfo) (models.ClientInfo, error)
	ResetSession(ctx context.Context, sessionID, brand string) error
}
