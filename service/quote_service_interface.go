package service

import (
	"context"

	"signage-quote/models"
	"signage-quote/quote"
)

// QuoteServiceInterface defines the contract for previewing and submitting quotes
type QuoteServiceInterface interface {
	Preview(ctx context.Context, sessionID, brand string, client *models.ClientInfo) (*quote.Request, error)
	Current(ctx context.Context, sessionID, brand string) (*quote.Request, bool, error)
	Submit(ctx context.Context, sessionID, brand string) (*quote.Request, error)
}
