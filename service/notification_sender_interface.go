package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"signage-quote/models"
)

// NotificationPayload is everything a sender needs to deliver a submitted quote
type NotificationPayload struct {
	Brand         models.Brand
	Client        models.ClientInfo
	Items         []models.LineItem
	RequestNumber string
	RequestDate   time.Time
	Total         decimal.Decimal
	Recipients    []string
}

// NotificationSenderInterface defines the contract for quote delivery
type NotificationSenderInterface interface {
	Send(ctx context.Context, payload NotificationPayload) error
}
