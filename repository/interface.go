package repository

import (
	"context"
	"time"

	"signage-quote/cart"
)

// SessionRepositoryInterface defines the contract for per-session workspace storage
type SessionRepositoryInterface interface {
	GetOrCreate(ctx context.Context, sessionID, brand string, policy cart.MergePolicy) *Workspace
	Get(ctx context.Context, sessionID, brand string) (*Workspace, bool)
	Reset(ctx context.Context, sessionID, brand string) bool
	Purge(ctx context.Context, now time.Time) int
	Len() int
}
