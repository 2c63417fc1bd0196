package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"signage-quote/cart"
	"signage-quote/models"
	"signage-quote/quote"
)

// Workspace is the quoting state of one brand inside one browser session.
// Callers must hold the embedded mutex while reading or changing any field.
type Workspace struct {
	sync.Mutex

	SessionID string
	Brand     string
	Ledger    *cart.Ledger
	Client    models.ClientInfo

	// Preview is the quote last shown for review; any ledger change clears it
	Preview *quote.Request
	// Submitted is set once delivery succeeded
	Submitted  *quote.Request
	Submitting bool

	lastSeen time.Time
}

// Quote returns the submitted quote if there is one, else the pending preview
func (w *Workspace) Quote() *quote.Request {
	if w.Submitted != nil {
		return w.Submitted
	}
	return w.Preview
}

// Invalidate drops any quote built from the previous ledger contents
func (w *Workspace) Invalidate() {
	w.Preview = nil
	w.Submitted = nil
}

type sessionKey struct {
	session string
	brand   string
}

// SessionRepository keeps workspaces in memory, one per session and brand
type SessionRepository struct {
	mu         sync.RWMutex
	workspaces map[sessionKey]*Workspace
	ttl        time.Duration
	now        func() time.Time
	log        logrus.FieldLogger
}

// Ensure SessionRepository implements SessionRepositoryInterface
var _ SessionRepositoryInterface = (*SessionRepository)(nil)

// NewSessionRepository creates a repository whose idle workspaces expire after ttl.
// A ttl of zero keeps workspaces until they are reset.
func NewSessionRepository(ttl time.Duration, log logrus.FieldLogger) *SessionRepository {
	return &SessionRepository{
		workspaces: make(map[sessionKey]*Workspace),
		ttl:        ttl,
		now:        time.Now,
		log:        log,
	}
}

func key(sessionID, brand string) sessionKey {
	return sessionKey{session: sessionID, brand: strings.ToLower(strings.TrimSpace(brand))}
}

// GetOrCreate returns the workspace for the session and brand, creating an empty one on first use
func (r *SessionRepository) GetOrCreate(ctx context.Context, sessionID, brand string, policy cart.MergePolicy) *Workspace {
	k := key(sessionID, brand)
	now := r.now()

	r.mu.RLock()
	ws, ok := r.workspaces[k]
	r.mu.RUnlock()
	if ok {
		r.touch(ws, now)
		return ws
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if ws, ok := r.workspaces[k]; ok {
		r.touch(ws, now)
		return ws
	}
	ws = &Workspace{
		SessionID: sessionID,
		Brand:     k.brand,
		Ledger:    cart.NewLedger(policy),
		lastSeen:  now,
	}
	r.workspaces[k] = ws
	r.log.WithFields(logrus.Fields{"session": sessionID, "brand": k.brand, "policy": policy.String()}).
		Debug("🛒 GetOrCreate: new workspace")
	return ws
}

// Get returns an existing workspace without creating one
func (r *SessionRepository) Get(ctx context.Context, sessionID, brand string) (*Workspace, bool) {
	r.mu.RLock()
	ws, ok := r.workspaces[key(sessionID, brand)]
	r.mu.RUnlock()
	if ok {
		r.touch(ws, r.now())
	}
	return ws, ok
}

// Reset drops the workspace so the next visit starts from an empty cart
func (r *SessionRepository) Reset(ctx context.Context, sessionID, brand string) bool {
	k := key(sessionID, brand)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.workspaces[k]; !ok {
		return false
	}
	delete(r.workspaces, k)
	r.log.WithFields(logrus.Fields{"session": sessionID, "brand": k.brand}).Info("🗑️  Reset: workspace dropped")
	return true
}

// Purge drops workspaces idle for longer than the ttl and reports how many were removed.
// Workspaces with a submission in flight are kept.
func (r *SessionRepository) Purge(ctx context.Context, now time.Time) int {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for k, ws := range r.workspaces {
		ws.Lock()
		expired := !ws.Submitting && now.Sub(ws.lastSeen) > r.ttl
		ws.Unlock()
		if expired {
			delete(r.workspaces, k)
			removed++
		}
	}
	if removed > 0 {
		r.log.WithField("removed", removed).Info("🧹 Purge: expired workspaces dropped")
	}
	return removed
}

// Len reports the number of live workspaces
func (r *SessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.workspaces)
}

// RunPurge purges expired workspaces every interval until ctx is done
func (r *SessionRepository) RunPurge(ctx context.Context, interval time.Duration) {
	if r.ttl <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			r.Purge(ctx, t)
		}
	}
}

func (r *SessionRepository) touch(ws *Workspace, now time.Time) {
	ws.Lock()
	ws.lastSeen = now
	ws.Unlock()
}
