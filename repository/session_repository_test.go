package repository

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signage-quote/cart"
	"signage-quote/quote"
)

func newTestRepository(ttl time.Duration) (*SessionRepository, *time.Time) {
	log := logrus.New()
	log.Out = io.Discard
	r := NewSessionRepository(ttl, log)
	now := time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }
	return r, &now
}

func TestGetOrCreateReturnsSameWorkspace(t *testing.T) {
	r, _ := newTestRepository(time.Hour)
	ctx := context.Background()

	a := r.GetOrCreate(ctx, "s1", "DR", cart.AppendAlways)
	b := r.GetOrCreate(ctx, "s1", "dr", cart.MergeByProduct)
	assert.Same(t, a, b)
	assert.Equal(t, "dr", a.Brand)
	assert.Equal(t, cart.AppendAlways, a.Ledger.Policy())

	got, ok := r.Get(ctx, "s1", "dr")
	require.True(t, ok)
	assert.Same(t, a, got)
}

func TestWorkspacesAreIsolatedBySessionAndBrand(t *testing.T) {
	r, _ := newTestRepository(time.Hour)
	ctx := context.Background()

	dr := r.GetOrCreate(ctx, "s1", "dr", cart.AppendAlways)
	eh := r.GetOrCreate(ctx, "s1", "eh", cart.MergeByProduct)
	other := r.GetOrCreate(ctx, "s2", "dr", cart.AppendAlways)

	assert.NotSame(t, dr, eh)
	assert.NotSame(t, dr, other)
	assert.Equal(t, 3, r.Len())

	_, ok := r.Get(ctx, "s3", "dr")
	assert.False(t, ok)
}

func TestReset(t *testing.T) {
	r, _ := newTestRepository(time.Hour)
	ctx := context.Background()

	first := r.GetOrCreate(ctx, "s1", "eh", cart.MergeByProduct)
	assert.True(t, r.Reset(ctx, "s1", "EH"))
	assert.False(t, r.Reset(ctx, "s1", "eh"))

	second := r.GetOrCreate(ctx, "s1", "eh", cart.MergeByProduct)
	assert.NotSame(t, first, second)
	assert.Zero(t, second.Ledger.Len())
}

func TestPurgeDropsIdleWorkspaces(t *testing.T) {
	r, now := newTestRepository(time.Hour)
	ctx := context.Background()

	r.GetOrCreate(ctx, "idle", "dr", cart.AppendAlways)
	busy := r.GetOrCreate(ctx, "busy", "dr", cart.AppendAlways)
	busy.Lock()
	busy.Submitting = true
	busy.Unlock()

	*now = now.Add(30 * time.Minute)
	r.GetOrCreate(ctx, "fresh", "dr", cart.AppendAlways)

	removed := r.Purge(ctx, now.Add(45*time.Minute))
	assert.Equal(t, 1, removed)
	assert.Equal(t, 2, r.Len())

	_, ok := r.Get(ctx, "idle", "dr")
	assert.False(t, ok)
}

func TestPurgeWithoutTTLKeepsEverything(t *testing.T) {
	r, now := newTestRepository(0)
	r.GetOrCreate(context.Background(), "s1", "dr", cart.AppendAlways)
	assert.Zero(t, r.Purge(context.Background(), now.Add(24*365*time.Hour)))
	assert.Equal(t, 1, r.Len())
}

func TestWorkspaceQuoteAndInvalidate(t *testing.T) {
	ws := &Workspace{}
	assert.Nil(t, ws.Quote())

	preview := &quote.Request{}
	submitted := &quote.Request{}
	ws.Preview = preview
	assert.Same(t, preview, ws.Quote())

	ws.Submitted = submitted
	assert.Same(t, submitted, ws.Quote())

	ws.Invalidate()
	assert.Nil(t, ws.Quote())
}

func TestConcurrentGetOrCreate(t *testing.T) {
	r, _ := newTestRepository(time.Hour)
	ctx := context.Background()

	var wg sync.WaitGroup
	got := make([]*Workspace, 20)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = r.GetOrCreate(ctx, "s1", "dr", cart.AppendAlways)
		}(i)
	}
	wg.Wait()

	for _, ws := range got {
		assert.Same(t, got[0], ws)
	}
	assert.Equal(t, 1, r.Len())
}
