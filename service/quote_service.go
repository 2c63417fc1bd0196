package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"signage-quote/catalog"
	"signage-quote/models"
	"signage-quote/quote"
	"signage-quote/repository"
)

var (
	// ErrNoQuote means the workspace has nothing previewed or submitted
	ErrNoQuote = errors.New("no quote in session")
	// ErrSubmissionInFlight rejects a second submit while the first is still being delivered
	ErrSubmissionInFlight = errors.New("quote submission already in progress")
	// ErrDeliveryFailed wraps sender errors; the quote stays previewed so the user can retry
	ErrDeliveryFailed = errors.New("failed to deliver quote")
)

// QuoteService assembles quotes from a session cart and hands them to the notification sender
type QuoteService struct {
	registry    *catalog.Registry
	sessions    repository.SessionRepositoryInterface
	assembler   *quote.Assembler
	sender      NotificationSenderInterface
	recipients  []string
	sendTimeout time.Duration
	log         logrus.FieldLogger
}

// Ensure QuoteService implements QuoteServiceInterface
var _ QuoteServiceInterface = (*QuoteService)(nil)

// NewQuoteService creates a new QuoteService.
// extraRecipients receive every quote in addition to the brand inbox and the client.
func NewQuoteService(
	registry *catalog.Registry,
	sessions repository.SessionRepositoryInterface,
	assembler *quote.Assembler,
	sender NotificationSenderInterface,
	extraRecipients []string,
	sendTimeout time.Duration,
	log logrus.FieldLogger,
) *QuoteService {
	return &QuoteService{
		registry:    registry,
		sessions:    sessions,
		assembler:   assembler,
		sender:      sender,
		recipients:  extraRecipients,
		sendTimeout: sendTimeout,
		log:         log,
	}
}

// Preview assembles a quote from the current cart and keeps it for submission.
// When client is not nil it replaces the stored client details first.
func (s *QuoteService) Preview(ctx context.Context, sessionID, brand string, client *models.ClientInfo) (*quote.Request, error) {
	ws, b, err := openWorkspace(ctx, s.registry, s.sessions, sessionID, brand)
	if err != nil {
		return nil, err
	}
	ws.Lock()
	defer ws.Unlock()

	if client != nil {
		ws.Client = trimClient(*client)
	}

	q, err := s.assembler.Assemble(b.ID, ws.Client, ws.Ledger.Snapshot(b.ID))
	if err != nil {
		s.log.WithFields(logrus.Fields{"session": sessionID, "brand": b.ID}).Debugf("⚠️  Preview: %v", err)
		return nil, err
	}
	ws.Preview = q
	ws.Submitted = nil

	s.log.WithFields(logrus.Fields{
		"session": sessionID,
		"brand":   b.ID,
		"request": q.Number(),
		"total":   q.Total().StringFixed(2),
	}).Info("📝 Preview: quote assembled")
	return q, nil
}

// Current returns the quote of the workspace and whether it was already submitted
func (s *QuoteService) Current(ctx context.Context, sessionID, brand string) (*quote.Request, bool, error) {
	b, err := s.registry.Brand(brand)
	if err != nil {
		return nil, false, err
	}
	ws, ok := s.sessions.Get(ctx, sessionID, b.ID)
	if !ok {
		return nil, false, ErrNoQuote
	}
	ws.Lock()
	defer ws.Unlock()

	q := ws.Quote()
	if q == nil {
		return nil, false, ErrNoQuote
	}
	return q, ws.Submitted != nil, nil
}

// Submit delivers the previewed quote.
// Only one delivery per workspace runs at a time; a failure leaves the preview in place for a retry.
func (s *QuoteService) Submit(ctx context.Context, sessionID, brand string) (*quote.Request, error) {
	b, err := s.registry.Brand(brand)
	if err != nil {
		return nil, err
	}
	ws, ok := s.sessions.Get(ctx, sessionID, b.ID)
	if !ok {
		return nil, ErrNoQuote
	}

	ws.Lock()
	if ws.Submitting {
		ws.Unlock()
		return nil, ErrSubmissionInFlight
	}
	if ws.Submitted != nil {
		q := ws.Submitted
		ws.Unlock()
		return q, nil
	}
	q := ws.Preview
	if q == nil {
		ws.Unlock()
		return nil, ErrNoQuote
	}
	ws.Submitting = true
	ws.Unlock()

	payload := NotificationPayload{
		Brand:         b,
		Client:        q.Client(),
		Items:         q.Lines(),
		RequestNumber: q.Number(),
		RequestDate:   q.Date(),
		Total:         q.Total(),
		Recipients:    append(append([]string(nil), b.Recipients...), s.recipients...),
	}

	sendCtx := ctx
	if s.sendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, s.sendTimeout)
		defer cancel()
	}

	log := s.log.WithFields(logrus.Fields{"session": sessionID, "brand": b.ID, "request": q.Number()})
	log.Info("📤 Submit: sending quote")
	sendErr := s.sender.Send(sendCtx, payload)

	ws.Lock()
	defer ws.Unlock()
	ws.Submitting = false
	if sendErr != nil {
		log.Errorf("❌ Submit: delivery failed: %v", sendErr)
		return nil, fmt.Errorf("%w: %w", ErrDeliveryFailed, sendErr)
	}
	if ws.Preview != q {
		// the cart or client changed during the send; q no longer matches the session
		log.Warn("⚠️  Submit: workspace changed while sending, quote not kept")
		return q, nil
	}
	ws.Submitted = q
	log.Info("✅ Submit: quote delivered")
	return q, nil
}
