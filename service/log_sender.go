package service

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// LogSender renders quote emails and logs them instead of sending.
// It is used when no Gmail credentials are configured.
type LogSender struct {
	mu   sync.Mutex
	sent []NotificationPayload
	log  logrus.FieldLogger
}

// Ensure LogSender implements NotificationSenderInterface
var _ NotificationSenderInterface = (*LogSender)(nil)

// NewLogSender creates a new LogSender
func NewLogSender(log logrus.FieldLogger) *LogSender {
	return &LogSender{log: log}
}

// Send renders the email so template errors still surface, then records the payload
func (s *LogSender) Send(ctx context.Context, p NotificationPayload) error {
	subject, body, err := RenderQuoteEmail(p)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.sent = append(s.sent, p)
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"request":    p.RequestNumber,
		"subject":    subject,
		"recipients": recipients(p),
		"bytes":      len(body),
	}).Info("📧 Send: quote email logged (no Gmail credentials configured)")
	return nil
}

// Sent returns the payloads recorded so far
func (s *LogSender) Sent() []NotificationPayload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]NotificationPayload(nil), s.sent...)
}
