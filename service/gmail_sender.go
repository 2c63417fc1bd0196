package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/mail"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailSender delivers quote emails through the Gmail API
type GmailSender struct {
	client  *gmail.Service
	from    string
	replyTo string
	log     logrus.FieldLogger
}

// Ensure GmailSender implements NotificationSenderInterface
var _ NotificationSenderInterface = (*GmailSender)(nil)

// NewGmailSender creates a new GmailSender.
// credentialsPath should be the path to a Service Account JSON file with domain-wide delegation;
// mail is sent as the from address.
func NewGmailSender(ctx context.Context, credentialsPath, from, replyTo string, log logrus.FieldLogger) (*GmailSender, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read gmail credentials: %w", err)
	}

	conf, err := google.JWTConfigFromJSON(data, gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse gmail credentials: %w", err)
	}
	conf.Subject = from

	client, err := gmail.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}

	return &GmailSender{
		client:  client,
		from:    from,
		replyTo: replyTo,
		log:     log,
	}, nil
}

// Send renders the quote email and sends it to the client and the brand inbox
func (s *GmailSender) Send(ctx context.Context, p NotificationPayload) error {
	subject, body, err := RenderQuoteEmail(p)
	if err != nil {
		return err
	}

	to := recipients(p)
	if len(to) == 0 {
		return fmt.Errorf("no recipients for quote %s", p.RequestNumber)
	}

	name := p.Brand.SenderName
	if name == "" {
		name = p.Brand.Name + " Orders"
	}
	msg := mimeMessage{
		From:    mail.Address{Name: name, Address: s.from},
		To:      to,
		ReplyTo: s.replyTo,
		Subject: subject,
		HTML:    body,
	}

	raw := base64.URLEncoding.EncodeToString(msg.Bytes())
	sent, err := s.client.Users.Messages.Send("me", &gmail.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		s.log.WithField("request", p.RequestNumber).Errorf("❌ Send: gmail rejected quote email: %v", err)
		return fmt.Errorf("failed to send quote email: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"request":    p.RequestNumber,
		"message_id": sent.Id,
		"recipients": len(to),
	}).Info("✅ Send: quote email delivered")
	return nil
}
