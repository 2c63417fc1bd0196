package service

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"mime"
	"net/mail"
	"strings"

	"signage-quote/export"
	"signage-quote/models"
	"signage-quote/utils"
)

//go:embed templates/quote_email.html
var emailFS embed.FS

var emailTemplate = template.Must(template.ParseFS(emailFS, "templates/quote_email.html"))

type emailData struct {
	BrandName     string
	RequestNumber string
	RequestDate   string
	Total         string
	ItemsLabel    string
	Client        models.ClientInfo
	Items         []export.Row
	HasCustom     bool
	Disclaimer    string
	NoticeHeading string
	Notices       []string
}

// QuoteEmailSubject returns the subject line for a quote email.
// Example: "Quote Request ORD-20261018-1A2B3C4D - Endeavor Health Signage"
func QuoteEmailSubject(requestNumber, brandName string) string {
	return fmt.Sprintf("Quote Request %s - %s Signage", requestNumber, brandName)
}

// RenderQuoteEmail renders the subject and HTML body sent for a submitted quote
func RenderQuoteEmail(p NotificationPayload) (string, []byte, error) {
	rows := export.BuildRows(p.Items)
	hasCustom := false
	for _, item := range p.Items {
		if item.CustomSize {
			hasCustom = true
			break
		}
	}

	label := fmt.Sprintf("%d products", len(p.Items))
	if len(p.Items) == 1 {
		label = "1 product"
	}

	data := emailData{
		BrandName:     p.Brand.Name,
		RequestNumber: p.RequestNumber,
		RequestDate:   p.RequestDate.Format("January 2, 2006"),
		Total:         utils.FormatUSD(p.Total),
		ItemsLabel:    label,
		Client:        p.Client,
		Items:         rows,
		HasCustom:     hasCustom,
		Disclaimer:    export.CustomDisclaimer,
		NoticeHeading: export.NoticeHeading,
		Notices:       export.Notices,
	}

	var buf bytes.Buffer
	if err := emailTemplate.ExecuteTemplate(&buf, "quote_email.html", data); err != nil {
		return "", nil, fmt.Errorf("failed to render quote email: %w", err)
	}
	return QuoteEmailSubject(p.RequestNumber, p.Brand.Name), buf.Bytes(), nil
}

// mimeMessage is an RFC 822 message with a single HTML part
type mimeMessage struct {
	From    mail.Address
	To      []string
	ReplyTo string
	Subject string
	HTML    []byte
}

// Bytes encodes the message. The body is base64 so long HTML lines survive transport.
func (m mimeMessage) Bytes() []byte {
	var b bytes.Buffer
	b.WriteString("From: " + m.From.String() + "\r\n")
	b.WriteString("To: " + strings.Join(m.To, ", ") + "\r\n")
	if m.ReplyTo != "" {
		b.WriteString("Reply-To: " + m.ReplyTo + "\r\n")
	}
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", m.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("Content-Transfer-Encoding: base64\r\n\r\n")

	encoded := base64.StdEncoding.EncodeToString(m.HTML)
	for len(encoded) > 76 {
		b.WriteString(encoded[:76] + "\r\n")
		encoded = encoded[76:]
	}
	b.WriteString(encoded + "\r\n")
	return b.Bytes()
}

// recipients merges the payload recipients with the client address, dropping duplicates
func recipients(p NotificationPayload) []string {
	seen := map[string]bool{}
	var out []string
	for _, addr := range append([]string{p.Client.Email}, p.Recipients...) {
		addr = strings.TrimSpace(addr)
		if addr == "" || seen[strings.ToLower(addr)] {
			continue
		}
		seen[strings.ToLower(addr)] = true
		out = append(out, addr)
	}
	return out
}
