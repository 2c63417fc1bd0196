package quote

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"signage-quote/models"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrMissingClientField = errors.New("required client field is empty")
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrTotalMismatch      = errors.New("cart total does not match its lines")
)

// FieldError names the client field that failed validation
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return fmt.Sprintf("%s: %v", e.Field, e.Err) }
func (e *FieldError) Unwrap() error { return e.Err }

// Assembler builds immutable quote requests from a client and a cart snapshot
type Assembler struct {
	now    func() time.Time
	suffix func() string
}

// Option configures an Assembler
type Option func(*Assembler)

// WithClock replaces time.Now
func WithClock(fn func() time.Time) Option {
	return func(a *Assembler) { a.now = fn }
}

// WithSuffix replaces the random request number suffix
func WithSuffix(fn func() string) Option {
	return func(a *Assembler) { a.suffix = fn }
}

// NewAssembler creates an assembler using the wall clock and uuid-based suffixes
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		now:    time.Now,
		suffix: randomSuffix,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble validates the client and the cart and freezes them into a Request
func (a *Assembler) Assemble(brand string, client models.ClientInfo, snap models.CartSnapshot) (*Request, error) {
	client = trimClient(client)
	if err := ValidateClient(client); err != nil {
		return nil, err
	}
	if len(snap.Items) == 0 {
		return nil, ErrEmptyCart
	}

	lines := append([]models.LineItem(nil), snap.Items...)
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
	}
	if !snap.Subtotal.IsZero() && !snap.Subtotal.Equal(subtotal) {
		return nil, fmt.Errorf("%w: snapshot %s, lines %s", ErrTotalMismatch, snap.Subtotal, subtotal)
	}

	date := a.now()
	return &Request{
		number:   RequestNumber(date, a.suffix()),
		date:     date,
		brand:    brand,
		client:   client,
		lines:    lines,
		subtotal: subtotal,
		total:    subtotal,
	}, nil
}

// RequestNumber formats ORD-YYYYMMDD-<suffix>
func RequestNumber(date time.Time, suffix string) string {
	return fmt.Sprintf("ORD-%s-%s", date.Format("20060102"), suffix)
}

func randomSuffix() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(id[:8])
}

// ValidateClient checks that every required field is present, in form order
func ValidateClient(c models.ClientInfo) error {
	fields := []struct {
		name  string
		value string
	}{
		{"fullName", c.FullName},
		{"email", c.Email},
		{"company", c.Company},
		{"propertyAddress", c.PropertyAddress},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &FieldError{Field: f.name, Err: ErrMissingClientField}
		}
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(c.Email)); err != nil {
		return &FieldError{Field: "email", Err: ErrInvalidEmail}
	}
	return nil
}

func trimClient(c models.ClientInfo) models.ClientInfo {
	return models.ClientInfo{
		FullName:        strings.TrimSpace(c.FullName),
		Email:           strings.TrimSpace(c.Email),
		Company:         strings.TrimSpace(c.Company),
		PropertyAddress: strings.TrimSpace(c.PropertyAddress),
	}
}
