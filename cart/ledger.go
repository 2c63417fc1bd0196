package cart

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"signage-quote/models"
	"signage-quote/pricing"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrLineNotFound     = errors.New("cart line not found")
	ErrBackerNotOffered = errors.New("backer panel is not offered for this product")
	ErrUnknownPolicy    = errors.New("unknown cart policy")
)

// MergePolicy decides what happens when the same product is added twice
type MergePolicy int

const (
	// AppendAlways creates a new line for every add, even for an identical configuration
	AppendAlways MergePolicy = iota
	// MergeByProduct adds to the quantity of an existing line with the same product and configuration
	MergeByProduct
)

func (p MergePolicy) String() string {
	switch p {
	case AppendAlways:
		return "append"
	case MergeByProduct:
		return "merge"
	default:
		return fmt.Sprintf("MergePolicy(%d)", int(p))
	}
}

// ParseMergePolicy maps "append" or "merge" to a policy
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "append":
		return AppendAlways, nil
	case "merge":
		return MergeByProduct, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Ledger holds the lines of one cart.
// It is owned by a single session workspace and is not safe for concurrent use on its own.
type Ledger struct {
	policy MergePolicy
	lines  []models.LineItem
	newID  func() string
}

// Option configures a Ledger
type Option func(*Ledger)

// WithIDGenerator replaces the uuid line id generator
func WithIDGenerator(fn func() string) Option {
	return func(l *Ledger) { l.newID = fn }
}

// NewLedger creates an empty ledger with an explicit merge policy
func NewLedger(policy MergePolicy, opts ...Option) *Ledger {
	l := &Ledger{
		policy: policy,
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Policy returns the merge policy the ledger was built with
func (l *Ledger) Policy() MergePolicy { return l.policy }

// AddLine adds a resolved draft and returns the id of the line that holds it.
// A non-positive quantity leaves the ledger untouched.
func (l *Ledger) AddLine(d pricing.Draft, quantity int, backerPanel bool, notes string) (string, error) {
	if quantity <= 0 {
		return "", ErrInvalidQuantity
	}
	if backerPanel && !d.BackerPanelOffered {
		return "", ErrBackerNotOffered
	}
	notes = strings.TrimSpace(notes)

	if l.policy == MergeByProduct {
		for i := range l.lines {
			line := &l.lines[i]
			if !sameConfiguration(line, d, backerPanel) {
				continue
			}
			if line.Quantity > math.MaxInt-quantity {
				return "", fmt.Errorf("%w: merged quantity too large", ErrInvalidQuantity)
			}
			line.Quantity += quantity
			if notes != "" {
				line.Notes = notes
			}
			return line.ID, nil
		}
	}

	line := models.LineItem{
		ID:          l.newID(),
		ProductID:   d.ProductID,
		OptionKey:   d.OptionKey,
		Code:        d.Code,
		Name:        d.Name,
		Image:       d.Image,
		Dimensions:  d.Label,
		Sqft:        d.Sqft,
		UnitPrice:   d.UnitPrice,
		Quantity:    quantity,
		BackerPanel: backerPanel,
		Illuminated: d.Illuminated,
		CustomSize:  d.CustomSize,
		Notes:       notes,
	}
	l.lines = append(l.lines, line)
	return line.ID, nil
}

func sameConfiguration(line *models.LineItem, d pricing.Draft, backerPanel bool) bool {
	return line.ProductID == d.ProductID &&
		line.OptionKey == d.OptionKey &&
		line.Dimensions == d.Label &&
		line.CustomSize == d.CustomSize &&
		line.BackerPanel == backerPanel
}

// UpdateQuantity sets the quantity of a line. A quantity of zero or less removes the line.
func (l *Ledger) UpdateQuantity(lineID string, quantity int) error {
	if quantity <= 0 {
		l.RemoveLine(lineID)
		return nil
	}
	i := l.indexOf(lineID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrLineNotFound, lineID)
	}
	l.lines[i].Quantity = quantity
	return nil
}

// RemoveLine deletes a line. Unknown ids are ignored.
func (l *Ledger) RemoveLine(lineID string) {
	i := l.indexOf(lineID)
	if i < 0 {
		return
	}
	l.lines = append(l.lines[:i], l.lines[i+1:]...)
}

// Clear empties the ledger
func (l *Ledger) Clear() {
	l.lines = nil
}

// Len returns the number of lines
func (l *Ledger) Len() int { return len(l.lines) }

// ItemCount returns the sum of all quantities
func (l *Ledger) ItemCount() int {
	n := 0
	for _, line := range l.lines {
		n += line.Quantity
	}
	return n
}

// Line returns a copy of one line
func (l *Ledger) Line(lineID string) (models.LineItem, bool) {
	i := l.indexOf(lineID)
	if i < 0 {
		return models.LineItem{}, false
	}
	return l.lines[i], true
}

// Lines returns a copy of every line in insertion order
func (l *Ledger) Lines() []models.LineItem {
	return append([]models.LineItem(nil), l.lines...)
}

// Subtotal is the exact sum of unit price times quantity, computed on every call
func (l *Ledger) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range l.lines {
		sum = sum.Add(line.LineTotal())
	}
	return sum
}

// Total equals Subtotal; no fees or taxes are added
func (l *Ledger) Total() decimal.Decimal {
	return l.Subtotal()
}

// Snapshot copies the ledger into a value every consumer can read independently
func (l *Ledger) Snapshot(brand string) models.CartSnapshot {
	items := l.Lines()
	if items == nil {
		items = []models.LineItem{}
	}
	return models.CartSnapshot{
		Brand:     brand,
		Items:     items,
		ItemCount: l.ItemCount(),
		Subtotal:  l.Subtotal(),
		Total:     l.Total(),
	}
}

func (l *Ledger) indexOf(lineID string) int {
	for i := range l.lines {
		if l.lines[i].ID == lineID {
			return i
		}
	}
	return -1
}
