package quote

import (
	"time"

	"github.com/shopspring/decimal"

	"signage-quote/models"
)

// Request is an assembled quote. Its fields are fixed once Assemble returns.
type Request struct {
	number   string
	date     time.Time
	brand    string
	client   models.ClientInfo
	lines    []models.LineItem
	subtotal decimal.Decimal
	total    decimal.Decimal
}

func (q *Request) Number() string            { return q.number }
func (q *Request) Date() time.Time           { return q.date }
func (q *Request) Brand() string             { return q.brand }
func (q *Request) Client() models.ClientInfo { return q.client }
func (q *Request) Subtotal() decimal.Decimal { return q.subtotal }
func (q *Request) Total() decimal.Decimal    { return q.total }

// Lines returns a copy of the quoted lines
func (q *Request) Lines() []models.LineItem {
	return append([]models.LineItem(nil), q.lines...)
}

// HasCustomLines reports whether any line still needs a manual price
func (q *Request) HasCustomLines() bool {
	for _, l := range q.lines {
		if l.CustomSize {
			return true
		}
	}
	return false
}

// FormattedDate renders the request date the way it is printed on quotes, e.g. "October 18, 2026"
func (q *Request) FormattedDate() string {
	return q.date.Format("January 2, 2006")
}

// View converts the request into its JSON shape
func (q *Request) View(submitted bool) models.QuoteView {
	return models.QuoteView{
		RequestNumber:  q.number,
		RequestDate:    q.date.Format(time.RFC3339),
		Brand:          q.brand,
		Client:         q.client,
		Items:          q.Lines(),
		Subtotal:       q.subtotal,
		Total:          q.total,
		HasCustomItems: q.HasCustomLines(),
		Submitted:      submitted,
	}
}
