package models

import "github.com/shopspring/decimal"

// LineItem represents one configured product in a cart
type LineItem struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	OptionKey   string          `json:"optionKey,omitempty"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Image       string          `json:"image,omitempty"`
	Dimensions  string          `json:"dimensions"`
	Sqft        float64         `json:"sqft"`
	UnitPrice   decimal.Decimal `json:"unitPrice"` // fixed when the line is added
	Quantity    int             `json:"quantity"`
	BackerPanel bool            `json:"backerPanel"`
	Illuminated bool            `json:"illuminated"`
	CustomSize  bool            `json:"customSize"`
	Notes       string          `json:"notes,omitempty"`
}

// LineTotal returns unit price times quantity
func (l LineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// PricePending reports whether the line still needs a manual price
func (l LineItem) PricePending() bool {
	return l.CustomSize && l.UnitPrice.IsZero()
}

// CartSnapshot is a by-value copy of a cart at one point in time
// Example response:
//
//	{
//	  "brand": "eh",
//	  "items": [
//	    {"id": "5b0c...", "productId": "ri-7", "code": "RI.X.7", "unitPrice": "210.7", "quantity": 3}
//	  ],
//	  "itemCount": 3,
//	  "subtotal": "632.1",
//	  "total": "632.1"
//	}
type CartSnapshot struct {
	Brand     string          `json:"brand"`
	Items     []LineItem      `json:"items"`
	ItemCount int             `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Total     decimal.Decimal `json:"total"`
}

// AddLineRequest represents the request body for adding a product to the cart
// Example: {"catalog": "exterior", "productId": "campus-id-large", "option": "custom", "height": 40, "width": 100, "quantity": 1, "backerPanel": true}
type AddLineRequest struct {
	Catalog     string  `json:"catalog"`
	ProductID   string  `json:"productId"`
	Option      string  `json:"option,omitempty"`
	Height      float64 `json:"height,omitempty"`
	Width       float64 `json:"width,omitempty"`
	Quantity    int     `json:"quantity"`
	BackerPanel bool    `json:"backerPanel,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

// UpdateLineRequest represents the request body for changing a line quantity
// Example: {"quantity": 2}
type UpdateLineRequest struct {
	Quantity int `json:"quantity"`
}

// AddLineResponse represents the response after adding a line
type AddLineResponse struct {
	LineID string       `json:"lineId"`
	Cart   CartSnapshot `json:"cart"`
}
