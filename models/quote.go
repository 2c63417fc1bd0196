package models

import "github.com/shopspring/decimal"

// ClientInfo holds the contact details entered before a quote is previewed
// Example: {"fullName": "Jane Doe", "email": "jane@example.com", "company": "Acme", "propertyAddress": "1 Main St"}
type ClientInfo struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	Company         string `json:"company"`
	PropertyAddress string `json:"propertyAddress"`
}

// QuoteView is the JSON shape of an assembled quote request
// Example response:
//
//	{
//	  "requestNumber": "ORD-20261018-1A2B3C4D",
//	  "requestDate": "2026-10-18T14:03:00Z",
//	  "brand": "eh",
//	  "client": {"fullName": "Jane Doe", "email": "jane@example.com", "company": "Acme", "propertyAddress": "1 Main St"},
//	  "items": [...],
//	  "subtotal": "632.1",
//	  "total": "632.1",
//	  "hasCustomItems": true,
//	  "submitted": false
//	}
type QuoteView struct {
	RequestNumber  string          `json:"requestNumber"`
	RequestDate    string          `json:"requestDate"`
	Brand          string          `json:"brand"`
	Client         ClientInfo      `json:"client"`
	Items          []LineItem      `json:"items"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Total          decimal.Decimal `json:"total"`
	HasCustomItems bool            `json:"hasCustomItems"`
	Submitted      bool            `json:"submitted"`
}

// SubmitResponse represents the response of a successful quote submission
type SubmitResponse struct {
	Status        string `json:"status"`
	RequestNumber string `json:"requestNumber"`
	PDFURL        string `json:"pdfUrl"`
	XLSXURL       string `json:"xlsxUrl"`
}

// ErrorResponse is the JSON body returned for failed requests
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Retry bool   `json:"retry,omitempty"`
}
