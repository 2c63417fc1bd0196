package models

import "github.com/shopspring/decimal"

// PriceResolution is the resolved configuration of a product for a selected option
// Example response:
//
//	{
//	  "productId": "ri-7",
//	  "optionKey": "custom",
//	  "code": "RI.X.7",
//	  "name": "Room ID — RI.X.7",
//	  "dimensions": "40\" x 100\"",
//	  "sqft": 27.78,
//	  "unitPrice": "0",
//	  "illuminated": false,
//	  "customSize": true,
//	  "pricePending": true
//	}
type PriceResolution struct {
	ProductID    string          `json:"productId"`
	OptionKey    string          `json:"optionKey,omitempty"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Dimensions   string          `json:"dimensions"`
	Sqft         float64         `json:"sqft"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Illuminated  bool            `json:"illuminated"`
	CustomSize   bool            `json:"customSize"`
	PricePending bool            `json:"pricePending"`
}
