package models

import "github.com/shopspring/decimal"

// Variant is a priced alternative of a product identified by its code
type Variant struct {
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Dimensions string          `json:"dimensions,omitempty"`
	Sqft       float64         `json:"sqft,omitempty"`
}

// DimensionOption is a priced size of a product identified by its label
type DimensionOption struct {
	Label       string          `json:"label"`
	Width       float64         `json:"width"`
	Height      float64         `json:"height"`
	Price       decimal.Decimal `json:"price"`
	Sqft        float64         `json:"sqft"`
	Illuminated bool            `json:"illuminated"`
}

// Product represents a sign product loaded from a bundled catalog
// Example:
//
//	{
//	  "id": "ri-7",
//	  "code": "RI.X.7",
//	  "name": "Room ID — RI.X.7",
//	  "category": "Room ID",
//	  "price": "210.7",
//	  "dimensions": "6.75\" x 7.5\"",
//	  "sqft": 0.33,
//	  "customSize": true,
//	  "backerPanel": false
//	}
type Product struct {
	ID           string            `json:"id"`
	Code         string            `json:"code"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Category     string            `json:"category"`
	Image        string            `json:"image,omitempty"`
	Price        decimal.Decimal   `json:"price"`
	Dimensions   string            `json:"dimensions,omitempty"`
	Sqft         float64           `json:"sqft"`
	BackerNeeded bool              `json:"backerNeeded"`
	Illuminated  bool              `json:"illuminated"`
	CustomSize   bool              `json:"customSize"`  // accepts the "custom" option
	BackerPanel  bool              `json:"backerPanel"` // backer panel add-on can be requested
	Variants     []Variant         `json:"variants,omitempty"`
	Sizes        []DimensionOption `json:"sizes,omitempty"`
}

// HasOptions reports whether a variant or a size must be picked before the product can be priced
func (p *Product) HasOptions() bool {
	return len(p.Variants) > 0 || len(p.Sizes) > 0
}

// CatalogInfo describes one catalog of a brand
type CatalogInfo struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ProductCount int      `json:"productCount"`
	Categories   []string `json:"categories"`
}

// Brand holds the branding and routing details of one storefront
type Brand struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Subtitle     string        `json:"subtitle"`
	ContactEmail string        `json:"contactEmail"`
	SenderName   string        `json:"-"`
	Recipients   []string      `json:"-"`
	CartPolicy   string        `json:"cartPolicy"`
	Catalogs     []CatalogInfo `json:"catalogs"`
}

// DefaultCatalog returns the catalog a user lands on for this brand
func (b *Brand) DefaultCatalog() string {
	if len(b.Catalogs) == 0 {
		return ""
	}
	return b.Catalogs[0].ID
}

// ProductListResponse represents the response for a product listing
type ProductListResponse struct {
	Brand      string    `json:"brand"`
	Catalog    string    `json:"catalog"`
	Category   string    `json:"category,omitempty"`
	Categories []string  `json:"categories"`
	Products   []Product `json:"products"`
}
