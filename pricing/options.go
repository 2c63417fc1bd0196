package pricing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"signage-quote/models"
	"signage-quote/utils"
)

// Resolution is what every priced option resolves to
type Resolution struct {
	UnitPrice   decimal.Decimal
	Sqft        float64
	Label       string
	Illuminated bool
	CustomSize  bool
}

// PricedOption is one selectable configuration of a product
type PricedOption interface {
	// Key is the option key a client sends to select this option
	Key() string
	Resolve() (Resolution, error)
}

// NamedVariant is a catalog variant selected by its code.
// Variants without their own dimensions or sqft inherit the product values.
type NamedVariant struct {
	Variant models.Variant
	Product *models.Product
}

func (v NamedVariant) Key() string { return v.Variant.Code }

func (v NamedVariant) Resolve() (Resolution, error) {
	label := v.Variant.Dimensions
	if label == "" {
		label = v.Product.Dimensions
	}
	sqft := v.Variant.Sqft
	if sqft == 0 {
		sqft = v.Product.Sqft
	}
	return Resolution{
		UnitPrice:   v.Variant.Price,
		Sqft:        sqft,
		Label:       label,
		Illuminated: v.Product.Illuminated,
	}, nil
}

// NamedDimension is a catalog size selected by its label
type NamedDimension struct {
	Option models.DimensionOption
}

func (d NamedDimension) Key() string { return d.Option.Label }

func (d NamedDimension) Resolve() (Resolution, error) {
	return Resolution{
		UnitPrice:   d.Option.Price,
		Sqft:        d.Option.Sqft,
		Label:       d.Option.Label,
		Illuminated: d.Option.Illuminated,
	}, nil
}

// MaxCustomInches bounds each side of a custom size
const MaxCustomInches = 10000

// CustomSize is a user-entered size in inches. Its price stays 0 until reviewed.
type CustomSize struct {
	Height float64
	Width  float64
}

func (c CustomSize) Key() string { return utils.CustomOptionKey }

func (c CustomSize) Resolve() (Resolution, error) {
	if !validSide(c.Height) || !validSide(c.Width) {
		return Resolution{}, fmt.Errorf("%w: got height=%v width=%v", ErrInvalidCustomSize, c.Height, c.Width)
	}
	return Resolution{
		UnitPrice:  decimal.Zero,
		Sqft:       c.Height * c.Width / 144,
		Label:      fmt.Sprintf("%s x %s", utils.FormatInches(c.Height), utils.FormatInches(c.Width)),
		CustomSize: true,
	}, nil
}

// validSide rejects zero, negative, NaN, infinite and oversized lengths
func validSide(v float64) bool {
	return v > 0 && v <= MaxCustomInches && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// baseOption prices a product that has no variants or sizes
type baseOption struct {
	Product *models.Product
}

func (b baseOption) Key() string { return "" }

func (b baseOption) Resolve() (Resolution, error) {
	return Resolution{
		UnitPrice:   b.Product.Price,
		Sqft:        b.Product.Sqft,
		Label:       b.Product.Dimensions,
		Illuminated: b.Product.Illuminated,
	}, nil
}
