package pricing

import (
	"github.com/sirupsen/logrus"

	"signage-quote/models"
	"signage-quote/utils"
)

// Selection is the option a user picked for a product.
// Height and Width are only read when OptionKey is the custom sentinel.
type Selection struct {
	OptionKey string
	Height    float64
	Width     float64
}

// Draft is a fully resolved product configuration, ready to become a cart line
type Draft struct {
	Resolution
	ProductID          string
	OptionKey          string
	Code               string
	Name               string
	Image              string
	BackerPanelOffered bool
}

// Model converts the draft into its JSON shape
func (d Draft) Model() models.PriceResolution {
	return models.PriceResolution{
		ProductID:    d.ProductID,
		OptionKey:    d.OptionKey,
		Code:         d.Code,
		Name:         d.Name,
		Dimensions:   d.Label,
		Sqft:         d.Sqft,
		UnitPrice:    d.UnitPrice,
		Illuminated:  d.Illuminated,
		CustomSize:   d.CustomSize,
		PricePending: d.CustomSize && d.UnitPrice.IsZero(),
	}
}

// Engine resolves product selections against the bundled catalogs.
// It holds no state besides its logger; every call is a pure function of its inputs.
type Engine struct {
	log logrus.FieldLogger
}

// NewEngine creates a new resolver
func NewEngine(log logrus.FieldLogger) *Engine {
	return &Engine{log: log}
}

// Options lists the priced options a product offers, custom last
func (e *Engine) Options(p *models.Product) []PricedOption {
	var opts []PricedOption
	for _, v := range p.Variants {
		opts = append(opts, NamedVariant{Variant: v, Product: p})
	}
	for _, s := range p.Sizes {
		opts = append(opts, NamedDimension{Option: s})
	}
	if p.CustomSize {
		opts = append(opts, CustomSize{})
	}
	return opts
}

// Resolve turns a selection into a draft line.
// Products with variants or sizes need an explicit option; there is no default.
func (e *Engine) Resolve(p *models.Product, sel Selection) (Draft, error) {
	key := utils.NormalizeOptionKey(sel.OptionKey)

	opt, err := e.pick(p, key, sel)
	if err != nil {
		e.log.WithFields(logrus.Fields{"product": p.ID, "option": key}).Debugf("⚠️  Resolve: %v", err)
		return Draft{}, &ResolveError{ProductID: p.ID, OptionKey: key, Err: err}
	}

	res, err := opt.Resolve()
	if err != nil {
		return Draft{}, &ResolveError{ProductID: p.ID, OptionKey: key, Err: err}
	}

	draft := Draft{
		Resolution:         res,
		ProductID:          p.ID,
		OptionKey:          key,
		Code:               p.Code,
		Name:               p.Name,
		Image:              p.Image,
		BackerPanelOffered: p.BackerPanel,
	}
	if v, ok := opt.(NamedVariant); ok {
		draft.Code = v.Variant.Code
		if v.Variant.Name != "" {
			draft.Name = v.Variant.Name
		}
	}

	e.log.WithFields(logrus.Fields{
		"product": p.ID,
		"option":  key,
		"price":   draft.UnitPrice.StringFixed(2),
	}).Debug("💰 Resolve: option resolved")
	return draft, nil
}

func (e *Engine) pick(p *models.Product, key string, sel Selection) (PricedOption, error) {
	if key == utils.CustomOptionKey {
		if !p.CustomSize {
			return nil, ErrCustomNotOffered
		}
		return CustomSize{Height: sel.Height, Width: sel.Width}, nil
	}

	if key == "" {
		if p.HasOptions() {
			return nil, ErrNoOptionSelected
		}
		return baseOption{Product: p}, nil
	}

	for _, opt := range e.Options(p) {
		if opt.Key() == key {
			return opt, nil
		}
	}
	if !p.HasOptions() && (key == p.Code || key == p.ID) {
		return baseOption{Product: p}, nil
	}
	return nil, ErrOptionNotFound
}
