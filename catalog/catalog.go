package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"signage-quote/models"
)

var (
	ErrBrandNotFound   = errors.New("brand not found")
	ErrCatalogNotFound = errors.New("catalog not found")
	ErrProductNotFound = errors.New("product not found")
)

// Catalog is a read-only list of products. It is never mutated after load.
type Catalog struct {
	brand    string
	id       string
	name     string
	products []models.Product
	index    map[string]int
}

func newCatalog(brand, id, name string, products []models.Product) *Catalog {
	c := &Catalog{
		brand:    brand,
		id:       id,
		name:     name,
		products: products,
		index:    make(map[string]int, len(products)),
	}
	for i, p := range products {
		c.index[p.ID] = i
	}
	return c
}

// ID returns the catalog id, e.g. "exterior"
func (c *Catalog) ID() string { return c.id }

// Brand returns the id of the brand owning this catalog
func (c *Catalog) Brand() string { return c.brand }

// Info summarizes the catalog for listings
func (c *Catalog) Info() models.CatalogInfo {
	return models.CatalogInfo{
		ID:           c.id,
		Name:         c.name,
		ProductCount: len(c.products),
		Categories:   c.Categories(),
	}
}

// FindProduct returns a copy of the product with the given id
func (c *Catalog) FindProduct(id string) (*models.Product, bool) {
	i, ok := c.index[strings.TrimSpace(id)]
	if !ok {
		return nil, false
	}
	p := cloneProduct(c.products[i])
	return &p, true
}

// Products lists products in catalog order. An empty category or "All" returns everything.
func (c *Catalog) Products(category string) []models.Product {
	category = strings.TrimSpace(category)
	all := category == "" || strings.EqualFold(category, "all")

	out := make([]models.Product, 0, len(c.products))
	for _, p := range c.products {
		if all || strings.EqualFold(p.Category, category) {
			out = append(out, cloneProduct(p))
		}
	}
	return out
}

// Categories returns the distinct product categories in first-seen order
func (c *Catalog) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range c.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

func cloneProduct(p models.Product) models.Product {
	p.Variants = append([]models.Variant(nil), p.Variants...)
	p.Sizes = append([]models.DimensionOption(nil), p.Sizes...)
	return p
}

type brandEntry struct {
	brand    models.Brand
	catalogs map[string]*Catalog
}

// Registry holds every brand and its catalogs
type Registry struct {
	brands map[string]*brandEntry
	order  []string
}

func newRegistry() *Registry {
	return &Registry{brands: map[string]*brandEntry{}}
}

func (r *Registry) add(entry *brandEntry) error {
	id := strings.ToLower(entry.brand.ID)
	if _, exists := r.brands[id]; exists {
		return fmt.Errorf("duplicate brand %s", id)
	}
	r.brands[id] = entry
	r.order = append(r.order, id)
	sort.Strings(r.order)
	return nil
}

// Brands lists every brand ordered by id
func (r *Registry) Brands() []models.Brand {
	out := make([]models.Brand, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.brands[id].brand)
	}
	return out
}

// Brand returns the brand with the given id
func (r *Registry) Brand(id string) (models.Brand, error) {
	entry, ok := r.brands[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return models.Brand{}, fmt.Errorf("%w: %s", ErrBrandNotFound, id)
	}
	return entry.brand, nil
}

// Catalog returns one catalog of a brand
func (r *Registry) Catalog(brand, id string) (*Catalog, error) {
	entry, ok := r.brands[strings.ToLower(strings.TrimSpace(brand))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBrandNotFound, brand)
	}
	c, ok := entry.catalogs[strings.TrimSpace(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrCatalogNotFound, brand, id)
	}
	return c, nil
}

// FindProduct looks a product up by brand, catalog and product id
func (r *Registry) FindProduct(brand, catalogID, productID string) (*models.Product, error) {
	c, err := r.Catalog(brand, catalogID)
	if err != nil {
		return nil, err
	}
	p, ok := c.FindProduct(productID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}
	return p, nil
}
