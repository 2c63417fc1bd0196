package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBundled(t *testing.T) {
	reg, err := LoadBundled()
	require.NoError(t, err)

	brands := reg.Brands()
	require.Len(t, brands, 2)
	assert.Equal(t, "dr", brands[0].ID)
	assert.Equal(t, "eh", brands[1].ID)
	assert.Equal(t, PolicyAppend, brands[0].CartPolicy)
	assert.Equal(t, PolicyMerge, brands[1].CartPolicy)

	dr, err := reg.Brand("DR")
	require.NoError(t, err)
	assert.Equal(t, "exterior", dr.DefaultCatalog())
	require.Len(t, dr.Catalogs, 2)
	assert.Equal(t, "interior", dr.Catalogs[1].ID)
}

func TestFindProduct(t *testing.T) {
	reg, err := LoadBundled()
	require.NoError(t, err)

	p, err := reg.FindProduct("eh", "signs", "ri-7")
	require.NoError(t, err)
	assert.Equal(t, "Room ID — RI.X.7", p.Name)
	assert.Equal(t, "RI.X.7", p.Code)
	assert.Equal(t, "210.7", p.Price.String())
	assert.InDelta(t, 0.33, p.Sqft, 1e-9)
	assert.True(t, p.CustomSize)
	assert.False(t, p.BackerPanel)
	assert.False(t, p.HasOptions())

	_, err = reg.FindProduct("eh", "signs", "nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
	_, err = reg.FindProduct("eh", "exterior", "ri-7")
	assert.ErrorIs(t, err, ErrCatalogNotFound)
	_, err = reg.FindProduct("xx", "signs", "ri-7")
	assert.ErrorIs(t, err, ErrBrandNotFound)
}

func TestVariableSqftAndOptionalIllumination(t *testing.T) {
	reg, err := LoadBundled()
	require.NoError(t, err)

	p, err := reg.FindProduct("eh", "signs", "di-18")
	require.NoError(t, err)
	assert.Zero(t, p.Sqft)
	assert.False(t, p.Illuminated)
	assert.True(t, p.BackerNeeded)
	require.Len(t, p.Variants, 2)
	assert.Equal(t, "DI.22", p.Variants[1].Code)
	assert.Equal(t, "1751.68", p.Variants[1].Price.String())
}

func TestFindProductReturnsCopy(t *testing.T) {
	reg, err := LoadBundled()
	require.NoError(t, err)

	p, err := reg.FindProduct("dr", "exterior", "building-facade-id")
	require.NoError(t, err)
	p.Sizes[0].Label = "changed"
	p.Name = "changed"

	again, err := reg.FindProduct("dr", "exterior", "building-facade-id")
	require.NoError(t, err)
	assert.Equal(t, "Building Facade ID", again.Name)
	assert.NotEqual(t, "changed", again.Sizes[0].Label)
}

func TestProductsByCategory(t *testing.T) {
	reg, err := LoadBundled()
	require.NoError(t, err)
	c, err := reg.Catalog("dr", "exterior")
	require.NoError(t, err)

	assert.Equal(t, []string{"Branding", "Wayfinding", "Directory"}, c.Categories())
	assert.Len(t, c.Products(""), len(c.Products("All")))

	branding := c.Products("branding")
	require.Len(t, branding, 3)
	for _, p := range branding {
		assert.Equal(t, "Branding", p.Category)
	}
	assert.Empty(t, c.Products("Unknown"))
}

func TestLoadRejectsInvalidFiles(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing policy", `
brand: {id: x, name: X}
catalogs: [{id: c, products: []}]
`},
		{"duplicate product", `
brand: {id: x, name: X, cartPolicy: merge}
catalogs:
  - id: c
    products:
      - {id: a, name: A, price: 1}
      - {id: a, name: B, price: 2}
`},
		{"reserved option key", `
brand: {id: x, name: X, cartPolicy: merge}
catalogs:
  - id: c
    products:
      - id: a
        name: A
        variants: [{code: Custom, name: C, price: 1}]
`},
		{"negative price", `
brand: {id: x, name: X, cartPolicy: append}
catalogs:
  - id: c
    products:
      - id: a
        name: A
        sizes: [{label: S, width: 1, height: 1, price: -1, sqft: 1}]
`},
		{"no catalogs", `
brand: {id: x, name: X, cartPolicy: append}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"x.yaml": {Data: []byte(tt.yaml)}}
			_, err := Load(fsys)
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsDuplicateBrand(t *testing.T) {
	doc := []byte(`
brand: {id: x, name: X, cartPolicy: merge}
catalogs: [{id: c, products: [{id: a, name: A, price: 1}]}]
`)
	fsys := fstest.MapFS{"a.yaml": {Data: doc}, "b.yaml": {Data: doc}}
	_, err := Load(fsys)
	assert.ErrorContains(t, err, "duplicate brand")
}

func TestLoadEmptyDir(t *testing.T) {
	_, err := Load(fstest.MapFS{})
	assert.Error(t, err)
}
