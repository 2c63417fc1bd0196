package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"signage-quote/models"
	"signage-quote/utils"
)

//go:embed data/*.yaml
var bundled embed.FS

// Cart policies accepted in catalog files
const (
	PolicyAppend = "append"
	PolicyMerge  = "merge"
)

// catalogFile is the on-disk shape of one brand file
type catalogFile struct {
	Brand    brandFile        `yaml:"brand"`
	Catalogs []catalogSection `yaml:"catalogs"`
}

type brandFile struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Subtitle     string   `yaml:"subtitle"`
	ContactEmail string   `yaml:"contactEmail"`
	SenderName   string   `yaml:"senderName"`
	Recipients   []string `yaml:"recipients"`
	CartPolicy   string   `yaml:"cartPolicy"`
}

type catalogSection struct {
	ID       string        `yaml:"id"`
	Name     string        `yaml:"name"`
	Products []productFile `yaml:"products"`
}

type productFile struct {
	ID           string        `yaml:"id"`
	Code         string        `yaml:"code"`
	Name         string        `yaml:"name"`
	Description  string        `yaml:"description"`
	Category     string        `yaml:"category"`
	Image        string        `yaml:"image"`
	Dimensions   string        `yaml:"dimensions"`
	Sqft         string        `yaml:"sqft"`
	BackerNeeded string        `yaml:"backerNeeded"`
	Illuminated  string        `yaml:"illuminated"`
	Price        float64       `yaml:"price"`
	CustomSize   bool          `yaml:"customSize"`
	BackerPanel  bool          `yaml:"backerPanel"`
	Variants     []variantFile `yaml:"variants"`
	Sizes        []sizeFile    `yaml:"sizes"`
}

type variantFile struct {
	Code       string  `yaml:"code"`
	Name       string  `yaml:"name"`
	Price      float64 `yaml:"price"`
	Dimensions string  `yaml:"dimensions"`
	Sqft       string  `yaml:"sqft"`
}

type sizeFile struct {
	Label       string  `yaml:"label"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Price       float64 `yaml:"price"`
	Sqft        float64 `yaml:"sqft"`
	Illuminated bool    `yaml:"illuminated"`
}

// LoadBundled loads the catalogs compiled into the binary
func LoadBundled() (*Registry, error) {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open bundled catalogs: %w", err)
	}
	return Load(sub)
}

// Load reads every *.yaml file at the root of fsys, one brand per file
func Load(fsys fs.FS) (*Registry, error) {
	names, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog files: %w", err)
	}
	if len(names) == 0 {
		return nil, errors.New("no catalog files found")
	}
	sort.Strings(names)

	reg := newRegistry()
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", name, err)
		}
		entry, err := parse(data)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog %s: %w", path.Base(name), err)
		}
		if err := reg.add(entry); err != nil {
			return nil, fmt.Errorf("invalid catalog %s: %w", path.Base(name), err)
		}
	}
	return reg, nil
}

// parse decodes and validates a single brand file
func parse(data []byte) (*brandEntry, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := validateFile(&file); err != nil {
		return nil, err
	}
	return buildEntry(&file), nil
}

func validateFile(file *catalogFile) error {
	b := file.Brand
	if strings.TrimSpace(b.ID) == "" {
		return errors.New("brand id is required")
	}
	if strings.TrimSpace(b.Name) == "" {
		return errors.New("brand name is required")
	}
	switch b.CartPolicy {
	case PolicyAppend, PolicyMerge:
	default:
		return fmt.Errorf("brand %s: unknown cartPolicy %q", b.ID, b.CartPolicy)
	}
	if len(file.Catalogs) == 0 {
		return fmt.Errorf("brand %s: at least one catalog is required", b.ID)
	}

	seenCatalogs := map[string]bool{}
	for _, c := range file.Catalogs {
		if c.ID == "" {
			return fmt.Errorf("brand %s: catalog id is required", b.ID)
		}
		if seenCatalogs[c.ID] {
			return fmt.Errorf("brand %s: duplicate catalog %s", b.ID, c.ID)
		}
		seenCatalogs[c.ID] = true

		seenProducts := map[string]bool{}
		for _, p := range c.Products {
			if p.ID == "" || p.Name == "" {
				return fmt.Errorf("catalog %s: product id and name are required", c.ID)
			}
			if seenProducts[p.ID] {
				return fmt.Errorf("catalog %s: duplicate product %s", c.ID, p.ID)
			}
			seenProducts[p.ID] = true
			if err := validateProduct(&p); err != nil {
				return fmt.Errorf("catalog %s: product %s: %w", c.ID, p.ID, err)
			}
		}
	}
	return nil
}

func validateProduct(p *productFile) error {
	if p.Price < 0 {
		return errors.New("price must not be negative")
	}
	if len(p.Variants) > 0 && len(p.Sizes) > 0 {
		return errors.New("a product has either variants or sizes, not both")
	}

	keys := map[string]bool{}
	for _, v := range p.Variants {
		if err := checkOptionKey(keys, v.Code); err != nil {
			return err
		}
		if v.Price < 0 {
			return fmt.Errorf("variant %s: price must not be negative", v.Code)
		}
	}
	for _, s := range p.Sizes {
		if err := checkOptionKey(keys, s.Label); err != nil {
			return err
		}
		if s.Price < 0 || s.Sqft < 0 {
			return fmt.Errorf("size %s: price and sqft must not be negative", s.Label)
		}
	}
	return nil
}

func checkOptionKey(seen map[string]bool, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("option key is required")
	}
	if utils.IsCustomOption(key) {
		return fmt.Errorf("option key %q is reserved", key)
	}
	if seen[key] {
		return fmt.Errorf("duplicate option %s", key)
	}
	seen[key] = true
	return nil
}

func buildEntry(file *catalogFile) *brandEntry {
	b := file.Brand
	entry := &brandEntry{
		brand: models.Brand{
			ID:           b.ID,
			Name:         b.Name,
			Subtitle:     b.Subtitle,
			ContactEmail: b.ContactEmail,
			SenderName:   b.SenderName,
			Recipients:   append([]string(nil), b.Recipients...),
			CartPolicy:   b.CartPolicy,
		},
		catalogs: map[string]*Catalog{},
	}

	for _, section := range file.Catalogs {
		products := make([]models.Product, 0, len(section.Products))
		for _, p := range section.Products {
			products = append(products, buildProduct(&p))
		}
		c := newCatalog(b.ID, section.ID, section.Name, products)
		entry.catalogs[section.ID] = c
		entry.brand.Catalogs = append(entry.brand.Catalogs, c.Info())
	}
	return entry
}

func buildProduct(p *productFile) models.Product {
	product := models.Product{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
		Category:     p.Category,
		Image:        p.Image,
		Price:        money(p.Price),
		Dimensions:   p.Dimensions,
		Sqft:         utils.ParseSqft(p.Sqft),
		BackerNeeded: utils.ParseFlag(p.BackerNeeded),
		Illuminated:  utils.ParseFlag(p.Illuminated),
		CustomSize:   p.CustomSize,
		BackerPanel:  p.BackerPanel,
	}
	if product.Code == "" {
		product.Code = strings.ToUpper(p.ID)
	}
	for _, v := range p.Variants {
		product.Variants = append(product.Variants, models.Variant{
			Code:       strings.TrimSpace(v.Code),
			Name:       v.Name,
			Price:      money(v.Price),
			Dimensions: v.Dimensions,
			Sqft:       utils.ParseSqft(v.Sqft),
		})
	}
	for _, s := range p.Sizes {
		product.Sizes = append(product.Sizes, models.DimensionOption{
			Label:       strings.TrimSpace(s.Label),
			Width:       s.Width,
			Height:      s.Height,
			Price:       money(s.Price),
			Sqft:        s.Sqft,
			Illuminated: s.Illuminated,
		})
	}
	return product
}

func money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
