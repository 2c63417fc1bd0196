package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"regexp"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"

	"signage-quote/catalog"
)

const (
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800

	SizeThumb  = "thumb"
	SizeMedium = "medium"
)

// ErrImageNotFound means the product has no image or its file is missing
var ErrImageNotFound = errors.New("product image not found")

var unsafeCacheChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ImageServiceInterface defines the contract for product image delivery
type ImageServiceInterface interface {
	ProductImage(ctx context.Context, brand, catalogID, productID, size string) ([]byte, error)
}

// ImageOptimizer serves resized JPEG product images, caching each size on disk
type ImageOptimizer struct {
	registry *catalog.Registry
	imageDir string
	cacheDir string
	log      logrus.FieldLogger
}

// Ensure ImageOptimizer implements ImageServiceInterface
var _ ImageServiceInterface = (*ImageOptimizer)(nil)

// NewImageOptimizer creates an optimizer reading originals from imageDir
func NewImageOptimizer(registry *catalog.Registry, imageDir, cacheDir string, log logrus.FieldLogger) *ImageOptimizer {
	return &ImageOptimizer{
		registry: registry,
		imageDir: imageDir,
		cacheDir: cacheDir,
		log:      log,
	}
}

// EnsureCacheDir ensures the cache directory exists, creates it if it doesn't
func (o *ImageOptimizer) EnsureCacheDir() error {
	if err := os.MkdirAll(o.cacheDir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	return nil
}

// ProductImage returns the optimized image of a product, from cache when possible
func (o *ImageOptimizer) ProductImage(ctx context.Context, brand, catalogID, productID, size string) ([]byte, error) {
	p, err := o.registry.FindProduct(brand, catalogID, productID)
	if err != nil {
		return nil, err
	}
	if p.Image == "" {
		return nil, fmt.Errorf("%w: %s", ErrImageNotFound, productID)
	}
	size = normalizeImageSize(size)

	cachePath := o.cachePath(brand, productID, size)
	if data, err := os.ReadFile(cachePath); err == nil {
		return data, nil
	}

	// catalog references look like /images/a4.1.png; only the base name is used on disk
	source := filepath.Join(o.imageDir, filepath.Base(p.Image))
	original, err := os.ReadFile(source)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrImageNotFound, source)
		}
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	optimized, err := OptimizeImage(original, size)
	if err != nil {
		return nil, err
	}
	if err := o.saveToCache(cachePath, optimized); err != nil {
		o.log.Warnf("⚠️  ProductImage: %v", err)
	}
	return optimized, nil
}

func (o *ImageOptimizer) cachePath(brand, productID, size string) string {
	name := unsafeCacheChars.ReplaceAllString(fmt.Sprintf("%s_%s_%s", brand, productID, size), "_")
	return filepath.Join(o.cacheDir, name+".jpg")
}

func (o *ImageOptimizer) saveToCache(cachePath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(cachePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	o.log.Debugf("✓ Image cached: %s", cachePath)
	return nil
}

func normalizeImageSize(size string) string {
	if size == SizeThumb {
		return SizeThumb
	}
	return SizeMedium
}

// OptimizeImage decodes a PNG or JPEG, shrinks it to fit the size bucket and re-encodes it as JPEG.
// size is "thumb" or "medium"; anything else is treated as medium.
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	maxDim, quality := maxSizeMedium, qualityMedium
	if normalizeImageSize(size) == SizeThumb {
		maxDim, quality = maxSizeThumb, qualityThumb
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	var resized image.Image = img
	if width > maxDim || height > maxDim {
		// Keep aspect ratio
		if width > height {
			resized = imaging.Resize(img, maxDim, 0, imaging.Lanczos)
		} else {
			resized = imaging.Resize(img, 0, maxDim, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}
