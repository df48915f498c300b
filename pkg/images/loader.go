package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageCache caches loaded images
type ImageCache struct {
	cache map[string]image.Image
	mu    sync.RWMutex
}

// Global image cache
var globalCache = &ImageCache{
	cache: make(map[string]image.Image),
}

// IsDataURI reports whether source is an inline data: URI rather than a
// filesystem path.
func IsDataURI(source string) bool {
	return strings.HasPrefix(source, "data:")
}

// LoadImageFromDataURI decodes an image from a base64 data: URI.
func LoadImageFromDataURI(uri string) (image.Image, error) {
	comma := strings.Index(uri, ",")
	if !IsDataURI(uri) || comma < 0 {
		return nil, fmt.Errorf("images: malformed data URI")
	}
	raw, err := base64.StdEncoding.DecodeString(uri[comma+1:])
	if err != nil {
		return nil, fmt.Errorf("images: decoding data URI: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("images: decoding data URI payload: %w", err)
	}
	return img, nil
}

// LoadImage loads an image from a filesystem path or a data: URI, caching
// decoded images by source string.
func LoadImage(source string) (image.Image, error) {
	// Check cache first
	globalCache.mu.RLock()
	if img, ok := globalCache.cache[source]; ok {
		globalCache.mu.RUnlock()
		return img, nil
	}
	globalCache.mu.RUnlock()

	img, err := decode(source)
	if err != nil {
		return nil, err
	}

	// Cache the image
	globalCache.mu.Lock()
	globalCache.cache[source] = img
	globalCache.mu.Unlock()

	return img, nil
}

func decode(source string) (image.Image, error) {
	if IsDataURI(source) {
		return LoadImageFromDataURI(source)
	}
	file, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// GetImageDimensions returns the width and height of an image
func GetImageDimensions(source string) (width, height int, err error) {
	img, err := LoadImage(source)
	if err != nil {
		return 0, 0, err
	}

	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}
