package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"

	"github.com/decker502/fireworks/pkg/embedded"
	"github.com/decker502/fireworks/pkg/render/ebitenrender"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ResourceManager is responsible for centralized management of display assets.
// It loads images and font faces once and reuses them for the rest of the run.
//
// Files are read through the embedded package: a file on disk wins, otherwise
// the embedded copy is used. When neither exists and the manifest names a
// fallback, a generated replacement is used and a warning is logged; without
// a fallback the load fails, which is an initialization fault.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens on the main
// goroutine before the frame loop starts.
//
// Usage:
//
//	rm := NewResourceManager()
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    return err
//	}
//	bg, err := rm.LoadImageByID("background")
type ResourceManager struct {
	imageCache      map[string]*ebiten.Image          // path -> Image
	fontSourceCache map[string]*text.GoTextFaceSource // path -> parsed font
	fontFaceCache   map[string]*text.GoTextFace       // "path:size" -> face

	// YAML resource configuration
	config *ResourceConfig
	images map[string]ImageResource // Resource ID -> image definition
	fonts  map[string]FontResource  // Resource ID -> font definition
}

// NewResourceManager creates a ResourceManager with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache:      make(map[string]*ebiten.Image),
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
		fontFaceCache:   make(map[string]*text.GoTextFace),
		images:          make(map[string]ImageResource),
		fonts:           make(map[string]FontResource),
	}
}

// LoadImage loads an image file and caches it.
// Supported formats: PNG and JPEG.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// decodeImage reads and decodes an image without touching the GPU.
func decodeImage(path string) (image.Image, error) {
	data, err := embedded.ReadAsset(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadFont loads a font file and creates a face of the given size.
// The parsed font is shared between sizes; faces are cached by path and size.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	source, ok := rm.fontSourceCache[path]
	if !ok {
		fontData, err := embedded.ReadAsset(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
		source, err = rm.parseFont(path, fontData)
		if err != nil {
			return nil, err
		}
	}
	return rm.faceFor(path, source, size), nil
}

func (rm *ResourceManager) parseFont(key string, data []byte) (*text.GoTextFaceSource, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", key, err)
	}
	rm.fontSourceCache[key] = source
	return source, nil
}

func (rm *ResourceManager) faceFor(key string, source *text.GoTextFaceSource, size float64) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%s:%.1f", key, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face
}

// GetFont retrieves a previously loaded font face from the cache, or nil.
func (rm *ResourceManager) GetFont(path string, size float64) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	return rm.fontFaceCache[cacheKey]
}

// LoadResourceConfig loads the YAML manifest and builds the ID lookup tables.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	cfg, err := LoadResourceConfig(configPath)
	if err != nil {
		return err
	}
	rm.SetResourceConfig(cfg)
	return nil
}

// SetResourceConfig installs an already parsed manifest.
func (rm *ResourceManager) SetResourceConfig(cfg *ResourceConfig) {
	rm.config = cfg
	rm.buildResourceMap()
}

// buildResourceMap constructs lookups from resource IDs to definitions
// with full paths.
func (rm *ResourceManager) buildResourceMap() {
	rm.images = make(map[string]ImageResource)
	rm.fonts = make(map[string]FontResource)
	if rm.config == nil {
		return
	}

	for _, img := range rm.config.Images {
		img.Path = buildFullPath(rm.config.BasePath, img.Path)
		rm.images[img.ID] = img
	}
	for _, f := range rm.config.Fonts {
		f.Path = buildFullPath(rm.config.BasePath, f.Path)
		rm.fonts[f.ID] = f
	}
}

// LoadImageByID loads an image using its resource ID.
// The image is scaled to the size declared in the manifest, if any.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	res, exists := rm.images[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}

	cacheKey := "#" + resourceID
	if cached, ok := rm.imageCache[cacheKey]; ok {
		return cached, nil
	}

	src, err := rm.resolveImage(res)
	if err != nil {
		return nil, err
	}

	img := ebiten.NewImageFromImage(src)
	if res.Width > 0 && res.Height > 0 {
		img = scaleImage(img, res.Width, res.Height)
	}
	rm.imageCache[cacheKey] = img
	return img, nil
}

// resolveImage decodes the file or generates the fallback.
func (rm *ResourceManager) resolveImage(res ImageResource) (image.Image, error) {
	var loadErr error
	if res.Path != "" {
		img, err := decodeImage(res.Path)
		if err == nil {
			return img, nil
		}
		loadErr = err
	}

	if res.Fallback == "" {
		return nil, fmt.Errorf("failed to load image %s: %w", res.ID, loadErr)
	}

	log.Printf("[ResourceManager] Warning: image %s unavailable (%v), using %s fallback", res.ID, loadErr, res.Fallback)
	img, err := generateFallbackImage(res.Fallback, res.Width, res.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to generate fallback for %s: %w", res.ID, err)
	}
	return img, nil
}

// scaleImage draws src stretched to width x height.
func scaleImage(src *ebiten.Image, width, height int) *ebiten.Image {
	b := src.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return src
	}
	dst := ebiten.NewImage(width, height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width)/float64(b.Dx()), float64(height)/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}

// LoadFontByID loads a font face using its resource ID.
// The returned face carries the ID so it can be used as a render.Font.
func (rm *ResourceManager) LoadFontByID(resourceID string) (*ebitenrender.Face, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	res, exists := rm.fonts[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}

	face, err := rm.resolveFont(res)
	if err != nil {
		return nil, err
	}
	return &ebitenrender.Face{ID: res.ID, Face: face}, nil
}

// resolveFont loads the font file or the built-in fallback.
func (rm *ResourceManager) resolveFont(res FontResource) (*text.GoTextFace, error) {
	var loadErr error
	if res.Path != "" {
		face, err := rm.LoadFont(res.Path, res.Size)
		if err == nil {
			return face, nil
		}
		loadErr = err
	}

	if res.Fallback == "" {
		return nil, fmt.Errorf("failed to load font %s: %w", res.ID, loadErr)
	}

	key := "fallback:" + res.Fallback
	source, ok := rm.fontSourceCache[key]
	if !ok {
		log.Printf("[ResourceManager] Warning: font %s unavailable (%v), using %s fallback", res.ID, loadErr, res.Fallback)
		data, err := fallbackFont(res.Fallback)
		if err != nil {
			return nil, fmt.Errorf("failed to load fallback for %s: %w", res.ID, err)
		}
		source, err = rm.parseFont(key, data)
		if err != nil {
			return nil, err
		}
	}
	return rm.faceFor(key, source, res.Size), nil
}

// DefaultFace returns the built-in font at the given size.
// Used for the debug overlay and when a caller passes an unknown font.
func (rm *ResourceManager) DefaultFace(size float64) (*text.GoTextFace, error) {
	return rm.resolveFont(FontResource{ID: "default", Size: size, Fallback: FallbackGoRegular})
}

// Dispose releases the GPU memory held by cached images.
// The manager must not be used afterwards.
func (rm *ResourceManager) Dispose() {
	for key, img := range rm.imageCache {
		img.Deallocate()
		delete(rm.imageCache, key)
	}
}
