package game

import (
	"fmt"

	"github.com/decker502/fireworks/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 可用的后备资源
const (
	FallbackGradient  = "gradient"  // 夜空渐变背景
	FallbackCrosshair = "crosshair" // 准星光标
	FallbackGoRegular = "goregular" // Go 内置字体
)

// ResourceConfig represents the resource manifest loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	images: [...]
//	fonts: [...]
type ResourceConfig struct {
	Version  string          `yaml:"version"`   // Configuration file version
	BasePath string          `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Images   []ImageResource `yaml:"images"`
	Fonts    []FontResource  `yaml:"fonts"`
}

// ImageResource represents a single image resource definition.
//
// Fields:
//   - ID: Unique identifier for the image (e.g., "background", "cursor")
//   - Path: Relative path from base_path to the image file
//   - Width/Height: Target size; the decoded image is scaled to it (optional)
//   - Fallback: Generated replacement when the file is missing (optional)
//
// Example:
//
//	- id: background
//	  path: bg/bg1.jpg
//	  width: 800
//	  height: 600
//	  fallback: gradient
type ImageResource struct {
	ID       string `yaml:"id"`
	Path     string `yaml:"path"`
	Width    int    `yaml:"width,omitempty"`
	Height   int    `yaml:"height,omitempty"`
	Fallback string `yaml:"fallback,omitempty"`
}

// FontResource represents a single font face definition.
//
// Example:
//
//	- id: title
//	  path: fonts/Bedicta Hosta Regular.ttf
//	  size: 74
//	  fallback: goregular
type FontResource struct {
	ID       string  `yaml:"id"`
	Path     string  `yaml:"path"`
	Size     float64 `yaml:"size"`
	Fallback string  `yaml:"fallback,omitempty"`
}

// LoadResourceConfig reads and validates a resource manifest.
// The file on disk wins over the embedded copy.
func LoadResourceConfig(path string) (*ResourceConfig, error) {
	data, err := embedded.ReadAsset(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource config %s: %w", path, err)
	}

	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse resource config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resource config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks IDs are unique and every entry is loadable.
func (c *ResourceConfig) Validate() error {
	seen := make(map[string]bool)
	for _, img := range c.Images {
		if img.ID == "" {
			return fmt.Errorf("image with path %q has no id", img.Path)
		}
		if seen[img.ID] {
			return fmt.Errorf("duplicate resource id %q", img.ID)
		}
		seen[img.ID] = true
		if img.Path == "" && img.Fallback == "" {
			return fmt.Errorf("image %q needs a path or a fallback", img.ID)
		}
		switch img.Fallback {
		case "", FallbackGradient, FallbackCrosshair:
		default:
			return fmt.Errorf("image %q has unknown fallback %q", img.ID, img.Fallback)
		}
	}
	for _, f := range c.Fonts {
		if f.ID == "" {
			return fmt.Errorf("font with path %q has no id", f.Path)
		}
		if seen[f.ID] {
			return fmt.Errorf("duplicate resource id %q", f.ID)
		}
		seen[f.ID] = true
		if f.Size <= 0 {
			return fmt.Errorf("font %q has invalid size %.1f", f.ID, f.Size)
		}
		if f.Path == "" && f.Fallback == "" {
			return fmt.Errorf("font %q needs a path or a fallback", f.ID)
		}
		switch f.Fallback {
		case "", FallbackGoRegular:
		default:
			return fmt.Errorf("font %q has unknown fallback %q", f.ID, f.Fallback)
		}
	}
	return nil
}

// buildFullPath constructs the full file path for a resource.
// It combines the base path with the resource's relative path.
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" || relativePath == "" {
		return relativePath
	}
	if relativePath[0] == '/' {
		return basePath + relativePath
	}
	return basePath + "/" + relativePath
}
