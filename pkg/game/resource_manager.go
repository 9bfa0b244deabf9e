package game

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // Register PNG decoder
	"log"

	"github.com/gonewx/stateicons/pkg/config"
	"github.com/gonewx/stateicons/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// IconSetPath is the embedded location of the icon sheet.
const IconSetPath = "data/img/IconSet.png"

// ResourceManager is responsible for centralized management of battle screen resources.
// Images are decoded from the embedded data filesystem once and cached by path.
//
// This implementation is NOT thread-safe; it is only used from the game loop.
type ResourceManager struct {
	imageCache map[string]*ebiten.Image // Cache for loaded images: path -> Image
}

// NewResourceManager creates and initializes a new ResourceManager instance.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		imageCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage loads an embedded image and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Parameters:
//   - path: The embedded path of the image resource (e.g., "data/img/IconSet.png").
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be read or decoded.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache.
// If the image has not been loaded yet, it returns nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadIconSet returns the icon sheet.
// When no IconSet.png is embedded a placeholder sheet is generated instead.
func (rm *ResourceManager) LoadIconSet() *ebiten.Image {
	if embedded.Exists(IconSetPath) {
		img, err := rm.LoadImage(IconSetPath)
		if err == nil {
			return img
		}
		log.Printf("[ResourceManager] Warning: %v, using placeholder icon set", err)
	}

	if cached, ok := rm.imageCache[IconSetPath]; ok {
		return cached
	}
	img := ebiten.NewImageFromImage(GeneratePlaceholderIconSet())
	rm.imageCache[IconSetPath] = img
	log.Printf("[ResourceManager] Generated placeholder icon set (%dx%d icons)", config.IconSetColumns, config.IconSetRows)
	return img
}

// GeneratePlaceholderIconSet draws a simple icon sheet: icon 0 is empty,
// every other icon is a colored square with a darker border.
// State icons (rows 0-1) and buff/debuff icons (rows 2-3) use different palettes.
func GeneratePlaceholderIconSet() *image.RGBA {
	w := config.IconSetColumns * config.IconWidth
	h := config.IconSetRows * config.IconHeight
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for index := 1; index < config.IconSetColumns*config.IconSetRows; index++ {
		fill := PlaceholderIconColor(index)
		border := color.RGBA{R: fill.R / 2, G: fill.G / 2, B: fill.B / 2, A: 255}

		x0 := (index % config.IconSetColumns) * config.IconWidth
		y0 := (index / config.IconSetColumns) * config.IconHeight
		for y := 2; y < config.IconHeight-2; y++ {
			for x := 2; x < config.IconWidth-2; x++ {
				c := fill
				if x < 4 || y < 4 || x >= config.IconWidth-4 || y >= config.IconHeight-4 {
					c = border
				}
				img.SetRGBA(x0+x, y0+y, c)
			}
		}
	}
	return img
}

// PlaceholderIconColor returns the fill color of a placeholder icon.
func PlaceholderIconColor(index int) color.RGBA {
	switch {
	case index >= 48 && index < 64: // debuffs
		return color.RGBA{R: 90, G: 90, B: 200 + uint8(index%8)*6, A: 255}
	case index >= 32 && index < 48: // buffs
		return color.RGBA{R: 200 + uint8(index%8)*6, G: 90, B: 60, A: 255}
	default:
		// 按编号在色环上均匀取色
		hue := float64((index * 47) % 360)
		r, g, b := colorful.Hsv(hue, 0.65, 0.9).RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}
	}
}
