// Package assets provides the application icons referenced by the theme
// presentation table.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sort"
	"sync"
)

// ErrUnknownIcon is returned for an icon path that is not registered.
var ErrUnknownIcon = errors.New("unknown icon")

const iconSize = 32

var iconColors = map[string]color.RGBA{
	"/favicon-red.svg":   {R: 0xba, G: 0x49, B: 0x49, A: 0xff},
	"/favicon-green.svg": {R: 0x38, G: 0x85, B: 0x8a, A: 0xff},
	"/favicon-blue.svg":  {R: 0x39, G: 0x70, B: 0x97, A: 0xff},
}

var iconCache sync.Map

// Icon returns the PNG image for an icon path.
func Icon(path string) ([]byte, error) {
	if cached, ok := iconCache.Load(path); ok {
		return cached.([]byte), nil
	}

	fill, ok := iconColors[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIcon, path)
	}

	data, err := renderIcon(fill)
	if err != nil {
		return nil, fmt.Errorf("render icon %s: %w", path, err)
	}
	iconCache.Store(path, data)
	return data, nil
}

// MustIcon returns the icon or panics on error.
func MustIcon(path string) []byte {
	data, err := Icon(path)
	if err != nil {
		panic(err)
	}
	return data
}

// Paths returns every registered icon path, sorted.
func Paths() []string {
	paths := make([]string, 0, len(iconColors))
	for path := range iconColors {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// renderIcon draws a filled disc with a small highlight, similar to the web
// favicons the paths are named after.
func renderIcon(fill color.RGBA) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, iconSize, iconSize))
	center := float64(iconSize-1) / 2
	radius := float64(iconSize)/2 - 1
	highlight := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xcc}

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx, dy := float64(x)-center, float64(y)-center
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			img.SetRGBA(x, y, fill)

			hx, hy := float64(x)-center*0.6, float64(y)-center*0.6
			if hx*hx+hy*hy <= (radius/5)*(radius/5) {
				img.SetRGBA(x, y, highlight)
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
