// SPDX-License-Identifier: EPL-2.0

// Package imagetest generates deterministic test images for the encoding
// pipeline.
package imagetest

import (
	"image"
	"image/color"
)

// Generate builds a w by h RGBA image from a per-pixel color function.
func Generate(w, h int, at func(x, y int) color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, at(x, y))
		}
	}
	return img
}

// Solid builds an image filled with a single color.
func Solid(w, h int, c color.RGBA) *image.RGBA {
	return Generate(w, h, func(x, y int) color.RGBA {
		return c
	})
}

// Gradient builds a horizontal black-to-white luminance ramp.
func Gradient(w, h int) *image.RGBA {
	return Generate(w, h, func(x, y int) color.RGBA {
		v := uint8(x * 255 / max(w-1, 1))
		return color.RGBA{R: v, G: v, B: v, A: 255}
	})
}

// Checker builds a two-color checkerboard with cells of the given size.
func Checker(w, h, cell int, a, b color.RGBA) *image.RGBA {
	return Generate(w, h, func(x, y int) color.RGBA {
		if (x/cell+y/cell)%2 == 0 {
			return a
		}
		return b
	})
}

// ColorBars builds vertical bars in the classic test-pattern order: white,
// yellow, cyan, green, magenta, red, blue, black.
func ColorBars(w, h int) *image.RGBA {
	bars := []color.RGBA{
		{255, 255, 255, 255},
		{255, 255, 0, 255},
		{0, 255, 255, 255},
		{0, 255, 0, 255},
		{255, 0, 255, 255},
		{255, 0, 0, 255},
		{0, 0, 255, 255},
		{0, 0, 0, 255},
	}
	return Generate(w, h, func(x, y int) color.RGBA {
		i := x * len(bars) / w
		if i >= len(bars) {
			i = len(bars) - 1
		}
		return bars[i]
	})
}
