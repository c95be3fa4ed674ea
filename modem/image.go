// SPDX-License-Identifier: EPL-2.0

package modem

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Raster is a decoded in-memory image handed across the input boundary.
// Container parsing (PNG, JPEG, ...) happens outside this package; see
// FromImage for adapting a stdlib decoded image.
type Raster struct {
	Width    int
	Height   int
	Channels int // 1 = grayscale, 3 = RGB, 4 = RGBA
	Pix      []uint8
}

// FromImage converts any decoded stdlib image into an RGBA Raster.
func FromImage(img image.Image) Raster {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	return Raster{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: 4,
		Pix:      rgba.Pix,
	}
}

// toRGBA expands the raster into a stdlib RGBA image for rescaling.
func (r Raster) toRGBA() (*image.RGBA, error) {
	n := r.Width * r.Height
	if len(r.Pix) < n*r.Channels {
		return nil, fmt.Errorf("%w: pixel buffer holds %d bytes, %dx%d with %d channels needs %d",
			ErrUnsupportedImageInput, len(r.Pix), r.Width, r.Height, r.Channels, n*r.Channels)
	}

	out := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))

	switch r.Channels {
	case 1:
		for i := 0; i < n; i++ {
			v := r.Pix[i]
			out.Pix[i*4] = v
			out.Pix[i*4+1] = v
			out.Pix[i*4+2] = v
			out.Pix[i*4+3] = 0xff
		}
	case 3:
		for i := 0; i < n; i++ {
			out.Pix[i*4] = r.Pix[i*3]
			out.Pix[i*4+1] = r.Pix[i*3+1]
			out.Pix[i*4+2] = r.Pix[i*3+2]
			out.Pix[i*4+3] = 0xff
		}
	case 4:
		copy(out.Pix, r.Pix[:n*4])
	default:
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedImageInput, r.Channels)
	}

	return out, nil
}

// Frame is a processed pixel buffer at a mode's exact target resolution.
// Its three planes hold either raw R/G/B intensities or Y/R-Y/B-Y values,
// all on the 0..255 scale the tone mapping expects. A Frame is immutable
// once produced; re-preprocessing replaces it wholesale.
type Frame struct {
	width  int
	height int
	color  ColorEncoding
	planes [3][]float64
}

func (f *Frame) Width() int           { return f.width }
func (f *Frame) Height() int          { return f.height }
func (f *Frame) Color() ColorEncoding { return f.color }

// Bytes returns the memory held by the plane data.
func (f *Frame) Bytes() int {
	n := 0
	for _, p := range f.planes {
		n += len(p) * 8
	}
	return n
}

// at reads plane ch at (x, y). Reads past the last line clamp to it, which
// is where line-pair averaging lands on an odd final line.
func (f *Frame) at(ch, x, y int) float64 {
	if y >= f.height {
		y = f.height - 1
	}
	return f.planes[ch][y*f.width+x]
}

// preprocess fits src onto the mode's target resolution without distortion:
// uniform scale by min(tw/sw, th/sh) with a Catmull-Rom filter, composited
// centered on black, then transformed into the mode's color planes.
func preprocess(spec *Spec, src Raster) (*Frame, error) {
	if src.Width <= 0 || src.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, src.Width, src.Height)
	}

	rgba, err := src.toRGBA()
	if err != nil {
		return nil, err
	}

	scale := math.Min(
		float64(spec.Width)/float64(src.Width),
		float64(spec.Height)/float64(src.Height),
	)
	dw := max(int(float64(src.Width)*scale), 1)
	dh := max(int(float64(src.Height)*scale), 1)
	ox := (spec.Width - dw) / 2
	oy := (spec.Height - dh) / 2

	dst := image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	xdraw.CatmullRom.Scale(dst, image.Rect(ox, oy, ox+dw, oy+dh), rgba, rgba.Bounds(), xdraw.Src, nil)

	return newFrame(spec, dst), nil
}

func newFrame(spec *Spec, img *image.RGBA) *Frame {
	w, h := spec.Width, spec.Height
	f := &Frame{width: w, height: h, color: spec.Color}
	for i := range f.planes {
		f.planes[i] = make([]float64, w*h)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			p := img.Pix[i*4 : i*4+3 : i*4+3]
			r, g, b := float64(p[0]), float64(p[1]), float64(p[2])

			switch spec.Color {
			case ColorRGB:
				f.planes[chanR][i] = r
				f.planes[chanG][i] = g
				f.planes[chanB][i] = b
			case ColorYUV:
				// ITU-R BT.601 studio-swing transform; 0.003906 is
				// the legacy 1/256 factor the protocol family uses.
				f.planes[chanY][i] = 16.0 + 0.003906*(65.738*r+129.057*g+25.064*b)
				f.planes[chanRY][i] = 128.0 + 0.003906*(112.439*r-94.154*g-18.285*b)
				f.planes[chanBY][i] = 128.0 + 0.003906*(-37.945*r-74.494*g+112.439*b)
			}
		}
	}

	return f
}
