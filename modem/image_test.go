// SPDX-License-Identifier: EPL-2.0

package modem

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func TestFromImage(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetRGBA(2, 1, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	r := FromImage(img)
	if r.Width != 3 || r.Height != 2 || r.Channels != 4 {
		t.Fatalf("raster = %dx%d with %d channels, want 3x2 with 4", r.Width, r.Height, r.Channels)
	}
	if r.Pix[0] != 10 || r.Pix[1] != 20 || r.Pix[2] != 30 {
		t.Errorf("pixel (0,0) = %v", r.Pix[:3])
	}
	last := (1*3 + 2) * 4
	if r.Pix[last] != 200 || r.Pix[last+1] != 100 || r.Pix[last+2] != 50 {
		t.Errorf("pixel (2,1) = %v", r.Pix[last:last+3])
	}
}

// TestFromImage_OffsetBounds: images with a non-zero origin must still map
// onto a zero-origin raster.
func TestFromImage_OffsetBounds(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(5, 7, 8, 9))
	img.SetRGBA(5, 7, color.RGBA{R: 42, A: 255})

	r := FromImage(img)
	if r.Width != 3 || r.Height != 2 {
		t.Fatalf("raster = %dx%d, want 3x2", r.Width, r.Height)
	}
	if r.Pix[0] != 42 {
		t.Errorf("pixel (0,0) red = %d, want 42", r.Pix[0])
	}
}

// TestPreprocess_TargetResolution: the frame always lands on the mode's
// exact raster, whatever the source size.
func TestPreprocess_TargetResolution(t *testing.T) {
	t.Parallel()

	sources := []Raster{
		solidRaster(40, 30, 1, 2, 3),
		solidRaster(2000, 100, 1, 2, 3),
		solidRaster(1, 1, 1, 2, 3),
	}
	for _, m := range Modes() {
		spec := SpecFor(m)
		for _, src := range sources {
			f, err := preprocess(specFor(m), src)
			if err != nil {
				t.Fatalf("%s %dx%d: %v", spec.Name, src.Width, src.Height, err)
			}
			if f.Width() != spec.Width || f.Height() != spec.Height {
				t.Errorf("%s from %dx%d: frame %dx%d, want %dx%d",
					spec.Name, src.Width, src.Height,
					f.Width(), f.Height(), spec.Width, spec.Height)
			}
			if f.Color() != spec.Color {
				t.Errorf("%s: frame encoding %v, want %v", spec.Name, f.Color(), spec.Color)
			}
		}
	}
}

// TestPreprocess_Letterbox: a 640x480 source into PD-120's 640x496 raster
// keeps full width and gets 8 black rows above and below.
func TestPreprocess_Letterbox(t *testing.T) {
	t.Parallel()

	f := mustPreprocess(t, PD120, solidRaster(640, 480, 255, 255, 255))

	// Border luma is the studio-swing black level, exactly.
	for _, y := range []int{0, 7, 488, 495} {
		if got := f.at(chanY, 320, y); got != 16.0 {
			t.Errorf("border row %d: Y = %v, want 16", y, got)
		}
	}

	// Picture rows carry studio-swing white.
	if got := f.at(chanY, 320, 248); math.Abs(got-235.0) > 0.5 {
		t.Errorf("center Y = %v, want about 235", got)
	}
	if got := f.at(chanY, 0, 8); math.Abs(got-235.0) > 0.5 {
		t.Errorf("first picture row Y = %v, want about 235", got)
	}
}

// TestPreprocess_Pillarbox: a wide source into Martin M1's raster scales by
// the limiting axis and centers vertically on black.
func TestPreprocess_Pillarbox(t *testing.T) {
	t.Parallel()

	f := mustPreprocess(t, MartinM1, solidRaster(640, 256, 90, 180, 30))

	// 640x256 scales by 0.5 to 320x128, centered with 64 black rows on
	// each side.
	for _, y := range []int{0, 63, 192, 255} {
		for ch := 0; ch < 3; ch++ {
			if got := f.at(ch, 160, y); got != 0 {
				t.Errorf("border row %d plane %d = %v, want 0", y, ch, got)
			}
		}
	}

	if got := f.at(chanG, 160, 128); math.Abs(got-180.0) > 0.5 {
		t.Errorf("picture green = %v, want about 180", got)
	}
}

func TestPreprocess_GrayscaleRaster(t *testing.T) {
	t.Parallel()

	pix := make([]uint8, 320*256)
	for i := range pix {
		pix[i] = 100
	}
	src := Raster{Width: 320, Height: 256, Channels: 1, Pix: pix}

	f := mustPreprocess(t, MartinM1, src)
	for ch := 0; ch < 3; ch++ {
		if got := f.at(ch, 100, 100); math.Abs(got-100.0) > 0.5 {
			t.Errorf("plane %d = %v, want about 100", ch, got)
		}
	}
}

func TestPreprocess_ColorTransform(t *testing.T) {
	t.Parallel()

	// Solid 200,30,30 through the Robot 36 pipeline at the exact target
	// size, so no resampling is involved in the values.
	f := mustPreprocess(t, Robot36, solidRaster(320, 240, 200, 30, 30))

	wantY := 16.0 + 0.003906*(65.738*200+129.057*30+25.064*30)
	wantRY := 128.0 + 0.003906*(112.439*200-94.154*30-18.285*30)
	wantBY := 128.0 + 0.003906*(-37.945*200-74.494*30+112.439*30)

	if got := f.at(chanY, 10, 10); math.Abs(got-wantY) > 1e-9 {
		t.Errorf("Y = %v, want %v", got, wantY)
	}
	if got := f.at(chanRY, 10, 10); math.Abs(got-wantRY) > 1e-9 {
		t.Errorf("R-Y = %v, want %v", got, wantRY)
	}
	if got := f.at(chanBY, 10, 10); math.Abs(got-wantBY) > 1e-9 {
		t.Errorf("B-Y = %v, want %v", got, wantBY)
	}
}

func TestPreprocess_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  Raster
		want error
	}{
		{"zero width", Raster{Width: 0, Height: 10, Channels: 3}, ErrEmptyImage},
		{"zero height", Raster{Width: 10, Height: 0, Channels: 3}, ErrEmptyImage},
		{
			"two channels",
			Raster{Width: 4, Height: 4, Channels: 2, Pix: make([]uint8, 32)},
			ErrUnsupportedImageInput,
		},
		{
			"short buffer",
			Raster{Width: 4, Height: 4, Channels: 3, Pix: make([]uint8, 10)},
			ErrUnsupportedImageInput,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := preprocess(specFor(Robot36), tt.src)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFrame_Bytes(t *testing.T) {
	t.Parallel()

	f := mustPreprocess(t, Robot36, solidRaster(10, 10, 0, 0, 0))
	want := 3 * 320 * 240 * 8
	if got := f.Bytes(); got != want {
		t.Errorf("Bytes() = %d, want %d", got, want)
	}
}
