package ggif

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"io"
	"math"
	"time"

	"github.com/disintegration/imaging"
)

func init() {
	Register("gif", func() Encoder { return &GIFEncoder{} })
}

// GIFEncoder writes a frame sequence as an animated GIF using image/gif.
//
// Frames are quantized to the palette in [EncodeOptions], with
// Floyd–Steinberg dithering unless disabled. Per-frame delays are quantized
// to the GIF format's 10ms units.
type GIFEncoder struct{}

// Encode implements the Encoder interface.
//
// All frames must share the same dimensions. Frames are written in the
// order given, which is the order they were captured in.
func (e *GIFEncoder) Encode(w io.Writer, frames []image.Image, opts EncodeOptions) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}
	if opts.Scale <= 0 || math.IsNaN(opts.Scale) || math.IsInf(opts.Scale, 0) {
		return fmt.Errorf("ggif: invalid scale factor %v (must be positive and finite)", opts.Scale)
	}
	if len(opts.Palette) == 0 || len(opts.Palette) > 256 {
		return fmt.Errorf("ggif: palette must have 1-256 colors, got %d", len(opts.Palette))
	}

	// GIF stores delays in hundredths of a second.
	delay := int(opts.Delay / (10 * time.Millisecond))
	if delay < 0 {
		delay = 0
	}

	anim := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: opts.LoopCount,
	}

	var bounds image.Rectangle
	for i, frame := range frames {
		if opts.Scale != 1 {
			fb := frame.Bounds()
			width := int(math.Round(float64(fb.Dx()) * opts.Scale))
			height := int(math.Round(float64(fb.Dy()) * opts.Scale))
			if width < 1 || height < 1 {
				return fmt.Errorf("ggif: scale factor %v reduces %dx%d frame to nothing", opts.Scale, fb.Dx(), fb.Dy())
			}
			frame = imaging.Resize(frame, width, height, imaging.Lanczos)
		}

		b := frame.Bounds()
		normalized := image.Rect(0, 0, b.Dx(), b.Dy())
		if i == 0 {
			bounds = normalized
		} else if normalized != bounds {
			return fmt.Errorf("ggif: mismatched frame bounds at %d: %v != %v", i, normalized, bounds)
		}

		paletted := image.NewPaletted(normalized, opts.Palette)
		if opts.Dither {
			draw.FloydSteinberg.Draw(paletted, normalized, frame, b.Min)
		} else {
			draw.Draw(paletted, normalized, frame, b.Min, draw.Src)
		}

		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delay)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return &EncodeError{Format: "gif", Err: err}
	}
	return nil
}
