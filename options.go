package ggif

import (
	"image/color"
	"image/color/palette"
	"time"
)

// FrameOption configures a single frame scope.
type FrameOption func(*frameOptions)

// frameOptions holds per-scope configuration.
type frameOptions struct {
	clear bool
}

// defaultFrameOptions returns the default frame scope options.
func defaultFrameOptions() frameOptions {
	return frameOptions{
		clear: true, // each frame starts from a blank surface
	}
}

// KeepContents preserves the surface's contents on frame entry instead of
// clearing it, so drawing accumulates from frame to frame.
//
// Example:
//
//	// Each frame adds one more point to the plot.
//	rec.Frame(draw, ggif.KeepContents())
func KeepContents() FrameOption {
	return func(o *frameOptions) {
		o.clear = false
	}
}

// EncodeOptions specifies timing and quantization parameters for an
// [Encoder]. Callers normally build it through [EncodeOption] values passed
// to [Recorder.Save] or [Recorder.EncodeGIF]; encoder implementations
// receive it fully populated.
type EncodeOptions struct {
	// Delay is the display duration of each frame.
	// The GIF format quantizes delays to 10ms units.
	Delay time.Duration

	// LoopCount controls animation looping, with image/gif semantics:
	// 0 loops forever, -1 plays the sequence once, and n > 0 plays it
	// n+1 times.
	LoopCount int

	// Palette is the color palette frames are quantized to.
	Palette color.Palette

	// Dither enables Floyd–Steinberg error diffusion during quantization.
	Dither bool

	// Scale resizes frames by the given factor before quantization.
	// 1 means no resizing.
	Scale float64
}

// EncodeOption configures encoding during Save or EncodeGIF.
type EncodeOption func(*encodeConfig)

// encodeConfig pairs the encoder-visible options with save-level settings
// that never reach the encoder.
type encodeConfig struct {
	EncodeOptions

	encoder     Encoder
	noOverwrite bool
}

// defaultEncodeOptions returns the default encoding configuration.
func defaultEncodeOptions() encodeConfig {
	return encodeConfig{
		EncodeOptions: EncodeOptions{
			Delay:     100 * time.Millisecond,
			LoopCount: 0, // loop forever
			Palette:   palette.Plan9,
			Dither:    true,
			Scale:     1,
		},
	}
}

// WithDelay sets the display duration of each frame.
//
// Example:
//
//	rec.Save("out.gif", ggif.WithDelay(50*time.Millisecond)) // 20 fps
func WithDelay(d time.Duration) EncodeOption {
	return func(c *encodeConfig) {
		c.Delay = d
	}
}

// WithLoopCount sets the animation loop count.
// 0 loops forever (the default), -1 plays the animation once.
func WithLoopCount(n int) EncodeOption {
	return func(c *encodeConfig) {
		c.LoopCount = n
	}
}

// WithPalette sets the palette frames are quantized to.
// The default is the 256-color Plan 9 palette.
func WithPalette(p color.Palette) EncodeOption {
	return func(c *encodeConfig) {
		c.Palette = p
	}
}

// NoDither disables Floyd–Steinberg dithering during quantization.
// Dithering improves gradients but can add noise to flat-color drawings.
func NoDither() EncodeOption {
	return func(c *encodeConfig) {
		c.Dither = false
	}
}

// WithScale resizes frames by factor before quantization.
// Factors below 1 shrink the output, the usual way to cut GIF file size.
// The factor must be positive; an invalid factor fails at encode time.
func WithScale(factor float64) EncodeOption {
	return func(c *encodeConfig) {
		c.Scale = factor
	}
}

// WithEncoder bypasses registry dispatch and encodes with enc.
//
// Example:
//
//	rec.Save("out.webp", ggif.WithEncoder(myWebPEncoder))
func WithEncoder(enc Encoder) EncodeOption {
	return func(c *encodeConfig) {
		c.encoder = enc
	}
}

// NoOverwrite makes Save fail with an error satisfying
// errors.Is(err, fs.ErrExist) if the destination file already exists.
// The default is to overwrite.
func NoOverwrite() EncodeOption {
	return func(c *encodeConfig) {
		c.noOverwrite = true
	}
}
