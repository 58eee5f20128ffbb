package ggif

import (
	"image"

	"golang.org/x/image/draw"
)

// Surface is the drawable canvas whose rendered state is captured.
//
// The recorder never mutates the surface beyond the optional clear-on-entry
// behavior (see [KeepContents]); drawing is entirely the caller's
// responsibility. *gg.Context satisfies Surface directly.
//
// The surface is not owned by the recorder: the caller must keep it alive
// and renderable for the recorder's whole lifetime.
type Surface interface {
	// Image returns the surface's current contents as an in-memory image.
	Image() image.Image
}

// flusher is implemented by surfaces that buffer drawing on a GPU and need
// an explicit flush before their pixels can be read. *gg.Context is one.
type flusher interface {
	FlushGPU() error
}

// clearer is implemented by surfaces that can reset their contents.
// Frame scopes clear the surface on entry when this is available.
type clearer interface {
	Clear()
}

// snapshot reads the surface's current state into a freshly allocated RGBA
// image. The copy keeps captured frames immutable even when the surface
// returns a view of its live pixel buffer.
func snapshot(s Surface) *image.RGBA {
	if f, ok := s.(flusher); ok {
		// Flush pending GPU work before reading pixels, as
		// gg.Context.SavePNG does.
		if err := f.FlushGPU(); err != nil {
			Logger().Warn("ggif: GPU flush before snapshot failed", "err", err)
		}
	}
	src := s.Image()
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)
	return dst
}
