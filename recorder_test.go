package ggif

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// fakeSurface is a minimal Surface implementation for testing. It tracks
// clear and flush calls so tests can verify scope entry and snapshot
// behavior without a full drawing context.
type fakeSurface struct {
	img        *image.RGBA
	clearCalls int
	flushCalls int
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (s *fakeSurface) Image() image.Image { return s.img }

func (s *fakeSurface) Clear() {
	s.clearCalls++
	for i := range s.img.Pix {
		s.img.Pix[i] = 0
	}
}

func (s *fakeSurface) FlushGPU() error {
	s.flushCalls++
	return nil
}

// fill paints the whole surface with a single color.
func (s *fakeSurface) fill(c color.RGBA) {
	b := s.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			s.img.SetRGBA(x, y, c)
		}
	}
}

func TestRecorderFrameCount(t *testing.T) {
	for _, n := range []int{1, 2, 10} {
		surface := newFakeSurface(8, 8)
		rec := NewRecorder(surface)

		for i := 0; i < n; i++ {
			err := rec.Frame(func() error { return nil })
			if err != nil {
				t.Fatalf("Frame() = %v, want nil", err)
			}
		}
		if rec.Len() != n {
			t.Errorf("after %d frames, Len() = %d, want %d", n, rec.Len(), n)
		}
	}
}

func TestRecorderFrameOrder(t *testing.T) {
	surface := newFakeSurface(4, 4)
	rec := NewRecorder(surface)

	colors := []color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}
	for _, c := range colors {
		err := rec.Frame(func() error {
			surface.fill(c)
			return nil
		})
		if err != nil {
			t.Fatalf("Frame() = %v, want nil", err)
		}
	}

	frames := rec.Frames()
	if len(frames) != len(colors) {
		t.Fatalf("len(Frames()) = %d, want %d", len(frames), len(colors))
	}
	for i, want := range colors {
		got := frames[i].At(0, 0)
		wr, wg, wb, wa := color.Color(want).RGBA()
		gr, gg, gb, ga := got.RGBA()
		if gr != wr || gg != wg || gb != wb || ga != wa {
			t.Errorf("frame %d pixel = %v, want %v", i, got, want)
		}
	}
}

func TestRecorderFrameErrorPropagates(t *testing.T) {
	surface := newFakeSurface(4, 4)
	rec := NewRecorder(surface)

	if err := rec.Frame(func() error { return nil }); err != nil {
		t.Fatalf("Frame() = %v, want nil", err)
	}

	sentinel := errors.New("draw failed")
	err := rec.Frame(func() error { return sentinel })
	if err != sentinel {
		t.Errorf("Frame() = %v, want the exact error returned by the body", err)
	}
	if rec.Len() != 1 {
		t.Errorf("after failed frame, Len() = %d, want 1", rec.Len())
	}
}

func TestRecorderFramePanicSkipsCapture(t *testing.T) {
	surface := newFakeSurface(4, 4)
	rec := NewRecorder(surface)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic to propagate out of Frame")
			}
		}()
		_ = rec.Frame(func() error { panic("boom") })
	}()

	if rec.Len() != 0 {
		t.Errorf("after panicking frame, Len() = %d, want 0", rec.Len())
	}
}

func TestRecorderFrameClearsByDefault(t *testing.T) {
	surface := newFakeSurface(4, 4)
	surface.fill(color.RGBA{R: 255, A: 255})
	rec := NewRecorder(surface)

	err := rec.Frame(func() error { return nil })
	if err != nil {
		t.Fatalf("Frame() = %v, want nil", err)
	}
	if surface.clearCalls != 1 {
		t.Errorf("clearCalls = %d, want 1", surface.clearCalls)
	}

	// The snapshot must show the cleared surface, not the old contents.
	_, _, _, a := rec.Frames()[0].At(0, 0).RGBA()
	if a != 0 {
		t.Errorf("snapshot alpha = %d, want 0 (cleared)", a)
	}
}

func TestRecorderKeepContents(t *testing.T) {
	surface := newFakeSurface(4, 4)
	surface.fill(color.RGBA{R: 255, A: 255})
	rec := NewRecorder(surface)

	err := rec.Frame(func() error { return nil }, KeepContents())
	if err != nil {
		t.Fatalf("Frame() = %v, want nil", err)
	}
	if surface.clearCalls != 0 {
		t.Errorf("clearCalls = %d, want 0", surface.clearCalls)
	}

	r, _, _, _ := rec.Frames()[0].At(0, 0).RGBA()
	if r != 0xffff {
		t.Errorf("snapshot red = %#x, want 0xffff (contents kept)", r)
	}
}

func TestRecorderFlushesBeforeSnapshot(t *testing.T) {
	surface := newFakeSurface(4, 4)
	rec := NewRecorder(surface)

	for i := 0; i < 3; i++ {
		if err := rec.Frame(func() error { return nil }); err != nil {
			t.Fatalf("Frame() = %v, want nil", err)
		}
	}
	if surface.flushCalls != 3 {
		t.Errorf("flushCalls = %d, want 3", surface.flushCalls)
	}
}

func TestRecorderSnapshotIsCopy(t *testing.T) {
	surface := newFakeSurface(4, 4)
	rec := NewRecorder(surface)

	red := color.RGBA{R: 255, A: 255}
	err := rec.Frame(func() error {
		surface.fill(red)
		return nil
	})
	if err != nil {
		t.Fatalf("Frame() = %v, want nil", err)
	}

	// Mutating the surface after capture must not affect the snapshot.
	surface.fill(color.RGBA{B: 255, A: 255})

	r, _, b, _ := rec.Frames()[0].At(2, 2).RGBA()
	if r != 0xffff || b != 0 {
		t.Errorf("snapshot pixel = (r=%#x, b=%#x), want the red captured at commit", r, b)
	}
}

func TestBeginFrameCommit(t *testing.T) {
	surface := newFakeSurface(4, 4)
	rec := NewRecorder(surface)

	f := rec.BeginFrame()
	surface.fill(color.RGBA{G: 255, A: 255})
	f.Commit()

	if rec.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", rec.Len())
	}

	// Commit is idempotent.
	f.Commit()
	if rec.Len() != 1 {
		t.Errorf("after double Commit, Len() = %d, want 1", rec.Len())
	}
}

func TestBeginFrameDiscard(t *testing.T) {
	surface := newFakeSurface(4, 4)
	rec := NewRecorder(surface)

	f := rec.BeginFrame()
	f.Discard()
	if rec.Len() != 0 {
		t.Errorf("after Discard, Len() = %d, want 0", rec.Len())
	}

	// Commit after Discard must not resurrect the frame.
	f.Commit()
	if rec.Len() != 0 {
		t.Errorf("after Discard then Commit, Len() = %d, want 0", rec.Len())
	}
}

func TestRecorderFramesReturnsCopy(t *testing.T) {
	surface := newFakeSurface(4, 4)
	rec := NewRecorder(surface)

	if err := rec.Frame(func() error { return nil }); err != nil {
		t.Fatalf("Frame() = %v, want nil", err)
	}

	frames := rec.Frames()
	frames[0] = nil
	if rec.Frames()[0] == nil {
		t.Error("mutating the returned slice changed the recorder's sequence")
	}
}

// plainSurface implements only the minimal Surface interface, without the
// optional clear and flush capabilities.
type plainSurface struct {
	img *image.RGBA
}

func (s *plainSurface) Image() image.Image { return s.img }

func TestRecorderMinimalSurface(t *testing.T) {
	surface := &plainSurface{img: image.NewRGBA(image.Rect(0, 0, 4, 4))}
	rec := NewRecorder(surface)

	// Clear-on-entry and flush are skipped for surfaces that do not
	// support them; capture must still work.
	if err := rec.Frame(func() error { return nil }); err != nil {
		t.Fatalf("Frame() = %v, want nil", err)
	}
	if rec.Len() != 1 {
		t.Errorf("Len() = %d, want 1", rec.Len())
	}
}

func TestRecorderOffsetBoundsNormalized(t *testing.T) {
	// A surface whose image does not start at the origin still snapshots
	// to origin-based frames.
	img := image.NewRGBA(image.Rect(10, 10, 14, 14))
	surface := &plainSurface{img: img}
	rec := NewRecorder(surface)

	if err := rec.Frame(func() error { return nil }); err != nil {
		t.Fatalf("Frame() = %v, want nil", err)
	}
	got := rec.Frames()[0].Bounds()
	want := image.Rect(0, 0, 4, 4)
	if got != want {
		t.Errorf("snapshot bounds = %v, want %v", got, want)
	}
}
