package ggif

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Recorder captures successive surface states as animation frames.
//
// A Recorder holds a non-owning reference to a Surface and exclusively owns
// the sequence of frames captured from it. Frames are appended in capture
// order, which is also playback order; a frame is never removed from the
// sequence once appended.
//
// Recorder is not safe for concurrent use.
type Recorder struct {
	surface Surface
	frames  []*image.RGBA
}

// NewRecorder creates a recorder bound to the given surface.
// The surface must remain valid for as long as the recorder is used.
func NewRecorder(surface Surface) *Recorder {
	return &Recorder{surface: surface}
}

// Frame runs fn inside a frame scope.
//
// On entry the surface is cleared if it supports clearing (pass
// [KeepContents] to suppress this). If fn returns nil, the surface's current
// state is snapshotted and appended to the frame sequence. If fn returns an
// error or panics, no snapshot is taken and the failure propagates to the
// caller unchanged; the frame sequence is exactly as it was before the call.
func (r *Recorder) Frame(fn func() error, opts ...FrameOption) error {
	f := r.BeginFrame(opts...)
	if err := fn(); err != nil {
		f.Discard()
		return err
	}
	f.Commit()
	return nil
}

// BeginFrame opens a frame scope and returns its guard.
//
// The caller must finish the scope with exactly one call to [Frame.Commit]
// (capture the frame) or [Frame.Discard] (abandon it). The closure form
// [Recorder.Frame] is usually more convenient; BeginFrame exists for callers
// whose drawing does not fit in a single function literal.
func (r *Recorder) BeginFrame(opts ...FrameOption) *Frame {
	options := defaultFrameOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if options.clear {
		if c, ok := r.surface.(clearer); ok {
			c.Clear()
		}
	}
	return &Frame{recorder: r}
}

// Len returns the number of frames captured so far.
func (r *Recorder) Len() int {
	return len(r.frames)
}

// Frames returns the captured frames in capture order.
// The returned slice is a copy; the frames themselves are shared and must
// not be modified.
func (r *Recorder) Frames() []image.Image {
	frames := make([]image.Image, len(r.frames))
	for i, f := range r.frames {
		frames[i] = f
	}
	return frames
}

// Save encodes the captured frames and writes them to a file at path.
//
// The encoder is selected from the registry by the destination's file
// extension ("out.gif" uses the "gif" encoder) unless [WithEncoder]
// overrides the choice. By default an existing file at path is overwritten;
// pass [NoOverwrite] to fail instead.
//
// Save fails with [ErrNoFrames] before creating any file if no frames have
// been captured. Unregistered formats, encoder failures, and file-system
// failures are reported as an [*EncodeError]; if encoding fails after the
// destination was created, the partial file is removed. The frame sequence
// is left untouched either way: the recorder may keep capturing and save
// again.
func (r *Recorder) Save(path string, opts ...EncodeOption) error {
	options := defaultEncodeOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if len(r.frames) == 0 {
		return ErrNoFrames
	}

	enc := options.encoder
	format := "custom"
	if enc == nil {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
		var err error
		enc, err = NewEncoder(format)
		if err != nil {
			return &EncodeError{Format: format, Err: err}
		}
	}

	w, err := createFile(path, options.noOverwrite)
	if err != nil {
		return &EncodeError{Format: format, Err: err}
	}

	encodeErr := enc.Encode(w, r.Frames(), options.EncodeOptions)
	closeErr := w.Close()
	if encodeErr == nil {
		encodeErr = closeErr
	}
	if encodeErr != nil {
		// Don't leave a truncated animation behind.
		_ = os.Remove(path)
		return wrapEncodeError(format, encodeErr)
	}

	Logger().Info("ggif: animation saved",
		"path", path, "frames", len(r.frames), "format", format)
	return nil
}

// EncodeGIF writes the captured frames as an animated GIF to w.
// This is useful for streaming, network output, or custom storage,
// mirroring gg.Context.EncodePNG.
//
// EncodeGIF fails with [ErrNoFrames] if no frames have been captured.
func (r *Recorder) EncodeGIF(w io.Writer, opts ...EncodeOption) error {
	options := defaultEncodeOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if len(r.frames) == 0 {
		return ErrNoFrames
	}

	enc := options.encoder
	format := "custom"
	if enc == nil {
		enc = &GIFEncoder{}
		format = "gif"
	}
	if err := enc.Encode(w, r.Frames(), options.EncodeOptions); err != nil {
		return wrapEncodeError(format, err)
	}
	return nil
}

// append adds a committed snapshot to the frame sequence.
func (r *Recorder) append(img *image.RGBA) {
	r.frames = append(r.frames, img)
	Logger().Debug("ggif: frame captured",
		"index", len(r.frames)-1, "bounds", img.Bounds())
}

// Frame is the guard for one open frame scope. The zero value is not
// usable; obtain one from [Recorder.BeginFrame].
type Frame struct {
	recorder *Recorder
	done     bool
}

// Commit snapshots the surface's current state and appends it to the
// recorder's frame sequence. Commit after Commit or Discard is a no-op.
func (f *Frame) Commit() {
	if f.done {
		return
	}
	f.done = true
	f.recorder.append(snapshot(f.recorder.surface))
}

// Discard closes the scope without capturing a frame.
// Discard after Commit or Discard is a no-op.
func (f *Frame) Discard() {
	f.done = true
}
