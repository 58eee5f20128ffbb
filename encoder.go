package ggif

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
)

// ErrNoFrames is returned by Save and EncodeGIF when the recorder has not
// captured any frames. At least one committed frame scope is required
// before output can be produced.
var ErrNoFrames = errors.New("ggif: no frames captured")

// Encoder writes an ordered sequence of frames as a single animation.
//
// Implementations receive the frames in capture order and must not reorder,
// drop, or mutate them. Format concerns — palette limits, delay
// quantization, compression — are entirely the encoder's.
//
// Encoders are created via the registry using [NewEncoder] and registered
// via [Register] in their package's init function.
type Encoder interface {
	Encode(w io.Writer, frames []image.Image, opts EncodeOptions) error
}

// EncodeError reports a failure while producing animation output, wrapping
// the underlying encoder or file-system error.
type EncodeError struct {
	// Format is the name of the encoder that failed.
	Format string

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface.
func (e *EncodeError) Error() string {
	return fmt.Sprintf("ggif: encode %s: %v", e.Format, e.Err)
}

// Unwrap returns the underlying failure for errors.Is and errors.As.
func (e *EncodeError) Unwrap() error {
	return e.Err
}

// wrapEncodeError wraps err in an *EncodeError unless it is already one of
// this package's errors.
func wrapEncodeError(format string, err error) error {
	if errors.Is(err, ErrNoFrames) {
		return err
	}
	var ee *EncodeError
	if errors.As(err, &ee) {
		return err
	}
	return &EncodeError{Format: format, Err: err}
}

// createFile opens the destination for writing. With noOverwrite the call
// fails with an error satisfying errors.Is(err, fs.ErrExist) if the file
// already exists; otherwise an existing file is truncated.
func createFile(path string, noOverwrite bool) (io.WriteCloser, error) {
	if noOverwrite {
		return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644) //nolint:gosec // path is user-provided intentionally
	}
	return os.Create(path) //nolint:gosec // path is user-provided intentionally
}
