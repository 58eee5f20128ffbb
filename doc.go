// Package ggif records successive states of a drawing surface and assembles
// them into an animated GIF.
//
// # Overview
//
// ggif is a companion library for gg in the same family as the vector export
// backends (gg-pdf, gg-svg). Instead of exporting a single drawing, it
// captures a sequence of surface snapshots — one per frame scope — and hands
// the sequence to an animation encoder.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    ggif "github.com/gogpu/gg-gif"
//	)
//
//	dc := gg.NewContext(256, 256)
//	rec := ggif.NewRecorder(dc)
//
//	for i := 0; i < 10; i++ {
//	    err := rec.Frame(func() error {
//	        dc.SetRGB(1, 0, 0)
//	        dc.DrawCircle(float64(i)*25, 128, 20)
//	        dc.Fill()
//	        return nil
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	if err := rec.Save("animation.gif"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Frame Scopes
//
// A frame scope delimits the drawing for exactly one animation frame. On
// entry the surface is cleared (pass [KeepContents] to accumulate drawing
// across frames); on successful exit the surface's current state is
// snapshotted and appended to the frame sequence. If the scope body fails,
// no snapshot is taken and the failure propagates to the caller unchanged.
//
// Besides the closure form above, a commit-or-discard guard is available for
// callers that need statement scope:
//
//	f := rec.BeginFrame()
//	dc.DrawCircle(128, 128, 50)
//	dc.Fill()
//	f.Commit()
//
// # Encoders
//
// Output encoding is pluggable. Encoders register by format name following
// the database/sql driver pattern; the built-in "gif" encoder is always
// available and [Recorder.Save] selects an encoder from the destination's
// file extension. See [Register] and [Encoder].
//
// # Concurrency
//
// A Recorder is not safe for concurrent use. The surface and the recorder
// are expected to be driven from a single goroutine, matching the
// concurrency model of gg's drawing contexts.
package ggif

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
