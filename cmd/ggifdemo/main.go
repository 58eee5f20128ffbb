// Command ggifdemo records an animation with the gg 2D graphics library
// and writes it as an animated GIF.
package main

import (
	"flag"
	"log"
	"math"
	"time"

	"github.com/gogpu/gg"
	ggif "github.com/gogpu/gg-gif"
)

func main() {
	var (
		width  = flag.Int("width", 256, "image width")
		height = flag.Int("height", 256, "image height")
		frames = flag.Int("frames", 36, "number of animation frames")
		delay  = flag.Duration("delay", 50*time.Millisecond, "per-frame delay")
		output = flag.String("output", "demo.gif", "output file")
	)
	flag.Parse()

	dc := gg.NewContext(*width, *height)
	rec := ggif.NewRecorder(dc)

	cx := float64(*width) / 2
	cy := float64(*height) / 2
	orbit := math.Min(cx, cy) * 0.6

	for i := 0; i < *frames; i++ {
		angle := 2 * math.Pi * float64(i) / float64(*frames)
		err := rec.Frame(func() error {
			dc.ClearWithColor(gg.White)

			// Orbit track
			dc.SetRGBA(0, 0, 0, 0.2)
			dc.SetLineWidth(2)
			dc.DrawCircle(cx, cy, orbit)
			if err := dc.Stroke(); err != nil {
				return err
			}

			// Orbiting ball
			dc.SetRGB(0.9, 0.2, 0.2)
			dc.DrawCircle(cx+orbit*math.Cos(angle), cy+orbit*math.Sin(angle), 14)
			return dc.Fill()
		}, ggif.KeepContents())
		if err != nil {
			log.Fatalf("Failed to capture frame %d: %v", i, err)
		}
	}

	if err := rec.Save(*output, ggif.WithDelay(*delay)); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%d frames, %dx%d)\n", *output, *frames, *width, *height)
}
