// Package progress renders per-file extraction progress on the terminal.
package progress

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"video-to-audio/domain/video"
)

// Renderer implements video.ProgressRenderer using schollz/progressbar
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing bars to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Start implements video.ProgressRenderer
func (r *Renderer) Start(label string, totalSeconds float64) video.ProgressBar {
	// Centisecond resolution keeps ffmpeg's fractional times visible.
	total := int64(totalSeconds * 100)
	if total <= 0 {
		total = 1
	}

	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionOnCompletion(func() { io.WriteString(r.out, "\n") }),
	)

	return &Bar{bar: bar, total: total}
}

// Bar wraps a progressbar for a single file
type Bar struct {
	bar   *progressbar.ProgressBar
	total int64
}

// Set implements video.ProgressBar
func (b *Bar) Set(seconds float64) {
	n := int64(seconds * 100)
	if n > b.total {
		n = b.total
	}
	b.bar.Set64(n)
}

// Finish implements video.ProgressBar
func (b *Bar) Finish() {
	b.bar.Finish()
}

// NopRenderer discards progress. Used with --no-progress and in tests.
type NopRenderer struct{}

// Start implements video.ProgressRenderer
func (NopRenderer) Start(string, float64) video.ProgressBar {
	return nopBar{}
}

type nopBar struct{}

func (nopBar) Set(float64) {}
func (nopBar) Finish()     {}

// Ensure both renderers implement video.ProgressRenderer
var (
	_ video.ProgressRenderer = (*Renderer)(nil)
	_ video.ProgressRenderer = NopRenderer{}
)
