package ffmpeg

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"video-to-audio/domain/video"
)

// Extractor implements video.AudioExtractor using ffmpeg
type Extractor struct {
	ffmpegPath string
	runner     CommandRunner
}

// ExtractorOption is a functional option for configuring Extractor
type ExtractorOption func(*Extractor)

// WithExtractorFFmpegPath sets a custom ffmpeg executable path
func WithExtractorFFmpegPath(path string) ExtractorOption {
	return func(e *Extractor) {
		e.ffmpegPath = path
	}
}

// WithExtractorCommandRunner sets a custom command runner (for testing)
func WithExtractorCommandRunner(runner CommandRunner) ExtractorOption {
	return func(e *Extractor) {
		e.runner = runner
	}
}

// NewExtractor creates a new FFmpeg-based audio extractor
func NewExtractor(opts ...ExtractorOption) *Extractor {
	e := &Extractor{
		ffmpegPath: "ffmpeg",
		runner:     &ExecCommandRunner{},
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Extract implements video.AudioExtractor
func (e *Extractor) Extract(ctx context.Context, req *video.ExtractionRequest, progress video.ProgressFunc) error {
	args := []string{"-i", req.SourcePath}

	if req.HasRange() {
		args = append(args, "-ss", req.Start.String(), "-to", req.End.String())
	}

	args = append(args,
		"-vn", // No video
		"-acodec", req.Format.Codec(),
		"-ab", req.Bitrate,
		"-ar", strconv.Itoa(video.DefaultSampleRate),
		"-y", // Overwrite output file if it exists
		req.OutputPath,
	)

	onLine := func(line string) {
		if progress == nil {
			return
		}
		if seconds, ok := parseProgressSeconds(line); ok {
			progress(seconds)
		}
	}

	if err := e.runner.RunWithStderr(ctx, onLine, e.ffmpegPath, args...); err != nil {
		return fmt.Errorf("ffmpeg audio extraction failed: %w", err)
	}

	return nil
}

// VerifyInstalled checks that ffmpeg is available
func (e *Extractor) VerifyInstalled(ctx context.Context) error {
	_, err := e.runner.Output(ctx, e.ffmpegPath, "-version")
	if err != nil {
		return fmt.Errorf("ffmpeg not found or not executable: %w", err)
	}
	return nil
}

// progressTimeRegex pulls the time value out of an ffmpeg status line
// ("... size=512kB time=00:03:21.45 bitrate= ...")
var progressTimeRegex = regexp.MustCompile(`time=(\S+)`)

// parseProgressSeconds extracts the processed duration from an ffmpeg
// stderr status line. Returns false for lines without a usable time
// value, including the "time=N/A" printed before the first sample.
func parseProgressSeconds(line string) (float64, bool) {
	matches := progressTimeRegex.FindStringSubmatch(line)
	if matches == nil {
		return 0, false
	}

	seconds, err := video.ParseFFmpegTime(matches[1])
	if err != nil {
		return 0, false
	}
	return seconds, true
}

// Ensure Extractor implements video.AudioExtractor
var _ video.AudioExtractor = (*Extractor)(nil)
