package video

import (
	"context"
	"fmt"
	"path/filepath"

	"video-to-audio/domain/video"
)

// ExtractResult contains the result of an audio extraction operation
type ExtractResult struct {
	OutputPath      string
	SizeBytes       int64
	DurationSeconds float64
}

// ExtractService coordinates single-file audio extraction
type ExtractService struct {
	extractor   video.AudioExtractor
	prober      video.DurationProber
	fileChecker video.FileChecker
	renderer    video.ProgressRenderer
}

// NewExtractService creates a new ExtractService. A nil renderer
// disables progress reporting.
func NewExtractService(extractor video.AudioExtractor, prober video.DurationProber, fileChecker video.FileChecker, renderer video.ProgressRenderer) *ExtractService {
	return &ExtractService{
		extractor:   extractor,
		prober:      prober,
		fileChecker: fileChecker,
		renderer:    renderer,
	}
}

// Extract extracts audio according to the request, driving the progress
// bar from the duration reported by ffprobe.
func (s *ExtractService) Extract(ctx context.Context, req *video.ExtractionRequest) (*ExtractResult, error) {
	if !s.fileChecker.Exists(req.SourcePath) {
		return nil, fmt.Errorf("source video does not exist: %s", req.SourcePath)
	}

	total, err := s.prober.Duration(ctx, req.SourcePath)
	if err != nil {
		return nil, err
	}

	// A ranged request only processes the window, so the bar spans the
	// window rather than the whole file.
	if req.HasRange() && req.RangeSeconds() < total {
		total = req.RangeSeconds()
	}

	var progress video.ProgressFunc
	if s.renderer != nil {
		bar := s.renderer.Start(filepath.Base(req.SourcePath), total)
		defer bar.Finish()
		progress = bar.Set
	}

	if err := s.extractor.Extract(ctx, req, progress); err != nil {
		return nil, err
	}

	return &ExtractResult{
		OutputPath:      req.OutputPath,
		SizeBytes:       s.fileChecker.Size(req.OutputPath),
		DurationSeconds: total,
	}, nil
}
