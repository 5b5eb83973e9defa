package video

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultBitrate is the default bitrate for audio extraction
const DefaultBitrate = "192k"

// DefaultSampleRate is the output sample rate in Hz
const DefaultSampleRate = 44100

// ExtractionRequest represents a request to extract audio from a video
type ExtractionRequest struct {
	SourcePath string
	OutputPath string
	Format     Format
	Bitrate    string
	Start      *Timestamp // Optional: start of extraction range
	End        *Timestamp // Optional: end of extraction range
}

// NewExtractionRequest creates a new ExtractionRequest with validation.
// An empty outputPath derives the output next to the source with the
// format's extension.
func NewExtractionRequest(sourcePath, outputPath string, format Format, bitrate string) (*ExtractionRequest, error) {
	if sourcePath == "" {
		return nil, fmt.Errorf("source video path is required")
	}

	if format == "" {
		format = DefaultFormat
	}
	if _, ok := codecs[format]; !ok {
		return nil, fmt.Errorf("unsupported audio format %q", format)
	}

	if bitrate == "" {
		bitrate = DefaultBitrate
	}

	if outputPath == "" {
		outputPath = DeriveOutputPath(sourcePath, format)
	}

	return &ExtractionRequest{
		SourcePath: sourcePath,
		OutputPath: outputPath,
		Format:     format,
		Bitrate:    bitrate,
	}, nil
}

// NewExtractionRequestWithRange creates a request limited to the
// start/end time window of the source.
func NewExtractionRequestWithRange(sourcePath, outputPath string, format Format, bitrate, startTime, endTime string) (*ExtractionRequest, error) {
	req, err := NewExtractionRequest(sourcePath, outputPath, format, bitrate)
	if err != nil {
		return nil, err
	}

	start, err := ParseTimestamp(startTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}

	end, err := ParseTimestamp(endTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}

	if !start.Before(end) {
		return nil, fmt.Errorf("start time %s must be before end time %s", start, end)
	}

	req.Start = &start
	req.End = &end
	return req, nil
}

// HasRange returns true if the request is limited to a time window
func (r *ExtractionRequest) HasRange() bool {
	return r.Start != nil && r.End != nil
}

// RangeSeconds returns the length of the extraction window in seconds,
// or 0 when the request has no range.
func (r *ExtractionRequest) RangeSeconds() float64 {
	if !r.HasRange() {
		return 0
	}
	return float64(r.End.TotalSeconds() - r.Start.TotalSeconds())
}

// DeriveOutputPath replaces the source extension with the format's one.
func DeriveOutputPath(sourcePath string, format Format) string {
	base := strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath))
	return base + format.Extension()
}
