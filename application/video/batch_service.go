package video

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"video-to-audio/domain/video"
)

// BatchService extracts audio from every video file under a folder
type BatchService struct {
	finder  video.FileFinder
	extract *ExtractService
	output  io.Writer
}

// NewBatchService creates a new batch service
func NewBatchService(finder video.FileFinder, extract *ExtractService, output io.Writer) *BatchService {
	if output == nil {
		output = io.Discard
	}
	return &BatchService{
		finder:  finder,
		extract: extract,
		output:  output,
	}
}

// BatchInput contains the parameters for a batch run
type BatchInput struct {
	InputDir  string
	OutputDir string
	Format    video.Format
	Bitrate   string
}

// BatchResult aggregates the per-file outcomes of a batch run
type BatchResult struct {
	Successful int
	Failed     int
	Outputs    []string
}

// Run processes every video file under InputDir. A failed file is
// counted and reported but does not abort the run; cancellation does.
func (s *BatchService) Run(ctx context.Context, input BatchInput) (*BatchResult, error) {
	if input.InputDir == "" {
		return nil, fmt.Errorf("input folder is required")
	}
	if input.OutputDir == "" {
		return nil, fmt.Errorf("output folder is required")
	}

	files, err := s.finder.FindVideoFiles(input.InputDir)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		fmt.Fprintf(s.output, "No video files found in %s\n", input.InputDir)
		return &BatchResult{}, nil
	}

	fmt.Fprintf(s.output, "Found %d video files to process\n", len(files))

	if err := os.MkdirAll(input.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output folder: %w", err)
	}

	result := &BatchResult{}
	for i, source := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		fmt.Fprintf(s.output, "\nProcessing video %d/%d: %s\n", i+1, len(files), filepath.Base(source))

		outputPath, err := s.outputPathFor(input, source)
		if err != nil {
			fmt.Fprintf(s.output, "Error preparing output for %s: %v\n", source, err)
			result.Failed++
			continue
		}

		req, err := video.NewExtractionRequest(source, outputPath, input.Format, input.Bitrate)
		if err != nil {
			fmt.Fprintf(s.output, "Error extracting audio from %s: %v\n", source, err)
			result.Failed++
			continue
		}

		res, err := s.extract.Extract(ctx, req)
		if err != nil {
			fmt.Fprintf(s.output, "Error extracting audio from %s: %v\n", source, err)
			result.Failed++
			continue
		}

		fmt.Fprintf(s.output, "Successfully extracted audio to: %s (%.2f MB)\n",
			res.OutputPath, float64(res.SizeBytes)/1024/1024)
		result.Successful++
		result.Outputs = append(result.Outputs, res.OutputPath)
	}

	outputDir := input.OutputDir
	if abs, err := filepath.Abs(outputDir); err == nil {
		outputDir = abs
	}

	fmt.Fprintf(s.output, "\nExtraction complete!\n")
	fmt.Fprintf(s.output, "Successful extractions: %d\n", result.Successful)
	fmt.Fprintf(s.output, "Failed extractions: %d\n", result.Failed)
	fmt.Fprintf(s.output, "Output folder: %s\n", outputDir)

	return result, nil
}

// outputPathFor mirrors the source's position relative to the input
// folder under the output folder, swapping the extension for the
// format's one, and ensures the parent directory exists.
func (s *BatchService) outputPathFor(input BatchInput, source string) (string, error) {
	rel, err := filepath.Rel(input.InputDir, source)
	if err != nil {
		return "", err
	}

	format := input.Format
	if format == "" {
		format = video.DefaultFormat
	}

	outputPath := filepath.Join(input.OutputDir, video.DeriveOutputPath(rel, format))
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", err
	}

	return outputPath, nil
}
