package video

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"video-to-audio/domain/video"
)

// mockFinder returns a canned file list
type mockFinder struct {
	files []string
	err   error
}

func (m *mockFinder) FindVideoFiles(root string) ([]string, error) {
	return m.files, m.err
}

// allExisting reports every path as present
type allExisting struct {
	sizes map[string]int64
}

func (a *allExisting) Exists(path string) bool { return true }
func (a *allExisting) Size(path string) int64  { return a.sizes[path] }

func newBatchService(finder video.FileFinder, extractor video.AudioExtractor, out *bytes.Buffer) *BatchService {
	extract := NewExtractService(extractor, &mockProber{duration: 60}, &allExisting{}, nil)
	return NewBatchService(finder, extract, out)
}

func TestBatchService_Run(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "audio")

	sources := []string{
		filepath.Join(inputDir, "a.mp4"),
		filepath.Join(inputDir, "nested", "b.mkv"),
		filepath.Join(inputDir, "broken.avi"),
	}

	extractor := &mockExtractor{
		failFor: map[string]error{sources[2]: errors.New("ffmpeg audio extraction failed")},
	}

	var out bytes.Buffer
	service := newBatchService(&mockFinder{files: sources}, extractor, &out)

	result, err := service.Run(context.Background(), BatchInput{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Format:    video.FormatMP3,
		Bitrate:   "192k",
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if result.Successful != 2 {
		t.Errorf("Successful = %d, want 2", result.Successful)
	}
	if result.Failed != 1 {
		t.Errorf("Failed = %d, want 1", result.Failed)
	}

	wantOutputs := []string{
		filepath.Join(outputDir, "a.mp3"),
		filepath.Join(outputDir, "nested", "b.mp3"),
	}
	if len(result.Outputs) != len(wantOutputs) {
		t.Fatalf("Outputs = %v, want %v", result.Outputs, wantOutputs)
	}
	for i := range wantOutputs {
		if result.Outputs[i] != wantOutputs[i] {
			t.Errorf("Outputs[%d] = %q, want %q", i, result.Outputs[i], wantOutputs[i])
		}
	}

	// All three files went through the extractor, failure included.
	if len(extractor.requests) != 3 {
		t.Errorf("extractor ran %d times, want 3", len(extractor.requests))
	}

	text := out.String()
	for _, want := range []string{
		"Found 3 video files to process",
		"Error extracting audio from " + sources[2],
		"Successful extractions: 2",
		"Failed extractions: 1",
	} {
		if !contains(text, want) {
			t.Errorf("output missing %q; got:\n%s", want, text)
		}
	}
}

func TestBatchService_Run_NoVideos(t *testing.T) {
	var out bytes.Buffer
	service := newBatchService(&mockFinder{}, &mockExtractor{}, &out)

	result, err := service.Run(context.Background(), BatchInput{
		InputDir:  t.TempDir(),
		OutputDir: t.TempDir(),
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if result.Successful != 0 || result.Failed != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
	if !contains(out.String(), "No video files found") {
		t.Errorf("output missing no-files notice; got:\n%s", out.String())
	}
}

func TestBatchService_Run_Validation(t *testing.T) {
	service := newBatchService(&mockFinder{}, &mockExtractor{}, &bytes.Buffer{})

	if _, err := service.Run(context.Background(), BatchInput{OutputDir: "/out"}); err == nil {
		t.Error("Run() expected error for missing input folder")
	}
	if _, err := service.Run(context.Background(), BatchInput{InputDir: "/in"}); err == nil {
		t.Error("Run() expected error for missing output folder")
	}
}

func TestBatchService_Run_FinderFailure(t *testing.T) {
	service := newBatchService(&mockFinder{err: errors.New("failed to scan")}, &mockExtractor{}, &bytes.Buffer{})

	if _, err := service.Run(context.Background(), BatchInput{InputDir: "/in", OutputDir: "/out"}); err == nil {
		t.Error("Run() expected error when finder fails")
	}
}

func TestBatchService_Run_Cancelled(t *testing.T) {
	inputDir := t.TempDir()
	extractor := &mockExtractor{}

	var out bytes.Buffer
	service := newBatchService(&mockFinder{files: []string{filepath.Join(inputDir, "a.mp4")}}, extractor, &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := service.Run(ctx, BatchInput{InputDir: inputDir, OutputDir: t.TempDir()}); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if len(extractor.requests) != 0 {
		t.Error("extractor ran despite cancelled context")
	}
}
