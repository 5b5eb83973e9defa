//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	appvideo "video-to-audio/application/video"
	"video-to-audio/cmd"
	"video-to-audio/domain/video"

	"github.com/cucumber/godog"
)

// mockFinder returns a fixed file list
type mockFinder struct {
	files []string
}

func (m *mockFinder) FindVideoFiles(root string) ([]string, error) {
	return m.files, nil
}

// failingExtractor fails for selected source paths and records the rest
type failingExtractor struct {
	mockExtractor
	failFor map[string]bool
}

func (f *failingExtractor) Extract(ctx context.Context, req *video.ExtractionRequest, progress video.ProgressFunc) error {
	if f.failFor[req.SourcePath] {
		return fmt.Errorf("conversion failed")
	}
	return f.mockExtractor.Extract(ctx, req, progress)
}

// batchContext holds test state for batch scenarios
type batchContext struct {
	inputDir    string
	outputDir   string
	finder      *mockFinder
	extractor   *failingExtractor
	prober      *mockProber
	fileChecker *mockFileChecker
	output      *bytes.Buffer
	err         error
}

// SharedBatchContext is reset before each scenario via Before hook
var SharedBatchContext *batchContext

func getBatchContext() *batchContext {
	return SharedBatchContext
}

func InitializeBatchScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		inputDir, err := os.MkdirTemp("", "batch-input")
		if err != nil {
			return c, err
		}
		outputDir, err := os.MkdirTemp("", "batch-output")
		if err != nil {
			return c, err
		}
		SharedBatchContext = &batchContext{
			inputDir:  inputDir,
			outputDir: outputDir,
			finder:    &mockFinder{},
			extractor: &failingExtractor{failFor: make(map[string]bool)},
			prober:    &mockProber{duration: 60},
			fileChecker: &mockFileChecker{
				existingFiles: make(map[string]bool),
				size:          2 * 1024 * 1024,
			},
			output: &bytes.Buffer{},
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if SharedBatchContext != nil {
			os.RemoveAll(SharedBatchContext.inputDir)
			os.RemoveAll(SharedBatchContext.outputDir)
		}
		SharedBatchContext = nil
		return c, nil
	})

	ctx.Step(`^the input folder contains the video files:$`, theInputFolderContainsTheVideoFiles)
	ctx.Step(`^the input folder contains no video files$`, theInputFolderContainsNoVideoFiles)
	ctx.Step(`^converting "([^"]*)" fails$`, convertingFails)
	ctx.Step(`^I run the batch extraction$`, iRunTheBatchExtraction)
	ctx.Step(`^the output should report (\d+) video files to process$`, theOutputShouldReportVideoFilesToProcess)
	ctx.Step(`^the output should report no video files found$`, theOutputShouldReportNoVideoFilesFound)
	ctx.Step(`^the output should report (\d+) successful and (\d+) failed extractions$`, theOutputShouldReportSuccessfulAndFailedExtractions)
}

func theInputFolderContainsTheVideoFiles(table *godog.Table) error {
	b := getBatchContext()
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header row
		}
		path := filepath.Join(b.inputDir, row.Cells[0].Value)
		b.finder.files = append(b.finder.files, path)
		b.fileChecker.existingFiles[path] = true
	}
	return nil
}

func theInputFolderContainsNoVideoFiles() error {
	b := getBatchContext()
	b.finder.files = nil
	return nil
}

func convertingFails(name string) error {
	b := getBatchContext()
	b.extractor.failFor[filepath.Join(b.inputDir, name)] = true
	return nil
}

func iRunTheBatchExtraction() error {
	b := getBatchContext()

	b.err = cmd.RunBatchWithDependencies(
		context.Background(),
		b.finder,
		b.extractor,
		b.prober,
		b.fileChecker,
		nopRenderer{},
		appvideo.BatchInput{
			InputDir:  b.inputDir,
			OutputDir: b.outputDir,
			Format:    video.DefaultFormat,
			Bitrate:   video.DefaultBitrate,
		},
		b.output,
	)
	if b.err != nil {
		return fmt.Errorf("unexpected error: %v", b.err)
	}
	return nil
}

func theOutputShouldReportVideoFilesToProcess(count int) error {
	b := getBatchContext()
	expected := fmt.Sprintf("Found %d video files to process", count)
	if !strings.Contains(b.output.String(), expected) {
		return fmt.Errorf("expected %q in output: %s", expected, b.output.String())
	}
	return nil
}

func theOutputShouldReportNoVideoFilesFound() error {
	b := getBatchContext()
	if !strings.Contains(b.output.String(), "No video files found") {
		return fmt.Errorf("expected no-files message in output: %s", b.output.String())
	}
	return nil
}

func theOutputShouldReportSuccessfulAndFailedExtractions(successful, failed int) error {
	b := getBatchContext()
	out := b.output.String()

	wantSuccess := fmt.Sprintf("Successful extractions: %d", successful)
	if !strings.Contains(out, wantSuccess) {
		return fmt.Errorf("expected %q in output: %s", wantSuccess, out)
	}

	wantFailed := fmt.Sprintf("Failed extractions: %d", failed)
	if !strings.Contains(out, wantFailed) {
		return fmt.Errorf("expected %q in output: %s", wantFailed, out)
	}
	return nil
}
