//go:build integration

package steps

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"video-to-audio/cmd"
	"video-to-audio/domain/video"

	"github.com/cucumber/godog"
)

// mockExtractor records extraction requests for verification
type mockExtractor struct {
	requests   []*video.ExtractionRequest
	shouldFail bool
	failError  error
}

func (m *mockExtractor) Extract(ctx context.Context, req *video.ExtractionRequest, progress video.ProgressFunc) error {
	if m.shouldFail {
		return m.failError
	}
	m.requests = append(m.requests, req)
	if progress != nil {
		progress(1)
	}
	return nil
}

// mockProber reports a fixed duration for every file
type mockProber struct {
	duration float64
}

func (m *mockProber) Duration(ctx context.Context, path string) (float64, error) {
	return m.duration, nil
}

// mockFileChecker reports existence from a map and a fixed size
type mockFileChecker struct {
	existingFiles map[string]bool
	size          int64
}

func (m *mockFileChecker) Exists(path string) bool {
	return m.existingFiles[path]
}

func (m *mockFileChecker) Size(path string) int64 {
	return m.size
}

// nopRenderer disables progress rendering in scenarios
type nopRenderer struct{}

type nopBar struct{}

func (nopBar) Set(seconds float64) {}
func (nopBar) Finish()             {}

func (nopRenderer) Start(label string, totalSeconds float64) video.ProgressBar {
	return nopBar{}
}

// extractContext holds test state for extract scenarios
type extractContext struct {
	sourcePath  string
	format      string
	bitrate     string
	extractor   *mockExtractor
	prober      *mockProber
	fileChecker *mockFileChecker
	output      *bytes.Buffer
	err         error
}

// SharedExtractContext is reset before each scenario via Before hook
var SharedExtractContext *extractContext

func getExtractContext() *extractContext {
	return SharedExtractContext
}

func InitializeExtractScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		SharedExtractContext = &extractContext{
			extractor: &mockExtractor{},
			prober:    &mockProber{duration: 120},
			fileChecker: &mockFileChecker{
				existingFiles: make(map[string]bool),
				size:          4 * 1024 * 1024,
			},
			output:  &bytes.Buffer{},
			format:  string(video.DefaultFormat),
			bitrate: video.DefaultBitrate,
		}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		SharedExtractContext = nil
		return c, nil
	})

	ctx.Step(`^a video file at "([^"]*)"$`, aVideoFileAt)
	ctx.Step(`^no video file exists at "([^"]*)"$`, noVideoFileExistsAt)
	ctx.Step(`^the audio format is "([^"]*)"$`, theAudioFormatIs)
	ctx.Step(`^the audio bitrate is "([^"]*)"$`, theAudioBitrateIs)
	ctx.Step(`^I extract the audio$`, iExtractTheAudio)
	ctx.Step(`^I attempt to extract the audio$`, iAttemptToExtractTheAudio)
	ctx.Step(`^the extracted audio file should be "([^"]*)"$`, theExtractedAudioFileShouldBe)
	ctx.Step(`^the extraction should use bitrate "([^"]*)"$`, theExtractionShouldUseBitrate)
	ctx.Step(`^the output should report success$`, theOutputShouldReportSuccess)
	ctx.Step(`^I should receive an error about a missing source video$`, iShouldReceiveAnErrorAboutAMissingSourceVideo)
}

func aVideoFileAt(path string) error {
	e := getExtractContext()
	e.sourcePath = path
	e.fileChecker.existingFiles[path] = true
	return nil
}

func noVideoFileExistsAt(path string) error {
	e := getExtractContext()
	e.sourcePath = path
	e.fileChecker.existingFiles[path] = false
	return nil
}

func theAudioFormatIs(format string) error {
	e := getExtractContext()
	e.format = format
	return nil
}

func theAudioBitrateIs(bitrate string) error {
	e := getExtractContext()
	e.bitrate = bitrate
	return nil
}

func runExtract(e *extractContext) error {
	format, err := video.ParseFormat(e.format)
	if err != nil {
		return err
	}

	req, err := video.NewExtractionRequest(e.sourcePath, "", format, e.bitrate)
	if err != nil {
		return err
	}

	e.err = cmd.RunExtractWithDependencies(
		context.Background(),
		e.extractor,
		e.prober,
		e.fileChecker,
		nopRenderer{},
		req,
		e.output,
	)
	return nil
}

func iExtractTheAudio() error {
	e := getExtractContext()
	if err := runExtract(e); err != nil {
		return err
	}
	if e.err != nil {
		return fmt.Errorf("unexpected error: %v", e.err)
	}
	return nil
}

func iAttemptToExtractTheAudio() error {
	e := getExtractContext()
	return runExtract(e)
}

func theExtractedAudioFileShouldBe(expected string) error {
	e := getExtractContext()
	if len(e.extractor.requests) == 0 {
		return fmt.Errorf("ffmpeg was not called")
	}
	if got := e.extractor.requests[0].OutputPath; got != expected {
		return fmt.Errorf("expected output path %q, got %q", expected, got)
	}
	return nil
}

func theExtractionShouldUseBitrate(expected string) error {
	e := getExtractContext()
	if len(e.extractor.requests) == 0 {
		return fmt.Errorf("ffmpeg was not called")
	}
	if got := e.extractor.requests[0].Bitrate; got != expected {
		return fmt.Errorf("expected bitrate %q, got %q", expected, got)
	}
	return nil
}

func theOutputShouldReportSuccess() error {
	e := getExtractContext()
	if !strings.Contains(e.output.String(), "Successfully created") {
		return fmt.Errorf("expected success message, got output: %s", e.output.String())
	}
	return nil
}

func iShouldReceiveAnErrorAboutAMissingSourceVideo() error {
	e := getExtractContext()
	if e.err == nil {
		return fmt.Errorf("expected an error but got none")
	}
	if !strings.Contains(e.err.Error(), "does not exist") {
		return fmt.Errorf("expected error about missing source video, got: %v", e.err)
	}
	return nil
}
