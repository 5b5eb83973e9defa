//go:build integration

package steps

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	appdocs "video-to-audio/application/docs"
	"video-to-audio/domain/docs"

	"github.com/cucumber/godog"
)

// readmeContext holds test state for readme scenarios
type readmeContext struct {
	workDir string
	err     error
}

// SharedReadmeContext is reset before each scenario via Before hook
var SharedReadmeContext *readmeContext

func getReadmeContext() *readmeContext {
	return SharedReadmeContext
}

func InitializeReadmeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		dir, err := os.MkdirTemp("", "readme-feature")
		if err != nil {
			return c, err
		}
		SharedReadmeContext = &readmeContext{workDir: dir}
		return c, nil
	})

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if SharedReadmeContext != nil {
			os.RemoveAll(SharedReadmeContext.workDir)
		}
		SharedReadmeContext = nil
		return c, nil
	})

	ctx.Step(`^a README\.md already exists containing "([^"]*)"$`, aReadmeAlreadyExistsContaining)
	ctx.Step(`^I generate the project README$`, iGenerateTheProjectReadme)
	ctx.Step(`^README\.md should exist in the working directory$`, readmeShouldExistInTheWorkingDirectory)
	ctx.Step(`^the first line of README\.md should be "([^"]*)"$`, theFirstLineOfReadmeShouldBe)
	ctx.Step(`^README\.md should contain every section header exactly once$`, readmeShouldContainEverySectionHeaderExactlyOnce)
	ctx.Step(`^README\.md should no longer contain "([^"]*)"$`, readmeShouldNoLongerContain)
	ctx.Step(`^generating the README again should not change the file$`, generatingTheReadmeAgainShouldNotChangeTheFile)
}

func aReadmeAlreadyExistsContaining(content string) error {
	r := getReadmeContext()
	return os.WriteFile(filepath.Join(r.workDir, docs.Filename), []byte(content), 0644)
}

func iGenerateTheProjectReadme() error {
	r := getReadmeContext()
	service := appdocs.NewGeneratorService(r.workDir)
	_, r.err = service.GenerateAndPersist()
	if r.err != nil {
		return fmt.Errorf("unexpected error: %v", r.err)
	}
	return nil
}

func readmeShouldExistInTheWorkingDirectory() error {
	r := getReadmeContext()
	if _, err := os.Stat(filepath.Join(r.workDir, docs.Filename)); err != nil {
		return fmt.Errorf("README.md not found: %v", err)
	}
	return nil
}

func theFirstLineOfReadmeShouldBe(expected string) error {
	r := getReadmeContext()
	content, err := os.ReadFile(filepath.Join(r.workDir, docs.Filename))
	if err != nil {
		return err
	}
	firstLine := strings.SplitN(string(content), "\n", 2)[0]
	if firstLine != expected {
		return fmt.Errorf("expected first line %q, got %q", expected, firstLine)
	}
	return nil
}

func readmeShouldContainEverySectionHeaderExactlyOnce() error {
	r := getReadmeContext()
	content, err := os.ReadFile(filepath.Join(r.workDir, docs.Filename))
	if err != nil {
		return err
	}
	text := string(content)
	for _, header := range docs.SectionHeaders {
		needle := "\n" + header + "\n"
		if count := strings.Count(text, needle); count != 1 {
			return fmt.Errorf("expected header %q exactly once, found %d times", header, count)
		}
	}
	return nil
}

func readmeShouldNoLongerContain(stale string) error {
	r := getReadmeContext()
	content, err := os.ReadFile(filepath.Join(r.workDir, docs.Filename))
	if err != nil {
		return err
	}
	if strings.Contains(string(content), stale) {
		return fmt.Errorf("README.md still contains %q", stale)
	}
	return nil
}

func generatingTheReadmeAgainShouldNotChangeTheFile() error {
	r := getReadmeContext()
	path := filepath.Join(r.workDir, docs.Filename)

	before, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	service := appdocs.NewGeneratorService(r.workDir)
	if _, err := service.GenerateAndPersist(); err != nil {
		return fmt.Errorf("unexpected error: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if string(before) != string(after) {
		return fmt.Errorf("README.md changed between identical runs")
	}
	return nil
}
