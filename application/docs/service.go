package docs

import (
	"fmt"
	"os"
	"path/filepath"

	domaindocs "video-to-audio/domain/docs"
)

// GeneratorService produces and persists the tool's README document
type GeneratorService struct {
	targetDir string
}

// NewGeneratorService creates a service writing into targetDir.
// An empty targetDir means the current working directory.
func NewGeneratorService(targetDir string) *GeneratorService {
	if targetDir == "" {
		targetDir = "."
	}
	return &GeneratorService{targetDir: targetDir}
}

// Path returns the full path the document is written to
func (s *GeneratorService) Path() string {
	return filepath.Join(s.targetDir, domaindocs.Filename)
}

// Generate returns the document text without touching the filesystem
func (s *GeneratorService) Generate() string {
	return domaindocs.Generate()
}

// GenerateAndPersist writes the document to README.md in the target
// directory, creating or truncating it, and returns the written text.
// The file handle is released on every exit path. There is no retry; a
// failed write may leave a truncated file behind.
func (s *GeneratorService) GenerateAndPersist() (string, error) {
	text := s.Generate()
	path := s.Path()

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return text, nil
}
