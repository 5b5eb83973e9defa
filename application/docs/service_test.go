package docs

import (
	"os"
	"path/filepath"
	"testing"

	domaindocs "video-to-audio/domain/docs"
)

func TestGeneratorService_GenerateAndPersist(t *testing.T) {
	dir := t.TempDir()
	service := NewGeneratorService(dir)

	text, err := service.GenerateAndPersist()
	if err != nil {
		t.Fatalf("GenerateAndPersist() error: %v", err)
	}

	if text != domaindocs.Generate() {
		t.Error("returned text differs from the document template")
	}

	written, err := os.ReadFile(filepath.Join(dir, domaindocs.Filename))
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(written) != text {
		t.Error("file bytes differ from the returned text")
	}
}

func TestGeneratorService_OverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, domaindocs.Filename)

	// Pre-existing content longer than the template must leave no residue.
	stale := make([]byte, len(domaindocs.Generate())+4096)
	for i := range stale {
		stale[i] = 'x'
	}
	if err := os.WriteFile(path, stale, 0644); err != nil {
		t.Fatalf("seeding stale file: %v", err)
	}

	service := NewGeneratorService(dir)

	first, err := service.GenerateAndPersist()
	if err != nil {
		t.Fatalf("first GenerateAndPersist() error: %v", err)
	}

	second, err := service.GenerateAndPersist()
	if err != nil {
		t.Fatalf("second GenerateAndPersist() error: %v", err)
	}

	if first != second {
		t.Error("repeated runs returned different text")
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(written) != first {
		t.Errorf("file content after rewrite has %d bytes, want %d", len(written), len(first))
	}
}

func TestGeneratorService_UnwritableTarget(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not bind root")
	}

	dir := t.TempDir()
	if err := os.Chmod(dir, 0555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0755) })

	service := NewGeneratorService(dir)

	text, err := service.GenerateAndPersist()
	if err == nil {
		t.Fatal("GenerateAndPersist() expected error for read-only directory, got nil")
	}
	if text != "" {
		t.Error("GenerateAndPersist() returned text despite failing")
	}
}

func TestGeneratorService_MissingTargetDirectory(t *testing.T) {
	service := NewGeneratorService(filepath.Join(t.TempDir(), "absent"))

	if _, err := service.GenerateAndPersist(); err == nil {
		t.Error("GenerateAndPersist() expected error for missing directory, got nil")
	}
}

func TestGeneratorService_DefaultTargetDir(t *testing.T) {
	service := NewGeneratorService("")
	if got := service.Path(); got != domaindocs.Filename {
		t.Errorf("Path() = %q, want %q", got, domaindocs.Filename)
	}
}
