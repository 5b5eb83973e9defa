package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"video-to-audio/domain/video"
)

// Finder implements video.FileFinder using filepath.WalkDir
type Finder struct{}

// NewFinder creates a new filesystem finder
func NewFinder() *Finder {
	return &Finder{}
}

// FindVideoFiles recursively collects video files under root, sorted by
// path for a stable processing order.
func (f *Finder) FindVideoFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if video.IsVideoFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// ListFilesByExt returns the files directly inside dir carrying one of
// the given extensions (dot included, case-insensitive), sorted by name.
func (f *Finder) ListFilesByExt(dir string, exts ...string) ([]string, error) {
	entries, err := filepath.Glob(filepath.Join(dir, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	allowed := make(map[string]bool, len(exts))
	for _, ext := range exts {
		allowed[strings.ToLower(ext)] = true
	}

	var files []string
	for _, entry := range entries {
		if allowed[strings.ToLower(filepath.Ext(entry))] {
			files = append(files, entry)
		}
	}

	sort.Strings(files)
	return files, nil
}

// Ensure Finder implements video.FileFinder
var _ video.FileFinder = (*Finder)(nil)
