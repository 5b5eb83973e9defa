package video

import "context"

// ProgressFunc receives the number of source seconds processed so far.
// Implementations must tolerate out-of-order or repeated values.
type ProgressFunc func(seconds float64)

// AudioExtractor defines the interface for audio extraction operations
// This is a port that can be implemented by different infrastructure adapters
type AudioExtractor interface {
	// Extract extracts audio according to the request, writing to
	// req.OutputPath. progress may be nil.
	Extract(ctx context.Context, req *ExtractionRequest, progress ProgressFunc) error
}

// DurationProber reports the playable duration of a media file in seconds
type DurationProber interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// FileChecker defines the interface for file existence checks
type FileChecker interface {
	Exists(path string) bool
	Size(path string) int64
}

// FileFinder locates video files on disk
type FileFinder interface {
	// FindVideoFiles recursively collects video files under root,
	// sorted by path.
	FindVideoFiles(root string) ([]string, error)
}

// ProgressBar renders extraction progress for a single file
type ProgressBar interface {
	// Set moves the bar to the given number of processed seconds.
	Set(seconds float64)
	// Finish completes the bar regardless of the last Set value.
	Finish()
}

// ProgressRenderer creates progress bars
type ProgressRenderer interface {
	// Start begins a bar for the named file spanning totalSeconds.
	Start(label string, totalSeconds float64) ProgressBar
}
