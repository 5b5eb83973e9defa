package distribution

import (
	"context"
	"time"
)

// DriveClient defines the interface for Google Drive operations
// This is a port that can be implemented by different infrastructure adapters
type DriveClient interface {
	// UploadAndShare uploads a file and makes it readable by anyone
	// with the link.
	UploadAndShare(ctx context.Context, req UploadRequest) (*UploadResult, error)

	// FindFileByName returns the file with the given name in a folder,
	// or nil when no such file exists.
	FindFileByName(ctx context.Context, folderID, name string) (*FileInfo, error)

	// DeletePermanently deletes a file permanently (bypasses trash)
	DeletePermanently(ctx context.Context, fileID string) error
}

// FileInfo represents metadata about a file in Google Drive
type FileInfo struct {
	ID          string
	Name        string
	MimeType    string
	Size        int64
	CreatedTime time.Time
}
