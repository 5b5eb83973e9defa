package distribution

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"video-to-audio/domain/distribution"
	"video-to-audio/domain/video"
)

// UploadService handles audio file uploads to Google Drive
type UploadService struct {
	driveClient distribution.DriveClient
	folderID    string
	output      io.Writer
}

// NewUploadService creates a new upload service
func NewUploadService(client distribution.DriveClient, folderID string, output io.Writer) *UploadService {
	if output == nil {
		output = io.Discard
	}
	return &UploadService{
		driveClient: client,
		folderID:    folderID,
		output:      output,
	}
}

// UploadAudio uploads a single audio file to Google Drive and sets
// public sharing, replacing any same-named file in the folder first.
func (s *UploadService) UploadAudio(ctx context.Context, audioPath string) (*distribution.UploadResult, error) {
	if _, err := os.Stat(audioPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", audioPath)
	}

	fileName := filepath.Base(audioPath)

	existing, err := s.driveClient.FindFileByName(ctx, s.folderID, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing file: %w", err)
	}
	if existing != nil {
		fmt.Fprintf(s.output, "      Replacing existing %s (%.1f MB)\n", existing.Name, float64(existing.Size)/1024/1024)
		if err := s.driveClient.DeletePermanently(ctx, existing.ID); err != nil {
			return nil, fmt.Errorf("failed to delete existing file %s: %w", existing.Name, err)
		}
	}

	req := distribution.UploadRequest{
		LocalPath: audioPath,
		FileName:  fileName,
		FolderID:  s.folderID,
		MimeType:  mimeTypeFor(audioPath),
	}

	result, err := s.driveClient.UploadAndShare(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to upload and share %s: %w", fileName, err)
	}

	return result, nil
}

// UploadAll uploads every given audio file in order, failing on the
// first upload that cannot complete.
func (s *UploadService) UploadAll(ctx context.Context, paths []string) ([]*distribution.UploadResult, error) {
	results := make([]*distribution.UploadResult, 0, len(paths))

	for _, path := range paths {
		result, err := s.UploadAudio(ctx, path)
		if err != nil {
			return results, err
		}
		fmt.Fprintf(s.output, "Uploaded %s (%s)\n", result.FileName, result.ShareableURL)
		results = append(results, result)
	}

	return results, nil
}

// mimeTypeFor maps an audio file's extension to its MIME type
func mimeTypeFor(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	format, err := video.ParseFormat(ext)
	if err != nil {
		return "application/octet-stream"
	}
	return format.MimeType()
}
