package cmd

import (
	"context"
	"fmt"
	"os"

	appdist "video-to-audio/application/distribution"
	"video-to-audio/domain/distribution"
	"video-to-audio/infrastructure/drive"
	"video-to-audio/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

var (
	uploadFilePath string
	uploadDirPath  string
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload extracted audio files to Google Drive",
	Long: `Uploads audio files to the Google Drive folder from the config and
makes them shareable. A same-named file already in the folder is
replaced.

With --file a single file is uploaded. With --dir (or the configured
output folder) every audio file in that folder is uploaded.

Requires google.credentials_file, google.token_file and
google.folder_id in config/config.yaml. Run "video-to-audio setup"
first.`,
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().StringVar(&uploadFilePath, "file", "", "Upload a single audio file")
	uploadCmd.Flags().StringVar(&uploadDirPath, "dir", "", "Upload every audio file in a folder")
}

func runUpload(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	if cfg == nil || cfg.Google.CredentialsFile == "" || cfg.Google.FolderID == "" {
		return fmt.Errorf("Google Drive is not configured; run \"video-to-audio setup\"")
	}

	paths, err := resolveUploadPaths(cfg.Paths.OutputDirectory, uploadFilePath, uploadDirPath)
	if err != nil {
		return err
	}

	client, err := drive.NewClientWithOAuth(cmd.Context(), cfg.Google.CredentialsFile, cfg.Google.TokenFile)
	if err != nil {
		return fmt.Errorf("failed to create Drive client: %w", err)
	}

	return RunUploadWithDependencies(cmd.Context(), client, cfg.Google.FolderID, paths, os.Stdout)
}

// RunUploadWithDependencies runs the upload command with an injected client (for testing)
func RunUploadWithDependencies(ctx context.Context, client distribution.DriveClient, folderID string, paths []string, output OutputWriter) error {
	service := appdist.NewUploadService(client, folderID, output)

	fmt.Fprintf(output, "Uploading %d file(s) to Google Drive...\n", len(paths))

	if _, err := service.UploadAll(ctx, paths); err != nil {
		return err
	}

	fmt.Fprintln(output, "Upload complete!")
	return nil
}

// resolveUploadPaths picks the file list from the flags, falling back to
// the configured output folder when neither flag is given.
func resolveUploadPaths(configuredDir, filePath, dirPath string) ([]string, error) {
	if filePath != "" && dirPath != "" {
		return nil, fmt.Errorf("--file and --dir cannot be used together")
	}

	if filePath != "" {
		return []string{filePath}, nil
	}

	if dirPath == "" {
		dirPath = configuredDir
	}
	if dirPath == "" {
		return nil, fmt.Errorf("nothing to upload; pass --file or --dir, or set paths.output_directory in the config")
	}

	finder := filesystem.NewFinder()
	paths, err := finder.ListFilesByExt(dirPath, ".mp3", ".wav", ".aac", ".flac", ".ogg")
	if err != nil {
		return nil, fmt.Errorf("failed to list audio files in %s: %w", dirPath, err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no audio files found in %s", dirPath)
	}

	return paths, nil
}
