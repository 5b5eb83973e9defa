package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	appvideo "video-to-audio/application/video"
	"video-to-audio/domain/video"
	"video-to-audio/infrastructure/config"
	"video-to-audio/infrastructure/ffmpeg"
	"video-to-audio/infrastructure/filesystem"
	"video-to-audio/infrastructure/progress"

	"github.com/spf13/cobra"
)

var (
	batchInputDir   string
	batchOutputDir  string
	batchFormat     string
	batchBitrate    string
	batchNoProgress bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract audio from every video file in a folder",
	Long: `Recursively scans the input folder for video files and extracts the
audio track from each one. The relative folder layout is mirrored under
the output folder. A file that fails to convert is reported and counted
but does not stop the run.

Folders, format and bitrate fall back to config/config.yaml when the
flags are omitted.

Example:
  video-to-audio batch --input ./videos --output ./audio
  video-to-audio batch --input ./videos --output ./audio --format flac --bitrate 320k`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVarP(&batchInputDir, "input", "i", "", "Input folder containing video files")
	batchCmd.Flags().StringVarP(&batchOutputDir, "output", "o", "", "Output folder for audio files")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "", "Audio format: mp3, wav, aac, flac, ogg (default mp3)")
	batchCmd.Flags().StringVarP(&batchBitrate, "bitrate", "b", "", "Audio bitrate (default 192k)")
	batchCmd.Flags().BoolVar(&batchNoProgress, "no-progress", false, "Disable progress bars")
}

func runBatch(cmd *cobra.Command, args []string) error {
	in, err := resolveBatchInput(GetConfig(), batchInputDir, batchOutputDir, batchFormat, batchBitrate)
	if err != nil {
		return err
	}

	return RunBatchWithDependencies(
		cmd.Context(),
		filesystem.NewFinder(),
		ffmpeg.NewExtractor(),
		ffmpeg.NewProber(),
		filesystem.NewChecker(),
		newRenderer(batchNoProgress),
		in,
		os.Stdout,
	)
}

// RunBatchWithDependencies runs the batch command with injected dependencies (for testing)
func RunBatchWithDependencies(
	ctx context.Context,
	finder video.FileFinder,
	extractor video.AudioExtractor,
	prober video.DurationProber,
	checker video.FileChecker,
	renderer video.ProgressRenderer,
	in appvideo.BatchInput,
	output OutputWriter,
) error {
	if err := verifyTools(ctx, extractor, prober); err != nil {
		return err
	}

	extract := appvideo.NewExtractService(extractor, prober, checker, renderer)
	service := appvideo.NewBatchService(finder, extract, output)

	_, err := service.Run(ctx, in)
	return err
}

// resolveBatchInput merges flags with config file defaults
func resolveBatchInput(cfg *config.Config, inputDir, outputDir, formatName, bitrate string) (appvideo.BatchInput, error) {
	if inputDir == "" && cfg != nil {
		inputDir = cfg.Paths.InputDirectory
	}
	if inputDir == "" {
		return appvideo.BatchInput{}, fmt.Errorf("input folder is required; pass --input or set paths.input_directory in the config")
	}

	if outputDir == "" && cfg != nil {
		outputDir = cfg.Paths.OutputDirectory
	}
	if outputDir == "" {
		return appvideo.BatchInput{}, fmt.Errorf("output folder is required; pass --output or set paths.output_directory in the config")
	}

	if formatName == "" && cfg != nil {
		formatName = cfg.Audio.Format
	}
	format := video.DefaultFormat
	if formatName != "" {
		var err error
		format, err = video.ParseFormat(formatName)
		if err != nil {
			return appvideo.BatchInput{}, err
		}
	}

	if bitrate == "" && cfg != nil {
		bitrate = cfg.Audio.Bitrate
	}
	if bitrate == "" {
		bitrate = video.DefaultBitrate
	}

	return appvideo.BatchInput{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Format:    format,
		Bitrate:   bitrate,
	}, nil
}

// newRenderer picks the progress renderer for the --no-progress flag
func newRenderer(noProgress bool) video.ProgressRenderer {
	if noProgress {
		return progress.NopRenderer{}
	}
	return progress.NewRenderer(os.Stderr)
}

// verifyTools checks tool availability for adapters that support verification
func verifyTools(ctx context.Context, tools ...any) error {
	for _, tool := range tools {
		verifiable, ok := tool.(interface{ VerifyInstalled(context.Context) error })
		if !ok {
			continue
		}

		verifyCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := verifiable.VerifyInstalled(verifyCtx)
		cancel()
		if err != nil {
			return err
		}
	}
	return nil
}
