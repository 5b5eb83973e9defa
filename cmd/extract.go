package cmd

import (
	"context"
	"fmt"
	"os"

	appvideo "video-to-audio/application/video"
	"video-to-audio/domain/video"
	"video-to-audio/infrastructure/config"
	"video-to-audio/infrastructure/ffmpeg"
	"video-to-audio/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

var (
	extractSourcePath string
	extractOutputPath string
	extractFormat     string
	extractBitrate    string
	extractStart      string
	extractEnd        string
	extractNoProgress bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract audio from a single video file",
	Long: `Extract the audio track from one video file.

The output path defaults to the source path with the audio format's
extension. Pass --start and --end to extract only a time window.

Example:
  video-to-audio extract --source lecture.mp4
  video-to-audio extract --source concert.mkv --format flac --bitrate 320k
  video-to-audio extract --source meeting.mp4 --start 01:00:00 --end 02:00:00`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&extractSourcePath, "source", "s", "", "Path to source video file (required)")
	extractCmd.Flags().StringVarP(&extractOutputPath, "output", "o", "", "Path for the output audio file")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "", "Audio format: mp3, wav, aac, flac, ogg (default mp3)")
	extractCmd.Flags().StringVarP(&extractBitrate, "bitrate", "b", "", "Audio bitrate (default 192k)")
	extractCmd.Flags().StringVar(&extractStart, "start", "", "Start of extraction window (HH:MM:SS)")
	extractCmd.Flags().StringVar(&extractEnd, "end", "", "End of extraction window (HH:MM:SS)")
	extractCmd.Flags().BoolVar(&extractNoProgress, "no-progress", false, "Disable the progress bar")
	extractCmd.MarkFlagRequired("source")
}

func runExtract(cmd *cobra.Command, args []string) error {
	req, err := buildExtractionRequest(GetConfig(), extractSourcePath, extractOutputPath, extractFormat, extractBitrate, extractStart, extractEnd)
	if err != nil {
		return err
	}

	return RunExtractWithDependencies(
		cmd.Context(),
		ffmpeg.NewExtractor(),
		ffmpeg.NewProber(),
		filesystem.NewChecker(),
		newRenderer(extractNoProgress),
		req,
		os.Stdout,
	)
}

// RunExtractWithDependencies runs the extract command with injected dependencies (for testing)
func RunExtractWithDependencies(
	ctx context.Context,
	extractor video.AudioExtractor,
	prober video.DurationProber,
	checker video.FileChecker,
	renderer video.ProgressRenderer,
	req *video.ExtractionRequest,
	output OutputWriter,
) error {
	if err := verifyTools(ctx, extractor, prober); err != nil {
		return err
	}

	service := appvideo.NewExtractService(extractor, prober, checker, renderer)

	fmt.Fprintf(output, "Extracting audio from %s with bitrate %s...\n", req.SourcePath, req.Bitrate)

	result, err := service.Extract(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "Successfully created: %s (%.2f MB)\n", result.OutputPath, float64(result.SizeBytes)/1024/1024)
	return nil
}

// buildExtractionRequest merges flags with config file defaults
func buildExtractionRequest(cfg *config.Config, sourcePath, outputPath, formatName, bitrate, start, end string) (*video.ExtractionRequest, error) {
	if formatName == "" && cfg != nil {
		formatName = cfg.Audio.Format
	}
	format := video.DefaultFormat
	if formatName != "" {
		var err error
		format, err = video.ParseFormat(formatName)
		if err != nil {
			return nil, err
		}
	}

	if bitrate == "" && cfg != nil {
		bitrate = cfg.Audio.Bitrate
	}

	if start != "" || end != "" {
		if start == "" || end == "" {
			return nil, fmt.Errorf("--start and --end must be used together")
		}
		return video.NewExtractionRequestWithRange(sourcePath, outputPath, format, bitrate, start, end)
	}

	return video.NewExtractionRequest(sourcePath, outputPath, format, bitrate)
}
