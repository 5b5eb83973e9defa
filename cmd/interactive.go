package cmd

import (
	"fmt"
	"os"

	appvideo "video-to-audio/application/video"
	"video-to-audio/domain/video"
	"video-to-audio/infrastructure/config"
	"video-to-audio/infrastructure/ffmpeg"
	"video-to-audio/infrastructure/filesystem"

	"github.com/spf13/cobra"
)

// runInteractive is the root command's behavior: prompt for everything
// the batch command takes as flags, then run the batch flow.
func runInteractive(cmd *cobra.Command, args []string) error {
	in, err := PromptBatchInput(DefaultPrompter, GetConfig(), os.Stdout)
	if err != nil {
		return err
	}

	return RunBatchWithDependencies(
		cmd.Context(),
		filesystem.NewFinder(),
		ffmpeg.NewExtractor(),
		ffmpeg.NewProber(),
		filesystem.NewChecker(),
		newRenderer(false),
		in,
		os.Stdout,
	)
}

// PromptBatchInput collects batch parameters interactively. Config file
// values become prompt defaults when present.
func PromptBatchInput(prompter Prompter, cfg *config.Config, output OutputWriter) (appvideo.BatchInput, error) {
	fmt.Fprintln(output, "No command line arguments provided. Running in interactive mode.")

	var defaultInput, defaultOutput string
	defaultFormat := string(video.DefaultFormat)
	defaultBitrate := video.DefaultBitrate
	if cfg != nil {
		defaultInput = cfg.Paths.InputDirectory
		defaultOutput = cfg.Paths.OutputDirectory
		if cfg.Audio.Format != "" {
			defaultFormat = cfg.Audio.Format
		}
		if cfg.Audio.Bitrate != "" {
			defaultBitrate = cfg.Audio.Bitrate
		}
	}

	inputDir, err := prompter.Input("Enter the path to your folder containing video files:", defaultInput)
	if err != nil {
		return appvideo.BatchInput{}, fmt.Errorf("prompt cancelled")
	}
	if inputDir == "" {
		return appvideo.BatchInput{}, fmt.Errorf("input folder is required")
	}

	outputDir, err := prompter.Input("Enter the path where audio files should be saved:", defaultOutput)
	if err != nil {
		return appvideo.BatchInput{}, fmt.Errorf("prompt cancelled")
	}
	if outputDir == "" {
		return appvideo.BatchInput{}, fmt.Errorf("output folder is required")
	}

	formatName, err := prompter.Select("Select the desired audio format:", video.FormatNames(), defaultFormat)
	if err != nil {
		return appvideo.BatchInput{}, fmt.Errorf("prompt cancelled")
	}
	format, err := video.ParseFormat(formatName)
	if err != nil {
		return appvideo.BatchInput{}, err
	}

	bitrate, err := prompter.Input("Enter the desired audio bitrate:", defaultBitrate)
	if err != nil {
		return appvideo.BatchInput{}, fmt.Errorf("prompt cancelled")
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
