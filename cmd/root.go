package cmd

import (
	"fmt"
	"os"

	"video-to-audio/infrastructure/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

// OutputWriter abstracts where command output goes (for testing)
type OutputWriter interface {
	Write(p []byte) (n int, err error)
}

var rootCmd = &cobra.Command{
	Use:   "video-to-audio",
	Short: "Extract audio from video files via FFmpeg",
	Long: `video-to-audio extracts the audio track from video files using FFmpeg:

  - Convert a single video or a whole folder tree
  - Output as MP3, WAV, AAC, FLAC or OGG at a configurable bitrate
  - Per-file progress bars driven by FFmpeg's timing output
  - Optionally upload the results to Google Drive

Run without arguments for interactive mode, which prompts for the
input folder, output folder, format and bitrate.

Example:
  video-to-audio batch --input ./videos --output ./audio --format mp3`,
	RunE: runInteractive,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = "config/config.yaml"
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// Config file is optional; flags and interactive prompts cover
		// everything it provides.
		cfg = nil
	}
}

// GetConfig returns the loaded configuration, or nil when no config
// file was found
func GetConfig() *config.Config {
	return cfg
}
