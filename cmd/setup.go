package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"video-to-audio/domain/video"
	"video-to-audio/infrastructure/config"

	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create configuration file interactively",
	Long: `Prompts for configuration values and creates config.yaml.

This command guides you through setting up default folders, audio
settings and optional Google Drive upload credentials.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	return RunSetupWithPrompter(DefaultPrompter, "config/config.yaml")
}

// RunSetupWithPrompter runs the setup with a given prompter (for testing)
func RunSetupWithPrompter(prompter Prompter, configPath string) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		overwrite, err := prompter.Confirm("config.yaml already exists. Overwrite?", false)
		if err != nil {
			return fmt.Errorf("prompt cancelled")
		}
		if !overwrite {
			fmt.Println("Setup cancelled.")
			return nil
		}
	}

	fmt.Println("Welcome to video-to-audio setup!")
	fmt.Println()

	cfg := &config.Config{}

	if err := promptPaths(prompter, cfg); err != nil {
		return err
	}

	if err := promptAudio(prompter, cfg); err != nil {
		return err
	}

	if err := promptGoogle(prompter, cfg); err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := config.Save(cfg, configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	fmt.Println()
	fmt.Printf("Configuration saved to %s\n", configPath)
	return nil
}

func promptPaths(prompter Prompter, cfg *config.Config) error {
	input, err := prompter.Input("Where are your video files?", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if input == "" {
		return fmt.Errorf("input directory is required")
	}
	cfg.Paths.InputDirectory = input

	output, err := prompter.Input("Where should audio files be saved?", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if output == "" {
		return fmt.Errorf("output directory is required")
	}
	cfg.Paths.OutputDirectory = output

	return nil
}

func promptAudio(prompter Prompter, cfg *config.Config) error {
	format, err := prompter.Select("Default audio format:", video.FormatNames(), string(video.DefaultFormat))
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Audio.Format = format

	bitrate, err := prompter.Input("Default audio bitrate:", video.DefaultBitrate)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Audio.Bitrate = bitrate

	return nil
}

func promptGoogle(prompter Prompter, cfg *config.Config) error {
	enable, err := prompter.Confirm("Configure Google Drive uploads?", false)
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	if !enable {
		return nil
	}

	credentials, err := prompter.Input("Path to OAuth credentials JSON:", "config/credentials.json")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Google.CredentialsFile = credentials

	token, err := prompter.Input("Path to store the OAuth token:", "config/token.json")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Google.TokenFile = token

	folderID, err := prompter.Input("Google Drive folder ID for uploads:", "")
	if err != nil {
		return fmt.Errorf("prompt cancelled")
	}
	cfg.Google.FolderID = folderID

	return nil
}
