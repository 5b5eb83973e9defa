package cmd

import (
	"testing"

	"video-to-audio/domain/video"
	"video-to-audio/infrastructure/config"
)

func TestResolveBatchInput(t *testing.T) {
	cfg := &config.Config{}
	cfg.Paths.InputDirectory = "/cfg/in"
	cfg.Paths.OutputDirectory = "/cfg/out"
	cfg.Audio.Format = "flac"
	cfg.Audio.Bitrate = "256k"

	tests := []struct {
		name        string
		cfg         *config.Config
		inputDir    string
		outputDir   string
		format      string
		bitrate     string
		wantInput   string
		wantFormat  video.Format
		wantBitrate string
		wantErr     bool
	}{
		{
			name:        "flags only",
			cfg:         nil,
			inputDir:    "/videos",
			outputDir:   "/audio",
			format:      "mp3",
			bitrate:     "192k",
			wantInput:   "/videos",
			wantFormat:  video.FormatMP3,
			wantBitrate: "192k",
		},
		{
			name:        "config fills missing flags",
			cfg:         cfg,
			wantInput:   "/cfg/in",
			wantFormat:  video.FormatFLAC,
			wantBitrate: "256k",
		},
		{
			name:        "flags win over config",
			cfg:         cfg,
			inputDir:    "/videos",
			outputDir:   "/audio",
			format:      "wav",
			bitrate:     "320k",
			wantInput:   "/videos",
			wantFormat:  video.FormatWAV,
			wantBitrate: "320k",
		},
		{
			name:        "defaults without config",
			cfg:         nil,
			inputDir:    "/videos",
			outputDir:   "/audio",
			wantInput:   "/videos",
			wantFormat:  video.DefaultFormat,
			wantBitrate: video.DefaultBitrate,
		},
		{
			name:      "missing input folder",
			cfg:       nil,
			outputDir: "/audio",
			wantErr:   true,
		},
		{
			name:     "missing output folder",
			cfg:      nil,
			inputDir: "/videos",
			wantErr:  true,
		},
		{
			name:      "invalid format",
			cfg:       nil,
			inputDir:  "/videos",
			outputDir: "/audio",
			format:    "midi",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := resolveBatchInput(tt.cfg, tt.inputDir, tt.outputDir, tt.format, tt.bitrate)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if in.InputDir != tt.wantInput {
				t.Errorf("expected input dir %q, got %q", tt.wantInput, in.InputDir)
			}
			if in.Format != tt.wantFormat {
				t.Errorf("expected format %q, got %q", tt.wantFormat, in.Format)
			}
			if in.Bitrate != tt.wantBitrate {
				t.Errorf("expected bitrate %q, got %q", tt.wantBitrate, in.Bitrate)
			}
		})
	}
}

func TestBuildExtractionRequest(t *testing.T) {
	cfg := &config.Config{}
	cfg.Audio.Format = "ogg"
	cfg.Audio.Bitrate = "128k"

	t.Run("derives output from source", func(t *testing.T) {
		req, err := buildExtractionRequest(nil, "/videos/talk.mp4", "", "", "", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.OutputPath != "/videos/talk.mp3" {
			t.Errorf("expected output /videos/talk.mp3, got %q", req.OutputPath)
		}
		if req.Bitrate != video.DefaultBitrate {
			t.Errorf("expected default bitrate, got %q", req.Bitrate)
		}
	})

	t.Run("config supplies format and bitrate", func(t *testing.T) {
		req, err := buildExtractionRequest(cfg, "/videos/talk.mp4", "", "", "", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Format != video.FormatOGG {
			t.Errorf("expected ogg format, got %q", req.Format)
		}
		if req.Bitrate != "128k" {
			t.Errorf("expected bitrate 128k, got %q", req.Bitrate)
		}
	})

	t.Run("time window requires both ends", func(t *testing.T) {
		if _, err := buildExtractionRequest(nil, "/videos/talk.mp4", "", "", "", "00:10:00", ""); err == nil {
			t.Error("expected error for start without end")
		}
		if _, err := buildExtractionRequest(nil, "/videos/talk.mp4", "", "", "", "", "00:20:00"); err == nil {
			t.Error("expected error for end without start")
		}
	})

	t.Run("valid time window", func(t *testing.T) {
		req, err := buildExtractionRequest(nil, "/videos/talk.mp4", "", "", "", "00:10:00", "00:20:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !req.HasRange() {
			t.Error("expected request to carry a time window")
		}
	})
}

func TestResolveUploadPaths(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		paths, err := resolveUploadPaths("", "/audio/talk.mp3", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(paths) != 1 || paths[0] != "/audio/talk.mp3" {
			t.Errorf("expected single path, got %v", paths)
		}
	})

	t.Run("file and dir are exclusive", func(t *testing.T) {
		if _, err := resolveUploadPaths("", "/audio/talk.mp3", "/audio"); err == nil {
			t.Error("expected error when both flags are set")
		}
	})

	t.Run("nothing configured", func(t *testing.T) {
		if _, err := resolveUploadPaths("", "", ""); err == nil {
			t.Error("expected error when nothing to upload")
		}
	})
}
