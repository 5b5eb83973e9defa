package ffmpeg

import (
	"context"
	"errors"
	"testing"
)

func TestProber_Duration(t *testing.T) {
	tests := []struct {
		name        string
		output      []byte
		outputErr   error
		want        float64
		wantErr     bool
		errContains string
	}{
		{
			name:   "whole seconds",
			output: []byte("3600\n"),
			want:   3600,
		},
		{
			name:   "fractional seconds",
			output: []byte("125.384000\n"),
			want:   125.384,
		},
		{
			name:        "ffprobe failure",
			outputErr:   errors.New("exit status 1"),
			wantErr:     true,
			errContains: "ffprobe failed",
		},
		{
			name:        "unparseable output",
			output:      []byte("N/A\n"),
			wantErr:     true,
			errContains: "could not determine duration",
		},
		{
			name:        "zero duration",
			output:      []byte("0.000000\n"),
			wantErr:     true,
			errContains: "could not determine duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &mockCommandRunner{output: tt.output, outputErr: tt.outputErr}
			prober := NewProber(WithProberCommandRunner(runner))

			got, err := prober.Duration(context.Background(), "/videos/talk.mp4")

			if tt.wantErr {
				if err == nil {
					t.Fatal("Duration() expected error, got nil")
				}
				if !contains(err.Error(), tt.errContains) {
					t.Errorf("Duration() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Fatalf("Duration() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}

			if runner.lastName != "ffprobe" {
				t.Errorf("command = %q, want %q", runner.lastName, "ffprobe")
			}
			if len(runner.lastArgs) == 0 || runner.lastArgs[len(runner.lastArgs)-1] != "/videos/talk.mp4" {
				t.Errorf("last arg = %v, want path as final argument", runner.lastArgs)
			}
		})
	}
}

func TestProber_VerifyInstalled(t *testing.T) {
	runner := &mockCommandRunner{output: []byte("ffprobe version 6.0")}
	prober := NewProber(WithProberCommandRunner(runner))

	if err := prober.VerifyInstalled(context.Background()); err != nil {
		t.Errorf("VerifyInstalled() unexpected error: %v", err)
	}

	runner.outputErr = errors.New("executable file not found")
	if err := prober.VerifyInstalled(context.Background()); err == nil {
		t.Error("VerifyInstalled() expected error, got nil")
	}
}
