package video

import (
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Timestamp
		wantErr bool
		errMsg  string
	}{
		{
			name:  "valid timestamp",
			input: "01:30:45",
			want:  Timestamp{Hours: 1, Minutes: 30, Seconds: 45},
		},
		{
			name:  "all zeros",
			input: "00:00:00",
			want:  Timestamp{Hours: 0, Minutes: 0, Seconds: 0},
		},
		{
			name:  "max valid minutes/seconds",
			input: "23:59:59",
			want:  Timestamp{Hours: 23, Minutes: 59, Seconds: 59},
		},
		{
			name:    "missing leading zero in hours",
			input:   "1:30:45",
			wantErr: true,
			errMsg:  "invalid timestamp format",
		},
		{
			name:    "minutes out of range",
			input:   "00:60:00",
			wantErr: true,
			errMsg:  "minutes must be 0-59",
		},
		{
			name:    "seconds out of range",
			input:   "00:00:60",
			wantErr: true,
			errMsg:  "seconds must be 0-59",
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
			errMsg:  "invalid timestamp format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTimestamp(%q) expected error, got nil", tt.input)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("ParseTimestamp(%q) error = %v, want error containing %q", tt.input, err, tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseTimestamp(%q) unexpected error: %v", tt.input, err)
				return
			}

			if got != tt.want {
				t.Errorf("ParseTimestamp(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimestamp_String(t *testing.T) {
	ts := Timestamp{Hours: 1, Minutes: 5, Seconds: 9}
	if got := ts.String(); got != "01:05:09" {
		t.Errorf("Timestamp.String() = %q, want %q", got, "01:05:09")
	}
}

func TestTimestamp_TotalSeconds(t *testing.T) {
	tests := []struct {
		timestamp Timestamp
		want      int
	}{
		{Timestamp{}, 0},
		{Timestamp{Seconds: 59}, 59},
		{Timestamp{Minutes: 2, Seconds: 30}, 150},
		{Timestamp{Hours: 1, Minutes: 1, Seconds: 1}, 3661},
	}

	for _, tt := range tests {
		t.Run(tt.timestamp.String(), func(t *testing.T) {
			if got := tt.timestamp.TotalSeconds(); got != tt.want {
				t.Errorf("Timestamp.TotalSeconds() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTimestamp_Before(t *testing.T) {
	earlier := Timestamp{Hours: 0, Minutes: 30, Seconds: 0}
	later := Timestamp{Hours: 1, Minutes: 0, Seconds: 0}

	if !earlier.Before(later) {
		t.Error("expected earlier timestamp to be before later")
	}
	if later.Before(earlier) {
		t.Error("expected later timestamp to not be before earlier")
	}
	if earlier.Before(earlier) {
		t.Error("expected timestamp to not be before itself")
	}
}

func TestParseFFmpegTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{
			name:  "whole seconds",
			input: "00:03:21",
			want:  201,
		},
		{
			name:  "fractional seconds",
			input: "00:00:10.56",
			want:  10.56,
		},
		{
			name:  "hours over two digits",
			input: "100:00:01",
			want:  360001,
		},
		{
			name:    "missing component",
			input:   "03:21",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "N/A",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFFmpegTime(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseFFmpegTime(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseFFmpegTime(%q) unexpected error: %v", tt.input, err)
				return
			}

			if got != tt.want {
				t.Errorf("ParseFFmpegTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
