package video

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output audio format supported by the tool.
type Format string

const (
	FormatMP3  Format = "mp3"
	FormatWAV  Format = "wav"
	FormatAAC  Format = "aac"
	FormatFLAC Format = "flac"
	FormatOGG  Format = "ogg"
)

// DefaultFormat is used when no format is specified.
const DefaultFormat = FormatMP3

// codecs maps each format to the ffmpeg encoder it needs.
var codecs = map[Format]string{
	FormatMP3:  "libmp3lame",
	FormatWAV:  "pcm_s16le",
	FormatAAC:  "aac",
	FormatFLAC: "flac",
	FormatOGG:  "libvorbis",
}

// mimeTypes maps each format to its MIME type for uploads.
var mimeTypes = map[Format]string{
	FormatMP3:  "audio/mpeg",
	FormatWAV:  "audio/wav",
	FormatAAC:  "audio/aac",
	FormatFLAC: "audio/flac",
	FormatOGG:  "audio/ogg",
}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if _, ok := codecs[f]; !ok {
		return "", fmt.Errorf("unsupported audio format %q (supported: %s)", s, strings.Join(FormatNames(), ", "))
	}
	return f, nil
}

// FormatNames returns the supported format names in a fixed order.
func FormatNames() []string {
	return []string{string(FormatMP3), string(FormatWAV), string(FormatAAC), string(FormatFLAC), string(FormatOGG)}
}

// Codec returns the ffmpeg audio codec for the format.
func (f Format) Codec() string {
	return codecs[f]
}

// Extension returns the file extension including the leading dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// MimeType returns the MIME type for the format.
func (f Format) MimeType() string {
	return mimeTypes[f]
}

// videoExtensions are the container extensions recognized as video files.
var videoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".mkv":  true,
	".wmv":  true,
	".flv":  true,
	".webm": true,
	".m4v":  true,
	".3gp":  true,
}

// IsVideoFile reports whether the path carries a recognized video extension.
func IsVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}
