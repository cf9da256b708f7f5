package download

import (
	"fmt"
	"strings"
)

// FailureKind classifies terminal download failures. Every failure surfaces
// to the UI exactly once with one of these labels; none are retried here.
type FailureKind string

const (
	// FailureUnsupportedURL means no registered platform matched the URL
	FailureUnsupportedURL FailureKind = "unsupported_url"

	// FailureExtraction means the extraction library reported an error
	// (network, geo-restriction, private content, rate limiting)
	FailureExtraction FailureKind = "extraction_failure"

	// FailureFilesystem means the destination directory could not be
	// created or written
	FailureFilesystem FailureKind = "filesystem_failure"

	// FailureConversion means media post-processing failed, typically
	// because FFmpeg is missing or broken
	FailureConversion FailureKind = "conversion_failure"
)

// Error pairs a failure classification with its underlying cause.
type Error struct {
	Kind FailureKind
	Err  error
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind FailureKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// classifyRunError maps an extraction library failure onto the taxonomy.
// yt-dlp reports post-processing problems in its error text; anything it
// does not attribute to ffmpeg counts as an extraction failure.
func classifyRunError(err error) *Error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "ffmpeg"),
		strings.Contains(msg, "ffprobe"),
		strings.Contains(msg, "postprocess"):
		return newError(FailureConversion, err)
	case strings.Contains(msg, "permission denied"),
		strings.Contains(msg, "no space left"),
		strings.Contains(msg, "read-only file system"):
		return newError(FailureFilesystem, err)
	default:
		return newError(FailureExtraction, err)
	}
}
