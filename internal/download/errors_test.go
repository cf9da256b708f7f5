package download

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifyRunError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind FailureKind
	}{
		{"missing ffmpeg", errors.New("ERROR: ffmpeg not found. Please install or provide the path"), FailureConversion},
		{"ffprobe failure", errors.New("ffprobe exited with code 1"), FailureConversion},
		{"postprocessing", errors.New("Postprocessing: audio conversion failed"), FailureConversion},
		{"write permission", errors.New("unable to open for writing: permission denied"), FailureFilesystem},
		{"disk full", errors.New("write error: no space left on device"), FailureFilesystem},
		{"private video", errors.New("ERROR: Private video. Sign in if you've been granted access"), FailureExtraction},
		{"geo restriction", errors.New("ERROR: The uploader has not made this video available in your country"), FailureExtraction},
		{"network", errors.New("unable to download webpage: connection reset"), FailureExtraction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			derr := classifyRunError(tt.err)
			if derr.Kind != tt.kind {
				t.Errorf("classifyRunError(%q).Kind = %s, want %s", tt.err, derr.Kind, tt.kind)
			}
			if !errors.Is(derr, tt.err) {
				t.Error("classified error must wrap the original cause")
			}
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("boom")
	err := newError(FailureExtraction, cause)

	if err.Error() != fmt.Sprintf("%s: %v", FailureExtraction, cause) {
		t.Errorf("unexpected error string: %s", err.Error())
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
}
