package platform

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// FFmpeg executable constants
const (
	FFmpegCommand     = "ffmpeg"
	FFmpegVersionFlag = "-version"
)

// FindFFmpeg locates an FFmpeg binary: first one bundled next to the
// application executable, then the system PATH. Returns "" when none is
// found; the extraction library then does its own PATH lookup and reports a
// conversion failure if that also comes up empty.
func FindFFmpeg() string {
	name := FFmpegCommand
	if runtime.GOOS == OSWindows {
		name += ".exe"
	}

	if exe, err := os.Executable(); err == nil {
		bundled := filepath.Join(filepath.Dir(exe), name)
		if info, err := os.Stat(bundled); err == nil && !info.IsDir() {
			return bundled
		}
	}

	if path, err := exec.LookPath(FFmpegCommand); err == nil {
		return path
	}

	return ""
}

// VerifyFFmpeg checks that the binary at path actually runs. Used at startup
// to warn early instead of failing mid-download.
func VerifyFFmpeg(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("ffmpeg not found")
	}

	cmd := exec.CommandContext(ctx, path, FFmpegVersionFlag)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg at %s is not runnable: %w", path, err)
	}
	return nil
}
