package model

import (
	"testing"
)

func TestGetETAString(t *testing.T) {
	tests := []struct {
		name     string
		etaSec   int
		expected string
	}{
		{"unknown ETA", -1, "—"},
		{"zero ETA", 0, "—"},
		{"seconds only", 45, "00:45"},
		{"minutes and seconds", 125, "02:05"},
		{"hours included", 3725, "01:02:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &DownloadTask{ETASec: tt.etaSec}
			if got := task.GetETAString(); got != tt.expected {
				t.Errorf("GetETAString() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGetDisplayTitle(t *testing.T) {
	tests := []struct {
		name     string
		task     DownloadTask
		expected string
	}{
		{
			name:     "title preferred",
			task:     DownloadTask{Title: "Some Song", OutputPath: "/tmp/file.mp3", URL: "https://youtube.com/watch?v=a"},
			expected: "Some Song",
		},
		{
			name:     "URL-shaped title skipped",
			task:     DownloadTask{Title: "https://youtube.com/watch?v=a", OutputPath: "/tmp/clip.mp4"},
			expected: "clip",
		},
		{
			name:     "filename without extension",
			task:     DownloadTask{OutputPath: "/downloads/My Video [abc123].mp4"},
			expected: "My Video [abc123]",
		},
		{
			name:     "windows separators",
			task:     DownloadTask{OutputPath: `C:\downloads\clip.mp4`},
			expected: "clip",
		},
		{
			name:     "falls back to URL",
			task:     DownloadTask{URL: "https://x.com/user/status/1"},
			expected: "https://x.com/user/status/1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.GetDisplayTitle(); got != tt.expected {
				t.Errorf("GetDisplayTitle() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestOutputKindExt(t *testing.T) {
	if got := OutputVideo.Ext(); got != "mp4" {
		t.Errorf("OutputVideo.Ext() = %q, want mp4", got)
	}
	if got := OutputAudio.Ext(); got != "mp3" {
		t.Errorf("OutputAudio.Ext() = %q, want mp3", got)
	}
}
