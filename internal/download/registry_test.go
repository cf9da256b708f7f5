package download

import (
	"errors"
	"testing"
)

func TestRegistrySelect(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		name     string
		url      string
		platform string
	}{
		{"youtube watch", "https://youtube.com/watch?v=abc123", "YouTube"},
		{"youtube www", "https://www.youtube.com/watch?v=abc123", "YouTube"},
		{"youtube short link", "https://youtu.be/abc123", "YouTube"},
		{"youtube music", "https://music.youtube.com/watch?v=abc123", "YouTube"},
		{"youtube nocookie", "https://www.youtube-nocookie.com/embed/abc123", "YouTube"},
		{"twitter", "https://twitter.com/user/status/123", "X (Twitter)"},
		{"x.com", "https://x.com/user/status/123", "X (Twitter)"},
		{"mobile twitter", "https://mobile.twitter.com/user/status/123", "X (Twitter)"},
		{"instagram post", "https://instagram.com/p/xyz", "Instagram"},
		{"instagram www reel", "https://www.instagram.com/reel/xyz/", "Instagram"},
		{"instagram short domain", "https://instagr.am/p/xyz", "Instagram"},
		{"audiomack song", "https://audiomack.com/artist/song/track", "Audiomack"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := registry.Select(tt.url)
			if err != nil {
				t.Fatalf("Select(%q) returned error: %v", tt.url, err)
			}
			if p.Name != tt.platform {
				t.Errorf("Select(%q) = %s, want %s", tt.url, p.Name, tt.platform)
			}
		})
	}
}

func TestRegistrySelectUnsupported(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		name string
		url  string
	}{
		{"unknown site", "https://example.com/video"},
		{"empty host", "not-a-url"},
		{"platform name in path only", "https://example.com/youtube.com/watch?v=abc"},
		{"platform name in query only", "https://example.com/?redirect=instagram.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := registry.Select(tt.url)
			if !errors.Is(err, ErrUnsupportedURL) {
				t.Errorf("Select(%q) error = %v, want ErrUnsupportedURL", tt.url, err)
			}
		})
	}
}

func TestRegistrySelectDeterministic(t *testing.T) {
	registry := NewRegistry()

	// Same URL resolves to the same platform on every call
	for i := 0; i < 5; i++ {
		p, err := registry.Select("https://x.com/user/status/123")
		if err != nil {
			t.Fatalf("Select returned error: %v", err)
		}
		if p.Name != "X (Twitter)" {
			t.Fatalf("resolution changed between calls: got %s", p.Name)
		}
	}
}

func TestRegistryDetectName(t *testing.T) {
	registry := NewRegistry()

	if got := registry.DetectName("https://youtube.com/watch?v=a"); got != "YouTube" {
		t.Errorf("DetectName = %q, want YouTube", got)
	}
	if got := registry.DetectName("https://example.com/video"); got != "" {
		t.Errorf("DetectName for unsupported URL = %q, want empty", got)
	}
}

func TestRegistryPlatformNames(t *testing.T) {
	registry := NewRegistry()

	names := registry.PlatformNames()
	expected := []string{"YouTube", "X (Twitter)", "Instagram", "Audiomack"}

	if len(names) != len(expected) {
		t.Fatalf("expected %d platforms, got %d", len(expected), len(names))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("platform %d = %s, want %s (registration order is the resolution priority)", i, names[i], name)
		}
	}
}

func TestPlatformMatchesHostIsCaseInsensitive(t *testing.T) {
	p := NewYouTubePlatform()

	if !p.MatchesHost("WWW.YouTube.COM") {
		t.Error("host matching should be case insensitive")
	}
	if p.MatchesHost("example.com") {
		t.Error("unrelated host should not match")
	}
}
