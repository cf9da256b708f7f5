package download

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrUnsupportedURL is returned when no registered platform claims the URL.
var ErrUnsupportedURL = errors.New("no supported platform matches this URL")

// Registry resolves URLs to platforms. It is constructed once at startup and
// passed explicitly to whoever needs it; there is no package-level instance.
type Registry struct {
	platforms []*Platform
}

// NewRegistry builds the registry with all supported platforms. Registration
// order is the resolution priority: Select returns the first platform whose
// domains match the host, so a platform sharing a domain substring with
// another must be registered ahead of it.
func NewRegistry() *Registry {
	return &Registry{
		platforms: []*Platform{
			NewYouTubePlatform(),
			NewTwitterPlatform(),
			NewInstagramPlatform(),
			NewAudiomackPlatform(),
		},
	}
}

// Select returns the first platform claiming the URL's host, or
// ErrUnsupportedURL when none does. Selection is deterministic: first match
// in registration order, no scoring, no backtracking.
func (r *Registry) Select(rawURL string) (*Platform, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	host := parsed.Hostname()
	if host == "" {
		return nil, ErrUnsupportedURL
	}

	for _, p := range r.platforms {
		if p.MatchesHost(host) {
			return p, nil
		}
	}
	return nil, ErrUnsupportedURL
}

// DetectName returns the platform name for a URL, or "" when unsupported.
// The UI uses it for the live platform indicator while the user types.
func (r *Registry) DetectName(rawURL string) string {
	p, err := r.Select(rawURL)
	if err != nil {
		return ""
	}
	return p.Name
}

// PlatformNames returns the names of all registered platforms in order.
func (r *Registry) PlatformNames() []string {
	names := make([]string, 0, len(r.platforms))
	for _, p := range r.platforms {
		names = append(names, p.Name)
	}
	return names
}
