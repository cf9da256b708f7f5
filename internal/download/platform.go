package download

import (
	"strings"

	"github.com/Mlgpigeon/UniversalMediaDownloader/internal/model"
)

// Platform is one supported site: the domain substrings it claims and the
// yt-dlp options it contributes for a request. Variants are plain data plus
// a pure option-builder function; they hold no state across downloads.
type Platform struct {
	Name    string
	Domains []string
	Options func(req model.DownloadRequest) Options
}

// MatchesHost reports whether the URL host belongs to this platform.
// Matching is done against the host only, never the full URL, so a platform
// name appearing in the path or query of an unrelated URL cannot trigger a
// false positive.
func (p *Platform) MatchesHost(host string) bool {
	host = strings.ToLower(host)
	for _, domain := range p.Domains {
		if strings.Contains(host, domain) {
			return true
		}
	}
	return false
}
