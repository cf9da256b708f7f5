package cookies

import (
	"context"
	"fmt"
	"strings"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/chrome"
	_ "github.com/browserutils/kooky/browser/chromium"
	_ "github.com/browserutils/kooky/browser/edge"
	_ "github.com/browserutils/kooky/browser/firefox"
	_ "github.com/browserutils/kooky/browser/opera"
)

// SupportedBrowsers returns the browser names the exporter can read from.
func SupportedBrowsers() []string {
	return []string{
		"chrome",
		"chromium",
		"firefox",
		"edge",
		"opera",
	}
}

// ExportOptions controls a browser cookie export.
type ExportOptions struct {
	Browser    string // browser name (chrome, firefox, ...), empty for any
	Domain     string // domain to filter cookies, e.g. "instagram.com"
	OutputPath string // where to write the Netscape cookies.txt
}

// ExportFromBrowser reads cookies from an installed browser profile and
// writes them as a Netscape cookies.txt at opts.OutputPath. Returns the
// number of cookies written.
func ExportFromBrowser(ctx context.Context, opts ExportOptions) (int, error) {
	var filters []kooky.Filter
	if opts.Domain != "" {
		// Match cookies for the domain and its subdomains
		filters = append(filters, kooky.DomainHasSuffix(opts.Domain))
	}

	browserCookies, err := kooky.ReadCookies(ctx, filters...)
	if err != nil {
		return 0, fmt.Errorf("read cookies from browser: %w", err)
	}

	browser := strings.ToLower(opts.Browser)
	exported := make([]NetscapeCookie, 0, len(browserCookies))
	for _, cookie := range browserCookies {
		// Keep only cookies from the requested browser when one is named
		if browser != "" && cookie.Browser != nil {
			cookieBrowser := strings.ToLower(cookie.Browser.Browser())
			if !strings.Contains(cookieBrowser, browser) {
				continue
			}
		}

		domain := cookie.Domain
		if domain != "" && !strings.HasPrefix(domain, ".") {
			domain = "." + domain
		}

		expiration := cookie.Expires.Unix()
		if expiration < 0 {
			expiration = 0
		}

		exported = append(exported, NetscapeCookie{
			Domain:     domain,
			Path:       cookie.Path,
			Secure:     cookie.Secure,
			Expiration: expiration,
			Name:       cookie.Name,
			Value:      cookie.Value,
		})
	}

	if len(exported) == 0 {
		return 0, fmt.Errorf("no cookies found for browser %q and domain %q", opts.Browser, opts.Domain)
	}

	if err := WriteFile(opts.OutputPath, exported); err != nil {
		return 0, err
	}
	return len(exported), nil
}
