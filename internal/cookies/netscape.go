package cookies

import (
	"fmt"
	"os"
	"strings"
)

// NetscapeHeader is the magic first line tools expect in a cookies.txt file.
const NetscapeHeader = "# Netscape HTTP Cookie File"

// NetscapeCookie is one line of a Netscape-format cookies.txt file.
type NetscapeCookie struct {
	Domain     string
	Path       string
	Secure     bool
	Expiration int64
	Name       string
	Value      string
}

// WriteFile writes cookies to path in Netscape format with owner-only
// permissions, since the file carries live session credentials.
func WriteFile(path string, cookies []NetscapeCookie) error {
	var b strings.Builder
	b.WriteString(NetscapeHeader)
	b.WriteString("\n\n")

	for _, c := range cookies {
		// The second column is TRUE when the cookie applies to subdomains,
		// which the format signals with a leading dot on the domain.
		includeSubdomains := "FALSE"
		if strings.HasPrefix(c.Domain, ".") {
			includeSubdomains = "TRUE"
		}

		secure := "FALSE"
		if c.Secure {
			secure = "TRUE"
		}

		path := c.Path
		if path == "" {
			path = "/"
		}

		fmt.Fprintf(&b, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			c.Domain, includeSubdomains, path, secure, c.Expiration, c.Name, c.Value)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return fmt.Errorf("write cookies file: %w", err)
	}
	return nil
}
