package cookies

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.txt")

	cookies := []NetscapeCookie{
		{Domain: ".instagram.com", Path: "/", Secure: true, Expiration: 1924905600, Name: "sessionid", Value: "abc123"},
		{Domain: "x.com", Path: "", Secure: false, Expiration: 0, Name: "auth_token", Value: "tok"},
	}

	if err := WriteFile(path, cookies); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read back cookies file: %v", err)
	}
	content := string(data)

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if lines[0] != NetscapeHeader {
		t.Errorf("first line = %q, want header", lines[0])
	}

	if !strings.Contains(content, ".instagram.com\tTRUE\t/\tTRUE\t1924905600\tsessionid\tabc123") {
		t.Errorf("missing subdomain cookie line in:\n%s", content)
	}

	// Empty path defaults to "/", host-only domain gets FALSE flag
	if !strings.Contains(content, "x.com\tFALSE\t/\tFALSE\t0\tauth_token\ttok") {
		t.Errorf("missing host-only cookie line in:\n%s", content)
	}
}

func TestWriteFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.txt")

	if err := WriteFile(path, nil); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("cookies file mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestSupportedBrowsers(t *testing.T) {
	browsers := SupportedBrowsers()
	if len(browsers) == 0 {
		t.Fatal("expected at least one supported browser")
	}
	for _, b := range browsers {
		if b != strings.ToLower(b) {
			t.Errorf("browser name %q should be lowercase", b)
		}
	}
}
