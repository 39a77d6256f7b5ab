package normalize

import "strings"

// AbsoluteURL resolves u against base. URLs that already carry an http(s)
// scheme pass through unchanged, so the function is idempotent. Empty input
// stays empty; relative paths are joined with exactly one slash.
func AbsoluteURL(base, u string) string {
	if u == "" {
		return ""
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(u, "/")
}
