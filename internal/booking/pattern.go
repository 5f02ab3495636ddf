// Package booking finds Deutsche Bahn booking links in free-form text.
package booking

import (
	"fmt"
	"net/url"
	"strings"
)

// Pattern is the host and path shape a booking link must have.
type Pattern struct {
	Host       string // registrable domain; subdomains match too
	PathPrefix string // first path segments of the booking flow
}

// DefaultPattern is the recognized Deutsche Bahn booking flow.
var DefaultPattern = Pattern{
	Host:       "bahn.de",
	PathPrefix: "/buchung/start",
}

// Reasons reported for rejected candidates.
const (
	ReasonUnparseable = "unparseable"
	ReasonScheme      = "scheme"
	ReasonHost        = "host"
	ReasonPath        = "path"
)

var allowedSchemes = map[string]bool{"http": true, "https": true}

// Normalized returns the pattern with a lowercase host and a rooted prefix.
// Empty fields fall back to DefaultPattern.
func (p Pattern) Normalized() Pattern {
	host := strings.ToLower(strings.TrimSpace(p.Host))
	host = strings.Trim(host, ".")
	if host == "" {
		host = DefaultPattern.Host
	}

	prefix := strings.TrimSpace(p.PathPrefix)
	if prefix == "" {
		prefix = DefaultPattern.PathPrefix
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	if len(prefix) > 1 {
		prefix = strings.TrimSuffix(prefix, "/")
	}

	return Pattern{Host: host, PathPrefix: prefix}
}

// Hint describes the expected link shape for user-facing messages.
func (p Pattern) Hint() string {
	n := p.Normalized()
	return fmt.Sprintf("from %s with %s path", n.Host, n.PathPrefix)
}

// Check reports whether u is a booking link. When it is not, the returned
// reason names the first failed check.
func (p Pattern) Check(u *url.URL) (string, bool) {
	n := p.Normalized()

	if !allowedSchemes[strings.ToLower(u.Scheme)] {
		return ReasonScheme, false
	}
	if !n.hostMatches(u.Hostname()) {
		return ReasonHost, false
	}
	if !n.pathMatches(u.Path) {
		return ReasonPath, false
	}
	return "", true
}

func (p Pattern) hostMatches(host string) bool {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if host == "" {
		return false
	}
	return host == p.Host || strings.HasSuffix(host, "."+p.Host)
}

// pathMatches requires the prefix to end on a segment boundary, so
// /buchung/start and /buchung/start/x match but /buchung/starting does not.
func (p Pattern) pathMatches(path string) bool {
	if p.PathPrefix == "/" {
		return strings.HasPrefix(path, "/")
	}
	if !strings.HasPrefix(path, p.PathPrefix) {
		return false
	}
	rest := path[len(p.PathPrefix):]
	return rest == "" || rest[0] == '/'
}
