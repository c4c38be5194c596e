// Package urlutil provides URL parsing and redirect resolution.
package urlutil

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Target is a parsed request target.
type Target struct {
	// URL scheme: "http" or "https"
	Scheme string

	// Hostname without port
	Host string

	// Port, defaulted from the scheme when absent
	Port int

	// Path including query string, never empty
	Path string
}

// ParseTarget parses an absolute http/https URL into a Target.
func ParseTarget(rawURL string) (Target, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Target{}, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return Target{}, fmt.Errorf("unsupported scheme %q in %q", u.Scheme, rawURL)
	}
	if u.Hostname() == "" {
		return Target{}, fmt.Errorf("missing host in %q", rawURL)
	}

	port := 80
	if scheme == "https" {
		port = 443
	}
	if p := u.Port(); p != "" {
		port, err = strconv.Atoi(p)
		if err != nil {
			return Target{}, fmt.Errorf("invalid port in %q: %w", rawURL, err)
		}
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}

	return Target{
		Scheme: scheme,
		Host:   strings.ToLower(u.Hostname()),
		Port:   port,
		Path:   path,
	}, nil
}

// HostPort returns the host with the port appended when it differs from the
// scheme's default.
func (t Target) HostPort() string {
	if (t.Scheme == "http" && t.Port == 80) || (t.Scheme == "https" && t.Port == 443) {
		return t.Host
	}
	return t.Host + ":" + strconv.Itoa(t.Port)
}

// Address returns the dialable host:port pair.
func (t Target) Address() string {
	return t.Host + ":" + strconv.Itoa(t.Port)
}

// String reassembles the absolute URL.
func (t Target) String() string {
	return t.Scheme + "://" + t.HostPort() + t.Path
}

// ResolveRedirect resolves a Location header value against the URL that
// produced it. Absolute locations pass through unchanged; locations starting
// with "/" are joined to the origin; anything else is joined below the origin
// root. Dot segments and percent escapes are left untouched.
func ResolveRedirect(base Target, location string) string {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return location
	}

	origin := base.Scheme + "://" + base.HostPort()
	if strings.HasPrefix(location, "/") {
		return origin + location
	}
	return origin + "/" + location
}

// IsAbsoluteURL checks if a URL carries a scheme and host.
func IsAbsoluteURL(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.IsAbs()
}

// ExtractHost extracts the lowercased host (with port, if any) from a URL.
func ExtractHost(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	return strings.ToLower(u.Host), nil
}
