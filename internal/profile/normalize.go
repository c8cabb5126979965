package profile

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"path"
	"strings"
)

var (
	errNotAbsolute = errors.New("must be an absolute URL")
	errScheme      = errors.New("must use http or https")
)

// NormalizeURL validates a profile link and returns its canonical form.
//
// Accepted links are absolute http(s) URLs with a host and no credentials.
// Normalization lower-cases the scheme and host, drops default ports, cleans
// the path and its trailing slash, and removes the fragment. The query is left
// untouched since some sites rely on its order.
func NormalizeURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("could not parse URL: %w", err)
	}

	if !u.IsAbs() || u.Host == "" {
		return "", errNotAbsolute
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", errScheme
	}
	if u.User != nil {
		return "", errors.New("must not contain credentials")
	}

	host := strings.ToLower(u.Host)
	if h, port, err := net.SplitHostPort(host); err == nil {
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			host = h
			if strings.Contains(h, ":") {
				host = "[" + h + "]"
			}
		}
	}
	u.Host = host

	if u.Path != "" {
		cleaned := path.Clean("/" + u.Path)
		if cleaned == "/" {
			cleaned = ""
		}
		u.Path = cleaned
		u.RawPath = ""
	}

	u.Fragment = ""
	u.RawFragment = ""

	return u.String(), nil
}
