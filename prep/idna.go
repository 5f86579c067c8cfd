// File: prep/idna.go
//
// Package prep normalizes hostnames into their IDNA (internationalized
// domain name) ASCII-compatible form. It is applied once, at connection
// construction time.

package prep

import (
	"strings"

	"golang.org/x/net/idna"
)

// Idna converts host to its ASCII-compatible (punycode) encoding. The
// second return value reports whether conversion succeeded; on failure the
// returned string is empty.
func Idna(host string) (string, bool) {
	host = strings.TrimSpace(host)
	if host == "" {
		return "", false
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return "", false
	}
	return ascii, true
}
