package idtoken

import (
	"net/http"
	"strings"
)

// CookiePrefix is the name prefix of the cookie the gateway's OIDC filter
// sets. The suffix is derived from the security policy and is not checked.
const CookiePrefix = "IdToken-"

// Select returns the value of the first cookie whose name starts with
// CookiePrefix. Cookies are scanned in the order given, which for
// (*http.Request).Cookies is the order of the Cookie header.
func Select(cookies []*http.Cookie) (string, bool) {
	for _, c := range cookies {
		if c == nil {
			continue
		}
		if strings.HasPrefix(c.Name, CookiePrefix) {
			return c.Value, true
		}
	}
	return "", false
}

// FromRequest extracts the raw identity token from r.
func FromRequest(r *http.Request) (string, bool) {
	return Select(r.Cookies())
}
