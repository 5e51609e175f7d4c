package idtoken

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"strings"
	"unicode/utf8"
)

const segmentCount = 3

// Decode returns the payload of a compact token without verifying it. The
// gateway that set the cookie has already checked the signature; header and
// signature segments are ignored here. Any malformed input yields empty
// Claims. Numbers are kept as json.Number so large integers stay exact.
func Decode(token string) Claims {
	parts := strings.Split(token, ".")
	if len(parts) != segmentCount {
		return Claims{}
	}

	raw, err := base64.URLEncoding.DecodeString(pad(parts[1]))
	if err != nil {
		return Claims{}
	}
	if !utf8.Valid(raw) {
		return Claims{}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var claims Claims
	if err := dec.Decode(&claims); err != nil || claims == nil {
		return Claims{}
	}
	// only whitespace may follow the object
	if _, err := dec.Token(); err != io.EOF {
		return Claims{}
	}
	return claims
}

// pad appends '=' until len(seg) is a multiple of 4.
func pad(seg string) string {
	if n := 4 - len(seg)%4; n != 4 {
		seg += strings.Repeat("=", n)
	}
	return seg
}
