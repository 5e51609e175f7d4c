// Package idtokentest mints gateway-style identity tokens for tests.
package idtokentest

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nebari-dev/nebari-software-pack-template/internal/idtoken"
)

// Unsigned builds an unsecured compact token around claims. The signature
// segment is empty.
func Unsigned(t testing.TB, claims idtoken.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims(claims))
	s, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("idtokentest: sign unsecured token: %v", err)
	}
	return s
}

// Signed builds an HS256 token, the way a gateway would hand it over.
func Signed(t testing.TB, claims idtoken.Claims, key []byte) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims(claims)).SignedString(key)
	if err != nil {
		t.Fatalf("idtokentest: sign token: %v", err)
	}
	return s
}
