package auth

import (
	"encoding/json"
	"fmt"

	"github.com/nebari-dev/nebari-software-pack-template/internal/idtoken"
	"github.com/nebari-dev/nebari-software-pack-template/internal/logger"
)

const defaultUsername = "unknown"

// UserInfo is the fixed set of identity fields shown to the user. It is a
// projection of token claims for display only and carries no auth decision.
type UserInfo struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Groups   []string `json:"groups"`
	Roles    []string `json:"roles"`
}

// Principal is what the request knows about its caller. Authenticated is
// true whenever the gateway cookie is present, even if its token could not
// be decoded; UserInfo is nil otherwise.
type Principal struct {
	Authenticated bool
	UserInfo      *UserInfo
}

// NewUserInfo maps Keycloak-style claims onto a UserInfo. Missing claims
// take their defaults, so an empty Claims yields username "unknown".
func NewUserInfo(claims idtoken.Claims) UserInfo {
	info := UserInfo{
		Username: stringClaim(claims, "preferred_username", defaultUsername),
		Email:    stringClaim(claims, "email", ""),
		Name:     stringClaim(claims, "name", ""),
		Groups:   listClaim(claims, "groups"),
		Roles:    []string{},
	}

	if realm, ok := claims.Object("realm_access"); ok {
		info.Roles = listClaim(realm, "roles")
	}

	return info
}

// PrincipalFromToken builds the principal for a raw cookie value. A missing
// or empty value is unauthenticated.
func PrincipalFromToken(token string, found bool) Principal {
	if !found || token == "" {
		return Principal{}
	}

	claims := idtoken.Decode(token)
	if claims.Empty() {
		logger.Debug("identity token payload not decodable, using defaults", nil)
	}

	info := NewUserInfo(claims)
	return Principal{
		Authenticated: true,
		UserInfo:      &info,
	}
}

func stringClaim(claims idtoken.Claims, name, fallback string) string {
	v, ok := claims.Lookup(name)
	if !ok {
		return fallback
	}
	return text(v)
}

func listClaim(claims idtoken.Claims, name string) []string {
	out := []string{}

	v, ok := claims.Lookup(name)
	if !ok {
		return out
	}
	items, ok := v.([]any)
	if !ok {
		return out
	}

	for _, item := range items {
		out = append(out, text(item))
	}
	return out
}

// text renders a claim value for display: strings as-is, anything else as
// its JSON encoding.
func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
