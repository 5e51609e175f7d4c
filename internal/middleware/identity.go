package middleware

import (
	"context"
	"net/http"

	"github.com/nebari-dev/nebari-software-pack-template/internal/auth"
	"github.com/nebari-dev/nebari-software-pack-template/internal/idtoken"
)

// unexported, collision-proof context key
type principalContextKeyType struct{}

var principalKey = principalContextKeyType{}

// PrincipalFromContext returns the principal attached by Identity. Requests
// that did not pass through Identity are unauthenticated.
func PrincipalFromContext(ctx context.Context) auth.Principal {
	p, _ := ctx.Value(principalKey).(auth.Principal)
	return p
}

// Identity reads the gateway's IdToken cookie and attaches the resulting
// principal to the request context. It never rejects a request: signature
// checks and login redirects belong to the gateway.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, found := idtoken.FromRequest(r)
		p := auth.PrincipalFromToken(token, found)

		ctx := context.WithValue(r.Context(), principalKey, p)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
