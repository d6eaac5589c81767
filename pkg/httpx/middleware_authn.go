package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/malliaquatic/clubd/pkg/jwtx"
	"github.com/malliaquatic/clubd/pkg/slogx"
)

// AuthnMiddleware verifies the bearer session token and injects the
// caller's identity into the request context. Tokens are read from the
// Authorization header, with an RFC 6750 access_token query parameter
// fallback for EventSource clients that cannot set headers.
func AuthnMiddleware(v *jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := bearerToken(r)
			if raw == "" {
				writeBearerError(w, "missing bearer token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				log.Warn("session token verify failed", "err", err)
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuthnMiddleware verifies the bearer token when one is sent
// and lets anonymous requests through with no identity in the context.
// Routes that serve both a public and an elevated view use this; a
// token that is present but invalid is still rejected so a stale admin
// session cannot silently read the public variant.
func OptionalAuthnMiddleware(v *jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw := bearerToken(r)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				writeBearerError(w, "token verification failed")
				slogx.FromContext(ctx).Warn("session token verify failed", "err", err)
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithAuth(ctx, claims)))
		})
	}
}

func bearerToken(r *http.Request) string {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
	}
	return r.URL.Query().Get("access_token")
}

func contextWithAuth(ctx context.Context, c *jwtx.Claims) context.Context {
	if c.Tier == "user" {
		ctx = context.WithValue(ctx, CtxKeyDNI, c.Subject)
	}
	ctx = context.WithValue(ctx, CtxKeyTier, c.Tier)
	ctx = context.WithValue(ctx, CtxKeyName, c.Name)
	ctx = context.WithValue(ctx, CtxKeyClaims, *c)
	return ctx
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
