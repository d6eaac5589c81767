package http

import (
	"net/http"

	"github.com/malliaquatic/clubd/internal/club/domain"
	"github.com/malliaquatic/clubd/internal/club/service"
	"github.com/malliaquatic/clubd/pkg/httpx"
)

// MaintenanceMiddleware returns 503 with the maintenance texts while the
// app status is flipped to maintenance. Admin-tier sessions pass through
// so staff can keep working; the maintenance page itself is rendered by
// the client from the public config, which is never gated.
func MaintenanceMiddleware(cfg *service.ConfigService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			conf := cfg.Get(r.Context())
			if !conf.Maintenance() {
				next.ServeHTTP(w, r)
				return
			}

			if domain.Tier(httpx.TierFromCtx(r.Context())).AtLeast(domain.TierAdmin) {
				next.ServeHTTP(w, r)
				return
			}

			httpx.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"error":             "maintenance",
				"error_description": conf.MaintenanceMessage,
				"title":             conf.MaintenanceTitle,
				"subtitle":          conf.MaintenanceSubtitle,
			})
		})
	}
}

// AdminGateMiddleware re-checks elevated sessions against the live
// adminAccessEnabled switch. Flipping the switch locks out existing
// admin tokens immediately; super admin sessions are never gated.
func AdminGateMiddleware(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tier := domain.Tier(httpx.TierFromCtx(r.Context()))
			if !auth.AdminTierAllowed(r.Context(), tier) {
				httpx.WriteError(w, http.StatusForbidden,
					"admin_access_disabled", "Admin access is currently disabled.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
