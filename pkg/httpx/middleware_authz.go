package httpx

import "net/http"

var tierRank = map[string]int{
	"user":       1,
	"admin":      2,
	"superadmin": 3,
}

// RequireTier rejects requests whose session tier ranks below the given
// minimum. Tier checks happen server-side on every request; the client
// never decides its own privilege level.
func RequireTier(minimum string) Middleware {
	want := tierRank[minimum]
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			have := tierRank[TierFromCtx(r.Context())]
			if have == 0 || have < want {
				writeBearerTierError(w, minimum)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750-style error response for insufficient privilege.
func writeBearerTierError(w http.ResponseWriter, required string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope", scope="`+required+`"`)
	WriteJSON(w, http.StatusForbidden, map[string]string{
		"error":             "insufficient_tier",
		"error_description": "This operation requires " + required + " access.",
	})
}
