package httpx

import "context"

type ctxKey string

const (
	CtxKeyDNI    ctxKey = "dni"
	CtxKeyTier   ctxKey = "tier"
	CtxKeyName   ctxKey = "name"
	CtxKeyClaims ctxKey = "claims" // full jwtx.Claims if needed downstream
)

// DNIFromCtx returns the authenticated member's DNI, or "" for admin
// sessions and unauthenticated requests.
func DNIFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyDNI).(string); ok {
		return v
	}
	return ""
}

// TierFromCtx returns the session tier, or "" if unauthenticated.
func TierFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyTier).(string); ok {
		return v
	}
	return ""
}

// NameFromCtx returns the member's display name from the session token.
func NameFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyName).(string); ok {
		return v
	}
	return ""
}
