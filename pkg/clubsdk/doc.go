// Package clubsdk is a typed Go client for the club service HTTP API.
//
// The zero-dependency flow is:
//
//	client := clubsdk.NewClient("http://localhost:8080")
//	session, err := client.Login(ctx, "12345678", "12345678")
//	if err != nil { ... }
//	if err := session.Join(ctx); err != nil { ... }
//
// Unauthenticated operations (health, public config, login, register)
// live on Client; everything else lives on Session, which attaches the
// bearer token issued at login. Server error bodies are surfaced as
// *APIError values so callers can switch on the error code.
package clubsdk
