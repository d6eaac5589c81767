package http

import (
	"encoding/json"
	"net/http"

	"github.com/malliaquatic/clubd/internal/club/domain"
	"github.com/malliaquatic/clubd/internal/club/service"
	"github.com/malliaquatic/clubd/pkg/clubsdk"
	"github.com/malliaquatic/clubd/pkg/httpx"
)

// AuthHandler handles registration, login and PIN elevation.
type AuthHandler struct {
	AuthService *service.AuthService
}

type registerRequest struct {
	DNI      string `json:"dni"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	DNI      string `json:"dni"`
	Password string `json:"password"`
}

type adminPINRequest struct {
	PIN      string `json:"pin"`
	TOTPCode string `json:"totp_code"`
}

// HandleRegister handles POST /v1/auth/register
//
//	@Summary		Register a member
//	@Description	Creates (or overwrites) a member account keyed by DNI and returns a logged-in
//	@Description	session token. An empty password defaults to the DNI.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		registerRequest			true	"DNI, display name and optional password"
//	@Success		201		{object}	clubsdk.TokenResponse	"Session token"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"Invalid DNI or missing name"
//	@Failure		429		{object}	clubsdk.ErrorResponse	"Rate limit exceeded"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	grant, err := h.AuthService.Register(r.Context(), req.DNI, req.Name, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeGrant(w, http.StatusCreated, grant)
}

// HandleLogin handles POST /v1/auth/login
//
//	@Summary		Member login
//	@Description	Authenticates a member by DNI and password. An unknown DNI answers 404 so
//	@Description	the client can offer registration instead of a password retry.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest			true	"DNI and password"
//	@Success		200		{object}	clubsdk.TokenResponse	"Session token"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"Malformed DNI"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"Wrong password"
//	@Failure		404		{object}	clubsdk.ErrorResponse	"No account for this DNI"
//	@Failure		429		{object}	clubsdk.ErrorResponse	"Rate limit exceeded"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	grant, err := h.AuthService.Login(r.Context(), req.DNI, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeGrant(w, http.StatusOK, grant)
}

// HandleAdminPIN handles POST /v1/auth/admin/pin
//
//	@Summary		Elevate with an access PIN
//	@Description	Exchanges an access PIN for an admin or super admin session. Once the super
//	@Description	admin has enrolled an authenticator, a one-time code is also required and a
//	@Description	409 with code "totp_required" is returned when it is missing.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		adminPINRequest			true	"PIN and optional one-time code"
//	@Success		200		{object}	clubsdk.TokenResponse	"Elevated session token"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"Unknown PIN or bad one-time code"
//	@Failure		403		{object}	clubsdk.ErrorResponse	"Admin access disabled"
//	@Failure		409		{object}	clubsdk.ErrorResponse	"One-time code required"
//	@Router			/v1/auth/admin/pin [post].
func (h *AuthHandler) HandleAdminPIN(w http.ResponseWriter, r *http.Request) {
	var req adminPINRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		clubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	grant, err := h.AuthService.AdminPIN(r.Context(), req.PIN, req.TOTPCode)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeGrant(w, http.StatusOK, grant)
}

// HandleLogout handles POST /v1/auth/logout
//
//	@Summary		Logout
//	@Description	Ends the session and broadcasts the change. Tokens are stateless, so
//	@Description	clients discard the token.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Success		204	"Logged out"
//	@Router			/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.AuthService.Logout(ctx, domain.Tier(httpx.TierFromCtx(ctx)), httpx.DNIFromCtx(ctx))
	w.WriteHeader(http.StatusNoContent)
}

func writeGrant(w http.ResponseWriter, code int, grant service.TokenGrant) {
	httpx.WriteJSON(w, code, clubsdk.TokenResponse{
		Token:     grant.Token,
		TokenType: "Bearer",
		ExpiresIn: grant.ExpiresIn,
		Tier:      string(grant.Tier),
		Name:      grant.Name,
	})
}
