package http

import (
	"net/http"

	"github.com/malliaquatic/clubd/internal/club/service"
	"github.com/malliaquatic/clubd/pkg/clubsdk"
	"github.com/malliaquatic/clubd/pkg/httpx"
)

// MFAHandler covers the super admin's authenticator enrollment.
type MFAHandler struct {
	AuthService *service.AuthService
}

type mfaVerifyRequest struct {
	Code string `json:"code"`
}

// HandleEnroll handles POST /v1/admin/mfa/enroll
//
//	@Summary		Enroll an authenticator
//	@Description	Generates a TOTP secret for the super admin. The secret stays pending until a
//	@Description	live code is verified; it is shown exactly once.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	clubsdk.MFAEnrollResponse	"Secret and otpauth URL"
//	@Failure		409	{object}	clubsdk.ErrorResponse		"Already enrolled"
//	@Router			/v1/admin/mfa/enroll [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	enroll, err := h.AuthService.EnrollTOTP(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clubsdk.MFAEnrollResponse{
		Secret:     enroll.Secret,
		OTPAuthURL: enroll.OTPAuthURL,
	})
}

// HandleVerify handles POST /v1/admin/mfa/verify
//
//	@Summary		Verify enrollment
//	@Description	Confirms a pending enrollment with a live code and activates the second factor
//	@Description	for future PIN elevations.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Param			request	body	mfaVerifyRequest	true	"Six-digit code"
//	@Success		204		"Authenticator active"
//	@Failure		401		{object}	clubsdk.ErrorResponse	"Bad code"
//	@Failure		409		{object}	clubsdk.ErrorResponse	"No enrollment pending"
//	@Router			/v1/admin/mfa/verify [post].
func (h *MFAHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req mfaVerifyRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		return
	}

	if err := h.AuthService.VerifyTOTP(r.Context(), req.Code); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
