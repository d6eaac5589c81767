package http

import (
	"io"
	"net/http"

	"github.com/malliaquatic/clubd/internal/club/domain"
	"github.com/malliaquatic/clubd/internal/club/service"
	"github.com/malliaquatic/clubd/pkg/clubsdk"
	"github.com/malliaquatic/clubd/pkg/httpx"
)

const maxConfigBody = 64 << 10 // the document is a handful of texts

// ConfigHandler serves and updates the singleton config document.
type ConfigHandler struct {
	ConfigService *service.ConfigService
}

// HandleGet handles GET /v1/config
//
//	@Summary		Public config document
//	@Description	Returns the merged config. The winner is only included for admin sessions;
//	@Description	members learn about it through their raffle status.
//	@Tags			Config
//	@Produce		json
//	@Success		200	{object}	clubsdk.Config	"Config document"
//	@Router			/v1/config [get].
func (h *ConfigHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	includeWinner := domain.Tier(httpx.TierFromCtx(r.Context())).AtLeast(domain.TierAdmin)
	cfg := h.ConfigService.Get(r.Context()).Redacted(includeWinner)
	httpx.WriteJSON(w, http.StatusOK, cfg)
}

// HandlePut handles PUT /v1/config
//
//	@Summary		Save the config document
//	@Description	Merges a partial document over the stored one and persists it. Writes are
//	@Description	last-write-wins; the winner and MFA enrollment are owned by their own
//	@Description	endpoints and survive any patch.
//	@Tags			Config
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubsdk.Config			true	"Partial config document"
//	@Success		200		{object}	clubsdk.Config			"Merged document"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"Malformed patch"
//	@Failure		403		{object}	clubsdk.ErrorResponse	"Insufficient tier"
//	@Router			/v1/config [put].
func (h *ConfigHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	patch, err := io.ReadAll(io.LimitReader(r.Body, maxConfigBody))
	if err != nil {
		clubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	cfg, err := h.ConfigService.SavePartial(r.Context(), patch)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, cfg.Redacted(true))
}

// ControlHandler flips the operator switches on the config document.
type ControlHandler struct {
	ConfigService *service.ConfigService
}

// HandleControl handles PUT /v1/admin/control
//
//	@Summary		Operator switches
//	@Description	Toggles app status, the admin access gate, the license counter and the
//	@Description	backup flag. Omitted fields are unchanged.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clubsdk.ControlRequest	true	"Switches to flip"
//	@Success		200		{object}	clubsdk.Config			"Updated document"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"Invalid app status"
//	@Failure		403		{object}	clubsdk.ErrorResponse	"Insufficient tier"
//	@Router			/v1/admin/control [put].
func (h *ControlHandler) HandleControl(w http.ResponseWriter, r *http.Request) {
	var req clubsdk.ControlRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		return
	}

	cfg, err := h.ConfigService.Control(r.Context(), service.ControlPatch{
		AppStatus:          req.AppStatus,
		AdminAccessEnabled: req.AdminAccessEnabled,
		LicenseDays:        req.LicenseDays,
		AutoBackup:         req.AutoBackup,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, cfg.Redacted(true))
}
