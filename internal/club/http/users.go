package http

import (
	"net/http"

	"github.com/malliaquatic/clubd/internal/club/service"
	"github.com/malliaquatic/clubd/pkg/httpx"
)

// UsersHandler covers the member directory and account removal.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleUnregister handles DELETE /v1/users/me
//
//	@Summary		Delete own account
//	@Description	Removes the caller's account, raffle entry and all. Works during maintenance
//	@Description	so members can always take their data out.
//	@Tags			Users
//	@Security		BearerAuth
//	@Success		204	"Account deleted"
//	@Failure		404	{object}	clubsdk.ErrorResponse	"Account already gone"
//	@Router			/v1/users/me [delete].
func (h *UsersHandler) HandleUnregister(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.Unregister(r.Context(), httpx.DNIFromCtx(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleList handles GET /v1/admin/users
//
//	@Summary		Member directory
//	@Description	All registered members, newest first. Password hashes never leave the server.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	clubsdk.UserSummary	"Registered members"
//	@Router			/v1/admin/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, users)
}

// ExportHandler serves the full backup document.
type ExportHandler struct {
	ExportService *service.ExportService
}

// HandleExport handles GET /v1/admin/export
//
//	@Summary		Export everything
//	@Description	One JSON document with the config, member directory, raffle entries and
//	@Description	departure log. Sections are read sequentially, not as a snapshot.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	clubsdk.ExportDocument	"Backup document"
//	@Router			/v1/admin/export [get].
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	doc, err := h.ExportService.Export(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="club-export.json"`)
	httpx.WriteJSON(w, http.StatusOK, doc)
}
