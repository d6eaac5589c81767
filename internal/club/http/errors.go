package http

import (
	"errors"
	"net/http"

	"github.com/malliaquatic/clubd/internal/club/service"
	"github.com/malliaquatic/clubd/pkg/clubsdk"
	"github.com/malliaquatic/clubd/pkg/slogx"
)

// writeServiceError maps service sentinel errors onto the shared API
// error bodies. Unknown errors become a logged 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		clubsdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrInvalidDNI):
		clubsdk.NewAPIError(http.StatusBadRequest,
			clubsdk.ErrorCodeInvalidRequest, "dni must be exactly 8 digits").WriteError(w)
	case errors.Is(err, service.ErrNameRequired):
		clubsdk.NewAPIError(http.StatusBadRequest,
			clubsdk.ErrorCodeInvalidRequest, "name is required").WriteError(w)
	case errors.Is(err, service.ErrAdminDisabled):
		clubsdk.NewAPIError(http.StatusForbidden,
			"admin_access_disabled", "Admin access is currently disabled.").WriteError(w)
	case errors.Is(err, service.ErrTOTPRequired):
		clubsdk.ErrTOTPRequired.WriteError(w)
	case errors.Is(err, service.ErrInvalidTOTPCode):
		clubsdk.NewAPIError(http.StatusUnauthorized,
			clubsdk.ErrorCodeInvalidCredentials, "invalid one-time code").WriteError(w)
	case errors.Is(err, service.ErrMFAAlreadyEnabled):
		clubsdk.NewAPIError(http.StatusConflict,
			clubsdk.ErrorCodeConflict, "an authenticator is already enrolled").WriteError(w)
	case errors.Is(err, service.ErrMFANotEnrolled):
		clubsdk.NewAPIError(http.StatusConflict,
			clubsdk.ErrorCodeConflict, "no enrollment is pending").WriteError(w)
	case errors.Is(err, service.ErrUserNotFound):
		clubsdk.NewAPIError(http.StatusNotFound,
			"user_not_found", "no account is registered for this DNI").WriteError(w)
	case errors.Is(err, service.ErrNotJoined):
		clubsdk.NewAPIError(http.StatusNotFound,
			clubsdk.ErrorCodeNotFound, "not currently in the raffle").WriteError(w)
	case errors.Is(err, service.ErrNoParticipants):
		clubsdk.NewAPIError(http.StatusConflict,
			clubsdk.ErrorCodeConflict, "the raffle has no participants").WriteError(w)
	case errors.Is(err, service.ErrWinnerExists):
		clubsdk.NewAPIError(http.StatusConflict,
			clubsdk.ErrorCodeConflict, "a winner has already been drawn").WriteError(w)
	case errors.Is(err, service.ErrInvalidConfigPatch):
		clubsdk.NewAPIError(http.StatusBadRequest,
			clubsdk.ErrorCodeInvalidRequest, "malformed config document").WriteError(w)
	case errors.Is(err, service.ErrInvalidAppStatus):
		clubsdk.NewAPIError(http.StatusBadRequest,
			clubsdk.ErrorCodeInvalidRequest, `appStatus must be "active" or "maintenance"`).WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		clubsdk.ErrServerError.WriteError(w)
	}
}
