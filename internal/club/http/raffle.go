package http

import (
	"net/http"
	"strconv"

	"github.com/malliaquatic/clubd/internal/club/service"
	"github.com/malliaquatic/clubd/pkg/clubsdk"
	"github.com/malliaquatic/clubd/pkg/httpx"
)

// RaffleHandler covers raffle entries, presence and the draw.
type RaffleHandler struct {
	RaffleService *service.RaffleService
}

// HandleJoin handles POST /v1/raffle/join
//
//	@Summary		Join the raffle
//	@Description	Enters the caller into the raffle. Re-joining replaces the entry and restarts
//	@Description	its joined-at clock.
//	@Tags			Raffle
//	@Security		BearerAuth
//	@Produce		json
//	@Success		201	{object}	clubsdk.Participant		"The caller's entry"
//	@Failure		404	{object}	clubsdk.ErrorResponse	"Account no longer exists"
//	@Failure		503	{object}	clubsdk.ErrorResponse	"Maintenance mode"
//	@Router			/v1/raffle/join [post].
func (h *RaffleHandler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	view, err := h.RaffleService.Join(r.Context(), httpx.DNIFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, view)
}

// HandleHeartbeat handles POST /v1/raffle/heartbeat
//
//	@Summary		Presence heartbeat
//	@Description	Refreshes the caller's last-seen time. A no-op when the caller is not in the
//	@Description	raffle, so a stale tab can never resurrect a departed entry.
//	@Tags			Raffle
//	@Security		BearerAuth
//	@Success		204	"Presence refreshed"
//	@Router			/v1/raffle/heartbeat [post].
func (h *RaffleHandler) HandleHeartbeat(w http.ResponseWriter, r *http.Request) {
	if err := h.RaffleService.Heartbeat(r.Context(), httpx.DNIFromCtx(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleLeave handles POST /v1/raffle/leave
//
//	@Summary		Leave the raffle
//	@Description	Removes the caller's entry and records a departure for the admin log.
//	@Tags			Raffle
//	@Security		BearerAuth
//	@Success		204	"Entry removed"
//	@Failure		404	{object}	clubsdk.ErrorResponse	"Not currently in the raffle"
//	@Router			/v1/raffle/leave [post].
func (h *RaffleHandler) HandleLeave(w http.ResponseWriter, r *http.Request) {
	if err := h.RaffleService.Leave(r.Context(), httpx.DNIFromCtx(r.Context())); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleParticipants handles GET /v1/raffle/participants
//
//	@Summary		List participants
//	@Description	Current raffle entries with names and a presence flag computed against the
//	@Description	online window.
//	@Tags			Raffle
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	clubsdk.Participant	"Current entries"
//	@Router			/v1/raffle/participants [get].
func (h *RaffleHandler) HandleParticipants(w http.ResponseWriter, r *http.Request) {
	views, err := h.RaffleService.Participants(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, views)
}

// HandleStatus handles GET /v1/raffle/status
//
//	@Summary		Raffle status
//	@Description	Participant counts, whether the caller is entered, and the winner once drawn.
//	@Tags			Raffle
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	clubsdk.RaffleStatus	"Raffle summary"
//	@Router			/v1/raffle/status [get].
func (h *RaffleHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	st, err := h.RaffleService.Status(r.Context(), httpx.DNIFromCtx(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, st)
}

// HandleDraw handles POST /v1/raffle/draw
//
//	@Summary		Draw a winner
//	@Description	Picks one current participant uniformly at random and stamps it onto the
//	@Description	config document. Fails with 409 if a winner exists or the raffle is empty.
//	@Tags			Raffle
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	clubsdk.Winner			"The drawn winner"
//	@Failure		409	{object}	clubsdk.ErrorResponse	"Winner exists or raffle empty"
//	@Router			/v1/raffle/draw [post].
func (h *RaffleHandler) HandleDraw(w http.ResponseWriter, r *http.Request) {
	winner, err := h.RaffleService.Draw(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, winner)
}

// HandleClearWinner handles DELETE /v1/raffle/winner
//
//	@Summary		Clear the winner
//	@Description	Re-opens the raffle so a new draw can happen.
//	@Tags			Raffle
//	@Security		BearerAuth
//	@Success		204	"Winner cleared"
//	@Router			/v1/raffle/winner [delete].
func (h *RaffleHandler) HandleClearWinner(w http.ResponseWriter, r *http.Request) {
	if err := h.RaffleService.ClearWinner(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDepartures handles GET /v1/admin/departures
//
//	@Summary		Recent departures
//	@Description	Most recent raffle departures, newest first. The limit query parameter caps
//	@Description	the result; the server default applies otherwise.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int						false	"Max records"
//	@Success		200		{array}		clubsdk.Departure		"Departure records"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"Bad limit"
//	@Router			/v1/admin/departures [get].
func (h *RaffleHandler) HandleDepartures(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			clubsdk.ErrInvalidRequest.WriteError(w)
			return
		}
		limit = n
	}

	deps, err := h.RaffleService.Departures(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, deps)
}
