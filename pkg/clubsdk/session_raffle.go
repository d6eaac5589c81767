package clubsdk

import (
	"context"
	"net/http"
)

// Join enters the caller into the raffle. Re-joining is idempotent at
// the HTTP level but restarts the entry's joined-at clock.
func (s *Session) Join(ctx context.Context) (*Participant, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/raffle/join", nil)
	if err != nil {
		return nil, err
	}

	var p Participant
	if err := decodeJSON(resp, &p, http.StatusCreated); err != nil {
		return nil, err
	}
	return &p, nil
}

// Heartbeat refreshes the caller's online presence. It succeeds as a
// no-op when the caller is not currently in the raffle.
func (s *Session) Heartbeat(ctx context.Context) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/raffle/heartbeat", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Leave removes the caller from the raffle and records a departure.
func (s *Session) Leave(ctx context.Context) error {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/raffle/leave", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Participants lists the current raffle entries with presence flags.
func (s *Session) Participants(ctx context.Context) ([]Participant, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/raffle/participants", nil)
	if err != nil {
		return nil, err
	}

	var out []Participant
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// Status returns the raffle summary, including the winner once drawn.
func (s *Session) Status(ctx context.Context) (*RaffleStatus, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/raffle/status", nil)
	if err != nil {
		return nil, err
	}

	var st RaffleStatus
	if err := decodeJSON(resp, &st, http.StatusOK); err != nil {
		return nil, err
	}
	return &st, nil
}

// Draw selects a winner uniformly at random among current participants.
// Requires admin tier. Fails with 409 if a winner already exists or the
// raffle is empty.
func (s *Session) Draw(ctx context.Context) (*Winner, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/raffle/draw", nil)
	if err != nil {
		return nil, err
	}

	var w Winner
	if err := decodeJSON(resp, &w, http.StatusOK); err != nil {
		return nil, err
	}
	return &w, nil
}

// ClearWinner resets the raffle so a new draw can happen. Requires admin
// tier.
func (s *Session) ClearWinner(ctx context.Context) error {
	resp, err := s.doAuthJSON(ctx, http.MethodDelete, "/v1/raffle/winner", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Unregister deletes the caller's account, raffle entry and all. The
// session token becomes useless afterwards.
func (s *Session) Unregister(ctx context.Context) error {
	resp, err := s.doAuthJSON(ctx, http.MethodDelete, "/v1/users/me", nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
