package clubsdk

import (
	"context"
	"net/http"
	"strconv"
)

// SaveConfig sends a partial config document; fields absent from the
// patch keep their stored value. Returns the merged result. Requires
// admin tier.
func (s *Session) SaveConfig(ctx context.Context, patch map[string]any) (*Config, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPut, "/v1/config", patch)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := decodeJSON(resp, &cfg, http.StatusOK); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Control flips the operator switches (app status, admin gate, license
// counter, backup flag). Requires superadmin tier.
func (s *Session) Control(ctx context.Context, req ControlRequest) (*Config, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPut, "/v1/admin/control", req)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := decodeJSON(resp, &cfg, http.StatusOK); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Departures lists the most recent raffle departures, newest first.
// limit <= 0 uses the server default. Requires admin tier.
func (s *Session) Departures(ctx context.Context, limit int) ([]Departure, error) {
	path := "/v1/admin/departures"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	resp, err := s.doAuthJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var out []Departure
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// Users lists the registered member directory. Requires admin tier.
func (s *Session) Users(ctx context.Context) ([]UserSummary, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/admin/users", nil)
	if err != nil {
		return nil, err
	}

	var out []UserSummary
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// Export fetches the full backup document. Requires superadmin tier.
func (s *Session) Export(ctx context.Context) (*ExportDocument, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/admin/export", nil)
	if err != nil {
		return nil, err
	}

	var doc ExportDocument
	if err := decodeJSON(resp, &doc, http.StatusOK); err != nil {
		return nil, err
	}
	return &doc, nil
}

// MFAEnroll provisions a TOTP secret for the super admin. The secret is
// not active until verified with MFAVerify. Requires superadmin tier.
func (s *Session) MFAEnroll(ctx context.Context) (*MFAEnrollResponse, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/admin/mfa/enroll", nil)
	if err != nil {
		return nil, err
	}

	var enroll MFAEnrollResponse
	if err := decodeJSON(resp, &enroll, http.StatusOK); err != nil {
		return nil, err
	}
	return &enroll, nil
}

// MFAVerify confirms a pending TOTP enrollment with a live code.
// Requires superadmin tier.
func (s *Session) MFAVerify(ctx context.Context, code string) error {
	body := map[string]string{"code": code}

	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/admin/mfa/verify", body)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Chat sends a message to the poolside assistant, with optional prior
// turns for context.
func (s *Session) Chat(ctx context.Context, message string, history []ChatMessage) (*ChatReply, error) {
	body := struct {
		Message string        `json:"message"`
		History []ChatMessage `json:"history,omitempty"`
	}{Message: message, History: history}

	resp, err := s.doAuthJSON(ctx, http.MethodPost, "/v1/assistant/chat", body)
	if err != nil {
		return nil, err
	}

	var reply ChatReply
	if err := decodeJSON(resp, &reply, http.StatusOK); err != nil {
		return nil, err
	}
	return &reply, nil
}

// RawConfig fetches the config as loose JSON, useful for tooling that
// round-trips unknown fields.
func (s *Session) RawConfig(ctx context.Context) (map[string]any, error) {
	resp, err := s.doAuthJSON(ctx, http.MethodGet, "/v1/config", nil)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := decodeJSON(resp, &raw, http.StatusOK); err != nil {
		return nil, err
	}
	return raw, nil
}
