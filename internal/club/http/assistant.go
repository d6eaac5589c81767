package http

import (
	"net/http"
	"strings"

	"github.com/malliaquatic/clubd/internal/club/domain"
	"github.com/malliaquatic/clubd/internal/club/service"
	"github.com/malliaquatic/clubd/pkg/clubsdk"
	"github.com/malliaquatic/clubd/pkg/httpx"
)

// AssistantHandler fronts the poolside chat assistant.
type AssistantHandler struct {
	AssistantService *service.AssistantService
}

type chatRequest struct {
	Message string               `json:"message"`
	History []domain.ChatMessage `json:"history"`
}

// HandleChat handles POST /v1/assistant/chat
//
//	@Summary		Ask the assistant
//	@Description	One conversation turn. The full history travels with the request; the server
//	@Description	keeps no chat state. Upstream failures come back as a polite apology, never an
//	@Description	error status.
//	@Tags			Assistant
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		chatRequest				true	"Message and prior turns"
//	@Success		200		{object}	clubsdk.ChatReply		"Assistant reply"
//	@Failure		400		{object}	clubsdk.ErrorResponse	"Empty message"
//	@Router			/v1/assistant/chat [post].
func (h *AssistantHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		clubsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	reply, err := h.AssistantService.Chat(r.Context(), req.Message, req.History)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, reply)
}
