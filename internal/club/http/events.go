package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/malliaquatic/clubd/internal/club/service"
	"github.com/malliaquatic/clubd/pkg/clubsdk"
	"github.com/malliaquatic/clubd/pkg/slogx"
)

// keepAliveInterval is how often an SSE comment is sent so proxies do
// not reap idle connections.
const keepAliveInterval = 25 * time.Second

// EventsHandler streams service notifications over Server-Sent Events.
type EventsHandler struct {
	Events *service.EventBus
}

// HandleStream handles GET /v1/events
//
//	@Summary		Live event stream
//	@Description	Server-Sent Events stream of change notifications. Events carry a topic
//	@Description	(config_updated, participants_updated, auth_changed) and clients refetch the
//	@Description	affected resource. The topics query parameter narrows the subscription.
//	@Tags			Events
//	@Security		BearerAuth
//	@Produce		text/event-stream
//	@Param			topics	query	string	false	"Comma-separated topic filter"
//	@Success		200		"Event stream"
//	@Router			/v1/events [get].
func (h *EventsHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		clubsdk.ErrServerError.WriteError(w)
		return
	}

	var topics []string
	if raw := r.URL.Query().Get("topics"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				topics = append(topics, t)
			}
		}
	}

	sub := h.Events.Subscribe(topics...)
	defer h.Events.Unsubscribe(sub)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	// Opening comment so EventSource fires its open event immediately.
	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	log := slogx.FromContext(r.Context())
	for {
		select {
		case <-r.Context().Done():
			return

		case evt, open := <-sub.Chan():
			if !open {
				return
			}
			payload, err := json.Marshal(evt)
			if err != nil {
				log.Error("encode event", "err", err)
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", evt.Topic, payload)
			flusher.Flush()

		case <-keepAlive.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		}
	}
}
