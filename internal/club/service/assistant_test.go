package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/malliaquatic/clubd/internal/club/domain"
	"github.com/stretchr/testify/require"
)

func newAssistant(t *testing.T, upstream http.HandlerFunc) *AssistantService {
	t.Helper()

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	cfg, _ := newConfigService()
	return &AssistantService{
		APIKey:     "test-key",
		Model:      "gemini-2.0-flash",
		BaseURL:    srv.URL,
		Config:     cfg,
		HTTPClient: srv.Client(),
	}
}

func TestAssistantChat(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("relays the model answer with sources", func(t *testing.T) {
		var got geminiRequest
		svc := newAssistant(t, func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
			require.Contains(t, r.URL.Path, "gemini-2.0-flash:generateContent")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			_ = json.NewEncoder(w).Encode(map[string]any{
				"candidates": []map[string]any{{
					"content": map[string]any{
						"role":  "model",
						"parts": []map[string]any{{"text": "El premio de hoy es un pase libre."}},
					},
					"groundingMetadata": map[string]any{
						"groundingChunks": []map[string]any{
							{"web": map[string]any{"uri": "https://club.example/reglas", "title": "Reglas"}},
							{"web": map[string]any{"uri": ""}},
						},
					},
				}},
			})
		})

		reply, err := svc.Chat(ctx, "¿Cuál es el premio?", []domain.ChatMessage{
			{Role: domain.ChatRoleUser, Text: "hola"},
			{Role: domain.ChatRoleModel, Text: "¡Hola! ¿En qué te ayudo?"},
		})
		require.NoError(t, err)
		require.Equal(t, "El premio de hoy es un pase libre.", reply.Text)
		require.Len(t, reply.Sources, 1)
		require.Equal(t, "https://club.example/reglas", reply.Sources[0].URI)

		// History plus the new turn, in order and with roles mapped.
		require.Len(t, got.Contents, 3)
		require.Equal(t, "model", got.Contents[1].Role)
		require.Equal(t, "¿Cuál es el premio?", got.Contents[2].Parts[0].Text)

		// Live config is folded into the persona.
		require.NotNil(t, got.SystemInstruction)
		require.Contains(t, got.SystemInstruction.Parts[0].Text, domain.DefaultConfig().RafflePrize)
	})

	t.Run("upstream failure answers with the apology", func(t *testing.T) {
		svc := newAssistant(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
		})

		reply, err := svc.Chat(ctx, "hola", nil)
		require.NoError(t, err)
		require.Equal(t, apologyReply, reply.Text)
	})

	t.Run("empty candidate answers with the apology", func(t *testing.T) {
		svc := newAssistant(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
		})

		reply, err := svc.Chat(ctx, "hola", nil)
		require.NoError(t, err)
		require.Equal(t, apologyReply, reply.Text)
	})

	t.Run("no api key skips the upstream entirely", func(t *testing.T) {
		cfg, _ := newConfigService()
		svc := &AssistantService{Config: cfg}
		require.False(t, svc.Enabled())

		reply, err := svc.Chat(ctx, "hola", nil)
		require.NoError(t, err)
		require.Equal(t, apologyReply, reply.Text)
	})
}
