package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/malliaquatic/clubd/internal/club/domain"
	"github.com/malliaquatic/clubd/pkg/slogx"
)

// apologyReply is served whenever the upstream model is unreachable or
// misbehaves. The assistant must never surface a raw error to a member.
const apologyReply = "Error de conexión con el centro de mando de las piletas."

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// AssistantService answers member questions through the Gemini REST API,
// grounded with web search so replies can cite sources. The current
// config document is folded into the system instruction so the model
// knows today's prize and rules.
type AssistantService struct {
	APIKey  string
	Model   string
	BaseURL string // override for tests; empty means the public endpoint

	Config     *ConfigService
	HTTPClient *http.Client
}

func (s *AssistantService) httpClient() *http.Client {
	if s.HTTPClient != nil {
		return s.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}

// Enabled reports whether an upstream model is configured at all.
func (s *AssistantService) Enabled() bool {
	return s.APIKey != ""
}

// Chat sends one conversation turn upstream. It always returns a usable
// reply: upstream failures are logged and answered with the apology.
func (s *AssistantService) Chat(ctx context.Context, message string, history []domain.ChatMessage) (domain.ChatReply, error) {
	log := slogx.FromContext(ctx)

	if !s.Enabled() {
		return domain.ChatReply{Text: apologyReply}, nil
	}

	reply, err := s.generate(ctx, message, history)
	if err != nil {
		log.Error("assistant upstream failed", "err", err)
		return domain.ChatReply{Text: apologyReply}, nil
	}
	return reply, nil
}

// Gemini generateContent wire types, reduced to the fields we use.

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"systemInstruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	Tools             []geminiTool    `json:"tools,omitempty"`
}

type geminiTool struct {
	GoogleSearch struct{} `json:"google_search"`
}

type geminiResponse struct {
	Candidates []struct {
		Content           geminiContent `json:"content"`
		GroundingMetadata *struct {
			GroundingChunks []struct {
				Web *struct {
					URI   string `json:"uri"`
					Title string `json:"title"`
				} `json:"web"`
			} `json:"groundingChunks"`
		} `json:"groundingMetadata"`
	} `json:"candidates"`
}

func (s *AssistantService) generate(ctx context.Context, message string, history []domain.ChatMessage) (domain.ChatReply, error) {
	req := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: s.systemInstruction(ctx)}},
		},
		Tools: []geminiTool{{}},
	}

	for _, turn := range history {
		role := "user"
		if turn.Role == domain.ChatRoleModel {
			role = "model"
		}
		req.Contents = append(req.Contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}
	req.Contents = append(req.Contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: message}},
	})

	body, err := json.Marshal(req)
	if err != nil {
		return domain.ChatReply{}, fmt.Errorf("encode request: %w", err)
	}

	baseURL := s.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", strings.TrimSuffix(baseURL, "/"), s.Model)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return domain.ChatReply{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", s.APIKey)

	resp, err := s.httpClient().Do(httpReq)
	if err != nil {
		return domain.ChatReply{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return domain.ChatReply{}, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.ChatReply{}, fmt.Errorf("upstream status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return domain.ChatReply{}, fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return domain.ChatReply{}, fmt.Errorf("no candidates in response")
	}

	cand := parsed.Candidates[0]

	var text strings.Builder
	for _, part := range cand.Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return domain.ChatReply{}, fmt.Errorf("empty candidate text")
	}

	reply := domain.ChatReply{Text: text.String()}
	if cand.GroundingMetadata != nil {
		for _, chunk := range cand.GroundingMetadata.GroundingChunks {
			if chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			reply.Sources = append(reply.Sources, domain.ChatSource{
				Title: chunk.Web.Title,
				URI:   chunk.Web.URI,
			})
		}
	}
	return reply, nil
}

// systemInstruction folds the live config into the assistant persona so
// answers about the prize and rules stay current.
func (s *AssistantService) systemInstruction(ctx context.Context) string {
	cfg := s.Config.Get(ctx)

	var b strings.Builder
	b.WriteString("Eres el asistente virtual del club de piletas Malli Aquatic Club. ")
	b.WriteString("Responde en español, con tono amable y breve. ")
	b.WriteString("Solo respondes preguntas sobre el club, sus piletas y el sorteo diario.\n\n")
	b.WriteString("Premio del sorteo de hoy: " + cfg.RafflePrize + "\n")
	b.WriteString("Reglas del sorteo:\n" + cfg.RaffleRules + "\n")
	if cfg.Maintenance() {
		b.WriteString("\nLa aplicación está en mantenimiento en este momento.\n")
	}
	return b.String()
}
