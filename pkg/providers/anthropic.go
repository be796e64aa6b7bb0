package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

const anthropicDefaultBaseURL = "https://api.anthropic.com"

// Anthropic is a messages-style backend with a distinct system-prompt channel.
type Anthropic struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// AnthropicConfig configures the messages-style backend.
type AnthropicConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Client  *http.Client
}

func NewAnthropic(cfg AnthropicConfig) *Anthropic {
	if cfg.BaseURL == "" {
		cfg.BaseURL = anthropicDefaultBaseURL
	}

	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-20250514"
	}

	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: DefaultTimeout}
	}

	return &Anthropic{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client:  cfg.Client,
	}
}

func (p *Anthropic) ID() string {
	return "anthropic"
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	Temperature float64            `json:"temperature"`
	MaxTokens   int                `json:"max_tokens"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (p *Anthropic) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if p.apiKey == "" {
		return nil, NewError(CategoryMissingCredential, p.ID(), "no API key configured", nil)
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 2048
	}

	payload := anthropicRequest{
		Model:       p.model,
		System:      req.System,
		Temperature: req.Temperature,
		MaxTokens:   maxTokens,
		Messages:    make([]anthropicMessage, 0, len(req.Messages)),
	}

	// The messages API only accepts user/assistant roles; system content has
	// its own channel above.
	for _, msg := range req.Messages {
		role := string(msg.Role)
		if role == "system" {
			payload.System = payload.System + "\n\n" + msg.Content

			continue
		}

		payload.Messages = append(payload.Messages, anthropicMessage{
			Role:    role,
			Content: msg.Content,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, NewError(CategoryUnknown, p.ID(), "failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return nil, NewError(CategoryUnknown, p.ID(), "failed to build request", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", p.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, NewError(CategoryUnknown, p.ID(), "request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewError(CategoryMalformedResponse, p.ID(), "failed to read response", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, ClassifyStatus(p.ID(), resp.StatusCode, string(respBody))
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, NewError(CategoryMalformedResponse, p.ID(), "failed to decode response envelope", err)
	}

	var text strings.Builder

	for _, block := range parsed.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	if strings.TrimSpace(text.String()) == "" {
		return nil, NewError(CategoryMalformedResponse, p.ID(), "response contained no text content", nil)
	}

	return &GenerateResult{Text: text.String()}, nil
}
