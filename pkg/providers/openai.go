package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/weftlabs/weft/pkg/models"
)

const openAIDefaultBaseURL = "https://api.openai.com/v1"

// OpenAI is a chat-completion-style backend. The system instruction travels as
// the leading message of the conversation.
type OpenAI struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// OpenAIConfig configures the chat-completion backend.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Client  *http.Client
}

// NewOpenAI creates the backend. Construction never fails; a missing key is
// reported per call so the orchestrator can fall back.
func NewOpenAI(cfg OpenAIConfig) *OpenAI {
	if cfg.BaseURL == "" {
		cfg.BaseURL = openAIDefaultBaseURL
	}

	if cfg.Model == "" {
		cfg.Model = "gpt-4o"
	}

	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: DefaultTimeout}
	}

	return &OpenAI{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		model:   cfg.Model,
		client:  cfg.Client,
	}
}

func (p *OpenAI) ID() string {
	return "openai"
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model          string          `json:"model"`
	Messages       []openAIMessage `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	Stream         bool            `json:"stream"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format,omitempty"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *OpenAI) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if p.apiKey == "" {
		return nil, NewError(CategoryMissingCredential, p.ID(), "no API key configured", nil)
	}

	payload := openAIRequest{
		Model:       p.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openAIMessage, 0, len(req.Messages)+1),
	}

	if req.System != "" {
		payload.Messages = append(payload.Messages, openAIMessage{
			Role:    string(models.RoleSystem),
			Content: req.System,
		})
	}

	for _, msg := range req.Messages {
		payload.Messages = append(payload.Messages, openAIMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	if req.JSONMode {
		payload.ResponseFormat = &struct {
			Type string `json:"type"`
		}{Type: "json_object"}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, NewError(CategoryUnknown, p.ID(), "failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, NewError(CategoryUnknown, p.ID(), "failed to build request", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

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

	var parsed openAIResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, NewError(CategoryMalformedResponse, p.ID(), "failed to decode response envelope", err)
	}

	// A well-formed envelope with no content is a provider failure, not a
	// success with empty text.
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return nil, NewError(CategoryMalformedResponse, p.ID(),
			fmt.Sprintf("response contained no content (%d choices)", len(parsed.Choices)), nil)
	}

	return &GenerateResult{Text: parsed.Choices[0].Message.Content}, nil
}
