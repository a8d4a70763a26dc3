package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/custodia-labs/resumebuddy/internal/core/domain"
	"github.com/custodia-labs/resumebuddy/internal/core/ports/driven"
	"github.com/custodia-labs/resumebuddy/internal/logger"
)

// Ensure Gateway implements the interface.
var _ driven.ModelGateway = (*Gateway)(nil)

// invalidKeyMarker is the reason code the API returns for a rejected key.
const invalidKeyMarker = "API_KEY_INVALID"

// Config holds configuration for the Gemini gateway.
type Config struct {
	// BaseURL is the API root (default: https://generativelanguage.googleapis.com/v1beta).
	BaseURL string

	// Model is the generateContent model (default: gemini-2.5-flash).
	Model string

	// Timeout bounds each HTTP request. Zero means no timeout.
	Timeout time.Duration

	// HTTPClient overrides the client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// Gateway calls the Gemini generateContent endpoint.
type Gateway struct {
	client  *http.Client
	baseURL string
	model   string
}

// generateContentRequest is the generateContent request body.
type generateContentRequest struct {
	SystemInstruction content          `json:"system_instruction"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"topP"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMIMEType string  `json:"responseMimeType"`
}

// generateContentResponse is the subset of the response envelope we read.
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// New creates a Gemini gateway.
func New(cfg Config) *Gateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = domain.DefaultGeminiBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = domain.DefaultGeminiModel
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	return &Gateway{
		client:  client,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
	}
}

// FromSettings creates a gateway from persisted application settings.
func FromSettings(s domain.AppSettings) *Gateway {
	return New(Config{
		BaseURL: s.Gemini.BaseURL,
		Model:   s.Gemini.Model,
		Timeout: time.Duration(s.Gemini.TimeoutSeconds) * time.Second,
	})
}

// Model returns the configured model name.
func (g *Gateway) Model() string {
	return g.model
}

// Generate sends one prompt pair and decodes the JSON reply into out.
func (g *Gateway) Generate(ctx context.Context, req domain.GenerateRequest, out any) error {
	body, err := json.Marshal(generateContentRequest{
		SystemInstruction: content{Parts: []part{{Text: req.SystemPrompt}}},
		Contents: []content{
			{Role: "user", Parts: []part{{Text: req.UserPrompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:      req.Config.Temperature,
			TopP:             req.Config.TopP,
			MaxOutputTokens:  req.Config.MaxOutputTokens,
			ResponseMIMEType: req.Config.ResponseMIMEType,
		},
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	key := url.QueryEscape(req.APIKey)
	endpoint := g.baseURL + "/models/" + g.model + ":generateContent?key=" + key
	logger.Debug("gemini: POST %s (%d byte body)", logger.RedactIn(endpoint, key), len(body))

	status, respBody, err := g.post(ctx, endpoint, body)
	if err != nil {
		// net/http errors echo the request URL, which carries the key.
		var uErr *url.Error
		if errors.As(err, &uErr) {
			uErr.URL = logger.RedactIn(uErr.URL, key)
		}
		return err
	}

	return g.handleResponse(status, respBody, out)
}

// post sends one request. Nothing is retried.
func (g *Gateway) post(ctx context.Context, endpoint string, body []byte) (int, []byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := g.client.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	logger.Stage("gemini: generateContent", started)

	return resp.StatusCode, respBody, nil
}

// handleResponse maps the HTTP outcome onto domain errors and decodes the text.
func (g *Gateway) handleResponse(status int, body []byte, out any) error {
	if status < 200 || status > 299 {
		if status >= 400 && status < 500 && bytes.Contains(body, []byte(invalidKeyMarker)) {
			return &domain.AuthenticationError{StatusCode: status}
		}
		return &domain.ProviderError{StatusCode: status, Body: string(body)}
	}

	var envelope generateContentResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return &domain.ProviderError{StatusCode: status, Body: string(body)}
	}

	if len(envelope.Candidates) == 0 ||
		len(envelope.Candidates[0].Content.Parts) == 0 ||
		envelope.Candidates[0].Content.Parts[0].Text == "" {
		return domain.ErrEmptyResponse
	}

	return Decode(envelope.Candidates[0].Content.Parts[0].Text, out)
}
