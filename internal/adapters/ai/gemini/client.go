// Package gemini implements the research collaborator on the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/medahead/conftarget/pkg/metrics"

	"google.golang.org/genai"
)

const (
	defaultModel   = "gemini-2.0-flash"
	defaultTimeout = 30 * time.Second
)

const systemInstruction = `You are a healthcare conference research specialist.
Provide detailed, accurate information about specific healthcare conferences or topics.
Include dates, locations, expected attendees and focus areas when known, and
clearly indicate your confidence level in the data.`

// Client wraps the Google GenAI client for conference research queries.
type Client struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithModel selects the model used for research calls.
func WithModel(model string) Option {
	return func(c *Client) {
		if strings.TrimSpace(model) != "" {
			c.modelName = model
		}
	}
}

// WithTimeout bounds each research call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// NewClient creates a Client configured for the Gemini API backend.
func NewClient(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	c := &Client{client: client, modelName: defaultModel, timeout: defaultTimeout}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Research sends a targeted research prompt and returns the textual
// response. The call is bounded by the configured timeout so a slow
// collaborator cannot stall the caller beyond it.
func (c *Client) Research(ctx context.Context, query, year string) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("gemini client is not initialized")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return "", errors.New("query must not be empty")
	}

	prompt := fmt.Sprintf("Research and provide detailed information about: %s", query)
	if year = strings.TrimSpace(year); year != "" {
		prompt += fmt.Sprintf(" Focus on current %s information.", year)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
	}

	metrics.RecordResearchRequest()
	start := time.Now()
	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(prompt), cfg)
	metrics.RecordResearchLatency(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordResearchError()
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		metrics.RecordResearchError()
		return "", errors.New("gemini api returned empty response")
	}
	return output, nil
}

// Model returns the configured model name.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.modelName
}
