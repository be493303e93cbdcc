package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"pcpart-scraper/config"
)

// ErrNoAPIKey marks calls attempted without a configured key. Callers turn
// it into their own fallback objects instead of surfacing it.
var ErrNoAPIKey = errors.New("no API key configured")

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client is a minimal chat-completions client for the analysis service.
// Every failure comes back as an error; converting errors into fallback
// values is the caller's job, so nothing here retries or panics.
type Client struct {
	http   *resty.Client
	url    string
	model  string
	apiKey string
}

func NewClient(cfg *config.Config) *Client {
	client := resty.New()
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("HTTP-Referer", "https://github.com/pc-component-mixer")
	client.SetHeader("X-Title", "PC Component Mixer AI")

	return &Client{
		http:   client,
		url:    cfg.AnalysisBaseURL,
		model:  cfg.AnalysisModel,
		apiKey: cfg.OpenRouterAPIKey,
	}
}

// Ready reports whether a key is configured. Callers check it to produce
// their no-key fallbacks without a doomed round-trip.
func (c *Client) Ready() bool { return c.apiKey != "" }

// Complete performs one chat round-trip and returns the assistant text.
func (c *Client) Complete(ctx context.Context, system, user string, temperature float64, maxTokens int, timeout time.Duration) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	res, err := c.http.R().
		SetContext(reqCtx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetBody(body).
		Post(c.url)
	if err != nil {
		return "", fmt.Errorf("analysis request: %w", err)
	}
	if res.IsError() {
		return "", fmt.Errorf("analysis service returned status %d", res.StatusCode())
	}

	var parsed chatResponse
	if err := json.Unmarshal(res.Body(), &parsed); err != nil {
		return "", fmt.Errorf("decode analysis response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", errors.New("analysis service returned empty content")
	}
	return parsed.Choices[0].Message.Content, nil
}
