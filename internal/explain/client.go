package explain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Config holds OpenAI configuration parameters.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
}

// Client rewrites the templated reason into a one-sentence narrative via the
// OpenAI chat completions API.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	maxTokens   int
}

// NewClient constructs a Client if the supplied configuration is valid.
func NewClient(cfg Config) (*Client, error) {
	cfg.Model = strings.TrimSpace(cfg.Model)
	if cfg.Model == "" {
		cfg.Model = "gpt-4.1-mini"
	}
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrDisabled
	}
	temp := cfg.Temperature
	if temp <= 0 {
		temp = 0.4
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 200
	}
	return &Client{
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		apiKey:      strings.TrimSpace(cfg.APIKey),
		model:       cfg.Model,
		baseURL:     cfg.BaseURL,
		temperature: temp,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

// Enabled reports whether the client can make outbound calls.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Explain requests a fresh narrative for the recommendation.
func (c *Client) Explain(ctx context.Context, in Input) (string, error) {
	if c == nil || !c.Enabled() {
		return "", ErrDisabled
	}

	payload := map[string]any{
		"model":       c.model,
		"temperature": c.temperature,
		"max_tokens":  c.maxTokens,
		"messages": []map[string]string{
			{
				"role": "system",
				"content": "You write one-sentence explanations for why a recommendation " +
					"was shown to a user. Reply with exactly one sentence of plain text, " +
					"no preamble and no quotation marks.",
			},
			{
				"role":    "user",
				"content": c.buildPrompt(in),
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return "", fmt.Errorf("openai status %d: %v", resp.StatusCode, apiErr)
	}

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", errors.New("openai empty response")
	}

	narrative := strings.TrimSpace(decoded.Choices[0].Message.Content)
	if narrative == "" {
		return "", errors.New("openai empty narrative")
	}
	return narrative, nil
}

func (c *Client) buildPrompt(in Input) string {
	builder := &strings.Builder{}
	fmt.Fprintf(builder, "Item: %s\n", in.ItemName)
	fmt.Fprintf(builder, "Category: %s\n", in.Category)
	fmt.Fprintf(builder, "Recommendation kind: %s\n", in.Kind)
	fmt.Fprintf(builder, "Match score: %d/100\n", in.MatchScore)
	fmt.Fprintf(builder, "Confidence: %d\n", in.ConfidenceLevel)
	if len(in.Reasons) > 0 {
		fmt.Fprintf(builder, "Signals: %s\n", strings.Join(in.Reasons, "; "))
	}
	builder.WriteString("Explain to the user, in one friendly sentence, why this item fits them.")
	return builder.String()
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
