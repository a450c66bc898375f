package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// ChatImage is a base64 encoded image attached to a chat request
type ChatImage struct {
	MimeType string
	Data     string
}

// ChatRequest is everything one remote completion needs
type ChatRequest struct {
	APIKey       string
	SystemPrompt string
	UserText     string
	Images       []ChatImage
}

// ChatClient sends a single multimodal prompt and returns the model's free-form reply.
type ChatClient interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
	Model() string
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

// Request represents a request to an OpenAI compatible chat completions API
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// OpenAIChatClient talks to an OpenAI compatible chat completions endpoint
type OpenAIChatClient struct {
	apiURL string
	model  string
	client *http.Client
}

var _ ChatClient = (*OpenAIChatClient)(nil)

// NewOpenAIChatClient creates a client for apiURL using model for every request
func NewOpenAIChatClient(apiURL, model string, timeout time.Duration) *OpenAIChatClient {
	return &OpenAIChatClient{
		apiURL: apiURL,
		model:  model,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *OpenAIChatClient) Model() string {
	return c.model
}

// Complete posts the prompt and returns the content of the first choice
func (c *OpenAIChatClient) Complete(ctx context.Context, chat ChatRequest) (string, error) {
	parts := []contentPart{{Type: "text", Text: chat.UserText}}
	for _, img := range chat.Images {
		parts = append(parts, contentPart{
			Type:     "image_url",
			ImageURL: &imageURL{URL: fmt.Sprintf("data:%s;base64,%s", img.MimeType, img.Data)},
		})
	}

	reqBody := Request{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: chat.SystemPrompt},
			{Role: "user", Content: parts},
		},
		Temperature: 0.2,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+chat.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[ChatClient] API request failed with status %d", resp.StatusCode)
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in API response")
	}

	return result.Choices[0].Message.Content, nil
}
