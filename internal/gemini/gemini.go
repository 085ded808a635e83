package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// systemInstruction pins the assistant persona attached to every call.
const systemInstruction = "You are Sustaina-Bot, a helpful assistant specializing in eco-friendly material alternatives, sustainable processes, and green innovation ideas. Keep answers concise and encouraging, and always relate the answer back to sustainability or innovation."

// ErrGateway wraps every failed provider call. Transport errors, provider
// rejections and empty output are not distinguished.
var ErrGateway = errors.New("completion provider call failed")

// Client is a stateless gateway to the Gemini generate-content API.
type Client struct {
	client *genai.Client
	model  string
	config *genai.GenerateContentConfig
}

func New(ctx context.Context, apiKey, model string) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{
		client: genaiClient,
		model:  model,
		config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: systemInstruction}},
			},
		},
	}, nil
}

// Complete sends a single prompt and returns the generated text verbatim.
// Every call is independent; no conversation history is kept.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), c.config)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrGateway)
	}
	return text, nil
}
