package provider

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// Gemini generates captions through the Gemini API. The client is built
// explicitly from an API key and model name; no process-global state.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini-backed provider.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, wrap("gemini", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Generate sends the prompt and returns the response text. An empty
// response is an error so the caller retries instead of validating "".
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", wrap("gemini", err)
	}
	text := resp.Text()
	if text == "" {
		return "", wrap("gemini", errors.New("empty response"))
	}
	return text, nil
}
