package provider

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// Cohere generates captions through the Cohere chat API, selected with
// BHAKTIBOT_PROVIDER=cohere.
type Cohere struct {
	client *cohereclient.Client
	model  string
}

// NewCohere creates a Cohere-backed provider. The HTTP client forces
// HTTP/1.1 to avoid intermittent HTTP/2 protocol errors against the Cohere
// endpoint.
func NewCohere(apiKey, model string) *Cohere {
	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &Cohere{client: client, model: model}
}

// Generate sends the prompt as a single chat turn and returns the reply text.
func (c *Cohere) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message: prompt,
		Model:   &c.model,
	})
	if err != nil {
		return "", wrap("cohere", err)
	}
	if resp == nil || resp.Text == "" {
		return "", wrap("cohere", errors.New("empty response"))
	}
	return resp.Text, nil
}
