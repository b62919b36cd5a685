package ai

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// DefaultAPIBase is the generation endpoint used when AI_API_BASE is
// not configured.
const DefaultAPIBase = "https://norch-project.gleeze.com/api/Gpt4.1nano"

// Gateway issues requests to the external generation endpoint.
//
// The endpoint is a simple GET API: the full instruction prompt travels
// as the "text" query parameter and an optional attachment reference as
// "imageUrl". One attempt per request, no retries -- any non-200 status
// is reported as ErrServiceUnavailable and is terminal for the caller.
type Gateway struct {
	BaseURL string
	Client  *http.Client
}

// NewGateway creates a Gateway for the given base URL. An empty base
// URL falls back to DefaultAPIBase.
func NewGateway(baseURL string) *Gateway {
	if baseURL == "" {
		baseURL = DefaultAPIBase
	}
	return &Gateway{
		BaseURL: baseURL,
		Client:  http.DefaultClient,
	}
}

// Generate sends the compiled prompt to the generation endpoint and
// returns the raw response body as text. The body may be plain text, a
// JSON envelope, or a bare JSON value -- unwrapping is the caller's job
// (see UnwrapEnvelope).
func (g *Gateway) Generate(ctx context.Context, prompt string, imageURL string) (string, error) {
	apiURL := g.BaseURL + "?text=" + url.QueryEscape(prompt)
	if imageURL != "" {
		apiURL += "&imageUrl=" + url.QueryEscape(imageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return "", ErrServiceUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", ErrServiceUnavailable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", ErrServiceUnavailable
	}

	return string(body), nil
}
